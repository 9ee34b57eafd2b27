// internal/seed/seed.go
package seed

import (
	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
)

// Projects returns a fresh copy of the sample projects inserted into an empty collection.
func Projects() []*repository.Project {
	return []*repository.Project{
		// UI Animation
		{
			Title:        "SaaS Dashboard Promo",
			Niche:        models.NicheUIAnimation,
			Description:  "Product-first motion with smooth UI transitions and feature highlights.",
			Tools:        []string{"After Effects", "Figma", "Premiere"},
			VideoURL:     stringPtr("https://cdn.coverr.co/videos/coverr-dashboard-5830/1080p.mp4"),
			ThumbnailURL: stringPtr("https://images.unsplash.com/photo-1551281044-8d8d0d8d0b68?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Title:        "E‑Commerce App Launch",
			Niche:        models.NicheUIAnimation,
			Description:  "Hook-driven spot with animated flows, testimonials, and pricing moments.",
			Tools:        []string{"After Effects", "Illustrator"},
			VideoURL:     stringPtr("https://cdn.coverr.co/videos/coverr-mobile-app-8068/1080p.mp4"),
			ThumbnailURL: stringPtr("https://images.unsplash.com/photo-1518770660439-4636190af475?q=80&w=1200&auto=format&fit=crop"),
		},

		// Real Estate
		{
			Title:        "Luxury Villa Walkthrough",
			Niche:        models.NicheRealEstate,
			Description:  "Cinematic pacing, gimbal shots, refined color grade, elegant overlays.",
			Tools:        []string{"Premiere", "After Effects", "DaVinci"},
			VideoURL:     stringPtr("https://cdn.coverr.co/videos/coverr-modern-house-6134/1080p.mp4"),
			ThumbnailURL: stringPtr("https://images.unsplash.com/photo-1505691938895-1758d7feb511?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Title:        "Urban Loft Showcase",
			Niche:        models.NicheRealEstate,
			Description:  "Edgy cuts, rhythmic beats, modern title cards, amenities focus.",
			Tools:        []string{"Premiere", "After Effects"},
			VideoURL:     stringPtr("https://cdn.coverr.co/videos/coverr-modern-apartment-4275/1080p.mp4"),
			ThumbnailURL: stringPtr("https://images.unsplash.com/photo-1524758631624-e2822e304c36?q=80&w=1200&auto=format&fit=crop"),
		},

		// Commercial Reels
		{
			Title:        "Restaurant Launch Reel",
			Niche:        models.NicheCommercialReels,
			Description:  "High-tempo macro shots, logo sting, offer CTA.",
			Tools:        []string{"Premiere", "After Effects"},
			VideoURL:     stringPtr("https://cdn.coverr.co/videos/coverr-cooking-in-a-pan-8697/1080p.mp4"),
			ThumbnailURL: stringPtr("https://images.unsplash.com/photo-1504674900247-0877df9cc836?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Title:        "Retail Brand Drop",
			Niche:        models.NicheCommercialReels,
			Description:  "Drop reveals, split screens, kinetic type, price tags in motion.",
			Tools:        []string{"Premiere", "After Effects"},
			VideoURL:     stringPtr("https://cdn.coverr.co/videos/coverr-a-woman-shopping-8157/1080p.mp4"),
			ThumbnailURL: stringPtr("https://images.unsplash.com/photo-1544441893-675973e31985?q=80&w=1200&auto=format&fit=crop"),
		},
	}
}

// Testimonials returns the placeholder quotes. Attribution fields stay empty.
func Testimonials() []*repository.Testimonial {
	return []*repository.Testimonial{
		{Quote: "Super fast and super clean. The UI motion felt premium and on-brand."},
		{Quote: "Our property sold faster with the video front and center."},
		{Quote: "The reel outperformed our previous ads — clear hooks and sharp pacing."},
		{Quote: "Great communication and delivery exactly as promised."},
	}
}

func stringPtr(s string) *string {
	return &s
}
