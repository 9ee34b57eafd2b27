package handlers

import (
	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	System      *SystemHandler
	Project     *ProjectHandler
	Testimonial *TestimonialHandler
	Inquiry     *InquiryHandler
	Admin       *AdminHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		System:      NewSystemHandler(services.Diagnostics),
		Project:     NewProjectHandler(services.Project),
		Testimonial: NewTestimonialHandler(services.Testimonial),
		Inquiry:     NewInquiryHandler(services.Inquiry),
		Admin:       NewAdminHandler(services.Auth, services.Inquiry),
	}
}

// ============================================
// Response Mappers
// ============================================

func toProjectResponse(p *repository.Project) models.ProjectResponse {
	return models.ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Niche:        p.Niche,
		Description:  p.Description,
		Tools:        safeStringSlice(p.Tools),
		VideoURL:     p.VideoURL,
		ThumbnailURL: p.ThumbnailURL,
		CreatedAt:    repository.FormatTimestamp(p.CreatedAt),
		UpdatedAt:    repository.FormatTimestamp(p.UpdatedAt),
	}
}

func toTestimonialResponse(t *repository.Testimonial) models.TestimonialResponse {
	return models.TestimonialResponse{
		ID:         t.ID,
		Quote:      t.Quote,
		ClientName: t.ClientName,
		Role:       t.Role,
		Region:     t.Region,
		CreatedAt:  repository.FormatTimestamp(t.CreatedAt),
		UpdatedAt:  repository.FormatTimestamp(t.UpdatedAt),
	}
}

func toInquiryResponse(i *repository.Inquiry) models.InquiryResponse {
	return models.InquiryResponse{
		ID:          i.ID,
		Name:        i.Name,
		Email:       i.Email,
		Company:     i.Company,
		ProjectType: i.ProjectType,
		Budget:      i.Budget,
		Deadline:    i.Deadline,
		Details:     i.Details,
		Consent:     i.Consent,
		CreatedAt:   repository.FormatTimestamp(i.CreatedAt),
		UpdatedAt:   repository.FormatTimestamp(i.UpdatedAt),
	}
}

func safeStringSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
