package service

import (
	"context"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/Marga-Ghale/portfolio-api/internal/seed"
)

// ============================================
// Testimonial Service
// ============================================

type TestimonialService interface {
	// List seeds the placeholder testimonials into an empty collection and returns all of them.
	List(ctx context.Context) ([]*repository.Testimonial, error)
}

type testimonialService struct {
	database        *repository.Database
	testimonialRepo repository.TestimonialRepository
	cache           Cache
	cacheTTL        time.Duration
	seeder          *seeder
}

func NewTestimonialService(
	database *repository.Database,
	testimonialRepo repository.TestimonialRepository,
	cache Cache,
	cacheTTL time.Duration,
	seeder *seeder,
) TestimonialService {
	if seeder == nil {
		seeder = newSeeder(cache)
	}
	return &testimonialService{
		database:        database,
		testimonialRepo: testimonialRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
		seeder:          seeder,
	}
}

const testimonialsCacheKey = "testimonials:all"

func (s *testimonialService) List(ctx context.Context) ([]*repository.Testimonial, error) {
	if !s.database.Available() {
		return []*repository.Testimonial{}, nil
	}

	if s.cache != nil {
		var cached []*repository.Testimonial
		if err := s.cache.GetCache(ctx, testimonialsCacheKey, &cached); err == nil && cached != nil {
			return cached, nil
		}
	}

	if err := s.seeder.ensure(ctx, repository.CollectionTestimonial, "testimonials:*", s.testimonialRepo.Count, s.seedTestimonials); err != nil {
		return nil, err
	}

	testimonials, err := s.testimonialRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCache(ctx, testimonialsCacheKey, testimonials, s.cacheTTL); err != nil {
			logger.Log.WithError(err).Warn("[Cache] Failed to cache testimonials")
		}
	}
	return testimonials, nil
}

func (s *testimonialService) seedTestimonials(ctx context.Context) (int, error) {
	inserted := 0
	for _, t := range seed.Testimonials() {
		if err := s.testimonialRepo.Create(ctx, t); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
