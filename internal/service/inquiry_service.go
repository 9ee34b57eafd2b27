package service

import (
	"context"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
)

// ============================================
// Inquiry Service
// ============================================

type InquiryService interface {
	// Create stores a validated inquiry. Storage failures are returned unchanged.
	Create(ctx context.Context, req *models.CreateInquiryRequest) (*repository.Inquiry, error)
	List(ctx context.Context) ([]*repository.Inquiry, error)
	ListSince(ctx context.Context, since time.Time) ([]*repository.Inquiry, error)
}

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	notifier    InquiryNotifier
}

func NewInquiryService(inquiryRepo repository.InquiryRepository, notifier InquiryNotifier) InquiryService {
	return &inquiryService{inquiryRepo: inquiryRepo, notifier: notifier}
}

func (s *inquiryService) Create(ctx context.Context, req *models.CreateInquiryRequest) (*repository.Inquiry, error) {
	inquiry := &repository.Inquiry{
		Name:        deref(req.Name),
		Email:       deref(req.Email),
		Company:     req.Company,
		ProjectType: deref(req.ProjectType),
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Details:     req.Details,
		Consent:     req.ConsentGiven(),
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	logger.Log.WithFields(map[string]any{
		"inquiry_id":   inquiry.ID,
		"project_type": inquiry.ProjectType,
	}).Info("[Inquiry] ✅ Inquiry stored")

	if s.notifier != nil {
		notified := *inquiry
		go s.notifier.InquiryReceived(context.WithoutCancel(ctx), &notified)
	}
	return inquiry, nil
}

func (s *inquiryService) List(ctx context.Context) ([]*repository.Inquiry, error) {
	return s.inquiryRepo.FindAll(ctx)
}

func (s *inquiryService) ListSince(ctx context.Context, since time.Time) ([]*repository.Inquiry, error) {
	return s.inquiryRepo.FindCreatedSince(ctx, since)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
