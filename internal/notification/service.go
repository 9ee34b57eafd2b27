package notification

import (
	"context"

	"github.com/Marga-Ghale/portfolio-api/internal/email"
	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/Marga-Ghale/portfolio-api/internal/socket"
)

// Service fans a new inquiry out to the owner's inbox and the admin live feed.
// Both channels are optional and best-effort.
type Service struct {
	emailSvc    *email.Service
	notifyTo    string
	broadcaster *socket.Broadcaster
}

// NewService creates a notification service. Any argument may be zero.
func NewService(emailSvc *email.Service, notifyTo string) *Service {
	return &Service{
		emailSvc: emailSvc,
		notifyTo: notifyTo,
	}
}

func (s *Service) SetBroadcaster(b *socket.Broadcaster) {
	s.broadcaster = b
}

// InquiryReceived delivers the inquiry on every configured channel. Failures are logged, not returned.
func (s *Service) InquiryReceived(ctx context.Context, inquiry *repository.Inquiry) {
	if inquiry == nil {
		return
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastInquiryCreated(InquiryPayload(inquiry))
	}

	if s.emailSvc.Enabled() && s.notifyTo != "" {
		if err := s.emailSvc.SendInquiryReceived(s.notifyTo, InquiryEmailData(inquiry)); err != nil {
			logger.Log.WithError(err).WithField("inquiry_id", inquiry.ID).
				Error("[Notification] ❌ Failed to email inquiry")
			return
		}
		logger.Log.WithField("inquiry_id", inquiry.ID).Info("[Notification] 📧 Inquiry emailed to owner")
	}
}

// InquiryPayload is the websocket representation of an inquiry.
func InquiryPayload(inq *repository.Inquiry) map[string]any {
	return map[string]any{
		"id":           inq.ID,
		"name":         inq.Name,
		"email":        inq.Email,
		"company":      inq.Company,
		"project_type": inq.ProjectType,
		"budget":       inq.Budget,
		"deadline":     inq.Deadline,
		"details":      inq.Details,
		"consent":      inq.Consent,
		"created_at":   repository.FormatTimestamp(inq.CreatedAt),
	}
}

func InquiryEmailData(inq *repository.Inquiry) email.InquiryEmailData {
	return email.InquiryEmailData{
		ID:          inq.ID,
		Name:        inq.Name,
		Email:       inq.Email,
		Company:     deref(inq.Company),
		ProjectType: inq.ProjectType,
		Budget:      deref(inq.Budget),
		Deadline:    deref(inq.Deadline),
		Details:     deref(inq.Details),
		Consent:     inq.Consent,
		ReceivedAt:  repository.FormatTimestamp(inq.CreatedAt),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
