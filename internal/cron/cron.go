package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/email"
	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/notification"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	digestWindow = 24 * time.Hour
	jobTimeout   = time.Minute
)

var log = logger.WithComponent("cron")

// DigestSender delivers the daily inquiry summary. Implemented by email.Service.
type DigestSender interface {
	Enabled() bool
	SendInquiryDigest(to string, data email.DigestEmailData) error
}

// Scheduler handles scheduled tasks
type Scheduler struct {
	cron           *cron.Cron
	inquiryService service.InquiryService
	database       *repository.Database
	digest         DigestSender
	notifyTo       string
	digestSchedule string
	now            func() time.Time
}

type SchedulerDeps struct {
	InquiryService service.InquiryService
	Database       *repository.Database
	Digest         DigestSender
	NotifyTo       string
	DigestSchedule string
}

// NewScheduler creates a new scheduler
func NewScheduler(deps *SchedulerDeps) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		inquiryService: deps.InquiryService,
		database:       deps.Database,
		digest:         deps.Digest,
		notifyTo:       deps.NotifyTo,
		digestSchedule: deps.DigestSchedule,
		now:            time.Now,
	}
}

// Start registers the jobs and starts the scheduler. An invalid digest schedule is returned
// before anything runs.
func (s *Scheduler) Start() error {
	if s.digestEnabled() {
		if _, err := s.cron.AddFunc(s.digestSchedule, func() {
			log.Info("[Cron] Running inquiry digest...")
			s.sendInquiryDigest()
		}); err != nil {
			return fmt.Errorf("invalid digest schedule %q: %w", s.digestSchedule, err)
		}
	} else {
		log.Info("[Cron] Inquiry digest disabled (email or NOTIFY_EMAIL not configured)")
	}

	// Run every hour - Document store liveness
	if _, err := s.cron.AddFunc("0 * * * *", func() {
		s.pingStore()
	}); err != nil {
		return err
	}

	s.cron.Start()
	log.Info("[Cron] Scheduler started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info("[Cron] Scheduler stopped")
}

func (s *Scheduler) digestEnabled() bool {
	return s.digest != nil && s.digest.Enabled() && s.notifyTo != "" && s.digestSchedule != ""
}

// sendInquiryDigest emails every inquiry received in the last day. Nothing is sent on a quiet day.
func (s *Scheduler) sendInquiryDigest() int {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if !s.digestEnabled() {
		return 0
	}

	since := s.now().Add(-digestWindow)
	inquiries, err := s.inquiryService.ListSince(ctx, since)
	if err != nil {
		log.WithError(err).Error("[Cron] Error loading inquiries for digest")
		return 0
	}
	if len(inquiries) == 0 {
		log.Info("[Cron] No new inquiries, skipping digest")
		return 0
	}

	data := email.DigestEmailData{
		Period:    fmt.Sprintf("%s to %s", since.Format("Jan 2, 15:04"), s.now().Format("Jan 2, 15:04 MST")),
		Inquiries: make([]email.InquiryEmailData, 0, len(inquiries)),
	}
	for _, inq := range inquiries {
		data.Inquiries = append(data.Inquiries, notification.InquiryEmailData(inq))
	}

	if err := s.digest.SendInquiryDigest(s.notifyTo, data); err != nil {
		log.WithError(err).Error("[Cron] Failed to send inquiry digest")
		return 0
	}

	log.WithField("inquiries", len(inquiries)).Info("[Cron] 📧 Inquiry digest sent")
	return len(inquiries)
}

// pingStore logs whether the document store still answers.
func (s *Scheduler) pingStore() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := s.database.Store()
	if err != nil {
		log.WithField("reason", s.database.Reason()).Warn("[Cron] Document store unavailable")
		return err
	}

	start := time.Now()
	if err := store.Ping(ctx); err != nil {
		log.WithError(err).WithField("backend", store.Name()).Error("[Cron] ❌ Document store ping failed")
		return err
	}
	log.WithFields(logrus.Fields{
		"backend": store.Name(),
		"latency": time.Since(start).String(),
	}).Debug("[Cron] Document store ping ok")
	return nil
}
