package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/email"
	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/Marga-Ghale/portfolio-api/internal/repository/memstore"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDigest struct {
	enabled bool
	err     error
	to      []string
	sent    []email.DigestEmailData
}

func (f *fakeDigest) Enabled() bool { return f.enabled }

func (f *fakeDigest) SendInquiryDigest(to string, data email.DigestEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.to = append(f.to, to)
	f.sent = append(f.sent, data)
	return nil
}

func newTestScheduler(t *testing.T, digest *fakeDigest) (*Scheduler, service.InquiryService, *memstore.Store) {
	t.Helper()
	store := memstore.New("test")
	database := repository.Connected(store)
	inquiries := service.NewInquiryService(repository.NewInquiryRepository(database), nil)

	s := NewScheduler(&SchedulerDeps{
		InquiryService: inquiries,
		Database:       database,
		Digest:         digest,
		NotifyTo:       "owner@example.com",
		DigestSchedule: "0 9 * * *",
	})
	return s, inquiries, store
}

func TestDigestSendsRecentInquiries(t *testing.T) {
	digest := &fakeDigest{enabled: true}
	s, inquiries, _ := newTestScheduler(t, digest)

	_, err := inquiries.Create(context.Background(), inquiryRequest("Ana", "ana@example.com", models.NicheRealEstate))
	require.NoError(t, err)

	assert.Equal(t, 1, s.sendInquiryDigest())
	require.Len(t, digest.sent, 1)
	assert.Equal(t, []string{"owner@example.com"}, digest.to)
	require.Len(t, digest.sent[0].Inquiries, 1)
	assert.Equal(t, "Ana", digest.sent[0].Inquiries[0].Name)
	assert.NotEmpty(t, digest.sent[0].Period)
}

func TestDigestSkipsQuietDayAndOldInquiries(t *testing.T) {
	digest := &fakeDigest{enabled: true}
	s, inquiries, _ := newTestScheduler(t, digest)

	assert.Equal(t, 0, s.sendInquiryDigest())

	_, err := inquiries.Create(context.Background(), inquiryRequest("Ana", "ana@example.com", models.NicheRealEstate))
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
	assert.Equal(t, 0, s.sendInquiryDigest())
	assert.Empty(t, digest.sent)
}

func TestDigestDisabledWithoutEmail(t *testing.T) {
	digest := &fakeDigest{enabled: false}
	s, inquiries, _ := newTestScheduler(t, digest)

	_, err := inquiries.Create(context.Background(), inquiryRequest("Ana", "ana@example.com", models.NicheRealEstate))
	require.NoError(t, err)

	assert.Equal(t, 0, s.sendInquiryDigest())
	assert.Empty(t, digest.sent)
}

func TestDigestSendFailure(t *testing.T) {
	digest := &fakeDigest{enabled: true, err: errors.New("smtp: 550")}
	s, inquiries, _ := newTestScheduler(t, digest)

	_, err := inquiries.Create(context.Background(), inquiryRequest("Ana", "ana@example.com", models.NicheRealEstate))
	require.NoError(t, err)

	assert.Equal(t, 0, s.sendInquiryDigest())
}

func TestPingStore(t *testing.T) {
	s, _, store := newTestScheduler(t, &fakeDigest{})
	assert.NoError(t, s.pingStore())

	store.FailReads(errors.New("no reachable servers"))
	assert.EqualError(t, s.pingStore(), "no reachable servers")

	unavailable := NewScheduler(&SchedulerDeps{Database: repository.Unavailable(errors.New("DATABASE_URL not set"))})
	assert.ErrorIs(t, unavailable.pingStore(), repository.ErrUnavailable)
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	s, _, _ := newTestScheduler(t, &fakeDigest{enabled: true})
	s.digestSchedule = "every morning"
	assert.Error(t, s.Start())
}

func TestStartAndStop(t *testing.T) {
	s, _, _ := newTestScheduler(t, &fakeDigest{enabled: true})
	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 2)
	s.Stop()
}

func inquiryRequest(name, email, projectType string) *models.CreateInquiryRequest {
	return &models.CreateInquiryRequest{Name: &name, Email: &email, ProjectType: &projectType}
}
