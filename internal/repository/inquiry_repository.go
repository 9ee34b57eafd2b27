package repository

import (
	"context"
	"time"
)

// Inquiry is a contact-form submission. Stored once, never updated.
type Inquiry struct {
	ID          string
	Name        string
	Email       string
	Company     *string
	ProjectType string
	Budget      *string
	Deadline    *string
	Details     *string
	Consent     bool
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	FindAll(ctx context.Context) ([]*Inquiry, error)
	// FindCreatedSince returns inquiries stamped at or after since.
	FindCreatedSince(ctx context.Context, since time.Time) ([]*Inquiry, error)
}

type documentInquiryRepository struct {
	db *Database
}

func NewInquiryRepository(db *Database) InquiryRepository {
	return &documentInquiryRepository{db: db}
}

func (r *documentInquiryRepository) Create(ctx context.Context, inquiry *Inquiry) error {
	store, err := r.db.Store()
	if err != nil {
		return err
	}

	doc := Document{
		"name":         inquiry.Name,
		"email":        inquiry.Email,
		"company":      optional(inquiry.Company),
		"project_type": inquiry.ProjectType,
		"budget":       optional(inquiry.Budget),
		"deadline":     optional(inquiry.Deadline),
		"details":      optional(inquiry.Details),
		"consent":      inquiry.Consent,
	}
	id, err := store.CreateDocument(ctx, CollectionInquiry, doc)
	if err != nil {
		return err
	}
	inquiry.ID = id
	inquiry.CreatedAt = doc.GetTime(CreatedAtField)
	inquiry.UpdatedAt = doc.GetTime(UpdatedAtField)
	return nil
}

func (r *documentInquiryRepository) FindAll(ctx context.Context) ([]*Inquiry, error) {
	store, err := r.db.Store()
	if err != nil {
		return nil, err
	}

	docs, err := store.GetDocuments(ctx, CollectionInquiry, Filter{})
	if err != nil {
		return nil, err
	}

	inquiries := make([]*Inquiry, 0, len(docs))
	for _, d := range docs {
		inquiries = append(inquiries, inquiryFromDocument(d))
	}
	return inquiries, nil
}

// The store only filters by equality, so the time window is applied here.
func (r *documentInquiryRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]*Inquiry, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var recent []*Inquiry
	for _, inq := range all {
		if inq.CreatedAt != nil && !inq.CreatedAt.Before(since) {
			recent = append(recent, inq)
		}
	}
	return recent, nil
}

func inquiryFromDocument(d Document) *Inquiry {
	return &Inquiry{
		ID:          d.ID(),
		Name:        d.GetString("name"),
		Email:       d.GetString("email"),
		Company:     d.GetStringPtr("company"),
		ProjectType: d.GetString("project_type"),
		Budget:      d.GetStringPtr("budget"),
		Deadline:    d.GetStringPtr("deadline"),
		Details:     d.GetStringPtr("details"),
		Consent:     d.GetBool("consent", true),
		CreatedAt:   d.GetTime(CreatedAtField),
		UpdatedAt:   d.GetTime(UpdatedAtField),
	}
}
