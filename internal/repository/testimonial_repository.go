package repository

import (
	"context"
	"time"
)

type Testimonial struct {
	ID         string
	Quote      string
	ClientName *string
	Role       *string
	Region     *string
	CreatedAt  *time.Time
	UpdatedAt  *time.Time
}

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *Testimonial) error
	FindAll(ctx context.Context) ([]*Testimonial, error)
	Count(ctx context.Context) (int64, error)
}

type documentTestimonialRepository struct {
	db *Database
}

func NewTestimonialRepository(db *Database) TestimonialRepository {
	return &documentTestimonialRepository{db: db}
}

func (r *documentTestimonialRepository) Create(ctx context.Context, t *Testimonial) error {
	store, err := r.db.Store()
	if err != nil {
		return err
	}

	doc := Document{
		"quote":       t.Quote,
		"client_name": optional(t.ClientName),
		"role":        optional(t.Role),
		"region":      optional(t.Region),
	}
	id, err := store.CreateDocument(ctx, CollectionTestimonial, doc)
	if err != nil {
		return err
	}
	t.ID = id
	t.CreatedAt = doc.GetTime(CreatedAtField)
	t.UpdatedAt = doc.GetTime(UpdatedAtField)
	return nil
}

func (r *documentTestimonialRepository) FindAll(ctx context.Context) ([]*Testimonial, error) {
	store, err := r.db.Store()
	if err != nil {
		return nil, err
	}

	docs, err := store.GetDocuments(ctx, CollectionTestimonial, Filter{})
	if err != nil {
		return nil, err
	}

	testimonials := make([]*Testimonial, 0, len(docs))
	for _, d := range docs {
		testimonials = append(testimonials, &Testimonial{
			ID:         d.ID(),
			Quote:      d.GetString("quote"),
			ClientName: d.GetStringPtr("client_name"),
			Role:       d.GetStringPtr("role"),
			Region:     d.GetStringPtr("region"),
			CreatedAt:  d.GetTime(CreatedAtField),
			UpdatedAt:  d.GetTime(UpdatedAtField),
		})
	}
	return testimonials, nil
}

func (r *documentTestimonialRepository) Count(ctx context.Context) (int64, error) {
	store, err := r.db.Store()
	if err != nil {
		return 0, err
	}
	return store.CountDocuments(ctx, CollectionTestimonial, Filter{})
}
