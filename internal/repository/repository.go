// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ============================================
// Collections
// ============================================

const (
	CollectionInquiry     = "inquiry"
	CollectionProject     = "project"
	CollectionTestimonial = "testimonial"
)

// Collections lists every collection this service reads or writes, in schema order.
var Collections = []string{CollectionInquiry, CollectionProject, CollectionTestimonial}

var (
	ErrUnavailable       = errors.New("document store unavailable")
	ErrUnknownCollection = errors.New("unknown collection")
)

// KnownCollection reports whether name is one of Collections.
func KnownCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}

// CheckCollection rejects names outside Collections before a store touches them.
func CheckCollection(name string) error {
	if !KnownCollection(name) {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, name)
	}
	return nil
}

// ============================================
// Document Store
// ============================================

// Document is one stored record. The store-assigned identifier lives under IDField
// in whatever native form the backend uses.
type Document map[string]any

// Filter is an equality filter over top-level document fields. Empty matches everything.
type Filter map[string]any

const (
	IDField        = "_id"
	CreatedAtField = "created_at"
	UpdatedAtField = "updated_at"
)

// DocumentStore is the persistence facade over a document database.
type DocumentStore interface {
	// CreateDocument inserts doc into collection and returns the new identifier as a string.
	// created_at and updated_at are stamped into doc before the insert.
	CreateDocument(ctx context.Context, collection string, doc Document) (string, error)
	// GetDocuments returns every document in collection matching filter, in store order.
	GetDocuments(ctx context.Context, collection string, filter Filter) ([]Document, error)
	CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error)
	ListCollections(ctx context.Context) ([]string, error)
	Name() string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// StampTimestamps sets created_at and updated_at on doc.
func StampTimestamps(doc Document, now time.Time) {
	now = now.UTC()
	doc[CreatedAtField] = now
	doc[UpdatedAtField] = now
}

// ============================================
// Database
// ============================================

// Database is either connected to a DocumentStore or unavailable with a reason.
// It is decided once at process start.
type Database struct {
	store  DocumentStore
	reason error
}

func Connected(store DocumentStore) *Database {
	return &Database{store: store}
}

func Unavailable(reason error) *Database {
	if reason == nil {
		reason = ErrUnavailable
	}
	return &Database{reason: reason}
}

func (d *Database) Available() bool {
	return d != nil && d.store != nil
}

// Store returns the connected store, or an error wrapping ErrUnavailable.
func (d *Database) Store() (DocumentStore, error) {
	if !d.Available() {
		return nil, ErrUnavailable
	}
	return d.store, nil
}

// Reason explains why the database is unavailable. Nil when connected.
func (d *Database) Reason() error {
	if d.Available() {
		return nil
	}
	if d == nil {
		return ErrUnavailable
	}
	return d.reason
}

func (d *Database) Close(ctx context.Context) error {
	if !d.Available() {
		return nil
	}
	return d.store.Close(ctx)
}
