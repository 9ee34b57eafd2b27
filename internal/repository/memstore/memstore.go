// Package memstore is an in-process DocumentStore. It backs DATABASE_URL=memory://
// for local runs and stands in for a real database in tests.
package memstore

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/google/uuid"
)

type Store struct {
	name string

	mu          sync.RWMutex
	collections map[string][]repository.Document
	createErr   error
	readErr     error
	inserts     int
	now         func() time.Time
}

func New(name string) *Store {
	return &Store{
		name:        name,
		collections: make(map[string][]repository.Document),
		now:         time.Now,
	}
}

// FailCreates makes every subsequent insert return err. Nil clears it.
func (s *Store) FailCreates(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createErr = err
}

// FailReads makes every subsequent read, count and listing return err. Nil clears it.
func (s *Store) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

// Inserts is the number of successful inserts so far.
func (s *Store) Inserts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inserts
}

func (s *Store) CreateDocument(ctx context.Context, collection string, doc repository.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := repository.CheckCollection(collection); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return "", s.createErr
	}

	repository.StampTimestamps(doc, s.now())
	id := uuid.NewString()

	stored := clone(doc)
	stored[repository.IDField] = id
	s.collections[collection] = append(s.collections[collection], stored)
	s.inserts++
	return id, nil
}

func (s *Store) GetDocuments(ctx context.Context, collection string, filter repository.Filter) ([]repository.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := repository.CheckCollection(collection); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.readErr != nil {
		return nil, s.readErr
	}

	out := make([]repository.Document, 0)
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			out = append(out, clone(doc))
		}
	}
	return out, nil
}

func (s *Store) CountDocuments(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	docs, err := s.GetDocuments(ctx, collection, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.readErr != nil {
		return nil, s.readErr
	}

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Name() string { return s.name }

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readErr
}

func (s *Store) Close(ctx context.Context) error { return nil }

func matches(doc repository.Document, filter repository.Filter) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func clone(doc repository.Document) repository.Document {
	out := make(repository.Document, len(doc))
	for k, v := range doc {
		if list, ok := v.([]string); ok {
			v = append([]string(nil), list...)
		}
		out[k] = v
	}
	return out
}
