package service

import (
	"context"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/Marga-Ghale/portfolio-api/internal/seed"
)

// ============================================
// Project Service
// ============================================

type ProjectService interface {
	// List seeds the sample projects into an empty collection, then returns the
	// projects in niche (all when empty). An unavailable store yields an empty list.
	List(ctx context.Context, niche string) ([]*repository.Project, error)
}

type projectService struct {
	database    *repository.Database
	projectRepo repository.ProjectRepository
	cache       Cache
	cacheTTL    time.Duration
	seeder      *seeder
}

func NewProjectService(
	database *repository.Database,
	projectRepo repository.ProjectRepository,
	cache Cache,
	cacheTTL time.Duration,
	seeder *seeder,
) ProjectService {
	if seeder == nil {
		seeder = newSeeder(cache)
	}
	return &projectService{
		database:    database,
		projectRepo: projectRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		seeder:      seeder,
	}
}

func (s *projectService) List(ctx context.Context, niche string) ([]*repository.Project, error) {
	if !s.database.Available() {
		return []*repository.Project{}, nil
	}

	key := projectsCacheKey(niche)
	if s.cache != nil {
		var cached []*repository.Project
		if err := s.cache.GetCache(ctx, key, &cached); err == nil && cached != nil {
			return cached, nil
		}
	}

	if err := s.seeder.ensure(ctx, repository.CollectionProject, "projects:*", s.projectRepo.Count, s.seedProjects); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.Find(ctx, niche)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCache(ctx, key, projects, s.cacheTTL); err != nil {
			logger.Log.WithError(err).Warn("[Cache] Failed to cache projects")
		}
	}
	return projects, nil
}

func (s *projectService) seedProjects(ctx context.Context) (int, error) {
	inserted := 0
	for _, p := range seed.Projects() {
		if err := s.projectRepo.Create(ctx, p); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func projectsCacheKey(niche string) string {
	if niche == "" {
		return "projects:all"
	}
	return "projects:niche:" + niche
}
