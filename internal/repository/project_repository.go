package repository

import (
	"context"
	"time"
)

type Project struct {
	ID           string
	Title        string
	Niche        string
	Description  string
	Tools        []string
	VideoURL     *string
	ThumbnailURL *string
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	// Find returns projects in the given niche, or all projects when niche is empty.
	Find(ctx context.Context, niche string) ([]*Project, error)
	Count(ctx context.Context) (int64, error)
}

type documentProjectRepository struct {
	db *Database
}

func NewProjectRepository(db *Database) ProjectRepository {
	return &documentProjectRepository{db: db}
}

func (r *documentProjectRepository) Create(ctx context.Context, project *Project) error {
	store, err := r.db.Store()
	if err != nil {
		return err
	}

	doc := project.toDocument()
	id, err := store.CreateDocument(ctx, CollectionProject, doc)
	if err != nil {
		return err
	}
	project.ID = id
	project.CreatedAt = doc.GetTime(CreatedAtField)
	project.UpdatedAt = doc.GetTime(UpdatedAtField)
	return nil
}

func (r *documentProjectRepository) Find(ctx context.Context, niche string) ([]*Project, error) {
	store, err := r.db.Store()
	if err != nil {
		return nil, err
	}

	filter := Filter{}
	if niche != "" {
		filter["niche"] = niche
	}

	docs, err := store.GetDocuments(ctx, CollectionProject, filter)
	if err != nil {
		return nil, err
	}

	projects := make([]*Project, 0, len(docs))
	for _, d := range docs {
		projects = append(projects, projectFromDocument(d))
	}
	return projects, nil
}

func (r *documentProjectRepository) Count(ctx context.Context) (int64, error) {
	store, err := r.db.Store()
	if err != nil {
		return 0, err
	}
	return store.CountDocuments(ctx, CollectionProject, Filter{})
}

func (p *Project) toDocument() Document {
	tools := p.Tools
	if tools == nil {
		tools = []string{}
	}
	return Document{
		"title":         p.Title,
		"niche":         p.Niche,
		"description":   p.Description,
		"tools":         tools,
		"video_url":     optional(p.VideoURL),
		"thumbnail_url": optional(p.ThumbnailURL),
	}
}

func projectFromDocument(d Document) *Project {
	return &Project{
		ID:           d.ID(),
		Title:        d.GetString("title"),
		Niche:        d.GetString("niche"),
		Description:  d.GetString("description"),
		Tools:        d.GetStrings("tools"),
		VideoURL:     d.GetStringPtr("video_url"),
		ThumbnailURL: d.GetStringPtr("thumbnail_url"),
		CreatedAt:    d.GetTime(CreatedAtField),
		UpdatedAt:    d.GetTime(UpdatedAtField),
	}
}
