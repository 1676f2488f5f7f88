package service

import (
	"context"
	"log"

	"github.com/teylo/teylo-backend/internal/gamedesign"
	"github.com/teylo/teylo-backend/internal/projects/domain"
	"github.com/teylo/teylo-backend/internal/projects/repository"
)

// JobCleaner removes a build job and its staging directory. Implemented by
// the build orchestrator; declared here so project deletion can request
// cleanup without depending on the build package.
type JobCleaner interface {
	Delete(ctx context.Context, jobID string) error
}

// ProjectService handles project-related business logic
type ProjectService struct {
	repo     *repository.ProjectRepository
	producer gamedesign.Producer
	fallback *gamedesign.FallbackProducer
	cleaner  JobCleaner
}

// NewProjectService creates a new project service. producer may be nil, in
// which case every design document comes from the deterministic fallback.
func NewProjectService(repo *repository.ProjectRepository, producer gamedesign.Producer) *ProjectService {
	return &ProjectService{
		repo:     repo,
		producer: producer,
		fallback: gamedesign.NewFallbackProducer(),
	}
}

// SetJobCleaner wires the build-job cleanup hook. Set once at bootstrap.
func (s *ProjectService) SetJobCleaner(cleaner JobCleaner) {
	s.cleaner = cleaner
}

// CreateFromPrompt creates a new draft project from a free-text description.
// The design document is produced externally when a producer is configured;
// any producer failure degrades to the deterministic fallback so creation
// never fails because of the generator.
func (s *ProjectService) CreateFromPrompt(ctx context.Context, userID, name, prompt string) (*domain.Project, error) {
	category := gamedesign.DetectCategory(prompt)

	var doc *gamedesign.DesignDocument
	if s.producer != nil {
		generated, err := s.producer.Generate(ctx, prompt, category)
		if err != nil {
			log.Printf("[warn] operation=create_project design producer failed, using fallback: %v", err)
		} else {
			doc = generated
		}
	}
	if doc == nil {
		doc, _ = s.fallback.Generate(ctx, prompt, category)
	}

	doc = gamedesign.Coerce(doc, category, name, prompt)

	if name == "" {
		name = doc.GameName
	}

	project := &domain.Project{
		UserID:         userID,
		Name:           name,
		OriginalPrompt: prompt,
		Category:       category,
		Status:         domain.StatusDraft,
		DesignDocument: doc,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Get retrieves a project by ID
func (s *ProjectService) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.repo.GetByID(ctx, projectID)
}

// List returns all projects for a user
func (s *ProjectService) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	ids, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Project, 0, len(ids))
	for _, id := range ids {
		project, err := s.repo.GetByID(ctx, id)
		if err != nil {
			// Index entries can outlive documents; skip dangling IDs.
			continue
		}
		out = append(out, project)
	}
	return out, nil
}

// Rename updates a project's display name
func (s *ProjectService) Rename(ctx context.Context, projectID, newName string) (*domain.Project, error) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project.Name = newName
	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project. If the project has an associated build job, its
// cleanup is requested first; a cleanup failure does not block deletion.
func (s *ProjectService) Delete(ctx context.Context, projectID string) error {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	if s.cleaner != nil && project.BuildInfo != nil && project.BuildInfo.BuildID != "" {
		if err := s.cleaner.Delete(ctx, project.BuildInfo.BuildID); err != nil {
			log.Printf("[warn] operation=delete_project build cleanup failed for job %s: %v", project.BuildInfo.BuildID, err)
		}
	}

	return s.repo.Delete(ctx, projectID)
}
