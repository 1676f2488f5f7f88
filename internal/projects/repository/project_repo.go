package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/teylo/teylo-backend/internal/projects/domain"
)

const (
	projectKeyPrefix     = "game:project:" // Key for project data: game:project:{project_id}
	userProjectSetPrefix = "game:user:"    // Set of project IDs for a user: game:user:{user_id}:projects
)

// ProjectRepository handles Redis operations for projects. Projects are
// stored as JSON documents keyed by ID, with a per-user set as the index.
type ProjectRepository struct {
	client *redis.Client
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(client *redis.Client) *ProjectRepository {
	return &ProjectRepository{client: client}
}

// Create persists a new project
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}
	project.UpdatedAt = time.Now()

	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.projectKey(project.ID), data, 0)
	pipe.SAdd(ctx, r.userProjectSetKey(project.UserID), project.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by its ID
func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	data, err := r.client.Get(ctx, r.projectKey(projectID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var project domain.Project
	if err := json.Unmarshal([]byte(data), &project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}

	return &project, nil
}

// Update rewrites an existing project document
func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if _, err := r.GetByID(ctx, project.ID); err != nil {
		return err
	}

	project.UpdatedAt = time.Now()

	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	if err := r.client.Set(ctx, r.projectKey(project.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// SetStatus updates only the lifecycle status of a project, enforcing the
// transition rules.
func (r *ProjectRepository) SetStatus(ctx context.Context, projectID, status string) (*domain.Project, error) {
	project, err := r.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !domain.IsValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	if !domain.CanTransition(project.Status, status) {
		return nil, domain.ErrInvalidTransition
	}

	project.Status = status
	if err := r.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// AppendLog appends lines to the project's build log without replacing
// existing entries.
func (r *ProjectRepository) AppendLog(ctx context.Context, projectID string, lines ...string) error {
	project, err := r.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	if project.BuildInfo == nil {
		project.BuildInfo = &domain.BuildInfo{}
	}
	project.BuildInfo.Logs = append(project.BuildInfo.Logs, lines...)

	return r.Update(ctx, project)
}

// ListByUserID retrieves all project IDs for a user
func (r *ProjectRepository) ListByUserID(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.userProjectSetKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for user: %w", err)
	}
	return ids, nil
}

// Delete removes a project and its index entry
func (r *ProjectRepository) Delete(ctx context.Context, projectID string) error {
	project, err := r.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.projectKey(projectID))
	pipe.SRem(ctx, r.userProjectSetKey(project.UserID), projectID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

func (r *ProjectRepository) projectKey(projectID string) string {
	return fmt.Sprintf("%s%s", projectKeyPrefix, projectID)
}

func (r *ProjectRepository) userProjectSetKey(userID string) string {
	return fmt.Sprintf("%s%s:projects", userProjectSetPrefix, userID)
}
