package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/teylo/teylo-backend/internal/build/domain"
)

const (
	jobKeyPrefix        = "build:job:"     // Key for job data: build:job:{job_id}
	projectJobSetPrefix = "build:project:" // Set of job IDs for a project: build:project:{project_id}:jobs
)

// JobRepository handles Redis operations for build jobs. Jobs are JSON
// documents keyed by job ID; a per-project set indexes them. Records live
// until an explicit delete request.
type JobRepository struct {
	client *redis.Client
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(client *redis.Client) *JobRepository {
	return &JobRepository{client: client}
}

// Save persists a job, generating an ID if one is not set.
func (r *JobRepository) Save(ctx context.Context, job *domain.BuildJob) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.jobKey(job.ID), data, 0)
	pipe.SAdd(ctx, r.projectJobSetKey(job.ProjectID), job.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}

	return nil
}

// FindByID retrieves a job by its ID
func (r *JobRepository) FindByID(ctx context.Context, jobID string) (*domain.BuildJob, error) {
	data, err := r.client.Get(ctx, r.jobKey(jobID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job domain.BuildJob
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}

	return &job, nil
}

// Update rewrites an existing job document. The orchestrator is the only
// writer of job state, so a full-document write is safe.
func (r *JobRepository) Update(ctx context.Context, job *domain.BuildJob) error {
	if _, err := r.FindByID(ctx, job.ID); err != nil {
		return err
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := r.client.Set(ctx, r.jobKey(job.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	return nil
}

// ListByProjectID retrieves all job IDs for a project
func (r *JobRepository) ListByProjectID(ctx context.Context, projectID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.projectJobSetKey(projectID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs for project: %w", err)
	}
	return ids, nil
}

// Delete removes a job record and its index entry
func (r *JobRepository) Delete(ctx context.Context, jobID string) error {
	job, err := r.FindByID(ctx, jobID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.jobKey(jobID))
	pipe.SRem(ctx, r.projectJobSetKey(job.ProjectID), jobID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return nil
}

func (r *JobRepository) jobKey(jobID string) string {
	return fmt.Sprintf("%s%s", jobKeyPrefix, jobID)
}

func (r *JobRepository) projectJobSetKey(projectID string) string {
	return fmt.Sprintf("%s%s:jobs", projectJobSetPrefix, projectID)
}
