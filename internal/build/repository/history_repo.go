package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BuildRecord is the archived outcome of a finished build, kept in Postgres
// after the live Redis job may have been deleted.
type BuildRecord struct {
	ID            string     `json:"id"`
	JobID         string     `json:"job_id"`
	ProjectID     string     `json:"project_id"`
	Status        string     `json:"status"`
	EstimatedTime int        `json:"estimated_time"`
	BuildURL      string     `json:"build_url,omitempty"`
	Error         string     `json:"error,omitempty"`
	Logs          []string   `json:"logs,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// HistoryRepository handles PostgreSQL operations for the build archive
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// CreateOrUpdate archives a terminal build outcome.
// Uses ON CONFLICT to upsert based on job_id.
func (r *HistoryRepository) CreateOrUpdate(record *BuildRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO build_history (
			id, job_id, project_id, status, estimated_time,
			build_url, error, logs, started_at, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (job_id) DO UPDATE SET
			status = EXCLUDED.status,
			estimated_time = EXCLUDED.estimated_time,
			build_url = EXCLUDED.build_url,
			error = EXCLUDED.error,
			logs = EXCLUDED.logs,
			started_at = EXCLUDED.started_at,
			completed_at = EXCLUDED.completed_at,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	logsJSON, err := json.Marshal(record.Logs)
	if err != nil {
		logsJSON = []byte("[]")
	}

	var buildURL, errMsg sql.NullString
	if record.BuildURL != "" {
		buildURL = sql.NullString{String: record.BuildURL, Valid: true}
	}
	if record.Error != "" {
		errMsg = sql.NullString{String: record.Error, Valid: true}
	}

	var createdAt, updatedAt time.Time
	err = r.db.QueryRow(
		query,
		record.ID,
		record.JobID,
		record.ProjectID,
		record.Status,
		record.EstimatedTime,
		buildURL,
		errMsg,
		logsJSON,
		record.StartedAt,
		record.CompletedAt,
	).Scan(&createdAt, &updatedAt)

	if err != nil {
		return fmt.Errorf("failed to archive build record: %w", err)
	}

	record.CreatedAt = createdAt
	record.UpdatedAt = updatedAt

	return nil
}

// ListByProjectID returns the archived builds for a project, newest first.
func (r *HistoryRepository) ListByProjectID(projectID string) ([]BuildRecord, error) {
	query := `
		SELECT id, job_id, project_id, status, estimated_time,
		       build_url, error, logs, started_at, completed_at,
		       created_at, updated_at
		FROM build_history
		WHERE project_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query build history: %w", err)
	}
	defer rows.Close()

	var out []BuildRecord
	for rows.Next() {
		var rec BuildRecord
		var buildURL, errMsg sql.NullString
		var logsJSON []byte

		err := rows.Scan(
			&rec.ID, &rec.JobID, &rec.ProjectID, &rec.Status, &rec.EstimatedTime,
			&buildURL, &errMsg, &logsJSON, &rec.StartedAt, &rec.CompletedAt,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan build record: %w", err)
		}

		rec.BuildURL = buildURL.String
		rec.Error = errMsg.String
		if len(logsJSON) > 0 {
			if err := json.Unmarshal(logsJSON, &rec.Logs); err != nil {
				rec.Logs = nil
			}
		}

		out = append(out, rec)
	}

	return out, rows.Err()
}
