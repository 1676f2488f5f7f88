package unit

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/teylo/teylo-backend/internal/build/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHistoryRepo(t *testing.T) (*repository.HistoryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := repository.NewHistoryRepository(db)
	return repo, mock, db
}

func TestHistoryRepository_CreateOrUpdate(t *testing.T) {
	repo, mock, db := setupHistoryRepo(t)
	defer db.Close()

	t.Run("archives a completed build", func(t *testing.T) {
		started := time.Now().Add(-2 * time.Minute)
		completed := time.Now()
		record := &repository.BuildRecord{
			JobID:         "job-123",
			ProjectID:     "project-123",
			Status:        "completed",
			EstimatedTime: 68,
			BuildURL:      "http://localhost:8080/builds/job-123/webgl/index.html",
			Logs:          []string{"Build started", "Build completed"},
			StartedAt:     &started,
			CompletedAt:   &completed,
		}

		mock.ExpectQuery(`INSERT INTO build_history`).
			WithArgs(
				sqlmock.AnyArg(), // id (UUID)
				"job-123",
				"project-123",
				"completed",
				68,
				sqlmock.AnyArg(), // build_url
				sqlmock.AnyArg(), // error
				sqlmock.AnyArg(), // logs JSONB
				sqlmock.AnyArg(), // started_at
				sqlmock.AnyArg(), // completed_at
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
				AddRow(time.Now(), time.Now()))

		err := repo.CreateOrUpdate(record)
		require.NoError(t, err)
		assert.NotEmpty(t, record.ID)
		assert.False(t, record.CreatedAt.IsZero())
	})

	t.Run("archives a failed build with error", func(t *testing.T) {
		record := &repository.BuildRecord{
			JobID:     "job-456",
			ProjectID: "project-123",
			Status:    "failed",
			Error:     "no templates available",
		}

		mock.ExpectQuery(`INSERT INTO build_history`).
			WithArgs(
				sqlmock.AnyArg(),
				"job-456",
				"project-123",
				"failed",
				0,
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
				AddRow(time.Now(), time.Now()))

		err := repo.CreateOrUpdate(record)
		require.NoError(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_ListByProjectID(t *testing.T) {
	repo, mock, db := setupHistoryRepo(t)
	defer db.Close()

	t.Run("returns archived builds", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "job_id", "project_id", "status", "estimated_time",
			"build_url", "error", "logs", "started_at", "completed_at",
			"created_at", "updated_at",
		}).
			AddRow("rec-2", "job-2", "project-123", "completed", 68,
				"http://localhost/builds/job-2/webgl/index.html", nil, []byte(`["Build completed"]`),
				now, now, now, now).
			AddRow("rec-1", "job-1", "project-123", "failed", 50,
				nil, "engine timed out", []byte(`[]`), now, now, now, now)

		mock.ExpectQuery(`SELECT (.+) FROM build_history`).
			WithArgs("project-123").
			WillReturnRows(rows)

		records, err := repo.ListByProjectID("project-123")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "completed", records[0].Status)
		assert.Equal(t, []string{"Build completed"}, records[0].Logs)
		assert.Equal(t, "engine timed out", records[1].Error)
	})

	t.Run("returns empty list for unknown project", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM build_history`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "job_id", "project_id", "status", "estimated_time",
				"build_url", "error", "logs", "started_at", "completed_at",
				"created_at", "updated_at",
			}))

		records, err := repo.ListByProjectID("ghost")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
