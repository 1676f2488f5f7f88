package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teylo/teylo-backend/internal/gamedesign"
	"github.com/teylo/teylo-backend/internal/projects/domain"
	projectrepo "github.com/teylo/teylo-backend/internal/projects/repository"
	projectservice "github.com/teylo/teylo-backend/internal/projects/service"
)

func TestProjectService_CreateFromPrompt(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	repo := projectrepo.NewProjectRepository(client)
	service := projectservice.NewProjectService(repo, nil)

	t.Run("creates draft with coerced design document", func(t *testing.T) {
		project, err := service.CreateFromPrompt(ctx, "user-1", "", "a zombie shooter in a mall")
		require.NoError(t, err)

		assert.NotEmpty(t, project.ID)
		assert.Equal(t, "user-1", project.UserID)
		assert.Equal(t, domain.StatusDraft, project.Status)
		assert.Equal(t, gamedesign.CategoryFPS, project.Category)
		assert.Equal(t, "a zombie shooter in a mall", project.OriginalPrompt)

		require.NotNil(t, project.DesignDocument)
		assert.NotEmpty(t, project.DesignDocument.GameName)
		assert.NotEmpty(t, project.DesignDocument.Mechanics)
		assert.NotEmpty(t, project.DesignDocument.Levels)
		assert.NotEmpty(t, project.DesignDocument.Assets["environment"])
	})

	t.Run("uses explicit name when given", func(t *testing.T) {
		project, err := service.CreateFromPrompt(ctx, "user-1", "Mall Mayhem", "a zombie shooter in a mall")
		require.NoError(t, err)
		assert.Equal(t, "Mall Mayhem", project.Name)
		assert.Equal(t, "Mall Mayhem", project.DesignDocument.GameName)
	})

	t.Run("derives name from design when absent", func(t *testing.T) {
		project, err := service.CreateFromPrompt(ctx, "user-1", "", "street racing at night")
		require.NoError(t, err)
		assert.NotEmpty(t, project.Name)
		assert.Equal(t, project.DesignDocument.GameName, project.Name)
	})
}

func TestProjectService_Lifecycle(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	repo := projectrepo.NewProjectRepository(client)
	service := projectservice.NewProjectService(repo, nil)

	t.Run("list returns only the owner's projects", func(t *testing.T) {
		_, err := service.CreateFromPrompt(ctx, "owner-a", "", "a puzzle about mirrors")
		require.NoError(t, err)
		_, err = service.CreateFromPrompt(ctx, "owner-a", "", "a racing game")
		require.NoError(t, err)
		_, err = service.CreateFromPrompt(ctx, "owner-b", "", "an adventure quest")
		require.NoError(t, err)

		listA, err := service.List(ctx, "owner-a")
		require.NoError(t, err)
		assert.Len(t, listA, 2)

		listB, err := service.List(ctx, "owner-b")
		require.NoError(t, err)
		assert.Len(t, listB, 1)
	})

	t.Run("rename updates the display name", func(t *testing.T) {
		project, err := service.CreateFromPrompt(ctx, "owner-c", "", "a puzzle about pipes")
		require.NoError(t, err)

		renamed, err := service.Rename(ctx, project.ID, "Pipe Dreams")
		require.NoError(t, err)
		assert.Equal(t, "Pipe Dreams", renamed.Name)

		fetched, err := service.Get(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pipe Dreams", fetched.Name)
	})

	t.Run("delete removes the project", func(t *testing.T) {
		project, err := service.CreateFromPrompt(ctx, "owner-d", "", "a platformer with a fox")
		require.NoError(t, err)

		require.NoError(t, service.Delete(ctx, project.ID))

		_, err = service.Get(ctx, project.ID)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)

		list, err := service.List(ctx, "owner-d")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("get unknown project returns not found", func(t *testing.T) {
		_, err := service.Get(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})
}

func TestStatusTransitions(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	repo := projectrepo.NewProjectRepository(client)
	service := projectservice.NewProjectService(repo, nil)

	project, err := service.CreateFromPrompt(ctx, "user-1", "", "an adventure quest")
	require.NoError(t, err)

	t.Run("forward transitions succeed", func(t *testing.T) {
		for _, status := range []string{
			domain.StatusProcessing,
			domain.StatusBuilding,
			domain.StatusPreview,
			domain.StatusComplete,
		} {
			_, err := repo.SetStatus(ctx, project.ID, status)
			require.NoError(t, err, "transition to %s", status)
		}
	})

	t.Run("returning to draft is rejected", func(t *testing.T) {
		_, err := repo.SetStatus(ctx, project.ID, domain.StatusDraft)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := repo.SetStatus(ctx, project.ID, "archived")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}
