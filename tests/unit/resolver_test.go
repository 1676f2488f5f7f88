package unit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/teylo/teylo-backend/internal/build/domain"
	"github.com/teylo/teylo-backend/internal/build/template"
	"github.com/teylo/teylo-backend/internal/gamedesign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver(t *testing.T) {
	t.Run("resolves mapped directory when present", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "fps"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(root, "puzzle"), 0o755))

		r := template.NewResolver(root)
		dir, err := r.Resolve(gamedesign.CategoryFPS)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "fps"), dir)
	})

	t.Run("adventure maps to 3d_game_kit", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "3d_game_kit"), 0o755))

		r := template.NewResolver(root)
		dir, err := r.Resolve(gamedesign.CategoryAdventure)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "3d_game_kit"), dir)
	})

	t.Run("falls back to any template when mapped one is missing", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "puzzle"), 0o755))

		r := template.NewResolver(root)
		dir, err := r.Resolve(gamedesign.CategoryRacing)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "puzzle"), dir)
	})

	t.Run("empty root is an error", func(t *testing.T) {
		r := template.NewResolver(t.TempDir())
		_, err := r.Resolve(gamedesign.CategoryFPS)
		assert.ErrorIs(t, err, domain.ErrNoTemplateAvailable)
	})

	t.Run("missing root is an error", func(t *testing.T) {
		r := template.NewResolver(filepath.Join(t.TempDir(), "nope"))
		_, err := r.Resolve(gamedesign.CategoryFPS)
		assert.ErrorIs(t, err, domain.ErrNoTemplateAvailable)
	})
}

func TestEnsureDefaultTemplates(t *testing.T) {
	t.Run("seeds stub templates into empty root", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, template.EnsureDefaultTemplates(root))

		for _, name := range []string{"fps", "3d_game_kit", "puzzle", "racing", "platformer"} {
			info, err := os.Stat(filepath.Join(root, name))
			require.NoError(t, err, "template %s", name)
			assert.True(t, info.IsDir())
		}

		m, err := template.LoadManifest(filepath.Join(root, "fps"))
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.NotEmpty(t, m.Name)
	})

	t.Run("leaves populated root untouched", func(t *testing.T) {
		root := t.TempDir()
		custom := filepath.Join(root, "custom")
		require.NoError(t, os.MkdirAll(custom, 0o755))

		require.NoError(t, template.EnsureDefaultTemplates(root))

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
