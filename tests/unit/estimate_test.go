package unit

import (
	"testing"

	builddomain "github.com/teylo/teylo-backend/internal/build/domain"
	buildservice "github.com/teylo/teylo-backend/internal/build/service"
	"github.com/teylo/teylo-backend/internal/gamedesign"
	"github.com/stretchr/testify/assert"
)

func TestEstimateBuildTime(t *testing.T) {
	t.Run("puzzle game with small config", func(t *testing.T) {
		cfg := builddomain.BuildConfig{
			Category: gamedesign.CategoryPuzzle,
			Design: &gamedesign.DesignDocument{
				Mechanics: []string{"match", "rotate", "undo"},
				Levels: []gamedesign.Level{
					{Name: "Level 1"},
					{Name: "Level 2"},
				},
			},
			Assets: []builddomain.AssetDescriptor{
				{Name: "Board"},
				{Name: "Menu"},
			},
		}

		// 30 base + 2 assets*2 + 3 mechanics*3 + 2 levels*5 + 15 puzzle
		got := buildservice.EstimateBuildTime(cfg)
		assert.Equal(t, 68, got)
	})

	t.Run("counts resolved assets, not the design asset map", func(t *testing.T) {
		doc := gamedesign.Coerce(&gamedesign.DesignDocument{
			Mechanics: []string{"match", "rotate", "undo"},
			Levels: []gamedesign.Level{
				{Name: "Level 1"},
				{Name: "Level 2"},
			},
		}, gamedesign.CategoryPuzzle, "Gem Swap", "a puzzle game")

		cfg := builddomain.BuildConfig{
			Category: gamedesign.CategoryPuzzle,
			Design:   doc,
			Assets: []builddomain.AssetDescriptor{
				{Name: "Board"},
				{Name: "Menu"},
			},
		}

		// Coercion pads the document's asset map with defaults. Only the two
		// resolved assets may count toward the estimate.
		got := buildservice.EstimateBuildTime(cfg)
		assert.Equal(t, 68, got)
	})

	t.Run("empty config uses base plus category overhead", func(t *testing.T) {
		got := buildservice.EstimateBuildTime(builddomain.BuildConfig{Category: gamedesign.CategoryFPS})
		assert.Equal(t, 50, got)
	})

	t.Run("nil design does not panic", func(t *testing.T) {
		got := buildservice.EstimateBuildTime(builddomain.BuildConfig{Category: gamedesign.CategoryAdventure})
		assert.Equal(t, 55, got)
	})

	t.Run("unknown category gets default overhead", func(t *testing.T) {
		got := buildservice.EstimateBuildTime(builddomain.BuildConfig{Category: gamedesign.CategoryOther})
		assert.Equal(t, 40, got)
	})

	t.Run("larger config estimates longer", func(t *testing.T) {
		small := builddomain.BuildConfig{
			Category: gamedesign.CategoryRacing,
			Design:   &gamedesign.DesignDocument{Mechanics: []string{"a"}},
		}
		large := builddomain.BuildConfig{
			Category: gamedesign.CategoryRacing,
			Design:   &gamedesign.DesignDocument{Mechanics: []string{"a", "b", "c", "d"}},
			Assets:   []builddomain.AssetDescriptor{{Name: "Track"}},
		}

		assert.Greater(t,
			buildservice.EstimateBuildTime(large),
			buildservice.EstimateBuildTime(small),
		)
	})
}
