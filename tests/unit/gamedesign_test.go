package unit

import (
	"context"
	"testing"

	"github.com/teylo/teylo-backend/internal/gamedesign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCategory(t *testing.T) {
	cases := map[string]gamedesign.Category{
		"a zombie shooter in a mall":          gamedesign.CategoryFPS,
		"an epic adventure across the desert": gamedesign.CategoryAdventure,
		"a relaxing puzzle about pipes":       gamedesign.CategoryPuzzle,
		"street racing with fast cars":        gamedesign.CategoryRacing,
		"a 2d platform game with a fox":       gamedesign.CategoryPlatformer,
		"something about gardening":           gamedesign.CategoryAdventure,
	}

	for prompt, want := range cases {
		assert.Equal(t, want, gamedesign.DetectCategory(prompt), "prompt: %s", prompt)
	}
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, gamedesign.CategoryFPS, gamedesign.ParseCategory(" FPS "))
	assert.Equal(t, gamedesign.CategoryOther, gamedesign.ParseCategory("roguelike"))
	assert.Equal(t, gamedesign.CategoryOther, gamedesign.ParseCategory(""))
}

func TestCoerce(t *testing.T) {
	t.Run("nil document gets every default", func(t *testing.T) {
		doc := gamedesign.Coerce(nil, gamedesign.CategoryPuzzle, "", "a puzzle about mirrors")
		require.NotNil(t, doc)
		assert.NotEmpty(t, doc.GameName)
		assert.Equal(t, "a puzzle about mirrors", doc.Description)
		assert.NotEmpty(t, doc.Genre)
		assert.NotEmpty(t, doc.Characters)
		assert.NotEmpty(t, doc.Mechanics)
		assert.NotEmpty(t, doc.Levels)
		assert.NotEmpty(t, doc.UserInterface)

		for _, cat := range []string{"environment", "characters", "audio", "ui"} {
			assert.NotEmpty(t, doc.Assets[cat], "asset category %s", cat)
		}
	})

	t.Run("provided fields are kept", func(t *testing.T) {
		in := &gamedesign.DesignDocument{
			GameName:  "My Game",
			Genre:     "Racing Simulator",
			Mechanics: []string{"drifting"},
		}
		doc := gamedesign.Coerce(in, gamedesign.CategoryRacing, "ignored", "race the sun")
		assert.Equal(t, "My Game", doc.GameName)
		assert.Equal(t, "Racing Simulator", doc.Genre)
		assert.Equal(t, []string{"drifting"}, doc.Mechanics)
	})

	t.Run("explicit name wins over generated one", func(t *testing.T) {
		doc := gamedesign.Coerce(nil, gamedesign.CategoryFPS, "Siege Protocol", "a shooter")
		assert.Equal(t, "Siege Protocol", doc.GameName)
	})
}

func TestFallbackProducer(t *testing.T) {
	p := gamedesign.NewFallbackProducer()

	t.Run("produces a usable document", func(t *testing.T) {
		doc, err := p.Generate(context.Background(), "a zombie shooter in a mall", gamedesign.CategoryFPS)
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.NotEmpty(t, doc.GameName)
		assert.NotEmpty(t, doc.Mechanics)
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := p.Generate(context.Background(), "street racing at night", gamedesign.CategoryRacing)
		require.NoError(t, err)
		second, err := p.Generate(context.Background(), "street racing at night", gamedesign.CategoryRacing)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
