package unit

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/teylo/teylo-backend/internal/build/domain"
	"github.com/teylo/teylo-backend/internal/build/scripts"
	"github.com/teylo/teylo-backend/internal/gamedesign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatorInput(category gamedesign.Category) scripts.Input {
	return scripts.Input{
		ProjectID: "project-1",
		Category:  category,
		Design: &gamedesign.DesignDocument{
			GameName:    "Zombie Siege",
			Description: "Survive the horde",
			Genre:       "First-Person Shooter",
			Mechanics:   []string{"shooting"},
		},
		Assets: []domain.AssetDescriptor{
			{Name: "Skybox", Category: "environment", ProjectPath: filepath.Join("Assets", "Skybox.mat")},
		},
	}
}

func TestGenerate(t *testing.T) {
	t.Run("includes common files for every category", func(t *testing.T) {
		out, err := scripts.Generate(generatorInput(gamedesign.CategoryPuzzle))
		require.NoError(t, err)

		assert.Contains(t, out, filepath.Join("Assets", "Scripts", "GameManager.cs"))
		assert.Contains(t, out, filepath.Join("Assets", "Scripts", "UIManager.cs"))
		assert.Contains(t, out, filepath.Join("Assets", "Editor", "BuildScript.cs"))
		assert.Contains(t, out, filepath.Join("Assets", "Resources", "GameConfig.json"))
	})

	t.Run("embeds design fields in game manager", func(t *testing.T) {
		out, err := scripts.Generate(generatorInput(gamedesign.CategoryFPS))
		require.NoError(t, err)

		gm := out[filepath.Join("Assets", "Scripts", "GameManager.cs")]
		assert.Contains(t, gm, `public string gameName = "Zombie Siege";`)
		assert.Contains(t, gm, `public string gameDescription = "Survive the horde";`)
		assert.Contains(t, gm, `public string gameGenre = "First-Person Shooter";`)
	})

	t.Run("category selects its scripts", func(t *testing.T) {
		cases := map[gamedesign.Category][]string{
			gamedesign.CategoryFPS:        {"PlayerController.cs", "EnemyController.cs"},
			gamedesign.CategoryAdventure:  {"ThirdPersonController.cs", "InteractionSystem.cs"},
			gamedesign.CategoryPuzzle:     {"PuzzleManager.cs", "InteractablePuzzle.cs"},
			gamedesign.CategoryRacing:     {"VehicleController.cs", "RaceManager.cs"},
			gamedesign.CategoryPlatformer: {"PlatformerController.cs", "Collectible.cs"},
			gamedesign.CategoryOther:      {"GenericController.cs"},
		}

		for category, files := range cases {
			out, err := scripts.Generate(generatorInput(category))
			require.NoError(t, err)
			for _, f := range files {
				assert.Contains(t, out, filepath.Join("Assets", "Scripts", f),
					"category %s should generate %s", category, f)
			}
		}
	})

	t.Run("game config is valid json", func(t *testing.T) {
		out, err := scripts.Generate(generatorInput(gamedesign.CategoryRacing))
		require.NoError(t, err)

		var cfg map[string]interface{}
		raw := out[filepath.Join("Assets", "Resources", "GameConfig.json")]
		require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
		assert.Equal(t, "project-1", cfg["gameId"])
		assert.Equal(t, "Zombie Siege", cfg["name"])
		assert.Equal(t, "racing", cfg["type"])

		assets, ok := cfg["assets"].([]interface{})
		require.True(t, ok)
		require.Len(t, assets, 1)
		assert.Equal(t, "Skybox", assets[0].(map[string]interface{})["name"])
	})

	t.Run("nil design is rejected", func(t *testing.T) {
		_, err := scripts.Generate(scripts.Input{ProjectID: "p", Category: gamedesign.CategoryFPS})
		assert.Error(t, err)
	})

	t.Run("same input gives same output", func(t *testing.T) {
		first, err := scripts.Generate(generatorInput(gamedesign.CategoryPlatformer))
		require.NoError(t, err)
		second, err := scripts.Generate(generatorInput(gamedesign.CategoryPlatformer))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestEscapeCSharpString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
		{"line1\nline2", `line1\nline2`},
		{"tab\there", `tab\there`},
		{"cr\rhere", `cr\rhere`},
		{`mix "a\b"` + "\n", `mix \"a\\b\"\n`},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, scripts.EscapeCSharpString(c.in))
	}
}
