package scripts

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/teylo/teylo-backend/internal/build/domain"
	"github.com/teylo/teylo-backend/internal/gamedesign"
)

// Input carries everything script generation needs. The generator is pure:
// same input, same output, no filesystem access.
type Input struct {
	ProjectID string
	Category  gamedesign.Category
	Design    *gamedesign.DesignDocument
	Assets    []domain.AssetDescriptor
}

// Generate returns the C# sources and config files for a staged project,
// keyed by path relative to the project root.
func Generate(in Input) (map[string]string, error) {
	if in.Design == nil {
		return nil, fmt.Errorf("generate scripts: design document is nil")
	}

	out := map[string]string{
		filepath.Join("Assets", "Scripts", "GameManager.cs"): gameManager(in),
		filepath.Join("Assets", "Scripts", "UIManager.cs"):   uiManagerScript,
		filepath.Join("Assets", "Editor", "BuildScript.cs"):  buildScript,
	}

	for name, src := range categoryScripts(in.Category) {
		out[filepath.Join("Assets", "Scripts", name)] = src
	}

	cfg, err := gameConfig(in)
	if err != nil {
		return nil, err
	}
	out[filepath.Join("Assets", "Resources", "GameConfig.json")] = cfg

	return out, nil
}

// EscapeCSharpString makes s safe to embed inside a double-quoted C# string
// literal.
func EscapeCSharpString(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return r.Replace(s)
}

func gameManager(in Input) string {
	return fmt.Sprintf(`using UnityEngine;
using UnityEngine.UI;
using System.Collections;
using System.Collections.Generic;

public class GameManager : MonoBehaviour
{
    public static GameManager Instance { get; private set; }

    [Header("Game Information")]
    public string gameName = "%s";
    public string gameDescription = "%s";
    public string gameGenre = "%s";

    [Header("UI References")]
    public Text gameNameText;
    public Text gameDescriptionText;

    private void Awake()
    {
        if (Instance == null)
        {
            Instance = this;
            DontDestroyOnLoad(gameObject);
        }
        else
        {
            Destroy(gameObject);
        }
    }

    private void Start()
    {
        Debug.Log("Game initialized: " + gameName);
        InitializeUI();
%s
    }

    private void InitializeUI()
    {
        if (gameNameText != null)
        {
            gameNameText.text = gameName;
        }

        if (gameDescriptionText != null)
        {
            gameDescriptionText.text = gameDescription;
        }
    }
}
`,
		EscapeCSharpString(in.Design.GameName),
		EscapeCSharpString(in.Design.Description),
		EscapeCSharpString(in.Design.Genre),
		categoryInit(in.Category),
	)
}

func categoryInit(category gamedesign.Category) string {
	switch category {
	case gamedesign.CategoryFPS:
		return `        Debug.Log("Initializing FPS game elements");`
	case gamedesign.CategoryAdventure:
		return `        Debug.Log("Initializing adventure game elements");`
	case gamedesign.CategoryPuzzle:
		return `        Debug.Log("Initializing puzzle game elements");`
	case gamedesign.CategoryRacing:
		return `        Debug.Log("Initializing racing game elements");`
	case gamedesign.CategoryPlatformer:
		return `        Debug.Log("Initializing platformer game elements");`
	default:
		return `        Debug.Log("Initializing game elements");`
	}
}

func categoryScripts(category gamedesign.Category) map[string]string {
	switch category {
	case gamedesign.CategoryFPS:
		return map[string]string{
			"PlayerController.cs": fpsPlayerControllerScript,
			"EnemyController.cs":  fpsEnemyControllerScript,
		}
	case gamedesign.CategoryAdventure:
		return map[string]string{
			"ThirdPersonController.cs": adventureControllerScript,
			"InteractionSystem.cs":     adventureInteractionScript,
		}
	case gamedesign.CategoryPuzzle:
		return map[string]string{
			"PuzzleManager.cs":      puzzleManagerScript,
			"InteractablePuzzle.cs": puzzleInteractableScript,
		}
	case gamedesign.CategoryRacing:
		return map[string]string{
			"VehicleController.cs": racingVehicleScript,
			"RaceManager.cs":       racingManagerScript,
		}
	case gamedesign.CategoryPlatformer:
		return map[string]string{
			"PlatformerController.cs": platformerControllerScript,
			"Collectible.cs":          platformerCollectibleScript,
		}
	default:
		return map[string]string{
			"GenericController.cs": genericControllerScript,
		}
	}
}

// gameConfig serializes the design document snapshot loaded by the game at
// runtime from Assets/Resources.
func gameConfig(in Input) (string, error) {
	cfg := struct {
		GameID      string                 `json:"gameId"`
		Name        string                 `json:"name"`
		Type        gamedesign.Category    `json:"type"`
		Description string                 `json:"description"`
		Genre       string                 `json:"genre"`
		Setting     gamedesign.Setting     `json:"setting"`
		Characters  []gamedesign.Character `json:"characters"`
		Mechanics   []string               `json:"mechanics"`
		Levels      []gamedesign.Level     `json:"levels"`
		Assets      []configAsset          `json:"assets"`
	}{
		GameID:      in.ProjectID,
		Name:        in.Design.GameName,
		Type:        in.Category,
		Description: in.Design.Description,
		Genre:       in.Design.Genre,
		Setting:     in.Design.Setting,
		Characters:  in.Design.Characters,
		Mechanics:   in.Design.Mechanics,
		Levels:      in.Design.Levels,
		Assets:      configAssets(in.Assets),
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal game config: %w", err)
	}
	return string(b), nil
}

type configAsset struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Path     string `json:"path"`
}

func configAssets(assets []domain.AssetDescriptor) []configAsset {
	out := make([]configAsset, 0, len(assets))
	for _, a := range assets {
		out = append(out, configAsset{Name: a.Name, Category: a.Category, Path: a.ProjectPath})
	}
	return out
}
