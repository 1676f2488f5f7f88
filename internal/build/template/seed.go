package template

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/teylo/teylo-backend/internal/gamedesign"
)

type seedTemplate struct {
	name        string
	description string
	category    gamedesign.Category
	features    []Feature
}

var defaultTemplates = []seedTemplate{
	{
		name:        "FPS Template",
		description: "A first-person shooter template with basic shooting mechanics",
		category:    gamedesign.CategoryFPS,
		features: []Feature{
			{Name: "First Person Controller", Description: "Character controller with camera"},
			{Name: "Weapon System", Description: "Basic weapon system with reloading"},
			{Name: "Enemy AI", Description: "Simple enemy AI with pathfinding"},
		},
	},
	{
		name:        "Adventure Template",
		description: "A third-person adventure template with exploration mechanics",
		category:    gamedesign.CategoryAdventure,
		features: []Feature{
			{Name: "Third Person Controller", Description: "Character controller with camera"},
			{Name: "Inventory System", Description: "Basic inventory for items"},
			{Name: "Dialog System", Description: "Simple dialog system for NPCs"},
		},
	},
	{
		name:        "Puzzle Template",
		description: "A puzzle game template with basic interaction mechanics",
		category:    gamedesign.CategoryPuzzle,
		features: []Feature{
			{Name: "Puzzle Framework", Description: "Core puzzle mechanics"},
			{Name: "Interaction System", Description: "System for interacting with objects"},
			{Name: "Hint System", Description: "Basic hint system for puzzles"},
		},
	},
	{
		name:        "Racing Template",
		description: "A racing game template with vehicle physics",
		category:    gamedesign.CategoryRacing,
		features: []Feature{
			{Name: "Vehicle Physics", Description: "Realistic vehicle physics"},
			{Name: "Track System", Description: "Track with checkpoints"},
			{Name: "Race Manager", Description: "System for managing races"},
		},
	},
	{
		name:        "Platformer Template",
		description: "A 2D platformer template with basic movement mechanics",
		category:    gamedesign.CategoryPlatformer,
		features: []Feature{
			{Name: "Character Controller", Description: "2D character controller with jumping"},
			{Name: "Collectible System", Description: "System for collecting items"},
			{Name: "Level Manager", Description: "System for managing levels"},
		},
	},
}

// EnsureDefaultTemplates seeds stub template projects when the templates root
// is empty, so a fresh install can run builds immediately. Called once at
// process start; the resolver itself never creates templates.
func EnsureDefaultTemplates(templatesDir string) error {
	if err := os.MkdirAll(templatesDir, 0o755); err != nil {
		return fmt.Errorf("create templates root: %w", err)
	}

	entries, err := os.ReadDir(templatesDir)
	if err != nil {
		return fmt.Errorf("read templates root: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			// At least one template already present; leave the root alone.
			return nil
		}
	}

	log.Println("No templates found, seeding default templates")

	for _, tpl := range defaultTemplates {
		dir := filepath.Join(templatesDir, categoryDirs[tpl.category])
		if err := seedTemplateDir(dir, tpl); err != nil {
			return fmt.Errorf("seed template %s: %w", tpl.name, err)
		}
	}

	log.Printf("Seeded %d default templates in %s", len(defaultTemplates), templatesDir)
	return nil
}

func seedTemplateDir(dir string, tpl seedTemplate) error {
	scriptsDir := filepath.Join(dir, "Assets", "Scripts")
	if err := os.MkdirAll(scriptsDir, 0o755); err != nil {
		return err
	}

	readme := fmt.Sprintf("# %s Template\n\nStub Unity project for %s games.\n",
		strings.ToUpper(string(tpl.category)), tpl.category)
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(readme), 0o644); err != nil {
		return err
	}

	for filename, content := range stubScripts(tpl.category) {
		if err := os.WriteFile(filepath.Join(scriptsDir, filename), []byte(content), 0o644); err != nil {
			return err
		}
	}

	return writeManifest(dir, &Manifest{
		Name:        tpl.name,
		Description: tpl.description,
		Type:        string(tpl.category),
		Features:    tpl.features,
	})
}

func stubScripts(category gamedesign.Category) map[string]string {
	scripts := map[string]string{
		"GameManager.cs": stubScript("GameManager", "Common game management code"),
		"UIManager.cs":   stubScript("UIManager", "UI management code"),
	}

	switch category {
	case gamedesign.CategoryFPS:
		scripts["PlayerController.cs"] = stubScript("PlayerController", "FPS player controller code")
		scripts["WeaponSystem.cs"] = stubScript("WeaponSystem", "Weapon system code")
	case gamedesign.CategoryAdventure:
		scripts["ThirdPersonController.cs"] = stubScript("ThirdPersonController", "Third-person controller code")
		scripts["InventorySystem.cs"] = stubScript("InventorySystem", "Inventory system code")
	case gamedesign.CategoryPuzzle:
		scripts["PuzzleManager.cs"] = stubScript("PuzzleManager", "Puzzle management code")
		scripts["InteractionSystem.cs"] = stubScript("InteractionSystem", "Interaction system code")
	case gamedesign.CategoryRacing:
		scripts["VehicleController.cs"] = stubScript("VehicleController", "Vehicle controller code")
		scripts["RaceManager.cs"] = stubScript("RaceManager", "Race management code")
	case gamedesign.CategoryPlatformer:
		scripts["PlatformerController.cs"] = stubScript("PlatformerController", "2D platformer controller code")
		scripts["LevelManager.cs"] = stubScript("LevelManager", "Level management code")
	}

	return scripts
}

func stubScript(className, comment string) string {
	return fmt.Sprintf(`using UnityEngine;

public class %s : MonoBehaviour
{
    // %s
}
`, className, comment)
}
