package assets

import (
	"path/filepath"

	"github.com/teylo/teylo-backend/internal/build/domain"
	"github.com/teylo/teylo-backend/internal/gamedesign"
)

// The curated catalog: hand-authored, pre-vetted content shipped with every
// install. Inline placeholder bytes stand in for real binary content.

func commonAssets() []domain.AssetDescriptor {
	return []domain.AssetDescriptor{
		{
			Name:        "Skybox",
			Category:    "environment",
			Filename:    "skybox.jpg",
			Content:     []byte("PLACEHOLDER_SKYBOX_TEXTURE"),
			ProjectPath: filepath.Join("Assets", "environment", "skybox.jpg"),
		},
		{
			Name:        "Ground Texture",
			Category:    "environment",
			Filename:    "ground.jpg",
			Content:     []byte("PLACEHOLDER_GROUND_TEXTURE"),
			ProjectPath: filepath.Join("Assets", "environment", "ground.jpg"),
		},
		{
			Name:        "Simple UI Kit",
			Category:    "ui",
			Filename:    "simple_ui_kit.prefab",
			Content:     []byte("PLACEHOLDER_UI_KIT"),
			ProjectPath: filepath.Join("Assets", "ui", "simple_ui_kit.prefab"),
		},
		{
			Name:        "General Audio Pack",
			Category:    "audio",
			Filename:    "general_audio.wav",
			Content:     []byte("PLACEHOLDER_AUDIO_PACK"),
			ProjectPath: filepath.Join("Assets", "audio", "general_audio.wav"),
		},
	}
}

var categoryAssets = map[gamedesign.Category][]domain.AssetDescriptor{
	gamedesign.CategoryFPS: {
		{
			Name:        "First Person Controller",
			Category:    "characters",
			Filename:    "fps_controller.prefab",
			Content:     []byte("PLACEHOLDER_FPS_CONTROLLER"),
			ProjectPath: filepath.Join("Assets", "characters", "fps_controller.prefab"),
		},
		{
			Name:        "Zombie Character",
			Category:    "characters",
			Filename:    "zombie.fbx",
			Content:     []byte("PLACEHOLDER_ZOMBIE_MODEL"),
			ProjectPath: filepath.Join("Assets", "characters", "zombie.fbx"),
		},
		{
			Name:        "FPS Gun",
			Category:    "weapons",
			Filename:    "gun.fbx",
			Content:     []byte("PLACEHOLDER_GUN_MODEL"),
			ProjectPath: filepath.Join("Assets", "weapons", "gun.fbx"),
		},
		{
			Name:        "Muzzle Flash",
			Category:    "fx",
			Filename:    "muzzle_flash.prefab",
			Content:     []byte("PLACEHOLDER_MUZZLE_FLASH"),
			ProjectPath: filepath.Join("Assets", "fx", "muzzle_flash.prefab"),
		},
	},
	gamedesign.CategoryAdventure: {
		{
			Name:        "Third Person Controller",
			Category:    "characters",
			Filename:    "third_person_controller.prefab",
			Content:     []byte("PLACEHOLDER_THIRD_PERSON_CONTROLLER"),
			ProjectPath: filepath.Join("Assets", "characters", "third_person_controller.prefab"),
		},
		{
			Name:        "Tree Model",
			Category:    "props",
			Filename:    "tree.fbx",
			Content:     []byte("PLACEHOLDER_TREE_MODEL"),
			ProjectPath: filepath.Join("Assets", "props", "tree.fbx"),
		},
	},
	gamedesign.CategoryPuzzle: {
		{
			Name:        "Puzzle Box",
			Category:    "props",
			Filename:    "puzzle_box.fbx",
			Content:     []byte("PLACEHOLDER_PUZZLE_BOX"),
			ProjectPath: filepath.Join("Assets", "props", "puzzle_box.fbx"),
		},
		{
			Name:        "Button",
			Category:    "interactive",
			Filename:    "button.fbx",
			Content:     []byte("PLACEHOLDER_BUTTON_MODEL"),
			ProjectPath: filepath.Join("Assets", "interactive", "button.fbx"),
		},
	},
	gamedesign.CategoryRacing: {
		{
			Name:        "Car Model",
			Category:    "vehicles",
			Filename:    "car.fbx",
			Content:     []byte("PLACEHOLDER_CAR_MODEL"),
			ProjectPath: filepath.Join("Assets", "vehicles", "car.fbx"),
		},
		{
			Name:        "Track",
			Category:    "environment",
			Filename:    "track.fbx",
			Content:     []byte("PLACEHOLDER_TRACK_MODEL"),
			ProjectPath: filepath.Join("Assets", "environment", "track.fbx"),
		},
	},
	gamedesign.CategoryPlatformer: {
		{
			Name:        "Platform",
			Category:    "environment",
			Filename:    "platform.fbx",
			Content:     []byte("PLACEHOLDER_PLATFORM_MODEL"),
			ProjectPath: filepath.Join("Assets", "environment", "platform.fbx"),
		},
		{
			Name:        "Collectible",
			Category:    "interactive",
			Filename:    "collectible.fbx",
			Content:     []byte("PLACEHOLDER_COLLECTIBLE_MODEL"),
			ProjectPath: filepath.Join("Assets", "interactive", "collectible.fbx"),
		},
	},
}

// DefaultAssets returns the curated fallback list for a category. Always
// non-empty: common assets apply to every category.
func DefaultAssets(category gamedesign.Category) []domain.AssetDescriptor {
	out := commonAssets()
	out = append(out, categoryAssets[category]...)
	return out
}
