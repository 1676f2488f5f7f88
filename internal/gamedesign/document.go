package gamedesign

import "strings"

// Category identifies the kind of game a project builds. It drives template,
// asset, and script selection throughout the pipeline.
type Category string

const (
	CategoryFPS        Category = "fps"
	CategoryAdventure  Category = "adventure"
	CategoryPuzzle     Category = "puzzle"
	CategoryRacing     Category = "racing"
	CategoryPlatformer Category = "platformer"
	CategoryOther      Category = "other"
)

// Categories lists every valid category in a stable order.
var Categories = []Category{
	CategoryFPS,
	CategoryAdventure,
	CategoryPuzzle,
	CategoryRacing,
	CategoryPlatformer,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFPS, CategoryAdventure, CategoryPuzzle, CategoryRacing, CategoryPlatformer, CategoryOther:
		return true
	}
	return false
}

// ParseCategory normalizes a raw category string. Unknown values map to
// CategoryOther rather than failing; the producer's output is untrusted.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c
	}
	return CategoryOther
}

// Setting describes the game world.
type Setting struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Character describes one character role in the design.
type Character struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Level describes one level in the design.
type Level struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

// DesignDocument is the canonical schema for a generated game design.
// Producers return loosely-shaped documents; Coerce is the single place where
// missing fields are defaulted, so the rest of the pipeline can rely on every
// field being populated.
type DesignDocument struct {
	GameName      string              `json:"gameName"`
	Description   string              `json:"description"`
	Genre         string              `json:"genre"`
	Setting       Setting             `json:"setting"`
	Characters    []Character         `json:"characters"`
	Mechanics     []string            `json:"mechanics"`
	Levels        []Level             `json:"levels"`
	Assets        map[string][]string `json:"assets"`
	UserInterface []string            `json:"userInterface"`
}

// requiredAssetCategories are always present in a coerced document's asset
// map, even if only as a single default entry.
var requiredAssetCategories = []string{"environment", "characters", "audio", "ui"}

// Coerce fills every missing field of doc with a deterministic default derived
// from the project's category, name, and original prompt. It is called once at
// the producer boundary; downstream code never defaults fields ad hoc.
func Coerce(doc *DesignDocument, category Category, name, prompt string) *DesignDocument {
	if doc == nil {
		doc = &DesignDocument{}
	}

	if doc.GameName == "" {
		if name != "" {
			doc.GameName = name
		} else {
			doc.GameName = GenerateName(prompt, category)
		}
	}

	if doc.Description == "" {
		doc.Description = prompt
	}

	if doc.Genre == "" {
		doc.Genre = categoryGenre(category)
	}

	if doc.Setting.Type == "" {
		doc.Setting = extractSetting(prompt)
	}

	if len(doc.Characters) == 0 {
		doc.Characters = defaultCharacters(category)
	}

	if len(doc.Mechanics) == 0 {
		doc.Mechanics = defaultMechanics(category)
	}

	if len(doc.Levels) == 0 {
		doc.Levels = defaultLevels(category)
	}

	if doc.Assets == nil {
		doc.Assets = make(map[string][]string)
	}
	for _, cat := range requiredAssetCategories {
		if len(doc.Assets[cat]) == 0 {
			doc.Assets[cat] = []string{"Default " + cat}
		}
	}

	if len(doc.UserInterface) == 0 {
		doc.UserInterface = defaultUI(category)
	}

	return doc
}
