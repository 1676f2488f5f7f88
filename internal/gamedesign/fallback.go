package gamedesign

import (
	"context"
	"strings"
)

// FallbackProducer generates a design document without any external service.
// Output is deterministic: the same prompt always yields the same document.
type FallbackProducer struct{}

// NewFallbackProducer creates a producer that never fails.
func NewFallbackProducer() *FallbackProducer {
	return &FallbackProducer{}
}

// Generate builds a design document from keyword tables.
func (p *FallbackProducer) Generate(_ context.Context, prompt string, category Category) (*DesignDocument, error) {
	doc := &DesignDocument{
		GameName:      GenerateName(prompt, category),
		Description:   prompt,
		Genre:         categoryGenre(category),
		Setting:       extractSetting(prompt),
		Characters:    defaultCharacters(category),
		Mechanics:     defaultMechanics(category),
		Levels:        defaultLevels(category),
		Assets:        make(map[string][]string),
		UserInterface: defaultUI(category),
	}

	return Coerce(doc, category, doc.GameName, prompt), nil
}

// DetectCategory guesses the game category from keywords in the prompt.
// Adventure is the default when nothing matches.
func DetectCategory(prompt string) Category {
	p := strings.ToLower(prompt)

	switch {
	case containsAny(p, "zombie", "shooter", "fps", "gun", "first person", "first-person"):
		return CategoryFPS
	case containsAny(p, "adventure", "exploration", "quest", "journey", "explore"):
		return CategoryAdventure
	case containsAny(p, "puzzle", "riddle", "solving", "solve"):
		return CategoryPuzzle
	case containsAny(p, "racing", "race", "car", "drive", "driving", "track"):
		return CategoryRacing
	case containsAny(p, "platform", "side-scroller", "side scroller", "jumping", "2d"):
		return CategoryPlatformer
	default:
		return CategoryAdventure
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// stopwords are skipped when picking name words from a prompt.
var stopwords = map[string]bool{
	"game": true, "about": true, "with": true, "that": true,
	"this": true, "would": true, "could": true, "where": true,
}

// GenerateName derives a short display name from the prompt. Deterministic:
// it takes the first two usable words rather than sampling.
func GenerateName(prompt string, category Category) string {
	var words []string
	for _, w := range strings.Fields(prompt) {
		trimmed := strings.Trim(w, ".,!?\"'")
		if len(trimmed) > 3 && !stopwords[strings.ToLower(trimmed)] {
			words = append(words, trimmed)
		}
	}

	switch {
	case len(words) >= 2:
		return words[0] + " " + words[1]
	case len(words) == 1:
		return words[0] + " " + categoryNoun(category)
	default:
		return categoryAdjective(category) + " " + categoryNoun(category)
	}
}

func categoryGenre(category Category) string {
	switch category {
	case CategoryFPS:
		return "First-Person Shooter"
	case CategoryAdventure:
		return "Action Adventure"
	case CategoryPuzzle:
		return "Puzzle"
	case CategoryRacing:
		return "Arcade Racing"
	case CategoryPlatformer:
		return "Platformer"
	default:
		return "Casual"
	}
}

func categoryAdjective(category Category) string {
	switch category {
	case CategoryFPS:
		return "Tactical"
	case CategoryAdventure:
		return "Epic"
	case CategoryPuzzle:
		return "Clever"
	case CategoryRacing:
		return "Turbo"
	case CategoryPlatformer:
		return "Pixel"
	default:
		return "Cosmic"
	}
}

func categoryNoun(category Category) string {
	switch category {
	case CategoryFPS:
		return "Strike"
	case CategoryAdventure:
		return "Quest"
	case CategoryPuzzle:
		return "Enigma"
	case CategoryRacing:
		return "Rally"
	case CategoryPlatformer:
		return "Jumper"
	default:
		return "Journey"
	}
}

// settingKeywords map prompt keywords to a world setting.
var settingKeywords = []struct {
	keyword     string
	setting     string
	description string
}{
	{"space", "space", "A game set in outer space"},
	{"fantasy", "fantasy", "A fantasy world with magic and mythical creatures"},
	{"medieval", "fantasy", "A medieval world of castles and kingdoms"},
	{"city", "urban", "A modern urban environment"},
	{"urban", "urban", "A modern urban environment"},
	{"forest", "nature", "A natural world of forests and wilderness"},
	{"jungle", "nature", "A dense jungle full of hidden dangers"},
	{"ocean", "aquatic", "An underwater or seafaring world"},
	{"desert", "desert", "A harsh desert landscape"},
	{"zombie", "post-apocalyptic", "A world overrun by the undead"},
	{"apocalypse", "post-apocalyptic", "A world after the end of civilization"},
}

func extractSetting(prompt string) Setting {
	p := strings.ToLower(prompt)
	for _, sk := range settingKeywords {
		if strings.Contains(p, sk.keyword) {
			return Setting{Type: sk.setting, Description: sk.description}
		}
	}
	return Setting{Type: "generic", Description: "A generic game world"}
}

func defaultCharacters(category Category) []Character {
	characters := []Character{
		{Type: "player", Description: "Main player character controlled by the user"},
	}

	switch category {
	case CategoryFPS:
		characters = append(characters, Character{Type: "enemy", Description: "Hostile enemies that attack the player"})
	case CategoryAdventure:
		characters = append(characters, Character{Type: "npc", Description: "Non-player characters the player can talk to"})
	case CategoryRacing:
		characters = append(characters, Character{Type: "opponent", Description: "Rival racers competing against the player"})
	case CategoryPlatformer:
		characters = append(characters, Character{Type: "enemy", Description: "Creatures patrolling the platforms"})
	}

	return characters
}

func defaultMechanics(category Category) []string {
	switch category {
	case CategoryFPS:
		return []string{"First-person shooting", "Enemy combat", "Resource management", "Exploration"}
	case CategoryAdventure:
		return []string{"Exploration", "Item collection", "Character dialogue", "Puzzle solving"}
	case CategoryPuzzle:
		return []string{"Object manipulation", "Pattern matching", "Logic puzzles"}
	case CategoryRacing:
		return []string{"Vehicle control", "Lap racing", "Boost management"}
	case CategoryPlatformer:
		return []string{"Jumping", "Collectibles", "Enemy avoidance"}
	default:
		return []string{"Movement", "Interaction", "Objectives"}
	}
}

func defaultLevels(category Category) []Level {
	switch category {
	case CategoryFPS:
		return []Level{
			{Name: "Overrun", Description: "Fight through a horde of enemies in a forest environment", Difficulty: "Medium"},
			{Name: "Last Stand", Description: "Defend your position against waves of attackers", Difficulty: "Hard"},
		}
	case CategoryAdventure:
		return []Level{
			{Name: "The Journey Begins", Description: "Explore the ancient forest and discover hidden secrets", Difficulty: "Easy"},
			{Name: "Mysterious Temple", Description: "Navigate through a complex temple filled with puzzles", Difficulty: "Medium"},
		}
	default:
		return []Level{
			{Name: "Level 1", Description: "Introduction to game mechanics", Difficulty: "Tutorial"},
			{Name: "Level 2", Description: "First challenge with basic obstacles", Difficulty: "Easy"},
			{Name: "Level 3", Description: "Increased difficulty with new elements", Difficulty: "Medium"},
		}
	}
}

func defaultUI(category Category) []string {
	common := []string{"Main Menu", "Pause Menu", "Settings", "Game Over Screen"}

	var specific []string
	switch category {
	case CategoryFPS:
		specific = []string{"Health Bar", "Ammo Counter", "Crosshair", "Minimap"}
	case CategoryAdventure:
		specific = []string{"Inventory Screen", "Dialog UI", "Quest Log", "Map"}
	case CategoryPuzzle:
		specific = []string{"Hint System", "Timer", "Move Counter", "Restart Button"}
	case CategoryRacing:
		specific = []string{"Speedometer", "Lap Counter", "Position Indicator", "Race Timer"}
	case CategoryPlatformer:
		specific = []string{"Lives Counter", "Score Counter", "Collectible Counter", "Level Progress"}
	}

	return append(common, specific...)
}
