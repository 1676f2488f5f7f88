package template

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/teylo/teylo-backend/internal/build/domain"
	"github.com/teylo/teylo-backend/internal/gamedesign"
)

// categoryDirs maps each game category to its template directory name under
// the templates root.
var categoryDirs = map[gamedesign.Category]string{
	gamedesign.CategoryFPS:        "fps",
	gamedesign.CategoryAdventure:  "3d_game_kit",
	gamedesign.CategoryPuzzle:     "puzzle",
	gamedesign.CategoryRacing:     "racing",
	gamedesign.CategoryPlatformer: "platformer",
}

// Resolver maps a game category to a template project directory. It holds
// only the templates root, injected at construction.
type Resolver struct {
	templatesDir string
}

// NewResolver creates a resolver rooted at templatesDir.
func NewResolver(templatesDir string) *Resolver {
	return &Resolver{templatesDir: templatesDir}
}

// Resolve returns the template directory for a category. If the mapped
// directory is missing, the first directory found under the templates root is
// used instead. ErrNoTemplateAvailable is returned only when the root itself
// is empty or unreadable.
func (r *Resolver) Resolve(category gamedesign.Category) (string, error) {
	if name, ok := categoryDirs[category]; ok {
		dir := filepath.Join(r.templatesDir, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}

	entries, err := os.ReadDir(r.templatesDir)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrNoTemplateAvailable, r.templatesDir)
	}

	for _, e := range entries {
		if e.IsDir() {
			return filepath.Join(r.templatesDir, e.Name()), nil
		}
	}

	return "", fmt.Errorf("%w: %s", domain.ErrNoTemplateAvailable, r.templatesDir)
}
