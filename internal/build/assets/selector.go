package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/teylo/teylo-backend/internal/build/domain"
	"github.com/teylo/teylo-backend/internal/gamedesign"
)

// requiredCategories lists the asset categories every build of a given game
// category should try to satisfy.
var requiredCategories = map[gamedesign.Category][]string{
	gamedesign.CategoryFPS:        {"characters", "weapons", "fx", "environment", "ui", "audio"},
	gamedesign.CategoryAdventure:  {"characters", "environment", "props", "ui", "audio"},
	gamedesign.CategoryPuzzle:     {"props", "interactive", "ui", "audio"},
	gamedesign.CategoryRacing:     {"vehicles", "environment", "ui", "audio"},
	gamedesign.CategoryPlatformer: {"characters", "environment", "interactive", "ui", "audio"},
	gamedesign.CategoryOther:      {"environment", "ui", "audio"},
}

// Selector chooses the concrete asset list for a build. Selection never
// fails: any error during the process degrades to the curated default list
// for the category, so callers always receive a usable list.
type Selector struct {
	assetsDir string
}

// NewSelector creates a selector scanning assetsDir for generic content.
func NewSelector(assetsDir string) *Selector {
	return &Selector{assetsDir: assetsDir}
}

// Select returns the asset descriptors to stage for a build.
func (s *Selector) Select(category gamedesign.Category, doc *gamedesign.DesignDocument) []domain.AssetDescriptor {
	selected, err := s.selectAssets(category, doc)
	if err != nil || len(selected) == 0 {
		return DefaultAssets(category)
	}
	return selected
}

func (s *Selector) selectAssets(category gamedesign.Category, doc *gamedesign.DesignDocument) ([]domain.AssetDescriptor, error) {
	required := requiredCategories[category]
	if required == nil {
		required = requiredCategories[gamedesign.CategoryOther]
	}

	selected := DefaultAssets(category)

	satisfied := make(map[string]bool, len(selected))
	for _, a := range selected {
		satisfied[a.Category] = true
	}

	// Generic lookup for anything the curated set does not cover. An empty
	// scan result is acceptable; missing content is a best-effort policy,
	// not a validation failure.
	for _, cat := range required {
		if satisfied[cat] {
			continue
		}

		scanned, err := s.scanCategory(cat)
		if err != nil {
			return nil, err
		}
		if len(scanned) == 0 && doc != nil {
			scanned = descriptorsFromDesign(s.assetsDir, cat, doc.Assets[cat])
		}
		selected = append(selected, scanned...)
	}

	return selected, nil
}

// scanCategory lists files under assetsDir/<category> as asset descriptors.
func (s *Selector) scanCategory(category string) ([]domain.AssetDescriptor, error) {
	dir := filepath.Join(s.assetsDir, category)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan asset category %s: %w", category, err)
	}

	var out []domain.AssetDescriptor
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, domain.AssetDescriptor{
			Name:        strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Category:    category,
			Filename:    e.Name(),
			SourcePath:  filepath.Join(dir, e.Name()),
			ProjectPath: filepath.Join("Assets", category, e.Name()),
		})
	}
	return out, nil
}

// descriptorsFromDesign maps asset names the design document requested onto
// files expected under the assets root. The files may not exist; the staging
// step skips missing sources with a warning.
func descriptorsFromDesign(assetsDir, category string, names []string) []domain.AssetDescriptor {
	var out []domain.AssetDescriptor
	for _, name := range names {
		filename := slugify(name) + ".fbx"
		out = append(out, domain.AssetDescriptor{
			Name:        name,
			Category:    category,
			Filename:    filename,
			SourcePath:  filepath.Join(assetsDir, category, filename),
			ProjectPath: filepath.Join("Assets", category, filename),
		})
	}
	return out
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	var b strings.Builder
	for _, r := range s {
		if r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
