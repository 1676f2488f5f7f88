package service

import (
	"github.com/teylo/teylo-backend/internal/build/domain"
	"github.com/teylo/teylo-backend/internal/gamedesign"
)

// Per-category overhead in seconds added to the base estimate.
var categoryOverhead = map[gamedesign.Category]int{
	gamedesign.CategoryFPS:        20,
	gamedesign.CategoryAdventure:  25,
	gamedesign.CategoryPuzzle:     15,
	gamedesign.CategoryRacing:     20,
	gamedesign.CategoryPlatformer: 15,
}

const (
	baseEstimateSeconds     = 30
	defaultCategoryOverhead = 10
)

// EstimateBuildTime predicts the build duration in seconds from the size of
// the build config. The formula is linear: a fixed base plus weights per
// resolved asset, mechanic, and level, plus a category constant.
func EstimateBuildTime(cfg domain.BuildConfig) int {
	estimate := baseEstimateSeconds

	estimate += len(cfg.Assets) * 2
	if cfg.Design != nil {
		estimate += len(cfg.Design.Mechanics) * 3
		estimate += len(cfg.Design.Levels) * 5
	}

	if overhead, ok := categoryOverhead[cfg.Category]; ok {
		estimate += overhead
	} else {
		estimate += defaultCategoryOverhead
	}

	return estimate
}
