package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/teylo/teylo-backend/internal/build/domain"
	"github.com/teylo/teylo-backend/internal/build/scripts"
)

// stageProject assembles the engine project directory for a job: the
// template copied wholesale, assets placed at their project paths, and
// generated sources written last so they win over template files of the same
// name.
func stageProject(templateDir, projectDir string, cfg domain.BuildConfig, logger *Logger) error {
	if err := copyTree(templateDir, projectDir); err != nil {
		return fmt.Errorf("copy template: %w", err)
	}

	for _, asset := range cfg.Assets {
		if err := stageAsset(projectDir, asset, logger); err != nil {
			return err
		}
	}

	generated, err := scripts.Generate(scripts.Input{
		ProjectID: cfg.ProjectID,
		Category:  cfg.Category,
		Design:    cfg.Design,
		Assets:    cfg.Assets,
	})
	if err != nil {
		return err
	}

	for rel, content := range generated {
		dest := filepath.Join(projectDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("create script dir: %w", err)
		}
		if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write generated script %s: %w", rel, err)
		}
	}

	return nil
}

// stageAsset places one asset into the project tree. A missing source file
// is skipped with a warning; absent content is a degradation, not a failure.
func stageAsset(projectDir string, asset domain.AssetDescriptor, logger *Logger) error {
	if !asset.HasOrigin() {
		logger.LogWarnf("stage_asset", "asset %s has no content origin, skipping", asset.Name)
		return nil
	}

	dest := filepath.Join(projectDir, asset.ProjectPath)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create asset dir for %s: %w", asset.Name, err)
	}

	if len(asset.Content) > 0 {
		if err := os.WriteFile(dest, asset.Content, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", asset.Name, err)
		}
		return nil
	}

	if err := copyFile(asset.SourcePath, dest); err != nil {
		if os.IsNotExist(err) {
			logger.LogWarnf("stage_asset", "asset source %s missing, skipping", asset.SourcePath)
			return nil
		}
		return fmt.Errorf("copy asset %s: %w", asset.Name, err)
	}

	return nil
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
