package template

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest describes a template project. Templates optionally carry a
// template.yaml at their root; a missing manifest is not an error.
type Manifest struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Type        string    `yaml:"type"`
	Features    []Feature `yaml:"features"`
}

// Feature names one capability the template ships with.
type Feature struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

const manifestFilename = "template.yaml"

// LoadManifest reads the manifest from a template directory. Returns nil
// without error when the template has no manifest.
func LoadManifest(templateDir string) (*Manifest, error) {
	b, err := os.ReadFile(filepath.Join(templateDir, manifestFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func writeManifest(templateDir string, m *Manifest) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(templateDir, manifestFilename), b, 0o644)
}
