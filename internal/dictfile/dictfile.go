// Package dictfile reads and writes dictionary files for the CLI. The
// format is a YAML list so category order in the file is the dictionary's
// insertion order:
//
//	categories:
//	  - name: urgency_marketing
//	    keywords:
//	      - hurry
//	      - act now
package dictfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lexitag/internal/models"
)

type fileFormat struct {
	Categories []models.Category `yaml:"categories"`
}

// Load reads a dictionary file. Category order follows the file.
func Load(path string) ([]models.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary file: %w", err)
	}
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse dictionary file %q: %w", path, err)
	}
	return f.Categories, nil
}

// Save writes the categories in order.
func Save(path string, categories []models.Category) error {
	data, err := yaml.Marshal(fileFormat{Categories: categories})
	if err != nil {
		return fmt.Errorf("encode dictionary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dictionary file: %w", err)
	}
	return nil
}
