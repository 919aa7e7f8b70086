package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DatasetConfig points at the tabular input.
type DatasetConfig struct {
	// Path of a CSV file with a header row.
	Path string `json:"path"`
}

// Validate checks mandatory fields.
func (c DatasetConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}
	if ext := strings.ToLower(filepath.Ext(c.Path)); ext != ".csv" {
		return fmt.Errorf("dataset.path: unsupported format %q", ext)
	}
	return nil
}
