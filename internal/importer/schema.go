package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PackageFile is the top-level structure of a workout package file.
type PackageFile struct {
	Workouts []WorkoutImport `json:"workouts" yaml:"workouts"`
}

// WorkoutImport is one tracker package: a workout code and its raw values
// in constructor order.
type WorkoutImport struct {
	Code string    `json:"code" yaml:"code"`
	Data []float64 `json:"data" yaml:"data"`
}

// LoadPackageFile reads a package file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func LoadPackageFile(path string) (*PackageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file PackageFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing package file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing package file: %w", err)
		}
	}
	return &file, nil
}
