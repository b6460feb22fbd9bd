// Package features holds the feature metadata table and resolves loosely
// typed input into a complete feature vector.
package features

import (
	"embed"
	"fmt"
	"sync"

	"github.com/dshills/winequality/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/features.yaml
var builtinFS embed.FS

// Spec describes one input feature.
type Spec struct {
	Key         string  `yaml:"key" json:"key"`
	Name        string  `yaml:"name" json:"name"`
	Min         float64 `yaml:"min" json:"min"`
	Max         float64 `yaml:"max" json:"max"`
	Default     float64 `yaml:"default" json:"default"`
	Unit        string  `yaml:"unit" json:"unit"`
	Description string  `yaml:"description" json:"description"`
}

// Table is the parsed catalog file.
type Table struct {
	Name        string `yaml:"name"`
	Version     int    `yaml:"version"`
	Description string `yaml:"description"`
	Features    []Spec `yaml:"features"`
}

var loadBuiltin = sync.OnceValues(func() (*Table, error) {
	data, err := builtinFS.ReadFile("builtin/features.yaml")
	if err != nil {
		return nil, fmt.Errorf("features.loadBuiltin: %w", err)
	}
	return Parse(data)
})

// Parse decodes a catalog and checks that it lists every feature once, in
// vector order.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("features.Parse: %w", err)
	}
	if len(t.Features) != len(Keys) {
		return nil, fmt.Errorf("features.Parse: expected %d features, got %d", len(Keys), len(t.Features))
	}
	for i, s := range t.Features {
		if s.Key != Keys[i] {
			return nil, fmt.Errorf("features.Parse: position %d: expected %q, got %q", i, Keys[i], s.Key)
		}
		if s.Min > s.Max {
			return nil, fmt.Errorf("features.Parse: %s: min %v exceeds max %v", s.Key, s.Min, s.Max)
		}
	}
	return &t, nil
}

// Keys lists the JSON keys in vector order.
var Keys = [model.NumFeatures]string{
	"fixedAcidity",
	"volatileAcidity",
	"citricAcid",
	"residualSugar",
	"chlorides",
	"freeSulfurDioxide",
	"totalSulfurDioxide",
	"density",
	"pH",
	"sulphates",
	"alcohol",
}

// Catalog returns the built-in feature specs in vector order. It panics if
// the embedded table is corrupt.
func Catalog() []Spec {
	t, err := loadBuiltin()
	if err != nil {
		panic(err)
	}
	out := make([]Spec, len(t.Features))
	copy(out, t.Features)
	return out
}

// Lookup returns the spec for a JSON key.
func Lookup(key string) (Spec, bool) {
	for _, s := range Catalog() {
		if s.Key == key {
			return s, true
		}
	}
	return Spec{}, false
}

// Defaults returns the documented default for every feature.
func Defaults() model.Features {
	var v [model.NumFeatures]float64
	for i, s := range Catalog() {
		v[i] = s.Default
	}
	return model.FromVector(v)
}
