// Package sample handles reading and hashing feature sample files.
package sample

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sample holds a loaded sample file with its decoded fields and hash.
type Sample struct {
	FilePath string
	Raw      map[string]any
	Hash     string
}

// Load reads a JSON or YAML sample file and computes its SHA-256 hash.
// The format is chosen by extension; unknown extensions are tried as JSON.
func Load(path string) (*Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sample.Load: %w", err)
	}
	raw, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("sample.Load: %s: %w", path, err)
	}
	h := sha256.Sum256(data)
	return &Sample{
		FilePath: path,
		Raw:      raw,
		Hash:     fmt.Sprintf("sha256:%x", h),
	}, nil
}

// Decode parses sample bytes into a field map. Numbers in JSON input are
// kept as json.Number.
func Decode(data []byte, ext string) (map[string]any, error) {
	raw := map[string]any{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, errors.New("parse json: trailing data after object")
		}
	}
	return raw, nil
}
