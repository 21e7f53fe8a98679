// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Entry names one document to convert, with optional explicit title and
// author. The filename pattern still wins when it matches.
type Entry struct {
	Path   string `yaml:"path"`
	Title  string `yaml:"title,omitempty"`
	Author string `yaml:"author,omitempty"`
}

// Manifest is the on-disk description of a batch run.
type Manifest struct {
	Files []Entry `yaml:"files"`
}

// ReadManifest loads a batch manifest from a YAML file.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Files) == 0 {
		return nil, fmt.Errorf("manifest %s lists no files", path)
	}
	return &m, nil
}

// EntriesFromPaths wraps plain file paths as manifest entries.
func EntriesFromPaths(paths []string) []Entry {
	entries := make([]Entry, len(paths))
	for i, p := range paths {
		entries[i] = Entry{Path: p}
	}
	return entries
}
