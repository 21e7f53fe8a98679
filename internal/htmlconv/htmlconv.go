// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package htmlconv is the boundary to the external word-processor
// converter. The core never parses the .docx container itself; it hands
// the document bytes to a converter that returns an HTML fragment, then
// reads the fragment's paragraphs in order.
package htmlconv

import (
	"bytes"
	"fmt"
	"io"

	"github.com/formatacle/formatacle/internal/container"
)

// Converter transforms a word-processor document into an HTML fragment.
type Converter interface {
	Convert(r io.Reader) (string, error)
}

const imageMammoth = "mammoth:latest"

// MammothConverter converts .docx files by piping them through the
// mammoth container image. The image is configured to substitute the
// empty-paragraph sentinel for visually empty source paragraphs.
type MammothConverter struct {
	runtime container.Runtime
}

// NewMammothConverter creates a converter that uses the given container
// runtime. It verifies that the mammoth image exists locally before
// returning.
func NewMammothConverter(rt container.Runtime) (*MammothConverter, error) {
	if err := rt.ImageExists(imageMammoth); err != nil {
		return nil, fmt.Errorf("mammoth image not available in %s: %w", rt.Name(), err)
	}
	return &MammothConverter{runtime: rt}, nil
}

// Convert pipes the document through the mammoth container and returns
// the resulting HTML fragment.
func (m *MammothConverter) Convert(r io.Reader) (string, error) {
	var out bytes.Buffer
	if err := m.runtime.Run(imageMammoth, r, &out); err != nil {
		return "", fmt.Errorf("converting document with mammoth: %w", err)
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("mammoth produced empty output")
	}
	return out.String(), nil
}
