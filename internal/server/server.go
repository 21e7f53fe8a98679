// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the conversion engine over HTTP: one endpoint to
// upload a document and one to fetch a stored result by id.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/formatacle/formatacle/internal/htmlconv"
	"github.com/formatacle/formatacle/internal/pipeline"
	"github.com/formatacle/formatacle/internal/store"
	"github.com/formatacle/formatacle/pkg/types"
)

const defaultMaxUpload = 5 << 20 // 5 MiB, matching the upload form limit

// Server handles the conversion API.
type Server struct {
	store     store.Store
	converter htmlconv.Converter
	opts      pipeline.Options
	maxUpload int64
}

// New creates a Server. A non-positive maxUpload falls back to the
// default limit.
func New(s store.Store, c htmlconv.Converter, opts pipeline.Options, maxUpload int64) *Server {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}
	return &Server{store: s, converter: c, opts: opts, maxUpload: maxUpload}
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/convert", s.handleConvert)
	mux.HandleFunc("GET /api/convert/{id}", s.handleGet)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "No file uploaded or invalid file type. Please upload a .docx file.",
		})
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".docx") {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "Only .docx files are allowed",
		})
		return
	}

	title := r.FormValue("title")
	author := r.FormValue("author")
	if t, a, ok := pipeline.TitleAuthorFromFileName(header.Filename); ok {
		title, author = t, a
	}
	if title == "" {
		title = "Untitled"
	}
	if author == "" {
		author = "Unknown"
	}

	html, err := s.converter.Convert(file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	paragraphs, err := htmlconv.Paragraphs(html)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	iosXML, androidXML := pipeline.ConvertParagraphs(paragraphs, title, author, s.opts)

	id, err := s.store.Put(r.Context(), types.ConversionResult{
		Success:    true,
		IOSXML:     iosXML,
		AndroidXML: androidXML,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: fmt.Sprintf("storing conversion: %v", err),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	result, err := s.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if result == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Conversion not found"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}
