// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives whole-document conversion: it resolves title and
// author, classifies the paragraph stream once per dialect, and renders
// both dialect documents. The batch driver fans documents out to
// goroutines while keeping result order deterministic.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/formatacle/formatacle/internal/classify"
	"github.com/formatacle/formatacle/internal/encode"
	"github.com/formatacle/formatacle/internal/htmlconv"
	"github.com/formatacle/formatacle/pkg/types"
)

// Options configure a conversion run. Both dialects share the boundary
// policy and title/author handling; markers and serialization style are
// per-dialect.
type Options struct {
	IOS     encode.Options
	Android encode.Options

	FreeParagraphs   int
	TitleFromContent bool
	SplitLineBreaks  bool
}

// DefaultOptions returns the canonical conversion configuration: marker
// free-boundary policy, line-break expansion on, per-dialect encoder
// defaults.
func DefaultOptions() Options {
	return Options{
		IOS:             encode.DefaultOptions(types.DialectIOS),
		Android:         encode.DefaultOptions(types.DialectAndroid),
		FreeParagraphs:  classify.MarkerPolicy,
		SplitLineBreaks: true,
	}
}

// FromConfig builds Options from the conversion stage configuration.
func FromConfig(cfg types.ConversionConfig) Options {
	opts := DefaultOptions()
	opts.FreeParagraphs = cfg.FreeParagraphs
	opts.TitleFromContent = cfg.TitleFromContent
	opts.SplitLineBreaks = cfg.SplitLineBreaks
	if cfg.IOSStyle != "" {
		opts.IOS.Style = cfg.IOSStyle
	}
	if cfg.AndroidStyle != "" {
		opts.Android.Style = cfg.AndroidStyle
	}
	return opts
}

func (o Options) classifyOptions(enc encode.Options) classify.Options {
	return classify.Options{
		Marker:           enc.Marker,
		FreeParagraphs:   o.FreeParagraphs,
		TitleFromContent: o.TitleFromContent,
		SplitLineBreaks:  o.SplitLineBreaks,
	}
}

var fileNameRe = regexp.MustCompile(`^(.+)--(.+)\.docx$`)

// TitleAuthorFromFileName extracts title and author from a filename of the
// form "<title> -- <author>.docx". A non-matching name is ordinary control
// flow, reported through ok.
func TitleAuthorFromFileName(name string) (title, author string, ok bool) {
	m := fileNameRe.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// ConvertParagraphs classifies the paragraph stream and renders both
// dialect documents. Classification runs once per dialect because the
// emphasis markers differ; the free-boundary fold is sequential within
// each run.
func ConvertParagraphs(paragraphs []string, title, author string, opts Options) (iosXML, androidXML string) {
	iosRes := classify.Document(paragraphs, opts.classifyOptions(opts.IOS))
	androidRes := classify.Document(paragraphs, opts.classifyOptions(opts.Android))

	if opts.TitleFromContent && iosRes.Title != "" {
		title = iosRes.Title
		author = iosRes.Author
	}

	iosXML = encode.Document(title, author, iosRes.Blocks, opts.IOS)
	androidXML = encode.Document(title, author, androidRes.Blocks, opts.Android)
	return iosXML, androidXML
}

// Result is the outcome of converting one document.
type Result struct {
	// Name is the document's base name without extension; output files
	// derive their names from it.
	Name string

	IOSXML     string
	AndroidXML string

	// Err is set when this document failed; sibling documents in a batch
	// are unaffected.
	Err error
}

// ConvertFile converts one document on disk. Title and author resolve in
// priority order: filename pattern, explicit values, document content
// (when the content policy is on), then fallbacks.
func ConvertFile(path, title, author string, conv htmlconv.Converter, opts Options) Result {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res := Result{Name: name}

	if t, a, ok := TitleAuthorFromFileName(path); ok {
		title, author = t, a
	}
	if title == "" {
		title = name
	}

	f, err := os.Open(path)
	if err != nil {
		res.Err = fmt.Errorf("opening %s: %w", path, err)
		return res
	}
	defer f.Close()

	html, err := conv.Convert(f)
	if err != nil {
		res.Err = fmt.Errorf("converting %s: %w", name, err)
		return res
	}

	paragraphs, err := htmlconv.Paragraphs(html)
	if err != nil {
		res.Err = fmt.Errorf("reading paragraphs of %s: %w", name, err)
		return res
	}

	res.IOSXML, res.AndroidXML = ConvertParagraphs(paragraphs, title, author, opts)
	return res
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int

	// Results are in input order regardless of completion order.
	Results []Result
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any documents failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts the documents described by entries. Documents are
// independent, so each runs in its own goroutine; the free-boundary fold
// stays sequential inside each document. Per-file status goes to w.
func ConvertBatch(entries []Entry, conv htmlconv.Converter, opts Options, w io.Writer) BatchResult {
	results := make([]Result, len(entries))

	var wg sync.WaitGroup
	for i, e := range entries {
		wg.Add(1)
		go func(i int, e Entry) {
			defer wg.Done()
			results[i] = ConvertFile(e.Path, e.Title, e.Author, conv, opts)
		}(i, e)
	}
	wg.Wait()

	var batch BatchResult
	batch.Results = results
	for _, r := range results {
		if r.Err != nil {
			batch.Failed++
			fmt.Fprintf(w, "failed:    %s (%v)\n", r.Name, r.Err)
			continue
		}
		batch.Converted++
		fmt.Fprintf(w, "converted: %s\n", r.Name)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		batch.Converted, batch.Failed, batch.Total())
	return batch
}
