// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify turns rich-text paragraphs into typed blocks. Each
// paragraph becomes an image directive, an empty-line placeholder, or a
// text block, tagged with the free/paid boundary flag that the classifier
// threads through the document as an explicit accumulator.
package classify

import (
	"regexp"
	"strings"

	"github.com/formatacle/formatacle/internal/markup"
)

// Kind discriminates the block variants.
type Kind string

const (
	KindImage Kind = "image"
	KindEmpty Kind = "empty"
	KindText  Kind = "text"
)

// Block is one classified paragraph. ImageName and BlockID are set for
// image blocks, Segment for text blocks.
type Block struct {
	Kind      Kind
	ImageName string
	BlockID   string
	Segment   string
	Gratis    bool
}

// EmptySentinel is the text the upstream HTML converter substitutes for
// visually empty source paragraphs.
const EmptySentinel = "[[EMPTY_PARAGRAPH]]"

// freeMark flips the free-boundary flag. Its first occurrence per
// paragraph is stripped; the flip is permanent for the document.
const freeMark = "***"

// MarkerPolicy selects the marker-based free-boundary policy when used as
// Options.FreeParagraphs.
const MarkerPolicy = -1

var (
	imageRe     = regexp.MustCompile(`^img\s+(\S+)\s+(\S+)$`)
	lineBreakRe = regexp.MustCompile(`(?:<br\s*/?>)+`)
	brRe        = regexp.MustCompile(`<br\s*/?>`)
)

// Options control how a paragraph sequence is classified.
type Options struct {
	// Marker is the emphasis delimiter for the target dialect.
	Marker markup.Marker

	// FreeParagraphs selects the boundary policy: MarkerPolicy (negative)
	// makes paragraphs free until the first "***"; zero or greater makes
	// paragraphs with an index below the value free.
	FreeParagraphs int

	// TitleFromContent consumes paragraphs 0 and 1 as title and author;
	// classification then starts at paragraph 2.
	TitleFromContent bool

	// SplitLineBreaks expands runs of line breaks into separate segments,
	// inserting floor((n-1)/2) empty placeholders per run of n breaks.
	SplitLineBreaks bool
}

// Result is the classified document.
type Result struct {
	// Title and Author are set only when Options.TitleFromContent is on.
	Title  string
	Author string

	Blocks []Block
}

// Paragraph classifies one paragraph's inner markup under the marker
// policy, threading the running free flag. A paragraph may contribute
// zero blocks (blank text) or several (line-break expansion).
func Paragraph(rawHTML string, free bool, opts Options) ([]Block, bool) {
	return classifyParagraph(rawHTML, free, true, opts)
}

func classifyParagraph(rawHTML string, free bool, markerPolicy bool, opts Options) ([]Block, bool) {
	text := markup.Normalize(rawHTML, opts.Marker)

	var segments []string
	var breakRuns []string
	if opts.SplitLineBreaks {
		breakRuns = lineBreakRe.FindAllString(text, -1)
		segments = lineBreakRe.Split(text, -1)
	} else {
		segments = []string{text}
	}

	var blocks []Block
	for i, seg := range segments {
		if markerPolicy && strings.Contains(seg, freeMark) {
			seg = strings.Replace(seg, freeMark, "", 1)
			free = false
		}

		// The image directive is anchored against the untrimmed text: a
		// leading or trailing space demotes it to an ordinary text block.
		// Only the sentinel comparison and the text payload trim.
		trimmed := strings.TrimSpace(seg)
		switch {
		case imageRe.MatchString(seg):
			m := imageRe.FindStringSubmatch(seg)
			blocks = append(blocks, Block{Kind: KindImage, ImageName: m[1], BlockID: m[2], Gratis: free})
		case trimmed == EmptySentinel:
			blocks = append(blocks, Block{Kind: KindEmpty, Gratis: free})
		case trimmed != "":
			blocks = append(blocks, Block{Kind: KindText, Segment: trimmed, Gratis: free})
		}

		// Two consecutive breaks read as one visual blank line; odd
		// counts round down.
		if i < len(breakRuns) {
			n := len(brRe.FindAllString(breakRuns[i], -1))
			for j := 0; j < (n-1)/2; j++ {
				blocks = append(blocks, Block{Kind: KindEmpty, Gratis: free})
			}
		}
	}
	return blocks, free
}

// Document folds the classifier over a paragraph sequence in order. Under
// the marker policy the free flag starts at true and flips permanently on
// the first "***"; under the count policy each paragraph's flag is derived
// from its index. Paragraph order is significant and preserved.
func Document(paragraphs []string, opts Options) Result {
	var res Result

	start := 0
	if opts.TitleFromContent && len(paragraphs) >= 2 {
		res.Title = strings.TrimSpace(markup.CollapseWhitespace(paragraphs[0]))
		res.Author = strings.TrimSpace(markup.CollapseWhitespace(paragraphs[1]))
		start = 2
	}

	markerPolicy := opts.FreeParagraphs < 0
	free := true
	for i, p := range paragraphs[start:] {
		if !markerPolicy {
			free = i < opts.FreeParagraphs
		}
		var blocks []Block
		blocks, free = classifyParagraph(p, free, markerPolicy, opts)
		res.Blocks = append(res.Blocks, blocks...)
	}
	return res
}
