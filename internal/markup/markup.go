// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup normalizes inline rich-text markup into the marker
// conventions of the narrative document model. Emphasis spans become
// literal delimiter pairs (*C* or *SL*) carried inside paragraph text;
// bold carries no meaning in either dialect and is stripped.
package markup

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker describes the emphasis delimiter a dialect uses.
type Marker struct {
	// Token is the literal delimiter, e.g. "*C*" or "*SL*".
	Token string

	// Padded surrounds the delimited span with single spaces
	// (" *C* text *C* " instead of "*C*text*C*").
	Padded bool
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	boldRe       = regexp.MustCompile(`</?strong>`)
	emphasisRe   = regexp.MustCompile(`<(?:i|em)>(.*?)</(?:i|em)>`)
)

// CollapseWhitespace replaces every run of whitespace with a single space.
// It is idempotent.
func CollapseWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(s, " ")
}

// Normalize applies the encode-time pass to a paragraph's inner markup:
// collapse whitespace, strip bold tags, and substitute emphasis spans with
// the marker delimiter.
func Normalize(s string, m Marker) string {
	s = CollapseWhitespace(s)
	s = boldRe.ReplaceAllString(s, "")
	if m.Padded {
		return emphasisRe.ReplaceAllString(s, " "+m.Token+" ${1} "+m.Token+" ")
	}
	return emphasisRe.ReplaceAllString(s, m.Token+"${1}"+m.Token)
}

// markerPairRe matches a paired *C* span including its inner content.
var markerPairRe = regexp.MustCompile(`\*C\*[^*]*\*C\*`)

// RepairMarkerSpacing is the transcode-time normalization: each paired
// *C* span gets exactly one space inserted before it when the preceding
// character exists and is not whitespace, and one after it under the same
// condition. Inner content is left untouched.
func RepairMarkerSpacing(s string) string {
	locs := markerPairRe.FindAllStringIndex(s, -1)
	if locs == nil {
		return s
	}

	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		b.WriteString(s[prev:loc[0]])
		if r, size := utf8.DecodeLastRuneInString(s[:loc[0]]); size > 0 && !unicode.IsSpace(r) {
			b.WriteByte(' ')
		}
		b.WriteString(s[loc[0]:loc[1]])
		if r, size := utf8.DecodeRuneInString(s[loc[1]:]); size > 0 && !unicode.IsSpace(r) {
			b.WriteByte(' ')
		}
		prev = loc[1]
	}
	b.WriteString(s[prev:])
	return b.String()
}
