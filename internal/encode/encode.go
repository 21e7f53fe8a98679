// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package encode renders classified block sequences as dialect XML
// documents. Both dialects share one fixed attribute template per block
// variant; they differ in serialization style, emphasis delimiter, and the
// indentation/filler codes carried by text and placeholder rows.
package encode

import (
	"strings"

	"github.com/formatacle/formatacle/internal/classify"
	"github.com/formatacle/formatacle/internal/markup"
	"github.com/formatacle/formatacle/pkg/types"
)

// Options configure one dialect encoder. The emphasis delimiter, sangria
// code, and placeholder filler come in revision-dependent pairs; an
// encoder keeps one pair internally consistent across all block variants.
type Options struct {
	Style types.Style

	// Marker is the emphasis delimiter classification used for this
	// dialect's text segments.
	Marker markup.Marker

	// Sangria is the indentation code for text and placeholder rows
	// ("1" in the attribute-based iOS revision, "0" in the element-based one).
	Sangria string

	// Filler is the bloque payload of an empty-line placeholder
	// (" *C* " or " *SL* ", matching the Sangria revision).
	Filler string
}

// DefaultOptions returns the canonical encoder configuration for a dialect:
// iOS uses the attribute style with padded *C* markers, Android the element
// style with tight *C* markers.
func DefaultOptions(d types.Dialect) Options {
	if d == types.DialectAndroid {
		return Options{
			Style:   types.StyleElement,
			Marker:  markup.Marker{Token: "*C*"},
			Sangria: "0",
			Filler:  " *SL* ",
		}
	}
	return Options{
		Style:   types.StyleAttribute,
		Marker:  markup.Marker{Token: "*C*", Padded: true},
		Sangria: "1",
		Filler:  " *C* ",
	}
}

// record is the fixed nine-field paragraph tuple, in emission order.
type record struct {
	just, cap, saltolinea, sangria, font, size, gratis, img, bloque string
}

func renderBlock(b classify.Block, opts Options) (record, bool) {
	gratis := "0"
	if b.Gratis {
		gratis = "1"
	}

	switch b.Kind {
	case classify.KindImage:
		return record{"c", "0", "2", "0", "imagen", "0", gratis, b.ImageName, b.BlockID}, true
	case classify.KindEmpty:
		return record{"i", "0", "0", opts.Sangria, "basica", "0", gratis, "0", opts.Filler}, true
	default:
		if b.Segment == "" {
			return record{}, false
		}
		return record{"i", "0", "0", opts.Sangria, "basica", "0", gratis, "0", b.Segment}, true
	}
}

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

var (
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// Document renders the block sequence as a complete dialect document.
// Blocks with an empty payload are omitted entirely.
func Document(title, author string, blocks []classify.Block, opts Options) string {
	if opts.Style == types.StyleElement {
		return elementDocument(title, author, blocks, opts)
	}
	return attributeDocument(title, author, blocks, opts)
}

func attributeDocument(title, author string, blocks []classify.Block, opts Options) string {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString("<relato>\n")
	b.WriteString(`  <datos titulo="` + attrEscaper.Replace(title) + `" autor="` + attrEscaper.Replace(author) + `"/>` + "\n")

	for _, blk := range blocks {
		r, ok := renderBlock(blk, opts)
		if !ok {
			continue
		}
		b.WriteString(`  <parrafo just="` + r.just +
			`" cap="` + r.cap +
			`" saltolinea="` + r.saltolinea +
			`" sangria="` + r.sangria +
			`" font="` + r.font +
			`" size="` + r.size +
			`" gratis="` + r.gratis +
			`" img="` + attrEscaper.Replace(r.img) +
			`" bloque="` + attrEscaper.Replace(r.bloque) + `"/>` + "\n")
	}

	b.WriteString("</relato>")
	return b.String()
}

func elementDocument(title, author string, blocks []classify.Block, opts Options) string {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString(`<relato titulo="` + attrEscaper.Replace(title) + `" autor="` + attrEscaper.Replace(author) + `">` + "\n")

	for _, blk := range blocks {
		r, ok := renderBlock(blk, opts)
		if !ok {
			continue
		}
		b.WriteString("  <parrafo>\n")
		b.WriteString("    <just>" + r.just + "</just>\n")
		b.WriteString("    <cap>" + r.cap + "</cap>\n")
		b.WriteString("    <saltolinea>" + r.saltolinea + "</saltolinea>\n")
		b.WriteString("    <sangria>" + r.sangria + "</sangria>\n")
		b.WriteString("    <font>" + r.font + "</font>\n")
		b.WriteString("    <size>" + r.size + "</size>\n")
		b.WriteString("    <gratis>" + r.gratis + "</gratis>\n")
		b.WriteString("    <img>" + textEscaper.Replace(r.img) + "</img>\n")
		b.WriteString("    <bloque>" + textEscaper.Replace(r.bloque) + "</bloque>\n")
		b.WriteString("  </parrafo>\n")
	}

	b.WriteString("</relato>")
	return b.String()
}
