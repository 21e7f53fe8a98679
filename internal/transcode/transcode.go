// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcode re-derives the Android (element-style) encoding of a
// narrative document from its iOS (attribute-style) encoding. This is a
// stricter pass than the original encode path: it repairs marker spacing,
// remaps legacy font and image codes, and collapses the line-break scheme
// to two tiers.
package transcode

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/formatacle/formatacle/internal/markup"
)

// parrafoTagRe captures the attribute list of an opening <parrafo> tag.
var parrafoTagRe = regexp.MustCompile(`<parrafo\s+([^>]*?)>`)

// NormalizeParrafoAttributes collapses stray whitespace runs inside
// <parrafo> attribute lists. Hand-edited input carries them.
func NormalizeParrafoAttributes(xmlText string) string {
	return parrafoTagRe.ReplaceAllStringFunc(xmlText, func(tag string) string {
		attrs := parrafoTagRe.FindStringSubmatch(tag)[1]
		attrs = strings.TrimSpace(markup.CollapseWhitespace(attrs))
		return "<parrafo " + attrs + ">"
	})
}

type relato struct {
	XMLName  xml.Name  `xml:"relato"`
	Datos    *datos    `xml:"datos"`
	Parrafos []parrafo `xml:"parrafo"`
}

type datos struct {
	Titulo string `xml:"titulo,attr"`
	Autor  string `xml:"autor,attr"`
}

type parrafo struct {
	Just       string `xml:"just,attr"`
	Cap        string `xml:"cap,attr"`
	Saltolinea string `xml:"saltolinea,attr"`
	Sangria    string `xml:"sangria,attr"`
	Font       string `xml:"font,attr"`
	Size       string `xml:"size,attr"`
	Gratis     string `xml:"gratis,attr"`
	Img        string `xml:"img,attr"`
	Bloque     string `xml:"bloque,attr"`
}

// centeringPad is prepended to centered text blocks so the print layout
// pushes them off the left margin.
var centeringPad = strings.Repeat(" ", 190)

// trailingPunctRe matches a space the repair pass left between a marker
// and a trailing period or closing curly quote.
var trailingPunctRe = regexp.MustCompile(`\*C\*\s+([.”’])`)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// IOSToAndroid parses an attribute-style iOS document and emits the
// element-style Android document. Malformed input is a recoverable
// condition reported as an error; the function never panics.
func IOSToAndroid(xmlText string) (string, error) {
	xmlText = NormalizeParrafoAttributes(xmlText)

	var doc relato
	if err := xml.Unmarshal([]byte(xmlText), &doc); err != nil {
		return "", fmt.Errorf("parsing iOS document: %w", err)
	}

	var titulo, autor string
	if doc.Datos != nil {
		titulo = doc.Datos.Titulo
		autor = doc.Datos.Autor
	}

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	b.WriteString(`<relato titulo="` + attrEscaper.Replace(titulo) + `" autor="` + attrEscaper.Replace(autor) + `">` + "\n\n")

	for _, p := range doc.Parrafos {
		img := p.Img
		if img == "" {
			img = "0"
		}
		if img == "imagen_pruebas_barra_f-0-0" {
			img = "filigrana00-f-0-0"
		}

		font := p.Font
		if font == "basica3" {
			font = "basica2"
		}

		bloque := transformBloque(p.Bloque, p.Just, img)

		b.WriteString("\t<parrafo>")
		b.WriteString(" <just>" + textEscaper.Replace(p.Just) + "</just>")
		b.WriteString(" <cap>" + textEscaper.Replace(p.Cap) + "</cap>")
		b.WriteString(" <saltolinea>" + remapSaltolinea(p.Saltolinea) + "</saltolinea>")
		b.WriteString(" <sangria>" + textEscaper.Replace(p.Sangria) + "</sangria>")
		b.WriteString(" <font>" + textEscaper.Replace(font) + "</font>")
		b.WriteString(" <size>" + textEscaper.Replace(p.Size) + "</size>")
		b.WriteString(" <gratis>" + textEscaper.Replace(p.Gratis) + "</gratis>")
		b.WriteString(" <img>" + textEscaper.Replace(img) + "</img>")
		b.WriteString(" <bloque>" + textEscaper.Replace(bloque) + "</bloque></parrafo>\n")
	}

	b.WriteString("\n</relato>")
	return b.String(), nil
}

// remapSaltolinea collapses the legacy line-break codes into the two-tier
// scheme: the old value 2 becomes 1, anything else above 1 becomes 2, and
// 0/1 (or non-numeric codes) pass through unchanged.
func remapSaltolinea(v string) string {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return v
	}
	if n == 2 {
		return "1"
	}
	if n > 1 {
		return "2"
	}
	return v
}

// transformBloque applies the marker-spacing repair and the centered-text
// padding to a paragraph payload.
func transformBloque(bloque, just, img string) string {
	bloque = markup.RepairMarkerSpacing(bloque)

	// A payload that opens on a marker keeps the marker flush against
	// the start, so the centering pad (when applied) abuts it directly.
	if strings.HasPrefix(bloque, " *C*") {
		bloque = bloque[1:]
	}

	if (just == "c" || just == "d") && img == "0" {
		bloque = centeringPad + bloque
	}

	return trailingPunctRe.ReplaceAllString(bloque, "*C*${1}")
}
