// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Dialect identifies a target XML encoding of the narrative document model.
type Dialect string

const (
	DialectIOS     Dialect = "ios"
	DialectAndroid Dialect = "android"
)

// Style selects how rendered paragraphs are serialized.
type Style string

const (
	// StyleAttribute emits one self-closing <parrafo/> per paragraph with
	// all fields as attributes, plus a nested <datos/> header.
	StyleAttribute Style = "attribute"

	// StyleElement emits one <parrafo> per paragraph with nine child
	// elements; title and author live on the <relato> root.
	StyleElement Style = "element"
)

// ConversionResult is the outcome of converting one document. It is stored
// under an opaque id and returned by the lookup endpoint.
type ConversionResult struct {
	Success    bool   `json:"success"`
	IOSXML     string `json:"iosXML,omitempty"`
	AndroidXML string `json:"androidXML,omitempty"`
	Error      string `json:"error,omitempty"`
}
