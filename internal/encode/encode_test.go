// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package encode

import (
	"strings"
	"testing"

	"github.com/formatacle/formatacle/internal/classify"
	"github.com/formatacle/formatacle/pkg/types"
)

var sampleBlocks = []classify.Block{
	{Kind: classify.KindText, Segment: "Era una noche oscura.", Gratis: true},
	{Kind: classify.KindImage, ImageName: "portada01", BlockID: "bloque07", Gratis: true},
	{Kind: classify.KindEmpty, Gratis: false},
	{Kind: classify.KindText, Segment: "Fin.", Gratis: false},
}

func TestDocument_AttributeStyle(t *testing.T) {
	got := Document("La Torre", "M. Ibarra", sampleBlocks, DefaultOptions(types.DialectIOS))

	want := `<?xml version="1.0" encoding="UTF-8"?>
<relato>
  <datos titulo="La Torre" autor="M. Ibarra"/>
  <parrafo just="i" cap="0" saltolinea="0" sangria="1" font="basica" size="0" gratis="1" img="0" bloque="Era una noche oscura."/>
  <parrafo just="c" cap="0" saltolinea="2" sangria="0" font="imagen" size="0" gratis="1" img="portada01" bloque="bloque07"/>
  <parrafo just="i" cap="0" saltolinea="0" sangria="1" font="basica" size="0" gratis="0" img="0" bloque=" *C* "/>
  <parrafo just="i" cap="0" saltolinea="0" sangria="1" font="basica" size="0" gratis="0" img="0" bloque="Fin."/>
</relato>`

	if got != want {
		t.Errorf("attribute document mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDocument_ElementStyle(t *testing.T) {
	got := Document("La Torre", "M. Ibarra", sampleBlocks[:1], DefaultOptions(types.DialectAndroid))

	want := `<?xml version="1.0" encoding="UTF-8"?>
<relato titulo="La Torre" autor="M. Ibarra">
  <parrafo>
    <just>i</just>
    <cap>0</cap>
    <saltolinea>0</saltolinea>
    <sangria>0</sangria>
    <font>basica</font>
    <size>0</size>
    <gratis>1</gratis>
    <img>0</img>
    <bloque>Era una noche oscura.</bloque>
  </parrafo>
</relato>`

	if got != want {
		t.Errorf("element document mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDocument_ElementStyleFiller(t *testing.T) {
	got := Document("T", "A", []classify.Block{{Kind: classify.KindEmpty, Gratis: true}}, DefaultOptions(types.DialectAndroid))
	if !strings.Contains(got, "<bloque> *SL* </bloque>") {
		t.Errorf("element-style placeholder should carry the *SL* filler, got:\n%s", got)
	}
	if !strings.Contains(got, "<sangria>0</sangria>") {
		t.Errorf("element-style placeholder should carry sangria 0, got:\n%s", got)
	}
}

func TestDocument_EmptySegmentOmitted(t *testing.T) {
	blocks := []classify.Block{
		{Kind: classify.KindText, Segment: "uno", Gratis: true},
		{Kind: classify.KindText, Segment: "", Gratis: true},
	}
	got := Document("T", "A", blocks, DefaultOptions(types.DialectIOS))
	if strings.Count(got, "<parrafo") != 1 {
		t.Errorf("empty segment must not produce an element:\n%s", got)
	}
}

func TestDocument_AttributeEscaping(t *testing.T) {
	blocks := []classify.Block{{Kind: classify.KindText, Segment: `dijo "ven" & <vino>`, Gratis: true}}
	got := Document("T", "A", blocks, DefaultOptions(types.DialectIOS))
	if !strings.Contains(got, `bloque="dijo &quot;ven&quot; &amp; &lt;vino&gt;"`) {
		t.Errorf("attribute value not escaped:\n%s", got)
	}
}

func TestDefaultOptions(t *testing.T) {
	ios := DefaultOptions(types.DialectIOS)
	if ios.Style != types.StyleAttribute || !ios.Marker.Padded || ios.Sangria != "1" || ios.Filler != " *C* " {
		t.Errorf("ios defaults = %+v", ios)
	}

	android := DefaultOptions(types.DialectAndroid)
	if android.Style != types.StyleElement || android.Marker.Padded || android.Sangria != "0" || android.Filler != " *SL* " {
		t.Errorf("android defaults = %+v", android)
	}
}
