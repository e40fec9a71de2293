package rdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cognitedata/neat-imf-importer/pkg/rdf"
)

func TestLocalName_Fragment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BlockType", rdf.LocalName("http://ns.imfid.org/imf#BlockType"))
}

func TestLocalName_LastSegment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pump", rdf.LocalName("http://example.com/types/Pump"))
}

func TestLocalName_FragmentWinsOverSegment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "weight", rdf.LocalName("http://example.com/types/pump#weight"))
}

func TestLocalName_NonIRIUnchanged(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "already-local", rdf.LocalName("already-local"))
	assert.Equal(t, "a/b#c", rdf.LocalName("a/b#c"))
}

func TestTerm_LocalName(t *testing.T) {
	t.Parallel()

	iri := rdf.Term{Value: "http://example.com/ns#Thing", Kind: rdf.KindIRI}
	assert.Equal(t, "Thing", iri.LocalName())

	literal := rdf.Term{Value: "http://example.com/ns#Thing", Kind: rdf.KindLiteral}
	assert.Equal(t, "http://example.com/ns#Thing", literal.LocalName())
}

func TestTerm_KindPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, rdf.Term{Kind: rdf.KindIRI}.IsIRI())
	assert.True(t, rdf.Term{Kind: rdf.KindBlank}.IsBlank())
	assert.True(t, rdf.Term{Kind: rdf.KindLiteral}.IsLiteral())
	assert.False(t, rdf.Term{Kind: rdf.KindIRI}.IsLiteral())
}

func TestLangMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		tag       string
		langRange string
		want      bool
	}{
		{name: "untagged always matches", tag: "", langRange: "en", want: true},
		{name: "exact match", tag: "en", langRange: "en", want: true},
		{name: "case insensitive", tag: "EN", langRange: "en", want: true},
		{name: "subtag matches primary", tag: "en-GB", langRange: "en", want: true},
		{name: "different language", tag: "no", langRange: "en", want: false},
		{name: "prefix without separator", tag: "eng", langRange: "en", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, rdf.LangMatches(tt.tag, tt.langRange))
		})
	}
}
