package rdf

import (
	"strings"

	knakk "github.com/knakk/rdf"
)

// TermKind identifies the kind of an RDF term.
type TermKind int

// Term kinds.
const (
	KindIRI TermKind = iota
	KindBlank
	KindLiteral
)

// Term is a graph node: an IRI, a blank node, or a literal.
type Term struct {
	// Value is the IRI string, blank node id, or literal lexical form.
	Value string

	// Kind is the term kind.
	Kind TermKind

	// Lang is the language tag of a language-tagged literal, else empty.
	Lang string

	// Datatype is the datatype IRI of a typed literal, else empty.
	Datatype string
}

// IsBlank reports whether the term is a blank node.
func (t Term) IsBlank() bool {
	return t.Kind == KindBlank
}

// IsIRI reports whether the term is an IRI.
func (t Term) IsIRI() bool {
	return t.Kind == KindIRI
}

// IsLiteral reports whether the term is a literal.
func (t Term) IsLiteral() bool {
	return t.Kind == KindLiteral
}

// String returns the term value.
func (t Term) String() string {
	return t.Value
}

// LocalName returns the IRI fragment after "#", or after the last "/" when
// the IRI has no fragment. Non-IRI terms are returned unchanged.
func (t Term) LocalName() string {
	if t.Kind != KindIRI {
		return t.Value
	}

	return LocalName(t.Value)
}

// LocalName strips the namespace part of an IRI: the fragment after "#" when
// present, otherwise the segment after the last "/". Strings that are not
// IRIs are returned unchanged.
func LocalName(iri string) string {
	if !isIRI(iri) {
		return iri
	}

	if idx := strings.LastIndex(iri, "#"); idx >= 0 {
		return iri[idx+1:]
	}

	if idx := strings.LastIndex(iri, "/"); idx >= 0 {
		return iri[idx+1:]
	}

	return iri
}

func isIRI(s string) bool {
	idx := strings.Index(s, "://")

	return idx > 0 && idx+len("://") < len(s)
}

// LangMatches implements SPARQL LANGMATCHES semantics for a primary-subtag
// range: untagged literals always match, tagged literals match when the tag
// equals the range or starts with it followed by a subtag separator.
func LangMatches(tag, langRange string) bool {
	if tag == "" {
		return true
	}

	tag = strings.ToLower(tag)
	langRange = strings.ToLower(langRange)

	return tag == langRange || strings.HasPrefix(tag, langRange+"-")
}

// fromKnakk converts a knakk/rdf term into the internal representation.
func fromKnakk(term knakk.Term) Term {
	switch term.Type() {
	case knakk.TermBlank:
		return Term{Value: term.String(), Kind: KindBlank}
	case knakk.TermLiteral:
		lit, ok := term.(knakk.Literal)
		if !ok {
			return Term{Value: term.String(), Kind: KindLiteral}
		}

		return Term{
			Value:    lit.String(),
			Kind:     KindLiteral,
			Lang:     lit.Lang(),
			Datatype: lit.DataType.String(),
		}
	default:
		return Term{Value: term.String(), Kind: KindIRI}
	}
}
