// Package rdf provides an indexed in-memory triple store for RDF sources,
// built on the knakk/rdf decoders.
package rdf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	knakk "github.com/knakk/rdf"
)

// Format identifies an RDF serialization format.
type Format string

// Supported serialization formats.
const (
	FormatTurtle   Format = "turtle"
	FormatNTriples Format = "ntriples"
	FormatRDFXML   Format = "rdfxml"
)

// ErrUnknownFormat is returned when a file extension maps to no known format.
var ErrUnknownFormat = errors.New("unknown RDF format")

// RDFTypeIRI is the rdf:type predicate.
const RDFTypeIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// Well-known namespaces bound on every graph, mirroring the NEAT defaults.
const (
	NamespaceIMF  = "http://ns.imfid.org/imf#"
	NamespaceSH   = "http://www.w3.org/ns/shacl#"
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceSKOS = "http://www.w3.org/2004/02/skos/core#"
	NamespaceXSD  = "http://www.w3.org/2001/XMLSchema#"
	NamespaceOWL  = "http://www.w3.org/2002/07/owl#"
)

// Graph is an in-memory triple store indexed by subject and predicate,
// with a secondary index on rdf:type.
type Graph struct {
	prefixes map[string]string

	// spo maps subject value -> predicate IRI -> objects in triple order.
	spo map[string]map[string][]Term

	// subjects maps subject value to its term, preserving kind information.
	subjects map[string]Term

	// typed maps class IRI -> subject values in first-seen order.
	typed map[string][]string

	count int
}

// NewGraph creates an empty graph with the default namespace bindings.
func NewGraph() *Graph {
	g := &Graph{
		prefixes: make(map[string]string),
		spo:      make(map[string]map[string][]Term),
		subjects: make(map[string]Term),
		typed:    make(map[string][]string),
	}

	g.Bind("imf", NamespaceIMF)
	g.Bind("sh", NamespaceSH)
	g.Bind("rdf", NamespaceRDF)
	g.Bind("rdfs", NamespaceRDFS)
	g.Bind("skos", NamespaceSKOS)
	g.Bind("xsd", NamespaceXSD)
	g.Bind("owl", NamespaceOWL)

	return g
}

// Bind associates a prefix with a namespace IRI.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Namespaces returns the bound prefix-to-namespace table.
func (g *Graph) Namespaces() map[string]string {
	out := make(map[string]string, len(g.prefixes))
	for prefix, namespace := range g.prefixes {
		out[prefix] = namespace
	}

	return out
}

// Len returns the number of triples added to the graph.
func (g *Graph) Len() int {
	return g.count
}

// Parse decodes triples from the reader in the given format and adds them
// to the graph.
func (g *Graph) Parse(r io.Reader, format Format) error {
	dec := knakk.NewTripleDecoder(r, knakkFormat(format))

	for {
		triple, err := dec.Decode()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("decode %s: %w", format, err)
		}

		g.add(triple)
	}
}

// ParseFile reads an RDF file, detecting the format from the extension.
func (g *Graph) ParseFile(path string) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open rdf file: %w", err)
	}
	defer file.Close()

	return g.Parse(file, format)
}

// DetectFormat maps a file extension to an RDF serialization format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttl":
		return FormatTurtle, nil
	case ".nt":
		return FormatNTriples, nil
	case ".rdf", ".owl", ".xml":
		return FormatRDFXML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// SubjectsOfType returns the subjects typed rdf:type class, in first-seen order.
func (g *Graph) SubjectsOfType(class string) []Term {
	values := g.typed[class]
	subjects := make([]Term, 0, len(values))

	for _, value := range values {
		subjects = append(subjects, g.subjects[value])
	}

	return subjects
}

// Objects returns all objects of triples with the given subject and predicate,
// in triple order.
func (g *Graph) Objects(subject, predicate string) []Term {
	predicates, ok := g.spo[subject]
	if !ok {
		return nil
	}

	objects := make([]Term, len(predicates[predicate]))
	copy(objects, predicates[predicate])

	return objects
}

// FirstObject returns the first object of the given subject and predicate.
func (g *Graph) FirstObject(subject, predicate string) (Term, bool) {
	objects := g.spo[subject][predicate]
	if len(objects) == 0 {
		return Term{}, false
	}

	return objects[0], true
}

func (g *Graph) add(triple knakk.Triple) {
	subject := fromKnakk(triple.Subj)
	predicate := fromKnakk(triple.Pred)
	object := fromKnakk(triple.Obj)

	if _, seen := g.subjects[subject.Value]; !seen {
		g.subjects[subject.Value] = subject
	}

	predicates, ok := g.spo[subject.Value]
	if !ok {
		predicates = make(map[string][]Term)
		g.spo[subject.Value] = predicates
	}

	predicates[predicate.Value] = append(predicates[predicate.Value], object)
	g.count++

	if predicate.Value == RDFTypeIRI && object.IsIRI() {
		g.indexType(object.Value, subject.Value)
	}
}

func (g *Graph) indexType(class, subject string) {
	for _, existing := range g.typed[class] {
		if existing == subject {
			return
		}
	}

	g.typed[class] = append(g.typed[class], subject)
}

func knakkFormat(format Format) knakk.Format {
	switch format {
	case FormatNTriples:
		return knakk.NTriples
	case FormatRDFXML:
		return knakk.RDFXML
	case FormatTurtle:
		return knakk.Turtle
	default:
		return knakk.Turtle
	}
}
