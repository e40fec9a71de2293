package imf

import (
	"strings"

	"github.com/cognitedata/neat-imf-importer/pkg/rdf"
)

// identifierPrefix marks identifiers that went through compliance rewriting.
const identifierPrefix = "IMF_"

// CompliantIdentifier converts a source IRI or local name into an identifier
// accepted by the data-model backend: the namespace is stripped, hyphens
// become underscores, and the IMF_ prefix is added.
func CompliantIdentifier(identifier string) string {
	return identifierPrefix + strings.ReplaceAll(rdf.LocalName(identifier), "-", "_")
}

// CompliantValueType strips the namespace of a value type IRI. Value types
// keep their local names unprefixed so primitive types stay recognizable.
func CompliantValueType(valueType string) string {
	return rdf.LocalName(valueType)
}

// applyCompliance rewrites all extracted identifiers in place.
func applyCompliance(concepts []conceptRecord, properties []propertyRecord) {
	for i := range concepts {
		concepts[i].ID = CompliantIdentifier(concepts[i].ID)

		for j, parent := range concepts[i].Implements {
			concepts[i].Implements[j] = CompliantIdentifier(parent)
		}
	}

	for i := range properties {
		properties[i].Concept = CompliantIdentifier(properties[i].Concept)
		properties[i].Property = CompliantIdentifier(properties[i].Property)

		for j, valueType := range properties[i].ValueTypes {
			properties[i].ValueTypes[j] = CompliantValueType(valueType)
		}
	}
}
