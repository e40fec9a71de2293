package imf

import "github.com/cognitedata/neat-imf-importer/pkg/rdf"

// IMF vocabulary terms.
const (
	iriBlockType     = rdf.NamespaceIMF + "BlockType"
	iriTerminalType  = rdf.NamespaceIMF + "TerminalType"
	iriAttributeType = rdf.NamespaceIMF + "AttributeType"
	iriAttribute     = rdf.NamespaceIMF + "Attribute"
	iriPredicate     = rdf.NamespaceIMF + "predicate"
)

// SHACL terms used by IMF property shapes.
const (
	iriSHProperty            = rdf.NamespaceSH + "property"
	iriSHPath                = rdf.NamespaceSH + "path"
	iriSHClass               = rdf.NamespaceSH + "class"
	iriSHQualifiedValueShape = rdf.NamespaceSH + "qualifiedValueShape"
	iriSHMinCount            = rdf.NamespaceSH + "minCount"
	iriSHMaxCount            = rdf.NamespaceSH + "maxCount"
	iriSHHasValue            = rdf.NamespaceSH + "hasValue"
)

// RDFS and SKOS annotation terms.
const (
	iriSubClassOf = rdf.NamespaceRDFS + "subClassOf"
	iriLabel      = rdf.NamespaceRDFS + "label"
	iriComment    = rdf.NamespaceRDFS + "comment"
	iriRange      = rdf.NamespaceRDFS + "range"
	iriPrefLabel  = rdf.NamespaceSKOS + "prefLabel"
	iriDefinition = rdf.NamespaceSKOS + "definition"
)

// iriXSDAnyURI is the value type assigned to synthetic attribute properties.
const iriXSDAnyURI = rdf.NamespaceXSD + "anyURI"
