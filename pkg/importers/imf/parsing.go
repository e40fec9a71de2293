package imf

import (
	"strconv"

	"github.com/cognitedata/neat-imf-importer/pkg/issues"
	"github.com/cognitedata/neat-imf-importer/pkg/rdf"
)

// conceptRecord is a concept extracted from the type library graph.
type conceptRecord struct {
	ID          string
	Name        string
	Description string
	Implements  []string
}

// propertyRecord is a property extracted from a concept's SHACL shapes.
type propertyRecord struct {
	Concept     string
	Property    string
	Name        string
	Description string
	ValueTypes  []string
	MinCount    *int
	MaxCount    *int
	Default     string
}

// conceptClasses are the IMF types that define concepts, in extraction order.
var conceptClasses = []string{iriBlockType, iriTerminalType, iriAttributeType}

// parseConcepts extracts concept definitions for all IMF block, terminal,
// and attribute types in the graph. Blank subjects are skipped; blank
// parents are reported as retrieval warnings. Attribute types without an
// explicit parent implement imf:Attribute.
func parseConcepts(graph *rdf.Graph, language string, list *issues.List) []conceptRecord {
	index := make(map[string]*conceptRecord)
	order := make([]string, 0)

	for _, class := range conceptClasses {
		for _, subject := range graph.SubjectsOfType(class) {
			if subject.IsBlank() {
				continue
			}

			record, seen := index[subject.Value]
			if !seen {
				record = &conceptRecord{ID: subject.Value}
				index[subject.Value] = record
				order = append(order, subject.Value)
			}

			collectImplements(graph, subject.Value, record, list)

			if class == iriAttributeType && len(record.Implements) == 0 {
				record.Implements = append(record.Implements, iriAttribute)
			}

			names := append(graph.Objects(subject.Value, iriLabel), graph.Objects(subject.Value, iriPrefLabel)...)
			assignMeta(&record.Name, names, language, "concept", subject.Value, "name", list)

			descriptions := append(graph.Objects(subject.Value, iriComment), graph.Objects(subject.Value, iriDefinition)...)
			assignMeta(&record.Description, descriptions, language, "concept", subject.Value, "description", list)
		}
	}

	if len(order) == 0 {
		list.Append(issues.NewValueError("unable to parse concepts"))

		return nil
	}

	records := make([]conceptRecord, 0, len(order))
	for _, id := range order {
		records = append(records, *index[id])
	}

	return records
}

func collectImplements(graph *rdf.Graph, subject string, record *conceptRecord, list *issues.List) {
	for _, parent := range graph.Objects(subject, iriSubClassOf) {
		if parent.IsBlank() {
			list.Append(issues.NewRetrievalWarning(
				subject, "implements", "unable to determine concept that is being implemented",
			))

			continue
		}

		if !parent.IsIRI() {
			continue
		}

		record.Implements = appendDistinct(record.Implements, parent.Value)
	}
}

// parseProperties extracts property definitions: SHACL property shapes on
// blocks and terminals, plus the synthetic imf:predicate property carried
// by every attribute type.
func parseProperties(graph *rdf.Graph, language string, list *issues.List) []propertyRecord {
	index := make(map[string]*propertyRecord)
	order := make([]string, 0)

	for _, class := range []string{iriBlockType, iriTerminalType} {
		for _, subject := range graph.SubjectsOfType(class) {
			if subject.IsBlank() {
				continue
			}

			parseShapeProperties(graph, subject.Value, language, index, &order, list)
		}
	}

	parseAttributeProperties(graph, index, &order)

	if len(order) == 0 {
		list.Append(issues.NewValueError("unable to parse properties"))

		return nil
	}

	records := make([]propertyRecord, 0, len(order))
	for _, key := range order {
		records = append(records, *index[key])
	}

	return records
}

func parseShapeProperties(
	graph *rdf.Graph,
	concept, language string,
	index map[string]*propertyRecord,
	order *[]string,
	list *issues.List,
) {
	for _, shape := range graph.Objects(concept, iriSHProperty) {
		path, ok := graph.FirstObject(shape.Value, iriSHPath)
		if !ok || path.IsBlank() {
			continue
		}

		valueType, resolved := resolveValueType(graph, shape.Value, path.Value)
		if !resolved {
			list.Append(issues.NewRetrievalWarning(
				path.Value, "property", "unable to determine value type of property",
			))

			continue
		}

		key := concept + "." + path.Value

		record, seen := index[key]
		if !seen {
			record = &propertyRecord{
				Concept:    concept,
				Property:   path.Value,
				ValueTypes: []string{valueType},
				MinCount:   intObject(graph, shape.Value, iriSHMinCount),
				MaxCount:   intObject(graph, shape.Value, iriSHMaxCount),
			}

			if defaultValue, hasDefault := graph.FirstObject(shape.Value, iriSHHasValue); hasDefault {
				record.Default = defaultValue.Value
			}

			index[key] = record
			*order = append(*order, key)
		} else {
			record.ValueTypes = appendDistinct(record.ValueTypes, valueType)
		}

		assignMeta(&record.Name, graph.Objects(path.Value, iriPrefLabel), language, "property", key, "name", list)
		assignMeta(
			&record.Description, graph.Objects(path.Value, iriDefinition), language, "property", key, "description", list,
		)
	}
}

// parseAttributeProperties emits the synthetic imf:predicate property for
// attribute types: the value type is xsd:anyURI and the default is the
// predicate target.
func parseAttributeProperties(graph *rdf.Graph, index map[string]*propertyRecord, order *[]string) {
	for _, subject := range graph.SubjectsOfType(iriAttributeType) {
		if subject.IsBlank() {
			continue
		}

		for _, target := range graph.Objects(subject.Value, iriPredicate) {
			key := subject.Value + "." + iriPredicate

			record, seen := index[key]
			if !seen {
				record = &propertyRecord{
					Concept:    subject.Value,
					Property:   iriPredicate,
					ValueTypes: []string{iriXSDAnyURI},
					Default:    target.Value,
				}

				index[key] = record
				*order = append(*order, key)

				continue
			}

			record.ValueTypes = appendDistinct(record.ValueTypes, iriXSDAnyURI)
		}
	}
}

// resolveValueType determines the value type of a property shape: sh:class
// on the shape, else sh:class behind sh:qualifiedValueShape, else the
// rdfs:range of the path property.
func resolveValueType(graph *rdf.Graph, shape, path string) (string, bool) {
	if class, ok := graph.FirstObject(shape, iriSHClass); ok && !class.IsBlank() {
		return class.Value, true
	}

	if qualified, ok := graph.FirstObject(shape, iriSHQualifiedValueShape); ok {
		if class, ok2 := graph.FirstObject(qualified.Value, iriSHClass); ok2 && !class.IsBlank() {
			return class.Value, true
		}
	}

	if valueRange, ok := graph.FirstObject(path, iriRange); ok && !valueRange.IsBlank() {
		return valueRange.Value, true
	}

	return "", false
}

// assignMeta fills a metadata field from candidate literals, keeping the
// first language-matching value and warning when a later candidate
// contradicts it.
func assignMeta(
	field *string,
	candidates []rdf.Term,
	language, resourceType, resource, feature string,
	list *issues.List,
) {
	for _, candidate := range candidates {
		if !candidate.IsLiteral() || !rdf.LangMatches(candidate.Lang, language) {
			continue
		}

		if *field == "" {
			*field = candidate.Value

			continue
		}

		if candidate.Value != *field {
			list.Append(issues.NewRedefinedWarning(resourceType, resource, feature, *field, candidate.Value))
		}
	}
}

func intObject(graph *rdf.Graph, subject, predicate string) *int {
	term, ok := graph.FirstObject(subject, predicate)
	if !ok || !term.IsLiteral() {
		return nil
	}

	value, err := strconv.Atoi(term.Value)
	if err != nil {
		return nil
	}

	return &value
}

func appendDistinct(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}

	return append(values, value)
}
