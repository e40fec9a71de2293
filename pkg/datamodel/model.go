// Package datamodel defines the unverified conceptual data model produced
// by data-model importers, plus its identifier and serialization schema.
package datamodel

import (
	"time"
)

// RoleInformation is the role recorded for conceptual data models.
const RoleInformation = "information architect"

// DefaultCreator is the creator recorded for imported data models.
const DefaultCreator = "Neat"

// Metadata describes the imported data model.
type Metadata struct {
	Role        string    `json:"role"        yaml:"role"`
	Space       string    `json:"space"       yaml:"space"`
	ExternalID  string    `json:"external_id" yaml:"external_id"`
	Version     string    `json:"version"     yaml:"version"`
	Created     time.Time `json:"created"     yaml:"created"`
	Updated     time.Time `json:"updated"     yaml:"updated"`
	Name        string    `json:"name,omitempty"        yaml:"name,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Creator     string    `json:"creator"     yaml:"creator"`
}

// Concept is an unverified concept definition.
type Concept struct {
	// Concept is the concept identifier.
	Concept string `json:"concept" yaml:"concept"`

	// Name is the preferred label, if any.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Description is the definition or comment, if any.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Implements lists parent concept identifiers.
	Implements []string `json:"implements,omitempty" yaml:"implements,omitempty"`
}

// Property is an unverified property definition attached to a concept.
type Property struct {
	// Concept is the owning concept identifier.
	Concept string `json:"concept" yaml:"concept"`

	// Property is the property identifier.
	Property string `json:"property" yaml:"property"`

	// Name is the preferred label, if any.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Description is the definition, if any.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// ValueType is the comma-joined list of value type identifiers.
	ValueType string `json:"value_type" yaml:"value_type"`

	// MinCount is the minimum cardinality, when constrained.
	MinCount *int `json:"min_count,omitempty" yaml:"min_count,omitempty"`

	// MaxCount is the maximum cardinality, when constrained.
	MaxCount *int `json:"max_count,omitempty" yaml:"max_count,omitempty"`

	// Default is the fixed or default value, if any.
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// ConceptualDataModel is the unverified conceptual data model: metadata plus
// the concepts and properties extracted from a source.
type ConceptualDataModel struct {
	Metadata   Metadata   `json:"metadata"   yaml:"metadata"`
	Concepts   []Concept  `json:"concepts"   yaml:"concepts"`
	Properties []Property `json:"properties" yaml:"properties"`
}

// ImportedDataModel wraps an unverified data model together with the
// source-specific context an importer wants to pass along.
type ImportedDataModel struct {
	Model   *ConceptualDataModel `json:"model"   yaml:"model"`
	Context map[string]any       `json:"context" yaml:"context"`
}

// NewMetadata builds metadata for an imported model with second-precision
// timestamps, mirroring the verified-model conventions.
func NewMetadata(id ID, description string) Metadata {
	now := time.Now().Truncate(time.Second)

	return Metadata{
		Role:        RoleInformation,
		Space:       id.Space,
		ExternalID:  id.ExternalID,
		Version:     id.Version,
		Created:     now,
		Updated:     now,
		Description: description,
		Creator:     DefaultCreator,
	}
}
