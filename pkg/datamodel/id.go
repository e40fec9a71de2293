package datamodel

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel validation errors.
var (
	ErrMissingVersion = errors.New("version is required when setting a data model id")
	ErrInvalidModelID = errors.New("invalid data model id")
)

// idPartCount is the number of segments in a data model id string.
const idPartCount = 3

// ID identifies a data model by space, external id, and version.
type ID struct {
	Space      string `json:"space"       yaml:"space"`
	ExternalID string `json:"external_id" yaml:"external_id"`
	Version    string `json:"version"     yaml:"version"`
}

// DefaultIMFModelID is the data model id used when none is configured.
var DefaultIMFModelID = ID{Space: "imf_space", ExternalID: "IMFDataModel", Version: "v1"}

// NewID creates a data model id, validating that a version is present.
func NewID(space, externalID, version string) (ID, error) {
	id := ID{Space: space, ExternalID: externalID, Version: version}

	err := id.Validate()
	if err != nil {
		return ID{}, err
	}

	return id, nil
}

// ParseID parses a "space/externalID/version" string into an ID.
func ParseID(s string) (ID, error) {
	parts := strings.Split(s, "/")
	if len(parts) != idPartCount {
		return ID{}, fmt.Errorf("%w: %q (want space/externalID/version)", ErrInvalidModelID, s)
	}

	return NewID(parts[0], parts[1], parts[2])
}

// Validate checks that all id segments are present.
func (id ID) Validate() error {
	if id.Version == "" {
		return ErrMissingVersion
	}

	if id.Space == "" || id.ExternalID == "" {
		return fmt.Errorf("%w: space and external id must be set", ErrInvalidModelID)
	}

	return nil
}

// String renders the id as "space/externalID/version".
func (id ID) String() string {
	return id.Space + "/" + id.ExternalID + "/" + id.Version
}
