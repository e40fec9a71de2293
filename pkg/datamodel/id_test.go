package datamodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognitedata/neat-imf-importer/pkg/datamodel"
)

func TestNewID(t *testing.T) {
	t.Parallel()

	id, err := datamodel.NewID("pump_lib", "PumpModel", "v2")
	require.NoError(t, err)
	assert.Equal(t, "pump_lib/PumpModel/v2", id.String())
}

func TestNewID_MissingVersion(t *testing.T) {
	t.Parallel()

	_, err := datamodel.NewID("pump_lib", "PumpModel", "")
	require.ErrorIs(t, err, datamodel.ErrMissingVersion)
}

func TestNewID_MissingSpace(t *testing.T) {
	t.Parallel()

	_, err := datamodel.NewID("", "PumpModel", "v1")
	require.ErrorIs(t, err, datamodel.ErrInvalidModelID)
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := datamodel.ParseID("imf_space/IMFDataModel/v1")
	require.NoError(t, err)
	assert.Equal(t, datamodel.DefaultIMFModelID, id)
}

func TestParseID_WrongSegmentCount(t *testing.T) {
	t.Parallel()

	_, err := datamodel.ParseID("imf_space/IMFDataModel")
	require.ErrorIs(t, err, datamodel.ErrInvalidModelID)

	_, err = datamodel.ParseID("a/b/c/d")
	require.ErrorIs(t, err, datamodel.ErrInvalidModelID)
}

func TestDefaultIMFModelID_IsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, datamodel.DefaultIMFModelID.Validate())
}
