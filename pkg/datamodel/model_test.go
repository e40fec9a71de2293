package datamodel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cognitedata/neat-imf-importer/pkg/datamodel"
)

func TestNewMetadata(t *testing.T) {
	t.Parallel()

	id := datamodel.ID{Space: "pump_lib", ExternalID: "PumpModel", Version: "v2"}

	meta := datamodel.NewMetadata(id, "imported model")

	assert.Equal(t, datamodel.RoleInformation, meta.Role)
	assert.Equal(t, "pump_lib", meta.Space)
	assert.Equal(t, "PumpModel", meta.ExternalID)
	assert.Equal(t, "v2", meta.Version)
	assert.Equal(t, datamodel.DefaultCreator, meta.Creator)
	assert.Equal(t, "imported model", meta.Description)
}

func TestNewMetadata_SecondPrecisionTimestamps(t *testing.T) {
	t.Parallel()

	meta := datamodel.NewMetadata(datamodel.DefaultIMFModelID, "")

	assert.True(t, meta.Created.Equal(meta.Updated))
	assert.Equal(t, 0, meta.Created.Nanosecond())
	assert.WithinDuration(t, time.Now(), meta.Created, 2*time.Second)
}
