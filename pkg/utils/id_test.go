package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "kaju-katli", Slugify("Kaju Katli"))
	assert.Equal(t, "gulab-jamun-1kg", Slugify("  Gulab Jamun (1kg)  "))
	assert.Equal(t, "motichoor-ladoo", Slugify("Motichoor---Ladoo"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestInvoiceNumber(t *testing.T) {
	id, err := uuid.Parse("a1b2c3d4-e5f6-7890-abcd-ef0123456789")
	require.NoError(t, err)

	assert.Equal(t, "a1b2c3d4", InvoiceNumber(id))
}

func TestCatalogID(t *testing.T) {
	id := CatalogID()
	assert.Len(t, id, 12)
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, CatalogID())
}
