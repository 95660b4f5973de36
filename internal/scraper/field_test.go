package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldOrNA(t *testing.T) {
	assert.Equal(t, "Mechanik", Found("  Mechanik \n").OrNA())
	assert.Equal(t, "", Found("   ").OrNA(), "present but empty element stays empty")
	assert.Equal(t, NA, Absent().OrNA())
}
