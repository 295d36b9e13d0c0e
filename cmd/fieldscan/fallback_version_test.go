package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldscan/fieldscan/internal/build"
)

func TestFallbackVersionFromText(t *testing.T) {
	assert.Equal(t, "v0.1.0-devel", fallbackVersionFromText([]byte("0.1.0\n")))
	assert.Equal(t, "v1.2.3-devel", fallbackVersionFromText([]byte("1.2.3")))

	// An empty VERSION file keeps whatever was set at build time.
	assert.Equal(t, build.Version, fallbackVersionFromText([]byte("  \n")))
}

func TestFallbackVersionIsEmbedded(t *testing.T) {
	assert.NotEmpty(t, fallbackVersion())
}
