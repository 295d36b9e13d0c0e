package main

import (
	_ "embed"
	"strings"

	"github.com/fieldscan/fieldscan/internal/build"
)

//go:embed VERSION
var fallbackVersionText []byte

// fallbackVersion returns a version string to use for when the version
// isn't explicitly set at build time. The version string will always
// have -devel appended to it.
func fallbackVersion() string {
	return fallbackVersionFromText(fallbackVersionText)
}

func fallbackVersionFromText(data []byte) string {
	version := strings.TrimSpace(string(data))
	if version == "" {
		// We control the contents of the VERSION file, but just in case
		// it's empty keep whatever the build process set.
		return build.Version
	}

	// The VERSION file stores the version without the "v" prefix.
	return "v" + version + "-devel"
}
