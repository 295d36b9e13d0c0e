package main

import (
	"github.com/fieldscan/fieldscan/internal/build"
	"github.com/fieldscan/fieldscan/internal/fieldscancli"
)

func init() {
	// If the build version wasn't set by the build process, set it based
	// on the version in the VERSION file.
	if build.Version == "" || build.Version == "v0.0.0" {
		build.Version = fallbackVersion()
	}
}

func main() {
	fieldscancli.Run()
}
