// Package build exposes information about how the running binary was
// built. The exported variables are meant to be set at link time using
// -ldflags.
package build

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/blang/semver/v4"
)

var (
	Version   string
	Revision  string
	Branch    string
	BuildUser string
	BuildDate string
	GoVersion = runtime.Version()
)

// Print returns human-readable version information for the named
// program.
func Print(program string) string {
	return fmt.Sprintf(
		"%s, version %s (branch: %s, revision: %s)\n"+
			"  build user:       %s\n"+
			"  build date:       %s\n"+
			"  go version:       %s\n"+
			"  platform:         %s",
		program, normalizeVersion(Version), Branch, Revision,
		BuildUser, BuildDate, GoVersion,
		runtime.GOOS+"/"+runtime.GOARCH,
	)
}

// normalizeVersion converts a bare semantic version into the v-prefixed
// form. Strings which are not semantic versions pass through unchanged,
// and an unset version reports as v0.0.0.
func normalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "v0.0.0"
	}

	sv, err := semver.ParseTolerant(v)
	if err != nil {
		return v
	}
	return "v" + sv.String()
}
