// Package viewmode selects how the scan command hands out the fields it
// locates: as plain aliasing slices, as runtime-checked views, or as
// detached copies.
package viewmode

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Mode is the strategy used for the lifetime of scanned fields.
type Mode int

const (
	// ModeUndefined is the default value for Mode, which indicates an
	// error and should never be used.
	ModeUndefined Mode = iota
	// ModeUnchecked hands out fields as plain subslices of the input
	// buffer. Reads after the buffer is reused are not detected.
	ModeUnchecked
	// ModeChecked routes every field through a view that panics when
	// read after the input buffer has been reused.
	ModeChecked
	// ModeCopy detaches every field into its own copy before the input
	// buffer can be reused.
	ModeCopy
)

// AllowedValues returns the strings Set accepts.
func AllowedValues() []string {
	return []string{
		ModeUnchecked.name(),
		ModeChecked.name(),
		ModeCopy.name(),
	}
}

var (
	// Mode implements the pflag.Value interface for use with Cobra flags.
	_ pflag.Value = (*Mode)(nil)

	modeToString = map[Mode]string{
		ModeUnchecked: "unchecked",
		ModeChecked:   "checked",
		ModeCopy:      "copy",
	}
)

func (m Mode) name() string {
	return modeToString[m]
}

// String implements the pflag.Value interface. The returned strings are
// "double-quoted" already.
func (m Mode) String() string {
	if str, ok := modeToString[m]; ok {
		return fmt.Sprintf("%q", str)
	}
	return "<invalid_view_mode>"
}

// Set implements the pflag.Value interface.
func (m *Mode) Set(str string) error {
	for k, v := range modeToString {
		if v == str {
			*m = k
			return nil
		}
	}
	return fmt.Errorf("invalid view mode %q", str)
}

// Type implements the pflag.Value interface. This value is displayed as
// a placeholder in help messages.
func (m Mode) Type() string {
	return "<view_mode>"
}
