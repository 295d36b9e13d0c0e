// Package printer renders scan results and diagnostics for terminal
// output.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/fieldscan/fieldscan"
	"github.com/fieldscan/fieldscan/diag"
)

// Config controls how results are rendered. The zero Config prints the
// located field and nothing else.
type Config struct {
	// Offsets prefixes each field with its boundary offset.
	Offsets bool

	// Annotate echoes the scanned input and marks the located field and
	// boundary underneath it.
	Annotate bool

	// Color enables ANSI colors. When false, output never contains
	// escape sequences regardless of the terminal.
	Color bool
}

// Fprint renders res to w using the default Config.
func Fprint(w io.Writer, res fieldscan.Result) error {
	return Config{}.Fprint(w, res)
}

// Fprint renders res to w.
//
// The default rendering is the located field on its own line. With
// Offsets set, the field is prefixed with the boundary offset and a
// tab. With Annotate set, the input is echoed and a second line marks
// the field bytes with '~' and the boundary with '^'; Offsets then
// appends the offset after the marker instead of prefixing the field.
func (c Config) Fprint(w io.Writer, res fieldscan.Result) error {
	if c.Annotate {
		if _, err := fmt.Fprintln(w, res.Input); err != nil {
			return err
		}

		marker := strings.Repeat("~", res.Offset) + "^"
		if c.Offsets {
			marker += fmt.Sprintf(" %d", res.Offset)
		}
		_, err := fmt.Fprintln(w, c.markerColor().Sprint(marker))
		return err
	}

	if c.Offsets {
		_, err := fmt.Fprintf(w, "%d\t%s\n", res.Offset, res.Field)
		return err
	}

	_, err := fmt.Fprintln(w, res.Field)
	return err
}

// FprintDiagnostics renders ds to w, one diagnostic per line, with the
// severity level leading each line.
func (c Config) FprintDiagnostics(w io.Writer, ds diag.Diagnostics) error {
	for _, d := range ds {
		label := c.severityColor(d.Severity).Sprint(d.Severity.String())
		if _, err := fmt.Fprintf(w, "%s: %s\n", label, d.Error()); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) markerColor() *color.Color {
	return c.tint(color.New(color.FgGreen))
}

func (c Config) severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SeverityLevelError:
		return c.tint(color.New(color.FgRed, color.Bold))
	default:
		return c.tint(color.New(color.FgYellow))
	}
}

// tint forces the color on or off so output does not depend on whether
// the process is attached to a terminal.
func (c Config) tint(clr *color.Color) *color.Color {
	if c.Color {
		clr.EnableColor()
	} else {
		clr.DisableColor()
	}
	return clr
}
