package fieldscancli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/units"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/fieldscan/fieldscan"
	"github.com/fieldscan/fieldscan/diag"
	"github.com/fieldscan/fieldscan/encoding/scanjson"
	"github.com/fieldscan/fieldscan/encoding/scanyaml"
	"github.com/fieldscan/fieldscan/internal/runtime/logging"
	"github.com/fieldscan/fieldscan/internal/viewmode"
	"github.com/fieldscan/fieldscan/printer"
	"github.com/fieldscan/fieldscan/scanner"
	"github.com/fieldscan/fieldscan/token"
	"github.com/fieldscan/fieldscan/view"
)

// Supported output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func scanCommand() *cobra.Command {
	s := &fieldscanScan{
		output:       formatText,
		views:        viewmode.ModeChecked,
		maxLineBytes: (64 * units.KiB).String(),
		logLevel:     string(logging.LevelDefault),
		logFormat:    string(logging.FormatDefault),
	}

	cmd := &cobra.Command{
		Use:   "scan [flags] [file ...]",
		Short: "Locate the first field of each input line",
		Long: `The scan subcommand reads inputs line by line and reports the first
field of every line: the bytes before the first space, the whole line
when it contains no space, and the empty field when it starts with one.

Each file argument is scanned in order. If no arguments are given, or if
a file argument is "-", scan reads from standard input. Results go to
standard output; problems with the inputs are reported to standard error
and cause a non-zero exit code after the remaining inputs have been
scanned.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,

		RunE: func(_ *cobra.Command, args []string) error {
			return s.Run(args)
		},
	}

	// Output flags
	cmd.Flags().StringVar(&s.output, "output.format", s.output, fmt.Sprintf("The format used to print results. Supported formats: %s.", strings.Join(supportedFormats(), ", ")))
	cmd.Flags().BoolVar(&s.offsets, "output.offsets", s.offsets, "Include the boundary offset of each field.")
	cmd.Flags().BoolVar(&s.annotate, "output.annotate", s.annotate, "Echo each input line and mark the located field under it.")
	cmd.Flags().BoolVar(&s.colorize, "output.color", s.colorize, "Colorize annotations and diagnostics.")

	// Scan flags
	cmd.Flags().Var(&s.views, "scan.views", fmt.Sprintf("How scanned fields are held while results are built. Supported values: %s.", strings.Join(viewmode.AllowedValues(), ", ")))
	cmd.Flags().StringVar(&s.maxLineBytes, "scan.max-line-bytes", s.maxLineBytes, "Longest input line to accept.")

	// Log flags
	cmd.Flags().StringVar(&s.logLevel, "log.level", s.logLevel, "Level at which log lines are written.")
	cmd.Flags().StringVar(&s.logFormat, "log.format", s.logFormat, "Format used for writing log lines.")

	return cmd
}

type fieldscanScan struct {
	output   string
	offsets  bool
	annotate bool
	colorize bool

	views        viewmode.Mode
	maxLineBytes string

	logLevel  string
	logFormat string

	// stdin, stdout and stderr default to the process streams when nil.
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (s *fieldscanScan) Run(files []string) error {
	stdin := s.stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := s.stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := s.stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	logger, err := logging.New(stderr, logging.Options{
		Level:  logging.Level(s.logLevel),
		Format: logging.Format(s.logFormat),
	})
	if err != nil {
		return err
	}

	switch s.output {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unsupported output format %q; supported formats: %s", s.output, strings.Join(supportedFormats(), ", "))
	}

	if s.views == viewmode.ModeUndefined {
		return fmt.Errorf("view mode must be one of: %s", strings.Join(viewmode.AllowedValues(), ", "))
	}

	maxLine, err := units.ParseBase2Bytes(s.maxLineBytes)
	if err != nil {
		return fmt.Errorf("invalid scan.max-line-bytes: %w", err)
	}
	if maxLine <= 0 {
		return fmt.Errorf("scan.max-line-bytes must be positive, got %s", maxLine)
	}

	if len(files) == 0 {
		files = []string{"-"}
	}

	var (
		ds      diag.Diagnostics
		results []fieldscan.Result

		cfg = printer.Config{
			Offsets:  s.offsets,
			Annotate: s.annotate,
			Color:    s.colorize,
		}

		// Results are streamed for text output and gathered into a
		// single document for json and yaml.
		buffered   = s.output != formatText
		totalLines = 0
	)

	for _, file := range files {
		var (
			name   string
			r      io.Reader
			closer io.Closer
		)
		switch file {
		case "-":
			name, r = "<stdin>", stdin
		default:
			f, err := os.Open(file)
			if err != nil {
				ds.Add(diag.Errorf(token.Position{Filename: file}, "opening input: %s", err))
				continue
			}
			name, r, closer = file, f, f
		}

		lines, fileDiags, err := s.scanReader(name, r, int(maxLine), cfg, stdout, buffered, &results)
		if closer != nil {
			_ = closer.Close()
		}
		ds.Merge(fileDiags)
		totalLines += lines
		if err != nil {
			return err
		}
		level.Debug(logger).Log("msg", "scanned input", "file", name, "lines", lines)
	}

	switch s.output {
	case formatJSON:
		bb, err := scanjson.MarshalIndent(results)
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		fmt.Fprintln(stdout, string(bb))
	case formatYAML:
		bb, err := scanyaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		fmt.Fprint(stdout, string(bb))
	}

	level.Debug(logger).Log("msg", "scan finished", "files", len(files), "lines", totalLines, "diagnostics", len(ds))

	if len(ds) > 0 {
		if err := cfg.FprintDiagnostics(stderr, ds); err != nil {
			return err
		}
		if ds.HasErrors() {
			return ds.ErrorOrNil()
		}
	}
	return nil
}

// scanReader scans r line by line, either streaming each result to out
// or appending it to results for a buffered output format. Problems
// with the input come back as diagnostics rather than an error, so one
// bad input does not stop the remaining files.
func (s *fieldscanScan) scanReader(name string, r io.Reader, maxLine int, cfg printer.Config, out io.Writer, buffered bool, results *[]fieldscan.Result) (int, diag.Diagnostics, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLine)

	var ds diag.Diagnostics
	line := 0
	for sc.Scan() {
		line++
		pos := token.Position{Filename: name, Line: line, Column: 1}

		res := s.scanLine(pos, sc.Bytes())
		if buffered {
			*results = append(*results, res)
			continue
		}
		if err := cfg.Fprint(out, res); err != nil {
			return line, ds, fmt.Errorf("printing results: %w", err)
		}
	}

	if err := sc.Err(); err != nil {
		pos := token.Position{Filename: name, Line: line + 1, Column: 1}
		if errors.Is(err, bufio.ErrTooLong) {
			ds.Add(diag.Errorf(pos, "line exceeds the %s limit", units.Base2Bytes(maxLine)))
		} else {
			ds.Add(diag.Errorf(pos, "reading input: %s", err))
		}
	}
	return line, ds, nil
}

// scanLine locates the first field of line. The view modes all produce
// the same result; they differ in how the field's bytes are held
// between locating the boundary and building the result. line aliases
// the scanner's buffer, so every mode finishes its reads before
// returning.
func (s *fieldscanScan) scanLine(pos token.Position, line []byte) fieldscan.Result {
	switch s.views {
	case viewmode.ModeChecked:
		buf := view.NewBuffer(line)
		w := buf.FirstField()
		return fieldscan.Result{
			Position: pos,
			Input:    buf.String(),
			Offset:   w.Span().End,
			Field:    w.String(),
		}

	case viewmode.ModeCopy:
		input := view.Snapshot(line).String()
		off := fieldscan.Boundary(input)
		return fieldscan.Result{
			Position: pos,
			Input:    input,
			Offset:   off,
			Field:    input[:off],
		}

	default:
		off := scanner.FieldEnd(line)
		field := scanner.FirstField(line)
		return fieldscan.Result{
			Position: pos,
			Input:    string(line),
			Offset:   off,
			Field:    string(field),
		}
	}
}

func supportedFormats() []string {
	return []string{formatText, formatJSON, formatYAML}
}
