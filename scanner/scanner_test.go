package scanner_test

import (
	"bytes"
	"testing"

	"github.com/fieldscan/fieldscan/scanner"
	"github.com/fieldscan/fieldscan/token"
	"github.com/stretchr/testify/require"
)

var fieldTestCases = []struct {
	name        string
	input       string
	expectEnd   int
	expectField string
}{
	{"two_words", "hello world", 5, "hello"},
	{"no_delimiter", "hello", 5, "hello"},
	{"empty", "", 0, ""},
	{"leading_delimiter", " leading", 0, ""},
	{"short_fields", "a b c", 1, "a"},
	{"only_delimiter", " ", 0, ""},
	{"trailing_delimiter", "hello ", 5, "hello"},
	{"adjacent_delimiters", "a  b", 1, "a"},
	{"delimiter_last_byte", "ab ", 2, "ab"},
	{"high_bytes", "\xff\xfe \xfd", 2, "\xff\xfe"},
}

func TestFieldEnd(t *testing.T) {
	for _, tc := range fieldTestCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expectEnd, scanner.FieldEnd([]byte(tc.input)))
			require.Equal(t, tc.expectEnd, scanner.FieldEndString(tc.input))
		})
	}
}

func TestFieldEnd_NilInput(t *testing.T) {
	require.Equal(t, 0, scanner.FieldEnd(nil))
}

func TestFirstField(t *testing.T) {
	for _, tc := range fieldTestCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expectField, string(scanner.FirstField([]byte(tc.input))))
			require.Equal(t, tc.expectField, scanner.FirstFieldString(tc.input))
		})
	}
}

// FirstField must return a window into its input, not a copy: a write to
// the input shows through the previously returned field.
func TestFirstField_ZeroCopy(t *testing.T) {
	b := []byte("hello world")
	field := scanner.FirstField(b)

	b[0] = 'j'
	require.Equal(t, "jello", string(field))
}

// Two scans of the same unmodified sequence agree on both content and
// bounds.
func TestFirstField_Idempotent(t *testing.T) {
	b := []byte("hello world")

	first := scanner.FirstField(b)
	second := scanner.FirstField(b)
	require.Equal(t, string(first), string(second))
	require.Equal(t, scanner.FirstFieldSpan(b), scanner.FirstFieldSpan(b))
}

func TestFirstFieldSpan(t *testing.T) {
	for _, tc := range fieldTestCases {
		t.Run(tc.name, func(t *testing.T) {
			b := []byte(tc.input)
			span := scanner.FirstFieldSpan(b)

			require.Equal(t, token.Span{Start: 0, End: tc.expectEnd}, span)
			require.Equal(t, tc.expectField, string(span.Cut(b)))
		})
	}
}

func TestSplitFirst(t *testing.T) {
	tt := []struct {
		name        string
		input       string
		expectField string
		expectRest  string
		expectNil   bool
	}{
		{"two_words", "hello world", "hello", "world", false},
		{"no_delimiter", "hello", "hello", "", true},
		{"empty", "", "", "", true},
		{"leading_delimiter", " leading", "", "leading", false},
		{"trailing_delimiter", "hello ", "hello", "", false},
		{"adjacent_delimiters", "a  b", "a", " b", false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			field, rest := scanner.SplitFirst([]byte(tc.input))
			require.Equal(t, tc.expectField, string(field))
			if tc.expectNil {
				require.Nil(t, rest)
			} else {
				require.NotNil(t, rest)
				require.Equal(t, tc.expectRest, string(rest))
			}
		})
	}
}

// SplitFirst partitions its input: when a delimiter is present the two
// halves plus the delimiter reassemble the original sequence.
func TestSplitFirst_Partitions(t *testing.T) {
	for _, tc := range fieldTestCases {
		t.Run(tc.name, func(t *testing.T) {
			b := []byte(tc.input)
			field, rest := scanner.SplitFirst(b)

			if rest == nil {
				require.Equal(t, tc.input, string(field))
				return
			}
			reassembled := string(field) + string(scanner.Delimiter) + string(rest)
			require.Equal(t, tc.input, reassembled)
		})
	}
}

func BenchmarkFieldEnd(b *testing.B) {
	input := bytes.Repeat([]byte{'x'}, 1024)
	input = append(input, scanner.Delimiter)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = scanner.FieldEnd(input)
	}
}

func BenchmarkFirstField(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, tc := range fieldTestCases {
			_ = scanner.FirstField([]byte(tc.input))
		}
	}
}

func FuzzFieldEnd(f *testing.F) {
	for _, tc := range fieldTestCases {
		f.Add([]byte(tc.input))
	}

	f.Fuzz(func(t *testing.T, b []byte) {
		end := scanner.FieldEnd(b)

		require.GreaterOrEqual(t, end, 0)
		require.LessOrEqual(t, end, len(b))

		// Either the scan stopped on a delimiter or it ran off the end.
		if end < len(b) {
			require.Equal(t, scanner.Delimiter, b[end])
		}

		// Leftmost match: the field itself is delimiter-free.
		require.NotContains(t, string(b[:end]), string(scanner.Delimiter))
	})
}
