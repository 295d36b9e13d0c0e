package scanner_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/fieldscan/fieldscan/scanner"
	"github.com/stretchr/testify/require"
)

func TestScanFields(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		expect []string
	}{
		{"three_fields", "a b c", []string{"a", "b", "c"}},
		{"single_field", "hello", []string{"hello"}},
		{"empty_input", "", nil},
		{"leading_delimiter", " leading", []string{"", "leading"}},
		{"adjacent_delimiters", "a  b", []string{"a", "", "b"}},
		{"trailing_delimiter", "hello ", []string{"hello"}},
		{"only_delimiters", "   ", []string{"", "", ""}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			sc := bufio.NewScanner(strings.NewReader(tc.input))
			sc.Split(scanner.ScanFields)

			var got []string
			for sc.Scan() {
				got = append(got, sc.Text())
			}
			require.NoError(t, sc.Err())
			require.Equal(t, tc.expect, got)
		})
	}
}

// Each token emitted by ScanFields matches what FirstField reports for
// the remaining input at that point.
func TestScanFields_AgreesWithFirstField(t *testing.T) {
	input := " one two  three four"

	sc := bufio.NewScanner(strings.NewReader(input))
	sc.Split(scanner.ScanFields)

	rest := []byte(input)
	for sc.Scan() {
		require.Equal(t, string(scanner.FirstField(rest)), sc.Text())
		_, rest = scanner.SplitFirst(rest)
	}
	require.NoError(t, sc.Err())
	require.Nil(t, rest)
}

func TestScanFields_LargeToken(t *testing.T) {
	// A field bigger than bufio's initial buffer still comes out whole.
	long := strings.Repeat("x", 128*1024)
	sc := bufio.NewScanner(strings.NewReader(long + " tail"))
	sc.Buffer(nil, 256*1024)
	sc.Split(scanner.ScanFields)

	require.True(t, sc.Scan())
	require.Equal(t, long, sc.Text())
	require.True(t, sc.Scan())
	require.Equal(t, "tail", sc.Text())
	require.False(t, sc.Scan())
	require.NoError(t, sc.Err())
}
