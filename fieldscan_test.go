package fieldscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscan/fieldscan"
	"github.com/fieldscan/fieldscan/token"
)

func TestFirstWordAndBoundary(t *testing.T) {
	tt := []struct {
		name     string
		input    string
		boundary int
		word     string
	}{
		{name: "two_words", input: "hello world", boundary: 5, word: "hello"},
		{name: "no_delimiter", input: "hello", boundary: 5, word: "hello"},
		{name: "empty", input: "", boundary: 0, word: ""},
		{name: "leading_delimiter", input: " leading", boundary: 0, word: ""},
		{name: "short_fields", input: "a b c", boundary: 1, word: "a"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.boundary, fieldscan.Boundary(tc.input))
			assert.Equal(t, tc.word, fieldscan.FirstWord(tc.input))
		})
	}
}

func TestScanString(t *testing.T) {
	pos := token.Position{Filename: "words.txt", Line: 3, Column: 1}
	res := fieldscan.ScanString(pos, "hello world")

	require.Equal(t, fieldscan.Result{
		Position: pos,
		Input:    "hello world",
		Offset:   5,
		Field:    "hello",
	}, res)
}

func TestScanString_ZeroPosition(t *testing.T) {
	res := fieldscan.ScanString(token.Position{}, "hello")

	assert.False(t, res.Position.IsValid())
	assert.Equal(t, 5, res.Offset)
	assert.Equal(t, "hello", res.Field)
}

func TestScan_CopiesInput(t *testing.T) {
	b := []byte("hello world")
	res := fieldscan.Scan(token.Position{}, b)

	b[0] = 'j'

	require.Equal(t, "hello world", res.Input)
	require.Equal(t, "hello", res.Field)
}

func TestScan_FieldIsInputPrefix(t *testing.T) {
	for _, input := range []string{"hello world", "hello", "", " leading", "a b c", "  "} {
		res := fieldscan.Scan(token.Position{}, []byte(input))

		require.LessOrEqual(t, res.Offset, len(res.Input))
		require.Equal(t, res.Input[:res.Offset], res.Field)
	}
}
