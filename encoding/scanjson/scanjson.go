// Package scanjson converts scan results to and from JSON.
//
// Results are encoded as an array of objects carrying the scanned
// input, the boundary offset, the located field, and optionally the
// position of the input in its source.
package scanjson

import (
	"github.com/ohler55/ojg/oj"

	"github.com/fieldscan/fieldscan"
	"github.com/fieldscan/fieldscan/token"
)

// Marshal returns the JSON encoding of results as a single line.
func Marshal(results []fieldscan.Result) ([]byte, error) {
	return oj.Marshal(fromResults(results))
}

// MarshalIndent is like Marshal but indents the output for
// readability.
func MarshalIndent(results []fieldscan.Result) ([]byte, error) {
	return oj.Marshal(fromResults(results), 2)
}

// Unmarshal decodes a JSON document produced by Marshal or
// MarshalIndent.
func Unmarshal(data []byte) ([]fieldscan.Result, error) {
	var rs []jsonResult
	if err := oj.Unmarshal(data, &rs); err != nil {
		return nil, err
	}
	return toResults(rs), nil
}

func fromResults(results []fieldscan.Result) []jsonResult {
	rs := make([]jsonResult, 0, len(results))
	for _, res := range results {
		rs = append(rs, jsonResult{
			Position: fromPosition(res.Position),
			Input:    res.Input,
			Offset:   res.Offset,
			Field:    res.Field,
		})
	}
	return rs
}

func toResults(rs []jsonResult) []fieldscan.Result {
	results := make([]fieldscan.Result, 0, len(rs))
	for _, r := range rs {
		results = append(results, fieldscan.Result{
			Position: toPosition(r.Position),
			Input:    r.Input,
			Offset:   r.Offset,
			Field:    r.Field,
		})
	}
	return results
}

func fromPosition(pos token.Position) *jsonPosition {
	if !pos.IsValid() {
		return nil
	}
	return &jsonPosition{
		Filename: pos.Filename,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func toPosition(p *jsonPosition) token.Position {
	if p == nil {
		return token.Position{}
	}
	return token.Position{
		Filename: p.Filename,
		Line:     p.Line,
		Column:   p.Column,
	}
}
