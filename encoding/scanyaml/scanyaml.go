// Package scanyaml converts scan results to and from YAML.
//
// The document layout mirrors the scanjson package: a sequence of
// mappings carrying the scanned input, the boundary offset, the located
// field, and optionally the position of the input in its source.
package scanyaml

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/fieldscan/fieldscan"
	"github.com/fieldscan/fieldscan/token"
)

type (
	yamlResult struct {
		Position *yamlPosition `yaml:"position,omitempty"`
		Input    string        `yaml:"input"`
		Offset   int           `yaml:"offset"`
		Field    string        `yaml:"field"`
	}

	yamlPosition struct {
		Filename string `yaml:"filename,omitempty"`
		Line     int    `yaml:"line"`
		Column   int    `yaml:"column,omitempty"`
	}
)

// Marshal returns the YAML encoding of results, indented by two
// spaces.
func Marshal(results []fieldscan.Result) ([]byte, error) {
	rs := make([]yamlResult, 0, len(results))
	for _, res := range results {
		rs = append(rs, yamlResult{
			Position: fromPosition(res.Position),
			Input:    res.Input,
			Offset:   res.Offset,
			Field:    res.Field,
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(rs); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a YAML document produced by Marshal.
func Unmarshal(data []byte) ([]fieldscan.Result, error) {
	var rs []yamlResult
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, err
	}

	results := make([]fieldscan.Result, 0, len(rs))
	for _, r := range rs {
		results = append(results, fieldscan.Result{
			Position: toPosition(r.Position),
			Input:    r.Input,
			Offset:   r.Offset,
			Field:    r.Field,
		})
	}
	return results, nil
}

func fromPosition(pos token.Position) *yamlPosition {
	if !pos.IsValid() {
		return nil
	}
	return &yamlPosition{
		Filename: pos.Filename,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func toPosition(p *yamlPosition) token.Position {
	if p == nil {
		return token.Position{}
	}
	return token.Position{
		Filename: p.Filename,
		Line:     p.Line,
		Column:   p.Column,
	}
}
