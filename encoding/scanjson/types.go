package scanjson

// Various concrete types used to marshal scan results.
type (
	// jsonResult represents a single scan result as JSON.
	jsonResult struct {
		Position *jsonPosition `json:"position,omitempty"`
		Input    string        `json:"input"`
		Offset   int           `json:"offset"`
		Field    string        `json:"field"`
	}

	// jsonPosition represents the source position of a scanned input.
	// Results scanned from inputs with no known origin omit it.
	jsonPosition struct {
		Filename string `json:"filename,omitempty"`
		Line     int    `json:"line"`
		Column   int    `json:"column,omitempty"`
	}
)
