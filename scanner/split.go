package scanner

import "bufio"

// ScanFields is a [bufio.SplitFunc] that emits space-delimited fields one
// at a time, the streaming complement to [SplitFirst] for callers that
// consume every field of an input through a [bufio.Scanner]. Each token
// is the maximal delimiter-free prefix of the remaining input, so unlike
// [bufio.ScanWords] it never collapses runs of delimiters or drops empty
// fields: a leading delimiter yields an empty first field, and "a  b"
// yields "a", "", "b".
//
// A delimiter at the very end of the input terminates the last field;
// no empty field is emitted after it, because a SplitFunc cannot see past
// the end of the data it consumed.
func ScanFields(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	// A complete field ends at the first delimiter; consume the delimiter
	// but keep it out of the token.
	if i := FieldEnd(data); i < len(data) {
		return i + 1, data[:i], nil
	}

	// No delimiter in what is left. At EOF this is the final field;
	// otherwise ask for more data.
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

var _ bufio.SplitFunc = ScanFields
