package transposer

import "fmt"

// FormatError means the input could not be read or did not have the shape of a
// note list.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not parse notes: %v", e.Err)
	}
	return fmt.Sprintf("could not parse notes from %v: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// IOError means the output could not be written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not write file %v: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
