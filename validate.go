package transposer

import "fmt"

// RangeError is returned by Validate for the first note that does not fit on
// the keyboard.
type RangeError struct {
	Position int // index of the offending note in the sequence
	Note     Note
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("note out of range: %d, %d", e.Note.Octave, e.Note.Index)
}

// InRange reports whether the note is one of the 88 keys. The outermost
// octaves are partial: octave MinOctave only has its top three keys (A, A#, B)
// and octave MaxOctave only its first (C).
func (n Note) InRange() bool {
	switch {
	case n.Octave < MinOctave || n.Octave > MaxOctave:
		return false
	case n.Index < MinIndex || n.Index > MaxIndex:
		return false
	case n.Octave == MinOctave && n.Index < lowestKeyIndex:
		return false
	case n.Octave == MaxOctave && n.Index > highestKeyIndex:
		return false
	}
	return true
}

// Validate checks the whole sequence and returns a *RangeError for the first
// note outside the keyboard. A sequence is accepted or rejected as a whole.
func Validate(seq NoteSequence) error {
	for i, n := range seq {
		if !n.InRange() {
			return &RangeError{Position: i, Note: n}
		}
	}
	return nil
}
