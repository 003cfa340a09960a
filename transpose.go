package transposer

// Transpose returns the note moved by the given number of semitones (positive
// is up). The result always has Index in 1..12; the octave may end up outside
// the keyboard, which is for Validate to catch.
//
// Go's / truncates toward zero and % takes the sign of the dividend, so below
// octave 0 the remainder can be zero or negative. Those are folded back into
// 1..12 by borrowing one octave.
//
// The arithmetic is plain int: it is exact as long as |Octave*12 + Index +
// semitones| fits in an int (about 7.6e17 octaves on 64-bit platforms) and
// wraps around beyond that, like any int overflow.
func (n Note) Transpose(semitones int) Note {
	total := n.Octave*NotesInOctave + n.Index + semitones
	octave := total / NotesInOctave
	index := total % NotesInOctave
	if index <= 0 {
		octave--
		index += NotesInOctave
	}
	return Note{Octave: octave, Index: index}
}

// Transpose shifts every note of the sequence in place.
func Transpose(seq NoteSequence, semitones int) {
	for i, n := range seq {
		seq[i] = n.Transpose(semitones)
	}
}
