package transposer_test

import (
	"reflect"
	"testing"

	"github.com/vsariola/transposer"
)

func TestTransposeExamples(t *testing.T) {
	tests := []struct {
		name      string
		note      transposer.Note
		semitones int
		expected  transposer.Note
	}{
		{"up within octave", transposer.Note{Octave: 0, Index: 5}, 3, transposer.Note{Octave: 0, Index: 8}},
		{"down across octave", transposer.Note{Octave: 0, Index: 1}, -2, transposer.Note{Octave: -1, Index: 11}},
		{"top key stays", transposer.Note{Octave: 5, Index: 1}, 0, transposer.Note{Octave: 5, Index: 1}},
		{"top key plus one", transposer.Note{Octave: 5, Index: 1}, 1, transposer.Note{Octave: 5, Index: 2}},
		{"index 12 up to next octave", transposer.Note{Octave: 0, Index: 12}, 1, transposer.Note{Octave: 1, Index: 1}},
		{"exact multiple", transposer.Note{Octave: 0, Index: 1}, 11, transposer.Note{Octave: 0, Index: 12}},
		{"negative total multiple of 12", transposer.Note{Octave: -1, Index: 1}, -1, transposer.Note{Octave: -2, Index: 12}},
		{"far down", transposer.Note{Octave: 0, Index: 1}, -40, transposer.Note{Octave: -4, Index: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.note.Transpose(tt.semitones); got != tt.expected {
				t.Fatalf("%v transposed by %v: got %v, expected %v", tt.note, tt.semitones, got, tt.expected)
			}
		})
	}
}

func TestTransposeInPlace(t *testing.T) {
	notes := transposer.NoteSequence{{Octave: 0, Index: 5}, {Octave: 1, Index: 3}}
	transposer.Transpose(notes, 3)
	expected := transposer.NoteSequence{{Octave: 0, Index: 8}, {Octave: 1, Index: 6}}
	if !reflect.DeepEqual(notes, expected) {
		t.Fatalf("got %v, expected %v", notes, expected)
	}
}

func TestTransposeKeepsIndexInRange(t *testing.T) {
	for octave := -5; octave <= 7; octave++ {
		for index := 1; index <= 12; index++ {
			for semitones := -40; semitones <= 40; semitones++ {
				n := transposer.Note{Octave: octave, Index: index}
				got := n.Transpose(semitones)
				if got.Index < 1 || got.Index > 12 {
					t.Fatalf("%v transposed by %v: index %v outside 1..12", n, semitones, got.Index)
				}
				if got.Octave*12+got.Index != octave*12+index+semitones {
					t.Fatalf("%v transposed by %v: got %v, pitch moved by the wrong amount", n, semitones, got)
				}
			}
		}
	}
}

func TestTransposeZeroIsIdentity(t *testing.T) {
	notes := transposer.NoteSequence{{-3, 10}, {0, 1}, {0, 12}, {-1, 12}, {5, 1}}
	original := notes.Copy()
	transposer.Transpose(notes, 0)
	if !reflect.DeepEqual(notes, original) {
		t.Fatalf("got %v, expected %v", notes, original)
	}
}

func TestTransposeOctave(t *testing.T) {
	notes := transposer.NoteSequence{{-3, 10}, {0, 1}, {0, 12}, {-1, 12}, {2, 7}}
	up := notes.Copy()
	transposer.Transpose(up, 12)
	down := notes.Copy()
	transposer.Transpose(down, -12)
	for i, n := range notes {
		if up[i].Index != n.Index || up[i].Octave != n.Octave+1 {
			t.Errorf("%v up an octave: got %v", n, up[i])
		}
		if down[i].Index != n.Index || down[i].Octave != n.Octave-1 {
			t.Errorf("%v down an octave: got %v", n, down[i])
		}
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	notes := transposer.NoteSequence{{-3, 10}, {-2, 4}, {0, 1}, {0, 12}, {3, 6}, {4, 12}}
	for _, s := range []int{-13, -7, -1, 1, 5, 12, 25} {
		got := notes.Copy()
		transposer.Transpose(got, s)
		transposer.Transpose(got, -s)
		if !reflect.DeepEqual(got, notes) {
			t.Fatalf("transposing by %v and back: got %v, expected %v", s, got, notes)
		}
	}
}

func TestTransposeFarOutsideKeyboardIsExact(t *testing.T) {
	tests := []struct {
		note      transposer.Note
		semitones int
		expected  transposer.Note
	}{
		{transposer.Note{Octave: 100000000, Index: 7}, 6, transposer.Note{Octave: 100000001, Index: 1}},
		{transposer.Note{Octave: -100000000, Index: 1}, -1, transposer.Note{Octave: -100000001, Index: 12}},
		{transposer.Note{Octave: 0, Index: 1}, -120000001, transposer.Note{Octave: -10000001, Index: 12}},
	}
	for _, tt := range tests {
		got := tt.note.Transpose(tt.semitones)
		if got != tt.expected {
			t.Errorf("(%d, %d) transposed by %v: got (%d, %d), expected (%d, %d)",
				tt.note.Octave, tt.note.Index, tt.semitones, got.Octave, got.Index, tt.expected.Octave, tt.expected.Index)
		}
	}
}
