package transposer

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	NotesInOctave = 12
	MinOctave     = -3
	MaxOctave     = 5
	MinIndex      = 1
	MaxIndex      = 12

	// lowest playable index in MinOctave and highest in MaxOctave; together
	// with the octave limits these give the 88 keys A0..C8
	lowestKeyIndex  = 10
	highestKeyIndex = 1

	// MIDI key of index 1 (C) in octave 0, i.e. middle C
	middleC = 60
)

var noteNames = []string{
	"C-",
	"C#",
	"D-",
	"D#",
	"E-",
	"F-",
	"F#",
	"G-",
	"G#",
	"A-",
	"A#",
	"B-",
}

// Note is a pitch on the keyboard, addressed by an octave and an index 1..12
// within that octave. On the wire a Note is always a two element array
// [octave, index].
type Note struct {
	Octave int
	Index  int
}

// NoteSequence is an ordered list of notes, in the order they appear in the
// piece.
type NoteSequence []Note

// Key returns the MIDI key number of the note. Octave 0, index 1 is middle C
// (60); the lowest piano key (-3, 10) is 21 and the highest (5, 1) is 108.
func (n Note) Key() int {
	return middleC + n.Octave*NotesInOctave + n.Index - 1
}

// String returns the tracker style name of the note, e.g. "C-4" or "A#0". The
// octave number in the name follows scientific pitch notation, so it is the
// Note's Octave + 4.
func (n Note) String() string {
	if n.Index < MinIndex || n.Index > MaxIndex {
		return fmt.Sprintf("(%d,%d)", n.Octave, n.Index)
	}
	return fmt.Sprintf("%s%d", noteNames[n.Index-1], n.Octave+4)
}

func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{n.Octave, n.Index})
}

func (n *Note) UnmarshalJSON(b []byte) error {
	var pair []*int
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if pair == nil {
		return errors.New("note should be a list [octave, index], got null")
	}
	values := make([]int, len(pair))
	for i, v := range pair {
		if v == nil {
			return fmt.Errorf("note element %d should be an integer, got null", i)
		}
		values[i] = *v
	}
	return n.setPair(values)
}

func (n Note) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range [2]int{n.Octave, n.Index} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}
	return node, nil
}

func (n *Note) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: note should be a list [octave, index]", value.Line)
	}
	values := make([]int, len(value.Content))
	for i, elem := range value.Content {
		// yaml.v3 would truncate a float into an int, so insist on !!int
		if elem.Kind != yaml.ScalarNode || elem.ShortTag() != "!!int" {
			return fmt.Errorf("line %d: note element %d should be an integer", elem.Line, i)
		}
		if err := elem.Decode(&values[i]); err != nil {
			return err
		}
	}
	if err := n.setPair(values); err != nil {
		return fmt.Errorf("line %d: %v", value.Line, err)
	}
	return nil
}

func (n *Note) setPair(pair []int) error {
	if len(pair) != 2 {
		return fmt.Errorf("note should have exactly 2 elements [octave, index], got %d", len(pair))
	}
	n.Octave, n.Index = pair[0], pair[1]
	return nil
}

// UnmarshalYAML decodes every note through Note.UnmarshalYAML; yaml.v3 does
// not call element unmarshalers for null nodes, which would otherwise turn a
// ~ note into (0, 0).
func (s *NoteSequence) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: notes should be a list of [octave, index] pairs", value.Line)
	}
	seq := make(NoteSequence, len(value.Content))
	for i, elem := range value.Content {
		if err := seq[i].UnmarshalYAML(elem); err != nil {
			return err
		}
	}
	*s = seq
	return nil
}

// MarshalYAML writes the whole sequence on a single line, e.g. [[0, 5], [1, 3]]
func (s NoteSequence) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, n := range s {
		v, _ := n.MarshalYAML()
		node.Content = append(node.Content, v.(*yaml.Node))
	}
	return node, nil
}

// Copy makes a copy of the sequence, so the original survives an in place
// Transpose.
func (s NoteSequence) Copy() NoteSequence {
	ret := make(NoteSequence, len(s))
	copy(ret, s)
	return ret
}
