package transposer

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	defaultBPM      = 120
	defaultVelocity = 100
	ticksPerQuarter = 960
)

// MIDIOptions control the Standard MIDI File written by WriteMIDI. Zero values
// mean 120 BPM, velocity 100, channel 0.
type MIDIOptions struct {
	BPM      float64
	Velocity uint8
	Channel  uint8
}

// WriteMIDI writes the sequence as a single track Standard MIDI File. Every
// note becomes a quarter note, played one after the other.
func WriteMIDI(w io.Writer, seq NoteSequence, opts MIDIOptions) error {
	bpm := opts.BPM
	if bpm <= 0 {
		bpm = defaultBPM
	}
	velocity := opts.Velocity
	if velocity == 0 {
		velocity = defaultVelocity
	}
	if opts.Channel > 15 {
		return fmt.Errorf("MIDI channel should be 0..15, got %v", opts.Channel)
	}
	ticks := smf.MetricTicks(ticksPerQuarter)
	quarter := ticks.Ticks4th()
	var track smf.Track
	// first track carries meter and tempo
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(bpm))
	track.Add(0, smf.MetaInstrument("Piano"))
	for i, n := range seq {
		key := n.Key()
		if key < 0 || key > 127 {
			return fmt.Errorf("note #%d %v has no MIDI key (got %d)", i, n, key)
		}
		track.Add(0, midi.NoteOn(opts.Channel, uint8(key), velocity))
		track.Add(quarter, midi.NoteOff(opts.Channel, uint8(key)))
	}
	track.Close(0)
	s := smf.New()
	s.TimeFormat = ticks
	if err := s.Add(track); err != nil {
		return fmt.Errorf("could not add track to MIDI file: %v", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write MIDI file: %v", err)
	}
	return nil
}
