package transposer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a note file.
type Format int

const (
	JSON Format = iota
	YAML
	MIDI
	Text
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case MIDI:
		return "midi"
	case Text:
		return "text"
	}
	return "json"
}

// FormatForPath picks the output format from the file extension. Anything not
// recognized is written as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return YAML
	case ".mid", ".midi":
		return MIDI
	case ".txt":
		return Text
	}
	return JSON
}

// WriteOptions tune how WriteFile and Encode produce their output.
type WriteOptions struct {
	MIDI      MIDIOptions
	Listing   *template.Template // used for Text; nil means the built-in listing
	NoClobber bool               // refuse to replace an existing file
}

// Decode parses a note list. The input is tried as JSON first and then as
// YAML, so both [[0,5],[1,3]] and a YAML block list are accepted. Input that is
// syntactically valid JSON is judged by the JSON rules only.
func Decode(b []byte) (NoteSequence, error) {
	var seq *NoteSequence
	errJSON := json.Unmarshal(b, &seq)
	if errJSON != nil {
		if json.Valid(b) {
			return nil, &FormatError{Err: errJSON}
		}
		seq = nil
		if errYaml := yaml.Unmarshal(b, &seq); errYaml != nil {
			return nil, &FormatError{Err: fmt.Errorf("input is neither .json (%v) nor .yml (%v)", errJSON, errYaml)}
		}
	}
	if seq == nil {
		return nil, &FormatError{Err: errors.New("input should be a list of [octave, index] pairs")}
	}
	return *seq, nil
}

// ReadFile loads the note list stored at path. All failures, including a
// missing file, are reported as *FormatError.
func ReadFile(path string) (NoteSequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	defer f.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	seq, err := Decode(buf.Bytes())
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return seq, nil
}

// Encode serializes the sequence in the given format.
func Encode(seq NoteSequence, format Format, opts WriteOptions) ([]byte, error) {
	if seq == nil {
		seq = NoteSequence{}
	}
	switch format {
	case YAML:
		return yaml.Marshal(seq)
	case MIDI:
		var buf bytes.Buffer
		if err := WriteMIDI(&buf, seq, opts.MIDI); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case Text:
		tmpl := opts.Listing
		if tmpl == nil {
			tmpl = DefaultListingTemplate()
		}
		var buf bytes.Buffer
		if err := WriteListing(&buf, seq, tmpl); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return json.Marshal(seq)
}

// WriteFile encodes the sequence according to the extension of path and
// writes it, replacing any existing file unless opts.NoClobber is set. The
// output is fully encoded and written to a temporary file next to path, which
// then takes the place of path, so a failed write leaves any previous file
// intact. All failures are reported as *IOError.
func WriteFile(path string, seq NoteSequence, opts WriteOptions) error {
	contents, err := Encode(seq, FormatForPath(path), opts)
	if err != nil {
		return &IOError{Path: path, Err: fmt.Errorf("could not encode notes as %v: %w", FormatForPath(path), err)}
	}
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := writeTemp(dir, name, contents)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	defer os.Remove(tmp) // no-op once renamed
	if opts.NoClobber {
		// a link fails if path exists, without the window a stat would leave
		if err := os.Link(tmp, path); err != nil {
			if errors.Is(err, fs.ErrExist) {
				return &IOError{Path: path, Err: errors.New("file already exists and would be overwritten")}
			}
			return &IOError{Path: path, Err: err}
		}
		return nil
	}
	if err := os.Rename(tmp, path); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

func writeTemp(dir, name string, contents []byte) (string, error) {
	f, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(contents); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Chmod(0644); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
