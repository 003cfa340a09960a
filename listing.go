package transposer

import (
	_ "embed"
	"fmt"
	"io"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"
)

//go:embed templates/listing.txt
var defaultListing string

// ListingNote is what a listing template sees for each note.
type ListingNote struct {
	Position int // 1-based
	Octave   int
	Index    int
	Name     string
	Key      int
}

// ListingData is the root object passed to a listing template.
type ListingData struct {
	Notes []ListingNote
}

// DefaultListingTemplate returns the built-in listing: one line per note with
// its name, coordinates and MIDI key.
func DefaultListingTemplate() *template.Template {
	return template.Must(template.New("listing").Funcs(sprig.TxtFuncMap()).Parse(defaultListing))
}

// ParseListingTemplate reads a custom listing template. The sprig functions
// are available in it.
func ParseListingTemplate(path string) (*template.Template, error) {
	tmpl, err := template.New(filepath.Base(path)).Funcs(sprig.TxtFuncMap()).ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("could not parse listing template: %v", err)
	}
	return tmpl, nil
}

// WriteListing renders the sequence through tmpl.
func WriteListing(w io.Writer, seq NoteSequence, tmpl *template.Template) error {
	data := ListingData{Notes: make([]ListingNote, len(seq))}
	for i, n := range seq {
		data.Notes[i] = ListingNote{
			Position: i + 1,
			Octave:   n.Octave,
			Index:    n.Index,
			Name:     n.String(),
			Key:      n.Key(),
		}
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("could not execute listing template: %v", err)
	}
	return nil
}
