package input

import (
	"io"
	"strings"
)

// Song is one sequence to compare: who it is and its notes.
type Song struct {
	Name  string
	ID    string
	Notes string // one character per note
}

// ReadSong parses a song file.
//
//	line 1: <marker><name>|<id>   e.g. "#Twinkle Twinkle|0001"
//	line 2: notes, one character each (may be empty, must be present)
func ReadSong(r io.Reader, path string) (Song, error) {
	lr := newLineReader(r, path)
	header, err := lr.require("header")
	if err != nil {
		return Song{}, err
	}
	name, id, ok := strings.Cut(header, "|")
	if !ok {
		return Song{}, formatErr(path, 1, nil, "header %q lacks '|' before the id", header)
	}
	if name == "" {
		return Song{}, formatErr(path, 1, nil, "header %q lacks the leading marker", header)
	}
	// the id ends at the next '|', if any
	id, _, _ = strings.Cut(id, "|")

	notes, err := lr.require("notes")
	if err != nil {
		return Song{}, err
	}

	return Song{Name: name[1:], ID: id, Notes: notes}, nil
}

// LoadSong opens path and calls ReadSong.
func LoadSong(path string) (Song, error) {
	f, err := openFile(path)
	if err != nil {
		return Song{}, err
	}
	defer f.Close()

	return ReadSong(f, path)
}
