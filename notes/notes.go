// Package notes adapts detector output into NoteEvents. Pitch detectors
// ship their results either as a standard MIDI file or as a JSON note
// list; both land in the same []model.NoteEvent shape.
package notes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/tabsnap/tabsnap/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("Error reading midi file... %s", err.Error())
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("Error parsing midi file... %s", err.Error())
	}

	return res, nil
}

// FromSMF extracts note events from a parsed MIDI file. Each NoteOn is
// matched with the next NoteOff of the same key; notes still sounding at
// end of file are silently discarded. Times come out in seconds.
func FromSMF(s *smf.SMF) []model.NoteEvent {
	var res []model.NoteEvent

	for _, events := range s.Tracks {
		pressed := make(map[uint8]model.NoteEvent)
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			secs := float64(s.TimeAt(absTicks)) / 1e6
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				pressed[key] = model.NoteEvent{
					Pitch:      model.Pitch(key),
					Onset:      secs,
					Confidence: velocity,
				}
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				if note, ok := pressed[key]; ok {
					note.Offset = secs
					res = append(res, note)
					delete(pressed, key)
				}
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Onset < res[j].Onset
	})
	return res
}

// FromJSON decodes a detector-emitted JSON note list, either a bare
// array or an object with a "notes" field.
func FromJSON(r io.Reader) ([]model.NoteEvent, error) {
	dat, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var res []model.NoteEvent
	if err := json.Unmarshal(dat, &res); err == nil {
		return res, nil
	}

	var wrapped struct {
		Notes []model.NoteEvent `json:"notes"`
	}
	if err := json.Unmarshal(dat, &wrapped); err != nil {
		return nil, fmt.Errorf("Could not decode note list... %s", err.Error())
	}
	return wrapped.Notes, nil
}

// ReadFile loads note events from a .mid/.midi or .json detector file.
func ReadFile(path string) ([]model.NoteEvent, error) {
	if strings.HasSuffix(path, ".mid") || strings.HasSuffix(path, ".midi") {
		s, err := ReadMidiFile(path)
		if err != nil {
			return nil, err
		}
		return FromSMF(s), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromJSON(f)
}
