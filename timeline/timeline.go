// Package timeline turns detected notes into an ordered sequence of tab
// events: it clusters near-simultaneous onsets into chord groups, maps
// each group to fretboard positions, and threads the hand position from
// one event into the next.
package timeline

import (
	"sort"

	"github.com/tabsnap/tabsnap/constants"
	"github.com/tabsnap/tabsnap/fretboard"
	"github.com/tabsnap/tabsnap/model"
	"github.com/tabsnap/tabsnap/optimize"
	"github.com/tabsnap/tabsnap/tuning"
	"github.com/tabsnap/tabsnap/util"
)

type Config struct {
	// MaxFret is the highest playable fret (inclusive).
	MaxFret int
	// ChordWindow is the onset gap, in seconds, under which notes are
	// grouped into one chord.
	ChordWindow float64
}

func DefaultConfig() Config {
	return Config{
		MaxFret:     constants.DefaultMaxFret,
		ChordWindow: constants.DefaultChordWindow,
	}
}

// group is a run of notes whose onsets fall within one chord window of
// the first note. Transient; consumed immediately by mapGroup.
type group = []model.NoteEvent

// groupNotes clusters time-sorted notes greedily: a note joins the
// current group while its onset is within ChordWindow of the group head.
func groupNotes(notes []model.NoteEvent, window float64) []group {
	var groups []group
	var current group
	for _, note := range notes {
		if len(current) == 0 {
			current = append(current, note)
		} else if note.Onset-current[0].Onset < window {
			current = append(current, note)
		} else {
			groups = append(groups, current)
			current = group{note}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// mapGroup maps one chord group to a tab event. Notes with no playable
// position are dropped; a group left empty yields no event (nil, n).
func mapGroup(g group, t tuning.Tuning, cfg Config, hand optimize.HandState) (*model.TabEvent, int) {
	var candidateSets [][]model.Position
	var survivors []model.NoteEvent
	for _, note := range g {
		cs := fretboard.Candidates(note.Pitch, t, cfg.MaxFret)
		if len(cs) == 0 {
			continue
		}
		candidateSets = append(candidateSets, cs)
		survivors = append(survivors, note)
	}
	dropped := len(g) - len(survivors)
	if len(survivors) == 0 {
		return nil, dropped
	}

	positions := optimize.ChooseChord(candidateSets, hand)

	onset := survivors[0].Onset
	offset := survivors[0].Offset
	pitches := make([]model.Pitch, 0, len(survivors))
	for _, note := range survivors {
		onset = util.Min(onset, note.Onset)
		offset = util.Max(offset, note.Offset)
		pitches = append(pitches, note.Pitch)
	}

	return &model.TabEvent{
		Time:      onset,
		Duration:  offset - onset,
		Positions: positions,
		Pitches:   pitches,
	}, dropped
}

// Build maps notes to a time-ordered tab timeline. Input order does not
// matter; notes are stable-sorted by onset first. The second return is
// how many notes were dropped as unplayable, for callers that want to
// log it. Groups are processed strictly in sequence because each event's
// positions seed the movement cost of the next.
func Build(notes []model.NoteEvent, t tuning.Tuning, cfg Config) ([]model.TabEvent, int) {
	sorted := make([]model.NoteEvent, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Onset < sorted[j].Onset
	})

	var events []model.TabEvent
	var hand optimize.HandState
	var dropped int

	for _, g := range groupNotes(sorted, cfg.ChordWindow) {
		event, d := mapGroup(g, t, cfg, hand)
		dropped += d
		if event == nil {
			continue
		}
		events = append(events, *event)
		hand = event.Positions
	}
	return events, dropped
}
