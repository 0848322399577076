// Package render formats a mapped timeline as ASCII tablature or as a
// structured document for the web frontend. Pure formatting; every
// decision was already made upstream.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/tabsnap/tabsnap/constants"
	"github.com/tabsnap/tabsnap/model"
	"github.com/tabsnap/tabsnap/tuning"
)

// fretCell pads a fret number into a fixed-width tab cell.
func fretCell(fret string) string {
	return "-" + fret + strings.Repeat("-", 5-len(fret))
}

// positionOn returns the first position on string s, if any. The chord
// optimizer's degraded fallback can emit two positions on one string;
// the first wins and the rest are not displayed.
func positionOn(ev model.TabEvent, s int) (model.Position, bool) {
	for _, p := range ev.Positions {
		if p.String == s {
			return p, true
		}
	}
	return model.Position{}, false
}

// Ascii renders the timeline as classic six-line guitar tab.
func Ascii(events []model.TabEvent, t tuning.Tuning, meta *model.TrackMetadata) string {
	var lines []string

	lines = append(lines, "# TabSnap Transcription")
	if meta != nil && meta.Title != "" {
		lines = append(lines, fmt.Sprintf("# Track: %v - %v", meta.Artist, meta.Title))
	}
	lines = append(lines, fmt.Sprintf("# Tuning: %v", t.Label))
	lines = append(lines, fmt.Sprintf("# Notes: %v", len(events)))
	lines = append(lines, "")

	for start := 0; start < len(events); start += constants.EventsPerLine {
		end := start + constants.EventsPerLine
		if end > len(events) {
			end = len(events)
		}
		chunk := events[start:end]

		for s := 0; s < constants.NumStrings; s++ {
			row := constants.StringLabels[s] + "|"
			for _, ev := range chunk {
				if pos, ok := positionOn(ev, s); ok {
					row += fretCell(fmt.Sprintf("%d", pos.Fret))
				} else {
					row += fretCell("-")
				}
			}
			row += "|"
			lines = append(lines, row)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// Document shapes the timeline as the JSON payload the frontend
// consumes. Bpm comes from the external tempo stage and is display-only.
func Document(events []model.TabEvent, t tuning.Tuning, bpm float64) model.TabDocument {
	res := model.TabDocument{
		Tuning:      t.ID,
		TuningLabel: t.Label,
		Bpm:         round(bpm, 1),
		EventCount:  len(events),
		Events:      make([]model.TabEventJSON, 0, len(events)),
	}
	for _, ev := range events {
		res.Events = append(res.Events, model.TabEventJSON{
			Time:      round(ev.Time, 3),
			Duration:  round(ev.Duration, 3),
			Positions: ev.Positions,
			Notes:     ev.Pitches,
		})
	}
	return res
}
