package fretboard

import (
	"github.com/tabsnap/tabsnap/constants"
	"github.com/tabsnap/tabsnap/model"
	"github.com/tabsnap/tabsnap/tuning"
)

// Candidates returns every position that sounds pitch under the given
// tuning, in string order (highest string first). An empty result means
// the pitch is simply unplayable there; callers drop the note.
func Candidates(pitch model.Pitch, t tuning.Tuning, maxFret int) []model.Position {
	var res []model.Position
	for s := 0; s < constants.NumStrings; s++ {
		fret := pitch - t.Open[s]
		if fret >= 0 && fret <= maxFret {
			res = append(res, model.Position{String: s, Fret: fret})
		}
	}
	return res
}
