// Package optimize picks concrete fretboard positions for notes and
// chords, favoring placements close to where the hand already is.
package optimize

import (
	"sort"

	"github.com/tabsnap/tabsnap/constants"
	"github.com/tabsnap/tabsnap/model"
	"github.com/tabsnap/tabsnap/util"
)

// HandState is the set of positions sounded by the previous tab event.
// Empty before the first event.
type HandState = []model.Position

// Single-note cost weights. Tuned by ear; the chord model below uses a
// different, deliberately simpler movement metric.
const (
	fretWeight      = 0.1
	moveWeight      = 0.5
	stringMoveScale = 2
	openBonus       = 0.3
)

// Chord cost weights.
const (
	chordFretWeight = 0.05
	spanWeight      = 0.3
	chordOpenBonus  = 0.2
	chordMoveWeight = 0.2
)

// ChooseSingle picks the cheapest position for one note. Candidates must
// be non-empty and in generation order; the first candidate wins exact
// cost ties, which keeps output deterministic.
func ChooseSingle(candidates []model.Position, hand HandState) model.Position {
	best := candidates[0]
	bestCost := 0.0
	for i, c := range candidates {
		cost := float64(c.Fret) * fretWeight
		if len(hand) > 0 {
			minDist := -1
			for _, lp := range hand {
				d := util.Abs(c.Fret-lp.Fret) + util.Abs(c.String-lp.String)*stringMoveScale
				if minDist < 0 || d < minDist {
					minDist = d
				}
			}
			cost += float64(minDist) * moveWeight
		}
		if c.Fret == 0 {
			cost -= openBonus
		}
		if i == 0 || cost < bestCost {
			bestCost = cost
			best = c
		}
	}
	return best
}

// beamState is one scored partial assignment. Positions are owned by the
// state; extensions copy rather than share.
type beamState struct {
	positions []model.Position
	cost      float64
	used      uint8 // bit per string
}

func extend(s beamState, c model.Position) beamState {
	positions := make([]model.Position, 0, len(s.positions)+1)
	positions = append(positions, s.positions...)
	positions = append(positions, c)
	return beamState{
		positions: positions,
		cost:      s.cost,
		used:      s.used | 1<<uint(c.String),
	}
}

// fretSpan is the stretch across the fretted (nonzero) positions; open
// strings cost the hand nothing and are excluded.
func fretSpan(positions []model.Position) int {
	lo, hi := 0, 0
	seen := false
	for _, p := range positions {
		if p.Fret == 0 {
			continue
		}
		if !seen || p.Fret < lo {
			lo = p.Fret
		}
		if !seen || p.Fret > hi {
			hi = p.Fret
		}
		seen = true
	}
	return hi - lo
}

// ChooseChord assigns one position per candidate set via beam search over
// partial assignments. Sets must be non-empty (callers drop unplayable
// notes first). If every complete assignment violates the span limit, it
// degrades to the first candidate of each set; that result may reuse a
// string and consumers are expected to tolerate it.
func ChooseChord(candidateSets [][]model.Position, hand HandState) []model.Position {
	if len(candidateSets) == 0 {
		return nil
	}
	if len(candidateSets) == 1 {
		return []model.Position{ChooseSingle(candidateSets[0], hand)}
	}

	beam := []beamState{{}}

	for _, candidates := range candidateSets {
		var next []beamState
		for _, state := range beam {
			for _, c := range candidates {
				if state.used&(1<<uint(c.String)) != 0 {
					continue
				}
				ext := extend(state, c)
				span := fretSpan(ext.positions)
				if span > constants.MaxFretSpan {
					continue
				}

				cost := float64(c.Fret)*chordFretWeight + float64(span)*spanWeight
				if c.Fret == 0 {
					cost -= chordOpenBonus
				}
				if len(hand) > 0 {
					minDist := -1
					for _, lp := range hand {
						d := util.Abs(c.Fret - lp.Fret)
						if minDist < 0 || d < minDist {
							minDist = d
						}
					}
					cost += float64(minDist) * chordMoveWeight
				}
				ext.cost += cost
				next = append(next, ext)
			}
		}

		// stable sort so equal-cost states keep generation order
		sort.SliceStable(next, func(i, j int) bool {
			return next[i].cost < next[j].cost
		})
		if len(next) > constants.BeamWidth {
			next = next[:constants.BeamWidth]
		}
		beam = next
	}

	if len(beam) > 0 {
		return beam[0].positions
	}

	// degraded fallback: best-effort independent picks, conflicts allowed
	res := make([]model.Position, 0, len(candidateSets))
	for _, candidates := range candidateSets {
		if len(candidates) > 0 {
			res = append(res, candidates[0])
		}
	}
	return res
}
