package tuning

import (
	"fmt"
	"sort"

	"github.com/tabsnap/tabsnap/constants"
	"github.com/tabsnap/tabsnap/model"
	"github.com/tabsnap/tabsnap/util"
)

// Tuning is a named set of open-string pitches, index 0 = highest string.
type Tuning struct {
	ID    string
	Label string
	Open  [constants.NumStrings]model.Pitch
}

// tunings is populated once and never mutated after init.
var tunings = map[string]Tuning{
	"standard":  {ID: "standard", Label: "Standard", Open: [6]model.Pitch{64, 59, 55, 50, 45, 40}},  // e B G D A E
	"drop_d":    {ID: "drop_d", Label: "Drop D", Open: [6]model.Pitch{64, 59, 55, 50, 45, 38}},      // e B G D A D
	"half_down": {ID: "half_down", Label: "Half Step Down", Open: [6]model.Pitch{63, 58, 54, 49, 44, 39}}, // eb Bb Gb Db Ab Eb
	"open_g":    {ID: "open_g", Label: "Open G", Open: [6]model.Pitch{62, 59, 55, 50, 47, 38}},      // D B G D G D
	"dadgad":    {ID: "dadgad", Label: "DADGAD", Open: [6]model.Pitch{62, 57, 55, 50, 45, 38}},      // D A G D A D
}

// UnknownTuningError reports a tuning id that has no registered preset.
type UnknownTuningError struct {
	ID string
}

func (e *UnknownTuningError) Error() string {
	return fmt.Sprintf("unknown tuning: %v (options: %v)", e.ID, Ids())
}

// Resolve looks up a tuning preset by id.
func Resolve(id string) (Tuning, error) {
	t, ok := tunings[id]
	if !ok {
		return Tuning{}, &UnknownTuningError{ID: id}
	}
	return t, nil
}

// Ids returns all registered tuning ids, sorted for stable output.
func Ids() []string {
	ids := util.GetKeys(tunings)
	sort.Strings(ids)
	return ids
}
