package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tabsnap/tabsnap/model"
	"github.com/tabsnap/tabsnap/tuning"
)

func standard(t *testing.T) tuning.Tuning {
	tun, err := tuning.Resolve("standard")
	if err != nil {
		t.Fatal(err)
	}
	return tun
}

func TestEmptyInputYieldsEmptyTimeline(t *testing.T) {
	assert := assert.New(t)

	events, dropped := Build(nil, standard(t), DefaultConfig())
	assert.Empty(events)
	assert.Zero(dropped)
}

func TestOnsetsWithinWindowFormOneEvent(t *testing.T) {
	assert := assert.New(t)

	notes := []model.NoteEvent{
		{Pitch: 64, Onset: 0.000, Offset: 0.500, Confidence: 100},
		{Pitch: 67, Onset: 0.005, Offset: 0.480, Confidence: 100},
	}
	events, dropped := Build(notes, standard(t), DefaultConfig())

	assert.Zero(dropped)
	assert.Len(events, 1)
	assert.Equal(0.000, events[0].Time)
	assert.Equal(0.500, events[0].Duration)
	assert.Equal([]model.Pitch{64, 67}, events[0].Pitches)
	assert.Len(events[0].Positions, 2)
	assert.NotEqual(events[0].Positions[0].String, events[0].Positions[1].String)
}

func TestOnsetsOutsideWindowSplit(t *testing.T) {
	assert := assert.New(t)

	notes := []model.NoteEvent{
		{Pitch: 64, Onset: 0.000, Offset: 0.040},
		{Pitch: 67, Onset: 0.050, Offset: 0.090},
	}
	events, _ := Build(notes, standard(t), DefaultConfig())

	assert.Len(events, 2)
	assert.Equal(0.000, events[0].Time)
	assert.Equal(0.050, events[1].Time)
}

func TestUnsortedInputIsSortedFirst(t *testing.T) {
	assert := assert.New(t)

	notes := []model.NoteEvent{
		{Pitch: 67, Onset: 0.300, Offset: 0.400},
		{Pitch: 64, Onset: 0.000, Offset: 0.100},
	}
	events, _ := Build(notes, standard(t), DefaultConfig())

	assert.Len(events, 2)
	assert.Equal([]model.Pitch{64}, events[0].Pitches)
	assert.Equal([]model.Pitch{67}, events[1].Pitches)
}

func TestTimelineIsNonDecreasingByTime(t *testing.T) {
	assert := assert.New(t)

	notes := []model.NoteEvent{
		{Pitch: 60, Onset: 0.50, Offset: 0.60},
		{Pitch: 62, Onset: 0.10, Offset: 0.20},
		{Pitch: 64, Onset: 0.10, Offset: 0.25},
		{Pitch: 65, Onset: 0.90, Offset: 1.00},
		{Pitch: 67, Onset: 0.30, Offset: 0.40},
	}
	events, _ := Build(notes, standard(t), DefaultConfig())

	for i := 1; i < len(events); i++ {
		assert.GreaterOrEqual(events[i].Time, events[i-1].Time)
	}
}

func TestUnplayableNoteIsDropped(t *testing.T) {
	assert := assert.New(t)

	// 87 needs fret 23 on every string; its chord partner survives
	notes := []model.NoteEvent{
		{Pitch: 87, Onset: 0.000, Offset: 0.100},
		{Pitch: 64, Onset: 0.002, Offset: 0.100},
	}
	events, dropped := Build(notes, standard(t), DefaultConfig())

	assert.Equal(1, dropped)
	assert.Len(events, 1)
	assert.Equal([]model.Pitch{64}, events[0].Pitches)
}

func TestGroupOfOnlyUnplayableNotesYieldsNoEvent(t *testing.T) {
	assert := assert.New(t)

	notes := []model.NoteEvent{
		{Pitch: 87, Onset: 0.000, Offset: 0.100},
	}
	events, dropped := Build(notes, standard(t), DefaultConfig())

	assert.Equal(1, dropped)
	assert.Empty(events)
}

func TestGroupingIsIdempotent(t *testing.T) {
	assert := assert.New(t)

	notes := []model.NoteEvent{
		{Pitch: 60, Onset: 0.000, Offset: 0.100},
		{Pitch: 64, Onset: 0.005, Offset: 0.100},
		{Pitch: 67, Onset: 0.100, Offset: 0.200},
	}
	groups := groupNotes(notes, 0.020)

	var flattened []model.NoteEvent
	for _, g := range groups {
		flattened = append(flattened, g...)
	}
	assert.Equal(groups, groupNotes(flattened, 0.020))
}

func TestBuildIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	notes := []model.NoteEvent{
		{Pitch: 60, Onset: 0.000, Offset: 0.400},
		{Pitch: 64, Onset: 0.004, Offset: 0.400},
		{Pitch: 67, Onset: 0.008, Offset: 0.400},
		{Pitch: 62, Onset: 0.500, Offset: 0.900},
		{Pitch: 66, Onset: 0.504, Offset: 0.900},
	}
	first, _ := Build(notes, standard(t), DefaultConfig())
	for i := 0; i < 5; i++ {
		again, _ := Build(notes, standard(t), DefaultConfig())
		assert.Equal(first, again)
	}
}

func TestHandStateCarriesBetweenEvents(t *testing.T) {
	assert := assert.New(t)

	// 69 then 64: alone, 64 would take the open high e; after playing
	// 69 at fret 5 on the high e, staying put on the B string is cheaper
	notes := []model.NoteEvent{
		{Pitch: 69, Onset: 0.000, Offset: 0.100},
		{Pitch: 64, Onset: 0.200, Offset: 0.300},
	}
	events, _ := Build(notes, standard(t), DefaultConfig())

	assert.Len(events, 2)
	assert.Equal(model.Position{String: 0, Fret: 5}, events[0].Positions[0])
	assert.Equal(model.Position{String: 1, Fret: 5}, events[1].Positions[0])
}
