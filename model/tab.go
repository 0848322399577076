package model

// Position is one finger or open-string placement. String 0 is the
// highest-pitched string, 5 the lowest. Fret 0 means open.
type Position struct {
	String int `json:"string"`
	Fret   int `json:"fret"`
}

// TabEvent is one mapped moment of the timeline: every position sounded
// together plus the pitches they realize, in the notes' original order.
type TabEvent struct {
	Time      float64
	Duration  float64
	Positions []Position
	Pitches   []Pitch
}
