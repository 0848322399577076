package model

type MapRequestBody struct {
	Notes       []NoteEvent `json:"notes"`
	Tuning      string      `json:"tuning"`
	MaxFret     int         `json:"max_fret,omitempty"`
	ChordWindow float64     `json:"chord_window,omitempty"`
	Bpm         float64     `json:"bpm,omitempty"`
}

type MapResponse struct {
	RequestId    string      `json:"request_id"`
	DroppedNotes int         `json:"dropped_notes"`
	Tab          TabDocument `json:"tab"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

// TabDocument is the structured rendering of a timeline, shaped for the
// web frontend.
type TabDocument struct {
	Tuning      string         `json:"tuning"`
	TuningLabel string         `json:"tuning_label"`
	Bpm         float64        `json:"bpm"`
	EventCount  int            `json:"event_count"`
	Events      []TabEventJSON `json:"events"`
}

type TabEventJSON struct {
	Time      float64    `json:"time"`
	Duration  float64    `json:"duration"`
	Positions []Position `json:"positions"`
	Chord     string     `json:"chord,omitempty"`
	Notes     []Pitch    `json:"notes"`
}
