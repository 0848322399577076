package model

// Pitch is a MIDI note number (60 = middle C). Kept as int rather than
// uint8 so pitch arithmetic can go negative and pitch lists marshal as
// JSON number arrays.
type Pitch = int

// NoteEvent is one detected note as delivered by the upstream pitch
// detector. Times are in seconds. Read-only once constructed.
type NoteEvent struct {
	Pitch      Pitch   `json:"pitch"`
	Onset      float64 `json:"onset"`
	Offset     float64 `json:"offset"`
	Confidence uint8   `json:"confidence"`
}
