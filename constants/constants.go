package constants

import "os"

func GetMetadataEndpoint() string {
	endpoint := os.Getenv("TABSNAP_METADATA_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

const NumStrings = 6

// DefaultMaxFret matches a 22-fret neck, the most common electric layout.
const DefaultMaxFret = 22

// DefaultChordWindow is how far apart (seconds) two onsets can land and
// still count as one strum. 20ms is roughly the spread of a fast strum.
const DefaultChordWindow = 0.020

const DefaultBpm = 120.0

// BeamWidth bounds the chord search. 20 is plenty for 6 strings.
const BeamWidth = 20

// MaxFretSpan is the widest playable stretch between fretted notes.
const MaxFretSpan = 5

// EventsPerLine is how many tab events fit on one rendered ASCII line.
const EventsPerLine = 8

var StringLabels = [NumStrings]string{"e", "B", "G", "D", "A", "E"}
