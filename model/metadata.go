package model

// TrackMetadata is optional descriptive info about a source recording,
// looked up by filename. Not guaranteed to exist for any given track.
type TrackMetadata struct {
	Artist  string
	Release string
	Title   string
	Year    uint
}
