package analysis

import "time"

// GroupTotal is one row of a grouped aggregation: a label, the summed
// minutes played, and the number of plays that contributed.
type GroupTotal struct {
	Key     string  `yaml:"name"`
	Minutes float64 `yaml:"minutes"`
	Plays   int64   `yaml:"plays"`
}

// BasicStats is the headline summary of a dataset.
type BasicStats struct {
	TotalHours        float64
	UniqueTracks      int
	UniqueArtists     int
	UniqueAlbums      int
	UniqueIPs         int
	ContentTypeCounts []GroupTotal
	FirstPlay         time.Time
	LastPlay          time.Time
	TopPlatforms      []GroupTotal
	SkipRate          float64 // percentage
	ShuffleRate       float64 // percentage
}

// YearStats holds one year's slice of the yearly trend report.
type YearStats struct {
	TopArtists       []GroupTotal    `yaml:"top_artists"`
	TopTracks        []GroupTotal    `yaml:"top_tracks"`
	MonthlyListening map[int]float64 `yaml:"monthly_listening"`
	TotalHours       float64         `yaml:"total_hours"`
}

// Session is a maximal run of plays whose inter-event gaps stay at or below
// the segmentation threshold.
type Session struct {
	StartTime       time.Time
	TrackCount      int
	DurationMinutes float64
	GapMinutes      float64
}

// TotalMinutes is the session's wall-clock footprint: play time plus the
// gaps between plays inside the session.
func (s Session) TotalMinutes() float64 {
	return s.DurationMinutes + s.GapMinutes
}

// SessionSummary describes a full segmentation run.
type SessionSummary struct {
	TotalSessions       int
	AvgSessionMinutes   float64
	AvgTracksPerSession float64
	Longest             Session
	SessionsByHour      [24]int
	DurationsMinutes    []float64 // one entry per session, chronological
}

// Binge is a maximal run of consecutive plays of the same artist.
type Binge struct {
	Artist           string
	ConsecutivePlays int
	DurationMinutes  float64
	StartTime        time.Time
}

// ArtistBingeCount counts how many qualifying binges an artist has.
type ArtistBingeCount struct {
	Artist string
	Binges int
}

// TrackSkipRate is a per-track skip statistic.
type TrackSkipRate struct {
	Track     string
	SkipRate  float64 // percentage, 0-100
	PlayCount int64
}

// HourSkipRate is the skip rate for one hour-of-day bucket. Plays is zero
// for hours with no observations; the rate is reported as zero there, and
// callers can use Plays to tell "never skipped" from "never played".
type HourSkipRate struct {
	Hour     int
	SkipRate float64
	Plays    int64
}
