// Package history models a Spotify extended-streaming-history export as a
// flat dataset of normalized play events.
package history

import (
	"sort"
	"time"
)

// ContentType classifies what kind of media a play event was.
type ContentType string

const (
	ContentSong      ContentType = "song"
	ContentPodcast   ContentType = "podcast"
	ContentAudiobook ContentType = "audiobook"
)

// PlayEvent is one normalized playback record. Track, artist, and album are
// populated from the source fields appropriate to the content type; they may
// be empty strings but are never mixed across types.
type PlayEvent struct {
	Timestamp     time.Time
	TrackName     string
	ArtistName    string
	AlbumName     string
	ContentType   ContentType
	MsPlayed      int64
	MinutesPlayed float64
	Platform      string
	Skipped       bool
	Shuffle       bool
	IPAddr        string

	// Calendar fields decomposed from Timestamp by Derive.
	Date      string
	Year      int
	Month     int
	Day       int
	Hour      int
	DayOfWeek int // 0 = Monday .. 6 = Sunday
}

// Derive fills the calendar fields from Timestamp, using the instant's
// recorded components as-is (no zone conversion). Overwrites any existing
// values, so re-deriving is a no-op.
func (e *PlayEvent) Derive() {
	t := e.Timestamp
	e.Date = t.Format("2006-01-02")
	e.Year = t.Year()
	e.Month = int(t.Month())
	e.Day = t.Day()
	e.Hour = t.Hour()
	e.DayOfWeek = (int(t.Weekday()) + 6) % 7
}

// Dataset is the in-memory table all analyses run over.
type Dataset []PlayEvent

// Derive recomputes the calendar fields for every event. Idempotent.
func (ds Dataset) Derive() {
	for i := range ds {
		ds[i].Derive()
	}
}

// SortByTime orders events by ascending timestamp. The sort is stable so
// events with equal timestamps keep their input order.
func (ds Dataset) SortByTime() {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Timestamp.Before(ds[j].Timestamp)
	})
}
