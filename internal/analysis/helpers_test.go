package analysis

import (
	"testing"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// event builds a play event at the given offset (in minutes) from a fixed
// epoch, with calendar fields derived.
func event(t *testing.T, offsetMinutes float64, artist, track string, minutes float64) history.PlayEvent {
	t.Helper()
	base := time.Date(2023, 4, 3, 12, 0, 0, 0, time.UTC)
	e := history.PlayEvent{
		Timestamp:     base.Add(time.Duration(offsetMinutes * float64(time.Minute))),
		ArtistName:    artist,
		TrackName:     track,
		MinutesPlayed: minutes,
		MsPlayed:      int64(minutes * 60000),
		ContentType:   history.ContentSong,
	}
	e.Derive()
	return e
}

func skippedEvent(t *testing.T, offsetMinutes float64, track string, skipped bool) history.PlayEvent {
	t.Helper()
	e := event(t, offsetMinutes, "artist", track, 3)
	e.Skipped = skipped
	return e
}
