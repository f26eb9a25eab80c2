package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func parseRecords(t *testing.T, raw string) []gjson.Result {
	t.Helper()
	parsed := gjson.Parse(raw)
	require.True(t, parsed.IsArray(), "test input must be a JSON array")
	return parsed.Array()
}

func TestNormalizeSong(t *testing.T) {
	records := parseRecords(t, `[{
		"ts": "2023-04-01T08:30:00Z",
		"platform": "ios",
		"ms_played": 183000,
		"ip_addr": "203.0.113.7",
		"master_metadata_track_name": "Weird Fishes",
		"master_metadata_album_artist_name": "Radiohead",
		"master_metadata_album_album_name": "In Rainbows",
		"episode_name": null,
		"audiobook_title": null,
		"skipped": false,
		"shuffle": true
	}]`)

	ds, skipped, err := Normalize(records)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, ds, 1)

	e := ds[0]
	assert.Equal(t, ContentSong, e.ContentType)
	assert.Equal(t, "Weird Fishes", e.TrackName)
	assert.Equal(t, "Radiohead", e.ArtistName)
	assert.Equal(t, "In Rainbows", e.AlbumName)
	assert.Equal(t, int64(183000), e.MsPlayed)
	assert.InDelta(t, 3.05, e.MinutesPlayed, 1e-9)
	assert.Equal(t, "ios", e.Platform)
	assert.Equal(t, "203.0.113.7", e.IPAddr)
	assert.False(t, e.Skipped)
	assert.True(t, e.Shuffle)
	assert.Equal(t, time.Date(2023, 4, 1, 8, 30, 0, 0, time.UTC), e.Timestamp)
}

func TestNormalizePodcast(t *testing.T) {
	records := parseRecords(t, `[{
		"ts": "2023-04-01T08:30:00Z",
		"ms_played": 1200000,
		"master_metadata_track_name": null,
		"master_metadata_album_artist_name": null,
		"master_metadata_album_album_name": null,
		"episode_name": "Episode 42",
		"episode_show_name": "Some Show",
		"audiobook_title": null
	}]`)

	ds, _, err := Normalize(records)
	require.NoError(t, err)
	require.Len(t, ds, 1)

	e := ds[0]
	assert.Equal(t, ContentPodcast, e.ContentType)
	assert.Equal(t, "Episode 42", e.TrackName)
	assert.Equal(t, "Some Show", e.ArtistName)
	assert.Equal(t, "", e.AlbumName, "podcast album stays whatever the song metadata supplied")
}

func TestNormalizeAudiobook(t *testing.T) {
	records := parseRecords(t, `[{
		"ts": "2023-04-01T08:30:00Z",
		"ms_played": 600000,
		"episode_name": null,
		"audiobook_title": "Dune",
		"audiobook_chapter_title": "Chapter 3"
	}]`)

	ds, _, err := Normalize(records)
	require.NoError(t, err)
	require.Len(t, ds, 1)

	e := ds[0]
	assert.Equal(t, ContentAudiobook, e.ContentType)
	assert.Equal(t, "Chapter 3", e.TrackName)
	assert.Equal(t, "Dune", e.AlbumName)
	assert.Equal(t, "", e.ArtistName)
}

func TestNormalizeConflictingTypeIsAudiobook(t *testing.T) {
	// Both podcast and audiobook fields present: classified audiobook, and
	// the artist reverts to the song metadata rather than the show name.
	records := parseRecords(t, `[{
		"ts": "2023-04-01T08:30:00Z",
		"ms_played": 600000,
		"master_metadata_album_artist_name": "Someone",
		"episode_name": "Episode 1",
		"episode_show_name": "A Show",
		"audiobook_title": "Dune",
		"audiobook_chapter_title": "Chapter 1"
	}]`)

	ds, _, err := Normalize(records)
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, ContentAudiobook, ds[0].ContentType)
	assert.Equal(t, "Chapter 1", ds[0].TrackName)
	assert.Equal(t, "Dune", ds[0].AlbumName)
	assert.Equal(t, "Someone", ds[0].ArtistName)
}

func TestNormalizeSkipsMalformedRows(t *testing.T) {
	records := parseRecords(t, `[
		{"ts": "not a timestamp", "ms_played": 1000},
		{"ts": "2023-04-01T08:30:00Z", "ms_played": -5},
		{"ts": "2023-04-01T08:30:00Z", "ms_played": 60000, "master_metadata_track_name": "OK"}
	]`)

	ds, skipped, err := Normalize(records)
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, ds, 1)
	assert.Equal(t, "OK", ds[0].TrackName)
	assert.Equal(t, 1.0, ds[0].MinutesPlayed)
}

func TestNormalizeNoValidRows(t *testing.T) {
	records := parseRecords(t, `[{"ts": "garbage", "ms_played": 1000}]`)
	_, skipped, err := Normalize(records)
	require.Error(t, err)
	assert.Equal(t, 1, skipped)
}

func TestNormalizeMissingTimestampFieldIsSchemaError(t *testing.T) {
	records := parseRecords(t, `[
		{"ms_played": 1000, "master_metadata_track_name": "A"},
		{"ms_played": 2000, "master_metadata_track_name": "B"}
	]`)
	_, _, err := Normalize(records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no 'ts' field")
}

func TestNormalizeMinutesAreExact(t *testing.T) {
	cases := []struct {
		ms   int64
		want float64
	}{
		{0, 0},
		{60000, 1},
		{90000, 1.5},
		{183742, 183742.0 / 60000},
	}
	for _, tc := range cases {
		raw := fmt.Sprintf(`{"ts": "2023-04-01T08:30:00Z", "ms_played": %d}`, tc.ms)
		e, ok := normalizeOne(gjson.Parse(raw), new(int))
		require.True(t, ok)
		assert.Equal(t, tc.want, e.MinutesPlayed, "ms=%d", tc.ms)
	}
}

func TestLoadDirectoryEmpty(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadDirectory(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .json files")
}

func TestLoadDirectoryConcatenates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"),
		[]byte(`[{"ts": "2023-01-01T00:00:00Z", "ms_played": 1000}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"),
		[]byte(`[{"ts": "2023-01-02T00:00:00Z", "ms_played": 2000}, {"ts": "2023-01-03T00:00:00Z", "ms_played": 3000}]`), 0o644))

	records, err := LoadDirectory(dir)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLoadDirectoryRejectsNonArray(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"),
		[]byte(`{"ts": "2023-01-01T00:00:00Z"}`), 0o644))

	_, err := LoadDirectory(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON array")
}
