package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
)

// LoadDirectory reads every *.json file in dir and returns the concatenated
// raw records from all of them, in file-enumeration order. A directory with
// no matching files is an error: there is nothing to analyze.
func LoadDirectory(dir string) ([]gjson.Result, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("globbing %q: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .json files found in %q", dir)
	}

	var records []gjson.Result
	for i, path := range paths {
		fmt.Printf("Processing file %d/%d: %s\n", i+1, len(paths), filepath.Base(path))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("%q is not valid JSON", path)
		}
		parsed := gjson.ParseBytes(data)
		if !parsed.IsArray() {
			return nil, fmt.Errorf("%q does not contain a JSON array", path)
		}
		fileRecords := parsed.Array()
		fmt.Printf("  - Loaded %d records\n", len(fileRecords))
		records = append(records, fileRecords...)
	}
	return records, nil
}

// Normalize converts raw export records into a Dataset. Malformed individual
// records (unparsable timestamp, negative ms_played) are skipped and counted
// rather than failing the batch. An error is returned only when no valid
// rows remain; if the whole batch lacked a timestamp field the error says so,
// since that points at a schema problem rather than a few bad rows.
func Normalize(records []gjson.Result) (Dataset, int, error) {
	ds := make(Dataset, 0, len(records))
	skipped := 0
	missingTS := 0

	for _, rec := range records {
		event, ok := normalizeOne(rec, &missingTS)
		if !ok {
			skipped++
			continue
		}
		ds = append(ds, event)
	}

	if len(ds) == 0 {
		if missingTS == len(records) && len(records) > 0 {
			return nil, skipped, fmt.Errorf("no 'ts' field present in any of %d records: input does not look like a streaming history export", len(records))
		}
		return nil, skipped, fmt.Errorf("no valid rows after normalizing %d records", len(records))
	}
	return ds, skipped, nil
}

func normalizeOne(rec gjson.Result, missingTS *int) (PlayEvent, bool) {
	tsField := rec.Get("ts")
	if !tsField.Exists() {
		*missingTS++
		return PlayEvent{}, false
	}
	ts, err := time.Parse(time.RFC3339, tsField.String())
	if err != nil {
		return PlayEvent{}, false
	}

	msPlayed := rec.Get("ms_played").Int()
	if msPlayed < 0 {
		return PlayEvent{}, false
	}

	event := PlayEvent{
		Timestamp:     ts,
		MsPlayed:      msPlayed,
		MinutesPlayed: float64(msPlayed) / 60000,
		Platform:      rec.Get("platform").String(),
		Skipped:       rec.Get("skipped").Bool(),
		Shuffle:       rec.Get("shuffle").Bool(),
		IPAddr:        rec.Get("ip_addr").String(),
	}

	// Song metadata is the baseline; podcast and audiobook fields override
	// the type-appropriate names. A record carrying both podcast and
	// audiobook fields is classified audiobook: that is an explicit policy
	// choice, kept consistent with how the preprocessor has always resolved
	// the conflict.
	event.TrackName = rec.Get("master_metadata_track_name").String()
	event.ArtistName = rec.Get("master_metadata_album_artist_name").String()
	event.AlbumName = rec.Get("master_metadata_album_album_name").String()
	event.ContentType = ContentSong

	if ep := rec.Get("episode_name"); ep.Exists() && ep.Type != gjson.Null {
		event.ContentType = ContentPodcast
		event.TrackName = ep.String()
		event.ArtistName = rec.Get("episode_show_name").String()
	}
	if ab := rec.Get("audiobook_title"); ab.Exists() && ab.Type != gjson.Null {
		event.ContentType = ContentAudiobook
		event.TrackName = rec.Get("audiobook_chapter_title").String()
		event.ArtistName = rec.Get("master_metadata_album_artist_name").String()
		event.AlbumName = ab.String()
	}

	return event, true
}
