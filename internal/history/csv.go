package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// csvHeader is the persisted column order. Changing it breaks existing
// dataset files, so additions go at the end.
var csvHeader = []string{
	"ts", "track_name", "artist_name", "album_name", "content_type",
	"ms_played", "minutes_played", "platform", "skipped", "shuffle",
	"ip_addr", "date", "year", "month", "day", "hour", "day_of_week",
}

// WriteCSV writes the dataset as comma-separated values with a header row.
// No row index is emitted; the persisted schema is exactly the event fields.
func WriteCSV(w io.Writer, ds Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range ds {
		row := []string{
			e.Timestamp.Format(time.RFC3339),
			e.TrackName,
			e.ArtistName,
			e.AlbumName,
			string(e.ContentType),
			strconv.FormatInt(e.MsPlayed, 10),
			strconv.FormatFloat(e.MinutesPlayed, 'g', -1, 64),
			e.Platform,
			strconv.FormatBool(e.Skipped),
			strconv.FormatBool(e.Shuffle),
			e.IPAddr,
			e.Date,
			strconv.Itoa(e.Year),
			strconv.Itoa(e.Month),
			strconv.Itoa(e.Day),
			strconv.Itoa(e.Hour),
			strconv.Itoa(e.DayOfWeek),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a dataset previously written by WriteCSV.
func ReadCSV(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(header))
	}

	var ds Dataset
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}
		e, err := eventFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ds = append(ds, e)
	}
	return ds, nil
}

func eventFromRow(row []string) (PlayEvent, error) {
	var e PlayEvent
	ts, err := time.Parse(time.RFC3339, row[0])
	if err != nil {
		return e, fmt.Errorf("parsing ts: %w", err)
	}
	e.Timestamp = ts
	e.TrackName = row[1]
	e.ArtistName = row[2]
	e.AlbumName = row[3]
	e.ContentType = ContentType(row[4])

	if e.MsPlayed, err = strconv.ParseInt(row[5], 10, 64); err != nil {
		return e, fmt.Errorf("parsing ms_played: %w", err)
	}
	if e.MinutesPlayed, err = strconv.ParseFloat(row[6], 64); err != nil {
		return e, fmt.Errorf("parsing minutes_played: %w", err)
	}
	e.Platform = row[7]
	if e.Skipped, err = strconv.ParseBool(row[8]); err != nil {
		return e, fmt.Errorf("parsing skipped: %w", err)
	}
	if e.Shuffle, err = strconv.ParseBool(row[9]); err != nil {
		return e, fmt.Errorf("parsing shuffle: %w", err)
	}
	e.IPAddr = row[10]
	e.Date = row[11]

	ints := []struct {
		name string
		dst  *int
		val  string
	}{
		{"year", &e.Year, row[12]},
		{"month", &e.Month, row[13]},
		{"day", &e.Day, row[14]},
		{"hour", &e.Hour, row[15]},
		{"day_of_week", &e.DayOfWeek, row[16]},
	}
	for _, f := range ints {
		n, err := strconv.Atoi(f.val)
		if err != nil {
			return e, fmt.Errorf("parsing %s: %w", f.name, err)
		}
		*f.dst = n
	}
	return e, nil
}
