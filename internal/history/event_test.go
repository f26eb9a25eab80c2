package history

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDeriveCalendarFields(t *testing.T) {
	// 2023-04-03 is a Monday.
	e := PlayEvent{Timestamp: time.Date(2023, 4, 3, 22, 15, 0, 0, time.UTC)}
	e.Derive()

	assert.Equal(t, "2023-04-03", e.Date)
	assert.Equal(t, 2023, e.Year)
	assert.Equal(t, 4, e.Month)
	assert.Equal(t, 3, e.Day)
	assert.Equal(t, 22, e.Hour)
	assert.Equal(t, 0, e.DayOfWeek, "Monday is 0")
}

func TestDeriveDayOfWeekSunday(t *testing.T) {
	// 2023-04-09 is a Sunday.
	e := PlayEvent{Timestamp: time.Date(2023, 4, 9, 0, 0, 0, 0, time.UTC)}
	e.Derive()
	assert.Equal(t, 6, e.DayOfWeek, "Sunday is 6")
}

func TestDeriveUsesRecordedComponents(t *testing.T) {
	// The local representation is decomposed as-is, no zone conversion.
	loc := time.FixedZone("UTC+9", 9*60*60)
	e := PlayEvent{Timestamp: time.Date(2023, 4, 3, 1, 0, 0, 0, loc)}
	e.Derive()
	assert.Equal(t, 1, e.Hour)
	assert.Equal(t, 3, e.Day)
}

func TestDeriveIdempotent(t *testing.T) {
	ds := Dataset{
		{Timestamp: time.Date(2023, 4, 3, 22, 15, 0, 0, time.UTC), TrackName: "a"},
		{Timestamp: time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), TrackName: "b"},
	}
	ds.Derive()
	once := make(Dataset, len(ds))
	copy(once, ds)
	ds.Derive()

	if diff := cmp.Diff(once, ds); diff != "" {
		t.Errorf("re-deriving changed the dataset (-first +second):\n%s", diff)
	}
}

func TestSortByTimeStable(t *testing.T) {
	ts := time.Date(2023, 4, 3, 10, 0, 0, 0, time.UTC)
	ds := Dataset{
		{Timestamp: ts.Add(time.Hour), TrackName: "late"},
		{Timestamp: ts, TrackName: "first-equal"},
		{Timestamp: ts, TrackName: "second-equal"},
	}
	ds.SortByTime()

	assert.Equal(t, "first-equal", ds[0].TrackName)
	assert.Equal(t, "second-equal", ds[1].TrackName)
	assert.Equal(t, "late", ds[2].TrackName)
}
