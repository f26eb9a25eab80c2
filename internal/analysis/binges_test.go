package analysis

import (
	"testing"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

func TestBingesNoMergeAcrossInterruption(t *testing.T) {
	ds := history.Dataset{
		event(t, 0, "A", "t1", 3),
		event(t, 5, "A", "t2", 3),
		event(t, 10, "A", "t3", 3),
		event(t, 15, "B", "t4", 3),
		event(t, 20, "A", "t5", 3),
	}
	binges := Binges(ds)

	want := []struct {
		artist string
		plays  int
	}{
		{"A", 3}, {"B", 1}, {"A", 1},
	}
	if len(binges) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(binges))
	}
	for i, w := range want {
		if binges[i].Artist != w.artist || binges[i].ConsecutivePlays != w.plays {
			t.Errorf("group %d: expected (%s,%d), got (%s,%d)",
				i, w.artist, w.plays, binges[i].Artist, binges[i].ConsecutivePlays)
		}
	}
	if binges[0].DurationMinutes != 9 {
		t.Errorf("expected first group to sum 9 minutes, got %v", binges[0].DurationMinutes)
	}
	if !binges[0].StartTime.Equal(ds[0].Timestamp) {
		t.Errorf("group start time should be its first event's timestamp")
	}
}

func TestLongestBingesExcludesSinglePlays(t *testing.T) {
	ds := history.Dataset{
		event(t, 0, "A", "t1", 3),
		event(t, 5, "A", "t2", 3),
		event(t, 10, "B", "t3", 3),
	}
	longest := LongestBinges(Binges(ds), 10)
	if len(longest) != 1 {
		t.Fatalf("expected only the A run, got %d groups", len(longest))
	}
	if longest[0].Artist != "A" || longest[0].ConsecutivePlays != 2 {
		t.Errorf("expected (A,2), got (%s,%d)", longest[0].Artist, longest[0].ConsecutivePlays)
	}
}

func TestLongestBingesTieBreakEarliest(t *testing.T) {
	ds := history.Dataset{
		event(t, 0, "A", "t1", 3),
		event(t, 5, "A", "t2", 3),
		event(t, 10, "B", "t3", 3),
		event(t, 15, "B", "t4", 3),
	}
	longest := LongestBinges(Binges(ds), 10)
	if len(longest) != 2 || longest[0].Artist != "A" {
		t.Errorf("equal-length runs should rank earliest first, got %+v", longest)
	}
}

func TestFrequentBingeArtists(t *testing.T) {
	var ds history.Dataset
	offset := 0.0
	addRun := func(artist string, n int) {
		for i := 0; i < n; i++ {
			ds = append(ds, event(t, offset, artist, "t", 3))
			offset += 5
		}
		// Break the run.
		ds = append(ds, event(t, offset, "break-"+artist, "t", 1))
		offset += 5
	}
	addRun("A", 3)
	addRun("A", 4)
	addRun("B", 3)
	addRun("C", 2) // under the threshold

	frequent := FrequentBingeArtists(Binges(ds), 10)
	if len(frequent) != 2 {
		t.Fatalf("expected 2 artists, got %d: %+v", len(frequent), frequent)
	}
	if frequent[0].Artist != "A" || frequent[0].Binges != 2 {
		t.Errorf("expected A with 2 binges first, got %+v", frequent[0])
	}
	if frequent[1].Artist != "B" || frequent[1].Binges != 1 {
		t.Errorf("expected B with 1 binge second, got %+v", frequent[1])
	}
}

func TestBingeLengthHistogram(t *testing.T) {
	ds := history.Dataset{
		event(t, 0, "A", "t1", 3),
		event(t, 5, "A", "t2", 3),
		event(t, 10, "B", "t3", 3),
		event(t, 15, "C", "t4", 3),
		event(t, 20, "C", "t5", 3),
	}
	hist := BingeLengthHistogram(Binges(ds))
	if hist[2] != 2 {
		t.Errorf("expected two runs of length 2, got %d", hist[2])
	}
	if _, ok := hist[1]; ok {
		t.Errorf("length-1 runs must not appear in the histogram")
	}
}

func TestBingesEmpty(t *testing.T) {
	if got := Binges(nil); got != nil {
		t.Errorf("expected nil for empty dataset, got %v", got)
	}
	if got := LongestBinges(nil, 10); got != nil {
		t.Errorf("expected nil for no binges, got %v", got)
	}
}
