package analysis

import (
	"sort"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// FrequentBingeThreshold is the minimum run length for a group to count
// toward an artist's binge tally.
const FrequentBingeThreshold = 3

// Binges partitions the time-sorted dataset into runs of consecutive plays
// of the same artist. A new group starts whenever the artist differs from
// the immediately preceding play, so non-adjacent runs of the same artist
// are never merged. Every group is returned, including length-1 runs;
// reporting functions apply their own thresholds.
func Binges(ds history.Dataset) []Binge {
	if len(ds) == 0 {
		return nil
	}

	sorted := make(history.Dataset, len(ds))
	copy(sorted, ds)
	sorted.SortByTime()

	var binges []Binge
	current := Binge{
		Artist:           sorted[0].ArtistName,
		ConsecutivePlays: 1,
		DurationMinutes:  sorted[0].MinutesPlayed,
		StartTime:        sorted[0].Timestamp,
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].ArtistName != current.Artist {
			binges = append(binges, current)
			current = Binge{
				Artist:           sorted[i].ArtistName,
				ConsecutivePlays: 1,
				DurationMinutes:  sorted[i].MinutesPlayed,
				StartTime:        sorted[i].Timestamp,
			}
			continue
		}
		current.ConsecutivePlays++
		current.DurationMinutes += sorted[i].MinutesPlayed
	}
	binges = append(binges, current)
	return binges
}

// LongestBinges returns the n longest runs by play count. Single plays are
// not binges and are excluded. Equal-length runs rank earliest-start first;
// the input is chronological, so a stable sort preserves that.
func LongestBinges(binges []Binge, n int) []Binge {
	var real []Binge
	for _, b := range binges {
		if b.ConsecutivePlays >= 2 {
			real = append(real, b)
		}
	}
	sort.SliceStable(real, func(i, j int) bool {
		return real[i].ConsecutivePlays > real[j].ConsecutivePlays
	})
	if n > 0 && len(real) > n {
		real = real[:n]
	}
	return real
}

// FrequentBingeArtists counts qualifying runs (FrequentBingeThreshold or
// more consecutive plays) per artist and returns the top n artists by that
// count, ties keeping first-seen order.
func FrequentBingeArtists(binges []Binge, n int) []ArtistBingeCount {
	counts := make(map[string]int)
	var order []string
	for _, b := range binges {
		if b.ConsecutivePlays < FrequentBingeThreshold {
			continue
		}
		if _, ok := counts[b.Artist]; !ok {
			order = append(order, b.Artist)
		}
		counts[b.Artist]++
	}

	results := make([]ArtistBingeCount, 0, len(order))
	for _, artist := range order {
		results = append(results, ArtistBingeCount{Artist: artist, Binges: counts[artist]})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Binges > results[j].Binges
	})
	if n > 0 && len(results) > n {
		results = results[:n]
	}
	return results
}

// BingeLengthHistogram counts runs by length, over runs longer than one
// play. Keys are run lengths.
func BingeLengthHistogram(binges []Binge) map[int]int {
	hist := make(map[int]int)
	for _, b := range binges {
		if b.ConsecutivePlays > 1 {
			hist[b.ConsecutivePlays]++
		}
	}
	return hist
}
