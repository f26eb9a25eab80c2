// Package analysis computes descriptive statistics over a normalized
// streaming-history dataset. Every function here is a read-only fold over
// the dataset; nothing mutates shared state, so callers may run analyses in
// any order.
package analysis

import (
	"sort"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// MinutesBy folds the dataset into per-group totals, keyed by keyFn.
// Groups are returned in first-seen order, which makes top-N tie-breaking
// deterministic: a stable sort on the result keeps earlier-seen groups
// ahead of later ones with equal totals.
func MinutesBy(ds history.Dataset, keyFn func(history.PlayEvent) string) []GroupTotal {
	totals := make(map[string]*GroupTotal)
	var order []string
	for _, e := range ds {
		key := keyFn(e)
		acc, ok := totals[key]
		if !ok {
			acc = &GroupTotal{Key: key}
			totals[key] = acc
			order = append(order, key)
		}
		acc.Minutes += e.MinutesPlayed
		acc.Plays++
	}

	results := make([]GroupTotal, 0, len(order))
	for _, key := range order {
		results = append(results, *totals[key])
	}
	return results
}

// TopByMinutes ranks groups by summed minutes descending and returns at most
// n of them. Ties keep first-seen order.
func TopByMinutes(groups []GroupTotal, n int) []GroupTotal {
	ranked := make([]GroupTotal, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Minutes > ranked[j].Minutes
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopByPlays ranks groups by play count descending and returns at most n.
func TopByPlays(groups []GroupTotal, n int) []GroupTotal {
	ranked := make([]GroupTotal, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Plays > ranked[j].Plays
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func byArtist(e history.PlayEvent) string { return e.ArtistName }
func byTrack(e history.PlayEvent) string  { return e.TrackName }

// TopArtists returns the top n artists by summed minutes played.
func TopArtists(ds history.Dataset, n int) []GroupTotal {
	return TopByMinutes(MinutesBy(ds, byArtist), n)
}

// TopTracks returns the top n tracks by summed minutes played.
func TopTracks(ds history.Dataset, n int) []GroupTotal {
	return TopByMinutes(MinutesBy(ds, byTrack), n)
}

// MinutesByHour sums minutes played into 24 hour-of-day buckets.
func MinutesByHour(ds history.Dataset) [24]float64 {
	var hours [24]float64
	for _, e := range ds {
		if e.Hour >= 0 && e.Hour < 24 {
			hours[e.Hour] += e.MinutesPlayed
		}
	}
	return hours
}

// MinutesByWeekday sums minutes played into 7 buckets, 0=Monday.
func MinutesByWeekday(ds history.Dataset) [7]float64 {
	var days [7]float64
	for _, e := range ds {
		if e.DayOfWeek >= 0 && e.DayOfWeek < 7 {
			days[e.DayOfWeek] += e.MinutesPlayed
		}
	}
	return days
}

// Basic computes the headline statistics block.
func Basic(ds history.Dataset) BasicStats {
	stats := BasicStats{}
	if len(ds) == 0 {
		return stats
	}

	uniqueTracks := make(map[string]struct{})
	uniqueArtists := make(map[string]struct{})
	uniqueAlbums := make(map[string]struct{})
	uniqueIPs := make(map[string]struct{})
	var totalMinutes float64
	var skips, shuffles int64

	stats.FirstPlay = ds[0].Timestamp
	stats.LastPlay = ds[0].Timestamp
	for _, e := range ds {
		totalMinutes += e.MinutesPlayed
		uniqueTracks[e.TrackName] = struct{}{}
		uniqueArtists[e.ArtistName] = struct{}{}
		uniqueAlbums[e.AlbumName] = struct{}{}
		if e.IPAddr != "" {
			uniqueIPs[e.IPAddr] = struct{}{}
		}
		if e.Timestamp.Before(stats.FirstPlay) {
			stats.FirstPlay = e.Timestamp
		}
		if e.Timestamp.After(stats.LastPlay) {
			stats.LastPlay = e.Timestamp
		}
		if e.Skipped {
			skips++
		}
		if e.Shuffle {
			shuffles++
		}
	}

	stats.TotalHours = totalMinutes / 60
	stats.UniqueTracks = len(uniqueTracks)
	stats.UniqueArtists = len(uniqueArtists)
	stats.UniqueAlbums = len(uniqueAlbums)
	stats.UniqueIPs = len(uniqueIPs)
	stats.ContentTypeCounts = TopByPlays(MinutesBy(ds, func(e history.PlayEvent) string {
		return string(e.ContentType)
	}), 0)
	stats.TopPlatforms = TopByPlays(MinutesBy(ds, func(e history.PlayEvent) string {
		return e.Platform
	}), 5)
	stats.SkipRate = float64(skips) / float64(len(ds)) * 100
	stats.ShuffleRate = float64(shuffles) / float64(len(ds)) * 100
	return stats
}

// YearlyTrends builds the per-year trend report: top-5 artists and tracks by
// minutes, a monthly minutes histogram, and total hours. Years returns the
// distinct years ascending so callers can iterate the map deterministically.
func YearlyTrends(ds history.Dataset) (map[int]YearStats, []int) {
	byYear := make(map[int]history.Dataset)
	var years []int
	for _, e := range ds {
		if _, ok := byYear[e.Year]; !ok {
			years = append(years, e.Year)
		}
		byYear[e.Year] = append(byYear[e.Year], e)
	}
	sort.Ints(years)

	trends := make(map[int]YearStats, len(years))
	for _, year := range years {
		yearData := byYear[year]

		monthly := make(map[int]float64)
		var totalMinutes float64
		for _, e := range yearData {
			monthly[e.Month] += e.MinutesPlayed
			totalMinutes += e.MinutesPlayed
		}

		trends[year] = YearStats{
			TopArtists:       TopArtists(yearData, 5),
			TopTracks:        TopTracks(yearData, 5),
			MonthlyListening: monthly,
			TotalHours:       totalMinutes / 60,
		}
	}
	return trends, years
}
