package analysis

import (
	"sort"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// MostSkippedMinPlays is the play-count floor for the most-skipped report;
// a track skipped once out of one play says nothing interesting.
const MostSkippedMinPlays = 5

// TrackSkipRates computes each track's skip rate as a percentage, restricted
// to tracks that appear more than once in the dataset. Tracks are returned
// in first-seen order.
func TrackSkipRates(ds history.Dataset) []TrackSkipRate {
	return skipRatesWithMinPlays(ds, 2)
}

// MostSkipped ranks tracks with at least MostSkippedMinPlays plays by skip
// rate descending and returns the top n, ties keeping first-seen order.
func MostSkipped(ds history.Dataset, n int) []TrackSkipRate {
	rates := skipRatesWithMinPlays(ds, MostSkippedMinPlays)
	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].SkipRate > rates[j].SkipRate
	})
	if n > 0 && len(rates) > n {
		rates = rates[:n]
	}
	return rates
}

func skipRatesWithMinPlays(ds history.Dataset, minPlays int64) []TrackSkipRate {
	type acc struct {
		plays int64
		skips int64
	}
	totals := make(map[string]*acc)
	var order []string
	for _, e := range ds {
		a, ok := totals[e.TrackName]
		if !ok {
			a = &acc{}
			totals[e.TrackName] = a
			order = append(order, e.TrackName)
		}
		a.plays++
		if e.Skipped {
			a.skips++
		}
	}

	var results []TrackSkipRate
	for _, track := range order {
		a := totals[track]
		if a.plays < minPlays {
			continue
		}
		results = append(results, TrackSkipRate{
			Track:     track,
			SkipRate:  float64(a.skips) / float64(a.plays) * 100,
			PlayCount: a.plays,
		})
	}
	return results
}

// HourlySkipRates computes the mean skip rate per hour of day, always
// returning all 24 hours. Hours with no plays report a zero rate and a zero
// play count rather than being omitted, so the curve stays aligned when
// charted.
func HourlySkipRates(ds history.Dataset) [24]HourSkipRate {
	var plays, skips [24]int64
	for _, e := range ds {
		if e.Hour < 0 || e.Hour > 23 {
			continue
		}
		plays[e.Hour]++
		if e.Skipped {
			skips[e.Hour]++
		}
	}

	var rates [24]HourSkipRate
	for h := 0; h < 24; h++ {
		rates[h] = HourSkipRate{Hour: h, Plays: plays[h]}
		if plays[h] > 0 {
			rates[h].SkipRate = float64(skips[h]) / float64(plays[h]) * 100
		}
	}
	return rates
}
