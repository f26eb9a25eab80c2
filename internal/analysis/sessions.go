package analysis

import (
	"github.com/ademuri/spotify-history-tools/internal/history"
)

// DefaultSessionGapMinutes is the largest gap between consecutive plays that
// still counts as the same listening session.
const DefaultSessionGapMinutes = 20.0

// Sessions partitions the dataset into listening sessions: maximal runs of
// time-ordered plays where each play starts no more than gapMinutes after
// the previous one. The input is sorted (stably) by timestamp first, so the
// same dataset always yields the same boundaries. The gap that closes a
// session belongs to neither session; only gaps strictly inside a run count
// toward its GapMinutes.
func Sessions(ds history.Dataset, gapMinutes float64) []Session {
	if len(ds) == 0 {
		return nil
	}

	sorted := make(history.Dataset, len(ds))
	copy(sorted, ds)
	sorted.SortByTime()

	var sessions []Session
	current := Session{
		StartTime:       sorted[0].Timestamp,
		TrackCount:      1,
		DurationMinutes: sorted[0].MinutesPlayed,
	}
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].Timestamp.Sub(sorted[i-1].Timestamp).Minutes()
		if gap > gapMinutes {
			sessions = append(sessions, current)
			current = Session{
				StartTime:       sorted[i].Timestamp,
				TrackCount:      1,
				DurationMinutes: sorted[i].MinutesPlayed,
			}
			continue
		}
		current.TrackCount++
		current.DurationMinutes += sorted[i].MinutesPlayed
		current.GapMinutes += gap
	}
	sessions = append(sessions, current)
	return sessions
}

// SummarizeSessions reduces a segmentation run to its report statistics.
// An empty input yields the zero summary.
func SummarizeSessions(sessions []Session) SessionSummary {
	summary := SessionSummary{TotalSessions: len(sessions)}
	if len(sessions) == 0 {
		return summary
	}

	var totalMinutes, totalTracks float64
	summary.Longest = sessions[0]
	summary.DurationsMinutes = make([]float64, 0, len(sessions))
	for _, s := range sessions {
		totalMinutes += s.DurationMinutes
		totalTracks += float64(s.TrackCount)
		summary.DurationsMinutes = append(summary.DurationsMinutes, s.DurationMinutes)
		hour := s.StartTime.Hour()
		summary.SessionsByHour[hour]++
		// Strictly-greater keeps the earliest session on ties; the input
		// is chronological.
		if s.DurationMinutes > summary.Longest.DurationMinutes {
			summary.Longest = s
		}
	}
	summary.AvgSessionMinutes = totalMinutes / float64(len(sessions))
	summary.AvgTracksPerSession = totalTracks / float64(len(sessions))
	return summary
}
