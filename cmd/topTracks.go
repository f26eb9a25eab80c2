/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/spotify-history-tools/internal/analysis"
	"github.com/ademuri/spotify-history-tools/internal/chart"
	"github.com/ademuri/spotify-history-tools/internal/history"
)

var topTracksNumber int
var topTracksByPlays bool
var topTracksCmd = &cobra.Command{
	Use:   "top-tracks [from] [to (optional)]",
	Short: "Ranks tracks by listening time or play count",
	Long:  `Optionally filtered to a date range. Date strings look like 'yyyy', 'yyyy-mm', or 'yyyy-mm-dd'.`,
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopTracks(os.Stdout, viper.GetString("dataset"), topTracksNumber, topTracksByPlays, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topTracksCmd)

	topTracksCmd.Flags().IntVarP(&topTracksNumber, "number", "n", 10, "number of results to return")
	topTracksCmd.Flags().BoolVar(&topTracksByPlays, "by-plays", false, "rank by play count instead of minutes")
}

func printTopTracks(out io.Writer, dsPath string, numToReturn int, byPlays bool, args []string) error {
	ds, err := loadDatasetRange(dsPath, args)
	if err != nil {
		return err
	}

	groups := analysis.MinutesBy(ds, func(e history.PlayEvent) string { return e.TrackName })

	var top []analysis.GroupTotal
	chartName := "top_10_tracks.txt"
	chartTitle := "Top Tracks by Listening Time (minutes)"
	if byPlays {
		top = analysis.TopByPlays(groups, numToReturn)
		chartName = "top_10_tracks_play_count.txt"
		chartTitle = "Top Tracks by Play Count"
	} else {
		top = analysis.TopByMinutes(groups, numToReturn)
	}

	result := Analysis{results: [][]string{{"Track", "Minutes", "Plays"}}}
	for _, g := range top {
		result.results = append(result.results, []string{
			g.Key, fmt.Sprintf("%.1f", g.Minutes), fmt.Sprintf("%d", g.Plays),
		})
	}
	result.summary = fmt.Sprintf("Found %d tracks and %d plays", len(groups), len(ds))
	fmt.Fprint(out, result)

	if len(top) > 0 {
		labels := make([]string, len(top))
		values := make([]float64, len(top))
		for i, g := range top {
			labels[i] = g.Key
			if byPlays {
				values[i] = float64(g.Plays)
			} else {
				values[i] = g.Minutes
			}
		}
		if err := chart.Bars(viper.GetString("charts-dir"), chartName, chartTitle, labels, values); err != nil {
			fmt.Fprintf(out, "Chart not written: %v\n", err)
		}
	}
	return nil
}
