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

var topArtistsNumber int
var topArtistsCmd = &cobra.Command{
	Use:   "top-artists [from] [to (optional)]",
	Short: "Ranks artists by listening time",
	Long:  `Optionally filtered to a date range. Date strings look like 'yyyy', 'yyyy-mm', or 'yyyy-mm-dd'.`,
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopArtists(os.Stdout, viper.GetString("dataset"), topArtistsNumber, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)

	topArtistsCmd.Flags().IntVarP(&topArtistsNumber, "number", "n", 10, "number of results to return")
}

func printTopArtists(out io.Writer, dsPath string, numToReturn int, args []string) error {
	ds, err := loadDatasetRange(dsPath, args)
	if err != nil {
		return err
	}

	groups := analysis.MinutesBy(ds, func(e history.PlayEvent) string { return e.ArtistName })
	top := analysis.TopByMinutes(groups, numToReturn)

	result := Analysis{results: [][]string{{"Artist", "Minutes", "Plays"}}}
	for _, g := range top {
		result.results = append(result.results, []string{
			g.Key, fmt.Sprintf("%.1f", g.Minutes), fmt.Sprintf("%d", g.Plays),
		})
	}
	result.summary = fmt.Sprintf("Found %d artists and %d plays", len(groups), len(ds))
	fmt.Fprint(out, result)

	if len(top) > 0 {
		labels, values := groupSeries(top)
		if err := chart.Bars(viper.GetString("charts-dir"), "top_10_artists.txt",
			"Top Artists by Listening Time (minutes)", labels, values); err != nil {
			fmt.Fprintf(out, "Chart not written: %v\n", err)
		}
	}
	return nil
}

// groupSeries splits grouped totals into the label/value pair the chart
// sink takes.
func groupSeries(groups []analysis.GroupTotal) ([]string, []float64) {
	labels := make([]string, len(groups))
	values := make([]float64, len(groups))
	for i, g := range groups {
		labels[i] = g.Key
		values[i] = g.Minutes
	}
	return labels, values
}
