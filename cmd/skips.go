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
)

var skipsCmd = &cobra.Command{
	Use:   "skips [from] [to (optional)]",
	Short: "Analyzes skip behavior",
	Long:  `Most-skipped tracks (among tracks played at least 5 times) and skip rates by hour of day.`,
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printSkips(os.Stdout, viper.GetString("dataset"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(skipsCmd)
}

func printSkips(out io.Writer, dsPath string, args []string) error {
	ds, err := loadDatasetRange(dsPath, args)
	if err != nil {
		return err
	}

	mostSkipped := analysis.MostSkipped(ds, 10)
	table := Analysis{results: [][]string{{"Track", "Skip Rate (%)", "Plays"}}}
	for _, t := range mostSkipped {
		table.results = append(table.results, []string{
			t.Track, fmt.Sprintf("%.1f", t.SkipRate), fmt.Sprintf("%d", t.PlayCount),
		})
	}
	table.summary = fmt.Sprintf("Most skipped tracks with %d+ plays, from %d plays total",
		analysis.MostSkippedMinPlays, len(ds))
	fmt.Fprint(out, table)

	hourly := analysis.HourlySkipRates(ds)
	curve := make([]float64, 24)
	var observed int64
	for h, r := range hourly {
		curve[h] = r.SkipRate
		observed += r.Plays
	}
	if observed > 0 {
		if err := chart.Line(viper.GetString("charts-dir"), "hourly_skip_rates.txt",
			"Skip Rate by Hour of Day (%)", curve); err != nil {
			fmt.Fprintf(out, "Chart not written: %v\n", err)
		}
	}

	if len(mostSkipped) > 0 {
		labels := make([]string, len(mostSkipped))
		values := make([]float64, len(mostSkipped))
		for i, t := range mostSkipped {
			labels[i] = t.Track
			values[i] = t.SkipRate
		}
		if err := chart.Bars(viper.GetString("charts-dir"), "most_skipped_tracks.txt",
			"Most Frequently Skipped Tracks (played at least 5 times)", labels, values); err != nil {
			fmt.Fprintf(out, "Chart not written: %v\n", err)
		}
	}
	return nil
}
