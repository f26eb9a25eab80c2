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
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/spotify-history-tools/internal/analysis"
	"github.com/ademuri/spotify-history-tools/internal/chart"
)

var bingesCmd = &cobra.Command{
	Use:   "binges [from] [to (optional)]",
	Short: "Finds runs of consecutive plays of the same artist",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printBinges(os.Stdout, viper.GetString("dataset"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(bingesCmd)
}

func printBinges(out io.Writer, dsPath string, args []string) error {
	ds, err := loadDatasetRange(dsPath, args)
	if err != nil {
		return err
	}

	binges := analysis.Binges(ds)

	longest := Analysis{results: [][]string{{"Artist", "Consecutive Plays", "Minutes", "Started"}}}
	for _, b := range analysis.LongestBinges(binges, 10) {
		longest.results = append(longest.results, []string{
			b.Artist,
			fmt.Sprintf("%d", b.ConsecutivePlays),
			fmt.Sprintf("%.1f", b.DurationMinutes),
			b.StartTime.Format("2006-01-02 15:04"),
		})
	}
	longest.summary = fmt.Sprintf("Found %d artist runs in %d plays", len(binges), len(ds))
	fmt.Fprint(out, longest)

	frequent := analysis.FrequentBingeArtists(binges, 10)
	frequentTable := Analysis{results: [][]string{{"Artist", "Binges"}}}
	for _, a := range frequent {
		frequentTable.results = append(frequentTable.results, []string{
			a.Artist, fmt.Sprintf("%d", a.Binges),
		})
	}
	frequentTable.summary = fmt.Sprintf("Artists binged %d+ tracks in a row", analysis.FrequentBingeThreshold)
	fmt.Fprint(out, frequentTable)

	hist := analysis.BingeLengthHistogram(binges)
	if len(hist) > 0 {
		lengths := make([]int, 0, len(hist))
		for length := range hist {
			lengths = append(lengths, length)
		}
		sort.Ints(lengths)
		counts := make([]float64, len(lengths))
		for i, length := range lengths {
			counts[i] = float64(hist[length])
		}
		if err := chart.Histogram(viper.GetString("charts-dir"), "binge_length_distribution.txt",
			"Distribution of Artist Binge Lengths", lengths, counts); err != nil {
			fmt.Fprintf(out, "Chart not written: %v\n", err)
		}
	}
	if len(frequent) > 0 {
		labels := make([]string, len(frequent))
		values := make([]float64, len(frequent))
		for i, a := range frequent {
			labels[i] = a.Artist
			values[i] = float64(a.Binges)
		}
		if err := chart.Bars(viper.GetString("charts-dir"), "top_binge_artists.txt",
			"Artists Most Frequently Binged (3+ consecutive tracks)", labels, values); err != nil {
			fmt.Fprintf(out, "Chart not written: %v\n", err)
		}
	}
	return nil
}
