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
)

var statsCmd = &cobra.Command{
	Use:   "stats [from] [to (optional)]",
	Short: "Prints basic statistics for the dataset",
	Long:  `Total listening time, unique counts, content types, platforms, and skip/shuffle rates.`,
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printStats(os.Stdout, viper.GetString("dataset"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func printStats(out io.Writer, dsPath string, args []string) error {
	ds, err := loadDatasetRange(dsPath, args)
	if err != nil {
		return err
	}

	stats := analysis.Basic(ds)

	fmt.Fprintf(out, "Total listening time: %.2f hours\n", stats.TotalHours)
	fmt.Fprintf(out, "Unique tracks: %d\n", stats.UniqueTracks)
	fmt.Fprintf(out, "Unique artists: %d\n", stats.UniqueArtists)
	fmt.Fprintf(out, "Unique albums: %d\n", stats.UniqueAlbums)
	fmt.Fprintf(out, "Unique IP addresses: %d\n", stats.UniqueIPs)
	fmt.Fprintf(out, "Date range: %s to %s\n",
		stats.FirstPlay.Format("2006-01-02"), stats.LastPlay.Format("2006-01-02"))
	fmt.Fprintf(out, "Skip rate: %.2f%%\n", stats.SkipRate)
	fmt.Fprintf(out, "Shuffle rate: %.2f%%\n", stats.ShuffleRate)

	fmt.Fprintf(out, "\nContent types:\n")
	for _, ct := range stats.ContentTypeCounts {
		fmt.Fprintf(out, "  - %s: %d\n", ct.Key, ct.Plays)
	}

	fmt.Fprintf(out, "\nTop 5 platforms:\n")
	for _, p := range stats.TopPlatforms {
		fmt.Fprintf(out, "  - %s: %d\n", p.Key, p.Plays)
	}
	return nil
}
