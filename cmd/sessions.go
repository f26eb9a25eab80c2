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

var sessionGapMinutes float64
var sessionsCmd = &cobra.Command{
	Use:   "sessions [from] [to (optional)]",
	Short: "Segments the history into listening sessions",
	Long: `A session is a run of plays where each starts within the gap
threshold of the previous one.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printSessions(os.Stdout, viper.GetString("dataset"), sessionGapMinutes, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.Flags().Float64Var(&sessionGapMinutes, "gap", analysis.DefaultSessionGapMinutes,
		"maximum minutes between plays in one session")
}

func printSessions(out io.Writer, dsPath string, gap float64, args []string) error {
	ds, err := loadDatasetRange(dsPath, args)
	if err != nil {
		return err
	}

	sessions := analysis.Sessions(ds, gap)
	summary := analysis.SummarizeSessions(sessions)

	fmt.Fprintf(out, "Total sessions: %d\n", summary.TotalSessions)
	fmt.Fprintf(out, "Average session length: %.1f minutes\n", summary.AvgSessionMinutes)
	fmt.Fprintf(out, "Average tracks per session: %.1f\n", summary.AvgTracksPerSession)
	if summary.TotalSessions > 0 {
		fmt.Fprintf(out, "Longest session: %.1f minutes, %d tracks, started %s\n",
			summary.Longest.DurationMinutes, summary.Longest.TrackCount,
			summary.Longest.StartTime.Format("2006-01-02 15:04"))
	}

	if summary.TotalSessions == 0 {
		return nil
	}

	chartsDir := viper.GetString("charts-dir")
	if err := chart.Line(chartsDir, "session_length_distribution.txt",
		"Session Lengths (minutes, chronological)", summary.DurationsMinutes); err != nil {
		fmt.Fprintf(out, "Chart not written: %v\n", err)
	}
	byHour := make([]float64, 24)
	for h, n := range summary.SessionsByHour {
		byHour[h] = float64(n)
	}
	if err := chart.Line(chartsDir, "sessions_by_hour.txt",
		"Number of Sessions by Starting Hour", byHour); err != nil {
		fmt.Fprintf(out, "Chart not written: %v\n", err)
	}
	return nil
}
