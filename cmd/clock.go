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

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var clockCmd = &cobra.Command{
	Use:   "clock [from] [to (optional)]",
	Short: "Shows listening time by hour of day and day of week",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printClock(os.Stdout, viper.GetString("dataset"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(clockCmd)
}

func printClock(out io.Writer, dsPath string, args []string) error {
	ds, err := loadDatasetRange(dsPath, args)
	if err != nil {
		return err
	}

	hours := analysis.MinutesByHour(ds)
	days := analysis.MinutesByWeekday(ds)

	hourly := Analysis{results: [][]string{{"Hour", "Minutes"}}}
	for h, minutes := range hours {
		hourly.results = append(hourly.results, []string{
			fmt.Sprintf("%02d", h), fmt.Sprintf("%.1f", minutes),
		})
	}
	hourly.summary = fmt.Sprintf("Listening time by hour over %d plays", len(ds))
	fmt.Fprint(out, hourly)

	weekly := Analysis{results: [][]string{{"Day", "Minutes"}}}
	for d, minutes := range days {
		weekly.results = append(weekly.results, []string{
			dayNames[d], fmt.Sprintf("%.1f", minutes),
		})
	}
	weekly.summary = fmt.Sprintf("Listening time by day of week over %d plays", len(ds))
	fmt.Fprint(out, weekly)

	if len(ds) > 0 {
		chartsDir := viper.GetString("charts-dir")
		if err := chart.Line(chartsDir, "listening_by_hour.txt",
			"Listening Time by Hour of Day (minutes)", hours[:]); err != nil {
			fmt.Fprintf(out, "Chart not written: %v\n", err)
		}
		if err := chart.Bars(chartsDir, "listening_by_day.txt",
			"Listening Time by Day of Week (minutes)", dayNames, days[:]); err != nil {
			fmt.Fprintf(out, "Chart not written: %v\n", err)
		}
	}
	return nil
}
