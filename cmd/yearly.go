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
	"gopkg.in/yaml.v3"

	"github.com/ademuri/spotify-history-tools/internal/analysis"
	"github.com/ademuri/spotify-history-tools/internal/chart"
)

var yearlyCmd = &cobra.Command{
	Use:   "yearly",
	Short: "Generates the year-over-year trend report",
	Long:  `Per year: top artists and tracks by listening time, a monthly histogram, and total hours, as YAML.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printYearly(os.Stdout, viper.GetString("dataset"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(yearlyCmd)
}

func printYearly(out io.Writer, dsPath string) error {
	ds, err := loadDataset(dsPath)
	if err != nil {
		return err
	}

	trends, years := analysis.YearlyTrends(ds)

	// Emit years in ascending order; a map would serialize fine but not
	// deterministically annotated, so build an ordered document.
	doc := make([]map[int]analysis.YearStats, 0, len(years))
	for _, year := range years {
		doc = append(doc, map[int]analysis.YearStats{year: trends[year]})
	}
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}

	if len(years) > 0 {
		labels := make([]string, len(years))
		values := make([]float64, len(years))
		for i, year := range years {
			labels[i] = fmt.Sprintf("%d", year)
			values[i] = trends[year].TotalHours
		}
		if err := chart.Bars(viper.GetString("charts-dir"), "yearly_listening_comparison.txt",
			"Listening Hours by Year", labels, values); err != nil {
			fmt.Fprintf(out, "Chart not written: %v\n", err)
		}
	}
	return nil
}
