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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// preprocessCmd represents the preprocess command
var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Builds the combined dataset from the raw export",
	Long: `Loads every JSON file from the export directory, normalizes the
heterogeneous records (songs, podcast episodes, audiobook chapters) into one
schema, derives calendar fields, and writes the combined CSV dataset.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := preprocess(viper.GetString("data-dir"), viper.GetString("dataset"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
}

func preprocess(dir, outPath string) error {
	if dir == "" {
		return fmt.Errorf("--data-dir is required")
	}

	records, err := history.LoadDirectory(dir)
	if err != nil {
		return fmt.Errorf("loading export: %w", err)
	}

	ds, skipped, err := history.Normalize(records)
	// The processed/skipped summary prints even on partial success.
	fmt.Printf("Normalized %d rows, skipped %d malformed rows\n", len(ds), skipped)
	if err != nil {
		return fmt.Errorf("normalizing: %w", err)
	}

	ds.Derive()

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", outPath, err)
	}
	defer f.Close()

	if err := history.WriteCSV(f, ds); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(ds), outPath)
	return nil
}
