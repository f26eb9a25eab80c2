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
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

var cfgFile string
var dataDir string
var datasetPath string
var chartsDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotify-history-tools",
	Short: "Performs analysis on a Spotify extended streaming history export",
	Long: `Run 'preprocess' once to build the combined dataset from the raw
export files, then any of the analysis commands against it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.spotify-history-tools.yaml)")

	rootCmd.PersistentFlags().StringVar(
		&dataDir, "data-dir", "", "Directory containing the raw export JSON files")
	viper.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))

	rootCmd.PersistentFlags().StringVar(
		&datasetPath, "dataset", "./spotify_data_combined.csv", "Path to the combined CSV dataset")
	viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))

	rootCmd.PersistentFlags().StringVar(
		&chartsDir, "charts-dir", ".", "Directory to write chart files to")
	viper.BindPFlag("charts-dir", rootCmd.PersistentFlags().Lookup("charts-dir"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".spotify-history-tools" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".spotify-history-tools")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// loadDataset reads the combined CSV dataset written by preprocess.
func loadDataset(path string) (history.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset %q doesn't exist - run preprocess first", path)
		}
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	ds, err := history.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return ds, nil
}

// loadDatasetRange loads the dataset and, when args carry a date range in
// the 'yyyy[-mm[-dd]]' style, filters it down to [start, end).
func loadDatasetRange(path string, args []string) (history.Dataset, error) {
	ds, err := loadDataset(path)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return ds, nil
	}

	start, end, err := parseDateRangeFromArgs(args)
	if err != nil {
		return nil, err
	}
	var filtered history.Dataset
	for _, e := range ds {
		if !e.Timestamp.Before(start) && e.Timestamp.Before(end) {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no plays between %s and %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return filtered, nil
}
