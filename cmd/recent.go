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
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/spotify-history-tools/internal/spotify"
)

var recentLimit int
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Fetches recently played tracks from the Spotify API",
	Long: `Writes the most recently played tracks as a small JSON snapshot to
recently_played.json. Requires a Spotify access token with the
user-read-recently-played scope, from --spotify-token or the
SPOTIFY_ACCESS_TOKEN environment variable (a .env file is honored).`,
	Run: func(cmd *cobra.Command, args []string) {
		err := fetchRecent(viper.GetString("spotify-token"), recentLimit)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)

	var token string
	recentCmd.Flags().StringVar(&token, "spotify-token", "", "Spotify access token")
	viper.BindPFlag("spotify-token", recentCmd.Flags().Lookup("spotify-token"))
	recentCmd.Flags().IntVarP(&recentLimit, "number", "n", 3, "number of tracks to fetch")
}

func fetchRecent(token string, limit int) error {
	if token == "" {
		// .env is optional; absence is not an error.
		godotenv.Load()
		token = os.Getenv("SPOTIFY_ACCESS_TOKEN")
	}
	if token == "" {
		return fmt.Errorf("no Spotify access token: set --spotify-token or SPOTIFY_ACCESS_TOKEN")
	}

	ctx := context.Background()
	client := spotify.New(ctx, token)
	tracks, err := client.Recent(ctx, limit)
	if err != nil {
		return err
	}

	if err := spotify.WriteSnapshot(spotify.SnapshotPath, tracks); err != nil {
		return err
	}
	fmt.Printf("Wrote %d tracks to %s\n", len(tracks), spotify.SnapshotPath)
	return nil
}
