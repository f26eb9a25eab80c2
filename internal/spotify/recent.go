// Package spotify fetches the user's most recently played tracks from the
// Spotify Web API and writes them as a small JSON snapshot. It is glue
// around the analysis pipeline; nothing in the pipeline reads its output.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/avast/retry-go"
	spotifyapi "github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
)

// SnapshotPath is where the recently-played snippet is written, relative to
// the working directory.
const SnapshotPath = "recently_played.json"

// RecentTrack is one entry of the snapshot.
type RecentTrack struct {
	Track    string    `json:"track"`
	Artist   string    `json:"artist"`
	PlayedAt time.Time `json:"played_at"`
}

// Client wraps the Spotify Web API for the recently-played fetch.
type Client struct {
	api *spotifyapi.Client
}

// New builds a client from an OAuth2 access token that carries the
// user-read-recently-played scope.
func New(ctx context.Context, accessToken string) *Client {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	httpClient := oauth2.NewClient(ctx, source)
	return &Client{api: spotifyapi.New(httpClient)}
}

// newWithHTTPClient is used by tests to point the API at a fake server.
func newWithHTTPClient(httpClient *http.Client, opts ...spotifyapi.ClientOption) *Client {
	return &Client{api: spotifyapi.New(httpClient, opts...)}
}

// Recent returns up to limit recently played tracks, newest first. Transient
// API failures are retried a few times before giving up.
func (c *Client) Recent(ctx context.Context, limit int) ([]RecentTrack, error) {
	var items []spotifyapi.RecentlyPlayedItem
	err := retry.Do(
		func() error {
			var err error
			items, err = c.api.PlayerRecentlyPlayedOpt(ctx, &spotifyapi.RecentlyPlayedOptions{
				Limit: spotifyapi.Numeric(limit),
			})
			return err
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching recently played: %w", err)
	}

	tracks := make([]RecentTrack, 0, len(items))
	for _, item := range items {
		artist := ""
		if len(item.Track.Artists) > 0 {
			artist = item.Track.Artists[0].Name
		}
		tracks = append(tracks, RecentTrack{
			Track:    item.Track.Name,
			Artist:   artist,
			PlayedAt: item.PlayedAt,
		})
	}
	return tracks, nil
}

// WriteSnapshot writes the tracks as indented JSON to path, replacing any
// previous snapshot.
func WriteSnapshot(path string, tracks []RecentTrack) error {
	data, err := json.MarshalIndent(tracks, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
