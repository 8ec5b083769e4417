package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/grindtime/api/internal/config"
	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/models"
)

const defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"

// youtubeVideoSearcher proxies the YouTube Data API search endpoint.
type youtubeVideoSearcher struct {
	client *resty.Client
	apiKey string
	logger *logger.Logger
}

// youtubeSearchResponse mirrors the subset of the search/list response
// consumed by this adapter.
type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
		} `json:"snippet"`
	} `json:"items"`
}

// NewYouTubeVideoSearcher constructs a VideoSearcher for the YouTube Data
// API. An empty API key yields a searcher whose calls fail with
// ErrSearchUnavailable.
func NewYouTubeVideoSearcher(cfg config.Search, log *logger.Logger) VideoSearcher {
	baseURL := cfg.YouTubeBaseURL
	if baseURL == "" {
		baseURL = defaultYouTubeBaseURL
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &youtubeVideoSearcher{client: cli, apiKey: cfg.YouTubeAPIKey, logger: log}
}

// SearchVideos runs a free-text video search and assembles a watch URL from
// each returned video ID.
func (y *youtubeVideoSearcher) SearchVideos(ctx context.Context, query string, limit int) ([]models.Video, error) {
	log := logger.FromContext(ctx)

	if y.apiKey == "" {
		return nil, ErrSearchUnavailable
	}
	if limit <= 0 {
		limit = 5
	}

	var result youtubeSearchResponse
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"q":          query,
			"type":       "video",
			"maxResults": strconv.Itoa(limit),
			"order":      "relevance",
			"key":        y.apiKey,
		}).
		SetResult(&result).
		Get("/search")
	if err != nil {
		log.Err(err).Str("query", query).Msg("video search request failed")
		return nil, fmt.Errorf("video search request: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("query", query).Msg("video search upstream error")
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamFailed, resp.StatusCode())
	}

	videos := make([]models.Video, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.Kind != "youtube#video" || item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, models.Video{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			WatchURL:     "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		})
	}

	return videos, nil
}
