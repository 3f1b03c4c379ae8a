package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/imraac/LMS-backend/internal/logger"
)

// ErrNoMetadata is returned when the video host has no snippet for the URL.
var ErrNoMetadata = errors.New("no metadata available for video")

// VideoMetadata is the subset of hosting-site metadata used to enrich a course.
type VideoMetadata struct {
	Title       string // Video title
	Description string // Video description
	Thumbnail   string // High-resolution thumbnail URL
}

// VideoMetadataFacade resolves course video metadata from the YouTube Data API.
// Lookups are best-effort; callers are expected to skip enrichment on error.
type VideoMetadataFacade struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewVideoMetadataFacade creates a facade with the given API key.
// baseURL overrides the Data API endpoint and is meant for tests;
// pass "" for the real service.
func NewVideoMetadataFacade(apiKey, baseURL string) *VideoMetadataFacade {
	if baseURL == "" {
		baseURL = "https://www.googleapis.com/youtube/v3"
	}
	return &VideoMetadataFacade{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// videoID pulls the video id out of a watch URL.
func videoID(videoURL string) (string, error) {
	if idx := strings.LastIndex(videoURL, "v="); idx >= 0 {
		id := videoURL[idx+2:]
		if amp := strings.IndexByte(id, '&'); amp >= 0 {
			id = id[:amp]
		}
		if id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("no video id in url %q", videoURL)
}

type videosResponse struct {
	Items []struct {
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Thumbnails  struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Lookup fetches title, description and thumbnail for a video URL.
func (f *VideoMetadataFacade) Lookup(ctx context.Context, videoURL string) (*VideoMetadata, error) {
	id, err := videoID(videoURL)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/videos?part=snippet&id=%s&key=%s",
		f.baseURL, url.QueryEscape(id), url.QueryEscape(f.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Warnw("video metadata lookup failed", "video", videoURL, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Warnw("video metadata lookup returned non-OK status", "video", videoURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("video metadata endpoint status %d", resp.StatusCode)
	}

	var vr videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, err
	}
	if len(vr.Items) == 0 {
		return nil, ErrNoMetadata
	}

	snippet := vr.Items[0].Snippet
	return &VideoMetadata{
		Title:       snippet.Title,
		Description: snippet.Description,
		Thumbnail:   snippet.Thumbnails.High.URL,
	}, nil
}
