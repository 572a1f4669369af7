package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coursebuilder/models"

	"github.com/go-resty/resty/v2"
)

// VideoProvider fetches topic-relevant tutorial videos from the YouTube Data
// API v3. Fetching is a two-stage call: a search for matching video ids, then
// a batch lookup of statistics and content details for those ids.
type VideoProvider struct {
	apiKey string
	client *resty.Client
}

// NewVideoProvider builds a provider with a fixed request deadline. baseURL is
// the API root (overridable for tests).
func NewVideoProvider(apiKey, baseURL string, timeout time.Duration) *VideoProvider {
	return &VideoProvider{
		apiKey: apiKey,
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Description  string `json:"description"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// Fetch returns up to maxResults tutorial videos for the topic as resources.
// A failed search call is fatal; a failed detail call degrades to an empty
// list so assembly can still complete with the remaining resource kinds.
func (p *VideoProvider) Fetch(ctx context.Context, topic string, maxResults int) ([]models.Resource, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("youtube: %w", ErrProviderUnavailable)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":              "snippet",
			"q":                 topic + " tutorial",
			"type":              "video",
			"videoDuration":     "medium", // 4-20 minute videos
			"maxResults":        strconv.Itoa(maxResults),
			"key":               p.apiKey,
			"order":             "relevance",
			"relevanceLanguage": "en",
			"safeSearch":        "strict",
		}).
		Get("/search")
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("youtube search: %w", ErrUpstreamTimeout)
		}
		return nil, fmt.Errorf("youtube search: %w", err)
	}
	if resp.StatusCode() != 200 {
		log.Printf("YouTube API error: %s", resp.String())
		return nil, &UpstreamError{Provider: "youtube", Status: resp.StatusCode(), Body: resp.String()}
	}

	var search searchResponse
	if err := json.Unmarshal(resp.Body(), &search); err != nil {
		return nil, fmt.Errorf("youtube search: decode response: %w", err)
	}
	if len(search.Items) == 0 {
		return []models.Resource{}, nil
	}

	videoIDs := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		videoIDs = append(videoIDs, item.ID.VideoID)
	}

	detailResp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "contentDetails,statistics,snippet",
			"id":   strings.Join(videoIDs, ","),
			"key":  p.apiKey,
		}).
		Get("/videos")
	// Detail lookup is best-effort: the course still assembles without
	// video resources.
	if err != nil {
		log.Printf("YouTube video detail lookup failed, skipping video resources: %v", err)
		return []models.Resource{}, nil
	}
	if detailResp.StatusCode() != 200 {
		log.Printf("YouTube API error: %s", detailResp.String())
		return []models.Resource{}, nil
	}

	var details videoListResponse
	if err := json.Unmarshal(detailResp.Body(), &details); err != nil {
		log.Printf("YouTube video detail decode failed, skipping video resources: %v", err)
		return []models.Resource{}, nil
	}

	resources := make([]models.Resource, 0, len(details.Items))
	for idx, item := range details.Items {
		viewCount := item.Statistics.ViewCount
		if viewCount == "" {
			viewCount = "0"
		}
		duration := item.ContentDetails.Duration
		if duration == "" {
			duration = "PT0M0S"
		}

		resources = append(resources, models.Resource{
			ID:          strconv.Itoa(idx + 1),
			Type:        "video",
			Title:       item.Snippet.Title,
			Channel:     item.Snippet.ChannelTitle,
			URL:         "https://www.youtube.com/watch?v=" + item.ID,
			Duration:    FormatDuration(duration),
			Views:       FormatViewCount(viewCount),
			Thumbnail:   item.Snippet.Thumbnails.High.URL,
			Description: truncate(item.Snippet.Description, 200),
		})
	}

	return resources, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// isTimeout reports whether an outbound call failed on a deadline, either the
// request context's or the HTTP client's.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}
