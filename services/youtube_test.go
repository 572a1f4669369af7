package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchReply = `{
	"items": [
		{"id": {"videoId": "vid-1"}},
		{"id": {"videoId": "vid-2"}}
	]
}`

const detailsReply = `{
	"items": [
		{
			"id": "vid-1",
			"snippet": {
				"title": "Recursion Explained",
				"channelTitle": "CS Primer",
				"description": "All about recursion.",
				"thumbnails": {"high": {"url": "https://img.example/vid-1.jpg"}}
			},
			"statistics": {"viewCount": "1500"},
			"contentDetails": {"duration": "PT15M33S"}
		},
		{
			"id": "vid-2",
			"snippet": {
				"title": "Recursion in Practice",
				"channelTitle": "CS Primer",
				"description": "",
				"thumbnails": {"high": {"url": "https://img.example/vid-2.jpg"}}
			},
			"statistics": {},
			"contentDetails": {}
		}
	]
}`

// fakeYouTube serves the search and videos endpoints with configurable
// behavior for the detail call.
func fakeYouTube(t *testing.T, detailStatus int) (*httptest.Server, *map[string]string) {
	t.Helper()
	searchParams := map[string]string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			for key := range r.URL.Query() {
				searchParams[key] = r.URL.Query().Get(key)
			}
			_, _ = w.Write([]byte(searchReply))
		case "/videos":
			if detailStatus != http.StatusOK {
				http.Error(w, "quota exceeded", detailStatus)
				return
			}
			_, _ = w.Write([]byte(detailsReply))
		default:
			http.NotFound(w, r)
		}
	}))
	return server, &searchParams
}

func TestVideoFetchWithoutAPIKey(t *testing.T) {
	provider := NewVideoProvider("", "http://localhost:0", testTimeout)

	_, err := provider.Fetch(context.Background(), "recursion", 8)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestVideoFetchMapsResults(t *testing.T) {
	server, searchParams := fakeYouTube(t, http.StatusOK)
	defer server.Close()

	provider := NewVideoProvider("test-key", server.URL, testTimeout)

	resources, err := provider.Fetch(context.Background(), "recursion", 8)
	require.NoError(t, err)
	require.Len(t, resources, 2)

	first := resources[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "video", first.Type)
	assert.Equal(t, "Recursion Explained", first.Title)
	assert.Equal(t, "CS Primer", first.Channel)
	assert.Equal(t, "https://www.youtube.com/watch?v=vid-1", first.URL)
	assert.Equal(t, "15:33", first.Duration)
	assert.Equal(t, "1.5K", first.Views)
	assert.Equal(t, "https://img.example/vid-1.jpg", first.Thumbnail)

	// Missing statistics and duration fall back to zero values.
	second := resources[1]
	assert.Equal(t, "2", second.ID)
	assert.Equal(t, "0:00", second.Duration)
	assert.Equal(t, "0", second.Views)

	params := *searchParams
	assert.Equal(t, "recursion tutorial", params["q"])
	assert.Equal(t, "medium", params["videoDuration"])
	assert.Equal(t, "relevance", params["order"])
	assert.Equal(t, "strict", params["safeSearch"])
	assert.Equal(t, "en", params["relevanceLanguage"])
	assert.Equal(t, "8", params["maxResults"])
}

func TestVideoFetchTruncatesDescription(t *testing.T) {
	longDescription := ""
	for i := 0; i < 50; i++ {
		longDescription += "recursion "
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/search" {
			_, _ = w.Write([]byte(`{"items": [{"id": {"videoId": "vid-1"}}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"items": [{"id": "vid-1", "snippet": {"title": "T", "channelTitle": "C", "description": "` + longDescription + `", "thumbnails": {"high": {"url": ""}}}, "statistics": {"viewCount": "10"}, "contentDetails": {"duration": "PT5M"}}]}`))
	}))
	defer server.Close()

	provider := NewVideoProvider("test-key", server.URL, testTimeout)

	resources, err := provider.Fetch(context.Background(), "recursion", 1)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Len(t, resources[0].Description, 200)
}

func TestVideoFetchSearchFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	provider := NewVideoProvider("test-key", server.URL, testTimeout)

	_, err := provider.Fetch(context.Background(), "recursion", 8)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusForbidden, upstream.Status)
	assert.Contains(t, upstream.Body, "forbidden")
}

func TestVideoFetchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	provider := NewVideoProvider("test-key", server.URL, testTimeout)

	resources, err := provider.Fetch(context.Background(), "recursion", 8)
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestVideoFetchDetailFailureDegrades(t *testing.T) {
	server, _ := fakeYouTube(t, http.StatusInternalServerError)
	defer server.Close()

	provider := NewVideoProvider("test-key", server.URL, testTimeout)

	resources, err := provider.Fetch(context.Background(), "recursion", 8)
	require.NoError(t, err)
	assert.Empty(t, resources)
}
