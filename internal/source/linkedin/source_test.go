package linkedin

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postSearchJSON = `{
  "elements": [
    {"id": "urn:li:share:1", "commentary": "\n\nExciting news about widgets!\nMore detail below."},
    {"id": "urn:li:share:2", "commentary": "   "},
    {"id": "", "commentary": "orphan post"}
  ]
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFetch_WithoutTokenYieldsNothing(t *testing.T) {
	src := New(Config{MaxResults: 10, Timeout: 5 * time.Second}, testLogger())

	items, err := src.Fetch(context.Background(), "widgets")

	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestFetch_ParsesPosts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "widgets", r.URL.Query().Get("keywords"))
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
		assert.Equal(t, "2.0.0", r.Header.Get("X-Restli-Protocol-Version"))
		w.Write([]byte(postSearchJSON))
	}))
	defer server.Close()

	src := New(Config{
		AccessToken: "token123",
		BaseURL:     server.URL,
		MaxResults:  10,
		Timeout:     5 * time.Second,
	}, testLogger())

	items, err := src.Fetch(context.Background(), "widgets")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "LinkedIn", items[0].Source)
	assert.Equal(t, "Exciting news about widgets!", items[0].Headline)
	assert.Equal(t, "https://www.linkedin.com/feed/update/urn:li:share:1", items[0].URL)
}

func TestFetch_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	src := New(Config{
		AccessToken: "token123",
		BaseURL:     server.URL,
		MaxResults:  10,
		Timeout:     5 * time.Second,
	}, testLogger())

	_, err := src.Fetch(context.Background(), "widgets")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status: 403")
}

func TestHeadlineFromCommentary(t *testing.T) {
	tests := []struct {
		name       string
		commentary string
		want       string
	}{
		{"single line", "Hello world", "Hello world"},
		{"leading blank lines", "\n\n  \nFirst real line\nsecond", "First real line"},
		{"only whitespace", " \n\t\n ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, headlineFromCommentary(tt.commentary))
		})
	}
}
