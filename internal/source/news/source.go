// Package news gathers headlines from NewsAPI, falling back to the Google
// News RSS feed when no API key is configured.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

const (
	defaultNewsAPIBaseURL = "https://newsapi.org/v2/everything"
	defaultRSSBaseURL     = "https://news.google.com/rss/search"
)

type Config struct {
	APIKey         string
	NewsAPIBaseURL string
	RSSBaseURL     string
	MaxResults     int
	Timeout        time.Duration
}

type Source struct {
	httpClient     *http.Client
	feedParser     *gofeed.Parser
	apiKey         string
	newsAPIBaseURL string
	rssBaseURL     string
	maxResults     int
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	apiURL := cfg.NewsAPIBaseURL
	if apiURL == "" {
		apiURL = defaultNewsAPIBaseURL
	}
	rssURL := cfg.RSSBaseURL
	if rssURL == "" {
		rssURL = defaultRSSBaseURL
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}

	parser := gofeed.NewParser()
	parser.Client = httpClient
	parser.UserAgent = "Automated-Newsletter/1.0"

	return &Source{
		httpClient:     httpClient,
		feedParser:     parser,
		apiKey:         cfg.APIKey,
		newsAPIBaseURL: apiURL,
		rssBaseURL:     rssURL,
		maxResults:     cfg.MaxResults,
		logger:         logger.With("source", string(domain.SourceNews)),
	}
}

func (s *Source) Kind() domain.SourceKind {
	return domain.SourceNews
}

func (s *Source) Name() string {
	return "News Headlines"
}

// Fetch tries NewsAPI when a key is configured and falls back to RSS when
// there is no key or the keyed request produced nothing.
func (s *Source) Fetch(ctx context.Context, topic string) ([]domain.ContentItem, error) {
	var items []domain.ContentItem

	if s.apiKey != "" {
		fetched, err := s.fetchNewsAPI(ctx, topic)
		if err != nil {
			s.logger.Warn("newsapi fetch failed", "topic", topic, "error", err)
		}
		items = fetched
	}

	if len(items) == 0 {
		fetched, err := s.fetchRSS(ctx, topic)
		if err != nil {
			return nil, fmt.Errorf("fetch news rss: %w", err)
		}
		items = fetched
	}

	if len(items) > s.maxResults {
		items = items[:s.maxResults]
	}
	return items, nil
}

func (s *Source) fetchNewsAPI(ctx context.Context, topic string) ([]domain.ContentItem, error) {
	params := url.Values{}
	params.Set("q", topic)
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", fmt.Sprintf("%d", s.maxResults))
	params.Set("apiKey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.newsAPIBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Automated-Newsletter/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var apiResp newsAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("decode newsapi response: %w", err)
	}
	if apiResp.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q", apiResp.Status)
	}

	items := make([]domain.ContentItem, 0, len(apiResp.Articles))
	for _, article := range apiResp.Articles {
		if article.Title == "" || article.URL == "" {
			continue
		}
		sourceName := article.Source.Name
		if sourceName == "" {
			sourceName = "Unknown"
		}
		items = append(items, domain.ContentItem{
			Source:   sourceName,
			Headline: article.Title,
			Abstract: article.Description,
			URL:      article.URL,
		})
	}
	return items, nil
}

func (s *Source) fetchRSS(ctx context.Context, topic string) ([]domain.ContentItem, error) {
	params := url.Values{}
	params.Set("q", topic)
	params.Set("hl", "en-US")
	params.Set("gl", "US")
	params.Set("ceid", "US:en")

	feed, err := s.feedParser.ParseURLWithContext(s.rssBaseURL+"?"+params.Encode(), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry.Title == "" || entry.Link == "" {
			continue
		}
		items = append(items, domain.ContentItem{
			Source:   "Google News",
			Headline: entry.Title,
			Abstract: entry.Description,
			URL:      entry.Link,
		})
		if len(items) >= s.maxResults {
			break
		}
	}
	return items, nil
}
