// Package web gathers general web articles by scraping DuckDuckGo's HTML
// search results.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

const defaultBaseURL = "https://html.duckduckgo.com/html/"

type Config struct {
	BaseURL    string
	MaxResults int
	Timeout    time.Duration
}

type Source struct {
	httpClient *http.Client
	baseURL    string
	maxResults int
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Source{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    baseURL,
		maxResults: cfg.MaxResults,
		logger:     logger.With("source", string(domain.SourceWeb)),
	}
}

func (s *Source) Kind() domain.SourceKind {
	return domain.SourceWeb
}

func (s *Source) Name() string {
	return "Web Articles"
}

func (s *Source) Fetch(ctx context.Context, topic string) ([]domain.ContentItem, error) {
	params := url.Values{}
	params.Set("q", topic)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Automated-Newsletter/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse search results: %w", err)
	}

	var items []domain.ContentItem
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find("a.result__a")
		headline := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		target := resolveRedirect(href)
		if headline == "" || target == "" {
			return true
		}

		items = append(items, domain.ContentItem{
			Source:   hostOf(target),
			Headline: headline,
			Abstract: strings.TrimSpace(sel.Find(".result__snippet").Text()),
			URL:      target,
		})
		return len(items) < s.maxResults
	})

	return items, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links to the
// destination URL. Plain links pass through unchanged.
func resolveRedirect(href string) string {
	if href == "" {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	if parsed.Scheme == "http" || parsed.Scheme == "https" {
		return href
	}
	return ""
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "Web"
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
