// Package research gathers papers from the arXiv and Semantic Scholar APIs.
package research

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

const (
	defaultArxivBaseURL           = "http://export.arxiv.org/api/query"
	defaultSemanticScholarBaseURL = "https://api.semanticscholar.org/graph/v1/paper/search"
)

type Config struct {
	ArxivBaseURL           string
	SemanticScholarBaseURL string
	MaxResults             int
	Timeout                time.Duration
}

type Source struct {
	httpClient         *http.Client
	arxivBaseURL       string
	semanticScholarURL string
	maxResults         int
	logger             *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	arxivURL := cfg.ArxivBaseURL
	if arxivURL == "" {
		arxivURL = defaultArxivBaseURL
	}
	scholarURL := cfg.SemanticScholarBaseURL
	if scholarURL == "" {
		scholarURL = defaultSemanticScholarBaseURL
	}

	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		arxivBaseURL:       arxivURL,
		semanticScholarURL: scholarURL,
		maxResults:         cfg.MaxResults,
		logger:             logger.With("source", string(domain.SourceResearch)),
	}
}

func (s *Source) Kind() domain.SourceKind {
	return domain.SourceResearch
}

func (s *Source) Name() string {
	return "Research Papers"
}

// Fetch queries both backends once each. A failing backend contributes
// nothing; partial results are returned without an error.
func (s *Source) Fetch(ctx context.Context, topic string) ([]domain.ContentItem, error) {
	var items []domain.ContentItem

	arxiv, err := s.fetchArxiv(ctx, topic)
	if err != nil {
		s.logger.Warn("arxiv fetch failed", "topic", topic, "error", err)
	}
	items = append(items, arxiv...)

	scholar, err := s.fetchSemanticScholar(ctx, topic)
	if err != nil {
		s.logger.Warn("semantic scholar fetch failed", "topic", topic, "error", err)
	}
	items = append(items, scholar...)

	if len(items) > s.maxResults {
		items = items[:s.maxResults]
	}
	return items, nil
}

func (s *Source) fetchArxiv(ctx context.Context, topic string) ([]domain.ContentItem, error) {
	params := url.Values{}
	params.Set("search_query", "all:"+topic)
	params.Set("start", "0")
	params.Set("max_results", fmt.Sprintf("%d", s.maxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	body, err := s.get(ctx, s.arxivBaseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var feed arxivFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decode arxiv response: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		title := strings.TrimSpace(entry.Title)
		if title == "" || entry.ID == "" {
			continue
		}
		items = append(items, domain.ContentItem{
			Source:   "arXiv",
			Headline: title,
			Abstract: strings.TrimSpace(entry.Summary),
			URL:      entry.ID,
		})
	}
	return items, nil
}

func (s *Source) fetchSemanticScholar(ctx context.Context, topic string) ([]domain.ContentItem, error) {
	params := url.Values{}
	params.Set("query", topic)
	params.Set("limit", fmt.Sprintf("%d", s.maxResults))
	params.Set("sort", "relevance")

	body, err := s.get(ctx, s.semanticScholarURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp scholarResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode semantic scholar response: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(resp.Data))
	for _, paper := range resp.Data {
		if paper.Title == "" || paper.PaperID == "" {
			continue
		}
		items = append(items, domain.ContentItem{
			Source:   "Semantic Scholar",
			Headline: paper.Title,
			Abstract: paper.Abstract,
			URL:      "https://www.semanticscholar.org/paper/" + paper.PaperID,
		})
	}
	return items, nil
}

func (s *Source) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
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

	return io.ReadAll(resp.Body)
}
