// Package linkedin gathers posts through the LinkedIn REST API.
// Without an access token the source yields no results; post search
// requires an authorized application.
package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

const defaultBaseURL = "https://api.linkedin.com/v2"

type Config struct {
	AccessToken string
	BaseURL     string
	MaxResults  int
	Timeout     time.Duration
}

type Source struct {
	httpClient  *http.Client
	accessToken string
	baseURL     string
	maxResults  int
	logger      *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Source{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		accessToken: cfg.AccessToken,
		baseURL:     baseURL,
		maxResults:  cfg.MaxResults,
		logger:      logger.With("source", string(domain.SourceLinkedIn)),
	}
}

func (s *Source) Kind() domain.SourceKind {
	return domain.SourceLinkedIn
}

func (s *Source) Name() string {
	return "LinkedIn Posts"
}

func (s *Source) Fetch(ctx context.Context, topic string) ([]domain.ContentItem, error) {
	if s.accessToken == "" {
		s.logger.Debug("no linkedin access token configured, skipping", "topic", topic)
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", "keywords")
	params.Set("keywords", topic)
	params.Set("count", fmt.Sprintf("%d", s.maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/posts?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")
	req.Header.Set("Accept", "application/json")

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

	var searchResp postSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("decode linkedin response: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(searchResp.Elements))
	for _, post := range searchResp.Elements {
		headline := headlineFromCommentary(post.Commentary)
		if headline == "" || post.ID == "" {
			continue
		}
		items = append(items, domain.ContentItem{
			Source:   "LinkedIn",
			Headline: headline,
			URL:      "https://www.linkedin.com/feed/update/" + post.ID,
		})
		if len(items) >= s.maxResults {
			break
		}
	}
	return items, nil
}

// headlineFromCommentary reduces a post body to its first non-empty line.
func headlineFromCommentary(commentary string) string {
	for _, line := range strings.Split(commentary, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
