package pipeline

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
	"github.com/Atyab124/Automated-Newsletter/internal/pipeline/mocks"
)

func newTestAssembler(t *testing.T, ctrl *gomock.Controller, fetch map[domain.SourceKind][]domain.ContentItem) *Assembler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	var sources []Source
	for _, kind := range domain.SourceKinds() {
		src := mocks.NewMockSource(ctrl)
		src.EXPECT().Kind().Return(kind).AnyTimes()
		src.EXPECT().Name().Return(string(kind)).AnyTimes()
		src.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(fetch[kind], nil).AnyTimes()
		sources = append(sources, src)
	}

	a := NewAssembler(sources, logger)
	a.now = func() time.Time {
		return time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	}
	return a
}

func TestBuild_SectionsRenderInGatherOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := newTestAssembler(t, ctrl, map[domain.SourceKind][]domain.ContentItem{
		domain.SourceResearch: {{Source: "arXiv", Headline: "A Paper", Abstract: "An abstract.", URL: "https://arxiv.org/abs/1"}},
		domain.SourceNews:     {{Source: "wired.com", Headline: "A Headline", URL: "https://example.com/news"}},
		domain.SourceLinkedIn: {{Source: "LinkedIn", Headline: "A Post", URL: "https://linkedin.com/p/1"}},
		domain.SourceWeb:      {{Source: "blog.example.com", Headline: "An Article", URL: "https://blog.example.com/a"}},
	})

	payload, markdown := a.Build(context.Background(), "quantum computing")

	assert.Equal(t, "quantum computing", payload.Topic)
	assert.Contains(t, markdown, "# Fact Sheet: quantum computing")
	assert.Contains(t, markdown, "*Generated on June 15, 2025 at 09:30*")

	research := strings.Index(markdown, "## Research Papers")
	news := strings.Index(markdown, "## News Headlines")
	linkedin := strings.Index(markdown, "## LinkedIn Posts")
	web := strings.Index(markdown, "## Web Articles")

	require.True(t, research >= 0 && news >= 0 && linkedin >= 0 && web >= 0)
	assert.True(t, research < news)
	assert.True(t, news < linkedin)
	assert.True(t, linkedin < web)

	assert.Contains(t, markdown, "1. **A Paper**")
	assert.Contains(t, markdown, "An abstract.")
	assert.Contains(t, markdown, "Source: [arXiv](https://arxiv.org/abs/1)")
	assert.Contains(t, markdown, "- A Headline ([wired.com](https://example.com/news))")
	assert.Contains(t, markdown, "- A Post ([View Post](https://linkedin.com/p/1))")
	assert.Contains(t, markdown, "- An Article ([blog.example.com](https://blog.example.com/a))")
}

func TestBuild_EmptySectionsUsePlaceholders(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := newTestAssembler(t, ctrl, nil)
	payload, markdown := a.Build(context.Background(), "quantum computing")

	assert.Empty(t, payload.ResearchPapers)
	assert.Empty(t, payload.NewsHeadlines)
	assert.Empty(t, payload.LinkedInPosts)
	assert.Empty(t, payload.WebArticles)

	assert.Contains(t, markdown, "*No research papers found.*")
	assert.Contains(t, markdown, "*No news headlines found.*")
	assert.Contains(t, markdown, "*No LinkedIn posts found.*")
	assert.Contains(t, markdown, "*No web articles found.*")
}

func TestBuild_TruncatesLongAbstracts(t *testing.T) {
	ctrl := gomock.NewController(t)

	long := strings.Repeat("a", 600)
	a := newTestAssembler(t, ctrl, map[domain.SourceKind][]domain.ContentItem{
		domain.SourceResearch: {{Source: "arXiv", Headline: "Long One", Abstract: long, URL: "https://arxiv.org/abs/1"}},
	})

	_, markdown := a.Build(context.Background(), "ai")

	assert.Contains(t, markdown, strings.Repeat("a", 500)+"...")
	assert.NotContains(t, markdown, strings.Repeat("a", 501))
}

func TestBuild_ShortAbstractNotTruncated(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := newTestAssembler(t, ctrl, map[domain.SourceKind][]domain.ContentItem{
		domain.SourceResearch: {{Source: "arXiv", Headline: "Short One", Abstract: "brief", URL: "https://arxiv.org/abs/1"}},
	})

	_, markdown := a.Build(context.Background(), "ai")

	assert.Contains(t, markdown, "brief")
	assert.NotContains(t, markdown, "brief...")
}
