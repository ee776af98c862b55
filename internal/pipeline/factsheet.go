package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

const maxAbstractLen = 500

// sectionHeadings maps each source kind to its rendered section title and
// empty placeholder. Sections always render in gather order so downstream
// consumers see a stable document shape.
var sectionHeadings = map[domain.SourceKind]struct {
	title       string
	placeholder string
}{
	domain.SourceResearch: {"Research Papers", "*No research papers found.*"},
	domain.SourceNews:     {"News Headlines", "*No news headlines found.*"},
	domain.SourceLinkedIn: {"LinkedIn Posts", "*No LinkedIn posts found.*"},
	domain.SourceWeb:      {"Web Articles", "*No web articles found.*"},
}

// Assembler gathers content from every source and renders the fact sheet.
type Assembler struct {
	sources []Source
	logger  *slog.Logger
	now     func() time.Time
}

// NewAssembler wires the sources in gather order (research, news,
// linkedin, web).
func NewAssembler(sources []Source, logger *slog.Logger) *Assembler {
	return &Assembler{
		sources: sources,
		logger:  logger.With("component", "assembler"),
		now:     time.Now,
	}
}

// Build fetches all sources once each and assembles the structured payload
// plus its Markdown rendering. A failing source contributes an empty
// section; Build itself never fails.
func (a *Assembler) Build(ctx context.Context, topic string) (domain.FactSheetPayload, string) {
	payload := domain.FactSheetPayload{
		Topic:     topic,
		CreatedAt: a.now(),
	}

	for _, src := range a.sources {
		items, err := src.Fetch(ctx, topic)
		if err != nil {
			a.logger.Warn("source fetch degraded to empty result",
				"source", src.Name(),
				"topic", topic,
				"error", err,
			)
			items = nil
		}

		valid := filterValid(items)
		a.logger.Debug("gathered source",
			"source", src.Name(),
			"topic", topic,
			"items", len(valid),
		)
		payload.SetItems(src.Kind(), valid)
	}

	return payload, renderMarkdown(topic, &payload, a.now())
}

// filterValid drops items missing a headline or url.
func filterValid(items []domain.ContentItem) []domain.ContentItem {
	valid := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if item.Valid() {
			valid = append(valid, item)
		}
	}
	return valid
}

func renderMarkdown(topic string, payload *domain.FactSheetPayload, now time.Time) string {
	lines := []string{fmt.Sprintf("# Fact Sheet: %s\n", topic)}
	lines = append(lines, fmt.Sprintf("*Generated on %s*\n", now.Format("January 2, 2006 at 15:04")))

	for _, kind := range domain.SourceKinds() {
		heading := sectionHeadings[kind]
		items := payload.Items(kind)

		if len(items) == 0 {
			lines = append(lines, fmt.Sprintf("\n## %s\n%s\n", heading.title, heading.placeholder))
			continue
		}

		lines = append(lines, fmt.Sprintf("\n## %s\n", heading.title))
		switch kind {
		case domain.SourceResearch:
			for i, item := range items {
				lines = append(lines, fmt.Sprintf("%d. **%s**", i+1, item.Headline))
				if item.Abstract != "" {
					lines = append(lines, "   "+truncateAbstract(item.Abstract))
				}
				lines = append(lines, fmt.Sprintf("   Source: [%s](%s)\n", item.Source, item.URL))
			}
		case domain.SourceLinkedIn:
			for _, item := range items {
				lines = append(lines, fmt.Sprintf("- %s ([View Post](%s))", item.Headline, item.URL))
			}
			lines = append(lines, "")
		default:
			for _, item := range items {
				lines = append(lines, fmt.Sprintf("- %s ([%s](%s))", item.Headline, item.Source, item.URL))
			}
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

func truncateAbstract(abstract string) string {
	runes := []rune(abstract)
	if len(runes) <= maxAbstractLen {
		return abstract
	}
	return string(runes[:maxAbstractLen]) + "..."
}
