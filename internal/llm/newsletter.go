package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Atyab124/Automated-Newsletter/internal/config"
	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

const composePromptTemplate = `Write a newsletter using ONLY information from the FACT SHEET below.

CRITICAL RULES:
1. Use ONLY information from the fact sheet - NO hallucinations or made-up facts
2. Every claim must be traceable to a source in the fact sheet
3. If information is not in the fact sheet, do not include it
4. Always cite sources using the URLs provided in the fact sheet

Writing Style to Follow:
%s

FACT SHEET:
%s

Generate a well-structured newsletter that:
- Has a clear title related to "%s"
- Organizes information logically
- Includes proper source citations
- Follows the specified writing style
- Is engaging and informative
- Uses ONLY facts from the fact sheet

Format the newsletter in Markdown with appropriate headings, paragraphs, and links.`

// Composer turns a fact sheet and a style profile into the final
// newsletter document.
type Composer struct {
	provider      Provider
	titleTemplate string
	dateFormat    string
	logger        *slog.Logger
	now           func() time.Time
}

func NewComposer(provider Provider, cfg config.NewsletterConfig, logger *slog.Logger) *Composer {
	return &Composer{
		provider:      provider,
		titleTemplate: cfg.TitleTemplate,
		dateFormat:    cfg.DateFormat,
		logger:        logger.With("component", "composer"),
		now:           time.Now,
	}
}

// Compose generates the newsletter body and prepends the title and date
// header. When generation fails it returns a placeholder document
// describing the error together with the error itself: the caller persists
// the placeholder so a broken run still leaves a visible artifact, and the
// returned error keeps the topic's schedule state from advancing.
func (c *Composer) Compose(ctx context.Context, factSheetMarkdown string, style domain.StyleProfile, topic string) (string, error) {
	prompt := fmt.Sprintf(composePromptTemplate, formatStyle(style), factSheetMarkdown, topic)

	body, err := c.provider.Generate(ctx, Request{
		Prompt:      prompt,
		Temperature: 0.7,
	})
	if err != nil {
		c.logger.Error("newsletter generation failed", "topic", topic, "error", err)
		placeholder := fmt.Sprintf("# Newsletter Generation Error\n\nError: %s", err.Error())
		return placeholder, fmt.Errorf("generate newsletter: %w", err)
	}

	title := fmt.Sprintf(c.titleTemplate, topic)
	date := c.now().Format(c.dateFormat)

	return fmt.Sprintf("# %s\n\n*Generated on %s*\n\n---\n\n%s", title, date, body), nil
}

func formatStyle(style domain.StyleProfile) string {
	return fmt.Sprintf(
		"Tone: %s\nStructure: %s\nVoice: %s\nCommon Phrases: %s",
		style.Tone,
		style.Structure,
		style.Voice,
		strings.Join(style.CommonPhrases, ", "),
	)
}
