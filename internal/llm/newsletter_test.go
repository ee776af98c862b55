package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atyab124/Automated-Newsletter/internal/config"
	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

func newTestComposer(provider Provider) *Composer {
	c := NewComposer(provider, config.NewsletterConfig{
		TitleTemplate: "Weekly Newsletter: %s",
		DateFormat:    "January 2, 2006",
	}, testLogger())
	c.now = func() time.Time {
		return time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	}
	return c
}

func TestCompose_PrependsHeader(t *testing.T) {
	provider := &fakeProvider{response: "## Highlights\n\nSome body text."}
	composer := newTestComposer(provider)

	letter, err := composer.Compose(context.Background(), "fact sheet text", domain.DefaultStyleProfile(), "golang")

	require.NoError(t, err)
	assert.Equal(t,
		"# Weekly Newsletter: golang\n\n*Generated on June 15, 2025*\n\n---\n\n## Highlights\n\nSome body text.",
		letter,
	)
}

func TestCompose_PromptCarriesFactSheetAndStyle(t *testing.T) {
	provider := &fakeProvider{response: "body"}
	composer := newTestComposer(provider)

	style := domain.StyleProfile{
		Tone:          "casual",
		Structure:     "bullet points",
		Voice:         "first person",
		CommonPhrases: []string{"folks", "cheers"},
	}

	_, err := composer.Compose(context.Background(), "THE FACT SHEET", style, "golang")

	require.NoError(t, err)
	assert.Contains(t, provider.lastReq.Prompt, "THE FACT SHEET")
	assert.Contains(t, provider.lastReq.Prompt, "Tone: casual")
	assert.Contains(t, provider.lastReq.Prompt, "Common Phrases: folks, cheers")
	assert.Contains(t, provider.lastReq.Prompt, `"golang"`)
	assert.InDelta(t, 0.7, provider.lastReq.Temperature, 0.001)
}

func TestCompose_FailureReturnsPlaceholderAndError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("model unavailable")}
	composer := newTestComposer(provider)

	letter, err := composer.Compose(context.Background(), "fact sheet", domain.DefaultStyleProfile(), "golang")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate newsletter")
	assert.Contains(t, letter, "# Newsletter Generation Error")
	assert.Contains(t, letter, "model unavailable")
}
