package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

const styleSystemPrompt = "You are an expert at analyzing writing styles. Extract the key characteristics and return ONLY valid JSON."

const stylePromptTemplate = `Analyze the following writing samples and extract the writing style characteristics.

Writing Samples:
%s

Please provide a JSON object with the following structure:
{
    "tone": "description of the tone (e.g., professional, casual, academic, friendly)",
    "structure": "description of the structure (e.g., formal paragraphs, bullet points, narrative style)",
    "voice": "description of the voice (e.g., first person, third person, authoritative, conversational)",
    "common_phrases": ["list", "of", "common", "phrases", "or", "expressions", "used"]
}

Respond ONLY with valid JSON, no additional text.`

// Matches the first JSON object in a response, tolerating one level of
// nesting. Models often wrap the object in prose or code fences.
var jsonObjectPattern = regexp.MustCompile(`\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)

// StyleExtractor derives a style profile from writing samples.
type StyleExtractor struct {
	provider Provider
	logger   *slog.Logger
}

func NewStyleExtractor(provider Provider, logger *slog.Logger) *StyleExtractor {
	return &StyleExtractor{
		provider: provider,
		logger:   logger.With("component", "style_extractor"),
	}
}

// Extract analyzes the samples and returns a style profile. Any generation
// or parse failure degrades to the default profile; extraction never fails
// the pipeline.
func (e *StyleExtractor) Extract(ctx context.Context, samples []string) (domain.StyleProfile, error) {
	if len(samples) == 0 {
		return domain.DefaultStyleProfile(), nil
	}

	combined := strings.Join(samples, "\n\n---\n\n")
	prompt := fmt.Sprintf(stylePromptTemplate, combined)

	response, err := e.provider.Generate(ctx, Request{
		System:      styleSystemPrompt,
		Prompt:      prompt,
		Temperature: 0.3,
	})
	if err != nil {
		e.logger.Warn("style extraction failed, using default profile", "error", err)
		return domain.DefaultStyleProfile(), nil
	}

	profile, err := parseStyleProfile(response)
	if err != nil {
		e.logger.Warn("style profile parse failed, using default profile", "error", err)
		return domain.DefaultStyleProfile(), nil
	}

	return profile, nil
}

func parseStyleProfile(response string) (domain.StyleProfile, error) {
	jsonStr := response
	if match := jsonObjectPattern.FindString(response); match != "" {
		jsonStr = match
	}

	var profile domain.StyleProfile
	if err := json.Unmarshal([]byte(strings.TrimSpace(jsonStr)), &profile); err != nil {
		return domain.StyleProfile{}, fmt.Errorf("parse style profile: %w", err)
	}
	if profile.CommonPhrases == nil {
		profile.CommonPhrases = []string{}
	}
	return profile, nil
}
