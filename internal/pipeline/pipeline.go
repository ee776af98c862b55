// Package pipeline orchestrates the per-topic generation sequence: gather
// content, persist the fact sheet, extract the writing style, compose the
// newsletter, persist it, and advance the topic's schedule state.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

type Pipeline struct {
	assembler   *Assembler
	topics      TopicStore
	samples     WritingSampleStore
	factSheets  FactSheetStore
	newsletters NewsletterStore
	style       StyleExtractor
	composer    Composer
	publisher   Publisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewPipeline constructs the orchestrator. publisher may be nil, in which
// case the publish step is skipped.
func NewPipeline(
	assembler *Assembler,
	topics TopicStore,
	samples WritingSampleStore,
	factSheets FactSheetStore,
	newsletters NewsletterStore,
	style StyleExtractor,
	composer Composer,
	publisher Publisher,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		assembler:   assembler,
		topics:      topics,
		samples:     samples,
		factSheets:  factSheets,
		newsletters: newsletters,
		style:       style,
		composer:    composer,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// Run executes the full stage sequence for one topic. The topic's last_run
// is advanced only after every stage succeeds; any stage failure leaves it
// untouched so the next scheduler tick retries.
func (p *Pipeline) Run(ctx context.Context, topicID int64, topicName string) (*domain.RunStats, error) {
	start := time.Now()
	logger := p.logger.With("topic_id", topicID, "topic", topicName)
	logger.Info("starting pipeline run")

	payload, markdown := p.assembler.Build(ctx, topicName)

	sheetID, err := p.factSheets.Save(ctx, topicID, markdown, payload)
	if err != nil {
		return nil, fmt.Errorf("save fact sheet: %w", err)
	}

	profile, err := p.styleProfile(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("extract style: %w", err)
	}

	letter, composeErr := p.composer.Compose(ctx, markdown, profile, topicName)

	// A degraded compose still yields a placeholder document; persist
	// whatever came back before deciding whether the run failed.
	var letterID int64
	if letter != "" {
		letterID, err = p.newsletters.Save(ctx, topicID, letter)
		if err != nil {
			return nil, fmt.Errorf("save newsletter: %w", err)
		}
	}
	if composeErr != nil {
		return nil, fmt.Errorf("compose newsletter: %w", composeErr)
	}

	if p.publisher != nil {
		newsletter := &domain.Newsletter{
			ID:        letterID,
			TopicID:   topicID,
			Markdown:  letter,
			CreatedAt: p.now(),
		}
		if err := p.publisher.Publish(ctx, newsletter, topicName); err != nil {
			logger.Warn("failed to publish newsletter event", "error", err)
		}
	}

	if err := p.topics.UpdateLastRun(ctx, topicID, p.now()); err != nil {
		return nil, fmt.Errorf("update last run: %w", err)
	}

	itemsByKind := make(map[domain.SourceKind]int, len(domain.SourceKinds()))
	for _, kind := range domain.SourceKinds() {
		itemsByKind[kind] = len(payload.Items(kind))
	}

	stats := &domain.RunStats{
		TopicID:      topicID,
		TopicName:    topicName,
		ItemsByKind:  itemsByKind,
		FactSheetID:  sheetID,
		NewsletterID: letterID,
		Duration:     time.Since(start),
	}

	logger.Info("pipeline run completed",
		"fact_sheet_id", stats.FactSheetID,
		"newsletter_id", stats.NewsletterID,
		"duration", stats.Duration,
	)
	return stats, nil
}

// styleProfile resolves the style for a topic. Topics without samples use
// the fixed default profile and never touch the extractor.
func (p *Pipeline) styleProfile(ctx context.Context, topicID int64) (domain.StyleProfile, error) {
	samples, err := p.samples.ListByTopic(ctx, topicID)
	if err != nil {
		return domain.StyleProfile{}, fmt.Errorf("list writing samples: %w", err)
	}
	if len(samples) == 0 {
		return domain.DefaultStyleProfile(), nil
	}

	texts := make([]string, len(samples))
	for i, sample := range samples {
		texts[i] = sample.Text
	}
	return p.style.Extract(ctx, texts)
}
