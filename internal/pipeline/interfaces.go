package pipeline

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

// Source is one content domain gathered into a fact sheet. Fetch is tried
// once per run; an error degrades to an empty section.
type Source interface {
	Kind() domain.SourceKind
	Name() string
	Fetch(ctx context.Context, topic string) ([]domain.ContentItem, error)
}

type TopicStore interface {
	Get(ctx context.Context, id int64) (*domain.Topic, error)
	UpdateLastRun(ctx context.Context, id int64, runAt time.Time) error
}

type WritingSampleStore interface {
	ListByTopic(ctx context.Context, topicID int64) ([]domain.WritingSample, error)
}

type FactSheetStore interface {
	Save(ctx context.Context, topicID int64, markdown string, payload domain.FactSheetPayload) (int64, error)
}

type NewsletterStore interface {
	Save(ctx context.Context, topicID int64, markdown string) (int64, error)
}

type StyleExtractor interface {
	Extract(ctx context.Context, samples []string) (domain.StyleProfile, error)
}

// Composer generates the newsletter document. On an internal generation
// failure it returns a placeholder document describing the error alongside
// a non-nil error; the pipeline persists the placeholder either way.
type Composer interface {
	Compose(ctx context.Context, factSheetMarkdown string, style domain.StyleProfile, topic string) (string, error)
}

type Publisher interface {
	Publish(ctx context.Context, newsletter *domain.Newsletter, topicName string) error
	Close() error
}
