package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
	"github.com/Atyab124/Automated-Newsletter/internal/pipeline/mocks"
)

type PipelineTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	research *mocks.MockSource
	news     *mocks.MockSource
	linkedin *mocks.MockSource
	web      *mocks.MockSource

	topics      *mocks.MockTopicStore
	samples     *mocks.MockWritingSampleStore
	factSheets  *mocks.MockFactSheetStore
	newsletters *mocks.MockNewsletterStore
	style       *mocks.MockStyleExtractor
	composer    *mocks.MockComposer
	publisher   *mocks.MockPublisher

	pipeline *Pipeline
	logger   *slog.Logger
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.research = s.newSource(domain.SourceResearch, "arxiv")
	s.news = s.newSource(domain.SourceNews, "newsapi")
	s.linkedin = s.newSource(domain.SourceLinkedIn, "linkedin")
	s.web = s.newSource(domain.SourceWeb, "duckduckgo")

	s.topics = mocks.NewMockTopicStore(s.ctrl)
	s.samples = mocks.NewMockWritingSampleStore(s.ctrl)
	s.factSheets = mocks.NewMockFactSheetStore(s.ctrl)
	s.newsletters = mocks.NewMockNewsletterStore(s.ctrl)
	s.style = mocks.NewMockStyleExtractor(s.ctrl)
	s.composer = mocks.NewMockComposer(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	assembler := NewAssembler(
		[]Source{s.research, s.news, s.linkedin, s.web},
		s.logger,
	)

	s.pipeline = NewPipeline(
		assembler,
		s.topics,
		s.samples,
		s.factSheets,
		s.newsletters,
		s.style,
		s.composer,
		s.publisher,
		s.logger,
	)
}

func (s *PipelineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) newSource(kind domain.SourceKind, name string) *mocks.MockSource {
	src := mocks.NewMockSource(s.ctrl)
	src.EXPECT().Kind().Return(kind).AnyTimes()
	src.EXPECT().Name().Return(name).AnyTimes()
	return src
}

func (s *PipelineTestSuite) expectEmptySources(ctx context.Context, topic string) {
	s.research.EXPECT().Fetch(ctx, topic).Return(nil, nil)
	s.news.EXPECT().Fetch(ctx, topic).Return(nil, nil)
	s.linkedin.EXPECT().Fetch(ctx, topic).Return(nil, nil)
	s.web.EXPECT().Fetch(ctx, topic).Return(nil, nil)
}

func (s *PipelineTestSuite) TestRun_Success() {
	ctx := context.Background()

	items := []domain.ContentItem{
		{Source: "newsapi", Headline: "Go 1.25 released", URL: "https://example.com/go"},
	}
	s.research.EXPECT().Fetch(ctx, "golang").Return(nil, nil)
	s.news.EXPECT().Fetch(ctx, "golang").Return(items, nil)
	s.linkedin.EXPECT().Fetch(ctx, "golang").Return(nil, nil)
	s.web.EXPECT().Fetch(ctx, "golang").Return(nil, nil)

	s.factSheets.EXPECT().Save(ctx, int64(1), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, markdown string, payload domain.FactSheetPayload) (int64, error) {
			s.Contains(markdown, "# Fact Sheet: golang")
			s.Contains(markdown, "Go 1.25 released")
			s.Equal(items, payload.NewsHeadlines)
			return 10, nil
		},
	)

	samples := []domain.WritingSample{{ID: 1, TopicID: 1, Text: "Hi folks,"}}
	profile := domain.StyleProfile{Tone: "casual", Structure: "short paragraphs", Voice: "first person", CommonPhrases: []string{"folks"}}

	s.samples.EXPECT().ListByTopic(ctx, int64(1)).Return(samples, nil)
	s.style.EXPECT().Extract(ctx, []string{"Hi folks,"}).Return(profile, nil)

	s.composer.EXPECT().Compose(ctx, gomock.Any(), profile, "golang").Return("# Weekly Newsletter: golang\n\nbody", nil)
	s.newsletters.EXPECT().Save(ctx, int64(1), "# Weekly Newsletter: golang\n\nbody").Return(int64(20), nil)

	s.publisher.EXPECT().Publish(ctx, gomock.Any(), "golang").DoAndReturn(
		func(_ context.Context, letter *domain.Newsletter, _ string) error {
			s.Equal(int64(20), letter.ID)
			s.Equal(int64(1), letter.TopicID)
			return nil
		},
	)

	s.topics.EXPECT().UpdateLastRun(ctx, int64(1), gomock.Any()).Return(nil)

	stats, err := s.pipeline.Run(ctx, 1, "golang")
	s.NoError(err)
	s.Require().NotNil(stats)
	s.Equal(int64(10), stats.FactSheetID)
	s.Equal(int64(20), stats.NewsletterID)
	s.Equal(1, stats.ItemsByKind[domain.SourceNews])
	s.Equal(0, stats.ItemsByKind[domain.SourceResearch])
}

func (s *PipelineTestSuite) TestRun_SourceFailureDegradesToEmptySection() {
	ctx := context.Background()

	s.research.EXPECT().Fetch(ctx, "golang").Return(nil, errors.New("arxiv timeout"))
	s.news.EXPECT().Fetch(ctx, "golang").Return([]domain.ContentItem{
		{Source: "newsapi", Headline: "headline", URL: "https://example.com"},
	}, nil)
	s.linkedin.EXPECT().Fetch(ctx, "golang").Return(nil, nil)
	s.web.EXPECT().Fetch(ctx, "golang").Return(nil, nil)

	s.factSheets.EXPECT().Save(ctx, int64(1), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, markdown string, payload domain.FactSheetPayload) (int64, error) {
			s.Empty(payload.ResearchPapers)
			s.Len(payload.NewsHeadlines, 1)
			s.Contains(markdown, "*No research papers found.*")
			return 10, nil
		},
	)

	s.samples.EXPECT().ListByTopic(ctx, int64(1)).Return(nil, nil)
	s.composer.EXPECT().Compose(ctx, gomock.Any(), domain.DefaultStyleProfile(), "golang").Return("letter", nil)
	s.newsletters.EXPECT().Save(ctx, int64(1), "letter").Return(int64(20), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), "golang").Return(nil)
	s.topics.EXPECT().UpdateLastRun(ctx, int64(1), gomock.Any()).Return(nil)

	_, err := s.pipeline.Run(ctx, 1, "golang")
	s.NoError(err)
}

func (s *PipelineTestSuite) TestRun_NoSamplesSkipsExtractor() {
	ctx := context.Background()
	s.expectEmptySources(ctx, "golang")

	s.factSheets.EXPECT().Save(ctx, int64(1), gomock.Any(), gomock.Any()).Return(int64(10), nil)
	s.samples.EXPECT().ListByTopic(ctx, int64(1)).Return(nil, nil)

	// no Extract expectation: zero samples must never touch the extractor
	s.composer.EXPECT().Compose(ctx, gomock.Any(), domain.DefaultStyleProfile(), "golang").Return("letter", nil)
	s.newsletters.EXPECT().Save(ctx, int64(1), "letter").Return(int64(20), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), "golang").Return(nil)
	s.topics.EXPECT().UpdateLastRun(ctx, int64(1), gomock.Any()).Return(nil)

	_, err := s.pipeline.Run(ctx, 1, "golang")
	s.NoError(err)
}

func (s *PipelineTestSuite) TestRun_ComposerDegradedPersistsPlaceholder() {
	ctx := context.Background()
	s.expectEmptySources(ctx, "golang")

	s.factSheets.EXPECT().Save(ctx, int64(1), gomock.Any(), gomock.Any()).Return(int64(10), nil)
	s.samples.EXPECT().ListByTopic(ctx, int64(1)).Return(nil, nil)

	placeholder := "# Newsletter Generation Error\n\nError: model unavailable"
	s.composer.EXPECT().Compose(ctx, gomock.Any(), domain.DefaultStyleProfile(), "golang").
		Return(placeholder, errors.New("model unavailable"))

	// the placeholder is persisted, but last_run must not advance and no
	// event is published
	s.newsletters.EXPECT().Save(ctx, int64(1), placeholder).Return(int64(20), nil)

	_, err := s.pipeline.Run(ctx, 1, "golang")
	s.Error(err)
	s.Contains(err.Error(), "compose newsletter")
}

func (s *PipelineTestSuite) TestRun_FactSheetSaveErrorAborts() {
	ctx := context.Background()
	s.expectEmptySources(ctx, "golang")

	s.factSheets.EXPECT().Save(ctx, int64(1), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("db down"))

	_, err := s.pipeline.Run(ctx, 1, "golang")
	s.Error(err)
	s.Contains(err.Error(), "save fact sheet")
}

func (s *PipelineTestSuite) TestRun_SampleListErrorAborts() {
	ctx := context.Background()
	s.expectEmptySources(ctx, "golang")

	s.factSheets.EXPECT().Save(ctx, int64(1), gomock.Any(), gomock.Any()).Return(int64(10), nil)
	s.samples.EXPECT().ListByTopic(ctx, int64(1)).Return(nil, errors.New("db down"))

	_, err := s.pipeline.Run(ctx, 1, "golang")
	s.Error(err)
	s.Contains(err.Error(), "list writing samples")
}

func (s *PipelineTestSuite) TestRun_PublishFailureIsNonFatal() {
	ctx := context.Background()
	s.expectEmptySources(ctx, "golang")

	s.factSheets.EXPECT().Save(ctx, int64(1), gomock.Any(), gomock.Any()).Return(int64(10), nil)
	s.samples.EXPECT().ListByTopic(ctx, int64(1)).Return(nil, nil)
	s.composer.EXPECT().Compose(ctx, gomock.Any(), domain.DefaultStyleProfile(), "golang").Return("letter", nil)
	s.newsletters.EXPECT().Save(ctx, int64(1), "letter").Return(int64(20), nil)

	s.publisher.EXPECT().Publish(ctx, gomock.Any(), "golang").Return(errors.New("broker down"))

	// publishing is best-effort; the run still completes
	s.topics.EXPECT().UpdateLastRun(ctx, int64(1), gomock.Any()).Return(nil)

	_, err := s.pipeline.Run(ctx, 1, "golang")
	s.NoError(err)
}

func (s *PipelineTestSuite) TestRun_PublisherNil() {
	ctx := context.Background()

	pipe := NewPipeline(
		NewAssembler([]Source{s.research, s.news, s.linkedin, s.web}, s.logger),
		s.topics,
		s.samples,
		s.factSheets,
		s.newsletters,
		s.style,
		s.composer,
		nil,
		s.logger,
	)

	s.expectEmptySources(ctx, "golang")
	s.factSheets.EXPECT().Save(ctx, int64(1), gomock.Any(), gomock.Any()).Return(int64(10), nil)
	s.samples.EXPECT().ListByTopic(ctx, int64(1)).Return(nil, nil)
	s.composer.EXPECT().Compose(ctx, gomock.Any(), domain.DefaultStyleProfile(), "golang").Return("letter", nil)
	s.newsletters.EXPECT().Save(ctx, int64(1), "letter").Return(int64(20), nil)
	s.topics.EXPECT().UpdateLastRun(ctx, int64(1), gomock.Any()).Return(nil)

	_, err := pipe.Run(ctx, 1, "golang")
	s.NoError(err)
}

func (s *PipelineTestSuite) TestRun_UpdateLastRunError() {
	ctx := context.Background()
	s.expectEmptySources(ctx, "golang")

	s.factSheets.EXPECT().Save(ctx, int64(1), gomock.Any(), gomock.Any()).Return(int64(10), nil)
	s.samples.EXPECT().ListByTopic(ctx, int64(1)).Return(nil, nil)
	s.composer.EXPECT().Compose(ctx, gomock.Any(), domain.DefaultStyleProfile(), "golang").Return("letter", nil)
	s.newsletters.EXPECT().Save(ctx, int64(1), "letter").Return(int64(20), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), "golang").Return(nil)
	s.topics.EXPECT().UpdateLastRun(ctx, int64(1), gomock.Any()).Return(errors.New("db down"))

	_, err := s.pipeline.Run(ctx, 1, "golang")
	s.Error(err)
	s.Contains(err.Error(), "update last run")
}

func (s *PipelineTestSuite) TestRun_InvalidItemsDropped() {
	ctx := context.Background()

	s.research.EXPECT().Fetch(ctx, "golang").Return(nil, nil)
	s.news.EXPECT().Fetch(ctx, "golang").Return([]domain.ContentItem{
		{Source: "newsapi", Headline: "kept", URL: "https://example.com/1"},
		{Source: "newsapi", Headline: "", URL: "https://example.com/2"},
		{Source: "newsapi", Headline: "no url", URL: ""},
	}, nil)
	s.linkedin.EXPECT().Fetch(ctx, "golang").Return(nil, nil)
	s.web.EXPECT().Fetch(ctx, "golang").Return(nil, nil)

	s.factSheets.EXPECT().Save(ctx, int64(1), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, markdown string, payload domain.FactSheetPayload) (int64, error) {
			s.Len(payload.NewsHeadlines, 1)
			s.Equal("kept", payload.NewsHeadlines[0].Headline)
			s.False(strings.Contains(markdown, "no url"))
			return 10, nil
		},
	)

	s.samples.EXPECT().ListByTopic(ctx, int64(1)).Return(nil, nil)
	s.composer.EXPECT().Compose(ctx, gomock.Any(), domain.DefaultStyleProfile(), "golang").Return("letter", nil)
	s.newsletters.EXPECT().Save(ctx, int64(1), "letter").Return(int64(20), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), "golang").Return(nil)
	s.topics.EXPECT().UpdateLastRun(ctx, int64(1), gomock.Any()).Return(nil)

	_, err := s.pipeline.Run(ctx, 1, "golang")
	s.NoError(err)
}
