// newsletterctl is the admin companion to newsletterd: it manages topics
// and writing samples and can trigger a pipeline run on demand.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Atyab124/Automated-Newsletter/internal/config"
	"github.com/Atyab124/Automated-Newsletter/internal/domain"
	"github.com/Atyab124/Automated-Newsletter/internal/llm"
	"github.com/Atyab124/Automated-Newsletter/internal/pipeline"
	"github.com/Atyab124/Automated-Newsletter/internal/scheduler"
	"github.com/Atyab124/Automated-Newsletter/internal/source/linkedin"
	"github.com/Atyab124/Automated-Newsletter/internal/source/news"
	"github.com/Atyab124/Automated-Newsletter/internal/source/research"
	"github.com/Atyab124/Automated-Newsletter/internal/source/web"
	"github.com/Atyab124/Automated-Newsletter/internal/storage/postgres"
)

const usage = `usage: newsletterctl [-config path] <command> [flags]

commands:
  add-topic    -name <name> -frequency <daily|weekly|biweekly|monthly> [-sample <file>]...
  add-sample   -topic <id> (-file <path> | -text <text>)
  list-topics
  run          -topic <id>
  latest       -topic <id> [-fact-sheet]
`

type app struct {
	cfg         *config.Config
	db          *sqlx.DB
	topics      *postgres.TopicStore
	samples     *postgres.WritingSampleStore
	factSheets  *postgres.FactSheetStore
	newsletters *postgres.NewsletterStore
	txManager   *postgres.TransactionManager
	logger      *slog.Logger
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("load config: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		fatal("connect to database: %v", err)
	}
	defer db.Close()

	a := &app{
		cfg:         cfg,
		db:          db,
		topics:      postgres.NewTopicStore(db),
		samples:     postgres.NewWritingSampleStore(db),
		factSheets:  postgres.NewFactSheetStore(db),
		newsletters: postgres.NewNewsletterStore(db),
		txManager:   postgres.NewTransactionManager(db),
		logger:      logger,
	}

	ctx := context.Background()

	switch args[0] {
	case "add-topic":
		err = a.addTopic(ctx, args[1:])
	case "add-sample":
		err = a.addSample(ctx, args[1:])
	case "list-topics":
		err = a.listTopics(ctx)
	case "run":
		err = a.runPipeline(ctx, args[1:])
	case "latest":
		err = a.latest(ctx, args[1:])
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fatal("%v", err)
	}
}

// addTopic creates a topic, optionally seeding writing samples from files.
// The topic and its samples are committed atomically.
func (a *app) addTopic(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-topic", flag.ExitOnError)
	name := fs.String("name", "", "topic name")
	frequency := fs.String("frequency", "weekly", "refresh frequency")
	var sampleFiles stringList
	fs.Var(&sampleFiles, "sample", "writing sample file (repeatable)")
	_ = fs.Parse(args)

	if *name == "" {
		return errors.New("add-topic: -name is required")
	}
	freq := domain.Frequency(*frequency)
	if !freq.Valid() {
		return fmt.Errorf("add-topic: invalid frequency %q", *frequency)
	}

	var topicID int64
	err := a.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := a.topics.Create(txCtx, *name, freq)
		if err != nil {
			return err
		}
		topicID = id

		for _, path := range sampleFiles {
			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read sample %s: %w", path, err)
			}
			if _, err := a.samples.Add(txCtx, id, string(text)); err != nil {
				return fmt.Errorf("add sample %s: %w", path, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("created topic %d (%s, %s, %d samples)\n", topicID, *name, freq, len(sampleFiles))
	return nil
}

func (a *app) addSample(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-sample", flag.ExitOnError)
	topicID := fs.Int64("topic", 0, "topic id")
	file := fs.String("file", "", "sample file path")
	text := fs.String("text", "", "sample text")
	_ = fs.Parse(args)

	if *topicID == 0 {
		return errors.New("add-sample: -topic is required")
	}

	body := *text
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read sample file: %w", err)
		}
		body = string(data)
	}
	if body == "" {
		return errors.New("add-sample: one of -file or -text is required")
	}

	if _, err := a.topics.Get(ctx, *topicID); err != nil {
		return err
	}

	id, err := a.samples.Add(ctx, *topicID, body)
	if err != nil {
		return err
	}

	fmt.Printf("added writing sample %d to topic %d\n", id, *topicID)
	return nil
}

func (a *app) listTopics(ctx context.Context) error {
	topics, err := a.topics.List(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%-6s %-30s %-10s %-25s\n", "ID", "NAME", "FREQUENCY", "LAST RUN")
	for _, t := range topics {
		lastRun := "never"
		if t.LastRun != nil && *t.LastRun != "" {
			lastRun = *t.LastRun
		}
		fmt.Printf("%-6d %-30s %-10s %-25s\n", t.ID, t.Name, t.Frequency, lastRun)
	}
	return nil
}

// runPipeline triggers one synchronous pipeline run, bypassing the due
// check.
func (a *app) runPipeline(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	topicID := fs.Int64("topic", 0, "topic id")
	_ = fs.Parse(args)

	if *topicID == 0 {
		return errors.New("run: -topic is required")
	}

	provider, err := llm.NewProvider(a.cfg.LLM)
	if err != nil {
		return fmt.Errorf("create llm provider: %w", err)
	}

	sources := []pipeline.Source{
		research.New(research.Config{
			MaxResults: a.cfg.Sources.MaxResults,
			Timeout:    a.cfg.Sources.Timeout,
		}, a.logger),
		news.New(news.Config{
			APIKey:     a.cfg.Sources.NewsAPIKey,
			MaxResults: a.cfg.Sources.MaxResults,
			Timeout:    a.cfg.Sources.Timeout,
		}, a.logger),
		linkedin.New(linkedin.Config{
			AccessToken: a.cfg.Sources.LinkedInAccessToken,
			MaxResults:  a.cfg.Sources.MaxResults,
			Timeout:     a.cfg.Sources.Timeout,
		}, a.logger),
		web.New(web.Config{
			MaxResults: a.cfg.Sources.MaxResults,
			Timeout:    a.cfg.Sources.Timeout,
		}, a.logger),
	}

	pipe := pipeline.NewPipeline(
		pipeline.NewAssembler(sources, a.logger),
		a.topics,
		a.samples,
		a.factSheets,
		a.newsletters,
		llm.NewStyleExtractor(provider, a.logger),
		llm.NewComposer(provider, a.cfg.Newsletter, a.logger),
		nil,
		a.logger,
	)

	sched := scheduler.NewScheduler(a.topics, pipe, a.cfg.Scheduler.CheckInterval, a.logger)

	stats, err := sched.RunManual(ctx, *topicID)
	if err != nil {
		return err
	}

	total := 0
	for _, n := range stats.ItemsByKind {
		total += n
	}
	fmt.Printf("pipeline completed for topic %d (%s): %d items gathered, fact sheet %d, newsletter %d, took %s\n",
		stats.TopicID, stats.TopicName, total, stats.FactSheetID, stats.NewsletterID,
		stats.Duration.Round(time.Millisecond))
	return nil
}

func (a *app) latest(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("latest", flag.ExitOnError)
	topicID := fs.Int64("topic", 0, "topic id")
	factSheet := fs.Bool("fact-sheet", false, "show the latest fact sheet instead of the newsletter")
	_ = fs.Parse(args)

	if *topicID == 0 {
		return errors.New("latest: -topic is required")
	}

	if *factSheet {
		sheet, err := a.factSheets.GetLatest(ctx, *topicID)
		if err != nil {
			return err
		}
		if sheet == nil {
			return fmt.Errorf("no fact sheet for topic %d", *topicID)
		}
		fmt.Println(sheet.Markdown)
		return nil
	}

	letter, err := a.newsletters.GetLatest(ctx, *topicID)
	if err != nil {
		return err
	}
	if letter == nil {
		return fmt.Errorf("no newsletter for topic %d", *topicID)
	}
	fmt.Println(letter.Markdown)
	return nil
}

type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
