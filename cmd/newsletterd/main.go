package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Atyab124/Automated-Newsletter/internal/config"
	"github.com/Atyab124/Automated-Newsletter/internal/database"
	"github.com/Atyab124/Automated-Newsletter/internal/llm"
	"github.com/Atyab124/Automated-Newsletter/internal/pipeline"
	"github.com/Atyab124/Automated-Newsletter/internal/publisher"
	"github.com/Atyab124/Automated-Newsletter/internal/scheduler"
	"github.com/Atyab124/Automated-Newsletter/internal/source/linkedin"
	"github.com/Atyab124/Automated-Newsletter/internal/source/news"
	"github.com/Atyab124/Automated-Newsletter/internal/source/research"
	"github.com/Atyab124/Automated-Newsletter/internal/source/web"
	"github.com/Atyab124/Automated-Newsletter/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	// Apply schema migrations
	if err := database.RunMigrations(cfg.Database.URL()); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize stores
	topicStore := postgres.NewTopicStore(db)
	sampleStore := postgres.NewWritingSampleStore(db)
	factSheetStore := postgres.NewFactSheetStore(db)
	newsletterStore := postgres.NewNewsletterStore(db)

	// Initialize optional event publisher
	var eventPublisher pipeline.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		eventPublisher = rabbitMQ
	}

	// Initialize generative backend
	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		logger.Error("failed to create llm provider", "error", err)
		os.Exit(1)
	}

	styleExtractor := llm.NewStyleExtractor(provider, logger)
	composer := llm.NewComposer(provider, cfg.Newsletter, logger)

	// Initialize content sources in gather order
	sources := []pipeline.Source{
		research.New(research.Config{
			MaxResults: cfg.Sources.MaxResults,
			Timeout:    cfg.Sources.Timeout,
		}, logger),
		news.New(news.Config{
			APIKey:     cfg.Sources.NewsAPIKey,
			MaxResults: cfg.Sources.MaxResults,
			Timeout:    cfg.Sources.Timeout,
		}, logger),
		linkedin.New(linkedin.Config{
			AccessToken: cfg.Sources.LinkedInAccessToken,
			MaxResults:  cfg.Sources.MaxResults,
			Timeout:     cfg.Sources.Timeout,
		}, logger),
		web.New(web.Config{
			MaxResults: cfg.Sources.MaxResults,
			Timeout:    cfg.Sources.Timeout,
		}, logger),
	}

	assembler := pipeline.NewAssembler(sources, logger)

	pipe := pipeline.NewPipeline(
		assembler,
		topicStore,
		sampleStore,
		factSheetStore,
		newsletterStore,
		styleExtractor,
		composer,
		eventPublisher,
		logger,
	)

	sched := scheduler.NewScheduler(topicStore, pipe, cfg.Scheduler.CheckInterval, logger)

	logger.Info("starting newsletter daemon",
		"check_interval", cfg.Scheduler.CheckInterval,
		"llm_provider", cfg.LLM.Provider,
	)

	sched.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig)

	sched.Stop()
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
