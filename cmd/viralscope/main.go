package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/subosito/gotenv"

	"github.com/umputun/viralscope/pkg/cache"
	"github.com/umputun/viralscope/pkg/config"
	"github.com/umputun/viralscope/pkg/content"
	"github.com/umputun/viralscope/pkg/domain"
	"github.com/umputun/viralscope/pkg/llm"
	"github.com/umputun/viralscope/pkg/news"
	"github.com/umputun/viralscope/pkg/repository"
	"github.com/umputun/viralscope/pkg/scheduler"
	"github.com/umputun/viralscope/pkg/studio"
	"github.com/umputun/viralscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	EnvFile string `short:"e" long:"env-file" env:"ENV_FILE" description:"load environment variables from file"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		cancel()
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	cancel()
	lgr.Print("[INFO] shutdown complete")
}

// run loads configuration, wires all components and blocks until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	if opts.EnvFile != "" {
		// existing environment wins over the file
		if err := gotenv.Load(opts.EnvFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	SetupLog(opts.Debug, cfg.Secrets()...) // mask api keys in logs

	lgr.Printf("[INFO] starting viralscope version %s", revision)

	kv, closeKV, err := makeKV(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to init cache backend: %w", err)
	}
	defer func() {
		if err := closeKV(); err != nil {
			lgr.Printf("[WARN] failed to close cache backend: %v", err)
		}
	}()
	store := cache.NewStore(kv, cache.Opts{Version: cfg.Cache.Version, TTL: cfg.Cache.TTL})

	llmClient := llm.NewClient(cfg.LLM)
	if !llmClient.Configured() {
		lgr.Printf("[WARN] llm api key is not set, feeds will use built-in items and scripts are disabled")
	}

	svc := studio.NewService(llmClient, makeAggregator(cfg), store, studio.Opts{
		FetchTimeout: cfg.News.Timeout + cfg.LLM.Timeout,
	})

	if cfg.Cache.Prewarm {
		langs := make([]domain.Language, 0, len(cfg.Cache.Languages))
		for _, l := range cfg.Cache.Languages {
			lang, err := domain.ParseLanguage(l)
			if err != nil {
				return fmt.Errorf("invalid prewarm language: %w", err)
			}
			langs = append(langs, lang)
		}
		sched := scheduler.NewScheduler(scheduler.Params{Fetcher: svc, Languages: langs, Interval: cfg.Cache.PrewarmInterval})
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(cfg, svc, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeKV creates the cache backend selected in config, returns its close function
func makeKV(ctx context.Context, cfg config.CacheConfig) (cache.KV, func() error, error) {
	switch cfg.Backend {
	case "memory":
		lgr.Printf("[INFO] feed cache is in memory, it won't survive restart")
		return cache.NewMemory(), func() error { return nil }, nil
	case "redis":
		rkv, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rkv.Ping(pingCtx); err != nil {
			_ = rkv.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		lgr.Printf("[INFO] feed cache in redis")
		return rkv, rkv.Close, nil
	default:
		repo, err := repository.Open(ctx, repository.Config{DSN: cfg.DSN})
		if err != nil {
			return nil, nil, err
		}
		lgr.Printf("[INFO] feed cache in sqlite %s", strings.SplitN(cfg.DSN, "?", 2)[0])
		if keys, err := repo.Keys(ctx); err == nil && len(keys) > 0 {
			lgr.Printf("[DEBUG] cached entries: %s", strings.Join(keys, ", "))
		}
		return repo, repo.Close, nil
	}
}

// makeAggregator creates news sources and optional content enrichment
func makeAggregator(cfg *config.Config) *news.Aggregator {
	providerOpts := func(p config.ProviderConfig) news.ProviderOpts {
		return news.ProviderOpts{
			URL:       p.URL,
			APIKey:    p.APIKey,
			Country:   p.Country,
			Language:  p.Language,
			Category:  p.Category,
			Max:       p.Max,
			Timeout:   cfg.News.Timeout,
			UserAgent: cfg.News.UserAgent,
		}
	}

	aggOpts := news.Opts{MaxArticles: cfg.News.MaxArticles}
	if cfg.Extraction.Enabled {
		aggOpts.Enricher = content.NewHTTPExtractor(content.Opts{
			Timeout:   cfg.Extraction.Timeout,
			UserAgent: cfg.Extraction.UserAgent,
			MaxLength: cfg.Extraction.MaxLength,
		})
		aggOpts.MaxConcurrent = cfg.Extraction.MaxConcurrent
	}

	gnews := news.NewGNews(providerOpts(cfg.News.GNews))
	newsAPI := news.NewNewsAPI(providerOpts(cfg.News.NewsAPI), cfg.News.RelayURL)
	for _, src := range []news.Source{gnews, newsAPI} {
		if !src.Enabled() {
			lgr.Printf("[WARN] news provider %s has no api key, skipped", src.Name())
		}
	}
	return news.NewAggregator(aggOpts, gnews, newsAPI)
}

// SetupLog configures the global logger, secrets are masked in output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
