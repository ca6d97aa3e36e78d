package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"priofeed/pkg/aggregator"
	"priofeed/pkg/config"
	"priofeed/pkg/domain"
	"priofeed/pkg/fetcher"
	"priofeed/pkg/llm"
	"priofeed/pkg/provider"
	"priofeed/pkg/repository"
	"priofeed/pkg/scoring"
	"priofeed/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"priofeed.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting priofeed version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run loads configuration, wires the pipeline and serves until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config %s: %w", opts.Config, err)
	}

	// wire upstream providers, the wiki can be either a JSON API or a
	// recent-changes feed
	tracker := provider.NewTracker(cfg.Providers.Tracker.URL, cfg.Providers.Tracker.Token, cfg.Providers.Tracker.Timeout)
	mail := provider.NewMail(cfg.Providers.Mail.URL, cfg.Providers.Mail.Token, cfg.Providers.Mail.Timeout)
	var wiki fetcher.DocumentProvider
	if cfg.Providers.Wiki.FeedURL != "" {
		wiki = provider.NewWikiFeed(cfg.Providers.Wiki.FeedURL, cfg.Providers.Wiki.Timeout)
		log.Printf("[INFO] wiki provider uses recent-changes feed %s", cfg.Providers.Wiki.FeedURL)
	} else {
		wiki = provider.NewWiki(cfg.Providers.Wiki.URL, cfg.Providers.Wiki.Token, cfg.Providers.Wiki.Timeout)
	}

	fetch := fetcher.New(fetcher.Config{
		Tasks:     tracker,
		Documents: wiki,
		Messages:  mail,
		TTL:       cfg.Cache.TTL,
	})

	engine := scoring.NewEngine(scoring.Config{
		Weights:        scoringWeights(cfg.Scoring.Weights),
		Keywords:       keywordTiers(cfg.Scoring),
		InternalDomain: cfg.Scoring.InternalDomain,
	})

	var history *repository.History
	if cfg.History.Enabled {
		history, err = repository.New(ctx, repository.Config{
			DSN:             cfg.History.DSN,
			MaxOpenConns:    cfg.History.MaxOpenConns,
			MaxIdleConns:    cfg.History.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.History.ConnMaxLifetime) * time.Second,
		})
		if err != nil {
			return fmt.Errorf("init report history: %w", err)
		}
		defer history.Close() //nolint:errcheck // closing on shutdown
	}

	var digest *llm.Digest
	if cfg.LLM.Enabled {
		digest = llm.NewDigest(llm.Config{
			Endpoint:     cfg.LLM.Endpoint,
			APIKey:       cfg.LLM.APIKey,
			Model:        cfg.LLM.Model,
			Temperature:  cfg.LLM.Temperature,
			MaxTokens:    cfg.LLM.MaxTokens,
			Timeout:      cfg.LLM.Timeout,
			SystemPrompt: cfg.LLM.SystemPrompt,
		})
		log.Printf("[INFO] llm briefings enabled with model %s", cfg.LLM.Model)
	}

	aggCfg := aggregator.Config{
		Fetcher:    fetch,
		Scorer:     engine,
		TopPreview: cfg.Report.TopPreview,
	}
	if history != nil {
		aggCfg.History = history
	}
	if digest != nil {
		aggCfg.Digest = digest
	}
	agg := aggregator.New(aggCfg)

	var historyProvider server.HistoryProvider
	if history != nil {
		historyProvider = history
	}
	srv := server.New(cfg, agg, historyProvider, revision, opts.Debug)
	return srv.Run(ctx)
}

// scoringWeights converts the config weight map to engine weights
func scoringWeights(m map[string]map[string]float64) scoring.Weights {
	if len(m) == 0 {
		return nil // engine falls back to defaults
	}
	weights := scoring.DefaultWeights()
	partial := make(scoring.Weights, len(m))
	for source, factors := range m {
		partial[domain.Source(source)] = factors
	}
	return weights.Merge(partial)
}

// keywordTiers converts config keyword overrides to engine tiers
func keywordTiers(cfg config.ScoringConfig) *scoring.KeywordTiers {
	k := cfg.Keywords
	if len(k.Critical) == 0 && len(k.High) == 0 && len(k.Medium) == 0 && len(k.Low) == 0 {
		return nil // engine falls back to defaults
	}
	tiers := scoring.DefaultKeywordTiers()
	if len(k.Critical) > 0 {
		tiers.Critical = k.Critical
	}
	if len(k.High) > 0 {
		tiers.High = k.High
	}
	if len(k.Medium) > 0 {
		tiers.Medium = k.Medium
	}
	if len(k.Low) > 0 {
		tiers.Low = k.Low
	}
	return &tiers
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
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
