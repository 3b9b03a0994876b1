// Package main provides the interactive creature catalog search engine.
// It wires together configuration, logging, the catalog loader and the query loop.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/cardex/internal/catalog"
	"github.com/cory-johannsen/cardex/internal/config"
	"github.com/cory-johannsen/cardex/internal/observability"
	"github.com/cory-johannsen/cardex/internal/query"
	"github.com/cory-johannsen/cardex/internal/render"
	"github.com/cory-johannsen/cardex/internal/repl"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = defaults and CARDEX_* environment")
	dataPath := flag.String("data", "", "path to the catalog file (overrides catalog.path)")
	oneShot := flag.String("query", "", "run a single query such as \"type fire\" and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "cardex")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger, _ = observability.WithSession(logger)
	console := repl.NewConsole(os.Stdin, os.Stdout)

	path := *dataPath
	if path == "" {
		path = cfg.Catalog.Path
	}
	if path == "" {
		if err := console.WriteLine("Please enter the name of the catalog file."); err != nil {
			logger.Fatal("writing prompt", zap.Error(err))
		}
		answer, err := console.Prompt(context.Background(), "File: ")
		if err != nil {
			logger.Fatal("reading catalog file name", zap.Error(err))
		}
		path = catalog.DataPath(answer)
	}

	format, ok := catalog.ParseFormat(cfg.Catalog.Format)
	if !ok {
		logger.Fatal("unsupported catalog format", zap.String("format", cfg.Catalog.Format))
	}

	loadStart := time.Now()
	cat, err := catalog.LoadFromFile(path, format)
	if err != nil {
		logger.Fatal("loading catalog", zap.String("path", path), zap.Error(err))
	}
	stats := cat.Stats()
	logger.Info("catalog loaded",
		zap.String("path", path),
		zap.Int("creatures", stats.Total),
		zap.Int("types", len(stats.ByType)),
		zap.Duration("elapsed", time.Since(loadStart)),
	)

	engine := query.NewEngine(cat, logger)
	styler := render.Styler{Enabled: cfg.Display.Color}

	if *oneShot != "" {
		res, err := engine.Run(query.Parse(*oneShot))
		if err != nil {
			fmt.Fprint(os.Stderr, render.Error(err, styler))
			os.Exit(2)
		}
		fmt.Print(render.Creatures(res.Creatures, styler))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("session started")
	session := repl.NewSession(engine, console, repl.Options{
		Prompt: cfg.Display.Prompt,
		Color:  cfg.Display.Color,
		Banner: cfg.Display.Banner,
	}, logger)
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("session error", zap.Error(err))
	}
}
