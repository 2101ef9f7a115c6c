// Package app wires configuration, adapters and services together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/zhdict/internal/adapter/provider/baidu"
	"github.com/heartmarshall/zhdict/internal/adapter/provider/mdbg"
	"github.com/heartmarshall/zhdict/internal/adapter/provider/translate"
	"github.com/heartmarshall/zhdict/internal/config"
	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/heartmarshall/zhdict/internal/service/batch"
	"github.com/heartmarshall/zhdict/internal/service/gloss"
	"github.com/heartmarshall/zhdict/internal/service/lookup"
)

// Sink receives processed lookup results.
type Sink interface {
	Write(ctx context.Context, res domain.LookupResult) error
}

// App holds the wired services.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Lookup *lookup.Service
	Gloss  *gloss.Service
}

// New builds the source adapters and services from cfg.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	baiduClient, err := baidu.NewClient(cfg.Baidu, cfg.HTTP, logger)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	mdbgClient := mdbg.NewClient(cfg.MDBG, cfg.HTTP, logger)
	deepl := translate.NewDeepL(cfg.DeepL, cfg.HTTP, logger)

	if cfg.DeepL.APIKey == "" {
		logger.Warn("deepl api key not configured; machine translation disabled")
	}

	return &App{
		Config: cfg,
		Logger: logger,
		Lookup: lookup.NewService(logger, baiduClient),
		Gloss:  gloss.NewService(logger, mdbgClient, deepl),
	}, nil
}

// NewProcessor creates a batch processor that forwards results to sink.
func (a *App) NewProcessor(sink Sink) *batch.Processor {
	return batch.NewProcessor(a.Logger, a.Lookup, a.Gloss, sink)
}

// Process queues reqs, drains them into sink and returns the final counters.
func (a *App) Process(ctx context.Context, reqs []domain.LookupRequest, sink Sink) domain.QueueStats {
	p := a.NewProcessor(sink)
	p.Enqueue(reqs...)
	p.Drain(ctx)

	stats := p.Stats()
	a.Logger.InfoContext(ctx, "batch finished",
		slog.Int("processed", stats.Processed),
		slog.Int("failed", stats.Failed),
		slog.Int("pending", stats.Pending),
	)
	return stats
}
