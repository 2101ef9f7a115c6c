// Package batch owns the lookup queue and drains it one request at a time.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/heartmarshall/zhdict/internal/format"
	"github.com/heartmarshall/zhdict/pkg/ctxutil"
	"golang.org/x/sync/errgroup"
)

type resolver interface {
	Resolve(ctx context.Context, word string) domain.Entry
}

type glosser interface {
	Translate(ctx context.Context, word string) (domain.Gloss, error)
}

type sink interface {
	Write(ctx context.Context, res domain.LookupResult) error
}

// Processor is the lookup queue together with its single drain loop.
type Processor struct {
	log      *slog.Logger
	resolver resolver
	glosser  glosser
	sink     sink

	mu         sync.Mutex
	queue      []domain.LookupRequest
	processing bool
	processed  int
	failed     int
}

// NewProcessor creates a Processor with an empty queue.
func NewProcessor(logger *slog.Logger, resolver resolver, glosser glosser, sink sink) *Processor {
	return &Processor{
		log:      logger.With("service", "batch"),
		resolver: resolver,
		glosser:  glosser,
		sink:     sink,
	}
}

// Enqueue appends requests to the queue. It is safe to call while a drain is running;
// the active drain picks the new requests up before it exits.
func (p *Processor) Enqueue(reqs ...domain.LookupRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, reqs...)
}

// Stats returns the current counters.
func (p *Processor) Stats() domain.QueueStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.QueueStats{
		Pending:   len(p.queue),
		Processed: p.processed,
		Failed:    p.failed,
	}
}

// Drain processes queued requests in FIFO order until the queue is empty or
// ctx is done. It returns false without doing anything when another drain is
// already active.
//
// A request stays at the head of the queue until its result was forwarded to
// the sink or it failed. Failed requests are logged and dropped.
func (p *Processor) Drain(ctx context.Context) bool {
	p.mu.Lock()
	if p.processing {
		p.mu.Unlock()
		return false
	}
	p.processing = true
	p.mu.Unlock()

	for {
		p.mu.Lock()
		if len(p.queue) == 0 || ctx.Err() != nil {
			p.processing = false
			p.mu.Unlock()
			return true
		}
		req := p.queue[0]
		p.mu.Unlock()

		err := p.process(ctx, req)

		p.mu.Lock()
		p.queue = p.queue[1:]
		if err != nil {
			p.failed++
		} else {
			p.processed++
		}
		p.mu.Unlock()

		if err != nil {
			p.log.ErrorContext(ctx, "lookup request failed",
				slog.String("word", req.Word),
				slog.String("request_id", req.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}

// process resolves and translates req concurrently, formats the entry and
// forwards the result.
func (p *Processor) process(ctx context.Context, req domain.LookupRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	ctx = ctxutil.WithRequestID(ctx, req.ID)
	if req.Target != "" {
		ctx = ctxutil.WithTarget(ctx, req.Target)
	}

	var (
		entry        domain.Entry
		gloss        domain.Gloss
		translateErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return recovered(func() { entry = p.resolver.Resolve(gctx, req.Word) })
	})
	g.Go(func() error {
		return recovered(func() { gloss, translateErr = p.glosser.Translate(gctx, req.Word) })
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if translateErr != nil {
		if !errors.Is(translateErr, domain.ErrConfigurationMissing) {
			return fmt.Errorf("translate: %w", translateErr)
		}
		p.log.WarnContext(ctx, "translation skipped",
			slog.String("word", req.Word),
			slog.String("error", translateErr.Error()),
		)
	}

	wordType := entry.WordType
	if !wordType.IsValid() {
		wordType = domain.WordTypeUnknown
	}
	res := domain.LookupResult{
		Request:      req,
		Entry:        entry,
		Formatted:    format.Format(entry),
		WordType:     wordType,
		Gloss:        gloss,
		TranslateErr: translateErr,
	}
	if err := p.sink.Write(ctx, res); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	p.log.InfoContext(ctx, "lookup request processed",
		slog.String("word", req.Word),
		slog.String("type", res.WordType.String()),
		slog.String("gloss_source", gloss.Source.String()),
		slog.Duration("queue_wait", time.Since(req.EnqueuedAt)),
	)
	return nil
}

func recovered(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}
