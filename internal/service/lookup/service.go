// Package lookup resolves a word to a normalized dictionary entry by trying
// the dictionary sources in order.
package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/zhdict/internal/domain"
)

type dictionarySource interface {
	FetchCharacter(ctx context.Context, word string) (domain.Entry, error)
	FetchWord(ctx context.Context, word string) (domain.Entry, error)
	FetchPage(ctx context.Context, word string, wordType domain.WordType) (domain.Entry, error)
}

// Service resolves words against a dictionary source.
type Service struct {
	log    *slog.Logger
	source dictionarySource
}

// NewService creates a lookup service.
func NewService(logger *slog.Logger, source dictionarySource) *Service {
	return &Service{
		log:    logger.With("service", "lookup"),
		source: source,
	}
}

// Resolve returns the entry for word. It never fails: source errors are
// logged and treated as "no data", so the result may be an empty entry.
//
// Order:
//  1. single characters go to the character endpoint; a non-empty result is final
//  2. the word endpoint is classified and parsed
//  3. only when step 2 produced nothing, the dictionary page is scraped
func (s *Service) Resolve(ctx context.Context, word string) (entry domain.Entry) {
	word = domain.NormalizeWord(word)
	if word == "" {
		return domain.Entry{}
	}

	defer func() {
		if r := recover(); r != nil {
			s.logFailure(ctx, word, "resolve", fmt.Errorf("panic: %v", r))
			entry = domain.NewEntry(word, domain.WordTypeUnknown)
		}
	}()

	if domain.IsSingleCharacter(word) {
		e, err := s.source.FetchCharacter(ctx, word)
		switch {
		case err != nil:
			s.logFailure(ctx, word, "character", err)
		case !e.IsEmpty():
			return e
		}
	}

	wordType := domain.WordTypeUnknown
	e, err := s.source.FetchWord(ctx, word)
	if err != nil {
		s.logFailure(ctx, word, "word", err)
	} else {
		if !e.IsEmpty() {
			return e
		}
		wordType = e.WordType
	}

	page, err := s.source.FetchPage(ctx, word, wordType)
	if err != nil {
		s.logFailure(ctx, word, "page", err)
		return domain.NewEntry(word, wordType)
	}
	if page.IsEmpty() {
		s.log.DebugContext(ctx, "no dictionary data", slog.String("word", word))
	}
	return page
}

func (s *Service) logFailure(ctx context.Context, word, source string, err error) {
	s.log.WarnContext(ctx, "dictionary source failed",
		slog.String("word", word),
		slog.String("source", source),
		slog.String("error", err.Error()),
	)
}
