// Package gloss produces an English gloss for a word through a fallback
// chain: dictionary API, dictionary website, then machine translation.
package gloss

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/zhdict/internal/domain"
)

type bilingualDictionary interface {
	LookupEnglish(ctx context.Context, word string) ([]string, error)
	ScrapeDefinitions(ctx context.Context, word string) ([]string, error)
}

type machineTranslator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Service runs the translation fallback chain.
type Service struct {
	log        *slog.Logger
	dictionary bilingualDictionary
	translator machineTranslator
}

// NewService creates a gloss service.
func NewService(logger *slog.Logger, dictionary bilingualDictionary, translator machineTranslator) *Service {
	return &Service{
		log:        logger.With("service", "gloss"),
		dictionary: dictionary,
		translator: translator,
	}
}

// Translate returns the first non-empty gloss of the chain. Dictionary
// failures are logged and skipped. A machine translation failure yields
// domain.TranslationPlaceholder, except a missing API key, which is returned
// as domain.ErrConfigurationMissing.
func (s *Service) Translate(ctx context.Context, word string) (domain.Gloss, error) {
	word = domain.NormalizeWord(word)
	if word == "" {
		return domain.Gloss{}, nil
	}

	glosses, err := s.dictionary.LookupEnglish(ctx, word)
	if err != nil {
		s.logFailure(ctx, word, domain.GlossSourceMDBGAPI, err)
	} else if len(glosses) > 0 {
		return domain.Gloss{Text: strings.Join(glosses, " / "), Source: domain.GlossSourceMDBGAPI}, nil
	}

	defs, err := s.dictionary.ScrapeDefinitions(ctx, word)
	if err != nil {
		s.logFailure(ctx, word, domain.GlossSourceMDBGWeb, err)
	} else if len(defs) > 0 {
		return domain.Gloss{Text: strings.Join(defs, ", "), Source: domain.GlossSourceMDBGWeb}, nil
	}

	text, err := s.translator.Translate(ctx, word)
	switch {
	case errors.Is(err, domain.ErrConfigurationMissing):
		return domain.Gloss{}, fmt.Errorf("gloss: machine translation: %w", err)
	case err != nil:
		s.logFailure(ctx, word, domain.GlossSourceDeepL, err)
		text = domain.TranslationPlaceholder
	case text == "":
		text = domain.TranslationPlaceholder
	}
	return domain.Gloss{Text: text, Source: domain.GlossSourceDeepL}, nil
}

func (s *Service) logFailure(ctx context.Context, word string, source domain.GlossSource, err error) {
	s.log.WarnContext(ctx, "translation source failed",
		slog.String("word", word),
		slog.String("source", source.String()),
		slog.String("error", err.Error()),
	)
}
