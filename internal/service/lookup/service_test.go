package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Manual mock (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockSource struct {
	FetchCharacterFunc func(ctx context.Context, word string) (domain.Entry, error)
	FetchWordFunc      func(ctx context.Context, word string) (domain.Entry, error)
	FetchPageFunc      func(ctx context.Context, word string, wordType domain.WordType) (domain.Entry, error)

	characterCalls int
	wordCalls      int
	pageCalls      int
	pageWordType   domain.WordType
}

func (m *mockSource) FetchCharacter(ctx context.Context, word string) (domain.Entry, error) {
	m.characterCalls++
	if m.FetchCharacterFunc == nil {
		return domain.NewEntry(word, domain.WordTypeCharacter), nil
	}
	return m.FetchCharacterFunc(ctx, word)
}

func (m *mockSource) FetchWord(ctx context.Context, word string) (domain.Entry, error) {
	m.wordCalls++
	if m.FetchWordFunc == nil {
		return domain.NewEntry(word, domain.WordTypeUnknown), nil
	}
	return m.FetchWordFunc(ctx, word)
}

func (m *mockSource) FetchPage(ctx context.Context, word string, wordType domain.WordType) (domain.Entry, error) {
	m.pageCalls++
	m.pageWordType = wordType
	if m.FetchPageFunc == nil {
		return domain.NewEntry(word, wordType), nil
	}
	return m.FetchPageFunc(ctx, word, wordType)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func entryWith(word string, wt domain.WordType, reading, text string) domain.Entry {
	p, err := domain.NewPronunciation(reading, true, []domain.Sense{{Text: text}})
	if err != nil {
		panic(err)
	}
	return domain.NewEntry(word, wt, p)
}

func newTestService(src *mockSource) *Service {
	return NewService(slog.Default(), src)
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestService_Resolve_EmptyInput(t *testing.T) {
	t.Parallel()

	src := &mockSource{}
	entry := newTestService(src).Resolve(context.Background(), "  \t ")

	assert.True(t, entry.IsEmpty())
	assert.Zero(t, src.characterCalls+src.wordCalls+src.pageCalls)
}

func TestService_Resolve_CharacterShortCircuits(t *testing.T) {
	t.Parallel()

	src := &mockSource{
		FetchCharacterFunc: func(_ context.Context, word string) (domain.Entry, error) {
			return entryWith(word, domain.WordTypeCharacter, "tiāo", "选。"), nil
		},
	}
	entry := newTestService(src).Resolve(context.Background(), " 挑 ")

	require.False(t, entry.IsEmpty())
	assert.Equal(t, domain.WordTypeCharacter, entry.WordType)
	assert.Equal(t, 1, src.characterCalls)
	assert.Zero(t, src.wordCalls)
	assert.Zero(t, src.pageCalls)
}

func TestService_Resolve_EmptyCharacterFallsThrough(t *testing.T) {
	t.Parallel()

	src := &mockSource{
		FetchWordFunc: func(_ context.Context, word string) (domain.Entry, error) {
			return entryWith(word, domain.WordTypeTerm, "guài", "奇怪。"), nil
		},
	}
	entry := newTestService(src).Resolve(context.Background(), "怪")

	assert.Equal(t, domain.WordTypeTerm, entry.WordType)
	assert.Equal(t, 1, src.characterCalls)
	assert.Equal(t, 1, src.wordCalls)
	assert.Zero(t, src.pageCalls)
}

func TestService_Resolve_MultiCharacterSkipsCharacterEndpoint(t *testing.T) {
	t.Parallel()

	src := &mockSource{
		FetchWordFunc: func(_ context.Context, word string) (domain.Entry, error) {
			return entryWith(word, domain.WordTypeIdiom, "xìng zāi lè huò", "看到别人遭灾而高兴。"), nil
		},
	}
	entry := newTestService(src).Resolve(context.Background(), "幸灾乐祸")

	assert.Equal(t, domain.WordTypeIdiom, entry.WordType)
	assert.Zero(t, src.characterCalls)
	assert.Zero(t, src.pageCalls)
}

func TestService_Resolve_ScrapesOnlyWhenWordEmpty(t *testing.T) {
	t.Parallel()

	src := &mockSource{
		FetchWordFunc: func(_ context.Context, word string) (domain.Entry, error) {
			return domain.NewEntry(word, domain.WordTypeOther), nil
		},
		FetchPageFunc: func(_ context.Context, word string, wt domain.WordType) (domain.Entry, error) {
			return entryWith(word, wt, "qíng huái", "含有某种感情的心境。"), nil
		},
	}
	entry := newTestService(src).Resolve(context.Background(), "情怀")

	require.False(t, entry.IsEmpty())
	assert.Equal(t, domain.WordTypeOther, entry.WordType)
	assert.Equal(t, domain.WordTypeOther, src.pageWordType)
	assert.Equal(t, 1, src.pageCalls)
}

func TestService_Resolve_SourceErrorsDegradeToEmpty(t *testing.T) {
	t.Parallel()

	unavailable := fmt.Errorf("baidu: fetch word: %w", domain.ErrSourceUnavailable)
	src := &mockSource{
		FetchCharacterFunc: func(context.Context, string) (domain.Entry, error) {
			return domain.Entry{}, unavailable
		},
		FetchWordFunc: func(context.Context, string) (domain.Entry, error) {
			return domain.Entry{}, domain.ErrMalformedResponse
		},
		FetchPageFunc: func(context.Context, string, domain.WordType) (domain.Entry, error) {
			return domain.Entry{}, unavailable
		},
	}
	entry := newTestService(src).Resolve(context.Background(), "挑")

	assert.True(t, entry.IsEmpty())
	assert.Equal(t, "挑", entry.SourceName)
	assert.Equal(t, domain.WordTypeUnknown, entry.WordType)
	assert.Equal(t, domain.WordTypeUnknown, src.pageWordType)
	assert.Equal(t, 1, src.characterCalls)
	assert.Equal(t, 1, src.wordCalls)
	assert.Equal(t, 1, src.pageCalls)
}

func TestService_Resolve_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	src := &mockSource{
		FetchWordFunc: func(context.Context, string) (domain.Entry, error) {
			panic("unexpected payload")
		},
	}

	var entry domain.Entry
	require.NotPanics(t, func() {
		entry = newTestService(src).Resolve(context.Background(), "情怀")
	})
	assert.True(t, entry.IsEmpty())
	assert.Equal(t, "情怀", entry.SourceName)
}
