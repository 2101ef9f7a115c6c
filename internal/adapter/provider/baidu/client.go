// Package baidu fetches and normalizes entries from Baidu Hanyu: the character
// endpoint, the word/idiom endpoint and the dictionary web page.
package baidu

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/heartmarshall/zhdict/internal/config"
	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/heartmarshall/zhdict/internal/provider"
)

// Client talks to the Baidu Hanyu endpoints.
type Client struct {
	characterURL string
	wordURL      string
	pageURL      string
	userAgent    string
	termSchema   provider.SchemaVersion
	idiomSchema  provider.SchemaVersion
	parsers      *provider.Registry
	httpClient   *http.Client
	log          *slog.Logger
}

// NewClient creates a Client. It fails when a configured schema revision has no parser.
func NewClient(cfg config.BaiduConfig, httpCfg config.HTTPConfig, logger *slog.Logger) (*Client, error) {
	c := &Client{
		characterURL: cfg.CharacterURL,
		wordURL:      cfg.WordURL,
		pageURL:      cfg.PageURL,
		userAgent:    httpCfg.UserAgent,
		termSchema:   provider.SchemaVersion(cfg.TermSchema),
		idiomSchema:  provider.SchemaVersion(cfg.IdiomSchema),
		parsers:      NewRegistry(),
		httpClient:   &http.Client{Timeout: httpCfg.Timeout},
		log:          logger.With("adapter", "baidu"),
	}
	if c.userAgent == "" {
		c.userAgent = provider.DefaultUserAgent
	}

	for _, key := range []provider.ParserKey{
		{Type: domain.WordTypeTerm, Version: c.termSchema},
		{Type: domain.WordTypeIdiom, Version: c.idiomSchema},
	} {
		if _, ok := c.parsers.Lookup(key); !ok {
			return nil, fmt.Errorf("baidu: no parser for schema %s (have %v)",
				key, c.parsers.Versions(key.Type))
		}
	}
	return c, nil
}

// FetchCharacter queries the character endpoint.
func (c *Client) FetchCharacter(ctx context.Context, word string) (domain.Entry, error) {
	body, err := c.get(ctx, c.characterURL, url.Values{"wd": {word}, "ptype": {"zici"}})
	if err != nil {
		return domain.Entry{}, fmt.Errorf("baidu: fetch character: %w", err)
	}

	entry, err := c.parse(provider.ParserKey{Type: domain.WordTypeCharacter, Version: CharacterSchema}, body)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("baidu: parse character: %w", err)
	}

	c.log.DebugContext(ctx, "baidu character response",
		slog.String("word", word),
		slog.Int("pronunciations", len(entry.Pronunciations)),
	)
	return entry, nil
}

// FetchWord queries the word/idiom endpoint, classifies the payload and
// dispatches it to the parser for its type and configured schema revision.
func (c *Client) FetchWord(ctx context.Context, word string) (domain.Entry, error) {
	body, err := c.get(ctx, c.wordURL, url.Values{"wd": {word}, "ptype": {"zici"}, "source_tag": {"2"}})
	if err != nil {
		return domain.Entry{}, fmt.Errorf("baidu: fetch word: %w", err)
	}

	wordType := Classify(body)
	key := provider.ParserKey{Type: wordType, Version: 1}
	switch wordType {
	case domain.WordTypeTerm:
		key.Version = c.termSchema
	case domain.WordTypeIdiom:
		key.Version = c.idiomSchema
	}

	entry, err := c.parse(key, body)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("baidu: parse word: %w", err)
	}

	c.log.DebugContext(ctx, "baidu word response",
		slog.String("word", word),
		slog.String("type", entry.WordType.String()),
		slog.Int("pronunciations", len(entry.Pronunciations)),
	)
	return entry, nil
}

// FetchPage scrapes the dictionary web page. wordType is the classification
// already made by the structured endpoint.
func (c *Client) FetchPage(ctx context.Context, word string, wordType domain.WordType) (domain.Entry, error) {
	body, err := c.get(ctx, c.pageURL, url.Values{"wd": {word}, "ptype": {"zici"}})
	if err != nil {
		return domain.Entry{}, fmt.Errorf("baidu: fetch page: %w", err)
	}

	entry := ParsePage(string(body), word, wordType)

	c.log.DebugContext(ctx, "baidu page response",
		slog.String("word", word),
		slog.Int("pronunciations", len(entry.Pronunciations)),
	)
	return entry, nil
}

func (c *Client) parse(key provider.ParserKey, body []byte) (domain.Entry, error) {
	fn, ok := c.parsers.Lookup(key)
	if !ok {
		return domain.Entry{}, fmt.Errorf("%w: no parser for %s", domain.ErrMalformedResponse, key)
	}
	return fn(body)
}

func (c *Client) get(ctx context.Context, base string, params url.Values) ([]byte, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	for k, v := range params {
		q[k] = v
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")

	return provider.Do(ctx, c.httpClient, req)
}
