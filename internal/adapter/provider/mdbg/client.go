// Package mdbg looks up English glosses in the MDBG Chinese-English
// dictionary, through its match API and its website.
package mdbg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/heartmarshall/zhdict/internal/config"
	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/heartmarshall/zhdict/internal/provider"
	"github.com/tidwall/gjson"
)

// noResultsMarker is printed by the website when a search has no match.
const noResultsMarker = "No results found searching for"

const defsXPath = `//*[contains(concat(' ', normalize-space(@class), ' '), ' row ')]` +
	`//*[contains(concat(' ', normalize-space(@class), ' '), ' defs ')]`

// Client queries the MDBG match API and website.
type Client struct {
	apiURL     string
	siteURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client.
func NewClient(cfg config.MDBGConfig, httpCfg config.HTTPConfig, logger *slog.Logger) *Client {
	ua := httpCfg.UserAgent
	if ua == "" {
		ua = provider.DefaultUserAgent
	}
	return &Client{
		apiURL:     cfg.APIURL,
		siteURL:    cfg.SiteURL,
		userAgent:  ua,
		httpClient: &http.Client{Timeout: httpCfg.Timeout},
		log:        logger.With("adapter", "mdbg"),
	}
}

// LookupEnglish returns the English glosses of the first API match.
// No match yields nil, nil.
func (c *Client) LookupEnglish(ctx context.Context, word string) ([]string, error) {
	if word == "" {
		return nil, nil
	}

	payload, err := json.Marshal(map[string]string{"entry": word})
	if err != nil {
		return nil, fmt.Errorf("mdbg: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("mdbg: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	body, err := provider.Do(ctx, c.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("mdbg: lookup: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("mdbg: lookup: %w: invalid json", domain.ErrMalformedResponse)
	}

	var glosses []string
	for _, g := range gjson.GetBytes(body, "result.0.english").Array() {
		if s := strings.TrimSpace(g.String()); s != "" {
			glosses = append(glosses, s)
		}
	}

	c.log.DebugContext(ctx, "mdbg api response",
		slog.String("word", word),
		slog.Int("glosses", len(glosses)),
	)
	return glosses, nil
}

// ScrapeDefinitions returns the text of every definition block on the
// website's result page. A page reporting no results yields nil, nil.
func (c *Client) ScrapeDefinitions(ctx context.Context, word string) ([]string, error) {
	if word == "" {
		return nil, nil
	}

	u, err := url.Parse(c.siteURL)
	if err != nil {
		return nil, fmt.Errorf("mdbg: parse url: %w", err)
	}
	q := u.Query()
	q.Set("page", "worddict")
	q.Set("wdrst", "0")
	q.Set("wdqb", "c:"+word)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("mdbg: create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	body, err := provider.Do(ctx, c.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("mdbg: scrape: %w", err)
	}

	defs, err := ParseDefinitions(body)
	if err != nil {
		return nil, fmt.Errorf("mdbg: scrape: %w", err)
	}

	c.log.DebugContext(ctx, "mdbg site response",
		slog.String("word", word),
		slog.Int("definitions", len(defs)),
	)
	return defs, nil
}

// ParseDefinitions extracts the definition blocks from a result page.
func ParseDefinitions(page []byte) ([]string, error) {
	if bytes.Contains(page, []byte(noResultsMarker)) {
		return nil, nil
	}

	doc, err := htmlquery.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	var defs []string
	for _, n := range htmlquery.Find(doc, defsXPath) {
		if s := strings.TrimSpace(htmlquery.InnerText(n)); s != "" {
			defs = append(defs, s)
		}
	}
	return defs, nil
}
