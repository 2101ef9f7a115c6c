// Package translate provides machine translation through the DeepL API.
package translate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/zhdict/internal/config"
	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/heartmarshall/zhdict/internal/provider"
	"github.com/tidwall/gjson"
)

// DeepL translates text with the DeepL REST API.
type DeepL struct {
	url        string
	apiKey     string
	sourceLang string
	targetLang string
	httpClient *http.Client
	log        *slog.Logger
}

// NewDeepL creates a DeepL client. A missing API key is reported by Translate.
func NewDeepL(cfg config.DeepLConfig, httpCfg config.HTTPConfig, logger *slog.Logger) *DeepL {
	return &DeepL{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		sourceLang: cfg.SourceLang,
		targetLang: cfg.TargetLang,
		httpClient: &http.Client{Timeout: httpCfg.Timeout},
		log:        logger.With("adapter", "deepl"),
	}
}

// Translate returns the first translation of text, or "" when the API
// returns none. It fails with domain.ErrConfigurationMissing when no API
// key is configured.
func (d *DeepL) Translate(ctx context.Context, text string) (string, error) {
	if d.apiKey == "" {
		return "", fmt.Errorf("deepl: %w: api key", domain.ErrConfigurationMissing)
	}

	form := url.Values{
		"text":        {text},
		"source_lang": {strings.ToUpper(d.sourceLang)},
		"target_lang": {strings.ToUpper(d.targetLang)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("deepl: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)

	body, err := provider.Do(ctx, d.httpClient, req)
	if err != nil {
		return "", fmt.Errorf("deepl: translate: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("deepl: translate: %w: invalid json", domain.ErrMalformedResponse)
	}

	result := gjson.GetBytes(body, "translations.0.text").String()
	d.log.DebugContext(ctx, "deepl response",
		slog.String("text", text),
		slog.String("translation", result),
	)
	return result, nil
}
