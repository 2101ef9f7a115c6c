package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/heartmarshall/zhdict/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []domain.FieldError

	if c.HTTP.Timeout <= 0 {
		errs = append(errs, domain.FieldError{Field: "http.timeout", Message: fmt.Sprintf("must be > 0 (got %v)", c.HTTP.Timeout)})
	}

	for field, raw := range map[string]string{
		"baidu.character_url": c.Baidu.CharacterURL,
		"baidu.word_url":      c.Baidu.WordURL,
		"baidu.page_url":      c.Baidu.PageURL,
		"mdbg.api_url":        c.MDBG.APIURL,
		"mdbg.site_url":       c.MDBG.SiteURL,
		"deepl.url":           c.DeepL.URL,
	} {
		if err := validateURL(raw); err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: err.Error()})
		}
	}

	if c.Baidu.TermSchema <= 0 {
		errs = append(errs, domain.FieldError{Field: "baidu.term_schema", Message: "must be > 0"})
	}
	if c.Baidu.IdiomSchema <= 0 {
		errs = append(errs, domain.FieldError{Field: "baidu.idiom_schema", Message: "must be > 0"})
	}

	if strings.TrimSpace(c.DeepL.SourceLang) == "" {
		errs = append(errs, domain.FieldError{Field: "deepl.source_lang", Message: "required"})
	}
	if strings.TrimSpace(c.DeepL.TargetLang) == "" {
		errs = append(errs, domain.FieldError{Field: "deepl.target_lang", Message: "required"})
	}

	switch c.Output.Format {
	case OutputFormatText, OutputFormatTSV:
	default:
		errs = append(errs, domain.FieldError{Field: "output.format", Message: fmt.Sprintf("unknown format %q", c.Output.Format)})
	}

	if len(errs) == 0 {
		return nil
	}
	// URL checks iterate a map; keep the output stable.
	slices.SortFunc(errs, func(a, b domain.FieldError) int { return strings.Compare(a.Field, b.Field) })
	return domain.NewValidationErrors(errs)
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host required")
	}
	return nil
}
