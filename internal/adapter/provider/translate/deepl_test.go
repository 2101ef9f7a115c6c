package translate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heartmarshall/zhdict/internal/config"
	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeepL(url, key string) *DeepL {
	return NewDeepL(config.DeepLConfig{
		URL:        url,
		APIKey:     key,
		SourceLang: "zh",
		TargetLang: "en",
	}, config.HTTPConfig{Timeout: 5 * time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDeepL_Translate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "DeepL-Auth-Key secret", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "情怀", r.PostForm.Get("text"))
		assert.Equal(t, "ZH", r.PostForm.Get("source_lang"))
		assert.Equal(t, "EN", r.PostForm.Get("target_lang"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"translations":[{"detected_source_language":"ZH","text":"sentiment"}]}`))
	}))
	defer srv.Close()

	got, err := newTestDeepL(srv.URL, "secret").Translate(context.Background(), "情怀")
	require.NoError(t, err)
	assert.Equal(t, "sentiment", got)
}

func TestDeepL_Translate_EmptyTranslations(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"translations":[]}`))
	}))
	defer srv.Close()

	got, err := newTestDeepL(srv.URL, "secret").Translate(context.Background(), "情怀")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeepL_Translate_MissingKey(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	}))
	defer srv.Close()

	_, err := newTestDeepL(srv.URL, "").Translate(context.Background(), "情怀")
	assert.True(t, errors.Is(err, domain.ErrConfigurationMissing))
}

func TestDeepL_Translate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"forbidden", http.StatusForbidden, "", domain.ErrSourceUnavailable},
		{"quota exceeded", 456, "", domain.ErrSourceUnavailable},
		{"invalid json", http.StatusOK, "not json", domain.ErrMalformedResponse},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestDeepL(srv.URL, "secret").Translate(context.Background(), "情怀")
			assert.True(t, errors.Is(err, tt.wantErr), err)
		})
	}
}
