package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/heartmarshall/zhdict/internal/domain"
	"golang.org/x/net/html/charset"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// maxBodySize is the largest response body accepted.
const maxBodySize = 8 << 20

// Do executes req and returns the body decoded to UTF-8.
// Transport failures and non-200 statuses wrap domain.ErrSourceUnavailable.
func Do(ctx context.Context, client *http.Client, req *http.Request) ([]byte, error) {
	req = req.WithContext(ctx)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrSourceUnavailable, err)
	}
	if len(raw) > maxBodySize {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrMalformedResponse, maxBodySize)
	}

	r, err := utf8Reader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", domain.ErrMalformedResponse, err)
	}
	return body, nil
}

// utf8Reader converts the body to UTF-8 when the response declares a
// non-UTF-8 charset. Bodies without a declared charset are taken as UTF-8.
func utf8Reader(r io.Reader, contentType string) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return r, nil
	}
	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return r, nil
	}
	cr, err := charset.NewReaderLabel(label, r)
	if err != nil {
		return nil, fmt.Errorf("%w: charset %q: %v", domain.ErrMalformedResponse, label, err)
	}
	return cr, nil
}
