package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/spf13/afero"
)

// ParseWordList reads one word per line. Blank lines and lines starting with
// '#' are skipped. Each request's target is "<source>:<line>".
func ParseWordList(r io.Reader, source string) ([]domain.LookupRequest, error) {
	var reqs []domain.LookupRequest
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		word := domain.NormalizeWord(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		reqs = append(reqs, domain.NewLookupRequest(word, fmt.Sprintf("%s:%d", source, line)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", source, err)
	}
	return reqs, nil
}

// ReadWordList parses the word list stored at path on fs.
func ReadWordList(fs afero.Fs, path string) ([]domain.LookupRequest, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return ParseWordList(f, path)
}
