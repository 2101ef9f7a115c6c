package domain

import (
	"time"

	"github.com/google/uuid"
)

// LookupRequest is a word queued for batch lookup. Target identifies where
// the result belongs (e.g. an input file position); it is carried unchanged.
type LookupRequest struct {
	ID         uuid.UUID
	Word       string
	Target     string
	EnqueuedAt time.Time
}

// NewLookupRequest creates a request with a fresh ID.
func NewLookupRequest(word, target string) LookupRequest {
	return LookupRequest{
		ID:         uuid.New(),
		Word:       word,
		Target:     target,
		EnqueuedAt: time.Now(),
	}
}

// LookupResult is what a processed request forwards to the output sink.
// TranslateErr is set when the gloss could not be produced because of
// missing configuration; the entry is still valid in that case.
type LookupResult struct {
	Request      LookupRequest
	Entry        Entry
	Formatted    string
	WordType     WordType
	Gloss        Gloss
	TranslateErr error
}

// QueueStats holds batch processing counters.
type QueueStats struct {
	Pending   int
	Processed int
	Failed    int
}
