package domain

import "fmt"

// Entry is the normalized dictionary result for one looked-up word.
// An Entry without pronunciations means "no data".
type Entry struct {
	SourceName     string
	WordType       WordType
	Pronunciations []Pronunciation
}

// NewEntry creates an Entry. The word type is fixed here and never changes afterwards.
func NewEntry(sourceName string, wordType WordType, prons ...Pronunciation) Entry {
	return Entry{
		SourceName:     sourceName,
		WordType:       wordType,
		Pronunciations: prons,
	}
}

// IsEmpty reports whether the entry carries no pronunciations.
func (e Entry) IsEmpty() bool {
	return len(e.Pronunciations) == 0
}

// Pronunciation is one reading of a word together with its senses.
type Pronunciation struct {
	Reading  string
	Senses   []Sense
	IsCommon bool
}

// NewPronunciation builds a Pronunciation and rejects an empty sense list.
func NewPronunciation(reading string, isCommon bool, senses []Sense) (Pronunciation, error) {
	if len(senses) == 0 {
		return Pronunciation{}, fmt.Errorf("pronunciation %q: %w", reading, ErrNoSenses)
	}
	return Pronunciation{Reading: reading, Senses: senses, IsCommon: isCommon}, nil
}

// Sense is a single meaning of a word.
type Sense struct {
	Text          string
	Examples      []string
	PartsOfSpeech []string
}

// Gloss is the English rendering of a word and the source that produced it.
type Gloss struct {
	Text   string
	Source GlossSource
}

// IsEmpty reports whether the gloss has no text.
func (g Gloss) IsEmpty() bool {
	return g.Text == ""
}
