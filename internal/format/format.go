// Package format renders entries into display text and sheet rows.
package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/zhdict/internal/domain"
)

// ExampleLabel precedes the example sentence chosen for a sense.
const ExampleLabel = "例句："

// maxCircled is the number of circled digits available from U+2460 (①..⑳).
const maxCircled = 20

// Format renders every common pronunciation of entry: its reading on its own
// line followed by its senses. Blocks are separated by a blank line.
func Format(entry domain.Entry) string {
	var blocks []string
	for _, p := range entry.Pronunciations {
		if !p.IsCommon {
			continue
		}
		var lines []string
		if p.Reading != "" {
			lines = append(lines, p.Reading)
		}
		if s := Senses(p.Senses); s != "" {
			lines = append(lines, s)
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}

// Senses renders a sense list. More than one sense is numbered ①②③…;
// a single sense gets no prefix.
func Senses(senses []domain.Sense) string {
	var b strings.Builder
	for i, s := range senses {
		if i > 0 {
			b.WriteByte('\n')
		}
		if len(senses) > 1 {
			b.WriteString(ordinal(i))
		}
		b.WriteString(posTag(s.PartsOfSpeech))
		b.WriteString(s.Text)
		if ex := shortest(s.Examples); ex != "" {
			b.WriteString("\n" + ExampleLabel + ex)
		}
	}
	return strings.TrimSpace(b.String())
}

// Gloss renders a gloss with its source label, e.g. "(MDBG) feelings".
func Gloss(g domain.Gloss) string {
	if g.IsEmpty() {
		return ""
	}
	if label := g.Source.Label(); label != "" {
		return label + " " + g.Text
	}
	return g.Text
}

// Rows lays an entry out as (word, reading, definition) rows: one row per
// common pronunciation with the word on the first row only, then the gloss,
// which fills the last row's definition cell when it is empty and otherwise
// gets a row of its own.
func Rows(word string, entry domain.Entry, gloss domain.Gloss) [][3]string {
	var rows [][3]string
	for _, p := range entry.Pronunciations {
		if !p.IsCommon {
			continue
		}
		first := ""
		if len(rows) == 0 {
			first = word
		}
		rows = append(rows, [3]string{first, p.Reading, Senses(p.Senses)})
	}

	g := Gloss(gloss)
	switch {
	case len(rows) == 0:
		rows = append(rows, [3]string{word, "", g})
	case g == "":
	case rows[len(rows)-1][2] == "":
		rows[len(rows)-1][2] = g
	default:
		rows = append(rows, [3]string{"", "", g})
	}
	return rows
}

func ordinal(i int) string {
	if i < maxCircled {
		return string(rune(0x2460 + i))
	}
	return fmt.Sprintf("(%d)", i+1)
}

// posTag renders parts of speech as "[动,名]", dropping the filler 词.
func posTag(pos []string) string {
	var tags []string
	for _, p := range pos {
		if p = strings.TrimSpace(strings.ReplaceAll(p, "词", "")); p != "" {
			tags = append(tags, p)
		}
	}
	if len(tags) == 0 {
		return ""
	}
	return "[" + strings.Join(tags, ",") + "]"
}

// shortest returns the example with the fewest runes; the first one wins ties.
func shortest(examples []string) string {
	best, bestLen := "", -1
	for _, ex := range examples {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}
		if n := utf8.RuneCountInString(ex); bestLen < 0 || n < bestLen {
			best, bestLen = ex, n
		}
	}
	return best
}
