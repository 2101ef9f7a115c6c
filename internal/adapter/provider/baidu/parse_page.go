package baidu

import (
	"html"
	"regexp"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/heartmarshall/zhdict/internal/domain"
)

// The dictionary page is not well-formed XML, so blocks are located by regex
// and only the definition block is handed to the HTML parser.
var (
	tabContentRe  = regexp.MustCompile(`<div class="tab-content[\s\S]*?">[\s\S]*?</div>`)
	pinyinBlockRe = regexp.MustCompile(`<div[^<>]*?id="pinyin">[\s\S]*?</div>`)
	pinyinRe      = regexp.MustCompile(`t">([\s\S]*?)</b>`)
)

// ParsePage extracts readings and definitions from the dictionary web page.
//
// All definition paragraphs are attached to the first reading; further
// readings of a polyphonic word carry no senses. A page without a
// tab-content block, without paragraphs, or without readings yields an
// empty entry.
func ParsePage(page, word string, wordType domain.WordType) domain.Entry {
	empty := domain.NewEntry(word, wordType)

	block := tabContentRe.FindString(page)
	if block == "" {
		return empty
	}
	defs := extractDefinitions(block)
	if len(defs) == 0 {
		return empty
	}

	readings := extractReadings(page)
	if len(readings) == 0 {
		return empty
	}

	senses := make([]domain.Sense, 0, len(defs))
	for _, d := range defs {
		senses = append(senses, domain.Sense{Text: d})
	}

	prons := make([]domain.Pronunciation, 0, len(readings))
	for i, r := range readings {
		p := domain.Pronunciation{Reading: r, IsCommon: true}
		if i == 0 {
			p.Senses = senses
		}
		prons = append(prons, p)
	}
	return domain.NewEntry(word, wordType, prons...)
}

func extractDefinitions(block string) []string {
	doc, err := htmlquery.Parse(strings.NewReader(block))
	if err != nil {
		return nil
	}
	var defs []string
	for _, p := range htmlquery.Find(doc, "//dl/dd[1]/p") {
		if text := strings.TrimSpace(htmlquery.InnerText(p)); text != "" {
			defs = append(defs, text)
		}
	}
	return defs
}

func extractReadings(page string) []string {
	block := pinyinBlockRe.FindString(page)
	if block == "" {
		return nil
	}
	var readings []string
	for _, m := range pinyinRe.FindAllStringSubmatch(block, -1) {
		r := strings.TrimSpace(html.UnescapeString(m[1]))
		r = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(r, "["), "]"))
		if r != "" {
			readings = append(readings, r)
		}
	}
	return readings
}
