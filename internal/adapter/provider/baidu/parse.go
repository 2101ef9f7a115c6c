package baidu

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/tidwall/gjson"
)

// Schema revisions of the structured endpoints.
const (
	TermSchemaLegacy   = 1 // pronunciation groups under data.definition
	TermSchemaCurrent  = 2 // pronunciation groups under data.comprehensiveDefinition
	IdiomSchemaLegacy  = 1 // definition, ancient and modern usage
	IdiomSchemaCurrent = 2 // adds detailMeans lines
	CharacterSchema    = 1
)

func decode(payload []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(payload) {
		return gjson.Result{}, fmt.Errorf("%w: invalid json", domain.ErrMalformedResponse)
	}
	return gjson.GetBytes(payload, "data"), nil
}

// parsePronunciations converts a list of pronunciation groups. Groups without
// any usable definition are skipped. withCommon reads bolCommon per group.
func parsePronunciations(groups gjson.Result, withCommon bool, readingOf func(gjson.Result) string) []domain.Pronunciation {
	var prons []domain.Pronunciation
	for _, g := range groups.Array() {
		common := true
		if withCommon {
			if c := g.Get("bolCommon"); c.Exists() {
				common = c.Bool()
			}
		}
		p, err := domain.NewPronunciation(readingOf(g), common, sensesFromGroup(g))
		if err != nil {
			continue
		}
		prons = append(prons, p)
	}
	return prons
}

// sensesFromGroup prefers basicDefinition over detailDefinition when it is non-empty.
func sensesFromGroup(g gjson.Result) []domain.Sense {
	defs := g.Get("basicDefinition").Array()
	if len(defs) == 0 {
		defs = g.Get("detailDefinition").Array()
	}

	var senses []domain.Sense
	for _, d := range defs {
		text := strings.TrimSpace(d.Get("definition").String())
		if text == "" {
			continue
		}
		senses = append(senses, domain.Sense{
			Text:          text,
			Examples:      names(d.Get("liju")),
			PartsOfSpeech: names(d.Get("pos")),
		})
	}
	return senses
}

// characterReading is the group's pinyin, falling back to its name. Character
// groups carry the reading in either field.
func characterReading(g gjson.Result) string {
	if s := pinyin(g); s != "" {
		return s
	}
	return joined(g.Get("name"))
}

func pinyin(g gjson.Result) string {
	return joined(g.Get("pinyin"))
}

func joined(r gjson.Result) string {
	if r.IsArray() {
		return strings.Join(names(r), " ")
	}
	return strings.TrimSpace(r.String())
}

// names flattens a string, an array of strings, or an array of {name} objects.
func names(r gjson.Result) []string {
	if !r.Exists() {
		return nil
	}
	if !r.IsArray() {
		if s := strings.TrimSpace(r.String()); s != "" && r.Type == gjson.String {
			return []string{s}
		}
		return nil
	}

	var out []string
	for _, item := range r.Array() {
		var s string
		if item.IsObject() {
			s = item.Get("name").String()
		} else {
			s = item.String()
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
