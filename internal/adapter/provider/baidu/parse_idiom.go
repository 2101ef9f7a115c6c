package baidu

import (
	"strings"

	"github.com/heartmarshall/zhdict/internal/domain"
)

func parseIdiomLegacy(payload []byte) (domain.Entry, error) {
	return parseIdiom(payload, false)
}

func parseIdiomCurrent(payload []byte) (domain.Entry, error) {
	return parseIdiom(payload, true)
}

// parseIdiom builds exactly one pronunciation with a single sense whose text
// is the definition, the ancient and modern usage, and (current schema) one
// "word：definition" line per detailed meaning.
func parseIdiom(payload []byte, withDetail bool) (domain.Entry, error) {
	data, err := decode(payload)
	if err != nil {
		return domain.Entry{}, err
	}
	name := data.Get("name").String()
	info := data.Get("definitionInfo")

	var lines []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, s)
		}
	}
	add(info.Get("definition").String())
	for _, field := range []string{"ancientDefinition", "modernDefinition"} {
		if v := info.Get(field); v.Exists() {
			add(v.String())
		} else {
			add(data.Get(field).String())
		}
	}
	if withDetail {
		for _, m := range info.Get("detailMeans").Array() {
			def := strings.TrimSpace(m.Get("definition").String())
			if def == "" {
				continue
			}
			if w := strings.TrimSpace(m.Get("word").String()); w != "" {
				def = w + "：" + def
			}
			add(def)
		}
	}

	sense := domain.Sense{
		Text:     strings.Join(lines, "\n"),
		Examples: names(data.Get("liju")),
	}
	if sense.Text == "" {
		return domain.NewEntry(name, domain.WordTypeIdiom), nil
	}
	p, _ := domain.NewPronunciation(pinyin(data), true, []domain.Sense{sense})
	return domain.NewEntry(name, domain.WordTypeIdiom, p), nil
}
