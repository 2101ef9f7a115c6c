package baidu

import (
	"strings"

	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/tidwall/gjson"
)

func parseTermCurrent(payload []byte) (domain.Entry, error) {
	return parseTerm(payload, "comprehensiveDefinition")
}

func parseTermLegacy(payload []byte) (domain.Entry, error) {
	return parseTerm(payload, "definition")
}

// parseTerm reads the pronunciation groups under groupsField. Payloads without
// a sid carry no groups and are read as a Baike entry instead.
func parseTerm(payload []byte, groupsField string) (domain.Entry, error) {
	data, err := decode(payload)
	if err != nil {
		return domain.Entry{}, err
	}
	if data.Get("sid").String() == "" {
		return baikeEntry(data), nil
	}

	name := data.Get("name").String()
	return domain.NewEntry(name, domain.WordTypeTerm, parsePronunciations(data.Get(groupsField), false, pinyin)...), nil
}

func parseBaike(payload []byte) (domain.Entry, error) {
	data, err := decode(payload)
	if err != nil {
		return domain.Entry{}, err
	}
	return baikeEntry(data), nil
}

func baikeEntry(data gjson.Result) domain.Entry {
	name := data.Get("name").String()
	mean := strings.TrimSpace(data.Get("baikeInfo.baikeMean").String())
	if mean == "" {
		return domain.NewEntry(name, domain.WordTypeBaike)
	}
	p, _ := domain.NewPronunciation("", true, []domain.Sense{{Text: mean}})
	return domain.NewEntry(name, domain.WordTypeBaike, p)
}
