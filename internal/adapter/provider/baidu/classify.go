package baidu

import (
	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/tidwall/gjson"
)

// Classify reads data.type from a word/idiom payload. Anything absent,
// malformed or unrecognized is WordTypeUnknown.
func Classify(payload []byte) domain.WordType {
	if !gjson.ValidBytes(payload) {
		return domain.WordTypeUnknown
	}
	switch gjson.GetBytes(payload, "data.type").String() {
	case "term":
		return domain.WordTypeTerm
	case "idiom":
		return domain.WordTypeIdiom
	case "other":
		return domain.WordTypeOther
	case "hot_words":
		return domain.WordTypeHotWords
	default:
		return domain.WordTypeUnknown
	}
}
