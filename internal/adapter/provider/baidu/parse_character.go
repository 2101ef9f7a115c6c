package baidu

import "github.com/heartmarshall/zhdict/internal/domain"

// parseCharacter reads a character endpoint payload, keeping bolCommon per reading.
func parseCharacter(payload []byte) (domain.Entry, error) {
	data, err := decode(payload)
	if err != nil {
		return domain.Entry{}, err
	}
	detail := data.Get("detail")
	prons := parsePronunciations(detail.Get("comprehensiveDefinition"), true, characterReading)
	return domain.NewEntry(detail.Get("name").String(), domain.WordTypeCharacter, prons...), nil
}

// emptyParser returns an entry of the given type without pronunciations.
func emptyParser(t domain.WordType) func([]byte) (domain.Entry, error) {
	return func(payload []byte) (domain.Entry, error) {
		data, err := decode(payload)
		if err != nil {
			return domain.Entry{}, err
		}
		return domain.NewEntry(data.Get("name").String(), t), nil
	}
}
