package baidu

import (
	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/heartmarshall/zhdict/internal/provider"
)

// NewRegistry returns the parser strategies for every Baidu schema revision.
func NewRegistry() *provider.Registry {
	reg := provider.NewRegistry()
	reg.Register(provider.ParserKey{Type: domain.WordTypeTerm, Version: TermSchemaLegacy}, parseTermLegacy)
	reg.Register(provider.ParserKey{Type: domain.WordTypeTerm, Version: TermSchemaCurrent}, parseTermCurrent)
	reg.Register(provider.ParserKey{Type: domain.WordTypeIdiom, Version: IdiomSchemaLegacy}, parseIdiomLegacy)
	reg.Register(provider.ParserKey{Type: domain.WordTypeIdiom, Version: IdiomSchemaCurrent}, parseIdiomCurrent)
	reg.Register(provider.ParserKey{Type: domain.WordTypeCharacter, Version: CharacterSchema}, parseCharacter)
	reg.Register(provider.ParserKey{Type: domain.WordTypeBaike, Version: 1}, parseBaike)
	for _, t := range []domain.WordType{domain.WordTypeOther, domain.WordTypeHotWords, domain.WordTypeUnknown} {
		reg.Register(provider.ParserKey{Type: t, Version: 1}, emptyParser(t))
	}
	return reg
}
