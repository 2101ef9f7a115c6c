package domain

// WordType classifies a looked-up word. It drives parser selection and display.
type WordType string

const (
	WordTypeTerm      WordType = "term"
	WordTypeIdiom     WordType = "idiom"
	WordTypeCharacter WordType = "character"
	WordTypeBaike     WordType = "baike"
	WordTypeHotWords  WordType = "hot_words"
	WordTypeOther     WordType = "other"
	WordTypeUnknown   WordType = "unknown"
)

func (t WordType) String() string { return string(t) }

func (t WordType) IsValid() bool {
	switch t {
	case WordTypeTerm, WordTypeIdiom, WordTypeCharacter, WordTypeBaike,
		WordTypeHotWords, WordTypeOther, WordTypeUnknown:
		return true
	}
	return false
}

// GlossSource identifies which translation source produced a gloss.
type GlossSource string

const (
	GlossSourceNone    GlossSource = ""
	GlossSourceMDBGAPI GlossSource = "mdbg-api"
	GlossSourceMDBGWeb GlossSource = "mdbg-web"
	GlossSourceDeepL   GlossSource = "deepl"
)

func (s GlossSource) String() string { return string(s) }

// Label returns the short tag shown in front of a gloss.
func (s GlossSource) Label() string {
	switch s {
	case GlossSourceMDBGAPI, GlossSourceMDBGWeb:
		return "(MDBG)"
	case GlossSourceDeepL:
		return "(deepL)"
	}
	return ""
}
