package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pron(t *testing.T, reading string, common bool, senses ...domain.Sense) domain.Pronunciation {
	t.Helper()
	p, err := domain.NewPronunciation(reading, common, senses)
	require.NoError(t, err)
	return p
}

func TestFormat_PolyphonicCharacter(t *testing.T) {
	t.Parallel()

	entry := domain.NewEntry("挑", domain.WordTypeCharacter,
		pron(t, "tiāo", true, domain.Sense{Text: "选，拣。"}),
		pron(t, "tiǎo", true, domain.Sense{Text: "用竿子举起。"}),
	)

	got := Format(entry)
	assert.Equal(t, "tiāo\n选，拣。\n\ntiǎo\n用竿子举起。", got)
	assert.NotContains(t, got, "①")
}

func TestFormat_Numbering(t *testing.T) {
	t.Parallel()

	entry := domain.NewEntry("打", domain.WordTypeCharacter,
		pron(t, "dǎ", true,
			domain.Sense{Text: "击。"},
			domain.Sense{Text: "放出。"},
			domain.Sense{Text: "做，从事。"},
		),
	)

	assert.Equal(t, "dǎ\n①击。\n②放出。\n③做，从事。", Format(entry))
}

func TestSenses_NumberingBeyondCircledDigits(t *testing.T) {
	t.Parallel()

	senses := make([]domain.Sense, 22)
	for i := range senses {
		senses[i] = domain.Sense{Text: fmt.Sprintf("s%d", i+1)}
	}

	lines := strings.Split(Senses(senses), "\n")
	require.Len(t, lines, 22)
	assert.Equal(t, "①s1", lines[0])
	assert.Equal(t, "⑳s20", lines[19])
	assert.Equal(t, "(21)s21", lines[20])
	assert.Equal(t, "(22)s22", lines[21])
}

func TestFormat_ShortestExample(t *testing.T) {
	t.Parallel()

	entry := domain.NewEntry("例", domain.WordTypeTerm,
		pron(t, "", true, domain.Sense{Text: "释义。", Examples: []string{"长句子示例", "短句"}}),
	)

	assert.Equal(t, "释义。\n例句：短句", Format(entry))
}

func TestFormat_ShortestExampleTieKeepsOrder(t *testing.T) {
	t.Parallel()

	entry := domain.NewEntry("例", domain.WordTypeTerm,
		pron(t, "", true, domain.Sense{Text: "释义。", Examples: []string{"甲乙", "丙丁", "长一点的"}}),
	)

	assert.Equal(t, "释义。\n例句：甲乙", Format(entry))
}

func TestFormat_PartsOfSpeech(t *testing.T) {
	t.Parallel()

	entry := domain.NewEntry("转运", domain.WordTypeTerm,
		pron(t, "zhuǎn yùn", true,
			domain.Sense{Text: "转变运气。", PartsOfSpeech: []string{"动词", "名词"}},
			domain.Sense{Text: "转移运输。", PartsOfSpeech: []string{"词", " "}},
		),
	)

	assert.Equal(t, "zhuǎn yùn\n①[动,名]转变运气。\n②转移运输。", Format(entry))
}

func TestFormat_SkipsUncommonPronunciations(t *testing.T) {
	t.Parallel()

	entry := domain.NewEntry("行", domain.WordTypeCharacter,
		pron(t, "xíng", true, domain.Sense{Text: "走。"}),
		pron(t, "héng", false, domain.Sense{Text: "道行。"}),
	)

	assert.Equal(t, "xíng\n走。", Format(entry))
}

func TestFormat_ReadingOnlyPronunciation(t *testing.T) {
	t.Parallel()

	entry := domain.NewEntry("挑", domain.WordTypeUnknown,
		pron(t, "tiāo", true, domain.Sense{Text: "选。"}, domain.Sense{Text: "担。"}),
		domain.Pronunciation{Reading: "tiǎo", IsCommon: true},
	)

	assert.Equal(t, "tiāo\n①选。\n②担。\n\ntiǎo", Format(entry))
}

func TestFormat_EmptyEntry(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Format(domain.NewEntry("情怀", domain.WordTypeOther)))
}

func TestFormat_Deterministic(t *testing.T) {
	t.Parallel()

	entry := domain.NewEntry("幸灾乐祸", domain.WordTypeIdiom,
		pron(t, "xìng zāi lè huò", true, domain.Sense{
			Text:     "指别人遭到灾祸时自己心里高兴。\n出处：《左传》",
			Examples: []string{"他这种幸灾乐祸的态度令人反感。", "不要幸灾乐祸。"},
		}),
	)

	first := Format(entry)
	assert.Equal(t, first, Format(entry))
	assert.True(t, strings.HasSuffix(first, "例句：不要幸灾乐祸。"))
}

func TestGloss(t *testing.T) {
	t.Parallel()

	tests := []struct {
		gloss domain.Gloss
		want  string
	}{
		{domain.Gloss{Text: "feelings / mood", Source: domain.GlossSourceMDBGAPI}, "(MDBG) feelings / mood"},
		{domain.Gloss{Text: "sentiment", Source: domain.GlossSourceMDBGWeb}, "(MDBG) sentiment"},
		{domain.Gloss{Text: "sentiment", Source: domain.GlossSourceDeepL}, "(deepL) sentiment"},
		{domain.Gloss{Text: "plain"}, "plain"},
		{domain.Gloss{}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Gloss(tt.gloss))
	}
}

func TestRows(t *testing.T) {
	t.Parallel()

	mdbg := domain.Gloss{Text: "to choose", Source: domain.GlossSourceMDBGAPI}

	t.Run("gloss gets its own row", func(t *testing.T) {
		entry := domain.NewEntry("挑", domain.WordTypeCharacter,
			pron(t, "tiāo", true, domain.Sense{Text: "选。"}),
			pron(t, "tiǎo", true, domain.Sense{Text: "拨动。"}),
			pron(t, "tāo", false, domain.Sense{Text: "古同“掏”。"}),
		)
		assert.Equal(t, [][3]string{
			{"挑", "tiāo", "选。"},
			{"", "tiǎo", "拨动。"},
			{"", "", "(MDBG) to choose"},
		}, Rows("挑", entry, mdbg))
	})

	t.Run("gloss fills empty definition cell", func(t *testing.T) {
		entry := domain.NewEntry("挑", domain.WordTypeUnknown,
			pron(t, "tiāo", true, domain.Sense{Text: "选。"}),
			domain.Pronunciation{Reading: "tiǎo", IsCommon: true},
		)
		assert.Equal(t, [][3]string{
			{"挑", "tiāo", "选。"},
			{"", "tiǎo", "(MDBG) to choose"},
		}, Rows("挑", entry, mdbg))
	})

	t.Run("empty entry", func(t *testing.T) {
		gloss := domain.Gloss{Text: "sentiment", Source: domain.GlossSourceDeepL}
		assert.Equal(t, [][3]string{{"情怀", "", "(deepL) sentiment"}},
			Rows("情怀", domain.NewEntry("情怀", domain.WordTypeOther), gloss))
	})

	t.Run("no gloss", func(t *testing.T) {
		entry := domain.NewEntry("挑", domain.WordTypeCharacter, pron(t, "tiāo", true, domain.Sense{Text: "选。"}))
		assert.Equal(t, [][3]string{{"挑", "tiāo", "选。"}}, Rows("挑", entry, domain.Gloss{}))
	})
}
