package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappydog/tgen/internal/morpho"
	"github.com/unhappydog/tgen/internal/surface"
)

const sampleModel = `# form	lemma	tag	count
podávají	podávat_:T	VB-P---3P-AAI--	12
italské	italský	AAIP1----1A----	5
italské	italský	AAFS2----1A----	9
jídlo	jídlo	NNNS1-----A----
pes	pes-1_^(zvíře)	NNMS1-----A----	3
`

func TestLoadAndAnalyze(t *testing.T) {
	tagger, err := Load(strings.NewReader(sampleModel))
	require.NoError(t, err)

	assert.Equal(t, []surface.Candidate{
		{Lemma: "italský", Tag: "AAIP1----1A----"},
		{Lemma: "italský", Tag: "AAFS2----1A----"},
	}, tagger.Analyze("italské"))

	// lowercase fallback
	assert.Equal(t, "jídlo", tagger.Analyze("Jídlo")[0].Lemma)

	assert.Equal(t, []surface.Candidate{{Lemma: "42", Tag: NumberTag}}, tagger.Analyze("42"))
	assert.Equal(t, []surface.Candidate{{Lemma: ",", Tag: PunctuationTag}}, tagger.Analyze(","))
	assert.Equal(t, []surface.Candidate{{Lemma: "Kolkovna", Tag: UnknownTag}}, tagger.Analyze("Kolkovna"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader("form\tlemma\n"))
	assert.ErrorContains(t, err, "line 1")

	_, err = Load(strings.NewReader("# comment\n\nform\tlemma\ttag\tmany\n"))
	assert.ErrorContains(t, err, "line 3")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.tsv")
	require.NoError(t, os.WriteFile(path, []byte(sampleModel), 0o644))

	tagger, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, tagger.Analyze("italské"), 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "none.tsv"))
	assert.Error(t, err)
}

func TestTokenize(t *testing.T) {
	tagger := New()
	got := tagger.Tokenize("Pizza Place podává italské jídlo, od 12:30. Přijďte!")
	assert.Equal(t, [][]string{
		{"Pizza", "Place", "podává", "italské", "jídlo", ",", "od", "12", ":", "30", "."},
		{"Přijďte", "!"},
	}, got)

	assert.Empty(t, tagger.Tokenize("   "))
	assert.Equal(t, [][]string{{"Main", "St", "42"}}, tagger.Tokenize("Main St 42"))
}

func TestTokenizeNormalizesToNFC(t *testing.T) {
	// "e" + combining acute accent
	got := New().Tokenize("cafe\u0301")
	require.Len(t, got, 1)
	assert.Equal(t, []string{"caf\u00e9"}, got[0])
}

func TestRawLemma(t *testing.T) {
	tagger := New()
	tests := map[string]string{
		"pes-1_^(zvíře)": "pes",
		"podávat_:T":     "podávat",
		"Praha_;G":       "Praha",
		"stát-2":         "stát",
		"co-operate":     "co-operate",
		"-":              "-",
		"_":              "_",
		"X-name":         "X-name",
		"Pizza Place":    "Pizza Place",
		"být`bych":       "být",
	}
	for in, want := range tests {
		assert.Equal(t, want, tagger.RawLemma(in), in)
	}
}

func TestDisambiguatePrefersFrequentAnalysis(t *testing.T) {
	tagger, err := Load(strings.NewReader(sampleModel))
	require.NoError(t, err)

	forms := []string{"italské", "Pizza Place"}
	analyses := [][]surface.Candidate{
		{{Lemma: "italský", Tag: "AAIP1----1A----"}, {Lemma: "italský", Tag: "AAFS2----1A----"}},
		{{Lemma: "Pizza Place", Tag: "NNFS1"}, {Lemma: "Pizza Place", Tag: "NNFS4"}},
	}
	assert.Equal(t, []int{1, 0}, tagger.Disambiguate(forms, analyses))
}

func TestWithAnalyzer(t *testing.T) {
	tagger, err := Load(strings.NewReader(sampleModel))
	require.NoError(t, err)
	dict := surface.NewDictionary()
	dict.Add("name", "Pizza Place", "pizza place", "NNFS1-----A----")

	got := morpho.NewAnalyzer(tagger, dict).Analyze("Pizza Place podávají italské jídlo.")
	assert.Equal(t, []morpho.Token{
		{Form: "Pizza Place", Lemma: "Pizza Place", Tag: "NNFS1-----A----"},
		{Form: "podávají", Lemma: "podávat", Tag: "VB-P---3P-AAI--"},
		{Form: "italské", Lemma: "italský", Tag: "AAFS2----1A----"},
		{Form: "jídlo", Lemma: "jídlo", Tag: "NNNS1-----A----"},
		{Form: ".", Lemma: ".", Tag: PunctuationTag},
	}, got)
}
