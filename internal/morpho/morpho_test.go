package morpho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappydog/tgen/internal/morpho/morphotest"
	"github.com/unhappydog/tgen/internal/surface"
)

func newTagger() *morphotest.Tagger {
	return morphotest.New(map[string][]surface.Candidate{
		"serves":  {{Lemma: "serve-1", Tag: "VB"}, {Lemma: "serf", Tag: "NNS"}},
		"italian": {{Lemma: "italian", Tag: "JJ"}},
		"food":    {{Lemma: "food", Tag: "NN"}},
		".":       {{Lemma: ".", Tag: "Z"}},
	})
}

func TestAnalyzePrefersSurfaceForms(t *testing.T) {
	dict := surface.NewDictionary()
	dict.Add("name", "Pizza Place", "pizza place", "NNP")
	tagger := newTagger()

	got := NewAnalyzer(tagger, dict).Analyze("Pizza Place serves italian food")
	assert.Equal(t, []Token{
		{Form: "Pizza Place", Lemma: "Pizza Place", Tag: "NNP"},
		{Form: "serves", Lemma: "serve", Tag: "VB"},
		{Form: "italian", Lemma: "italian", Tag: "JJ"},
		{Form: "food", Lemma: "food", Tag: "NN"},
	}, got)
	// dictionary tokens never reach the tagger's analyzer
	assert.Equal(t, []string{"serves", "italian", "food"}, tagger.Calls)
}

func TestAnalyzeDisambiguationChoosesAmongDictionaryCandidates(t *testing.T) {
	dict := surface.NewDictionary()
	dict.Add("name", "Kolkovna", "kolkovně", "NNFS6")
	dict.Add("name", "Kolkovna", "kolkovně", "NNFS3")
	tagger := newTagger()
	tagger.Prefer["Kolkovně"] = 1
	tagger.Prefer["serves"] = 1

	got := NewAnalyzer(tagger, dict).Analyze("Kolkovně serves")
	assert.Equal(t, []Token{
		{Form: "Kolkovně", Lemma: "Kolkovna", Tag: "NNFS3"},
		{Form: "serves", Lemma: "serf", Tag: "NNS"},
	}, got)
}

func TestAnalyzeConcatenatesSubSentences(t *testing.T) {
	dict := surface.NewDictionary()
	dict.Add(surface.StreetSlot, "Main St", "main st", "NNP")

	got := NewAnalyzer(newTagger(), dict).Analyze("italian food . Main St 42 .")
	require.Len(t, got, 5)
	assert.Equal(t, []string{"italian", "food", ".", "Main St 42", "."}, Forms(got))
	assert.Equal(t, "Main St 42", got[3].Lemma)
}

func TestAnalyzeResetsBuffersBetweenSentences(t *testing.T) {
	a := NewAnalyzer(newTagger(), nil)

	first := a.Analyze("italian food")
	second := a.Analyze("food")
	assert.Len(t, first, 2)
	assert.Equal(t, []Token{{Form: "food", Lemma: "food", Tag: "NN"}}, second)
	assert.Equal(t, "italian", first[0].Form)
}

func TestAnalyzeEmpty(t *testing.T) {
	assert.Empty(t, NewAnalyzer(newTagger(), nil).Analyze(""))
}

func TestAnalyzeDoesNotMutateTaggerLexicon(t *testing.T) {
	tagger := newTagger()
	a := NewAnalyzer(tagger, nil)
	a.Analyze("serves")
	assert.Equal(t, "serve-1", tagger.Lexicon["serves"][0].Lemma)
}
