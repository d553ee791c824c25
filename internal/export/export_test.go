package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappydog/tgen/internal/corpus"
	"github.com/unhappydog/tgen/internal/da"
	"github.com/unhappydog/tgen/internal/delex"
	"github.com/unhappydog/tgen/internal/morpho"
	"github.com/unhappydog/tgen/internal/morpho/morphotest"
	"github.com/unhappydog/tgen/internal/surface"
)

var sample = [][]morpho.Token{
	{
		{Form: "Pizza Place", Lemma: "Pizza Place", Tag: "NNP"},
		{Form: "serves", Lemma: "serve", Tag: "VBZ"},
	},
	{},
}

func TestWriteTextPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Plain, sample))
	assert.Equal(t, "Pizza Place serves\n\n", buf.String())
}

func TestWriteTextInterleaved(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Interleaved, sample))
	assert.Equal(t, "Pizza_Place NNP serve VBZ\n\n", buf.String())
}

func TestWriteTextConll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Conll, sample))
	assert.Equal(t,
		"1\tPizza_Place\tPizza_Place\t_\tNNP\t_\t0\t_\t_\t_\n"+
			"2\tserves\tserve\t_\tVBZ\t_\t0\t_\t_\t_\n"+
			"\n"+
			"\n",
		buf.String())
}

func TestFormatNames(t *testing.T) {
	for _, f := range []Format{Plain, Interleaved, Conll} {
		assert.Equal(t, f, ParseFormat(f.String()))
	}
	assert.Equal(t, Plain, ParseFormat("whatever"))
}

func TestWriteDAsAndAbsts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDAs(&buf, []da.DA{
		{da.NewItem("inform", "name", "Pizza Place")},
		{{Type: "hello"}},
	}))
	assert.Equal(t, "inform(name='Pizza Place')\nhello()\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteAbsts(&buf, [][]da.Abst{
		{{Slot: "name", Value: "Pizza Place", Start: 0, End: 1}, {Slot: "food", Value: "italian", Start: 2, End: 3}},
		nil,
	}))
	assert.Equal(t, "name=\"Pizza Place\":0-1\tfood=italian:2-3\n\n", buf.String())
}

func TestWritePart(t *testing.T) {
	dict := surface.NewDictionary()
	dict.Add("name", "Pizza Place", "pizza place", "NNP")
	tagger := morphotest.New(map[string][]surface.Candidate{"serves": {{Lemma: "serve", Tag: "VBZ"}}})
	p := corpus.NewProcessor(morpho.NewAnalyzer(tagger, dict), delex.NewEngine([]string{"name", "food"}))
	require.NoError(t, p.Process(
		strings.NewReader("inform(name=\"Pizza Place\")&inform(food=italian)\nhello()\n"),
		strings.NewReader("Pizza Place serves italian food\nhi\n")))

	prefix := filepath.Join(t.TempDir(), "train")
	warnings, err := WritePart(p, prefix, corpus.Range{Start: 0, End: 1})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	read := func(suffix string) string {
		data, err := os.ReadFile(prefix + suffix)
		require.NoError(t, err)
		return string(data)
	}
	assert.Equal(t, "name=\"Pizza Place\":0-1\tfood=italian:2-3\n", read(AbstSuffix))
	assert.Equal(t, "inform(name='Pizza Place')&inform(food=italian)\n", read(DAsLexSuffix))
	assert.Equal(t, "inform(name=X-name)&inform(food=X-food)\n", read(DAsSuffix))
	assert.Equal(t, "Pizza Place serves italian food\n", read(TextLexSuffix))
	assert.Equal(t, "X-name serves X-food food\n", read(TextSuffix))
	assert.Equal(t, "Pizza_Place NNP serve VBZ italian X food X\n", read(TLsLexSuffix))
	assert.Equal(t, "X-name NNP serve VBZ X-food X food X\n", read(TLsSuffix))
	assert.Contains(t, read(ConllLexSuffix), "1\tPizza_Place\tPizza_Place\t_\tNNP")
	assert.Contains(t, read(ConllSuffix), "3\tX-food\tX-food\t_\tX")
}

func TestWritePartBadPrefix(t *testing.T) {
	p := corpus.NewProcessor(morpho.NewAnalyzer(morphotest.New(nil), nil), delex.NewEngine(nil))
	_, err := WritePart(p, filepath.Join(t.TempDir(), "missing", "dir", "train"), corpus.Range{})
	assert.Error(t, err)
}

func TestCollect(t *testing.T) {
	tagger := morphotest.New(nil)
	p := corpus.NewProcessor(morpho.NewAnalyzer(tagger, nil), delex.NewEngine([]string{"food"}))
	require.NoError(t, p.Process(
		strings.NewReader("inform(food=italian)\ninform(food=thai)\n"),
		strings.NewReader("italian\nnothing here\n")))

	part := Collect(p, corpus.Range{Start: 0, End: 2})
	assert.Equal(t, 2, part.Len())
	assert.Equal(t, "X-food", part.DelexSents[0][0].Form)
	require.Len(t, part.Warnings, 1)
	assert.Equal(t, 1, part.Warnings[0].Index)
	assert.Equal(t, "food", part.Warnings[0].Slot)
}
