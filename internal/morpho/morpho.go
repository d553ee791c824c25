// Package morpho turns raw sentences into (form, lemma, tag) tokens,
// preferring surface form dictionary analyses for known proper names and
// delegating everything else to a Tagger.
package morpho

import (
	"github.com/unhappydog/tgen/internal/log"
	"github.com/unhappydog/tgen/internal/surface"
)

// Token is one analyzed token. Form may span several raw tokens when it
// came from the surface form dictionary.
type Token struct {
	Form  string
	Lemma string
	Tag   string
}

// Tagger is the morphological analysis capability the analyzer relies on.
// Implementations are stateful and not reentrant.
type Tagger interface {
	// Tokenize splits text into sub-sentences of raw tokens.
	Tokenize(text string) [][]string
	// Analyze returns all candidate analyses of a single raw token. The
	// returned slice is owned by the caller.
	Analyze(form string) []surface.Candidate
	// RawLemma shortens a lemma to its plain form.
	RawLemma(lemma string) string
	// Disambiguate picks one candidate index per token position.
	Disambiguate(forms []string, analyses [][]surface.Candidate) []int
}

// Analyzer combines a surface form dictionary with a tagger. It owns its
// working buffers and must not be shared between goroutines.
type Analyzer struct {
	tagger Tagger
	dict   *surface.Dictionary

	forms    []string
	analyses [][]surface.Candidate
}

func NewAnalyzer(tagger Tagger, dict *surface.Dictionary) *Analyzer {
	if dict == nil {
		dict = surface.NewDictionary()
	}
	return &Analyzer{tagger: tagger, dict: dict}
}

// Analyze tokenizes and tags a sentence line. Results of all sub-sentences
// are concatenated in order.
func (o *Analyzer) Analyze(sent string) (ret []Token) {
	for _, raw := range o.tagger.Tokenize(sent) {
		o.forms = o.forms[:0]
		o.analyses = o.analyses[:0]

		queue := surface.NewQueue(raw)
		for queue.Len() > 0 {
			if form, cands, ok := o.dict.MatchLongest(queue); ok {
				log.Debug(log.Trace, "surface form %q -> %v\n", form, cands)
				o.push(form, cands)
				continue
			}
			form := queue.Pop()
			cands := o.tagger.Analyze(form)
			if len(cands) == 0 {
				cands = []surface.Candidate{{Lemma: form}}
			}
			for i := range cands {
				cands[i].Lemma = o.tagger.RawLemma(cands[i].Lemma)
			}
			o.push(form, cands)
		}

		indices := o.tagger.Disambiguate(o.forms, o.analyses)
		for i, form := range o.forms {
			chosen := o.analyses[i][indices[i]]
			ret = append(ret, Token{Form: form, Lemma: chosen.Lemma, Tag: chosen.Tag})
		}
	}
	return ret
}

func (o *Analyzer) push(form string, cands []surface.Candidate) {
	o.forms = append(o.forms, form)
	o.analyses = append(o.analyses, cands)
}

// Forms returns the surface forms of tokens.
func Forms(tokens []Token) []string {
	ret := make([]string, len(tokens))
	for i, tok := range tokens {
		ret[i] = tok.Form
	}
	return ret
}
