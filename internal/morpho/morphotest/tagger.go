// Package morphotest provides a deterministic morpho.Tagger for tests.
package morphotest

import (
	"strings"

	"github.com/unhappydog/tgen/internal/surface"
)

// Tagger splits on whitespace, ends a sub-sentence after ".", "!" or "?",
// and analyzes tokens from a fixed table. Unknown tokens get themselves as
// lemma and tag "X". Lemmas in the table may carry a "-N" sense suffix,
// which RawLemma strips.
type Tagger struct {
	Lexicon map[string][]surface.Candidate
	// Prefer maps a form to the candidate index Disambiguate picks for it.
	Prefer map[string]int

	// Calls records every form passed to Analyze.
	Calls []string
}

func New(lexicon map[string][]surface.Candidate) *Tagger {
	return &Tagger{Lexicon: lexicon, Prefer: map[string]int{}}
}

func (o *Tagger) Tokenize(text string) (ret [][]string) {
	var cur []string
	for _, tok := range strings.Fields(text) {
		cur = append(cur, tok)
		if tok == "." || tok == "!" || tok == "?" {
			ret = append(ret, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		ret = append(ret, cur)
	}
	return ret
}

func (o *Tagger) Analyze(form string) []surface.Candidate {
	o.Calls = append(o.Calls, form)
	if cands, ok := o.Lexicon[form]; ok {
		return append([]surface.Candidate(nil), cands...)
	}
	return []surface.Candidate{{Lemma: form, Tag: "X"}}
}

func (o *Tagger) RawLemma(lemma string) string {
	i := strings.LastIndex(lemma, "-")
	if i <= 0 || i == len(lemma)-1 {
		return lemma
	}
	for _, r := range lemma[i+1:] {
		if r < '0' || r > '9' {
			return lemma
		}
	}
	return lemma[:i]
}

func (o *Tagger) Disambiguate(forms []string, analyses [][]surface.Candidate) []int {
	ret := make([]int, len(forms))
	for i, form := range forms {
		if idx, ok := o.Prefer[form]; ok && idx < len(analyses[i]) {
			ret[i] = idx
		}
	}
	return ret
}
