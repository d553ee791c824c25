// Package lexicon is a lexicon-driven morpho.Tagger. The model is a
// tab-separated file of known analyses with optional corpus counts:
//
//	form<TAB>lemma<TAB>tag[<TAB>count]
//
// Disambiguation picks the most frequent analysis of each token.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/unhappydog/tgen/internal/i18n"
	"github.com/unhappydog/tgen/internal/morpho"
	"github.com/unhappydog/tgen/internal/surface"
)

// Tags given to tokens the lexicon does not know.
const (
	NumberTag      = "C=-------------"
	PunctuationTag = "Z:-------------"
	UnknownTag     = "X@-------------"
)

var (
	tokenRe    = regexp.MustCompile(`\d+|[\p{L}\p{M}\d]+(?:['’\-][\p{L}\p{M}\d]+)*|[^\s\p{L}\p{M}\d]`)
	numberRe   = regexp.MustCompile(`^\d+$`)
	sentenceRe = regexp.MustCompile(`^[.!?]$`)
)

type analysis struct {
	surface.Candidate
	count int
}

// Tagger holds the lexicon. It is not safe for concurrent use.
type Tagger struct {
	entries map[string][]analysis
	lower   cases.Caser
}

var _ morpho.Tagger = (*Tagger)(nil)

func New() *Tagger {
	return &Tagger{
		entries: make(map[string][]analysis),
		lower:   cases.Lower(language.Und),
	}
}

// Add registers an analysis of form with the given corpus count.
func (o *Tagger) Add(form, lemma, tag string, count int) {
	form = norm.NFC.String(form)
	o.entries[form] = append(o.entries[form], analysis{
		Candidate: surface.Candidate{Lemma: norm.NFC.String(lemma), Tag: tag},
		count:     count,
	})
}

// Load reads a lexicon model. Blank lines and lines starting with # are skipped.
func Load(r io.Reader) (*Tagger, error) {
	t := New()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			return nil, fmt.Errorf(i18n.T("tagger_error_fields"), lineNum, len(parts))
		}
		count := 1
		if len(parts) > 3 {
			n, err := strconv.Atoi(strings.TrimSpace(parts[3]))
			if err != nil || n < 0 {
				return nil, fmt.Errorf(i18n.T("tagger_error_count"), lineNum, parts[3])
			}
			count = n
		}
		t.Add(parts[0], parts[1], parts[2], count)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Tagger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load tagger model %s", path)
	}
	return t, nil
}

// Tokenize splits NFC-normalized text into words, numbers and punctuation,
// closing a sub-sentence after each ".", "!" or "?".
func (o *Tagger) Tokenize(text string) (ret [][]string) {
	var cur []string
	for _, tok := range tokenRe.FindAllString(norm.NFC.String(text), -1) {
		cur = append(cur, tok)
		if sentenceRe.MatchString(tok) {
			ret = append(ret, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		ret = append(ret, cur)
	}
	return ret
}

// Analyze looks the form up as is, then lowercased; unknown forms get a
// single guessed analysis.
func (o *Tagger) Analyze(form string) []surface.Candidate {
	found, ok := o.entries[form]
	if !ok {
		found, ok = o.entries[o.lower.String(form)]
	}
	if !ok {
		return []surface.Candidate{guess(form)}
	}
	ret := make([]surface.Candidate, len(found))
	for i, a := range found {
		ret[i] = a.Candidate
	}
	return ret
}

func guess(form string) surface.Candidate {
	switch {
	case numberRe.MatchString(form):
		return surface.Candidate{Lemma: form, Tag: NumberTag}
	case isPunct(form):
		return surface.Candidate{Lemma: form, Tag: PunctuationTag}
	default:
		return surface.Candidate{Lemma: form, Tag: UnknownTag}
	}
}

func isPunct(form string) bool {
	if form == "" {
		return false
	}
	for _, r := range form {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// RawLemma strips technical lemma suffixes: a "-N" sense number, "_..."
// comments and "`..." references, e.g. "pes-1_^(zvíře)" -> "pes".
func (o *Tagger) RawLemma(lemma string) string {
	for i := 1; i < len(lemma); i++ {
		switch lemma[i] {
		case '_', '`':
			return lemma[:i]
		case '-':
			if i+1 < len(lemma) && lemma[i+1] >= '0' && lemma[i+1] <= '9' {
				return lemma[:i]
			}
		}
	}
	return lemma
}

// Disambiguate picks the candidate with the highest lexicon count for each
// token; candidates unknown to the lexicon count zero and ties keep the
// earlier candidate.
func (o *Tagger) Disambiguate(forms []string, analyses [][]surface.Candidate) []int {
	ret := make([]int, len(forms))
	for i, form := range forms {
		best := -1
		for j, cand := range analyses[i] {
			if c := o.count(form, cand); c > best {
				best = c
				ret[i] = j
			}
		}
	}
	return ret
}

func (o *Tagger) count(form string, cand surface.Candidate) int {
	found, ok := o.entries[form]
	if !ok {
		found = o.entries[o.lower.String(form)]
	}
	for _, a := range found {
		if a.Tag == cand.Tag && o.RawLemma(a.Lemma) == cand.Lemma {
			return a.count
		}
	}
	return 0
}
