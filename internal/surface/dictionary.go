// Package surface maps known multi-word proper names to canonical lemmas,
// overriding the general morphological analysis of their tokens.
package surface

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Placeholder stands for a number inside phrases and canonical lemmas.
const Placeholder = "_"

// StreetSlot is the slot whose phrases are followed by a house number.
const StreetSlot = "street"

const keySep = "\x1f"

// Candidate is one (lemma, tag) analysis offered for a matched phrase.
type Candidate struct {
	Lemma string
	Tag   string
}

// Dictionary maps normalized token tuples to their candidate analyses.
// Phrases, values and looked-up tokens are lowercased and NFC-normalized.
// It is not safe for concurrent use.
type Dictionary struct {
	entries   map[string][]Candidate
	slotCount map[string]int
	maxLen    int
	lower     cases.Caser
}

func NewDictionary() *Dictionary {
	return &Dictionary{
		entries:   make(map[string][]Candidate),
		slotCount: make(map[string]int),
		lower:     cases.Lower(language.Und),
	}
}

// Add registers one surface form of a canonical value. Street phrases get
// a trailing number placeholder, mirrored in the canonical value.
func (o *Dictionary) Add(slot, value, phrase, tag string) {
	toks := strings.Split(norm.NFC.String(o.lower.String(phrase)), " ")
	lemma := norm.NFC.String(value)
	if slot == StreetSlot {
		lemma += " " + Placeholder
		toks = append(toks, Placeholder)
	}
	if len(toks) > o.maxLen {
		o.maxLen = len(toks)
	}
	key := strings.Join(toks, keySep)
	o.entries[key] = append(o.entries[key], Candidate{Lemma: lemma, Tag: tag})
	o.slotCount[slot]++
}

// MaxLen returns the length in tokens of the longest phrase.
func (o *Dictionary) MaxLen() int {
	return o.maxLen
}

// Len returns the number of distinct phrases.
func (o *Dictionary) Len() int {
	return len(o.entries)
}

// SlotCounts returns the number of surface forms registered per slot.
func (o *Dictionary) SlotCounts() map[string]int {
	ret := make(map[string]int, len(o.slotCount))
	for slot, n := range o.slotCount {
		ret[slot] = n
	}
	return ret
}

// MatchLongest looks for the longest known phrase at the head of the queue.
// On a hit it consumes the phrase tokens and returns their original text
// with the candidates, numbers substituted for placeholders. On a miss the
// queue is left untouched.
func (o *Dictionary) MatchLongest(q *Queue) (text string, cands []Candidate, ok bool) {
	for n := min(o.maxLen, q.Len()); n > 0; n-- {
		window := q.Peek(n)
		found, hit := o.entries[o.key(window)]
		if !hit {
			continue
		}

		var nums []string
		for _, tok := range window {
			if isNumber(tok) {
				nums = append(nums, tok)
			}
		}
		cands = make([]Candidate, len(found))
		for i, cand := range found {
			lemma := cand.Lemma
			for _, num := range nums {
				lemma = strings.Replace(lemma, Placeholder, num, 1)
			}
			cands[i] = Candidate{Lemma: lemma, Tag: cand.Tag}
		}

		text = strings.Join(window, " ")
		q.Drop(n)
		return text, cands, true
	}
	return "", nil, false
}

func (o *Dictionary) key(window []string) string {
	keys := make([]string, len(window))
	for i, tok := range window {
		if isNumber(tok) {
			keys[i] = Placeholder
		} else {
			keys[i] = norm.NFC.String(o.lower.String(tok))
		}
	}
	return strings.Join(keys, keySep)
}

func isNumber(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}
