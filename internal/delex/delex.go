// Package delex aligns analyzed sentences with their dialogue acts and
// replaces slot values by slot placeholders in both.
package delex

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/unhappydog/tgen/internal/da"
	"github.com/unhappydog/tgen/internal/i18n"
	"github.com/unhappydog/tgen/internal/log"
	"github.com/unhappydog/tgen/internal/morpho"
)

// PlaceholderPrefix starts every slot placeholder, e.g. X-food.
const PlaceholderPrefix = "X-"

// Values that never need to appear in the text.
var silentValues = []string{"none", "dont_care"}

// Placeholder returns the placeholder standing for values of slot.
func Placeholder(slot string) string {
	return PlaceholderPrefix + slot
}

// Warning reports a slot that should have been delexicalized in the text
// of an example but was not found there.
type Warning struct {
	Slot  string
	Index int
	DA    string
	Text  string
}

func (w Warning) String() string {
	return fmt.Sprintf(i18n.T("delex_warning_uncovered"), w.Slot, w.Index, w.DA, w.Text)
}

// Engine delexicalizes the slots it was configured with.
type Engine struct {
	slots map[string]bool
}

// NewEngine returns an engine abstracting the given slots.
func NewEngine(slots []string) *Engine {
	return &Engine{
		slots: lo.SliceToMap(lo.Compact(slots), func(slot string) (string, bool) {
			return slot, true
		}),
	}
}

// Abstractable reports whether values of slot are delexicalized.
func (o *Engine) Abstractable(slot string) bool {
	return o.slots[slot]
}

// Abstractions returns one instruction for every token whose lemma is a
// value of the DA. Values are assumed to occupy a single token; multi-token
// spans are not detected.
func (o *Engine) Abstractions(sent []morpho.Token, d da.DA) (ret []da.Abst) {
	for i, tok := range sent {
		if slot, ok := d.HasValue(tok.Lemma); ok {
			log.Debug(log.Trace, "token %d %q -> %s\n", i, tok.Lemma, slot)
			ret = append(ret, da.Abst{Slot: slot, Value: tok.Lemma, Start: i, End: i + 1})
		}
	}
	return ret
}

// Text replaces the form and lemma of tokens carrying a value of an
// abstractable slot by the slot placeholder. It warns about every
// abstractable DA item with a real value whose slot was never replaced;
// idx is the example index used in those warnings.
func (o *Engine) Text(idx int, sent []morpho.Token, d da.DA) (ret []morpho.Token, warnings []Warning) {
	ret = make([]morpho.Token, len(sent))
	covered := map[string]bool{}
	for i, tok := range sent {
		slot, ok := d.HasValue(tok.Lemma)
		if ok && o.slots[slot] {
			ret[i] = morpho.Token{Form: Placeholder(slot), Lemma: Placeholder(slot), Tag: tok.Tag}
			covered[slot] = true
			continue
		}
		ret[i] = tok
	}

	for _, item := range d {
		if !o.slots[item.Slot] || !hasRealValue(item) || covered[item.Slot] {
			continue
		}
		warnings = append(warnings, Warning{
			Slot:  item.Slot,
			Index: idx,
			DA:    d.String(),
			Text:  strings.Join(morpho.Forms(sent), " "),
		})
	}
	return ret, warnings
}

// DA replaces the values of abstractable slots by placeholders. Item count
// and order are kept.
func (o *Engine) DA(d da.DA) da.DA {
	return lo.Map(d, func(item da.Item, _ int) da.Item {
		if o.slots[item.Slot] && item.Valued && item.Value != "" {
			item.Value = Placeholder(item.Slot)
		}
		return item
	})
}

func hasRealValue(item da.Item) bool {
	return item.Valued && !lo.Contains(silentValues, item.Value)
}
