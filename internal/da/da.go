// Package da holds the dialogue act model: items, acts, and abstraction
// instructions, together with their textual notation.
package da

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/unhappydog/tgen/internal/i18n"
)

// Item is a single dialogue act item, e.g. inform(food=italian).
// An empty Slot means the item has no slot; Valued reports whether a value
// was given (an empty value is still a value).
type Item struct {
	Type   string
	Slot   string
	Value  string
	Valued bool
}

// NewItem returns an item with a slot and a value.
func NewItem(typ, slot, value string) Item {
	return Item{Type: typ, Slot: slot, Value: value, Valued: true}
}

func (o Item) String() string {
	if o.Slot == "" {
		return o.Type + "()"
	}
	if !o.Valued {
		return o.Type + "(" + o.Slot + ")"
	}
	quote := ""
	if strings.ContainsAny(o.Value, " :") {
		quote = "'"
	}
	return o.Type + "(" + o.Slot + "=" + quote + o.Value + quote + ")"
}

// DA is a dialogue act: an ordered list of items. Order is significant and
// is preserved by every transformation.
type DA []Item

func (o DA) String() string {
	parts := make([]string, len(o))
	for i, item := range o {
		parts[i] = item.String()
	}
	return strings.Join(parts, "&")
}

// FormatError reports a malformed dialogue act line.
type FormatError struct {
	Text string
	msg  string
}

func (e *FormatError) Error() string {
	return e.msg
}

// Parse reads a DA in the `type(slot=value)&type(slot)&type()` notation.
// An empty line is a format error. Values are NFC-normalized.
func Parse(text string) (ret DA, err error) {
	if text == "" {
		err = &FormatError{Text: text, msg: fmt.Sprintf(i18n.T("da_error_missing_bracket"), text)}
		return nil, err
	}
	// trim the final bracket, split into items
	for _, itemText := range strings.Split(text[:len(text)-1], ")&") {
		typ, svp, found := strings.Cut(itemText, "(")
		if !found {
			err = &FormatError{Text: text, msg: fmt.Sprintf(i18n.T("da_error_missing_bracket"), itemText)}
			return nil, err
		}

		if svp == "" { // e.g. hello()
			ret = append(ret, Item{Type: typ})
			continue
		}

		slot, value, valued := strings.Cut(svp, "=")
		if !valued { // e.g. request(food)
			ret = append(ret, Item{Type: typ, Slot: svp})
			continue
		}
		if slot == "" {
			err = &FormatError{Text: text, msg: fmt.Sprintf(i18n.T("da_error_empty_slot"), itemText)}
			return nil, err
		}
		if strings.HasPrefix(value, `"`) || strings.HasPrefix(value, `'`) {
			value = stripQuotes(value)
		}
		ret = append(ret, NewItem(typ, slot, norm.NFC.String(value)))
	}
	return ret, nil
}

// stripQuotes drops the first and last characters, assumed to be quotes.
func stripQuotes(value string) string {
	if len(value) < 2 {
		return ""
	}
	return value[1 : len(value)-1]
}

// HasValue returns the slot of the first item whose value equals the given
// value. Failing an exact match, it also accepts items whose value is a
// coordination "X and Y" / "X or Y" with the given value as its first or
// last member. Nested or multi-way coordinations match only by their outer
// members.
func (o DA) HasValue(value string) (slot string, ok bool) {
	coordinated := value != "" && value != "?"
	var prefixRe, suffixRe *regexp.Regexp
	for _, item := range o {
		if !item.Valued {
			continue
		}
		if item.Value == value {
			return item.Slot, true
		}
		if !coordinated {
			continue
		}
		if prefixRe == nil {
			quoted := regexp.QuoteMeta(value)
			suffixRe = regexp.MustCompile(`^.* (and|or) ` + quoted + `$`)
			prefixRe = regexp.MustCompile(`^` + quoted + ` (and|or) `)
		}
		if suffixRe.MatchString(item.Value) || prefixRe.MatchString(item.Value) {
			return item.Slot, true
		}
	}
	return "", false
}

// Slots returns the slot names of the DA in item order, skipping slotless items.
func (o DA) Slots() []string {
	var ret []string
	for _, item := range o {
		if item.Slot != "" {
			ret = append(ret, item.Slot)
		}
	}
	return ret
}
