package da

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unhappydog/tgen/internal/i18n"
)

// Abst is an abstraction instruction: the value of Slot was found at the
// token span [Start, End) of the aligned sentence.
type Abst struct {
	Slot  string
	Value string
	Start int
	End   int
}

func (o Abst) String() string {
	quote := ""
	if strings.ContainsAny(o.Value, " :") {
		quote = `"`
	}
	return o.Slot + "=" + quote + o.Value + quote + ":" + strconv.Itoa(o.Start) + "-" + strconv.Itoa(o.End)
}

// ParseAbst reads an instruction written by Abst.String.
func ParseAbst(text string) (ret Abst, err error) {
	slot, rest, ok := strings.Cut(text, "=")
	colon := strings.LastIndex(rest, ":")
	if !ok || slot == "" || colon < 0 {
		err = &FormatError{Text: text, msg: fmt.Sprintf(i18n.T("da_error_abst_format"), text)}
		return
	}
	value, span := rest[:colon], rest[colon+1:]
	if strings.HasPrefix(value, `"`) {
		value = stripQuotes(value)
	}

	startText, endText, ok := strings.Cut(span, "-")
	start, startErr := strconv.Atoi(startText)
	end, endErr := strconv.Atoi(endText)
	if !ok || startErr != nil || endErr != nil || end < start {
		err = &FormatError{Text: text, msg: fmt.Sprintf(i18n.T("da_error_abst_format"), text)}
		return
	}
	return Abst{Slot: slot, Value: value, Start: start, End: end}, nil
}

// FormatAbsts renders the instructions of one example as a tab-separated line.
func FormatAbsts(absts []Abst) string {
	parts := make([]string, len(absts))
	for i, abst := range absts {
		parts[i] = abst.String()
	}
	return strings.Join(parts, "\t")
}
