package surface

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/xeipuuv/gojsonschema"

	"github.com/unhappydog/tgen/internal/i18n"
)

// fileSchema describes the reference file: slot -> canonical value -> list
// of "form tokens<TAB>tag" strings.
const fileSchema = `{
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "additionalProperties": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

// FormatError reports a malformed surface form entry.
type FormatError struct {
	Slot  string
	Value string
	Entry string
	msg   string
}

func (e *FormatError) Error() string {
	return e.msg
}

// Load reads the JSON reference file into a new dictionary. Slots and
// values are added in sorted order so candidate order is reproducible.
func Load(r io.Reader) (ret *Dictionary, err error) {
	var raw []byte
	if raw, err = io.ReadAll(r); err != nil {
		return
	}
	if err = validate(raw); err != nil {
		return
	}

	var data map[string]map[string][]string
	if err = json.Unmarshal(raw, &data); err != nil {
		err = fmt.Errorf(i18n.T("surface_error_decode"), err)
		return
	}

	ret = NewDictionary()
	for _, slot := range sortedKeys(data) {
		values := data[slot]
		for _, value := range sortedKeys(values) {
			for _, entry := range values[value] {
				parts := strings.Split(entry, "\t")
				if len(parts) != 2 {
					err = &FormatError{Slot: slot, Value: value, Entry: entry,
						msg: fmt.Sprintf(i18n.T("surface_error_missing_tab"), entry, slot, value)}
					return nil, err
				}
				ret.Add(slot, value, parts[0], parts[1])
			}
		}
	}
	return ret, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ret, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load surface forms %s", path)
	}
	return ret, nil
}

func validate(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(fileSchema),
		gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf(i18n.T("surface_error_decode"), err)
	}
	if !result.Valid() {
		details := ""
		for _, desc := range result.Errors() {
			details += fmt.Sprintf("\n- %s", desc)
		}
		return &FormatError{msg: fmt.Sprintf(i18n.T("surface_error_schema"), details)}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
