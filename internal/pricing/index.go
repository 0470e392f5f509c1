package pricing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Index is an optional positional handle into a catalog list. The zero value
// is unset.
type Index struct {
	value int
	set   bool
}

// NoIndex is the unset handle.
var NoIndex = Index{}

// At returns a handle pointing at position i.
func At(i int) Index {
	return Index{value: i, set: true}
}

func (i Index) Get() (int, bool) {
	return i.value, i.set
}

func (i Index) IsSet() bool {
	return i.set
}

func (i Index) String() string {
	if !i.set {
		return ""
	}
	return strconv.Itoa(i.value)
}

// MarshalJSON writes null for an unset handle.
func (i Index) MarshalJSON() ([]byte, error) {
	if !i.set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(i.value)), nil
}

// UnmarshalJSON accepts a number, null, or a string ("" meaning unset).
func (i *Index) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = NoIndex
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*i = NoIndex
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("index %q is not an integer", raw)
		}
		*i = At(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("index %s is not an integer", data)
	}
	*i = At(n)
	return nil
}
