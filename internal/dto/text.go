package dto

import (
	"bytes"
	"encoding/json"
)

// Text is a free-form string field that also accepts JSON numbers and booleans
// (kept as their literal text). null, arrays and objects decode to "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = ""

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*t = Text(s)
		}
	case '{', '[', 'n':
	default:
		*t = Text(data)
	}
	return nil
}
