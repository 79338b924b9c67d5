package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Count is a detection count that never fails to decode. Numbers are truncated toward zero,
// strings use their leading integer ("12abc" is 12), and anything else is 0.
// Negative values are clamped to 0.
type Count int64

func (c *Count) UnmarshalJSON(data []byte) error {
	*c = 0

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*c = clampCount(leadingInt(s))
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
			return nil
		}
		*c = clampCount(int64(f))
	}
	return nil
}

// leadingInt parses an optional sign followed by decimal digits, ignoring leading whitespace
// and whatever follows the digits.
func leadingInt(s string) int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func clampCount(n int64) Count {
	if n < 0 {
		return 0
	}
	return Count(n)
}
