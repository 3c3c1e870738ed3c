package recipe

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Model output is untrusted: every field is coerced with a default rather
// than validated strictly, so normalization never fails a request.

// asString coerces a decoded JSON value to a string. Numbers and booleans
// render to their literal form; everything else is empty.
func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// asPositiveInt coerces a decoded JSON value to a positive integer. Numeric
// strings are accepted; anything unparseable or non-positive yields def.
func asPositiveInt(v interface{}, def int) int {
	var n int
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return def
		}
		n = int(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return def
		}
		n = int(f)
	default:
		return def
	}
	if n < 1 {
		return def
	}
	return n
}

// asStringSlice coerces a decoded JSON value to a slice of strings. A
// non-array value yields an empty slice, never nil.
func asStringSlice(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, asString(item))
	}
	return out
}
