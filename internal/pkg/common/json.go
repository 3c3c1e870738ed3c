package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseJSON decodes a JSON string into v. Numbers are kept as json.Number so
// callers can coerce model output that mixes numeric and string forms.
func ParseJSON(data string, v interface{}) error {
	return decodeJSON(strings.NewReader(data), v)
}

// ParseJSONBytes decodes a JSON byte slice into v.
func ParseJSONBytes(data []byte, v interface{}) error {
	return decodeJSON(bytes.NewReader(data), v)
}

// DecodeJSON decodes JSON from r into v with the shared decoder settings.
func DecodeJSON(r io.Reader, v interface{}) error {
	return decodeJSON(r, v)
}

func decodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	// Reject trailing data after the document.
	for {
		t, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if t != nil {
			return fmt.Errorf("unexpected extra JSON data")
		}
	}
}

// StripCodeFences removes markdown ```json fences that models wrap JSON
// documents in, and trims surrounding whitespace.
func StripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// ParseModelJSON strips code fences from raw model text and decodes the
// remainder. A failed decode is reported as a ParseError.
func ParseModelJSON(raw string, v interface{}) error {
	if err := ParseJSON(StripCodeFences(raw), v); err != nil {
		return NewParseError(err)
	}
	return nil
}

// ToJSON renders v as a JSON string.
func ToJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
