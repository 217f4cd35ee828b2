package paging

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidCursor is returned when a cursor token cannot be decoded.
var ErrInvalidCursor = errors.New("invalid cursor")

// Boundary maps a sort field name to the value of the last item on a page.
type Boundary map[string]any

// EncodeCursor encodes a boundary into an opaque cursor token.
// Keys are serialized in sorted order so equal boundaries yield equal tokens.
func EncodeCursor(b Boundary) (string, error) {
	raw, err := json.Marshal(map[string]any(b))
	if err != nil {
		return "", fmt.Errorf("failed to encode cursor: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeCursor decodes a cursor token produced by EncodeCursor.
func DecodeCursor(token string) (Boundary, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if m == nil || dec.More() {
		return nil, fmt.Errorf("%w: payload is not a single object", ErrInvalidCursor)
	}

	b := make(Boundary, len(m))
	for k, v := range m {
		b[k] = normalizeValue(v)
	}
	return b, nil
}

// normalizeValue turns json.Number into int64 when integral, float64 otherwise.
func normalizeValue(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
