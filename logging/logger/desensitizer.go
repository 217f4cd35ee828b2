package logger

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/sirupsen/logrus"
)

// DesensitizeOptions controls which values are masked.
type DesensitizeOptions struct {
	SensitiveFields []string
	MaskChar        string
	MaskLength      int
}

// DefaultDesensitizeOptions masks credentials and secrets.
var DefaultDesensitizeOptions = DesensitizeOptions{
	SensitiveFields: []string{"password", "hashed_password", "secret", "token", "authorization", "api_key"},
	MaskChar:        "*",
	MaskLength:      8,
}

// Desensitizer handles sensitive data masking in log fields and payloads
type Desensitizer struct {
	opts DesensitizeOptions
	mask string
}

// NewDesensitizer creates a new desensitizer instance, nil means defaults.
func NewDesensitizer(opts *DesensitizeOptions) *Desensitizer {
	o := DefaultDesensitizeOptions
	if opts != nil {
		o = *opts
	}
	if o.MaskChar == "" {
		o.MaskChar = "*"
	}
	if o.MaskLength <= 0 {
		o.MaskLength = 8
	}
	return &Desensitizer{opts: o, mask: strings.Repeat(o.MaskChar, o.MaskLength)}
}

// DesensitizeFields processes log fields and masks sensitive data
func (d *Desensitizer) DesensitizeFields(fields logrus.Fields) logrus.Fields {
	result := make(logrus.Fields, len(fields))
	for key, value := range fields {
		result[key] = d.desensitizeValue(key, value, 0)
	}
	return result
}

// DesensitizeJSON masks a raw JSON document, returning it unchanged when it
// does not parse.
func (d *Desensitizer) DesensitizeJSON(raw []byte) string {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return string(raw)
	}
	out, err := json.Marshal(d.desensitizeValue("", doc, 0))
	if err != nil {
		return string(raw)
	}
	return string(out)
}

// desensitizeValue processes a single value recursively
func (d *Desensitizer) desensitizeValue(key string, value any, depth int) any {
	if value == nil || depth > 10 {
		return value
	}
	if d.isSensitiveField(key) {
		return d.mask
	}

	switch v := value.(type) {
	case string, bool, float64, float32, int, int64, int32, uint, uint64, uint32, error:
		return v
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = d.desensitizeValue(k, item, depth+1)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = d.desensitizeValue("", item, depth+1)
		}
		return out
	}

	switch reflect.Indirect(reflect.ValueOf(value)).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return d.processViaJSON(value, depth)
	default:
		return value
	}
}

// processViaJSON handles complex types via JSON marshaling
func (d *Desensitizer) processViaJSON(value any, depth int) any {
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return value
	}
	var result any
	if err := json.Unmarshal(jsonBytes, &result); err != nil {
		return value
	}
	return d.desensitizeValue("", result, depth+1)
}

// isSensitiveField checks if field name contains sensitive keywords
func (d *Desensitizer) isSensitiveField(fieldName string) bool {
	if fieldName == "" {
		return false
	}
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range d.opts.SensitiveFields {
		if strings.Contains(lowerName, strings.ToLower(sensitive)) {
			return true
		}
	}
	return false
}
