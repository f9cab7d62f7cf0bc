package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// ErrMalformed marks raw data that is not JSON at all.
var ErrMalformed = errors.New("malformed payload")

// SchemaViolation is returned for data that parses but does not conform to the
// contract: missing or unexpected sections, unknown fields, missing or null
// required fields, wrong types, empty identifiers or out-of-range enums.
type SchemaViolation struct {
	Path   string
	Reason string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", e.Path, e.Reason)
}

func violation(path, format string, args ...any) *SchemaViolation {
	return &SchemaViolation{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// Decode parses raw as a complete payload. The result is either a payload that
// satisfies the contract or an error; partial payloads are never returned.
func Decode(raw []byte) (*Payload, error) {
	top, err := decodeObject("$", raw)
	if err != nil {
		return nil, err
	}

	for _, s := range sections {
		if _, ok := top[string(s)]; !ok {
			return nil, violation(string(s), "missing section")
		}
	}
	for _, key := range slices.Sorted(maps.Keys(top)) {
		if !Section(key).IsValid() {
			return nil, violation(key, "unexpected section")
		}
	}

	p := &Payload{}
	for _, s := range sections {
		target, err := p.Section(s)
		if err != nil {
			return nil, err
		}
		if err := decodeSection(s, top[string(s)], target.(validator)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// DecodeSection parses raw as a single section and returns a pointer to it,
// e.g. *Invoices for SectionInvoices.
func DecodeSection(s Section, raw []byte) (any, error) {
	target, err := newSection(s)
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: section %s is not valid JSON", ErrMalformed, s)
	}
	if err := decodeSection(s, raw, target); err != nil {
		return nil, err
	}
	return target, nil
}

// Assemble builds a payload from per-section documents and validates the
// result as a whole.
func Assemble(parts map[Section][]byte) (*Payload, error) {
	obj := make(map[string]json.RawMessage, len(parts))
	for s, raw := range parts {
		if !json.Valid(raw) {
			return nil, fmt.Errorf("%w: section %s is not valid JSON", ErrMalformed, s)
		}
		obj[string(s)] = raw
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("assemble payload: %w", err)
	}
	return Decode(raw)
}

func decodeObject(path string, raw []byte) (map[string]json.RawMessage, error) {
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrMalformed, path)
	}
	if !isObject(raw) {
		return nil, violation(path, "expected a JSON object")
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, violation(path, "%v", err)
	}
	return obj, nil
}

func decodeSection(s Section, raw []byte, target validator) error {
	if !isObject(raw) {
		return violation(string(s), "expected a JSON object")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return violation(string(s), "%v", err)
	}
	if err := requirePresent(string(s), raw, reflect.TypeOf(target)); err != nil {
		return err
	}
	return target.validate(string(s))
}

func isObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
