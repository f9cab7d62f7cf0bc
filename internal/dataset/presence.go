package dataset

import (
	"bytes"
	"encoding/json"
	"reflect"
	"slices"
	"strings"
)

// requirePresent walks raw alongside the Go type t and reports the first field
// that t declares without omitempty but raw leaves out or sets to null.
// Decoding alone cannot tell a missing record from one holding zero values.
func requirePresent(path string, raw json.RawMessage, t reflect.Type) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return violation(path, "expected a JSON object")
		}
		for i := range t.NumField() {
			f := t.Field(i)
			name, optional := jsonField(f)
			if name == "" {
				continue
			}
			fieldPath := path + "." + name
			value, ok := obj[name]
			if optional && (!ok || isNull(value)) {
				continue
			}
			switch {
			case !ok:
				return violation(fieldPath, "required field is missing")
			case isNull(value):
				return violation(fieldPath, "required field is null")
			}
			if err := requirePresent(fieldPath, value, f.Type); err != nil {
				return err
			}
		}
	case reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return violation(path, "expected a JSON array")
		}
		for i, item := range items {
			if isNull(item) {
				return violation(at(path, i), "list element is null")
			}
			if err := requirePresent(at(path, i), item, t.Elem()); err != nil {
				return err
			}
		}
	}
	return nil
}

func jsonField(f reflect.StructField) (name string, optional bool) {
	if !f.IsExported() {
		return "", false
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, slices.Contains(strings.Split(opts, ","), "omitempty")
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
