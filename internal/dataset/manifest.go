package dataset

import (
	"encoding/json"
	"maps"
	"slices"
)

// Manifest maps every section to the file that holds it. This is the split
// layout where api.json only names the per-section documents.
type Manifest map[Section]string

// ParseManifest reports whether raw is a manifest, i.e. a non-empty JSON object
// whose values are all strings. A full payload never matches because its
// sections are objects.
func ParseManifest(raw []byte) (Manifest, bool) {
	if !isObject(raw) {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || len(obj) == 0 {
		return nil, false
	}
	m := make(Manifest, len(obj))
	for key, value := range obj {
		var file string
		if err := json.Unmarshal(value, &file); err != nil {
			return nil, false
		}
		m[Section(key)] = file
	}
	return m, true
}

// Validate checks that the manifest names a file for each section and nothing else.
func (m Manifest) Validate() error {
	for _, s := range sections {
		file, ok := m[s]
		if !ok {
			return violation(string(s), "missing section in manifest")
		}
		if err := required(string(s), file); err != nil {
			return err
		}
	}
	for _, s := range slices.Sorted(maps.Keys(m)) {
		if !s.IsValid() {
			return violation(string(s), "unexpected section in manifest")
		}
	}
	return nil
}
