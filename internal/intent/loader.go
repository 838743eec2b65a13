package intent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a rule table from a YAML file and validates it.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", LogPrefixLoadFile, err)
	}
	return Parse(data)
}

// Parse decodes a YAML rule table. Missing emergency keywords fall back to
// the built-in list.
func Parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("%s: decode: %w", LogPrefixLoadFile, err)
	}
	if len(t.Emergency) == 0 {
		t.Emergency = append([]string(nil), DefaultEmergencyKeywords...)
	}
	if err := t.Validate(); err != nil {
		return Table{}, fmt.Errorf("%s: %w", LogPrefixLoadFile, err)
	}
	return t, nil
}
