package output

import (
	"strings"

	"gopkg.in/yaml.v3"
)

func renderYAML(entries []PatternEntry) (string, error) {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}
