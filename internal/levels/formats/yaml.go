package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var tl textLevel
	if err := yaml.Unmarshal(data, &tl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return tl.toLevel(), nil
}
