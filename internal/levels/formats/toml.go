package formats

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ParseTOML parses a TOML level file. Unknown keys are rejected so typos in
// hand-written files surface instead of silently spawning defaults.
func ParseTOML(data []byte) (Level, error) {
	var tl textLevel
	md, err := toml.Decode(string(data), &tl)
	if err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Level{}, fmt.Errorf("toml decode: unknown keys: %s", strings.Join(keys, ", "))
	}
	return tl.toLevel(), nil
}
