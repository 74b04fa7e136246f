package config

import (
	"fmt"
	"os"
)

// WriteTemplate writes the default config to path. An existing file is
// kept unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(Template), 0o600)
}

const Template = `# nesting limit for operator packets
max_depth = 512
# accept bit-length groups whose children run past the declared length
allow_overrun = false
# versions: log and skip lines that fail to decode
skip_invalid = false
# unset keeps BITS_LOG_LEVEL or the runtime default
# log_level = "info"
`
