package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRVMConfigPath maps logical ruby names to rvm version strings
const DefaultRVMConfigPath = "config/aruba-rvm.yml"

// LoadRVMAliases reads the alias map at path. A missing file yields no aliases.
func LoadRVMAliases(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var aliases map[string]string
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return aliases, nil
}
