package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider reads env-style configuration files such as
// [DefaultConfigFile] by means of godotenv.
type GodotenvProvider struct{}

// Read parses the KEY=value lines of the given files into a map, with later
// files overriding earlier ones.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return data, fmt.Errorf("(config-read) %w", err)
	}

	return data, nil
}
