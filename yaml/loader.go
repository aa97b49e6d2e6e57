// Package yaml loads bundle configuration files with gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path on top of atbs.DefaultConfig.
// Keys absent from the file keep their default values; unknown keys are
// rejected. The result is validated before it is returned.
func Load(path string) (*atbs.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, atbs.Errorf(atbs.ENOTFOUND, "config file %s not found", path)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes configuration data on top of atbs.DefaultConfig.
func Parse(data []byte) (*atbs.Config, error) {
	cfg := atbs.DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, atbs.Errorf(atbs.EINVALID, "invalid config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
