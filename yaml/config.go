// Package yaml loads validator configuration from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/distcheck"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file looked up in the working
// directory when no explicit path is given.
const DefaultConfigFile = "distcheck.yaml"

// LoadConfig reads the configuration file at path. When optional is set, a
// missing file yields the zero configuration instead of an error.
func LoadConfig(path string, optional bool) (*distcheck.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return &distcheck.Config{}, nil
		}
		return nil, distcheck.Errorf(distcheck.ENOTFOUND, "cannot open config file %s: %v", path, err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig parses configuration from r. Unknown keys are ignored.
// Returns EINVALID for malformed YAML or invalid thresholds.
func DecodeConfig(r io.Reader) (*distcheck.Config, error) {
	var cfg distcheck.Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, distcheck.Errorf(distcheck.EINVALID, "invalid config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
