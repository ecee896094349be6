// Package yaml loads harvest configuration files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/harvest"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at path on top of base. Keys missing from
// the file keep their base values, lists in the file replace base lists, and
// durations are written as strings such as "15s". Unknown keys are rejected.
func LoadConfig(path string, base harvest.Config) (harvest.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	cfg := base
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, harvest.Errorf(harvest.EINVALID, "failed to parse config file %s: %v", path, err)
	}

	return cfg, nil
}
