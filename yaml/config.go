// Package yaml loads and prints seolint configuration files.
//
// A configuration file overrides any subset of the defaults:
//
//	thresholds:
//	  titleMin: 45
//	  titleMax: 65
//	entryFiles: [page.mdx, index.md]
//	concurrency: 8
package yaml

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/seolint"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the file at path over the default configuration and
// validates the result. Keys missing from the file keep their defaults;
// unknown keys are rejected. Files ending in .json are decoded as JSON,
// everything else as YAML.
func LoadConfig(path string) (*seolint.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, seolint.Errorf(seolint.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return nil, err
	}
	return ParseConfig(data, filepath.Ext(path) == ".json")
}

// ParseConfig decodes data over the default configuration.
func ParseConfig(data []byte, isJSON bool) (*seolint.Config, error) {
	cfg := seolint.DefaultConfig()

	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, seolint.Errorf(seolint.EINVALID, "parse json config: %v", err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, seolint.Errorf(seolint.EINVALID, "parse yaml config: %v", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteConfig writes cfg to w as YAML.
func WriteConfig(w io.Writer, cfg *seolint.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
