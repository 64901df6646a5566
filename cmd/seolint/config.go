package main

import (
	"fmt"

	"github.com/fwojciec/seolint"
	"github.com/fwojciec/seolint/yaml"
)

// Run executes the config command.
func (c *ConfigCmd) Run(deps *Dependencies) error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolint.ErrorMessage(err))
		return err
	}
	return yaml.WriteConfig(deps.Stdout, cfg)
}
