// Package cmd provides the CLI commands of the winechad binary.
package cmd

import (
	"fmt"

	"github.com/mfulz/winechad/interfaces/ilauncher"
	"github.com/mfulz/winechad/internal/config"
	launchbackends "github.com/mfulz/winechad/internal/launch/backends"
	"github.com/mfulz/winechad/internal/logging"
	"github.com/mfulz/winechad/internal/prefix"
	"github.com/mfulz/winechad/internal/registry"
)

// reg is built once per invocation by Setup.
var reg *registry.Registry

// Setup loads the configuration, re-initializes logging from it and scans
// the prefix directories.
func Setup(configPath string, dryRun bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Apply(cfg.Logger); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	logging.Log.Debugw("config loaded", "path", cfg.Path, "prefix_dirs", cfg.General.PrefixDirs)

	method := launchbackends.MethodExec
	if dryRun {
		method = launchbackends.MethodDryRun
	}
	backend, err := ilauncher.GetBackend(method)
	if err != nil {
		return err
	}

	reg, err = registry.Scan(cfg.General.PrefixDirs, cfg.General.WineDir, backend)
	return err
}

// lookupPrefix resolves a prefix by name from the scanned registry.
func lookupPrefix(name string) (*prefix.Prefix, error) {
	if reg == nil {
		return nil, fmt.Errorf("prefixes not loaded")
	}
	return reg.GetPrefix(name)
}
