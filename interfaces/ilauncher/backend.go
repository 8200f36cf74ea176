// Package ilauncher defines the process-launch capability used by prefixes.
// Each backend (e.g. exec, dryrun) must implement Backend.
package ilauncher

import (
	"fmt"
	"sort"
	"strings"
)

// Command is a fully composed external invocation.
type Command struct {
	Argv []string // Argv[0] is the executable
	Dir  string   // working directory for the spawned process
	Env  []string // complete environment as KEY=VALUE pairs
}

// Backend spawns a Command and blocks until it exits.
type Backend interface {
	Method() string
	Spawn(cmd Command) error
}

// backendRegistry stores all registered backend types by method name.
var backendRegistry = map[string]Backend{}

// RegisterBackend adds a launch backend to the registry.
func RegisterBackend(b Backend) {
	if _, exists := backendRegistry[b.Method()]; exists {
		panic(fmt.Sprintf("launch backend already registered: %s", b.Method()))
	}
	backendRegistry[b.Method()] = b
}

// GetBackend returns the backend registered under method n.
func GetBackend(n string) (Backend, error) {
	backend, ok := backendRegistry[n]
	if !ok {
		return nil, fmt.Errorf("unknown launch backend: %s (available: %s)", n, strings.Join(Methods(), ", "))
	}
	return backend, nil
}

// Methods lists the registered backend names in sorted order.
func Methods() []string {
	names := make([]string, 0, len(backendRegistry))
	for name := range backendRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
