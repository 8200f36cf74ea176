package prefix

import (
	"maps"
	"sort"
	"strings"
)

// Variables set on every launch.
const (
	EnvArch        = "WINEARCH"
	EnvPrefix      = "WINEPREFIX"
	EnvWine        = "WINE"
	EnvDLLOverride = "WINEDLLOVERRIDES"

	// menuBuilderOverride stops wine from creating desktop menu entries.
	menuBuilderOverride = "winemenubuilder.exe=d"
)

// RuntimeEnv returns the variables synthesized for every launch.
func (p *Prefix) RuntimeEnv() map[string]string {
	return map[string]string{
		EnvArch:        p.Arch(),
		EnvPrefix:      p.WinePrefixDir(),
		EnvWine:        p.RuntimeExecutable(),
		EnvDLLOverride: menuBuilderOverride,
	}
}

// Environment builds the launch environment. Precedence, lowest first:
//
//  1. ambient process environment
//  2. RuntimeEnv
//  3. overrides (per-application env)
//
// The sandbox-home WINEPREFIX rewrite is applied later, on top of all three.
func (p *Prefix) Environment(overrides map[string]string) map[string]string {
	env := parseEnviron(p.environ())
	maps.Copy(env, p.RuntimeEnv())
	maps.Copy(env, overrides)
	return env
}

func parseEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// envList flattens env into sorted KEY=VALUE pairs.
func envList(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
