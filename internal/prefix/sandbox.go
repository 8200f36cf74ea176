package prefix

import (
	"fmt"
	"path/filepath"
)

const (
	firejailBinary = "firejail"

	// nvidia's userspace driver reads /sys/module, which firejail blacklists.
	firejailGPUOverride = "--noblacklist=/sys/module"
	firejailNoProfile   = "--noprofile"
)

// wrapSandbox prefixes argv with the firejail invocation. In sandbox-home
// mode dir must lie inside the jail home; it is translated to the same
// location below the private home and WINEPREFIX is pointed there.
func (p *Prefix) wrapSandbox(argv []string, dir string, env map[string]string) ([]string, error) {
	wrapped := []string{firejailBinary, firejailGPUOverride}

	if p.Sandbox.Home {
		jail := p.JailHome()
		rel, ok := within(jail, dir)
		if !ok {
			return nil, invalid(p.subject(), "working directory %s is outside the sandbox home %s", dir, jail)
		}
		home, err := p.homeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		wrapped = append(wrapped,
			"--private="+jail,
			"--private-cwd="+filepath.Join(home, rel),
		)
		env[EnvPrefix] = filepath.Join(home, jailPrefixDir)
	}

	if p.Sandbox.Profile != "" {
		wrapped = append(wrapped, "--profile="+p.Sandbox.Profile)
	} else {
		wrapped = append(wrapped, firejailNoProfile)
	}

	wrapped = append(wrapped, "--")
	return append(wrapped, argv...), nil
}
