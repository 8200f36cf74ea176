package prefix

import (
	"errors"

	"github.com/mfulz/winechad/interfaces/ilauncher"
	"github.com/mfulz/winechad/internal/logging"
)

// Executables shipped with wine.
const (
	TaskManagerExe = "taskmgr.exe"
	ControlExe     = "control.exe"
	CommandExe     = "cmd.exe"
	BootExe        = "wineboot.exe"
	ConfigExe      = "winecfg.exe"
	RegeditExe     = "regedit.exe"

	// WinetricksBinary installs common runtime dependencies into a prefix.
	WinetricksBinary = "winetricks"
)

// RunWine starts a Windows executable given by its virtual path with the
// prefix's wine. The prefix is validated before the executable is looked
// up. Absolute paths run in their containing directory, relative ones in the
// default drive root.
func (p *Prefix) RunWine(exePath string, args []string, env map[string]string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	v := ParseVirtualPath(exePath)
	if len(v.Segments) == 0 {
		return invalid(p.subject(), "executable path %q is empty", exePath)
	}
	if v.IsAbs() {
		if hostPath := p.RealPath(v); !exists(hostPath) {
			return invalid(p.subject(), "executable %s does not exist", hostPath)
		}
	}

	argv := append([]string{p.RuntimeExecutable(), v.String()}, args...)
	return p.RunProcess(argv, p.WorkingDir(v), env)
}

// RunProcess validates the prefix, composes the environment, wraps the
// command in firejail if enabled and blocks until it exits.
func (p *Prefix) RunProcess(argv []string, dir string, env map[string]string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	cmd, err := p.Command(argv, dir, env)
	if err != nil {
		return err
	}
	if p.launcher == nil {
		return &LaunchError{Argv: cmd.Argv, Err: errors.New("no launch backend configured")}
	}

	logging.Log.Debugw("spawning", "prefix", p.Name, "argv", cmd.Argv, "dir", cmd.Dir)
	if err := p.launcher.Spawn(cmd); err != nil {
		return &LaunchError{Argv: cmd.Argv, Err: err}
	}
	return nil
}

// Command composes the full invocation without running it.
func (p *Prefix) Command(argv []string, dir string, env map[string]string) (ilauncher.Command, error) {
	full := p.Environment(env)
	if p.Sandbox.Enabled {
		var err error
		argv, err = p.wrapSandbox(argv, dir, full)
		if err != nil {
			return ilauncher.Command{}, err
		}
	}
	return ilauncher.Command{
		Argv: argv,
		Dir:  dir,
		Env:  envList(full),
	}, nil
}

// RunTaskManager starts the wine task manager.
func (p *Prefix) RunTaskManager() error {
	return p.RunWine(TaskManagerExe, nil, nil)
}

// RunControlPanel starts the wine control panel.
func (p *Prefix) RunControlPanel() error {
	return p.RunWine(ControlExe, nil, nil)
}

// RunCommandShell starts cmd.exe.
func (p *Prefix) RunCommandShell() error {
	return p.RunWine(CommandExe, nil, nil)
}

// RunReboot simulates a Windows restart of the prefix.
func (p *Prefix) RunReboot() error {
	return p.RunWine(BootExe, []string{"-r"}, nil)
}

// RunConfigTool starts winecfg.
func (p *Prefix) RunConfigTool() error {
	return p.RunWine(ConfigExe, nil, nil)
}

// RunRegistryEditor starts regedit.
func (p *Prefix) RunRegistryEditor() error {
	return p.RunWine(RegeditExe, nil, nil)
}

// RunWinetricks runs winetricks against the prefix from the default drive root.
func (p *Prefix) RunWinetricks(args []string) error {
	argv := append([]string{WinetricksBinary}, args...)
	return p.RunProcess(argv, p.DriveToRealPath(p.DefaultDrive), nil)
}

// RunInPrefix runs an arbitrary host command with the prefix environment
// and sandbox from the default drive root.
func (p *Prefix) RunInPrefix(argv []string) error {
	if len(argv) == 0 {
		return invalid(p.subject(), "no command given")
	}
	return p.RunProcess(argv, p.DriveToRealPath(p.DefaultDrive), nil)
}
