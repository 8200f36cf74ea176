package prefix

import "fmt"

// Application is a runnable program inside a prefix.
type Application struct {
	Name        string
	Path        string // virtual path, e.g. C:\Games\game.exe
	Args        []string
	Env         map[string]string
	Description string
	IconPath    string

	prefix *Prefix // owning prefix, set by New
}

// Prefix returns the owning prefix.
func (a *Application) Prefix() *Prefix {
	return a.prefix
}

func (a *Application) subject() string {
	if a.prefix == nil {
		return fmt.Sprintf("application %q", a.Name)
	}
	return fmt.Sprintf("application %q in prefix %q", a.Name, a.prefix.Name)
}

// Validate checks the application name and, for relative or single
// component paths, that the executable exists below the default drive.
// Absolute paths are checked when the application is run.
func (a *Application) Validate() error {
	if !ValidName(a.Name) {
		return invalid(a.subject(), "name must be a non-empty token of letters, digits, '_' and '-'")
	}
	if a.prefix == nil {
		return invalid(a.subject(), "not attached to a prefix")
	}
	v := ParseVirtualPath(a.Path)
	if len(v.Segments) == 0 {
		return invalid(a.subject(), "path %q names no executable", a.Path)
	}
	if v.IsAbs() && !v.SingleSegment() {
		return nil
	}
	if hostPath := a.prefix.RealPath(v); !exists(hostPath) {
		return invalid(a.subject(), "executable %s does not exist", hostPath)
	}
	return nil
}

// IsValid reports whether Validate succeeds.
func (a *Application) IsValid() bool {
	return a.Validate() == nil
}

// InvalidReason returns the validation failure, or "" if the application is valid.
func (a *Application) InvalidReason() string {
	if err := a.Validate(); err != nil {
		return err.Error()
	}
	return ""
}

// Run validates the application and starts it through its prefix, blocking
// until it exits.
func (a *Application) Run(extraArgs ...string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	args := append(append([]string{}, a.Args...), extraArgs...)
	return a.prefix.RunWine(a.Path, args, a.Env)
}
