// Package prefix models wine prefixes and the applications configured in
// them. A Prefix translates virtual drive letter paths to host paths,
// composes the launch environment, optionally wraps commands in firejail and
// hands the result to an ilauncher.Backend.
package prefix

import (
	"fmt"
	"os"

	"github.com/mfulz/winechad/interfaces/ilauncher"
)

// Sandbox holds the firejail settings of a prefix.
type Sandbox struct {
	Enabled bool   // wrap every launch in firejail
	Home    bool   // use <prefix>/jailhome as private home
	Profile string // firejail profile, empty disables profiles
}

// Settings is the static configuration of a prefix.
type Settings struct {
	Name         string
	Description  string
	Path         string // prefix root on the host
	Wine         string // wine installation name or path, empty for the system wine
	WineDir      string // root searched for named wine installations
	Is64Bit      bool
	DefaultDrive string
	DefaultApp   string
	Sandbox      Sandbox
}

// Prefix is one wine prefix and the applications it owns.
type Prefix struct {
	Settings
	Applications []*Application

	launcher ilauncher.Backend
	environ  func() []string
	homeDir  func() (string, error)
}

// Option customizes a Prefix.
type Option func(*Prefix)

// WithEnviron replaces os.Environ as the source of the ambient environment.
func WithEnviron(fn func() []string) Option {
	return func(p *Prefix) { p.environ = fn }
}

// WithHomeDir replaces os.UserHomeDir, which locates the private home
// mount point inside the sandbox.
func WithHomeDir(fn func() (string, error)) Option {
	return func(p *Prefix) { p.homeDir = fn }
}

// New creates a prefix owning copies of apps. Each application's prefix
// back-reference is set here.
func New(s Settings, apps []Application, launcher ilauncher.Backend, opts ...Option) *Prefix {
	if s.DefaultDrive == "" {
		s.DefaultDrive = DefaultDrive
	}
	p := &Prefix{
		Settings: s,
		launcher: launcher,
		environ:  os.Environ,
		homeDir:  os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Applications = make([]*Application, 0, len(apps))
	for _, a := range apps {
		app := a
		app.prefix = p
		p.Applications = append(p.Applications, &app)
	}
	return p
}

func (p *Prefix) subject() string {
	return fmt.Sprintf("prefix %q", p.Name)
}

// Validate checks the prefix invariants in order and returns the first
// violation as a *ValidationError.
func (p *Prefix) Validate() error {
	if !ValidName(p.Name) {
		return invalid(p.subject(), "name must be a non-empty token of letters, digits, '_' and '-'")
	}
	runtimeDir := p.ResolveRuntimeDir()
	if !isDir(runtimeDir) {
		return invalid(p.subject(), "wine directory %s does not exist", runtimeDir)
	}
	if exe := p.RuntimeExecutable(); !exists(exe) {
		return invalid(p.subject(), "wine executable %s does not exist", exe)
	}
	if !isDir(p.Path) {
		return invalid(p.subject(), "prefix directory %s does not exist", p.Path)
	}
	if p.Sandbox.Home && !isDir(p.JailHome()) {
		return invalid(p.subject(), "sandbox home %s does not exist", p.JailHome())
	}
	if !driveRe.MatchString(NormalizeDrive(p.DefaultDrive)) {
		return invalid(p.subject(), "default drive %q is not a drive letter", p.DefaultDrive)
	}
	if drive := p.DriveToRealPath(p.DefaultDrive); !exists(drive) {
		return invalid(p.subject(), "default drive %s does not exist", drive)
	}
	if p.DefaultApp != "" {
		if _, err := p.GetApplication(p.DefaultApp); err != nil {
			return invalid(p.subject(), "default application: %v", err)
		}
	}
	return nil
}

// IsValid reports whether Validate succeeds.
func (p *Prefix) IsValid() bool {
	return p.Validate() == nil
}

// InvalidReason returns the validation failure, or "" if the prefix is valid.
func (p *Prefix) InvalidReason() string {
	if err := p.Validate(); err != nil {
		return err.Error()
	}
	return ""
}

// GetApplication returns the single application called name.
func (p *Prefix) GetApplication(name string) (*Application, error) {
	var found []*Application
	for _, a := range p.Applications {
		if a.Name == name {
			found = append(found, a)
		}
	}
	if len(found) != 1 {
		return nil, &LookupError{Kind: "application", Name: name, Scope: p.Name, Matches: len(found)}
	}
	return found[0], nil
}

// DefaultApplication resolves the configured default application.
func (p *Prefix) DefaultApplication() (*Application, error) {
	if p.DefaultApp == "" {
		return nil, &LookupError{Kind: "application", Scope: p.Name}
	}
	return p.GetApplication(p.DefaultApp)
}

// Arch returns the WINEARCH value of the prefix.
func (p *Prefix) Arch() string {
	if p.Is64Bit {
		return "win64"
	}
	return "win32"
}
