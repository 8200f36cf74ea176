package prefix

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// DefaultDrive is the virtual drive used as the working root.
	DefaultDrive = "c:"
	// SystemWineDir is used when a prefix names no wine installation.
	SystemWineDir = "/usr"

	dosDevicesDir = "dosdevices"
	jailHomeDir   = "jailhome"
	jailPrefixDir = "prefix"
)

var (
	nameRe  = regexp.MustCompile(`^[\w-]+$`)
	driveRe = regexp.MustCompile(`^[A-Za-z]:$`)
)

// ValidName reports whether name is a non-empty token of word characters and hyphens.
func ValidName(name string) bool {
	return nameRe.MatchString(name)
}

// VirtualPath is a parsed Windows style path such as C:\Program Files\app.exe.
type VirtualPath struct {
	Drive    string   // "C:" for absolute paths, empty otherwise
	Segments []string // path components after the drive
}

// ParseVirtualPath normalizes separators to backslashes and splits p into
// drive and components.
func ParseVirtualPath(p string) VirtualPath {
	parts := strings.FieldsFunc(p, func(r rune) bool { return r == '\\' || r == '/' })
	if len(parts) > 0 && driveRe.MatchString(parts[0]) {
		return VirtualPath{Drive: parts[0], Segments: parts[1:]}
	}
	return VirtualPath{Segments: parts}
}

// IsAbs reports whether the path starts with a drive letter.
func (v VirtualPath) IsAbs() bool {
	return v.Drive != ""
}

// SingleSegment reports whether the path has exactly one component in total.
func (v VirtualPath) SingleSegment() bool {
	n := len(v.Segments)
	if v.IsAbs() {
		n++
	}
	return n == 1
}

// String renders the path in drive letter notation.
func (v VirtualPath) String() string {
	if v.IsAbs() {
		return v.Drive + `\` + strings.Join(v.Segments, `\`)
	}
	return strings.Join(v.Segments, `\`)
}

// NormalizeDrive strips backslashes from a drive token and lower-cases it.
func NormalizeDrive(drive string) string {
	return strings.ToLower(strings.ReplaceAll(drive, `\`, ""))
}

// JailHome is the private home directory used in sandbox-home mode.
func (p *Prefix) JailHome() string {
	return filepath.Join(p.Path, jailHomeDir)
}

// WinePrefixDir is the directory wine treats as its prefix on the host.
func (p *Prefix) WinePrefixDir() string {
	if p.Sandbox.Home {
		return filepath.Join(p.JailHome(), jailPrefixDir)
	}
	return p.Path
}

// DriveToRealPath maps a virtual drive letter to its dosdevices entry.
func (p *Prefix) DriveToRealPath(drive string) string {
	return filepath.Join(p.WinePrefixDir(), dosDevicesDir, NormalizeDrive(drive))
}

// RealPath maps a virtual path onto the host filesystem. Relative paths are
// taken relative to the default drive's root.
func (p *Prefix) RealPath(v VirtualPath) string {
	drive := v.Drive
	if !v.IsAbs() {
		drive = p.DefaultDrive
	}
	return filepath.Join(append([]string{p.DriveToRealPath(drive)}, v.Segments...)...)
}

// WorkingDir returns the directory an executable at v is started in: the
// containing directory for absolute paths, the default drive root otherwise.
func (p *Prefix) WorkingDir(v VirtualPath) string {
	if !v.IsAbs() {
		return p.DriveToRealPath(p.DefaultDrive)
	}
	dirs := v.Segments
	if len(dirs) > 0 {
		dirs = dirs[:len(dirs)-1]
	}
	return filepath.Join(append([]string{p.DriveToRealPath(v.Drive)}, dirs...)...)
}

// archDirs returns the architecture specific installation subdirectories.
func (p *Prefix) archDirs() (arch, platform string) {
	if p.Is64Bit {
		return "amd64", "linux-amd64"
	}
	return "x86", "linux-x86"
}

// ResolveRuntimeDir returns the wine installation directory. Candidates are
// probed in fixed order: prefix root, wine root, wine root/<arch>, wine
// root/linux-<arch>. If none exists the reference is returned unchanged.
func (p *Prefix) ResolveRuntimeDir() string {
	if p.Wine == "" {
		return SystemWineDir
	}
	if filepath.IsAbs(p.Wine) {
		return p.Wine
	}

	candidates := []string{filepath.Join(p.Path, p.Wine)}
	if p.WineDir != "" {
		arch, platform := p.archDirs()
		candidates = append(candidates,
			filepath.Join(p.WineDir, p.Wine),
			filepath.Join(p.WineDir, arch, p.Wine),
			filepath.Join(p.WineDir, platform, p.Wine),
		)
	}
	for _, c := range candidates {
		if exists(c) {
			return c
		}
	}
	return p.Wine
}

// RuntimeExecutable returns <runtime dir>/bin/wine64 or bin/wine.
func (p *Prefix) RuntimeExecutable() string {
	bin := "wine"
	if p.Is64Bit {
		bin = "wine64"
	}
	return filepath.Join(p.ResolveRuntimeDir(), "bin", bin)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// within reports whether path lies inside root (or is root) and returns the
// relative path.
func within(root, path string) (string, bool) {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
