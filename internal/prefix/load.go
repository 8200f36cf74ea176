package prefix

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mfulz/winechad/interfaces/ilauncher"
	"github.com/pelletier/go-toml/v2"
)

// MarkerFile marks a directory as a prefix and holds its configuration.
const MarkerFile = "winechad.toml"

// markerFile mirrors the layout of winechad.toml.
type markerFile struct {
	Prefix prefixSection `toml:"prefix"`
	Apps   []appSection  `toml:"apps"`
}

type prefixSection struct {
	Name            string `toml:"name"`
	Description     string `toml:"description"`
	Wine            string `toml:"wine"`
	Wine64          *bool  `toml:"wine64"`
	DefaultApp      string `toml:"default_app"`
	DefaultDrive    string `toml:"default_drive"`
	FirejailEnabled *bool  `toml:"firejail_enabled"`
	FirejailHome    *bool  `toml:"firejail_home"`
	FirejailProfile string `toml:"firejail_profile"`
}

type appSection struct {
	Name        string            `toml:"name"`
	Path        string            `toml:"path"`
	IconPath    string            `toml:"icon_path"`
	Description string            `toml:"description"`
	Env         map[string]string `toml:"env"`
	Args        []string          `toml:"args"`
}

// HasMarker reports whether dir contains a marker file.
func HasMarker(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, MarkerFile))
	return err == nil && fi.Mode().IsRegular()
}

// FromDirectory loads the prefix rooted at dir. Missing or malformed keys
// are reported by Validate, only unreadable or unparsable files fail here.
func FromDirectory(dir, wineDir string, launcher ilauncher.Backend, opts ...Option) (*Prefix, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid prefix directory %q: %w", dir, err)
	}

	path := filepath.Join(root, MarkerFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var mf markerFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	s := Settings{
		Name:         mf.Prefix.Name,
		Description:  mf.Prefix.Description,
		Path:         root,
		Wine:         mf.Prefix.Wine,
		WineDir:      wineDir,
		DefaultDrive: mf.Prefix.DefaultDrive,
		DefaultApp:   mf.Prefix.DefaultApp,
		Sandbox: Sandbox{
			Enabled: boolOr(mf.Prefix.FirejailEnabled, true),
			Home:    boolOr(mf.Prefix.FirejailHome, false),
			Profile: mf.Prefix.FirejailProfile,
		},
	}
	if mf.Prefix.Wine64 != nil {
		s.Is64Bit = *mf.Prefix.Wine64
	} else {
		s.Is64Bit = Detect64Bit(root)
	}

	apps := make([]Application, 0, len(mf.Apps))
	for _, a := range mf.Apps {
		apps = append(apps, Application{
			Name:        a.Name,
			Path:        a.Path,
			Args:        a.Args,
			Env:         a.Env,
			Description: a.Description,
			IconPath:    a.IconPath,
		})
	}

	return New(s, apps, launcher, opts...), nil
}

// Detect64Bit looks for drive_c/windows/syswow64 in the plain and the
// sandbox-home layout.
func Detect64Bit(root string) bool {
	wow := filepath.Join("drive_c", "windows", "syswow64")
	return isDir(filepath.Join(root, wow)) ||
		isDir(filepath.Join(root, jailHomeDir, jailPrefixDir, wow))
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
