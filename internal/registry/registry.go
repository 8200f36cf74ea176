// Package registry discovers prefixes in the configured search directories
// and resolves them by name.
package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mfulz/winechad/interfaces/ilauncher"
	"github.com/mfulz/winechad/internal/logging"
	"github.com/mfulz/winechad/internal/prefix"
)

// Registry holds every prefix found during Scan. It is not modified afterwards.
type Registry struct {
	SearchDirs []string
	WineDir    string

	prefixes []*prefix.Prefix
}

// Scan inspects the immediate subdirectories of every search directory and
// loads each one containing a marker file. Prefixes with the same name in
// different search directories are all kept; GetPrefix reports them.
func Scan(searchDirs []string, wineDir string, launcher ilauncher.Backend, opts ...prefix.Option) (*Registry, error) {
	r := &Registry{
		SearchDirs: searchDirs,
		WineDir:    wineDir,
	}

	for _, dir := range searchDirs {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			logging.Log.Warnw("prefix directory does not exist", "dir", dir)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}

		for _, e := range entries {
			sub := filepath.Join(dir, e.Name())
			// follows symlinked prefix directories
			if fi, err := os.Stat(sub); err != nil || !fi.IsDir() {
				continue
			}
			if !prefix.HasMarker(sub) {
				logging.Log.Debugw("skipping directory without marker", "dir", sub)
				continue
			}

			p, err := prefix.FromDirectory(sub, wineDir, launcher, opts...)
			if err != nil {
				return nil, err
			}
			logging.Log.Debugw("found prefix", "name", p.Name, "dir", sub, "apps", len(p.Applications))
			r.prefixes = append(r.prefixes, p)
		}
	}

	return r, nil
}

// Prefixes returns all discovered prefixes in scan order.
func (r *Registry) Prefixes() []*prefix.Prefix {
	return r.prefixes
}

// Applications returns the applications of all prefixes in scan order.
func (r *Registry) Applications() []*prefix.Application {
	var apps []*prefix.Application
	for _, p := range r.prefixes {
		apps = append(apps, p.Applications...)
	}
	return apps
}

// GetPrefix returns the single prefix called name.
func (r *Registry) GetPrefix(name string) (*prefix.Prefix, error) {
	var found []*prefix.Prefix
	for _, p := range r.prefixes {
		if p.Name == name {
			found = append(found, p)
		}
	}
	if len(found) != 1 {
		return nil, &prefix.LookupError{Kind: "prefix", Name: name, Matches: len(found)}
	}
	return found[0], nil
}
