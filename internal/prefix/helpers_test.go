package prefix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mfulz/winechad/interfaces/ilauncher"
)

// recordingBackend captures commands instead of spawning them.
type recordingBackend struct {
	cmds []ilauncher.Command
	err  error
}

func (r *recordingBackend) Method() string { return "recording" }

func (r *recordingBackend) Spawn(cmd ilauncher.Command) error {
	r.cmds = append(r.cmds, cmd)
	return r.err
}

func (r *recordingBackend) last(t *testing.T) ilauncher.Command {
	t.Helper()
	if len(r.cmds) == 0 {
		t.Fatal("no command was spawned")
	}
	return r.cmds[len(r.cmds)-1]
}

func mkdirAll(t *testing.T, parts ...string) string {
	t.Helper()
	dir := filepath.Join(parts...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	return dir
}

func touch(t *testing.T, parts ...string) string {
	t.Helper()
	path := filepath.Join(parts...)
	mkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, nil, 0o755); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// fixture is a prefix laid out on disk with a runnable wine installation.
type fixture struct {
	root    string // prefix root
	wine    string // wine installation directory
	home    string // fake user home
	backend *recordingBackend
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	base := t.TempDir()
	f := &fixture{
		root:    mkdirAll(t, base, "prefixes", "games"),
		wine:    mkdirAll(t, base, "wine", "wine-9.0"),
		home:    mkdirAll(t, base, "home"),
		backend: &recordingBackend{},
	}
	touch(t, f.wine, "bin", "wine")
	touch(t, f.wine, "bin", "wine64")
	mkdirAll(t, f.root, "dosdevices", "c:")
	mkdirAll(t, f.root, "jailhome", "prefix", "dosdevices", "c:")
	return f
}

func (f *fixture) settings() Settings {
	return Settings{
		Name:    "games",
		Path:    f.root,
		Wine:    f.wine,
		Is64Bit: true,
	}
}

func (f *fixture) prefix(s Settings, apps ...Application) *Prefix {
	return New(s, apps, f.backend,
		WithEnviron(func() []string {
			return []string{"PATH=/usr/bin", "WINEARCH=bogus", "LANG=C"}
		}),
		WithHomeDir(func() (string, error) { return f.home, nil }),
	)
}

func envValue(env []string, key string) (string, bool) {
	for _, kv := range env {
		if len(kv) > len(key) && kv[:len(key)+1] == key+"=" {
			return kv[len(key)+1:], true
		}
	}
	return "", false
}
