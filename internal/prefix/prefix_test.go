package prefix

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrefixValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(t *testing.T, f *fixture, s *Settings)
		apps   []Application
		reason string // substring of the failure, empty for success
	}{
		{
			name:   "valid",
			mutate: func(*testing.T, *fixture, *Settings) {},
		},
		{
			name:   "empty name",
			mutate: func(_ *testing.T, _ *fixture, s *Settings) { s.Name = "" },
			reason: "name must be",
		},
		{
			name:   "bad name",
			mutate: func(_ *testing.T, _ *fixture, s *Settings) { s.Name = "my prefix" },
			reason: "name must be",
		},
		{
			name:   "missing wine directory",
			mutate: func(_ *testing.T, f *fixture, s *Settings) { s.Wine = filepath.Join(f.wine, "nope") },
			reason: "wine directory",
		},
		{
			name: "missing wine executable",
			mutate: func(t *testing.T, f *fixture, _ *Settings) {
				if err := os.Remove(filepath.Join(f.wine, "bin", "wine64")); err != nil {
					t.Fatal(err)
				}
			},
			reason: "wine executable",
		},
		{
			name:   "missing prefix directory",
			mutate: func(_ *testing.T, f *fixture, s *Settings) { s.Path = filepath.Join(f.root, "gone") },
			reason: "prefix directory",
		},
		{
			name: "missing sandbox home",
			mutate: func(t *testing.T, f *fixture, s *Settings) {
				s.Sandbox = Sandbox{Enabled: true, Home: true}
				if err := os.RemoveAll(filepath.Join(f.root, "jailhome")); err != nil {
					t.Fatal(err)
				}
			},
			reason: "sandbox home",
		},
		{
			name:   "malformed default drive",
			mutate: func(_ *testing.T, _ *fixture, s *Settings) { s.DefaultDrive = "cd" },
			reason: "not a drive letter",
		},
		{
			name:   "missing default drive",
			mutate: func(_ *testing.T, _ *fixture, s *Settings) { s.DefaultDrive = "d:" },
			reason: "default drive",
		},
		{
			name:   "dangling default app",
			mutate: func(_ *testing.T, _ *fixture, s *Settings) { s.DefaultApp = "missing" },
			reason: "default application",
		},
		{
			name:   "ambiguous default app",
			mutate: func(_ *testing.T, _ *fixture, s *Settings) { s.DefaultApp = "dup" },
			apps:   []Application{{Name: "dup", Path: `C:\a.exe`}, {Name: "dup", Path: `C:\b.exe`}},
			reason: "2 applications",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			s := f.settings()
			tt.mutate(t, f, &s)
			p := f.prefix(s, tt.apps...)

			err := p.Validate()
			if tt.reason == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				if !p.IsValid() || p.InvalidReason() != "" {
					t.Errorf("IsValid/InvalidReason disagree with Validate")
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if !strings.Contains(verr.Reason, tt.reason) {
				t.Errorf("Validate() reason = %q, want it to contain %q", verr.Reason, tt.reason)
			}
			if p.IsValid() {
				t.Error("IsValid() = true for invalid prefix")
			}
			if p.InvalidReason() != err.Error() {
				t.Errorf("InvalidReason() = %q, want %q", p.InvalidReason(), err.Error())
			}
		})
	}
}

func TestPrefixValidate_FirstFailureWins(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := f.settings()
	s.Name = ""
	s.Path = filepath.Join(f.root, "gone")
	s.DefaultApp = "missing"

	err := f.prefix(s).Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) || !strings.Contains(verr.Reason, "name must be") {
		t.Errorf("Validate() = %v, want the name failure first", err)
	}
}

func TestGetApplication(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.prefix(f.settings(),
		Application{Name: "foo", Path: `C:\foo.exe`},
		Application{Name: "bar", Path: `C:\bar.exe`},
		Application{Name: "bar", Path: `C:\bar2.exe`},
	)

	app, err := p.GetApplication("foo")
	if err != nil {
		t.Fatalf("GetApplication(foo) unexpected error: %v", err)
	}
	if app.Prefix() != p {
		t.Error("application back-reference does not point to its prefix")
	}

	for name, matches := range map[string]int{"missing": 0, "bar": 2} {
		_, err := p.GetApplication(name)
		var lerr *LookupError
		if !errors.As(err, &lerr) {
			t.Fatalf("GetApplication(%s) error = %v, want *LookupError", name, err)
		}
		if lerr.Matches != matches {
			t.Errorf("GetApplication(%s) matches = %d, want %d", name, lerr.Matches, matches)
		}
	}
}

func TestDefaultApplication(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := f.settings()
	p := f.prefix(s, Application{Name: "foo", Path: `C:\foo.exe`})

	_, err := p.DefaultApplication()
	var lerr *LookupError
	if !errors.As(err, &lerr) {
		t.Fatalf("DefaultApplication() without default_app error = %v, want *LookupError", err)
	}
	if !strings.Contains(err.Error(), "no default application") {
		t.Errorf("error = %q", err.Error())
	}

	s.DefaultApp = "foo"
	p = f.prefix(s, Application{Name: "foo", Path: `C:\foo.exe`})
	app, err := p.DefaultApplication()
	if err != nil {
		t.Fatalf("DefaultApplication() unexpected error: %v", err)
	}
	if app.Name != "foo" {
		t.Errorf("DefaultApplication() = %q, want foo", app.Name)
	}
}

func TestNew_CopiesApplications(t *testing.T) {
	t.Parallel()

	apps := []Application{{Name: "foo", Path: "foo.exe"}}
	p := New(Settings{Name: "p", Path: "/pfx"}, apps, nil)
	apps[0].Name = "changed"

	if p.Applications[0].Name != "foo" {
		t.Errorf("prefix shares application storage with caller")
	}
	if p.DefaultDrive != DefaultDrive {
		t.Errorf("DefaultDrive = %q, want %q", p.DefaultDrive, DefaultDrive)
	}
}
