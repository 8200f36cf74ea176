package ilauncher

import (
	"strings"
	"testing"
)

type stubBackend struct{ method string }

func (s stubBackend) Method() string { return s.method }

func (s stubBackend) Spawn(Command) error { return nil }

func TestRegistry(t *testing.T) {
	RegisterBackend(stubBackend{method: "stub-b"})
	RegisterBackend(stubBackend{method: "stub-a"})

	b, err := GetBackend("stub-a")
	if err != nil {
		t.Fatalf("GetBackend() unexpected error: %v", err)
	}
	if b.Method() != "stub-a" {
		t.Errorf("GetBackend(stub-a).Method() = %q", b.Method())
	}

	methods := strings.Join(Methods(), ",")
	if !strings.Contains(methods, "stub-a,stub-b") {
		t.Errorf("Methods() = %q, want sorted entries", methods)
	}

	_, err = GetBackend("missing")
	if err == nil {
		t.Fatal("GetBackend(missing) succeeded")
	}
	if !strings.Contains(err.Error(), "stub-a, stub-b") {
		t.Errorf("error %q does not list the available backends", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate RegisterBackend did not panic")
		}
	}()
	RegisterBackend(stubBackend{method: "stub-a"})
}
