package launchbackends

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mfulz/winechad/interfaces/ilauncher"
	"mvdan.cc/sh/v3/syntax"
)

// MethodDryRun is the name of the backend that prints instead of spawning.
const MethodDryRun = "dryrun"

type dryRunBackend struct {
	out     io.Writer
	environ func() []string
}

func init() {
	ilauncher.RegisterBackend(NewDryRun(os.Stdout, os.Environ))
}

// NewDryRun returns a backend writing the command as a shell line to out.
// Only variables that differ from environ() are printed.
func NewDryRun(out io.Writer, environ func() []string) ilauncher.Backend {
	return &dryRunBackend{out: out, environ: environ}
}

// Method returns the unique identifier for this backend.
func (b *dryRunBackend) Method() string {
	return MethodDryRun
}

// Spawn prints the working directory and the command line.
func (b *dryRunBackend) Spawn(cmd ilauncher.Command) error {
	if len(cmd.Argv) == 0 {
		return fmt.Errorf("empty command")
	}

	words := make([]string, 0, len(cmd.Argv)+4)
	for _, kv := range changedEnv(cmd.Env, b.environ()) {
		k, v, _ := strings.Cut(kv, "=")
		q, err := quote(v)
		if err != nil {
			return err
		}
		words = append(words, k+"="+q)
	}
	for _, arg := range cmd.Argv {
		q, err := quote(arg)
		if err != nil {
			return err
		}
		words = append(words, q)
	}

	dir, err := quote(cmd.Dir)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(b.out, "cd %s\n%s\n", dir, strings.Join(words, " "))
	return err
}

func quote(s string) (string, error) {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("cannot quote %q: %w", s, err)
	}
	return q, nil
}

// changedEnv returns the entries of env not present verbatim in base, sorted.
func changedEnv(env, base []string) []string {
	seen := make(map[string]struct{}, len(base))
	for _, kv := range base {
		seen[kv] = struct{}{}
	}
	var out []string
	for _, kv := range env {
		if _, ok := seen[kv]; !ok {
			out = append(out, kv)
		}
	}
	sort.Strings(out)
	return out
}
