// Package launch contains the logic to execute external commands (wine,
// firejail, winetricks) with an explicit environment and working directory,
// forwarding the caller's stdio.
package launch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/google/uuid"
	"github.com/mfulz/winechad/internal/logging"
)

// Config defines a fully prepared launch.
type Config struct {
	Binary string   // Executable to run (resolved through PATH if not absolute)
	Args   []string // Arguments following the binary
	Dir    string   // Working directory
	Env    []string // Complete environment (KEY=VALUE)

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ExitError reports a process that started but exited unsuccessfully.
type ExitError struct {
	Binary string
	Code   int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Binary, e.Code)
}

// Launch runs the configured command and blocks until it exits.
// Both spawn failures and non-zero exits are returned as errors.
func Launch(cfg Config) error {
	runID := uuid.New().String()[:8]

	cmd := exec.Command(cfg.Binary, cfg.Args...)
	cmd.Dir = cfg.Dir
	cmd.Env = cfg.Env
	cmd.Stdin = orReader(cfg.Stdin, os.Stdin)
	cmd.Stdout = orWriter(cfg.Stdout, os.Stdout)
	cmd.Stderr = orWriter(cfg.Stderr, os.Stderr)

	logging.Log.Infow("launching", "run", runID, "binary", cfg.Binary, "args", cfg.Args, "dir", cfg.Dir)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", cfg.Binary, err)
	}
	logging.Log.Debugw("started", "run", runID, "pid", cmd.Process.Pid)

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logging.Log.Infow("exited", "run", runID, "status", exitErr.ExitCode())
		return &ExitError{Binary: cfg.Binary, Code: exitErr.ExitCode()}
	}
	if err != nil {
		return fmt.Errorf("waiting for %s: %w", cfg.Binary, err)
	}
	logging.Log.Infow("exited", "run", runID, "status", 0)
	return nil
}

func orReader(r io.Reader, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w io.Writer, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
