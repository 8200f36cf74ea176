// Package launchbackends contains the launch backend implementations.
// The execBackend spawns the composed command for real; dryRunBackend only
// prints what would be run.
package launchbackends

import (
	"fmt"

	"github.com/mfulz/winechad/interfaces/ilauncher"
	"github.com/mfulz/winechad/internal/launch"
)

// MethodExec is the name of the backend that spawns processes.
const MethodExec = "exec"

type execBackend struct{}

func init() {
	ilauncher.RegisterBackend(&execBackend{})
}

// Method returns the unique identifier for this backend.
func (b *execBackend) Method() string {
	return MethodExec
}

// Spawn runs cmd with stdio attached to the current terminal.
func (b *execBackend) Spawn(cmd ilauncher.Command) error {
	if len(cmd.Argv) == 0 {
		return fmt.Errorf("empty command")
	}
	return launch.Launch(launch.Config{
		Binary: cmd.Argv[0],
		Args:   cmd.Argv[1:],
		Dir:    cmd.Dir,
		Env:    cmd.Env,
	})
}
