package cmd

import (
	"os"

	"github.com/mfulz/winechad/internal/prefix"
	"github.com/spf13/cobra"
)

// WineCmds are the subcommands starting a tool shipped with wine.
var WineCmds = []*cobra.Command{
	prefixCommand("configure", []string{"conf", "cfg", "c"}, "Open winecfg for a prefix", (*prefix.Prefix).RunConfigTool),
	prefixCommand("reboot", nil, "Simulate a Windows reboot of a prefix", (*prefix.Prefix).RunReboot),
	prefixCommand("control", nil, "Open the control panel of a prefix", (*prefix.Prefix).RunControlPanel),
	prefixCommand("taskmgr", nil, "Open the task manager of a prefix", (*prefix.Prefix).RunTaskManager),
	prefixCommand("regedit", nil, "Open the registry editor of a prefix", (*prefix.Prefix).RunRegistryEditor),
	prefixCommand("cmd", nil, "Open a Windows command shell in a prefix", (*prefix.Prefix).RunCommandShell),
}

// prefixCommand builds a "<name> <prefix>" command calling fn on the prefix.
func prefixCommand(name string, aliases []string, short string, fn func(*prefix.Prefix) error) *cobra.Command {
	return &cobra.Command{
		Use:     name + " <prefix>",
		Aliases: aliases,
		Short:   short,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookupPrefix(args[0])
			if err != nil {
				return err
			}
			return fn(p)
		},
	}
}

// TricksCmd runs winetricks against a prefix.
var TricksCmd = &cobra.Command{
	Use:   "tricks <prefix> [winetricks args...]",
	Short: "Run winetricks in a prefix",
	Long: `Runs winetricks with the prefix's wine and environment, for example:

  winechad tricks games -q vcrun2019 corefonts`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := lookupPrefix(args[0])
		if err != nil {
			return err
		}
		return p.RunWinetricks(trimDash(args[1:]))
	},
}

// SandboxCmd runs a host command inside the prefix environment and sandbox.
var SandboxCmd = &cobra.Command{
	Use:   "sandbox <prefix> [-- command args...]",
	Short: "Open a shell or run a command with the prefix environment",
	Long: `Runs a host command from the default drive root with WINEPREFIX and friends
set and, if enabled, inside the prefix's firejail sandbox. Without a command
$SHELL is started.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := lookupPrefix(args[0])
		if err != nil {
			return err
		}
		argv := trimDash(args[1:])
		if len(argv) == 0 {
			argv = []string{defaultShell()}
		}
		return p.RunInPrefix(argv)
	},
}

// trimDash drops the "--" separating the prefix from a passthrough command.
// With interspersed flags off, pflag leaves it in the positional args.
func trimDash(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

func init() {
	TricksCmd.Flags().SetInterspersed(false)
	SandboxCmd.Flags().SetInterspersed(false)
}
