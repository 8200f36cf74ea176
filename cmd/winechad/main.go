// Command winechad manages wine prefixes and the applications installed in
// them. Prefixes are discovered from the directories listed in the config
// file and launched through wine, optionally sandboxed by firejail.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mfulz/winechad/cmd/winechad/cmd"
	"github.com/mfulz/winechad/internal/logging"
	"github.com/mfulz/winechad/internal/prefix"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dryRun     bool
)

var rootCmd = &cobra.Command{
	Use:   "winechad",
	Short: "Manage wine prefixes and their applications",
	Long: `winechad discovers wine prefixes marked by a winechad.toml file and runs
their applications with the right wine build, environment and sandbox.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if c == c.Root() || c.Name() == "help" || c.Name() == "completion" {
			return nil
		}
		return cmd.Setup(configPath, dryRun)
	},
	RunE: func(c *cobra.Command, args []string) error {
		_ = c.Usage()
		if len(args) > 0 {
			return fmt.Errorf("unknown command %q", args[0])
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Log.Debugw("command failed", "error", err)
		var lerr *prefix.LaunchError
		if errors.As(err, &lerr) {
			logging.Log.Debugw("failed command line", "command", lerr.Command())
		}
		fmt.Fprintln(os.Stderr, cmd.ErrorStyle.Render("winechad: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $WINECHAD_CONFIG or ~/.config/winechad/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Print commands instead of running them")

	rootCmd.AddCommand(cmd.RunCmd)
	rootCmd.AddCommand(cmd.AppsCmd)
	rootCmd.AddCommand(cmd.PrefixesCmd)
	rootCmd.AddCommand(cmd.SandboxCmd)
	rootCmd.AddCommand(cmd.TricksCmd)
	for _, c := range cmd.WineCmds {
		rootCmd.AddCommand(c)
	}
}
