package cmd

import (
	"fmt"

	"github.com/mfulz/winechad/internal/logging"
	"github.com/mfulz/winechad/internal/prefix"
	"github.com/spf13/cobra"
)

// RunCmd runs an application of a prefix, the default one if none is named.
var RunCmd = &cobra.Command{
	Use:     "run <prefix> [app] [-- args...]",
	Aliases: []string{"r"},
	Short:   "Run an application inside a prefix",
	Long: `Runs an application configured in the prefix's winechad.toml. Without an
application name the prefix's default_app is started. Arguments after "--" are
appended to the configured arguments.

Examples:
  winechad run games
  winechad run games steam -- -silent`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, extra := splitAtDash(cmd, args)
		if len(names) == 0 || len(names) > 2 {
			return fmt.Errorf("expected <prefix> [app], got %d names", len(names))
		}

		p, err := lookupPrefix(names[0])
		if err != nil {
			return err
		}

		app, err := selectApplication(p, names[1:])
		if err != nil {
			return err
		}

		logging.Log.Infow("running application", "prefix", p.Name, "app", app.Name)
		return app.Run(extra...)
	},
}

func selectApplication(p *prefix.Prefix, names []string) (*prefix.Application, error) {
	if len(names) == 0 {
		return p.DefaultApplication()
	}
	return p.GetApplication(names[0])
}

// splitAtDash separates positional names from the arguments following "--".
func splitAtDash(cmd *cobra.Command, args []string) ([]string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}
