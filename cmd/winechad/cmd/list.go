package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mfulz/winechad/internal/prefix"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var outputFormat string

const (
	formatText = "text"
	formatYAML = "yaml"
)

type prefixView struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Path        string   `yaml:"path"`
	Wine        string   `yaml:"wine"`
	Arch        string   `yaml:"arch"`
	Sandbox     string   `yaml:"sandbox"`
	DefaultApp  string   `yaml:"default_app,omitempty"`
	Apps        []string `yaml:"apps"`
	Problem     string   `yaml:"problem,omitempty"`
}

type appView struct {
	Prefix      string   `yaml:"prefix"`
	Name        string   `yaml:"name"`
	Path        string   `yaml:"path"`
	Description string   `yaml:"description,omitempty"`
	Args        []string `yaml:"args,omitempty"`
	Default     bool     `yaml:"default"`
	Problem     string   `yaml:"problem,omitempty"`
}

// PrefixesCmd lists all discovered prefixes.
var PrefixesCmd = &cobra.Command{
	Use:   "prefixes",
	Short: "List discovered prefixes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		views := make([]prefixView, 0, len(reg.Prefixes()))
		for _, p := range reg.Prefixes() {
			views = append(views, newPrefixView(p))
		}
		return output(cmd.OutOrStdout(), views, func(w io.Writer) { renderPrefixes(w, views) })
	},
}

// AppsCmd lists the applications of one or all prefixes.
var AppsCmd = &cobra.Command{
	Use:   "apps [prefix]",
	Short: "List applications",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apps := reg.Applications()
		if len(args) == 1 {
			p, err := lookupPrefix(args[0])
			if err != nil {
				return err
			}
			apps = p.Applications
		}
		views := make([]appView, 0, len(apps))
		for _, a := range apps {
			views = append(views, newAppView(a))
		}
		return output(cmd.OutOrStdout(), views, func(w io.Writer) { renderApps(w, views) })
	},
}

func newPrefixView(p *prefix.Prefix) prefixView {
	v := prefixView{
		Name:        p.Name,
		Description: p.Description,
		Path:        p.Path,
		Wine:        p.ResolveRuntimeDir(),
		Arch:        p.Arch(),
		Sandbox:     sandboxMode(p.Sandbox),
		DefaultApp:  p.DefaultApp,
		Apps:        make([]string, 0, len(p.Applications)),
		Problem:     p.InvalidReason(),
	}
	for _, a := range p.Applications {
		v.Apps = append(v.Apps, a.Name)
	}
	return v
}

func newAppView(a *prefix.Application) appView {
	p := a.Prefix()
	return appView{
		Prefix:      p.Name,
		Name:        a.Name,
		Path:        a.Path,
		Description: a.Description,
		Args:        a.Args,
		Default:     p.DefaultApp == a.Name,
		Problem:     a.InvalidReason(),
	}
}

func sandboxMode(s prefix.Sandbox) string {
	switch {
	case !s.Enabled:
		return "off"
	case s.Home:
		return "firejail+home"
	default:
		return "firejail"
	}
}

func output(w io.Writer, v any, text func(io.Writer)) error {
	switch outputFormat {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case formatText, "":
		text(w)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", outputFormat, formatText, formatYAML)
	}
}

func renderPrefixes(w io.Writer, views []prefixView) {
	if len(views) == 0 {
		fmt.Fprintln(w, MutedStyle.Render("No prefixes found."))
		return
	}
	fmt.Fprintln(w, TitleStyle.Render("Prefixes"))
	for _, v := range views {
		line := "  " + NameStyle.Render(v.Name) + " " +
			WarningStyle.Render("["+v.Arch+", "+v.Sandbox+"]")
		if v.Description != "" {
			line += " - " + v.Description
		}
		fmt.Fprintln(w, line)
		fmt.Fprintln(w, "    "+MutedStyle.Render("path: "+v.Path))
		fmt.Fprintln(w, "    "+MutedStyle.Render("wine: "+v.Wine))
		if len(v.Apps) > 0 {
			apps := strings.Join(v.Apps, ", ")
			if v.DefaultApp != "" {
				apps += " (default: " + v.DefaultApp + ")"
			}
			fmt.Fprintln(w, "    "+MutedStyle.Render("apps: "+apps))
		}
		fmt.Fprintln(w, "    "+status(v.Problem))
	}
}

func renderApps(w io.Writer, views []appView) {
	if len(views) == 0 {
		fmt.Fprintln(w, MutedStyle.Render("No applications found."))
		return
	}
	fmt.Fprintln(w, TitleStyle.Render("Applications"))
	for _, v := range views {
		name := NameStyle.Render(v.Prefix + "/" + v.Name)
		if v.Default {
			name += OkStyle.Render(" *")
		}
		line := "  " + name
		if v.Description != "" {
			line += " - " + v.Description
		}
		fmt.Fprintln(w, line)
		fmt.Fprintln(w, "    "+MutedStyle.Render(v.Path))
		if v.Problem != "" {
			fmt.Fprintln(w, "    "+status(v.Problem))
		}
	}
}

func status(problem string) string {
	if problem == "" {
		return OkStyle.Render("ok")
	}
	return ErrorStyle.Render("invalid: " + problem)
}

func init() {
	for _, c := range []*cobra.Command{PrefixesCmd, AppsCmd} {
		c.Flags().StringVarP(&outputFormat, "output", "o", formatText, "Output format (text or yaml)")
	}
}
