package prefix

import (
	"fmt"
	"strings"
)

// ValidationError reports a violated invariant of a prefix or application.
type ValidationError struct {
	Subject string // e.g. `prefix "games"`
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Subject, e.Reason)
}

// LookupError reports a name that resolved to zero or several records.
type LookupError struct {
	Kind    string // "prefix" or "application"
	Name    string
	Scope   string // owning prefix for applications
	Matches int
}

func (e *LookupError) Error() string {
	where := ""
	if e.Scope != "" {
		where = fmt.Sprintf(" in prefix %q", e.Scope)
	}
	switch {
	case e.Name == "":
		return fmt.Sprintf("no default %s configured%s", e.Kind, where)
	case e.Matches == 0:
		return fmt.Sprintf("no %s named %q%s", e.Kind, e.Name, where)
	default:
		return fmt.Sprintf("%d %ss named %q%s", e.Matches, e.Kind, e.Name, where)
	}
}

// LaunchError wraps a failure to spawn or run an external command.
type LaunchError struct {
	Argv []string
	Err  error
}

func (e *LaunchError) Error() string {
	name := ""
	if len(e.Argv) > 0 {
		name = e.Argv[0]
	}
	return fmt.Sprintf("launching %s: %v", name, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Command returns the argv as a single space separated string.
func (e *LaunchError) Command() string {
	return strings.Join(e.Argv, " ")
}

func invalid(subject string, format string, args ...any) error {
	return &ValidationError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}
