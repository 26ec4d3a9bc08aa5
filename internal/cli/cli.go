package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/pathcheck/internal/app"
	"github.com/specialistvlad/pathcheck/internal/extension"
	"github.com/specialistvlad/pathcheck/internal/pathcheck"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// rulesArg declares the rules file flag itself.
var rulesArg = pathcheck.NewMissingPathArgWarner("-rules", extension.New(".hcl"))

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pathcheck", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
pathcheck - Validates file-path arguments against declared rules.

Usage:
  pathcheck -rules RULES.hcl [options] [NAME=PATH ...]

Arguments:
  NAME=PATH
    The value PATH given for the path argument NAME declared in the rules file.
    Put -- before the pairs when a NAME starts with '-'.

Options:
`)
		flagSet.PrintDefaults()
	}

	rulesFlag := flagSet.String("rules", "", "Path to the .hcl file declaring the path arguments.")
	rFlag := flagSet.String("r", "", "Path to the .hcl file declaring the path arguments (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if len(args) == 0 {
		slog.Debug("No arguments provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	rulesPath := *rulesFlag
	if rulesPath == "" {
		rulesPath = *rFlag
	}
	if rulesPath == "" {
		return nil, false, &ExitError{Code: 2, Message: rulesArg.MissingArgMessage()}
	}
	if err := rulesArg.PathArgChecker(rulesPath).Check(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Rules path determined.", "path", rulesPath)

	values, err := parseValues(flagSet.Args())
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		RulesPath: rulesPath,
		Values:    values,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// parseValues splits NAME=PATH positional arguments. The name is everything
// before the first '=', so paths may contain '='.
func parseValues(args []string) ([]app.Value, error) {
	values := make([]app.Value, 0, len(args))
	for _, arg := range args {
		name, path, ok := strings.Cut(arg, "=")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("invalid argument %q: expected NAME=PATH", arg)
		}
		values = append(values, app.Value{Name: name, Path: path})
	}
	return values, nil
}
