package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/pathcheck/internal/ctxlog"
)

// ErrValidationFailed is returned by Run when at least one path argument is
// missing, unknown or invalid.
var ErrValidationFailed = errors.New("path argument validation failed")

// Problem is one reported validation failure.
type Problem struct {
	ArgName string
	Path    string // empty when the argument is missing
	Message string
	Err     error // nil for missing and unknown arguments
}

// Report summarizes a run.
type Report struct {
	Checked  int
	Skipped  int
	Problems []Problem
}

// OK reports whether the run found no problem.
func (r *Report) OK() bool { return len(r.Problems) == 0 }

func (r *Report) add(p Problem) { r.Problems = append(r.Problems, p) }

// Run loads the rules file and validates every given value against it,
// writing one line per problem and a summary to the App's output.
func (a *App) Run(ctx context.Context) (*Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	rules, err := a.loader.Load(ctx, a.config.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	a.logger.Info("Rules loaded.", "path", a.config.RulesPath, "rules_found", rules.Len())

	report := &Report{}
	for _, rule := range rules.All() {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name := rule.Name()
		path, given := a.config.Lookup(name)
		if !given {
			if !rule.Required {
				a.logger.Debug("Optional path argument not given, skipping.", "arg", name)
				report.Skipped++
				continue
			}
			a.logger.Warn("Required path argument missing.", "arg", name)
			report.add(Problem{ArgName: name, Message: rule.Warner.MissingArgMessage()})
			continue
		}

		report.Checked++
		if err := rule.Warner.PathArgChecker(path).Check(); err != nil {
			a.logger.Warn("Path argument is invalid.", "arg", name, "path", path, "error", err)
			report.add(Problem{ArgName: name, Path: path, Message: err.Error(), Err: err})
			continue
		}
		a.logger.Debug("Path argument is valid.", "arg", name, "path", path)
	}

	for _, v := range a.config.Values {
		if _, declared := rules.Lookup(v.Name); !declared {
			a.logger.Warn("Unknown path argument.", "arg", v.Name)
			report.add(Problem{
				ArgName: v.Name,
				Path:    v.Path,
				Message: v.Name + ": not a declared path argument.",
			})
		}
	}

	if err := a.writeReport(report); err != nil {
		return report, fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.", "problems", len(report.Problems))
	if !report.OK() {
		return report, fmt.Errorf("%w: %d problem(s)", ErrValidationFailed, len(report.Problems))
	}
	return report, nil
}

func (a *App) writeReport(r *Report) error {
	for _, p := range r.Problems {
		if _, err := fmt.Fprintln(a.outW, p.Message); err != nil {
			return err
		}
	}

	var err error
	if r.OK() {
		_, err = fmt.Fprintf(a.outW, "%d path argument(s) checked, all valid.\n", r.Checked)
	} else {
		_, err = fmt.Fprintf(a.outW, "%d path argument(s) checked, %d problem(s) found.\n", r.Checked, len(r.Problems))
	}
	return err
}
