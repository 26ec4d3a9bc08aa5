// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Rules model and the loader that builds it from HCL.
//
// Why decode with body schemas instead of a tagged struct?
//
// The `extension` attribute has no single Go type. It may be null, a list or
// a tuple, and anything else must be reported as a type error pointing at the
// offending expression. Reading the block with an explicit schema keeps the
// raw expression around so its value can be checked by extension.FromCty,
// while the simple attributes still go through gohcl.
package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pathcheck/internal/ctxlog"
	"github.com/specialistvlad/pathcheck/internal/extension"
	"github.com/specialistvlad/pathcheck/internal/pathcheck"
	"github.com/spf13/afero"
)

// Rule is one declared path argument.
type Rule struct {
	Warner      *pathcheck.MissingPathArgWarner
	Required    bool
	Description string
	// DeclRange is the location of the rule's block header.
	DeclRange hcl.Range
}

// Name returns the argument name of the rule.
func (r *Rule) Name() string { return r.Warner.ArgName() }

// Rules is the ordered set of declared path arguments.
type Rules struct {
	rules  []*Rule
	byName map[string]*Rule
}

// All returns the rules in declaration order.
func (r *Rules) All() []*Rule {
	return append([]*Rule(nil), r.rules...)
}

// Lookup returns the rule declared for name.
func (r *Rules) Lookup(name string) (*Rule, bool) {
	rule, ok := r.byName[name]
	return rule, ok
}

// Len returns the number of rules.
func (r *Rules) Len() int { return len(r.rules) }

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "path_arg", LabelNames: []string{"name"}},
	},
}

var pathArgSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "extension"},
		{Name: "required"},
		{Name: "description"},
	},
}

// Loader reads rules files from a filesystem.
type Loader struct {
	fs          afero.Fs
	checkerOpts []pathcheck.Option
}

// NewLoader returns a Loader reading from fs. The warners of loaded rules
// build checkers that query the same fs. A nil fs means the OS filesystem.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{
		fs:          fs,
		checkerOpts: []pathcheck.Option{pathcheck.WithFs(fs)},
	}
}

// Load reads and decodes the rules file at path.
func (l *Loader) Load(ctx context.Context, path string) (*Rules, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading rules file", "path", path)

	src, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	return l.Parse(ctx, src, path)
}

// Parse decodes rules from src. filename is only used in diagnostics.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*Rules, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", filename, diags)
	}

	rules, diags := l.decode(file.Body)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rules file %s: %w", filename, diags)
	}

	logger.Debug("Rules file decoded", "path", filename, "rules_found", rules.Len())
	return rules, nil
}

func (l *Loader) decode(body hcl.Body) (*Rules, hcl.Diagnostics) {
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	rules := &Rules{
		rules:  make([]*Rule, 0, len(content.Blocks)),
		byName: make(map[string]*Rule, len(content.Blocks)),
	}
	for _, block := range content.Blocks {
		rule, ruleDiags := l.decodeRule(block)
		diags = append(diags, ruleDiags...)
		if ruleDiags.HasErrors() {
			continue // Keep going to report every broken rule at once.
		}

		if prev, exists := rules.byName[rule.Name()]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate path argument",
				Detail:   fmt.Sprintf("Path argument %q was already declared at %s.", rule.Name(), prev.DeclRange),
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}
		rules.rules = append(rules.rules, rule)
		rules.byName[rule.Name()] = rule
	}
	return rules, diags
}

func (l *Loader) decodeRule(block *hcl.Block) (*Rule, hcl.Diagnostics) {
	name := block.Labels[0]
	if name == "" {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid path argument name",
			Detail:   "The name of a path argument must not be empty.",
			Subject:  block.LabelRanges[0].Ptr(),
		}}
	}

	content, diags := block.Body.Content(pathArgSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	rule := &Rule{Required: true, DeclRange: block.DefRange}

	if attr, exists := content.Attributes["required"]; exists {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &rule.Required)...)
	}
	if attr, exists := content.Attributes["description"]; exists {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &rule.Description)...)
	}

	var ext extension.Extension
	if attr, exists := content.Attributes["extension"]; exists {
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if !valDiags.HasErrors() {
			var err error
			ext, err = extension.FromCty(val)
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid extension",
					Detail:   fmt.Sprintf("The extension of path argument %q is invalid: %s.", name, err),
					Subject:  attr.Expr.Range().Ptr(),
				})
			}
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	rule.Warner = pathcheck.NewMissingPathArgWarner(name, ext, l.checkerOpts...)
	return rule, diags
}
