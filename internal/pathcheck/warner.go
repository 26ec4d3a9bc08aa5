// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines MissingPathArgWarner, the declaration of one expected
// path argument.
//
// The warner holds a name and an extension and derives everything else from
// them: the text shown when the argument was not given, and the checkers used
// once a value is. The filesystem is only reached through the checkers it
// builds.
package pathcheck

import (
	"github.com/specialistvlad/pathcheck/internal/extension"
)

// MissingPathArgWarner pairs a path argument's name with the extension its
// value must have.
type MissingPathArgWarner struct {
	argName string
	ext     extension.Extension
	opts    []Option
}

// NewMissingPathArgWarner returns a warner for argName. Options are passed on
// to every checker the warner builds.
func NewMissingPathArgWarner(argName string, ext extension.Extension, opts ...Option) *MissingPathArgWarner {
	return &MissingPathArgWarner{
		argName: argName,
		ext:     ext,
		opts:    append([]Option(nil), opts...),
	}
}

// NewMissingPathArgWarnerFromValue is NewMissingPathArgWarner for extension
// parts of unknown type. It fails with extension.ErrType unless parts is nil
// or an ordered sequence of strings.
func NewMissingPathArgWarnerFromValue(argName string, parts any, opts ...Option) (*MissingPathArgWarner, error) {
	ext, err := extension.FromValue(parts)
	if err != nil {
		return nil, err
	}
	return NewMissingPathArgWarner(argName, ext, opts...), nil
}

// ArgName returns the name of the path argument.
func (w *MissingPathArgWarner) ArgName() string { return w.argName }

// Extension returns the extension the argument's value must have.
func (w *MissingPathArgWarner) Extension() extension.Extension { return w.ext }

// MissingArgMessage tells that the argument, a path to a file with the
// expected extension, must be provided.
func (w *MissingPathArgWarner) MissingArgMessage() string {
	return w.argName + ": the path to a file with extension '" + w.ext.String() + "' must be provided."
}

// PathArgChecker returns a checker for path bound to the argument name and
// extension of w.
func (w *MissingPathArgWarner) PathArgChecker(path string) *PathArgChecker {
	return NewPathArgChecker(path, w.ext, w.argName, w.opts...)
}

// PathChecker returns a checker for path bound to the extension of w.
func (w *MissingPathArgWarner) PathChecker(path string) *PathChecker {
	return NewPathChecker(path, w.ext, w.opts...)
}
