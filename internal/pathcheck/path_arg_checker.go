// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package pathcheck

import (
	"fmt"

	"github.com/specialistvlad/pathcheck/internal/extension"
)

// PathArgChecker is a PathChecker that knows the name of the argument its
// path came from and prefixes its failures with it.
type PathArgChecker struct {
	*PathChecker
	argName string
}

// NewPathArgChecker returns a checker bound to path, ext and argName.
func NewPathArgChecker(path string, ext extension.Extension, argName string, opts ...Option) *PathArgChecker {
	return &PathArgChecker{
		PathChecker: NewPathChecker(path, ext, opts...),
		argName:     argName,
	}
}

// ArgName returns the name of the argument the path is the value of.
func (c *PathArgChecker) ArgName() string { return c.argName }

func (c *PathArgChecker) fail(err error) error {
	return &ArgError{ArgName: c.argName, Path: c.path, Err: err}
}

// CheckExists fails when nothing exists at the path.
func (c *PathArgChecker) CheckExists() error {
	if c.Exists() {
		return nil
	}
	return c.fail(fmt.Errorf("'%s' %w.", c.path, ErrNotExist))
}

// CheckIsFile fails when the path is not a regular file.
func (c *PathArgChecker) CheckIsFile() error {
	if c.IsFile() {
		return nil
	}
	return c.fail(fmt.Errorf("'%s' %w.", c.path, ErrNotFile))
}

// CheckExtension fails when the path does not have the expected extension.
func (c *PathArgChecker) CheckExtension() error {
	if c.ExtensionIsCorrect() {
		return nil
	}
	return c.fail(fmt.Errorf("the path must have extension '%s'; '%s' has '%s': %w",
		c.ext, c.path, c.Suffix(), ErrWrongExtension))
}

// Check runs CheckExists, CheckIsFile and CheckExtension in that order and
// returns the first failure.
func (c *PathArgChecker) Check() error {
	for _, check := range []func() error{c.CheckExists, c.CheckIsFile, c.CheckExtension} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
