// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package pathcheck

import (
	"fmt"

	"github.com/specialistvlad/pathcheck/internal/extension"
	"github.com/specialistvlad/pathcheck/internal/fsutil"
	"github.com/spf13/afero"
)

// Option configures a checker.
type Option func(*PathChecker)

// WithFs makes the checker query fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(c *PathChecker) {
		if fs != nil {
			c.fs = fs
		}
	}
}

// PathChecker verifies a path against an expected extension.
type PathChecker struct {
	path string
	ext  extension.Extension
	fs   afero.Fs
}

// NewPathChecker returns a checker bound to path and ext.
func NewPathChecker(path string, ext extension.Extension, opts ...Option) *PathChecker {
	c := &PathChecker{
		path: path,
		ext:  ext,
		fs:   afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the checked path.
func (c *PathChecker) Path() string { return c.path }

// Extension returns the expected extension.
func (c *PathChecker) Extension() extension.Extension { return c.ext }

// Exists reports whether anything exists at the path.
func (c *PathChecker) Exists() bool { return fsutil.Exists(c.fs, c.path) }

// IsFile reports whether the path is an existing regular file.
func (c *PathChecker) IsFile() bool { return fsutil.IsFile(c.fs, c.path) }

// IsDir reports whether the path is an existing directory.
func (c *PathChecker) IsDir() bool { return fsutil.IsDir(c.fs, c.path) }

// Suffix returns the joined suffixes the path actually has.
func (c *PathChecker) Suffix() string { return extension.Suffix(c.path) }

// ExtensionIsCorrect reports whether the path has the expected extension.
// It does not touch the filesystem.
func (c *PathChecker) ExtensionIsCorrect() bool { return c.ext.Matches(c.path) }

// ExtensionMessage describes the extension mismatch of the path.
func (c *PathChecker) ExtensionMessage() string {
	return fmt.Sprintf("The extension of '%s' must be '%s'; found '%s'.",
		c.path, c.ext, c.Suffix())
}

// Check returns the first failed check, testing existence, then file kind,
// then extension. The error is a *PathError.
func (c *PathChecker) Check() error {
	if !c.Exists() {
		return &PathError{Path: c.path, Err: ErrNotExist}
	}
	if !c.IsFile() {
		return &PathError{Path: c.path, Err: ErrNotFile}
	}
	if !c.ExtensionIsCorrect() {
		return &PathError{Path: c.path, Err: ErrWrongExtension, Detail: c.ExtensionMessage()}
	}
	return nil
}
