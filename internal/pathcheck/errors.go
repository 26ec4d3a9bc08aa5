// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package pathcheck

import (
	"errors"
	"fmt"
)

var (
	// ErrNotExist means nothing exists at the checked path.
	ErrNotExist = errors.New("does not exist")
	// ErrNotFile means the checked path exists but is not a regular file.
	ErrNotFile = errors.New("is not a file")
	// ErrWrongExtension means the suffixes of the checked path do not form
	// the expected extension.
	ErrWrongExtension = errors.New("has the wrong extension")
)

// PathError records a failed check on a path.
type PathError struct {
	Path string
	Err  error
	// Detail, when set, replaces the default text after the path.
	Detail string
}

func (e *PathError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("'%s' %v.", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// ArgError records a failed check on the value of a path argument.
type ArgError struct {
	ArgName string
	Path    string
	Err     error
}

func (e *ArgError) Error() string {
	return e.ArgName + ": " + e.Err.Error()
}

func (e *ArgError) Unwrap() error { return e.Err }
