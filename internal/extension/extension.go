// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package extension defines Extension, the file name extension a path
// argument is expected to carry.
//
// An extension is kept as an ordered sequence of string parts rather than a
// single string. Parts are concatenated with no separator wherever the
// extension is compared or printed, so [".tar", ".gz"] and [".tar.gz"] are
// the same extension, and [".", "json"] equals [".json"]. Whatever
// convention the caller picks for splitting is preserved as given.
package extension

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/specialistvlad/pathcheck/internal/fsutil"
)

// ErrType is returned when a value cannot be used as extension parts: it is
// neither nil nor an ordered sequence of strings.
var ErrType = errors.New("extension must be nil or an ordered sequence of strings")

// Extension is an immutable ordered sequence of extension parts. The zero
// value is the empty extension.
type Extension struct {
	parts []string
}

// New returns an Extension made of a copy of parts.
func New(parts ...string) Extension {
	if len(parts) == 0 {
		return Extension{}
	}
	return Extension{parts: append([]string(nil), parts...)}
}

// FromValue builds an Extension from a dynamically typed value. It accepts
// nil, a []string, a string array, or a []any holding only strings.
func FromValue(v any) (Extension, error) {
	if v == nil {
		return Extension{}, nil
	}
	if parts, ok := v.([]string); ok {
		return New(parts...), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return Extension{}, fmt.Errorf("%w: got %T", ErrType, v)
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return Extension{}, nil
	}

	parts := make([]string, rv.Len())
	for i := range parts {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Interface && !elem.IsNil() {
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.String {
			return Extension{}, fmt.Errorf("%w: element %d of %T is not a string", ErrType, i, v)
		}
		parts[i] = elem.String()
	}
	return New(parts...), nil
}

// Parts returns a copy of the extension parts.
func (e Extension) Parts() []string {
	if len(e.parts) == 0 {
		return nil
	}
	return append([]string(nil), e.parts...)
}

// Len returns the number of parts.
func (e Extension) Len() int { return len(e.parts) }

// IsEmpty reports whether the joined extension is the empty string.
func (e Extension) IsEmpty() bool { return e.String() == "" }

// String returns the parts concatenated with no separator.
func (e Extension) String() string { return strings.Join(e.parts, "") }

// Equal reports whether both extensions hold the same parts in the same order.
func (e Extension) Equal(other Extension) bool {
	if len(e.parts) != len(other.parts) {
		return false
	}
	for i := range e.parts {
		if e.parts[i] != other.parts[i] {
			return false
		}
	}
	return true
}

// Suffix returns the concatenated suffixes of the last element of path.
func Suffix(path string) string {
	return strings.Join(fsutil.Suffixes(path), "")
}

// Matches reports whether the suffixes of path, joined, equal the extension.
// The empty extension matches only paths without a suffix.
func (e Extension) Matches(path string) bool {
	return Suffix(path) == e.String()
}
