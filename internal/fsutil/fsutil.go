// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package fsutil provides file system utility functions.
package fsutil

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Exists reports whether anything exists at path.
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// IsFile reports whether path exists and is a regular file.
func IsFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Suffixes returns the file name suffixes of the last element of path, each
// with its leading dot: "a/b.tar.gz" gives [".tar", ".gz"]. Leading dots of
// the name are not separators (".bashrc" has no suffix), and a name ending
// in a dot has no suffixes at all.
func Suffixes(path string) []string {
	name := filepath.Base(path)
	if strings.HasSuffix(name, ".") {
		return nil
	}

	segments := strings.Split(strings.TrimLeft(name, "."), ".")
	if len(segments) < 2 {
		return nil
	}

	suffixes := make([]string, 0, len(segments)-1)
	for _, s := range segments[1:] {
		suffixes = append(suffixes, "."+s)
	}
	return suffixes
}
