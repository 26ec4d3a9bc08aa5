// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package pathcheck validates file paths given as command-line arguments.
//
// # Core Concepts
//
//   - PathChecker: verifies that a path exists, that it is a regular file and
//     that its suffixes form the expected extension.
//
//   - PathArgChecker: the same checks, reported in the context of the
//     command-line argument the path was the value of.
//
//   - MissingPathArgWarner: the declaration of one expected path argument (a
//     name and an extension). It produces the message shown when the argument
//     is absent and builds the two checkers once a value is known.
//
// A warner does no I/O of its own and never changes after construction, so
// one instance can be shared freely between goroutines. Checkers read the
// filesystem only when a query method is called.
package pathcheck
