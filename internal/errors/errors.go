// Package errors provides error handling for environhelper.
//
// It re-exports github.com/cockroachdb/errors so callers get stack traces,
// wrapping and user hints from one import, and declares the sentinel errors
// that the generator reports to the CLI.
//
// Usage:
//
//	if err != nil {
//	    return errors.Wrapf(err, "failed to read %s", path)
//	}
//
//	if errors.Is(err, errors.ErrSyntax) {
//	    // settings file is not valid python
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New   = crdb.New
	Wrapf = crdb.Wrapf
	Mark  = crdb.Mark
)

// User-facing hints
var (
	WithHint    = crdb.WithHint
	GetAllHints = crdb.GetAllHints
)

// Error inspection
var (
	Is = crdb.Is
)

// Sentinel errors. Extraction-level ambiguities (unknown accessors,
// non-literal keys) are never errors; only these structural failures are.
var (
	ErrInputNotFound   = New("settings file not found")
	ErrInputUnreadable = New("settings file unreadable")
	ErrSyntax          = New("invalid python syntax")
	ErrOutputWrite     = New("output file not writable")
	ErrUnknownFormat   = New("unknown output format")
	ErrEnvFileNotFound = New("env file not found")
	ErrEnvFileInvalid  = New("env file unreadable or malformed")
)
