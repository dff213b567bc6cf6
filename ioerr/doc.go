// Package ioerr holds the error catalog shared by every iox package.
//
// Each failure carries a [Code] from a fixed catalog, a message, and where
// available the source [Pos] of the offending text. Codes are themselves
// errors, so callers match on them with errors.Is:
//
//	if errors.Is(err, ioerr.ValueRequired) {
//	    ...
//	}
//
// Errors are fail-fast: an [Error] aborts the whole parse, load or serialize
// call that produced it.
package ioerr
