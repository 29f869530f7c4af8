package main

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/ctrlflow/interp/errs"
)

// Exit codes per SPEC_FULL.md §6: 0 on clean finish, a distinct non-zero
// code per error kind so a caller script can tell a convergence bug from a
// merge conflict from a corrupt source-map file without parsing text.
const (
	exitOK = iota
	exitConvergenceFailure
	exitMultipleDriver
	exitInvalidSeqState
	exitInvalidIfState
	exitInvalidWhileState
	exitParMergeConflict
	exitUndefinedPort
	exitIoError
	exitUtf8Error
	exitMetadataParseError
	exitInvalidDonePort
	exitUnknown
)

// exitCodeFor maps an error returned by the interpreter tower to a process
// exit code. A Par merge conflict may arrive as a multierr aggregate of
// several ParMergeConflictError values rather than a single error, so that
// case is checked before falling back to errors.As on the single-error
// kinds.
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}

	for _, e := range multierr.Errors(err) {
		var conflict *errs.ParMergeConflictError
		if errors.As(e, &conflict) {
			return exitParMergeConflict
		}
	}

	var convergence *errs.ConvergenceFailureError
	var multipleDriver *errs.MultipleDriverError
	var invalidSeq *errs.InvalidSeqStateError
	var invalidIf *errs.InvalidIfStateError
	var invalidWhile *errs.InvalidWhileStateError
	var undefinedPort *errs.UndefinedPortError
	var ioErr *errs.IoError
	var utf8Err *errs.Utf8Error
	var parseErr *errs.MetadataParseError
	var invalidDone *errs.InvalidDonePortError

	switch {
	case errors.As(err, &convergence):
		return exitConvergenceFailure
	case errors.As(err, &multipleDriver):
		return exitMultipleDriver
	case errors.As(err, &invalidSeq):
		return exitInvalidSeqState
	case errors.As(err, &invalidIf):
		return exitInvalidIfState
	case errors.As(err, &invalidWhile):
		return exitInvalidWhileState
	case errors.As(err, &undefinedPort):
		return exitUndefinedPort
	case errors.As(err, &ioErr):
		return exitIoError
	case errors.As(err, &utf8Err):
		return exitUtf8Error
	case errors.As(err, &parseErr):
		return exitMetadataParseError
	case errors.As(err, &invalidDone):
		return exitInvalidDonePort
	default:
		return exitUnknown
	}
}
