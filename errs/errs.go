// Package errs defines the distinct error kinds the interpreter tower
// surfaces across its boundary (SPEC_FULL.md §6, §7). It sits below both
// environment and interpreter so neither needs to import the other just to
// construct or recognize an error kind.
package errs

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/ctrlflow/interp/ir"
	"github.com/ctrlflow/interp/values"
)

// UndefinedPortError is returned when a port is read that an environment has
// never registered, e.g. because it belongs to a different component's cell
// set.
type UndefinedPortError struct {
	Port *ir.Port
}

func (e *UndefinedPortError) Error() string {
	return "undefined port: " + e.Port.QualifiedName()
}

// MultipleDriverError reports two assignments whose guards evaluated true
// simultaneously for the same dst with different src ports.
type MultipleDriverError struct {
	Dst          *ir.Port
	First, Second *ir.Assignment
}

func (e *MultipleDriverError) Error() string {
	return fmt.Sprintf("multiple drivers for %s: %s and %s both asserted",
		e.Dst.QualifiedName(), e.First.Src.QualifiedName(), e.Second.Src.QualifiedName())
}

// ConvergenceFailureError reports that combinational convergence did not
// reach a fixed point within the configured iteration ceiling.
type ConvergenceFailureError struct {
	Ceiling     int
	Assignments []*ir.Assignment
}

func (e *ConvergenceFailureError) Error() string {
	return fmt.Sprintf("convergence failed to stabilize within %d rounds over live assignments: %s",
		e.Ceiling, formatAssignmentList(e.Assignments))
}

// ParMergeConflictError reports that two Par children both wrote the same
// non-input port during a single Deconstruct.
type ParMergeConflictError struct {
	Port           *ir.Port
	ChildA, ChildB int
	ValueA, ValueB values.Value
}

func (e *ParMergeConflictError) Error() string {
	return fmt.Sprintf("par merge conflict on %s: branch %d wrote %s, branch %d wrote %s",
		e.Port.QualifiedName(), e.ChildA, e.ValueA, e.ChildB, e.ValueB)
}

// CombineParMergeConflicts aggregates every conflicting port found during a
// single merge into one combined error via multierr, rather than reporting
// only the first.
func CombineParMergeConflicts(conflicts []*ParMergeConflictError) error {
	if len(conflicts) == 0 {
		return nil
	}
	var combined error
	for _, c := range conflicts {
		combined = multierr.Append(combined, c)
	}
	return combined
}

// InvalidSeqStateError, InvalidIfStateError, InvalidWhileStateError report a
// caller calling Deconstruct on a state machine that has not reached Done.
type InvalidSeqStateError struct{ State string }

func (e *InvalidSeqStateError) Error() string {
	return "invalid seq state for deconstruct: " + e.State
}

type InvalidIfStateError struct{ State string }

func (e *InvalidIfStateError) Error() string {
	return "invalid if state for deconstruct: " + e.State
}

type InvalidWhileStateError struct{ State string }

func (e *InvalidWhileStateError) Error() string {
	return "invalid while state for deconstruct: " + e.State
}

// IoError wraps a failure loading a source-map file from disk.
type IoError struct{ Path string; Cause error }

func (e *IoError) Error() string { return fmt.Sprintf("reading source map %q: %v", e.Path, e.Cause) }
func (e *IoError) Unwrap() error { return e.Cause }

// Utf8Error reports invalid UTF-8 content in a source-map file.
type Utf8Error struct{ Path string }

func (e *Utf8Error) Error() string { return fmt.Sprintf("source map %q is not valid UTF-8", e.Path) }

// MetadataParseError reports a structurally invalid source-map file.
type MetadataParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *MetadataParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("metadata parse error at %s: %s", loc, e.Msg)
}

// InvalidDonePortError reports a done port whose width is not exactly 1.
type InvalidDonePortError struct{ Port *ir.Port }

func (e *InvalidDonePortError) Error() string {
	return fmt.Sprintf("invalid done port %s: width %d, expected 1", e.Port.QualifiedName(), e.Port.Width)
}

// formatAssignmentList is a small helper used when constructing
// ConvergenceFailureError/MultipleDriverError messages that want to name
// the offending assignment set, per SPEC_FULL.md §7.
func formatAssignmentList(assigns []*ir.Assignment) string {
	parts := make([]string, 0, len(assigns))
	for _, a := range assigns {
		parts = append(parts, a.Dst.QualifiedName()+"<="+a.Src.QualifiedName())
	}
	return strings.Join(parts, ", ")
}
