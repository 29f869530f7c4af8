// Package environment implements the state environment: a port-identity to
// value store with explicit fork/merge semantics for parallel composition
// (SPEC_FULL.md §3, §9).
package environment

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ctrlflow/interp/errs"
	"github.com/ctrlflow/interp/ir"
	"github.com/ctrlflow/interp/values"
)

// InterpreterState is the environment: an ownership-controlled mapping from
// port identity to Value, the set of sub-component cell states it owns, and
// a fork-generation tag. Exactly one interpreter owns an InterpreterState at
// a time; Fork/ForceFork produce explicit, logically independent copies.
type InterpreterState struct {
	values     map[*ir.Port]values.Value
	dirty      map[*ir.Port]struct{}
	cells      []*ir.Cell
	generation uuid.UUID
}

// New builds a fresh environment over the given cells, with every port
// initialized to its zero value (width preserved, bits 0).
func New(cells []*ir.Cell) *InterpreterState {
	s := &InterpreterState{
		values:     map[*ir.Port]values.Value{},
		dirty:      map[*ir.Port]struct{}{},
		cells:      cells,
		generation: uuid.New(),
	}
	for _, c := range cells {
		for _, p := range c.Ports {
			s.values[p] = values.New(p.Width, 0)
		}
	}
	return s
}

// Cells returns the sub-component/primitive cells owned by this
// environment, for the cycle-commit phase to iterate.
func (s *InterpreterState) Cells() []*ir.Cell { return s.cells }

// Generation returns this environment's fork-generation identity.
func (s *InterpreterState) Generation() uuid.UUID { return s.generation }

// Get reads a port's current value. Returns UndefinedPortError if the
// environment has never registered this port.
func (s *InterpreterState) Get(p *ir.Port) (values.Value, error) {
	v, ok := s.values[p]
	if !ok {
		return values.Value{}, errors.WithStack(&errs.UndefinedPortError{Port: p})
	}
	return v, nil
}

// GetFromPort is an alias for Get kept for parity with the spec's naming of
// both accessors as distinct operations; both read through the same store.
func (s *InterpreterState) GetFromPort(p *ir.Port) (values.Value, error) {
	return s.Get(p)
}

// Insert overwrites a port's current value and marks it dirty for this
// generation (used by MergeMany to tell "this child wrote it" from "this
// child's copy still equals the baseline").
func (s *InterpreterState) Insert(p *ir.Port, v values.Value) {
	s.values[p] = v
	s.dirty[p] = struct{}{}
	// Registering writes for ports outside the known cell set still keeps
	// the store consistent; InsertCell exists for tests that need to widen
	// the known port set after construction.
}

// InsertCell registers a new cell (and its ports, at their zero value) with
// this environment, for fixtures that build up a component incrementally.
func (s *InterpreterState) InsertCell(c *ir.Cell) {
	s.cells = append(s.cells, c)
	for _, p := range c.Ports {
		if _, ok := s.values[p]; !ok {
			s.values[p] = values.New(p.Width, 0)
		}
	}
}

// IsDirty reports whether a port has been written since this generation
// began (i.e. since the last Fork/ForceFork).
func (s *InterpreterState) IsDirty(p *ir.Port) bool {
	_, ok := s.dirty[p]
	return ok
}

// Fork produces a logically independent copy of this environment: a value
// copy with a fresh generation tag and an empty dirty set, so any later
// write within the fork is distinguishable from the baseline it started
// from.
func (s *InterpreterState) Fork() *InterpreterState {
	cp := make(map[*ir.Port]values.Value, len(s.values))
	for p, v := range s.values {
		cp[p] = v
	}
	return &InterpreterState{
		values:     cp,
		dirty:      map[*ir.Port]struct{}{},
		cells:      s.cells,
		generation: uuid.New(),
	}
}

// ForceFork materializes a stable baseline before forking children. In this
// implementation it is identical to Fork: because merges are resolved via
// the dirty set rather than a value diff, there is no separate "stabilize a
// generation tag" step to perform — see SPEC_FULL.md §9's resolution of the
// corresponding Open Question.
func (s *InterpreterState) ForceFork() *InterpreterState {
	return s.Fork()
}

// divergence records one child's value for a port it actually modified
// relative to the fork baseline.
type divergence struct {
	idx int
	val values.Value
}

// MergeMany joins a collection of forked child environments back into self.
// A child only counts as having written a port if its value differs from
// the fork baseline (s's value for that port before any child forked off
// it) — the dirty set alone cannot tell "this child touched p" from "this
// child's copy happens to still equal the baseline", since every cell
// re-asserts its outputs every cycle in every live fork (SPEC_FULL.md §3,
// property 2). Ports in inputPorts are ignored on the child side, since
// inputs flow inward, not outward. A port is a conflict when two or more
// children diverged from the baseline on it, whatever values they wrote;
// every conflicting port across the whole merge is aggregated into one
// combined error via multierr rather than only the first being reported.
func (s *InterpreterState) MergeMany(children []*InterpreterState, inputPorts map[*ir.Port]bool) error {
	divergences := map[*ir.Port][]divergence{}

	for idx, child := range children {
		for p := range child.dirty {
			if inputPorts[p] {
				continue
			}
			v := child.values[p]
			if baseline, ok := s.values[p]; ok && baseline.Equal(v) {
				continue
			}
			divergences[p] = append(divergences[p], divergence{idx: idx, val: v})
		}
	}

	var conflicts []*errs.ParMergeConflictError
	for p, ds := range divergences {
		for i := 1; i < len(ds); i++ {
			conflicts = append(conflicts, &errs.ParMergeConflictError{
				Port:   p,
				ChildA: ds[0].idx,
				ChildB: ds[i].idx,
				ValueA: ds[0].val,
				ValueB: ds[i].val,
			})
		}
	}

	if len(conflicts) > 0 {
		return errs.CombineParMergeConflicts(conflicts)
	}

	for p, ds := range divergences {
		s.values[p] = ds[0].val
		s.dirty[p] = struct{}{}
	}
	return nil
}
