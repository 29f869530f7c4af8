package interpreter

import (
	"github.com/pkg/errors"

	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/errs"
	"github.com/ctrlflow/interp/internal/obslog"
	"github.com/ctrlflow/interp/ir"
	"github.com/ctrlflow/interp/values"
)

// DefaultConvergenceCeiling bounds the number of combinational evaluation
// rounds before a cycle is reported as ConvergenceFailure (SPEC_FULL.md
// §4.1: "a configurable ceiling, default on the order of thousands").
const DefaultConvergenceCeiling = 10000

// AssignmentInterpreter is the combinational fixed-point solver and
// one-cycle advance for a flat assignment set guarded by a done port
// (SPEC_FULL.md §4.1). It is the leaf every other interpreter in the tower
// eventually bottoms out in.
type AssignmentInterpreter struct {
	env          *environment.InterpreterState
	groupAssigns []*ir.Assignment
	continuous   []*ir.Assignment
	done         *ir.Port // nil for a comb-only (no go/done) assignment set
	ceiling      int
	convergedOnce bool
}

// NewAssignmentInterpreter builds a solver over env, driven to completion by
// done (which may be nil for a purely combinational set such as a
// CombGroup).
func NewAssignmentInterpreter(env *environment.InterpreterState, done *ir.Port, groupAssigns, continuous []*ir.Assignment) (*AssignmentInterpreter, error) {
	if done != nil && done.Width != 1 {
		return nil, errors.WithStack(&errs.InvalidDonePortError{Port: done})
	}
	return &AssignmentInterpreter{
		env:          env,
		groupAssigns: groupAssigns,
		continuous:   continuous,
		done:         done,
		ceiling:      DefaultConvergenceCeiling,
	}, nil
}

// Get reads a port through this interpreter's environment.
func (a *AssignmentInterpreter) Get(p *ir.Port) values.Value {
	v, _ := a.env.Get(p)
	return v
}

// GetEnv returns the underlying environment (not yet wrapped in a view;
// callers at the composition layer wrap it as needed).
func (a *AssignmentInterpreter) GetEnv() *environment.InterpreterState { return a.env }

// liveAssignments is the group-local set plus the always-live continuous
// set, evaluated together every round.
func (a *AssignmentInterpreter) liveAssignments() []*ir.Assignment {
	all := make([]*ir.Assignment, 0, len(a.groupAssigns)+len(a.continuous))
	all = append(all, a.groupAssigns...)
	all = append(all, a.continuous...)
	return all
}

// stepConvergenceOnce repeatedly evaluates every live assignment whose
// guard is true and writes its dst, until no port value changes within the
// round (the fixed point) or the iteration ceiling is exceeded. Re-checking
// every assignment each round (rather than a dirty-port worklist) is
// observationally identical at the fixed point and far simpler to verify
// (SPEC_FULL.md §9).
func (a *AssignmentInterpreter) stepConvergenceOnce() error {
	all := a.liveAssignments()
	get := func(p *ir.Port) values.Value { return a.Get(p) }

	for round := 0; round < a.ceiling; round++ {
		driven := map[*ir.Port]*ir.Assignment{}
		for _, asg := range all {
			if !asg.Guard.Eval(get) {
				continue
			}
			if prev, ok := driven[asg.Dst]; ok && prev.Src != asg.Src {
				return errors.WithStack(&errs.MultipleDriverError{Dst: asg.Dst, First: prev, Second: asg})
			}
			driven[asg.Dst] = asg
		}

		changed := false
		for dst, asg := range driven {
			newVal := a.Get(asg.Src)
			cur := a.Get(dst)
			if !cur.Equal(newVal) {
				a.env.Insert(dst, newVal)
				changed = true
			}
		}
		if !changed {
			a.convergedOnce = true
			return nil
		}
		if round == a.ceiling/2 {
			obslog.Logger().WithField("rounds", round).Debug("convergence approaching ceiling")
		}
	}
	return errors.WithStack(&errs.ConvergenceFailureError{Ceiling: a.ceiling, Assignments: all})
}

// commitCycle lets every stateful cell in the environment observe its
// latched inputs and advance by one tick.
func (a *AssignmentInterpreter) commitCycle() {
	for _, cell := range a.env.Cells() {
		if cell.Prim != nil {
			cell.Prim.Commit(a.env)
		}
	}
}

// IsDeconstructable reports whether this interpreter has reached its
// terminal state: the done port (if any) reads high after the last commit,
// or no done port was given and at least one convergence pass has run.
func (a *AssignmentInterpreter) IsDeconstructable() bool {
	if a.done == nil {
		return a.convergedOnce
	}
	return a.Get(a.done).AsBool()
}

// ForceStepCycle advances one full cycle (converge + commit) regardless of
// whether done is already high. Used by the structural driver, which must
// keep ticking a component with no control tree.
func (a *AssignmentInterpreter) ForceStepCycle() error {
	if err := a.stepConvergenceOnce(); err != nil {
		return err
	}
	a.commitCycle()
	return nil
}

// Step advances one full cycle, or does nothing once IsDeconstructable.
func (a *AssignmentInterpreter) Step() error {
	if a.IsDeconstructable() {
		return nil
	}
	return a.ForceStepCycle()
}

// StepConvergence runs only the combinational phase, without a cycle
// commit, so an enclosing interpreter can observe ports without advancing
// time. Idempotent: a second call with no intervening Step is already at
// the fixed point and returns immediately.
func (a *AssignmentInterpreter) StepConvergence() error {
	return a.stepConvergenceOnce()
}

// Run loops Step until IsDeconstructable.
func (a *AssignmentInterpreter) Run() error {
	for !a.IsDeconstructable() {
		if err := a.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Reset consumes the interpreter, returning its environment. There is no
// auxiliary state beyond the environment in this implementation, so Reset
// is just the accessor; it exists as a distinct operation to mirror the
// source's ownership-transfer shape and to give callers a single place to
// extend if auxiliary bookkeeping is added later.
func (a *AssignmentInterpreter) Reset() (*environment.InterpreterState, error) {
	return a.env, nil
}
