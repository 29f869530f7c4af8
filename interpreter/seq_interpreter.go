package interpreter

import (
	"github.com/pkg/errors"

	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/errs"
	"github.com/ctrlflow/interp/ir"
)

// seqState is the Seq FSM: Iterating while a child statement is running,
// Done once every statement has run. Go's GC ownership model means the
// struct field can simply be reassigned on transition; no transient
// sentinel value is required (SPEC_FULL.md §9).
type seqState struct {
	iterating bool
	child     *ControlInterpreter
	nextIndex int
	done      *environment.InterpreterState
}

// SeqInterpreter runs its statements one at a time, in program order
// (SPEC_FULL.md §4.4).
type SeqInterpreter struct {
	seq   *ir.Seq
	info  ComponentInfo
	state seqState
}

func NewSeqInterpreter(seq *ir.Seq, env *environment.InterpreterState, info ComponentInfo) (*SeqInterpreter, error) {
	if len(seq.Stmts) == 0 {
		return &SeqInterpreter{seq: seq, info: info, state: seqState{done: env}}, nil
	}
	first, err := NewControlInterpreter(seq.Stmts[0], env, info)
	if err != nil {
		return nil, err
	}
	return &SeqInterpreter{seq: seq, info: info, state: seqState{iterating: true, child: first, nextIndex: 1}}, nil
}

func (s *SeqInterpreter) Step() error {
	if !s.state.iterating {
		return nil
	}
	if !s.state.child.IsDone() {
		return s.state.child.Step()
	}

	env, err := s.state.child.Deconstruct()
	if err != nil {
		return err
	}

	if s.state.nextIndex < len(s.seq.Stmts) {
		next, err := NewControlInterpreter(s.seq.Stmts[s.state.nextIndex], env, s.info)
		if err != nil {
			return err
		}
		idx := s.state.nextIndex + 1
		if err := next.Step(); err != nil {
			return err
		}
		s.state = seqState{iterating: true, child: next, nextIndex: idx}
		return nil
	}

	s.state = seqState{done: env}
	return nil
}

func (s *SeqInterpreter) IsDone() bool { return !s.state.iterating && s.state.done != nil }

func (s *SeqInterpreter) Deconstruct() (*environment.InterpreterState, error) {
	if s.state.iterating {
		return nil, errors.WithStack(&errs.InvalidSeqStateError{State: "iterating"})
	}
	return s.state.done, nil
}

func (s *SeqInterpreter) Run() error {
	if !s.state.iterating {
		return nil
	}
	if err := s.state.child.Run(); err != nil {
		return err
	}
	env, err := s.state.child.Deconstruct()
	if err != nil {
		return err
	}
	idx := s.state.nextIndex
	for idx < len(s.seq.Stmts) {
		next, err := NewControlInterpreter(s.seq.Stmts[idx], env, s.info)
		idx++
		if err != nil {
			return err
		}
		if err := next.Run(); err != nil {
			return err
		}
		env, err = next.Deconstruct()
		if err != nil {
			return err
		}
	}
	s.state = seqState{done: env}
	return nil
}

func (s *SeqInterpreter) Converge() error {
	if s.state.iterating {
		return s.state.child.Converge()
	}
	wrapper, err := NewEnableInterpreter(ir.EnableHolder{Kind: ir.HolderCombGroup}, "", false, s.state.done, s.info.Continuous, s.info.QIN)
	if err != nil {
		return err
	}
	return wrapper.Converge()
}

func (s *SeqInterpreter) GetEnv() environment.StateView {
	if s.state.iterating {
		return s.state.child.GetEnv()
	}
	return s.state.done
}

func (s *SeqInterpreter) GetEnvMut() environment.MutStateView {
	if s.state.iterating {
		return s.state.child.GetEnvMut()
	}
	return s.state.done
}

func (s *SeqInterpreter) CurrentlyExecutingGroup() map[debugger.GroupQIN]struct{} {
	if s.state.iterating {
		return s.state.child.CurrentlyExecutingGroup()
	}
	return noGroups()
}

func (s *SeqInterpreter) GetActiveTree() []debugger.ActiveTreeNode {
	if s.state.iterating {
		return s.state.child.GetActiveTree()
	}
	return nil
}
