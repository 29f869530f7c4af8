package interpreter

import (
	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/ir"
)

// StructuralInterpreter drives a component that has no control tree (a
// `control {}`-less, purely structural component): it ticks the
// component's continuous assignments against its signature done port every
// cycle, with no group handshake involved (SPEC_FULL.md §4.10).
type StructuralInterpreter struct {
	interp *AssignmentInterpreter
	qin    debugger.ComponentQualifiedInstanceName
}

func NewStructuralInterpreter(env *environment.InterpreterState, signatureDone *ir.Port, continuous []*ir.Assignment, qin debugger.ComponentQualifiedInstanceName) (*StructuralInterpreter, error) {
	interp, err := NewAssignmentInterpreter(env, signatureDone, nil, continuous)
	if err != nil {
		return nil, err
	}
	return &StructuralInterpreter{interp: interp, qin: qin}, nil
}

// Step always forces a full cycle, even once the component's done port
// already reads high: a structural component has no group to gate re-entry,
// so the caller (typically a Par/Seq parent driving it as a sub-component)
// is responsible for deciding how many cycles to run it.
func (s *StructuralInterpreter) Step() error { return s.interp.ForceStepCycle() }

func (s *StructuralInterpreter) IsDone() bool { return s.interp.IsDeconstructable() }

func (s *StructuralInterpreter) Run() error {
	if err := s.Step(); err != nil {
		return err
	}
	for !s.IsDone() {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *StructuralInterpreter) Converge() error { return s.interp.StepConvergence() }

// Deconstruct runs FinishInterpretation to guarantee the final state is
// observable even if the last Step left an intermediate combinational
// value latched (SPEC_FULL.md §4.10).
func (s *StructuralInterpreter) Deconstruct() (*environment.InterpreterState, error) {
	return s.FinishInterpretation()
}

// FinishInterpretation forces one final convergence pass so every
// continuous assignment is settled before handing the environment back,
// regardless of whether Step was ever called.
func (s *StructuralInterpreter) FinishInterpretation() (*environment.InterpreterState, error) {
	if err := s.interp.StepConvergence(); err != nil {
		return nil, err
	}
	return s.interp.Reset()
}

func (s *StructuralInterpreter) GetEnv() environment.StateView       { return s.interp.GetEnv() }
func (s *StructuralInterpreter) GetEnvMut() environment.MutStateView { return s.interp.GetEnv() }

func (s *StructuralInterpreter) CurrentlyExecutingGroup() map[debugger.GroupQIN]struct{} {
	return noGroups()
}

func (s *StructuralInterpreter) GetActiveTree() []debugger.ActiveTreeNode { return nil }
