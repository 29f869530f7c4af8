package interpreter

import (
	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
)

// EmptyInterpreter is the no-op leaf for Control::Empty. IsDone is always
// true and Step/Run leave the environment untouched (SPEC_FULL.md §4.8).
type EmptyInterpreter struct {
	env *environment.InterpreterState
}

func NewEmptyInterpreter(env *environment.InterpreterState) *EmptyInterpreter {
	return &EmptyInterpreter{env: env}
}

func (e *EmptyInterpreter) Step() error    { return nil }
func (e *EmptyInterpreter) Run() error     { return nil }
func (e *EmptyInterpreter) IsDone() bool   { return true }
func (e *EmptyInterpreter) Converge() error { return nil }

func (e *EmptyInterpreter) Deconstruct() (*environment.InterpreterState, error) {
	return e.env, nil
}

func (e *EmptyInterpreter) GetEnv() environment.StateView    { return e.env }
func (e *EmptyInterpreter) GetEnvMut() environment.MutStateView { return e.env }

func (e *EmptyInterpreter) CurrentlyExecutingGroup() map[debugger.GroupQIN]struct{} {
	return noGroups()
}

func (e *EmptyInterpreter) GetActiveTree() []debugger.ActiveTreeNode {
	return nil
}
