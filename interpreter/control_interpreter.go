package interpreter

import (
	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/ir"
)

// ControlInterpreter is a tagged variant over every other interpreter in
// the tower: EmptyInterpreter, EnableInterpreter, InvokeInterpreter,
// SeqInterpreter, ParInterpreter, IfInterpreter, WhileInterpreter. It has
// no behavior of its own beyond dispatch (SPEC_FULL.md §4.9) — modeled here
// as a Go interface value held in a single field, a virtual-call table
// rather than a switch repeated in every method (see DESIGN.md).
type ControlInterpreter struct {
	inner Interpreter
}

// NewControlInterpreter builds the concrete interpreter for ctrl's variant
// and wraps it.
func NewControlInterpreter(ctrl *ir.Control, env *environment.InterpreterState, info ComponentInfo) (*ControlInterpreter, error) {
	var inner Interpreter
	var err error

	switch ctrl.Kind {
	case ir.CtrlEmpty:
		inner = NewEmptyInterpreter(env)
	case ir.CtrlEnable:
		inner, err = NewGroupEnableInterpreter(ctrl.Enable.Group, env, info.Continuous, info.QIN)
	case ir.CtrlInvoke:
		inner, err = NewInvokeInterpreter(ctrl.Invoke, env, info.Continuous, info.QIN)
	case ir.CtrlSeq:
		inner, err = NewSeqInterpreter(ctrl.Seq, env, info)
	case ir.CtrlPar:
		inner, err = NewParInterpreter(ctrl.Par, env, info)
	case ir.CtrlIf:
		inner, err = NewIfInterpreter(ctrl.If, env, info)
	case ir.CtrlWhile:
		inner, err = NewWhileInterpreter(ctrl.While, env, info)
	}
	if err != nil {
		return nil, err
	}
	return &ControlInterpreter{inner: inner}, nil
}

func (c *ControlInterpreter) Step() error     { return c.inner.Step() }
func (c *ControlInterpreter) Run() error      { return c.inner.Run() }
func (c *ControlInterpreter) IsDone() bool    { return c.inner.IsDone() }
func (c *ControlInterpreter) Converge() error { return c.inner.Converge() }

func (c *ControlInterpreter) Deconstruct() (*environment.InterpreterState, error) {
	return c.inner.Deconstruct()
}

func (c *ControlInterpreter) GetEnv() environment.StateView       { return c.inner.GetEnv() }
func (c *ControlInterpreter) GetEnvMut() environment.MutStateView { return c.inner.GetEnvMut() }

func (c *ControlInterpreter) CurrentlyExecutingGroup() map[debugger.GroupQIN]struct{} {
	return c.inner.CurrentlyExecutingGroup()
}

func (c *ControlInterpreter) GetActiveTree() []debugger.ActiveTreeNode {
	return c.inner.GetActiveTree()
}
