package interpreter

import (
	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/internal/obslog"
	"github.com/ctrlflow/interp/ir"
	"github.com/ctrlflow/interp/values"
)

// InvokeInterpreter materializes a transient assignment list from an
// Invoke node — input bindings feeding the sub-component, output bindings
// feeding back out, plus any comb_group side assignments — raises the
// sub-component's go port, and delegates to an AssignmentInterpreter keyed
// on its done port (SPEC_FULL.md §4.3).
type InvokeInterpreter struct {
	invoke *ir.Invoke
	interp *AssignmentInterpreter
	qin    debugger.ComponentQualifiedInstanceName
}

func NewInvokeInterpreter(invoke *ir.Invoke, env *environment.InterpreterState, continuous []*ir.Assignment, qin debugger.ComponentQualifiedInstanceName) (*InvokeInterpreter, error) {
	assigns := make([]*ir.Assignment, 0, len(invoke.Inputs)+len(invoke.Outputs))

	for _, b := range invoke.Inputs {
		formal := invoke.Comp.Port(b.Formal)
		assigns = append(assigns, ir.NewAssignment(formal, b.Actual))
	}
	for _, b := range invoke.Outputs {
		formal := invoke.Comp.Port(b.Formal)
		assigns = append(assigns, ir.NewAssignment(b.Actual, formal))
	}
	if invoke.CombGroup != nil {
		assigns = append(assigns, invoke.CombGroup.Assignments...)
	}

	goPort := invoke.Comp.PortWithAttr("go")
	env.Insert(goPort, values.BitHigh())
	obslog.Logger().WithField("component", invoke.Comp.Name).Trace("invoke go raised")

	donePort := invoke.Comp.PortWithAttr("done")
	interp, err := NewAssignmentInterpreter(env, donePort, assigns, continuous)
	if err != nil {
		return nil, err
	}

	return &InvokeInterpreter{invoke: invoke, interp: interp, qin: qin}, nil
}

func (i *InvokeInterpreter) Step() error     { return i.interp.Step() }
func (i *InvokeInterpreter) Run() error      { return i.interp.Run() }
func (i *InvokeInterpreter) IsDone() bool    { return i.interp.IsDeconstructable() }
func (i *InvokeInterpreter) Converge() error { return i.interp.StepConvergence() }

func (i *InvokeInterpreter) Deconstruct() (*environment.InterpreterState, error) {
	env, err := i.interp.Reset()
	if err != nil {
		return nil, err
	}
	goPort := i.invoke.Comp.PortWithAttr("go")
	env.Insert(goPort, values.BitLow())
	obslog.Logger().WithField("component", i.invoke.Comp.Name).Trace("invoke go lowered")
	return env, nil
}

func (i *InvokeInterpreter) GetEnv() environment.StateView       { return i.interp.GetEnv() }
func (i *InvokeInterpreter) GetEnvMut() environment.MutStateView { return i.interp.GetEnv() }

// CurrentlyExecutingGroup always reports the empty set for an Invoke: an
// invoke is not a group. GetActiveTree below still reports a phantom node
// for it — the asymmetry is intentional (SPEC_FULL.md §9).
func (i *InvokeInterpreter) CurrentlyExecutingGroup() map[debugger.GroupQIN]struct{} {
	return noGroups()
}

func (i *InvokeInterpreter) GetActiveTree() []debugger.ActiveTreeNode {
	name := debugger.NewPhantomName(i.qin, "invoke "+i.invoke.Comp.Name)
	return []debugger.ActiveTreeNode{debugger.NewActiveTreeNode(name)}
}
