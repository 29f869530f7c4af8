package interpreter

import (
	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/internal/obslog"
	"github.com/ctrlflow/interp/ir"
	"github.com/ctrlflow/interp/values"
)

// EnableInterpreter wraps a Group or a CombGroup (via EnableHolder, which has
// no variant for a bare assignment list) and an AssignmentInterpreter. On
// construction it raises
// the holder's go port (if any); on Deconstruct it lowers it again
// (SPEC_FULL.md §4.2).
//
// groupName is tracked independently of the holder: a real Group reports
// its own name, a CombGroup used as an If/While condition also reports its
// name while it is being evaluated, and the trivial wrapper Seq and If use
// to converge continuous assignments outside any group reports none of the
// above.
type EnableInterpreter struct {
	holder    ir.EnableHolder
	groupName string
	named     bool
	interp    *AssignmentInterpreter
	qin       debugger.ComponentQualifiedInstanceName
}

// NewEnableInterpreter builds an Enable Interpreter over holder, which wraps
// a Group or a CombGroup. Pass named=true
// with groupName set whenever the holder has a reportable name (a real
// Group, or a CombGroup standing in as an If/While condition).
func NewEnableInterpreter(holder ir.EnableHolder, groupName string, named bool, env *environment.InterpreterState, continuous []*ir.Assignment, qin debugger.ComponentQualifiedInstanceName) (*EnableInterpreter, error) {
	if goPort := holder.GoPort(); goPort != nil {
		env.Insert(goPort, values.BitHigh())
		obslog.Logger().WithField("group", groupName).Trace("group go raised")
	}
	// A re-entered group's done port may still read high from its previous
	// run (it is driven combinationally and nothing lowers it once that run's
	// AssignmentInterpreter is discarded); clear it here so IsDeconstructable
	// can't mistake the stale latch for this entry already having finished.
	if donePort := holder.DonePort(); donePort != nil {
		env.Insert(donePort, values.BitLow())
	}

	interp, err := NewAssignmentInterpreter(env, holder.DonePort(), holder.Assigns(), continuous)
	if err != nil {
		return nil, err
	}

	return &EnableInterpreter{holder: holder, groupName: groupName, named: named, interp: interp, qin: qin}, nil
}

// NewGroupEnableInterpreter is the common case: enabling a real named
// Group, reporting its own name.
func NewGroupEnableInterpreter(g *ir.Group, env *environment.InterpreterState, continuous []*ir.Assignment, qin debugger.ComponentQualifiedInstanceName) (*EnableInterpreter, error) {
	return NewEnableInterpreter(ir.FromGroup(g), g.Name, true, env, continuous, qin)
}

func (e *EnableInterpreter) Step() error     { return e.interp.Step() }
func (e *EnableInterpreter) Run() error      { return e.interp.Run() }
func (e *EnableInterpreter) IsDone() bool    { return e.interp.IsDeconstructable() }
func (e *EnableInterpreter) Converge() error { return e.interp.StepConvergence() }

// Get reads a port through the wrapped assignment interpreter, used by If
// and While to read the condition port after converging a cond_group.
func (e *EnableInterpreter) Get(p *ir.Port) values.Value { return e.interp.Get(p) }

func (e *EnableInterpreter) Deconstruct() (*environment.InterpreterState, error) {
	if goPort := e.holder.GoPort(); goPort != nil {
		e.interp.env.Insert(goPort, values.BitLow())
		obslog.Logger().WithField("group", e.groupName).Trace("group go lowered")
	}
	return e.interp.Reset()
}

func (e *EnableInterpreter) GetEnv() environment.StateView       { return e.interp.GetEnv() }
func (e *EnableInterpreter) GetEnvMut() environment.MutStateView { return e.interp.GetEnv() }

func (e *EnableInterpreter) CurrentlyExecutingGroup() map[debugger.GroupQIN]struct{} {
	set := noGroups()
	if e.named {
		set[debugger.NewGroupQIN(e.qin, e.groupName)] = struct{}{}
	}
	return set
}

func (e *EnableInterpreter) GetActiveTree() []debugger.ActiveTreeNode {
	var name debugger.GroupQualifiedInstanceName
	if e.named {
		name = debugger.NewGroupName(e.qin, e.groupName)
	} else {
		name = debugger.NewEmptyName(e.qin)
	}
	return []debugger.ActiveTreeNode{debugger.NewActiveTreeNode(name)}
}
