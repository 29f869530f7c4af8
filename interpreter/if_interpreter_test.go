package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/internal/fixtures"
	"github.com/ctrlflow/interp/ir"
)

// buildParityIfScenario grounds SPEC_FULL.md §8 scenario 6: a comb_group
// "parity" drives a one-bit condition wire from Neq(x, y) / Eq(x, y), and
// an If picks between two branches that each write a distinct register.
func buildParityIfScenario(t *testing.T, x, y uint64) (*ir.Control, *environment.InterpreterState, *ir.Cell, *ir.Cell, *ir.Group, *ir.Group) {
	t.Helper()

	regT := fixtures.NewRegister("T", 8)
	regF := fixtures.NewRegister("F", 8)
	tVal := fixtures.NewConstant("tval", 8, 11)
	fVal := fixtures.NewConstant("fval", 8, 22)
	trueC := fixtures.NewConstant("true1", 1, 1)
	falseC := fixtures.NewConstant("false1", 1, 0)

	xPort := &ir.Port{Name: "x", Width: 8}
	yPort := &ir.Port{Name: "y", Width: 8}
	parity := &ir.Port{Name: "parity", Width: 1}

	cells := []*ir.Cell{regT, regF, tVal, fVal, trueC, falseC}
	env := environment.New(cells)
	fixtures.Seed(env, cells)
	env.Insert(xPort, vOf(x))
	env.Insert(yPort, vOf(y))

	condGroup := mkCombGroup("parity",
		ir.NewGuardedAssignment(parity, trueC.Port("out"), ir.Neq(ir.PortExpr(xPort), ir.PortExpr(yPort))),
		ir.NewGuardedAssignment(parity, falseC.Port("out"), ir.Eq(ir.PortExpr(xPort), ir.PortExpr(yPort))),
	)

	gT := mkGroup("gT")
	gT.Assignments = []*ir.Assignment{
		ir.NewAssignment(regT.Port("in"), tVal.Port("out")),
		ir.NewAssignment(regT.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(gT.Done, trueC.Port("out")),
	}
	gF := mkGroup("gF")
	gF.Assignments = []*ir.Assignment{
		ir.NewAssignment(regF.Port("in"), fVal.Port("out")),
		ir.NewAssignment(regF.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(gF.Done, trueC.Port("out")),
	}

	ctrl := ir.IfCtrl(parity, condGroup, ir.EnableCtrl(gT), ir.EnableCtrl(gF))
	return ctrl, env, regT, regF, gT, gF
}

func TestIfTakesThenBranchWhenConditionTrue(t *testing.T) {
	ctrl, env, regT, regF, gT, gF := buildParityIfScenario(t, 1, 0)
	info := NewComponentInfo(nil, nil, debugger.RootQIN("main"))

	ci, err := NewControlInterpreter(ctrl, env, info)
	require.NoError(t, err)

	// One Step evaluates and consumes the comb_group condition and enters
	// the selected branch's group in the same call (see If's "start" phase);
	// by the time Step returns, only gT's group is reported active, never
	// gF's or the now-deconstructed "parity" comb group.
	require.NoError(t, ci.Step())
	active := ci.CurrentlyExecutingGroup()
	assert.Contains(t, active, debugger.NewGroupQIN(info.QIN, "gT"))
	assert.NotContains(t, active, debugger.NewGroupQIN(info.QIN, "gF"))
	assert.NotContains(t, active, debugger.NewGroupQIN(info.QIN, "parity"))

	require.NoError(t, ci.Run())
	out, err := ci.Deconstruct()
	require.NoError(t, err)

	vT, _ := out.Get(regT.Port("out"))
	vF, _ := out.Get(regF.Port("out"))
	assert.Equal(t, uint64(11), vT.Uint())
	assert.Equal(t, uint64(0), vF.Uint(), "false branch register must never have been written")
	_ = gF
}

func TestIfTakesElseBranchWhenConditionFalse(t *testing.T) {
	ctrl, env, regT, regF, _, gF := buildParityIfScenario(t, 5, 5)
	info := NewComponentInfo(nil, nil, debugger.RootQIN("main"))

	ci, err := NewControlInterpreter(ctrl, env, info)
	require.NoError(t, err)

	require.NoError(t, ci.Step())
	active := ci.CurrentlyExecutingGroup()
	assert.Contains(t, active, debugger.NewGroupQIN(info.QIN, gF.Name))

	require.NoError(t, ci.Run())
	out, err := ci.Deconstruct()
	require.NoError(t, err)

	vT, _ := out.Get(regT.Port("out"))
	vF, _ := out.Get(regF.Port("out"))
	assert.Equal(t, uint64(0), vT.Uint(), "true branch register must never have been written")
	assert.Equal(t, uint64(22), vF.Uint())
}

func TestIfWithNilBranchIsImmediatelyDone(t *testing.T) {
	regF := fixtures.NewRegister("F", 8)
	trueC := fixtures.NewConstant("true1", 1, 1)
	cells := []*ir.Cell{regF, trueC}
	env := environment.New(cells)
	fixtures.Seed(env, cells)

	gF := mkGroup("gF")
	gF.Assignments = []*ir.Assignment{
		ir.NewAssignment(regF.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(gF.Done, trueC.Port("out")),
	}

	cond := &ir.Port{Name: "cond", Width: 1}
	env.Insert(cond, vOf(1))

	// TBranch is nil: a true condition with no then-branch must finish
	// immediately without ever running the (irrelevant) else-branch group.
	ctrl := ir.IfCtrl(cond, nil, nil, ir.EnableCtrl(gF))
	info := NewComponentInfo(nil, nil, debugger.RootQIN("main"))

	ci, err := NewControlInterpreter(ctrl, env, info)
	require.NoError(t, err)
	require.NoError(t, ci.Run())
	out, err := ci.Deconstruct()
	require.NoError(t, err)

	vF, _ := out.Get(regF.Port("out"))
	assert.Equal(t, uint64(0), vF.Uint())
}
