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

// TestStructuralInterpreterTicksContinuousAssignments grounds SPEC_FULL.md
// §4.10: a component with no control tree is still driven cycle by cycle,
// entirely off its continuous assignments and signature done port.
func TestStructuralInterpreterTicksContinuousAssignments(t *testing.T) {
	trueC := fixtures.NewConstant("true1", 1, 1)
	cells := []*ir.Cell{trueC}
	env := environment.New(cells)
	fixtures.Seed(env, cells)

	in := &ir.Port{Name: "in", Width: 8}
	out := &ir.Port{Name: "out", Width: 8}
	done := &ir.Port{Name: "done", Width: 1}
	env.Insert(in, vOf(7))

	continuous := []*ir.Assignment{
		ir.NewAssignment(out, in),
		ir.NewAssignment(done, trueC.Port("out")),
	}

	si, err := NewStructuralInterpreter(env, done, continuous, debugger.RootQIN("main"))
	require.NoError(t, err)

	require.NoError(t, si.Run())
	assert.Empty(t, si.CurrentlyExecutingGroup())
	assert.Nil(t, si.GetActiveTree())

	final, err := si.Deconstruct()
	require.NoError(t, err)

	v, err := final.Get(out)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v.Uint())

	d, err := final.Get(done)
	require.NoError(t, err)
	assert.True(t, d.AsBool())
}

func TestStructuralInterpreterDeconstructWithoutStepStillSettles(t *testing.T) {
	trueC := fixtures.NewConstant("true1", 1, 1)
	cells := []*ir.Cell{trueC}
	env := environment.New(cells)
	fixtures.Seed(env, cells)

	out := &ir.Port{Name: "out", Width: 1}
	continuous := []*ir.Assignment{ir.NewAssignment(out, trueC.Port("out"))}

	si, err := NewStructuralInterpreter(env, nil, continuous, debugger.RootQIN("main"))
	require.NoError(t, err)

	final, err := si.Deconstruct()
	require.NoError(t, err)

	v, err := final.Get(out)
	require.NoError(t, err)
	assert.True(t, v.AsBool(), "FinishInterpretation must settle continuous assignments even with no prior Step")
}
