package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctrlflow/interp/ir"
	"github.com/ctrlflow/interp/values"
)

func TestCompositeViewPrefersDirtyChildThenFallsBackToParent(t *testing.T) {
	cellA, a, _ := regPorts("a", 8)
	cellB, b, _ := regPorts("b", 8)
	parent := New([]*ir.Cell{cellA, cellB})
	parent.Insert(a, values.New(8, 1))
	parent.Insert(b, values.New(8, 2))

	baseline := parent.ForceFork()
	child := baseline.Fork()
	child.Insert(a, values.New(8, 99))

	view := NewCompositeView(baseline, []*InterpreterState{child})

	va, err := view.Get(a)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), va.Uint(), "dirty child value should win")

	vb, err := view.Get(b)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), vb.Uint(), "untouched port should fall back to baseline")
}

func TestMutCompositeViewRoutesPokeToOwningChild(t *testing.T) {
	cell, r, _ := regPorts("r", 8)
	parent := New([]*ir.Cell{cell})

	baseline := parent.ForceFork()
	child := baseline.Fork()
	child.Insert(r, values.New(8, 5))

	view := NewMutCompositeView(baseline, []*InterpreterState{child})
	view.Insert(r, values.New(8, 11))

	v, err := child.Get(r)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), v.Uint(), "poke to a port already owned by a child must land on that child")

	vBaseline, err := baseline.Get(r)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), vBaseline.Uint(), "baseline itself must be untouched by the routed poke")
}

func TestMutCompositeViewPokeWithNoOwningChildLandsOnParent(t *testing.T) {
	cell, r, _ := regPorts("r", 8)
	parent := New([]*ir.Cell{cell})
	baseline := parent.ForceFork()
	child := baseline.Fork()

	view := NewMutCompositeView(baseline, []*InterpreterState{child})
	view.Insert(r, values.New(8, 3))

	v, err := baseline.Get(r)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), v.Uint())
}
