package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/ir"
	"github.com/ctrlflow/interp/values"
)

func TestRegisterLatchesOnWriteEnAndAssertsDone(t *testing.T) {
	reg := NewRegister("r", 8)
	env := environment.New([]*ir.Cell{reg})

	env.Insert(reg.Port("in"), values.New(8, 5))
	env.Insert(reg.Port("write_en"), values.BitHigh())
	reg.Prim.Commit(env)

	out, err := env.Get(reg.Port("out"))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), out.Uint())

	done, err := env.Get(reg.Port("done"))
	require.NoError(t, err)
	assert.True(t, done.AsBool())
}

func TestRegisterDoneLowWhenNotWriting(t *testing.T) {
	reg := NewRegister("r", 8)
	env := environment.New([]*ir.Cell{reg})
	env.Insert(reg.Port("write_en"), values.BitLow())
	reg.Prim.Commit(env)

	done, err := env.Get(reg.Port("done"))
	require.NoError(t, err)
	assert.False(t, done.AsBool())
}

func TestConstantSeedIsVisibleBeforeFirstCommit(t *testing.T) {
	c := NewConstant("five", 8, 5)
	cells := []*ir.Cell{c}
	env := environment.New(cells)
	Seed(env, cells)

	out, err := env.Get(c.Port("out"))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), out.Uint())
}

func TestAluAdd(t *testing.T) {
	alu := NewAlu("add", 8, AluAdd)
	env := environment.New([]*ir.Cell{alu})
	env.Insert(alu.Port("left"), values.New(8, 3))
	env.Insert(alu.Port("right"), values.New(8, 4))
	alu.Prim.Commit(env)

	out, err := env.Get(alu.Port("out"))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), out.Uint())
}

func TestAluLtProducesSingleBit(t *testing.T) {
	alu := NewAlu("lt", 8, AluLt)
	env := environment.New([]*ir.Cell{alu})
	env.Insert(alu.Port("left"), values.New(8, 2))
	env.Insert(alu.Port("right"), values.New(8, 9))
	alu.Prim.Commit(env)

	out, err := env.Get(alu.Port("out"))
	require.NoError(t, err)
	assert.Equal(t, uint(1), out.Width())
	assert.True(t, out.AsBool())
}
