package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/ir"
)

func TestEmptyProgramIsDoneImmediatelyAndLeavesEnvUnchanged(t *testing.T) {
	env := environment.New(nil)
	info := NewComponentInfo(nil, nil, debugger.RootQIN("main"))

	ci, err := NewControlInterpreter(ir.Empty(), env, info)
	require.NoError(t, err)

	assert.True(t, ci.IsDone())
	require.NoError(t, ci.Run())

	out, err := ci.Deconstruct()
	require.NoError(t, err)
	assert.Same(t, env, out)

	assert.Empty(t, ci.CurrentlyExecutingGroup())
	assert.Nil(t, ci.GetActiveTree())
}
