package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ctrlflow/interp/values"
)

func portReader(vals map[*Port]values.Value) func(*Port) values.Value {
	return func(p *Port) values.Value { return vals[p] }
}

func TestGuardEvalNilIsAlwaysTrue(t *testing.T) {
	var g *Guard
	assert.True(t, g.Eval(portReader(nil)))
}

func TestGuardEvalTrue(t *testing.T) {
	assert.True(t, True().Eval(portReader(nil)))
}

func TestGuardEvalPortReadsBoolean(t *testing.T) {
	p := &Port{Name: "busy", Width: 1}
	get := portReader(map[*Port]values.Value{p: values.New(1, 1)})
	assert.True(t, PortGuard(p).Eval(get))

	getLow := portReader(map[*Port]values.Value{p: values.New(1, 0)})
	assert.False(t, PortGuard(p).Eval(getLow))
}

func TestGuardEvalAndOrNot(t *testing.T) {
	a := &Port{Name: "a", Width: 1}
	b := &Port{Name: "b", Width: 1}
	get := portReader(map[*Port]values.Value{
		a: values.New(1, 1),
		b: values.New(1, 0),
	})

	assert.False(t, And(PortGuard(a), PortGuard(b)).Eval(get))
	assert.True(t, Or(PortGuard(a), PortGuard(b)).Eval(get))
	assert.True(t, Not(PortGuard(b)).Eval(get))
}

func TestGuardEvalComparisons(t *testing.T) {
	x := &Port{Name: "x", Width: 8}
	get := portReader(map[*Port]values.Value{x: values.New(8, 3)})
	lit := func(bits uint64) ValueExpr { return LiteralExpr(values.New(8, bits)) }
	xExpr := PortExpr(x)

	assert.True(t, Eq(xExpr, lit(3)).Eval(get))
	assert.True(t, Neq(xExpr, lit(4)).Eval(get))
	assert.True(t, Lt(xExpr, lit(4)).Eval(get))
	assert.True(t, Le(xExpr, lit(3)).Eval(get))
	assert.True(t, Gt(xExpr, lit(2)).Eval(get))
	assert.True(t, Ge(xExpr, lit(3)).Eval(get))
	assert.False(t, Gt(xExpr, lit(3)).Eval(get))
}
