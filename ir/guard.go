package ir

import "github.com/ctrlflow/interp/values"

// GuardOp enumerates the boolean combinators a guard expression may use
// (SPEC_FULL.md §3): literals, port references, and, or, not, plus the
// comparison family eq/neq/lt/le/gt/ge.
type GuardOp int

const (
	OpTrue GuardOp = iota
	OpPort
	OpAnd
	OpOr
	OpNot
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
)

// ValueExpr is one operand of a comparison guard: either a port read or a
// constant literal.
type ValueExpr struct {
	Port    *Port
	Literal *values.Value
}

// PortExpr builds a ValueExpr that reads a port.
func PortExpr(p *Port) ValueExpr { return ValueExpr{Port: p} }

// LiteralExpr builds a ValueExpr holding a constant.
func LiteralExpr(v values.Value) ValueExpr { return ValueExpr{Literal: &v} }

func (e ValueExpr) resolve(get func(*Port) values.Value) values.Value {
	if e.Port != nil {
		return get(e.Port)
	}
	if e.Literal != nil {
		return *e.Literal
	}
	return values.Value{}
}

// Guard is a boolean expression tree over port values. A nil Guard is
// treated as True (the default guard used by Invoke input/output bindings).
type Guard struct {
	Op          GuardOp
	Port        *Port
	Left, Right *Guard
	Operand     *Guard
	LHS, RHS    ValueExpr
}

// True is the always-enabled guard, used as the default for unconditional
// assignments such as Invoke port bindings.
func True() *Guard { return &Guard{Op: OpTrue} }

// And, Or, Not, and the comparison constructors build guard trees without
// exposing a base class, per the "small tagged variant" design note.
func And(l, r *Guard) *Guard { return &Guard{Op: OpAnd, Left: l, Right: r} }
func Or(l, r *Guard) *Guard  { return &Guard{Op: OpOr, Left: l, Right: r} }
func Not(g *Guard) *Guard    { return &Guard{Op: OpNot, Operand: g} }
func PortGuard(p *Port) *Guard {
	return &Guard{Op: OpPort, Port: p}
}
func Eq(l, r ValueExpr) *Guard  { return &Guard{Op: OpEq, LHS: l, RHS: r} }
func Neq(l, r ValueExpr) *Guard { return &Guard{Op: OpNeq, LHS: l, RHS: r} }
func Lt(l, r ValueExpr) *Guard  { return &Guard{Op: OpLt, LHS: l, RHS: r} }
func Le(l, r ValueExpr) *Guard  { return &Guard{Op: OpLe, LHS: l, RHS: r} }
func Gt(l, r ValueExpr) *Guard  { return &Guard{Op: OpGt, LHS: l, RHS: r} }
func Ge(l, r ValueExpr) *Guard  { return &Guard{Op: OpGe, LHS: l, RHS: r} }

// Eval evaluates the guard tree against the given port-read function.
func (g *Guard) Eval(get func(*Port) values.Value) bool {
	if g == nil {
		return true
	}
	switch g.Op {
	case OpTrue:
		return true
	case OpPort:
		return get(g.Port).AsBool()
	case OpAnd:
		return g.Left.Eval(get) && g.Right.Eval(get)
	case OpOr:
		return g.Left.Eval(get) || g.Right.Eval(get)
	case OpNot:
		return !g.Operand.Eval(get)
	case OpEq, OpNeq, OpLt, OpLe, OpGt, OpGe:
		l := g.LHS.resolve(get).Uint()
		r := g.RHS.resolve(get).Uint()
		switch g.Op {
		case OpEq:
			return l == r
		case OpNeq:
			return l != r
		case OpLt:
			return l < r
		case OpLe:
			return l <= r
		case OpGt:
			return l > r
		default:
			return l >= r
		}
	default:
		return false
	}
}
