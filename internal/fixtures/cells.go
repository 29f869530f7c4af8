// Package fixtures implements a minimal primitive-cell library used by this
// module's own tests and by the cmd/ctrlflow demo driver (SPEC_FULL.md
// §3a, §8, §4.14): a register, a constant, and a small binary ALU. None of
// these are the production primitive library the core treats as an
// external collaborator — they exist purely to give the test suite, and
// the CLI's hand-built demo components, real cells with a
// `PrimitiveState.Commit` hook to drive.
package fixtures

import (
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/ir"
	"github.com/ctrlflow/interp/values"
)

// Register latches In on the cycle WriteEn reads high, and asserts Done
// that same commit (a one-cycle, not zero-cycle, register; a simplification
// of std_reg's edge-triggered write).
type Register struct {
	width   uint
	in      *ir.Port
	writeEn *ir.Port
	out     *ir.Port
	done    *ir.Port
}

// NewRegister builds a register cell named name with the given data width,
// wiring up its in/write_en/out/done ports.
func NewRegister(name string, width uint) *ir.Cell {
	in := &ir.Port{Name: "in", Width: width, Direction: ir.Input}
	writeEn := &ir.Port{Name: "write_en", Width: 1, Direction: ir.Input}
	out := &ir.Port{Name: "out", Width: width, Direction: ir.Output}
	done := &ir.Port{Name: "done", Width: 1, Direction: ir.Output}

	reg := &Register{width: width, in: in, writeEn: writeEn, out: out, done: done}
	cell := ir.NewCell(name, reg, in, writeEn, out, done)
	in.Cell, writeEn.Cell, out.Cell, done.Cell = cell, cell, cell, cell
	return cell
}

func (r *Register) Commit(view ir.PortView) {
	writeEn, _ := view.Get(r.writeEn)
	if writeEn.AsBool() {
		in, _ := view.Get(r.in)
		view.Insert(r.out, in)
		view.Insert(r.done, values.BitHigh())
		return
	}
	view.Insert(r.done, values.BitLow())
}

// Constant re-asserts a fixed value onto its out port every commit; it
// holds no other state.
type Constant struct {
	out   *ir.Port
	value values.Value
}

func NewConstant(name string, width uint, v uint64) *ir.Cell {
	out := &ir.Port{Name: "out", Width: width, Direction: ir.Output}
	c := &Constant{out: out, value: values.New(width, v)}
	cell := ir.NewCell(name, c, out)
	out.Cell = cell
	return cell
}

func (c *Constant) Commit(view ir.PortView) { view.Insert(c.out, c.value) }

// Seed writes every Constant cell's fixed value directly into env, so it is
// visible starting the very first convergence round instead of only after
// the first cycle commit. Call once after environment.New and before the
// first Step. Cells without a *Constant PrimitiveState are left untouched.
func Seed(env *environment.InterpreterState, cells []*ir.Cell) {
	for _, cell := range cells {
		if c, ok := cell.Prim.(*Constant); ok {
			env.Insert(c.out, c.value)
		}
	}
}

// AluOp tags which binary operation an Alu fixture performs.
type AluOp int

const (
	AluAdd AluOp = iota
	AluSub
	AluAnd
	AluOr
	AluXor
	AluLt
)

// Alu is a combinational binary unit modeled with the same one-commit-per-
// cycle hook as Register: it recomputes Out from Left/Right at cycle
// commit, which is sufficient for every §8 scenario since no test reads
// Out before a cycle has committed. Out therefore lags its inputs by one
// cycle: a register fed from an Alu within the same group latches the Alu's
// result from the previous commit, not one computed from this cycle's
// inputs.
type Alu struct {
	op          AluOp
	left, right *ir.Port
	out         *ir.Port
}

func NewAlu(name string, width uint, op AluOp) *ir.Cell {
	left := &ir.Port{Name: "left", Width: width, Direction: ir.Input}
	right := &ir.Port{Name: "right", Width: width, Direction: ir.Input}
	outWidth := width
	if op == AluLt {
		outWidth = 1
	}
	out := &ir.Port{Name: "out", Width: outWidth, Direction: ir.Output}

	alu := &Alu{op: op, left: left, right: right, out: out}
	cell := ir.NewCell(name, alu, left, right, out)
	left.Cell, right.Cell, out.Cell = cell, cell, cell
	return cell
}

func (a *Alu) Commit(view ir.PortView) {
	l, _ := view.Get(a.left)
	r, _ := view.Get(a.right)
	var result uint64
	width := a.out.Width
	switch a.op {
	case AluAdd:
		result = l.Uint() + r.Uint()
	case AluSub:
		result = l.Uint() - r.Uint()
	case AluAnd:
		result = l.Uint() & r.Uint()
	case AluOr:
		result = l.Uint() | r.Uint()
	case AluXor:
		result = l.Uint() ^ r.Uint()
	case AluLt:
		if l.Uint() < r.Uint() {
			result = 1
		}
	}
	view.Insert(a.out, values.New(width, result))
}
