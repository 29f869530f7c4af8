// Package scenarios builds the SPEC_FULL.md §8.2 end-to-end components
// programmatically, for the cmd/ctrlflow demo driver. There is no parser in
// this module, so "a component already built in Go" means assembled here
// the same way the interpreter tower's own tests assemble one: cells,
// groups, and a control tree wired up by hand.
package scenarios

import (
	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/internal/fixtures"
	"github.com/ctrlflow/interp/ir"
	"github.com/ctrlflow/interp/values"
)

// Scenario bundles a lowered Component with the environment it runs over
// and the component instance name a driver should tag its interpreters
// with. Comp.Control is the control tree to interpret; Comp.Continuous and
// the input ports of Comp.Signature (where set) are what
// NewComponentInfoFromComponent derives a ComponentInfo from.
type Scenario struct {
	Name string
	Comp *ir.Component
	Env  *environment.InterpreterState
	QIN  debugger.ComponentQualifiedInstanceName
}

// Names lists every scenario in registration order, for a CLI's listing
// and validation of a user-supplied scenario name.
func Names() []string {
	return []string{"empty", "seq", "par", "par-conflict", "while", "if"}
}

// Build constructs the named scenario, or a nil Scenario if name is
// unknown.
func Build(name string) *Scenario {
	switch name {
	case "empty":
		return buildEmpty()
	case "seq":
		return buildSeq()
	case "par":
		return buildPar()
	case "par-conflict":
		return buildParConflict()
	case "while":
		return buildWhile()
	case "if":
		return buildIf()
	default:
		return nil
	}
}

func buildEmpty() *Scenario {
	comp := &ir.Component{Name: "empty", Control: ir.Empty()}
	env := environment.New(comp.AllCells())
	return &Scenario{Name: "empty", Comp: comp, Env: env, QIN: debugger.RootQIN("empty")}
}

// buildSeq grounds §8.2 scenario 2: two groups run in sequence, each
// directly wiring register R to a constant (1, then 2) to avoid chaining
// two primitives within one commit phase (see internal/fixtures).
func buildSeq() *Scenario {
	reg := fixtures.NewRegister("R", 8)
	one := fixtures.NewConstant("one", 8, 1)
	two := fixtures.NewConstant("two", 8, 2)
	trueC := fixtures.NewConstant("true1", 1, 1)

	cells := []*ir.Cell{reg, one, two, trueC}

	g1 := namedGroup("g1")
	g1.Assignments = []*ir.Assignment{
		ir.NewAssignment(reg.Port("in"), one.Port("out")),
		ir.NewAssignment(reg.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(g1.Done, trueC.Port("out")),
	}
	g2 := namedGroup("g2")
	g2.Assignments = []*ir.Assignment{
		ir.NewAssignment(reg.Port("in"), two.Port("out")),
		ir.NewAssignment(reg.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(g2.Done, trueC.Port("out")),
	}

	comp := &ir.Component{
		Name:    "seq_counter",
		Cells:   cells,
		Groups:  []*ir.Group{g1, g2},
		Control: ir.SeqCtrl(ir.EnableCtrl(g1), ir.EnableCtrl(g2)),
	}
	env := environment.New(comp.AllCells())
	fixtures.Seed(env, cells)
	return &Scenario{Name: "seq", Comp: comp, Env: env, QIN: debugger.RootQIN("seq_counter")}
}

// buildPar grounds §8.2 scenario 3: two registers, each driven to a fixed
// value by an independent group, both run concurrently.
func buildPar() *Scenario {
	comp, env := parIndependentWrites()
	return &Scenario{Name: "par", Comp: comp, Env: env, QIN: debugger.RootQIN("par_independent")}
}

func parIndependentWrites() (*ir.Component, *environment.InterpreterState) {
	regA := fixtures.NewRegister("A", 8)
	regB := fixtures.NewRegister("B", 8)
	seven := fixtures.NewConstant("seven", 8, 7)
	nine := fixtures.NewConstant("nine", 8, 9)
	trueC := fixtures.NewConstant("true1", 1, 1)

	cells := []*ir.Cell{regA, regB, seven, nine, trueC}

	gA := namedGroup("gA")
	gA.Assignments = []*ir.Assignment{
		ir.NewAssignment(regA.Port("in"), seven.Port("out")),
		ir.NewAssignment(regA.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(gA.Done, trueC.Port("out")),
	}
	gB := namedGroup("gB")
	gB.Assignments = []*ir.Assignment{
		ir.NewAssignment(regB.Port("in"), nine.Port("out")),
		ir.NewAssignment(regB.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(gB.Done, trueC.Port("out")),
	}

	comp := &ir.Component{
		Name:    "par_independent",
		Cells:   cells,
		Groups:  []*ir.Group{gA, gB},
		Control: ir.ParCtrl(ir.EnableCtrl(gA), ir.EnableCtrl(gB)),
	}
	env := environment.New(comp.AllCells())
	fixtures.Seed(env, cells)
	return comp, env
}

// buildParConflict grounds §8.2 scenario 4: two Par siblings write the same
// register to differing values, so Deconstruct must fail with a
// ParMergeConflict naming that register.
func buildParConflict() *Scenario {
	reg := fixtures.NewRegister("R", 8)
	v1 := fixtures.NewConstant("v1", 8, 1)
	v2 := fixtures.NewConstant("v2", 8, 2)
	trueC := fixtures.NewConstant("true1", 1, 1)

	cells := []*ir.Cell{reg, v1, v2, trueC}

	gA := namedGroup("gA")
	gA.Assignments = []*ir.Assignment{
		ir.NewAssignment(reg.Port("in"), v1.Port("out")),
		ir.NewAssignment(reg.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(gA.Done, trueC.Port("out")),
	}
	gB := namedGroup("gB")
	gB.Assignments = []*ir.Assignment{
		ir.NewAssignment(reg.Port("in"), v2.Port("out")),
		ir.NewAssignment(reg.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(gB.Done, trueC.Port("out")),
	}

	comp := &ir.Component{
		Name:    "par_conflict",
		Cells:   cells,
		Groups:  []*ir.Group{gA, gB},
		Control: ir.ParCtrl(ir.EnableCtrl(gA), ir.EnableCtrl(gB)),
	}
	env := environment.New(comp.AllCells())
	fixtures.Seed(env, cells)
	return &Scenario{Name: "par-conflict", Comp: comp, Env: env, QIN: debugger.RootQIN("par_conflict")}
}

// buildWhile grounds §8.2 scenario 5: a register i counts 0 to 4, the loop
// condition i<4 evaluated by a comb_group each pass.
func buildWhile() *Scenario {
	i := fixtures.NewRegister("i", 4)
	one := fixtures.NewConstant("one", 4, 1)
	two := fixtures.NewConstant("two", 4, 2)
	three := fixtures.NewConstant("three", 4, 3)
	four := fixtures.NewConstant("four", 4, 4)
	trueC := fixtures.NewConstant("true1", 1, 1)
	condT := fixtures.NewConstant("condT", 1, 1)
	condF := fixtures.NewConstant("condF", 1, 0)

	cells := []*ir.Cell{i, one, two, three, four, trueC, condT, condF}

	cond := &ir.Port{Name: "lt4", Width: 1}
	boundLiteral := literal(4, 4)
	condGroup := &ir.CombGroup{
		Name: "lt4",
		Assignments: []*ir.Assignment{
			ir.NewGuardedAssignment(cond, condT.Port("out"), ir.Lt(ir.PortExpr(i.Port("out")), boundLiteral)),
			ir.NewGuardedAssignment(cond, condF.Port("out"), ir.Not(ir.Lt(ir.PortExpr(i.Port("out")), boundLiteral))),
		},
	}

	body := namedGroup("incr")
	body.Assignments = []*ir.Assignment{
		ir.NewGuardedAssignment(i.Port("in"), one.Port("out"), ir.Eq(ir.PortExpr(i.Port("out")), literal(4, 0))),
		ir.NewGuardedAssignment(i.Port("in"), two.Port("out"), ir.Eq(ir.PortExpr(i.Port("out")), literal(4, 1))),
		ir.NewGuardedAssignment(i.Port("in"), three.Port("out"), ir.Eq(ir.PortExpr(i.Port("out")), literal(4, 2))),
		ir.NewGuardedAssignment(i.Port("in"), four.Port("out"), ir.Eq(ir.PortExpr(i.Port("out")), literal(4, 3))),
		ir.NewAssignment(i.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(body.Done, trueC.Port("out")),
	}

	comp := &ir.Component{
		Name:       "counter",
		Cells:      cells,
		Groups:     []*ir.Group{body},
		CombGroups: []*ir.CombGroup{condGroup},
		Control:    ir.WhileCtrl(cond, condGroup, ir.EnableCtrl(body)),
	}
	env := environment.New(comp.AllCells())
	fixtures.Seed(env, cells)
	return &Scenario{Name: "while", Comp: comp, Env: env, QIN: debugger.RootQIN("counter")}
}

// buildIf grounds §8.2 scenario 6: a comb_group "parity" picks between two
// branches off Neq(x, y)/Eq(x, y), x and y fixed at construction time (1
// and 0, so the then-branch is taken).
func buildIf() *Scenario {
	regT := fixtures.NewRegister("T", 8)
	regF := fixtures.NewRegister("F", 8)
	tVal := fixtures.NewConstant("tval", 8, 11)
	fVal := fixtures.NewConstant("fval", 8, 22)
	trueC := fixtures.NewConstant("true1", 1, 1)
	falseC := fixtures.NewConstant("false1", 1, 0)

	xPort := &ir.Port{Name: "x", Width: 8, Direction: ir.Input}
	yPort := &ir.Port{Name: "y", Width: 8, Direction: ir.Input}
	parity := &ir.Port{Name: "parity", Width: 1}

	// x and y are the component's own boundary inputs, not wires off some
	// cell, so they live on a signature with no PrimitiveState rather than
	// among the ordinary cells.
	sig := ir.NewCell("this", nil, xPort, yPort)

	cells := []*ir.Cell{regT, regF, tVal, fVal, trueC, falseC}
	comp := &ir.Component{Name: "parity_select", Signature: sig, Cells: cells}
	env := environment.New(comp.AllCells())
	fixtures.Seed(env, cells)
	env.Insert(xPort, literal8(1))
	env.Insert(yPort, literal8(0))

	condGroup := &ir.CombGroup{
		Name: "parity",
		Assignments: []*ir.Assignment{
			ir.NewGuardedAssignment(parity, trueC.Port("out"), ir.Neq(ir.PortExpr(xPort), ir.PortExpr(yPort))),
			ir.NewGuardedAssignment(parity, falseC.Port("out"), ir.Eq(ir.PortExpr(xPort), ir.PortExpr(yPort))),
		},
	}

	gT := namedGroup("gT")
	gT.Assignments = []*ir.Assignment{
		ir.NewAssignment(regT.Port("in"), tVal.Port("out")),
		ir.NewAssignment(regT.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(gT.Done, trueC.Port("out")),
	}
	gF := namedGroup("gF")
	gF.Assignments = []*ir.Assignment{
		ir.NewAssignment(regF.Port("in"), fVal.Port("out")),
		ir.NewAssignment(regF.Port("write_en"), trueC.Port("out")),
		ir.NewAssignment(gF.Done, trueC.Port("out")),
	}

	comp.Groups = []*ir.Group{gT, gF}
	comp.CombGroups = []*ir.CombGroup{condGroup}
	comp.Control = ir.IfCtrl(parity, condGroup, ir.EnableCtrl(gT), ir.EnableCtrl(gF))
	return &Scenario{Name: "if", Comp: comp, Env: env, QIN: debugger.RootQIN("parity_select")}
}

// literal builds a guard comparison operand at an explicit width, for the
// fixed thresholds the while/if scenarios compare register values against.
func literal(width uint, bits uint64) ir.ValueExpr {
	return ir.LiteralExpr(values.New(width, bits))
}

// literal8 builds an 8-bit value for poking a loose boundary port (x, y)
// directly, outside of any cell.
func literal8(bits uint64) values.Value { return values.New(8, bits) }

func namedGroup(name string) *ir.Group {
	return &ir.Group{
		Name: name,
		Go:   &ir.Port{Name: name + ".go", Width: 1},
		Done: &ir.Port{Name: name + ".done", Width: 1},
	}
}
