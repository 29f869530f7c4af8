package interpreter

import (
	"github.com/ctrlflow/interp/ir"
	"github.com/ctrlflow/interp/values"
)

// vOf builds an 8-bit value for tests that poke loose boundary ports
// directly rather than through a fixtures cell.
func vOf(bits uint64) values.Value { return values.New(8, bits) }

// valOf and valFour build literal guard operands at an explicit width, for
// tests comparing a narrower register (e.g. a 4-bit loop counter) against a
// constant bound.
func valOf(width uint, bits uint64) values.Value { return values.New(width, bits) }
func valFour() values.Value                      { return values.New(4, 4) }

// mkGroup builds a Group with fresh, unshared go/done wires — convenient
// scaffolding for tests that don't need those wires to belong to any cell.
func mkGroup(name string, assigns ...*ir.Assignment) *ir.Group {
	return &ir.Group{
		Name:        name,
		Assignments: assigns,
		Go:          &ir.Port{Name: name + ".go", Width: 1},
		Done:        &ir.Port{Name: name + ".done", Width: 1},
	}
}

func mkCombGroup(name string, assigns ...*ir.Assignment) *ir.CombGroup {
	return &ir.CombGroup{Name: name, Assignments: assigns}
}
