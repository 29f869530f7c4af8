package ir

import "github.com/ctrlflow/interp/values"

// PortView is the narrow read/write seam a PrimitiveState uses to observe
// its latched inputs and publish new outputs during a cycle commit. It is
// satisfied by environment.InterpreterState; ir does not import environment
// to avoid a cycle, so the interface is declared from this side.
type PortView interface {
	Get(p *Port) (values.Value, error)
	Insert(p *Port, v values.Value)
}

// PrimitiveState is the opaque state object the core consumes for a
// primitive cell (register, memory, arithmetic unit, ...). The core never
// inspects what is inside one; it only calls Commit once per cycle-commit
// phase of the Assignment Interpreter (SPEC_FULL.md §4.1, §3a).
type PrimitiveState interface {
	Commit(view PortView)
}

// Cell is a single instantiated component or primitive: a named bundle of
// Ports, plus (for primitives) the opaque PrimitiveState driving them.
// Sub-component placeholders have a nil Prim; their state lives in the
// nested component's own environment instead.
type Cell struct {
	Name  string
	Ports map[string]*Port
	Prim  PrimitiveState
}

// NewCell builds a cell and back-links every port to it.
func NewCell(name string, prim PrimitiveState, ports ...*Port) *Cell {
	c := &Cell{Name: name, Ports: make(map[string]*Port, len(ports)), Prim: prim}
	for _, p := range ports {
		p.Cell = c
		c.Ports[p.Name] = p
	}
	return c
}

// Port looks up one of the cell's ports by name. Returns nil if absent.
func (c *Cell) Port(name string) *Port {
	if c == nil {
		return nil
	}
	return c.Ports[name]
}

// PortWithAttr returns the cell's go or done port, per the boolean flags set
// on each Port at construction time.
func (c *Cell) PortWithAttr(goOrDone string) *Port {
	for _, p := range c.Ports {
		switch goOrDone {
		case "go":
			if p.IsGo {
				return p
			}
		case "done":
			if p.IsDone {
				return p
			}
		}
	}
	return nil
}
