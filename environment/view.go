package environment

import (
	"github.com/ctrlflow/interp/ir"
	"github.com/ctrlflow/interp/values"
)

// StateView is a read-only view over an environment. InterpreterState
// satisfies it directly; CompositeView layers sibling forked environments
// on top of a parent without materializing a merge.
type StateView interface {
	Get(p *ir.Port) (values.Value, error)
}

// MutStateView additionally allows user-initiated pokes for a debugger.
type MutStateView interface {
	StateView
	Insert(p *ir.Port, v values.Value)
}

// CompositeView lets a caller read a coherent environment across forked
// parallel branches without materializing a merge until join: a port read
// checks each child's dirty set first (the child that actually wrote it
// during this Par step), falling back to the parent/baseline.
type CompositeView struct {
	Parent   *InterpreterState
	Children []*InterpreterState
}

func NewCompositeView(parent *InterpreterState, children []*InterpreterState) CompositeView {
	return CompositeView{Parent: parent, Children: children}
}

func (c CompositeView) Get(p *ir.Port) (values.Value, error) {
	for _, child := range c.Children {
		if child.IsDirty(p) {
			return child.Get(p)
		}
	}
	return c.Parent.Get(p)
}

// MutCompositeView is the mutable counterpart used for GetEnvMut. A poke to
// a port currently owned by one child's generation is routed to that child
// (so a later merge sees a consistent picture); otherwise it lands on the
// parent/baseline.
type MutCompositeView struct {
	Parent   *InterpreterState
	Children []*InterpreterState
}

func NewMutCompositeView(parent *InterpreterState, children []*InterpreterState) MutCompositeView {
	return MutCompositeView{Parent: parent, Children: children}
}

func (c MutCompositeView) Get(p *ir.Port) (values.Value, error) {
	return CompositeView(c).Get(p)
}

func (c MutCompositeView) Insert(p *ir.Port, v values.Value) {
	for _, child := range c.Children {
		if child.IsDirty(p) {
			child.Insert(p, v)
			return
		}
	}
	c.Parent.Insert(p, v)
}
