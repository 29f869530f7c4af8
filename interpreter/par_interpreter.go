package interpreter

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/ir"
)

// ParInterpreter runs every statement concurrently against its own forked
// environment, one simulated cycle at a time, and merges the forks back
// into the parent on Deconstruct (SPEC_FULL.md §4.5). Children own
// disjoint forked state for the duration of the Par node, so stepping them
// on separate goroutines is safe; merge conflicts on overlapping writes are
// caught at Deconstruct rather than prevented at Step time.
type ParInterpreter struct {
	par      *ir.Par
	parent   *environment.InterpreterState
	children []*ControlInterpreter
	info     ComponentInfo
}

func NewParInterpreter(par *ir.Par, env *environment.InterpreterState, info ComponentInfo) (*ParInterpreter, error) {
	p := &ParInterpreter{par: par, parent: env, info: info}
	children := make([]*ControlInterpreter, 0, len(par.Stmts))
	for _, stmt := range par.Stmts {
		child, err := NewControlInterpreter(stmt, env.ForceFork(), info)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	p.children = children
	return p, nil
}

func (p *ParInterpreter) Step() error {
	var g errgroup.Group
	for _, child := range p.children {
		child := child
		if child.IsDone() {
			continue
		}
		g.Go(func() error { return child.Step() })
	}
	return g.Wait()
}

func (p *ParInterpreter) IsDone() bool {
	for _, child := range p.children {
		if !child.IsDone() {
			return false
		}
	}
	return true
}

func (p *ParInterpreter) Run() error {
	for !p.IsDone() {
		if err := p.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (p *ParInterpreter) Converge() error {
	var g errgroup.Group
	for _, child := range p.children {
		child := child
		g.Go(func() error { return child.Converge() })
	}
	return g.Wait()
}

// Deconstruct collects every child's forked environment, folding disjoint
// writes back into the parent. A port written by more than one child (and
// not one of the component's own input ports) is a ParMergeConflictError,
// aggregated across every conflicting port via multierr rather than
// reported one at a time. It fails without merging if any child is not yet
// done.
func (p *ParInterpreter) Deconstruct() (*environment.InterpreterState, error) {
	if !p.IsDone() {
		return nil, errors.New("par deconstruct called before every child is done")
	}
	childEnvs := make([]*environment.InterpreterState, 0, len(p.children))
	for _, child := range p.children {
		env, err := child.Deconstruct()
		if err != nil {
			return nil, err
		}
		childEnvs = append(childEnvs, env)
	}
	if err := p.parent.MergeMany(childEnvs, p.info.InputPorts); err != nil {
		return nil, err
	}
	return p.parent, nil
}

func (p *ParInterpreter) GetEnv() environment.StateView {
	return environment.NewCompositeView(p.parent, p.snapshotChildren())
}

func (p *ParInterpreter) GetEnvMut() environment.MutStateView {
	return environment.NewMutCompositeView(p.parent, p.snapshotChildren())
}

// snapshotChildren reaches through each child ControlInterpreter to the
// underlying forked InterpreterState it is currently operating over, for
// the CompositeView to read dirty sets off of directly.
func (p *ParInterpreter) snapshotChildren() []*environment.InterpreterState {
	envs := make([]*environment.InterpreterState, 0, len(p.children))
	for _, child := range p.children {
		if live := underlyingState(child.GetEnv()); live != nil {
			envs = append(envs, live)
		}
	}
	return envs
}

func underlyingState(v environment.StateView) *environment.InterpreterState {
	if s, ok := v.(*environment.InterpreterState); ok {
		return s
	}
	return nil
}

func (p *ParInterpreter) CurrentlyExecutingGroup() map[debugger.GroupQIN]struct{} {
	set := noGroups()
	for _, child := range p.children {
		for g := range child.CurrentlyExecutingGroup() {
			set[g] = struct{}{}
		}
	}
	return set
}

func (p *ParInterpreter) GetActiveTree() []debugger.ActiveTreeNode {
	var nodes []debugger.ActiveTreeNode
	for _, child := range p.children {
		nodes = append(nodes, child.GetActiveTree()...)
	}
	return nodes
}
