// Package interpreter implements the tower of control-construct
// interpreters described in SPEC_FULL.md §4: the Assignment Interpreter at
// the bottom, Enable/Invoke above it, the Seq/Par/If/While composition state
// machines above that, and the tagged ControlInterpreter/StructuralInterpreter
// entry points.
package interpreter

import (
	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/ir"
)

// Interpreter is the capability set every variant in the tower implements,
// dispatched uniformly so a debugger can pause, inspect, and continue
// execution at any level (SPEC_FULL.md §2).
type Interpreter interface {
	// Step advances one simulated clock cycle. A no-op once IsDone is true.
	Step() error
	// Run steps until IsDone or an error occurs.
	Run() error
	// IsDone reports whether this interpreter has reached a terminal state.
	IsDone() bool
	// Converge runs the combinational fixed point without advancing time,
	// so an external observer sees a consistent environment.
	Converge() error
	// Deconstruct consumes the interpreter and returns its environment.
	// Calling it before IsDone is caller misuse: Seq, If and While return
	// their own Invalid*State error and Par returns an error, while Enable,
	// Invoke and Empty hand back the environment as it stands.
	Deconstruct() (*environment.InterpreterState, error)
	// GetEnv returns a read-only view over the current environment.
	GetEnv() environment.StateView
	// GetEnvMut returns a mutable view for user-initiated pokes.
	GetEnvMut() environment.MutStateView
	// CurrentlyExecutingGroup reports every currently-active named group in
	// this subtree.
	CurrentlyExecutingGroup() map[debugger.GroupQIN]struct{}
	// GetActiveTree reports the live execution path(s) below this node.
	GetActiveTree() []debugger.ActiveTreeNode
}

// ComponentInfo is the read-only context threaded through every interpreter
// in a single component's tree: its continuous assignments (live every
// cycle regardless of group state), its boundary input ports (ignored on
// the child side of a Par merge), and its qualified instance name.
type ComponentInfo struct {
	Continuous []*ir.Assignment
	InputPorts map[*ir.Port]bool
	QIN        debugger.ComponentQualifiedInstanceName
}

func NewComponentInfo(continuous []*ir.Assignment, inputPorts map[*ir.Port]bool, qin debugger.ComponentQualifiedInstanceName) ComponentInfo {
	return ComponentInfo{Continuous: continuous, InputPorts: inputPorts, QIN: qin}
}

// NewComponentInfoFromComponent derives the ComponentInfo a component's
// control tree is interpreted under directly from its lowered Component
// record (SPEC_FULL.md §3a, §6), so a driver holding a whole Component
// doesn't need to pick its Continuous list and boundary input ports apart
// by hand.
func NewComponentInfoFromComponent(c *ir.Component, qin debugger.ComponentQualifiedInstanceName) ComponentInfo {
	return NewComponentInfo(c.Continuous, c.InputPortSet(), qin)
}

func noGroups() map[debugger.GroupQIN]struct{} { return map[debugger.GroupQIN]struct{}{} }
