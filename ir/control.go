package ir

// ControlKind tags the variant of a Control node.
type ControlKind int

const (
	CtrlEmpty ControlKind = iota
	CtrlEnable
	CtrlInvoke
	CtrlSeq
	CtrlPar
	CtrlIf
	CtrlWhile
)

// Control is a tagged variant over the control constructs SPEC_FULL.md §3
// enumerates: Empty, Enable(group), Invoke, Seq, Par, If, While.
type Control struct {
	Kind   ControlKind
	Enable *Enable
	Invoke *Invoke
	Seq    *Seq
	Par    *Par
	If     *If
	While  *While
}

func Empty() *Control { return &Control{Kind: CtrlEmpty} }

func EnableCtrl(g *Group) *Control {
	return &Control{Kind: CtrlEnable, Enable: &Enable{Group: g}}
}

func SeqCtrl(stmts ...*Control) *Control {
	return &Control{Kind: CtrlSeq, Seq: &Seq{Stmts: stmts}}
}

func ParCtrl(stmts ...*Control) *Control {
	return &Control{Kind: CtrlPar, Par: &Par{Stmts: stmts}}
}

func IfCtrl(port *Port, cond *CombGroup, tbranch, fbranch *Control) *Control {
	return &Control{Kind: CtrlIf, If: &If{Port: port, CondGroup: cond, TBranch: tbranch, FBranch: fbranch}}
}

func WhileCtrl(port *Port, cond *CombGroup, body *Control) *Control {
	return &Control{Kind: CtrlWhile, While: &While{Port: port, CondGroup: cond, Body: body}}
}

func InvokeCtrl(comp *Cell, inputs, outputs []PortBinding, cond *CombGroup) *Control {
	return &Control{Kind: CtrlInvoke, Invoke: &Invoke{Comp: comp, Inputs: inputs, Outputs: outputs, CombGroup: cond}}
}

// Enable drives a single group to completion.
type Enable struct {
	Group *Group
}

// PortBinding pairs a sub-component formal port name with the actual port in
// the invoking component that feeds or receives it.
type PortBinding struct {
	Formal string
	Actual *Port
}

// Invoke drives a sub-component cell through its signature ports, optionally
// gated by a comb_group side-effect condition.
type Invoke struct {
	Comp      *Cell
	Inputs    []PortBinding
	Outputs   []PortBinding
	CombGroup *CombGroup
}

// Seq runs its statements one at a time, in program order.
type Seq struct {
	Stmts []*Control
}

// Par runs its statements concurrently, one cycle at a time, joining their
// forked environments on Deconstruct.
type Par struct {
	Stmts []*Control
}

// If evaluates Port (optionally after converging CondGroup) and selects
// TBranch or FBranch.
type If struct {
	Port             *Port
	CondGroup        *CombGroup
	TBranch, FBranch *Control
}

// While repeatedly evaluates Port (optionally after converging CondGroup)
// and runs Body while it is true.
type While struct {
	Port      *Port
	CondGroup *CombGroup
	Body      *Control
}
