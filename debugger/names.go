// Package debugger implements the introspection surface the core exposes to
// an external debugger: qualified instance names, the active-tree report,
// and source-map lookup (SPEC_FULL.md §4.11, §4.12).
package debugger

import "strings"

// ComponentQualifiedInstanceName is the path of instance names from the
// root component down to a specific sub-component instance.
type ComponentQualifiedInstanceName struct {
	Path []string
}

func RootQIN(name string) ComponentQualifiedInstanceName {
	return ComponentQualifiedInstanceName{Path: []string{name}}
}

// Child returns the qualified name one level deeper, for a sub-component
// invoked under this one.
func (q ComponentQualifiedInstanceName) Child(instance string) ComponentQualifiedInstanceName {
	path := make([]string, len(q.Path)+1)
	copy(path, q.Path)
	path[len(q.Path)] = instance
	return ComponentQualifiedInstanceName{Path: path}
}

func (q ComponentQualifiedInstanceName) String() string {
	return strings.Join(q.Path, ".")
}

// GroupQIN pairs a component-qualified instance name with a group name, so
// two groups with the same name in different component instances are
// distinguishable.
type GroupQIN struct {
	QIN       ComponentQualifiedInstanceName
	GroupName string
}

func NewGroupQIN(qin ComponentQualifiedInstanceName, group string) GroupQIN {
	return GroupQIN{QIN: qin, GroupName: group}
}

func (g GroupQIN) String() string {
	return g.QIN.String() + ":" + g.GroupName
}

// GroupQualifiedInstanceNameKind tags the three shapes an ActiveTreeNode's
// label can take.
type GroupQualifiedInstanceNameKind int

const (
	KindGroup GroupQualifiedInstanceNameKind = iota
	KindPhantom
	KindEmpty
)

// GroupQualifiedInstanceName is the label of one ActiveTreeNode: a real
// group, a phantom node standing in for an Invoke (which is not itself a
// group), or an empty control node.
type GroupQualifiedInstanceName struct {
	Kind    GroupQualifiedInstanceNameKind
	Path    ComponentQualifiedInstanceName
	Group   string // set for KindGroup
	Phantom string // set for KindPhantom
}

func NewGroupName(path ComponentQualifiedInstanceName, group string) GroupQualifiedInstanceName {
	return GroupQualifiedInstanceName{Kind: KindGroup, Path: path, Group: group}
}

func NewPhantomName(path ComponentQualifiedInstanceName, label string) GroupQualifiedInstanceName {
	return GroupQualifiedInstanceName{Kind: KindPhantom, Path: path, Phantom: label}
}

func NewEmptyName(path ComponentQualifiedInstanceName) GroupQualifiedInstanceName {
	return GroupQualifiedInstanceName{Kind: KindEmpty, Path: path}
}

func (n GroupQualifiedInstanceName) String() string {
	switch n.Kind {
	case KindGroup:
		return n.Path.String() + ":" + n.Group
	case KindPhantom:
		return n.Path.String() + ":<" + n.Phantom + ">"
	default:
		return n.Path.String() + ":<empty>"
	}
}

// ActiveTreeNode is one currently-active enable/invoke in the live
// execution path, as reported by GetActiveTree.
type ActiveTreeNode struct {
	Name GroupQualifiedInstanceName
}

func NewActiveTreeNode(name GroupQualifiedInstanceName) ActiveTreeNode {
	return ActiveTreeNode{Name: name}
}
