package ir

// EnableHolderKind tags which of Group or CombGroup an EnableHolder wraps.
type EnableHolderKind int

const (
	HolderGroup EnableHolderKind = iota
	HolderCombGroup
)

// EnableHolder generalizes over Group and CombGroup, projecting only GoPort
// and DonePort. Modeled as a small tagged struct rather than a common base
// interface (SPEC_FULL.md §9).
type EnableHolder struct {
	Kind      EnableHolderKind
	Group     *Group
	CombGroup *CombGroup
}

func FromGroup(g *Group) EnableHolder {
	return EnableHolder{Kind: HolderGroup, Group: g}
}

func FromCombGroup(c *CombGroup) EnableHolder {
	return EnableHolder{Kind: HolderCombGroup, CombGroup: c}
}

// GoPort returns the handshake go port, or nil for a CombGroup.
func (h EnableHolder) GoPort() *Port {
	if h.Kind == HolderGroup && h.Group != nil {
		return h.Group.Go
	}
	return nil
}

// DonePort returns the handshake done port, or nil for a CombGroup.
func (h EnableHolder) DonePort() *Port {
	if h.Kind == HolderGroup && h.Group != nil {
		return h.Group.Done
	}
	return nil
}

// Assigns returns the underlying assignment list regardless of variant.
func (h EnableHolder) Assigns() []*Assignment {
	switch h.Kind {
	case HolderGroup:
		if h.Group == nil {
			return nil
		}
		return h.Group.Assignments
	default:
		if h.CombGroup == nil {
			return nil
		}
		return h.CombGroup.Assignments
	}
}

// Name returns a human-readable name for tracing, or "" when the holder
// wraps no group.
func (h EnableHolder) Name() string {
	switch h.Kind {
	case HolderGroup:
		if h.Group != nil {
			return h.Group.Name
		}
	case HolderCombGroup:
		if h.CombGroup != nil {
			return h.CombGroup.Name
		}
	}
	return ""
}
