package ir

// Assignment is dst <= src when guard evaluates true. At most one guard per
// dst may evaluate true simultaneously across a live assignment set, or the
// combinational solver reports a MultipleDriver error (SPEC_FULL.md §3).
type Assignment struct {
	Dst        *Port
	Src        *Port
	Guard      *Guard
	Attributes map[string]int
}

// NewAssignment builds an unconditional (True-guarded) assignment, the
// shape used for Invoke port bindings.
func NewAssignment(dst, src *Port) *Assignment {
	return &Assignment{Dst: dst, Src: src, Guard: True()}
}

// NewGuardedAssignment builds an assignment with an explicit guard.
func NewGuardedAssignment(dst, src *Port, guard *Guard) *Assignment {
	return &Assignment{Dst: dst, Src: src, Guard: guard}
}
