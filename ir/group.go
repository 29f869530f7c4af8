package ir

// Group is a named, ordered collection of assignments plus a go/done
// handshake. It is "running" while Go is high and "finished" on the cycle
// Done becomes high.
type Group struct {
	Name        string
	Assignments []*Assignment
	Go          *Port
	Done        *Port
}

// CombGroup is a Group without the go/done handshake: purely combinational,
// used as the side-effect condition evaluated before an If or While branch.
type CombGroup struct {
	Name        string
	Assignments []*Assignment
}
