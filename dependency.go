package sqlfault

import (
	"fmt"
	"strings"
)

// Edge is a directed dependency between two named schema or flush nodes.
type Edge [2]string

func (e Edge) String() string { return e[0] + "->" + e[1] }

// CircularDependencyError reports a cycle found while topologically sorting
// dependent objects. Cycles holds the nodes participating in a cycle, Edges
// every dependency edge among them, so callers can render or break the cycle.
type CircularDependencyError struct {
	msg    string
	Cycles []string
	Edges  []Edge
}

func NewCircularDependency(msg string, cycles []string, edges []Edge) *CircularDependencyError {
	return &CircularDependencyError{msg: msg, Cycles: cycles, Edges: edges}
}

func (e *CircularDependencyError) Error() string {
	if len(e.Cycles) == 0 {
		return e.msg
	}
	parts := make([]string, len(e.Edges))
	for i, edge := range e.Edges {
		parts[i] = edge.String()
	}
	return fmt.Sprintf("%s; cycle: (%s), edges: (%s)",
		e.msg, strings.Join(e.Cycles, ", "), strings.Join(parts, ", "))
}

func (e *CircularDependencyError) Class() *Class { return CircularDependency }

func (e *CircularDependencyError) Is(target error) bool {
	return classIs(CircularDependency, target)
}
