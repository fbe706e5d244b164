package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// DependencyGraph maps each resolved package to its direct dependencies.
// Nodes are kept in discovery order so output is stable for a fixed registry.
type DependencyGraph struct {
	roots []ResolvedRef
	order []ResolvedRef
	edges map[ResolvedRef][]ResolvedRef
}

// NewDependencyGraph creates a new empty DependencyGraph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		edges: make(map[ResolvedRef][]ResolvedRef),
	}
}

// AddRoot records ref as a top-level requirement of the graph.
func (g *DependencyGraph) AddRoot(ref ResolvedRef) {
	if !slices.Contains(g.roots, ref) {
		g.roots = append(g.roots, ref)
	}
}

// SetChildren records the direct children of ref. The first call for a ref fixes its position.
func (g *DependencyGraph) SetChildren(ref ResolvedRef, children []ResolvedRef) {
	if _, exists := g.edges[ref]; !exists {
		g.order = append(g.order, ref)
	}
	if children == nil {
		children = []ResolvedRef{}
	}
	g.edges[ref] = children
}

// Has reports whether ref is a node of the graph.
func (g *DependencyGraph) Has(ref ResolvedRef) bool {
	_, ok := g.edges[ref]
	return ok
}

// Children returns the direct dependencies of ref.
func (g *DependencyGraph) Children(ref ResolvedRef) []ResolvedRef {
	return slices.Clone(g.edges[ref])
}

// Roots returns the refs the graph was built from.
func (g *DependencyGraph) Roots() []ResolvedRef {
	return slices.Clone(g.roots)
}

// Nodes returns every node in discovery order.
func (g *DependencyGraph) Nodes() []ResolvedRef {
	return slices.Clone(g.order)
}

// Len returns the number of nodes.
func (g *DependencyGraph) Len() int {
	return len(g.order)
}

// Adjacency returns a copy of the adjacency lists.
func (g *DependencyGraph) Adjacency() map[ResolvedRef][]ResolvedRef {
	out := make(map[ResolvedRef][]ResolvedRef, len(g.edges))
	for ref, children := range g.edges {
		out[ref] = slices.Clone(children)
	}
	return out
}

// All yields nodes and their direct children in discovery order.
func (g *DependencyGraph) All() iter.Seq2[ResolvedRef, []ResolvedRef] {
	return func(yield func(ResolvedRef, []ResolvedRef) bool) {
		for _, ref := range g.order {
			if !yield(ref, slices.Clone(g.edges[ref])) {
				return
			}
		}
	}
}

// TopologicalOrder returns nodes with every dependency ahead of its dependents.
func (g *DependencyGraph) TopologicalOrder() ([]ResolvedRef, error) {
	order := make([]ResolvedRef, 0, len(g.order))
	visited := make(map[ResolvedRef]int) // 0: unvisited, 1: visiting, 2: visited
	var path []ResolvedRef

	var visit func(u ResolvedRef) error
	visit = func(u ResolvedRef) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.edges[u] {
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		order = append(order, u)
		return nil
	}

	for _, ref := range g.order {
		if visited[ref] == 0 {
			if err := visit(ref); err != nil {
				return nil, err
			}
		}
	}
	return order, nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []ResolvedRef, dep ResolvedRef) error {
	start := slices.Index(path, dep)
	parts := make([]string, 0, len(path)-start+1)
	for _, ref := range path[start:] {
		parts = append(parts, string(ref))
	}
	parts = append(parts, string(dep))
	return zerr.With(zerr.Wrap(ErrCycleDetected, "dependency graph is not acyclic"), "cycle", strings.Join(parts, " -> "))
}
