// Package subgrid holds one mesh node's local (m+2)x(m+2) cell array:
// a one-cell ghost halo around an m x m interior. It is grounded on the
// ryx codebase's ca.Grid/ca.Engine pair, generalized from a hard-coded
// Conway's-Game-of-Life board of CellState into a generic store of any
// opaque cell payload V, and stripped of ca.Engine's own ticking loop
// and statistics bookkeeping — subgrid owns storage only; relax owns
// the update loop.
package subgrid

// Reader exposes read-only access to a grid by (row, col). Representing
// the transition function's input as an interface rather than a bare
// [][]V lets CheckNeighborhood (see internal/config) instrument reads
// without touching the grid implementation, per spec.md §9's "dynamic
// dispatch" design note: the transition is a capability the core
// consumes, and an interface with a single method is one of the
// licensed shapes for it.
type Reader[V any] interface {
	At(i, j int) V
}

// Transition is the application-supplied pure cell-update function: it
// reads g and returns the next value for (i, j). It must read only
// cells within Chebyshev distance 1 of (i, j) (spec §3 invariant 3).
type Transition[V any] func(g Reader[V], i, j int) V

// CellInit computes the value a global coordinate (I, J) should hold:
// a boundary value when (I, J) sits on the n+1-padded global border,
// the interior initial value otherwise (spec §4.2).
type CellInit[V any] func(globalI, globalJ int) V

// Grid is one node's (m+2) x (m+2) subgrid. Indices 0 and m+1 are the
// ghost halo; indices 1..m are interior. Grid is owned exclusively by
// the node that creates it (spec §3 Lifecycles) — callers outside that
// node must only ever see a Snapshot copy, never the live Grid.
type Grid[V any] struct {
	m     int
	cells [][]V
}

// New builds a node's subgrid by evaluating init at the global
// coordinates the node (ni, nj) covers, exactly as spec §4.2 describes:
// i0 = (ni-1)*m, j0 = (nj-1)*m, then init(i0+i, j0+j) for i, j in 0..m+1.
func New[V any](m, ni, nj int, init CellInit[V]) *Grid[V] {
	i0 := (ni - 1) * m
	j0 := (nj - 1) * m

	cells := make([][]V, m+2)
	for i := 0; i <= m+1; i++ {
		row := make([]V, m+2)
		for j := 0; j <= m+1; j++ {
			row[j] = init(i0+i, j0+j)
		}
		cells[i] = row
	}
	return &Grid[V]{m: m, cells: cells}
}

// M returns the interior dimension.
func (g *Grid[V]) M() int { return g.m }

// At returns the cell at (i, j), satisfying Reader.
func (g *Grid[V]) At(i, j int) V { return g.cells[i][j] }

// Set writes the cell at (i, j).
func (g *Grid[V]) Set(i, j int, v V) { g.cells[i][j] = v }

// Snapshot returns a value-isolated deep copy of the whole (m+2)x(m+2)
// array, safe to hand to a concurrent reader (spec §4.5: the snapshot
// passed to the aggregator "must be a value-copy ... isolated from
// subsequent mutations").
func (g *Grid[V]) Snapshot() [][]V {
	out := make([][]V, len(g.cells))
	for i, row := range g.cells {
		out[i] = append([]V(nil), row...)
	}
	return out
}

// Interior returns a copy of the m x m interior (indices 1..m), the
// slice the aggregator stitches into the global grid.
func (g *Grid[V]) Interior() [][]V {
	out := make([][]V, g.m)
	for i := 1; i <= g.m; i++ {
		out[i-1] = append([]V(nil), g.cells[i][1:g.m+1]...)
	}
	return out
}
