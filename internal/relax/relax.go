// Package relax performs one full relaxation step: two halo exchanges
// and two parity-interleaved interior updates (spec §4.4). It is
// grounded on ca.Engine.updateGeneration's "compute next states, then
// apply" generation loop, but splits what that function did in one
// locked pass (all cells at once, wrap-around neighbors, whole-grid
// mutex) into two phase-correct halves gated by cell parity, with
// cross-node neighbors coming from a real halo exchange instead of
// countLiveNeighbors's wrap-around substitute.
package relax

import (
	"github.com/BasicAcid/meshrelax/internal/exchange"
	"github.com/BasicAcid/meshrelax/internal/mesh"
	"github.com/BasicAcid/meshrelax/internal/subgrid"
)

// Step performs one relaxation step on g: exchange the halo the
// parity-0 update needs, update parity-0 cells, exchange the halo the
// parity-1 update needs, update parity-1 cells (spec §4.4). Per spec
// §4.3.2, the halo exchange that precedes a parity-p update must run
// with the *complement* of p — exchange.Step's phase indices cover the
// stride-2 ghost columns/rows a parity-(1-p) update would need, which
// are exactly the ones a parity-p update's orthogonal neighbors sit on.
// It is called by exactly one goroutine — the owning node — and never
// runs concurrently with itself on the same grid.
func Step[V any](g *subgrid.Grid[V], nb mesh.NeighborSet[V], t subgrid.Transition[V]) {
	m := g.M()
	for parity := 0; parity <= 1; parity++ {
		exchange.Step(g, nb, m, 1-parity)
		updateParity(g, t, parity)
	}
}

// updateParity applies t to every interior cell (i, j) with
// (i+j) mod 2 == parity, writing the result back in place, in row-major
// order. A parity-p cell's four orthogonal neighbors are all
// parity-(1-p) cells, none of which this pass touches, so for a
// transition that reads only those (as every demo transition does) the
// write order among parity-p cells does not matter; a transition that
// also reads diagonal neighbors (same parity) sees the new value of
// any diagonal neighbor that precedes the cell in that order. This is
// the standard red/black Gauss-Seidel update (spec
// §1), not a Jacobi step — a parity-1 update in the same Step call
// reads the parity-0 results this pass just wrote, not their
// pre-Step values. See DESIGN.md's Open Question decision on this.
func updateParity[V any](g *subgrid.Grid[V], t subgrid.Transition[V], parity int) {
	m := g.M()
	for i := 1; i <= m; i++ {
		for j := 1; j <= m; j++ {
			if (i+j)%2 != parity {
				continue
			}
			g.Set(i, j, t(g, i, j))
		}
	}
}
