// Package exchange implements the two-phase halo swap (spec §4.3): the
// CSP protocol that refreshes a node's ghost cells to match its
// neighbors' interior values without deadlocking on unbuffered
// channels. It is the piece ca.Engine's own boundary-exchange attempt
// (UpdateNeighborBoundary/GetBoundaryStates) stopped short of
// finishing — that code collected boundary snapshots but explicitly
// disabled the exchange itself ("Temporarily disable boundary exchange
// to avoid deadlock") and returned Dead for every cross-node read. The
// phase-separated protocol below is what actually avoids that deadlock,
// following the send/receive pairing diffusion.Service used for
// directional message forwarding, generalized from "forward to every
// discovered neighbor" to "send/receive with exactly the four fixed
// mesh neighbors on alternating phases".
package exchange

import (
	"sync"

	"github.com/BasicAcid/meshrelax/internal/mesh"
	"github.com/BasicAcid/meshrelax/internal/subgrid"
)

// Step runs one full halo exchange over the stride-2 index range
// parity selects: phase 1 (receive north/send south/send east/receive
// west) over the range spec §4.3.2 assigns to phase 1 for parity, then
// phase 2 (send north/receive south/receive east/send west) over its
// complementary range. parity here is NOT the parity of the update
// that follows — per spec §4.3.2 the caller must pass the complement
// of that update's target parity, since a parity-p update's orthogonal
// neighbors sit on the stride-2 rows/columns this exchange refreshes
// for parity 1-p. See internal/relax.Step, the only caller.
func Step[V any](g *subgrid.Grid[V], nb mesh.NeighborSet[V], m, parity int) {
	phase1(g, nb, m, parity)
	phase2(g, nb, m, parity)
}

// phase1Indices returns 2-parity, 4-parity, ..., m-parity.
func phase1Indices(m, parity int) []int {
	var ks []int
	for k := 2 - parity; k <= m-parity; k += 2 {
		ks = append(ks, k)
	}
	return ks
}

// phase2Indices returns 1+parity, 3+parity, ..., m-1+parity.
func phase2Indices(m, parity int) []int {
	var ks []int
	for k := 1 + parity; k <= m-1+parity; k += 2 {
		ks = append(ks, k)
	}
	return ks
}

func phase1[V any](g *subgrid.Grid[V], nb mesh.NeighborSet[V], m, parity int) {
	for _, k := range phase1Indices(m, parity) {
		subExchange(func(wg *sync.WaitGroup) {
			if nb.North != nil {
				go func() {
					defer wg.Done()
					g.Set(0, k, <-nb.North)
				}()
			}
			if nb.South != nil {
				go func() {
					defer wg.Done()
					nb.South <- g.At(m, k)
				}()
			}
			if nb.East != nil {
				go func() {
					defer wg.Done()
					nb.East <- g.At(k, m)
				}()
			}
			if nb.West != nil {
				go func() {
					defer wg.Done()
					g.Set(k, 0, <-nb.West)
				}()
			}
		}, countActive(nb))
	}
}

func phase2[V any](g *subgrid.Grid[V], nb mesh.NeighborSet[V], m, parity int) {
	for _, k := range phase2Indices(m, parity) {
		subExchange(func(wg *sync.WaitGroup) {
			if nb.North != nil {
				go func() {
					defer wg.Done()
					nb.North <- g.At(1, k)
				}()
			}
			if nb.South != nil {
				go func() {
					defer wg.Done()
					g.Set(m+1, k, <-nb.South)
				}()
			}
			if nb.East != nil {
				go func() {
					defer wg.Done()
					g.Set(k, m+1, <-nb.East)
				}()
			}
			if nb.West != nil {
				go func() {
					defer wg.Done()
					nb.West <- g.At(k, 1)
				}()
			}
		}, countActive(nb))
	}
}

// countActive returns how many of the four directional endpoints are
// non-nil, i.e. how many sub-tasks this sub-exchange spawns.
func countActive[V any](nb mesh.NeighborSet[V]) int {
	n := 0
	if nb.North != nil {
		n++
	}
	if nb.South != nil {
		n++
	}
	if nb.East != nil {
		n++
	}
	if nb.West != nil {
		n++
	}
	return n
}

// subExchange runs the (up to four) directional tasks spawn submits
// and blocks until all of them complete, per spec §4.3.1: "A
// sub-exchange completes only when all four of its constituent tasks
// complete."
func subExchange(spawn func(wg *sync.WaitGroup), n int) {
	if n == 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(n)
	spawn(&wg)
	wg.Wait()
}
