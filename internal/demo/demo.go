// Package demo supplies ready-made Transition functions that exercise
// the generic core: a Laplace-averaging float64 relaxation (matching
// spec.md scenario S2 exactly) and a von-Neumann Life boolean cellular
// automaton adapted from ca.Engine's Conway rules. The core never
// exchanges diagonal ghost corners (spec §4.3 only refreshes the four
// edges, not the four corners), so a Transition that reads a true
// Moore neighborhood would silently read stale/zero-value corners at
// node boundaries; both demos here are restricted to the orthogonal
// (von Neumann) neighborhood the halo exchange actually keeps live,
// which is still within the Chebyshev-distance-1 bound spec §3
// invariant 3 allows.
package demo

import "github.com/BasicAcid/meshrelax/internal/subgrid"

// Laplace returns a Transition that sets each interior cell to the
// average of its four orthogonal neighbors — the classic relaxation
// used to approximate Laplace's equation, and the exact transition
// spec.md scenario S2 specifies.
func Laplace() subgrid.Transition[float64] {
	return func(g subgrid.Reader[float64], i, j int) float64 {
		return (g.At(i-1, j) + g.At(i+1, j) + g.At(i, j-1) + g.At(i, j+1)) / 4
	}
}

// Identity returns a Transition that leaves every cell unchanged,
// used to exercise spec.md invariant 4 (conservation) and scenario S1
// (constant field) and S3 (halo sync) directly.
func Identity[V any]() subgrid.Transition[V] {
	return func(g subgrid.Reader[V], i, j int) V {
		return g.At(i, j)
	}
}

// VonNeumannLife returns a Transition implementing a Life-like boolean
// automaton using only the four orthogonal neighbors, adapted from
// ca.Engine.countLiveNeighbors/updateGeneration's birth/survival rule
// but dropping the four diagonal neighbors that rule counted, since
// those corners are never exchanged across node boundaries here.
// Conway's eight-neighbor thresholds (survive on 2-3, born on 3) are
// rescaled to the four-neighbor count: a live cell survives on 1-2
// live orthogonal neighbors, a dead cell is born on exactly 3.
func VonNeumannLife() subgrid.Transition[bool] {
	return func(g subgrid.Reader[bool], i, j int) bool {
		live := 0
		for _, n := range [4]bool{g.At(i-1, j), g.At(i+1, j), g.At(i, j-1), g.At(i, j+1)} {
			if n {
				live++
			}
		}
		current := g.At(i, j)
		switch {
		case current && (live == 1 || live == 2):
			return true
		case !current && live == 3:
			return true
		default:
			return false
		}
	}
}
