package config

import (
	"fmt"

	"github.com/BasicAcid/meshrelax/internal/subgrid"
)

// probeReader stands in for a grid whose every cell holds a
// caller-supplied probe value (any coordinate may be read) and
// records, relative to the center (1, 1), the largest Chebyshev
// distance any At call reads at. It is the instrumentation
// CheckNeighborhood uses to catch a Transition that reaches outside
// the one-cell neighborhood the halo exchange actually refreshes.
type probeReader[V any] struct {
	center  V
	maxDist int
}

func (p *probeReader[V]) At(i, j int) V {
	d := chebyshev(i-1, j-1)
	if d > p.maxDist {
		p.maxDist = d
	}
	return p.center
}

// chebyshev returns max(|di|, |dj|), the same component-wise-delta
// then combine shape the ryx codebase used for node-to-node distance
// (spatial.calculateEuclideanDistance), with the combining step
// replaced by a Chebyshev max in place of a Euclidean sum-of-squares.
func chebyshev(di, dj int) int {
	if di < 0 {
		di = -di
	}
	if dj < 0 {
		dj = -dj
	}
	if di > dj {
		return di
	}
	return dj
}

// CheckNeighborhood is a bootstrap-time dry run (sim.Run calls it right
// after Config.Validate) that invokes t
// once at a synthetic center cell and fails if any read reached beyond
// Chebyshev distance 1 — a concrete implementation of spec §7's
// "transition function that reads outside its declared neighborhood is
// a programmer error surfaced at bootstrap". probe is any representative
// V; its value does not matter, only which coordinates t reads.
func CheckNeighborhood[V any](t subgrid.Transition[V], probe V) error {
	r := &probeReader[V]{center: probe}
	t(r, 1, 1)
	if r.maxDist > 1 {
		return &InvalidConfiguration{Reason: fmt.Sprintf(
			"transition function read a cell at Chebyshev distance %d from the cell being updated; only distance <= 1 is refreshed by the halo exchange", r.maxDist)}
	}
	return nil
}
