// Package node implements the per-node driver loop (spec §4.5): build
// the subgrid, emit a snapshot, advance cfg.StepsPerOutput() relaxation
// steps (one by default), repeat
// forever until the context is cancelled. It is grounded on ryx's
// node.Node, which wired a handful of long-lived services together
// behind a Start/Stop lifecycle; here there is exactly one service
// (the relaxation loop itself) and Start *is* Run — there is no
// separate Stop because the only way to end a node's loop is to
// cancel its context, matching spec §5's cancellation model.
package node

import (
	"context"

	"github.com/BasicAcid/meshrelax/internal/config"
	"github.com/BasicAcid/meshrelax/internal/mesh"
	"github.com/BasicAcid/meshrelax/internal/relax"
	"github.com/BasicAcid/meshrelax/internal/subgrid"
	"github.com/BasicAcid/meshrelax/internal/topology"
)

// Snapshot is the {subgrid_snapshot, ni, nj} tuple a node emits to the
// aggregator each output cycle (spec §4.5-4.6). Interior is a
// value-isolated copy of the node's m x m interior cells.
type Snapshot[V any] struct {
	Coord    topology.Coord
	Interior [][]V
}

// Run drives one node forever: it builds the node's subgrid from cfg,
// then loops emitting a Snapshot and advancing cfg.StepsPerOutput()
// relaxation steps, until ctx is cancelled. out must have a receiver
// keeping pace — spec §4.6 requires all q^2 nodes to complete one
// cycle before any starts a second. The aggregator does not check
// this; it holds because a node cannot finish a relaxation step until
// its neighbors take part in the same step's halo exchanges.
func Run[V any](ctx context.Context, coord topology.Coord, nb mesh.NeighborSet[V], cfg config.Config[V], out chan<- Snapshot[V]) {
	g := subgrid.New(cfg.M, coord.NI, coord.NJ, cfg.CellInit())
	steps := cfg.StepsPerOutput()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		snap := Snapshot[V]{Coord: coord, Interior: g.Interior()}
		select {
		case out <- snap:
		case <-ctx.Done():
			return
		}

		for s := 0; s < steps; s++ {
			relax.Step(g, nb, cfg.Transition)
		}
	}
}
