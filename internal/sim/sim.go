// Package sim is the simulation bootstrap (spec §4.7): it validates
// the application descriptor, builds the channel mesh, spawns the q^2
// node drivers wired to their neighbor endpoints and the aggregator,
// and returns the aggregator's output channel. It is grounded on
// node.New plus cmd/ryx-cluster/main.go's cluster-of-nodes spawn loop,
// but replaces that command's manual goroutine-per-node bookkeeping
// with golang.org/x/sync/errgroup, the concurrency-glue library the
// retrieval pack's module graphs pull in (wator-project, go-highway)
// but never exercise directly.
package sim

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BasicAcid/meshrelax/internal/aggregate"
	"github.com/BasicAcid/meshrelax/internal/config"
	"github.com/BasicAcid/meshrelax/internal/mesh"
	"github.com/BasicAcid/meshrelax/internal/node"
	"github.com/BasicAcid/meshrelax/internal/topology"
)

// Run bootstraps the simulation and returns its output channel
// immediately; cfg is validated synchronously, and cfg.Transition is
// dry-run once via config.CheckNeighborhood using cfg.Initial.Interior
// as a representative probe value, so a caller sees
// *config.InvalidConfiguration before any goroutine is spawned (spec
// §7). Cancelling ctx terminates every node at its next channel
// operation; Frame emission then stops once the last in-flight batch
// drains.
func Run[V any](ctx context.Context, cfg config.Config[V]) (<-chan aggregate.Frame[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := config.CheckNeighborhood(cfg.Transition, cfg.Initial.Interior); err != nil {
		return nil, err
	}

	msh := mesh.New[V](cfg.Q)
	agg := aggregate.New[V](cfg.Q, cfg.M, time.Now())

	in := make(chan node.Snapshot[V])
	out := make(chan aggregate.Frame[V])
	go agg.Run(in, out)

	g, gctx := errgroup.WithContext(ctx)
	for ni := 1; ni <= cfg.Q; ni++ {
		for nj := 1; nj <= cfg.Q; nj++ {
			coord := topology.Coord{NI: ni, NJ: nj}
			nb := msh.Neighbors(ni, nj)
			g.Go(func() error {
				node.Run(gctx, coord, nb, cfg, in)
				return nil
			})
		}
	}

	go func() {
		_ = g.Wait()
		close(in)
	}()

	return out, nil
}

// Topology exposes the static mesh topology for a q x q mesh, useful for
// monitoring and tests (spec supplement: topology.Snapshot).
func Topology(q int) topology.Snapshot {
	return topology.Build(q)
}
