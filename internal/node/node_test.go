package node

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BasicAcid/meshrelax/internal/config"
	"github.com/BasicAcid/meshrelax/internal/mesh"
	"github.com/BasicAcid/meshrelax/internal/subgrid"
	"github.com/BasicAcid/meshrelax/internal/topology"
)

func identityConfig() config.Config[float64] {
	return config.Config[float64]{
		Q:       1,
		M:       2,
		Initial: config.InitialValues[float64]{North: 1, South: 0, East: 0, West: 0, Interior: 0},
		Transition: func(g subgrid.Reader[float64], i, j int) float64 {
			return g.At(i, j)
		},
		RelaxationStepsPerOutput: 1,
	}
}

// TestRunEmitsSnapshotsUntilCancelled exercises spec.md §4.5: a node
// emits one Snapshot per cycle and stops once its context is cancelled.
func TestRunEmitsSnapshotsUntilCancelled(t *testing.T) {
	cfg := identityConfig()
	ctx, cancel := context.WithCancel(context.Background())
	coord := topology.Coord{NI: 1, NJ: 1}
	var nb mesh.NeighborSet[float64]

	out := make(chan Snapshot[float64])
	runDone := make(chan struct{})
	go func() {
		Run(ctx, coord, nb, cfg, out)
		close(runDone)
	}()

	for i := 0; i < 3; i++ {
		select {
		case snap := <-out:
			require.Equal(t, coord, snap.Coord)
			require.Len(t, snap.Interior, cfg.M)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for snapshot")
		}
	}

	cancel()
	select {
	case <-runDone:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

// TestRunInteriorStaysConstantUnderIdentity exercises spec.md scenario
// S1: with the identity transition and no live neighbors, every emitted
// snapshot's interior equals the configured initial value.
func TestRunInteriorStaysConstantUnderIdentity(t *testing.T) {
	cfg := identityConfig()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	coord := topology.Coord{NI: 1, NJ: 1}
	var nb mesh.NeighborSet[float64]

	out := make(chan Snapshot[float64])
	go Run(ctx, coord, nb, cfg, out)

	for s := 0; s < 3; s++ {
		snap := <-out
		for _, row := range snap.Interior {
			for _, v := range row {
				require.Equal(t, 0.0, v)
			}
		}
	}
}
