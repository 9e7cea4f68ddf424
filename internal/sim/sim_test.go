package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BasicAcid/meshrelax/internal/config"
	"github.com/BasicAcid/meshrelax/internal/demo"
	"github.com/BasicAcid/meshrelax/internal/subgrid"
)

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.Config[float64]{Q: 0, M: 2, Transition: demo.Identity[float64]()}
	_, err := Run(context.Background(), cfg)
	require.Error(t, err)

	var invalid *config.InvalidConfiguration
	require.ErrorAs(t, err, &invalid)
}

// TestRunProducesFrames exercises the whole pipeline end to end (spec.md
// scenario S1): a 2x2 mesh of 2x2 subgrids under the identity transition
// produces frames whose global grid matches the configured initial
// value everywhere, since nothing should ever change it.
func TestRunProducesFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Config[float64]{
		Q: 2,
		M: 2,
		Initial: config.InitialValues[float64]{
			North: 1, South: 1, East: 1, West: 1, Interior: 1,
		},
		Transition:               demo.Identity[float64](),
		RelaxationStepsPerOutput: 1,
	}

	frames, err := Run(ctx, cfg)
	require.NoError(t, err)

	select {
	case f := <-frames:
		require.Len(t, f.Grid, cfg.N())
		for _, row := range f.Grid {
			for _, v := range row {
				require.Equal(t, 1.0, v)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for first frame")
	}

	cancel()

	// Draining continues until the aggregator's input closes behind the
	// cancelled node goroutines; the channel must eventually close.
	for {
		select {
		case _, ok := <-frames:
			if !ok {
				return
			}
		case <-time.After(2 * time.Second):
			t.Fatal("frames channel never closed after cancellation")
		}
	}
}

// TestRunRejectsOutOfNeighborhoodTransition exercises spec §7: a
// Transition that reads beyond Chebyshev distance 1 is caught at
// bootstrap, before any node goroutine is spawned, via the
// config.CheckNeighborhood dry run wired into Run.
func TestRunRejectsOutOfNeighborhoodTransition(t *testing.T) {
	cfg := config.Config[float64]{
		Q: 1,
		M: 2,
		Transition: func(g subgrid.Reader[float64], i, j int) float64 {
			return g.At(i-2, j)
		},
	}
	_, err := Run(context.Background(), cfg)
	require.Error(t, err)

	var invalid *config.InvalidConfiguration
	require.ErrorAs(t, err, &invalid)
}

func TestTopologyMatchesQ(t *testing.T) {
	snap := Topology(3)
	require.Equal(t, 3, snap.Q)
	require.Len(t, snap.Nodes, 9)
}
