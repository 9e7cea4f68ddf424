// Package aggregate collects the q^2 per-node subgrid snapshots of one
// output cycle and stitches them into the n x n global grid (spec
// §4.6). It is grounded on diffusion.Service's storage map: that
// service kept a map of in-flight messages and periodically swept it
// on a ticker; the aggregator instead counts down the snapshots still
// missing from the current cycle on every snapshot received, emitting
// a Frame once the count reaches zero.
package aggregate

import (
	"time"

	"github.com/BasicAcid/meshrelax/internal/node"
)

// Frame is one aggregator output record: the wall-clock time since
// bootstrap and a full copy of the global grid (spec §6).
type Frame[V any] struct {
	ElapsedMS int64
	Grid      [][]V
}

// Aggregator owns the n x n global grid and batches incoming node
// snapshots into Frame emissions, one per completed cycle.
type Aggregator[V any] struct {
	q, m  int
	start time.Time
	grid  [][]V
}

// New creates an aggregator for a q x q mesh of m x m subgrids. start
// is the bootstrap time Frame.ElapsedMS is measured against.
func New[V any](q, m int, start time.Time) *Aggregator[V] {
	n := q * m
	grid := make([][]V, n)
	for i := range grid {
		grid[i] = make([]V, n)
	}
	return &Aggregator[V]{q: q, m: m, start: start, grid: grid}
}

// Run consumes snapshots from in and emits one Frame on out per
// complete batch of q^2 snapshots (spec §4.6), until in is closed or
// ctx-style cancellation closes it for the caller. Run does not
// deduplicate: per spec §4.6, correctness depends on every node
// emitting exactly one snapshot per cycle before any emits a second,
// which node.Run's lock-step loop guarantees.
func (a *Aggregator[V]) Run(in <-chan node.Snapshot[V], out chan<- Frame[V]) {
	defer close(out)

	remaining := a.q * a.q
	for snap := range in {
		a.place(snap)
		remaining--
		if remaining == 0 {
			out <- a.frame()
			remaining = a.q * a.q
		}
	}
}

// place copies one node's interior into the global grid at its offset.
func (a *Aggregator[V]) place(snap node.Snapshot[V]) {
	i0, j0 := snap.Coord.Offset(a.m)
	for i, row := range snap.Interior {
		copy(a.grid[i0+i][j0:j0+a.m], row)
	}
}

// frame builds a Frame snapshot of the current global grid, deep-copied
// so subsequent mutation of a.grid cannot race with a reader.
func (a *Aggregator[V]) frame() Frame[V] {
	n := a.q * a.m
	out := make([][]V, n)
	for i, row := range a.grid {
		out[i] = append([]V(nil), row...)
	}
	return Frame[V]{
		ElapsedMS: time.Since(a.start).Milliseconds(),
		Grid:      out,
	}
}
