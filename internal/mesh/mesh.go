// Package mesh builds the bidirectional typed channel conduits between
// nearest-neighbor nodes in the q x q worker mesh (spec §4.1). It is
// the in-process, rendezvous-channel replacement for ryx's
// communication.Service, which wired nodes together over UDP sockets:
// here the "socket" is an unbuffered Go channel and there is exactly
// one sender and one receiver per channel per direction per phase, so
// no framing, addressing, or serialization is needed at all.
package mesh

// NeighborSet names the four (possibly nil) channel endpoints of one
// node. A nil endpoint means the node is an edge node on that side
// (spec §3: node (1,_) has no north neighbor, etc).
type NeighborSet[V any] struct {
	North chan V
	South chan V
	East  chan V
	West  chan V
}

// Mesh is the q x q channel mesh: ns[i][j] carries values between node
// (i,j) and its south neighbor (i+1,j); ew[i][j] carries values between
// node (i,j) and its east neighbor (i,j+1). Both are rendezvous
// (unbuffered) channels, per spec §3 and design note §9 ("the
// deadlock-freedom argument relies on the phase separation, not on
// buffering").
type Mesh[V any] struct {
	q  int
	ns [][]chan V // ns[i][j], 1<=i<=q-1, 1<=j<=q (1-indexed by reserving row/col 0)
	ew [][]chan V // ew[i][j], 1<=i<=q, 1<=j<=q-1
}

// New allocates a q x q channel mesh.
func New[V any](q int) *Mesh[V] {
	m := &Mesh[V]{q: q}

	m.ns = make([][]chan V, q)
	for i := 1; i <= q-1; i++ {
		m.ns[i] = make([]chan V, q+1)
		for j := 1; j <= q; j++ {
			m.ns[i][j] = make(chan V)
		}
	}

	m.ew = make([][]chan V, q+1)
	for i := 1; i <= q; i++ {
		m.ew[i] = make([]chan V, q)
		for j := 1; j <= q-1; j++ {
			m.ew[i][j] = make(chan V)
		}
	}

	return m
}

// Neighbors returns the channel endpoints node (ni, nj) uses. The
// returned channels are shared with exactly one other node: ns/ew
// channels are indexed so that node (ni,nj)'s South field and node
// (ni+1,nj)'s North field name the same channel object.
func (m *Mesh[V]) Neighbors(ni, nj int) NeighborSet[V] {
	var nb NeighborSet[V]

	if ni > 1 {
		nb.North = m.ns[ni-1][nj]
	}
	if ni < m.q {
		nb.South = m.ns[ni][nj]
	}
	if nj < m.q {
		nb.East = m.ew[ni][nj]
	}
	if nj > 1 {
		nb.West = m.ew[ni][nj-1]
	}

	return nb
}

// Q returns the mesh dimension.
func (m *Mesh[V]) Q() int { return m.q }
