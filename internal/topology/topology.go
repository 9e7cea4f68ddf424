// Package topology maps mesh node coordinates to their neighbor
// relationships. It is a static, computed analogue of ryx's
// topology.TopologyMapper: that mapper built a NetworkTopology by
// querying a live discovery.Service for dynamically-discovered
// neighbors and distances; here the mesh is a fixed q x q grid known
// entirely at bootstrap, so the same node/neighbor/edge shape is
// produced by direct computation instead of discovery polling.
package topology

import "fmt"

// Coord is a node's position in the q x q mesh, 1-indexed per spec §3.
type Coord struct {
	NI int
	NJ int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.NI, c.NJ)
}

// IsNorthEdge reports whether the node has no north neighbor.
func (c Coord) IsNorthEdge() bool { return c.NI == 1 }

// IsSouthEdge reports whether the node has no south neighbor, given
// mesh dimension q.
func (c Coord) IsSouthEdge(q int) bool { return c.NI == q }

// IsWestEdge reports whether the node has no west neighbor.
func (c Coord) IsWestEdge() bool { return c.NJ == 1 }

// IsEastEdge reports whether the node has no east neighbor, given mesh
// dimension q.
func (c Coord) IsEastEdge(q int) bool { return c.NJ == q }

// Offset returns the (i0, j0) global offset of this node's interior,
// per spec §4.2: i0 = (ni-1)*m, j0 = (nj-1)*m.
func (c Coord) Offset(m int) (i0, j0 int) {
	return (c.NI - 1) * m, (c.NJ - 1) * m
}

// Node describes one mesh node and its neighbor coordinates for
// introspection (monitor endpoints, tests validating stride coverage
// per node).
type Node struct {
	Coord     Coord
	North     *Coord
	South     *Coord
	East      *Coord
	West      *Coord
	NorthEdge bool
	SouthEdge bool
	EastEdge  bool
	WestEdge  bool
}

// Snapshot lists every node coordinate in a q x q mesh together with
// its neighbor coordinates and which sides are mesh edges.
type Snapshot struct {
	Q     int
	Nodes []Node
}

// Build computes the full topology snapshot for a q x q mesh.
func Build(q int) Snapshot {
	snap := Snapshot{Q: q, Nodes: make([]Node, 0, q*q)}

	for ni := 1; ni <= q; ni++ {
		for nj := 1; nj <= q; nj++ {
			c := Coord{NI: ni, NJ: nj}
			n := Node{
				Coord:     c,
				NorthEdge: c.IsNorthEdge(),
				SouthEdge: c.IsSouthEdge(q),
				EastEdge:  c.IsEastEdge(q),
				WestEdge:  c.IsWestEdge(),
			}
			if !n.NorthEdge {
				nc := Coord{NI: ni - 1, NJ: nj}
				n.North = &nc
			}
			if !n.SouthEdge {
				nc := Coord{NI: ni + 1, NJ: nj}
				n.South = &nc
			}
			if !n.EastEdge {
				nc := Coord{NI: ni, NJ: nj + 1}
				n.East = &nc
			}
			if !n.WestEdge {
				nc := Coord{NI: ni, NJ: nj - 1}
				n.West = &nc
			}
			snap.Nodes = append(snap.Nodes, n)
		}
	}

	return snap
}
