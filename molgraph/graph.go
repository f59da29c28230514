package molgraph

import (
	chem "github.com/rmera/chemprint"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// Atom wraps a chemprint atom as a gonum graph node. The node ID is the
// atom's position in its molecule.
type Atom struct {
	*chem.Atom
}

func (A Atom) ID() int64 {
	return int64(A.Atom.Index())
}

// Bond wraps a chemprint bond as a gonum graph edge.
type Bond struct {
	*chem.Bond
}

func (B Bond) From() graph.Node {
	return Atom{B.At1}
}

func (B Bond) To() graph.Node {
	return Atom{B.At2}
}

func (B Bond) ReversedEdge() graph.Edge {
	r := *B.Bond
	r.At1, r.At2 = r.At2, r.At1
	return Bond{&r}
}

// Atoms implements graph.Nodes over a slice of atoms.
type Atoms struct {
	ats  []*chem.Atom
	curr int
}

func newAtoms(ats []*chem.Atom) *Atoms {
	return &Atoms{ats: ats, curr: -1}
}

func (A *Atoms) Len() int {
	return len(A.ats) - A.curr - 1
}

func (A *Atoms) Next() bool {
	if A.curr+1 >= len(A.ats) {
		return false
	}
	A.curr++
	return true
}

func (A *Atoms) Node() graph.Node {
	return Atom{A.ats[A.curr]}
}

func (A *Atoms) Reset() {
	A.curr = -1
}

// Graph presents the bonded structure of a Mol as a gonum undirected
// graph, so the gonum graph algorithms can run on molecules.
type Graph struct {
	mol *chem.Mol
}

// New builds a Graph for mol. The molecule's bonds must already be
// perceived (MolFromGroup does that).
func New(mol *chem.Mol) *Graph {
	return &Graph{mol: mol}
}

// Mol returns the molecule underlying the graph.
func (G *Graph) Mol() *chem.Mol {
	return G.mol
}

func (G *Graph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(G.mol.Len()) {
		return nil
	}
	return Atom{G.mol.Atom(int(id))}
}

func (G *Graph) Nodes() graph.Nodes {
	ats := make([]*chem.Atom, G.mol.Len())
	for i := 0; i < G.mol.Len(); i++ {
		ats[i] = G.mol.Atom(i)
	}
	return newAtoms(ats)
}

func (G *Graph) From(id int64) graph.Nodes {
	neigh := G.mol.Neighbors(int(id))
	ats := make([]*chem.Atom, len(neigh))
	for i, n := range neigh {
		ats[i] = G.mol.Atom(n)
	}
	return newAtoms(ats)
}

func (G *Graph) HasEdgeBetween(xid, yid int64) bool {
	return G.EdgeBetween(xid, yid) != nil
}

func (G *Graph) Edge(uid, vid int64) graph.Edge {
	return G.EdgeBetween(uid, vid)
}

func (G *Graph) EdgeBetween(xid, yid int64) graph.Edge {
	if xid < 0 || xid >= int64(G.mol.Len()) {
		return nil
	}
	at := G.mol.Atom(int(xid))
	for _, b := range at.Bonds {
		other := b.Cross(at)
		if int64(other.Index()) == yid {
			return Bond{b}
		}
	}
	return nil
}

// Distances returns the topological distance (number of bonds along the
// shortest path) between the atom at position from and every atom in the
// molecule. Unreachable atoms get -1.
func (G *Graph) Distances(from int) []int {
	dist := make([]int, G.mol.Len())
	for i := range dist {
		dist[i] = -1
	}
	bf := traverse.BreadthFirst{}
	bf.Walk(G, G.Node(int64(from)), func(n graph.Node, d int) bool {
		dist[n.ID()] = d
		return false
	})
	return dist
}

// NumComponents returns the number of connected components (molecular
// fragments).
func (G *Graph) NumComponents() int {
	return len(topo.ConnectedComponents(G))
}

// Rings returns the fundamental cycles of the molecule, each as a slice
// of atom positions (without repeating the closing atom).
func (G *Graph) Rings() [][]int {
	cycles := topo.UndirectedCyclesIn(G)
	rings := make([][]int, 0, len(cycles))
	for _, c := range cycles {
		ring := make([]int, 0, len(c)-1)
		for _, n := range c[:len(c)-1] {
			ring = append(ring, int(n.ID()))
		}
		rings = append(rings, ring)
	}
	return rings
}

// RingCount returns the number of fundamental rings.
func (G *Graph) RingCount() int {
	return len(topo.UndirectedCyclesIn(G))
}

// InRing reports whether the atom at position i belongs to a ring.
func (G *Graph) InRing(i int) bool {
	for _, ring := range G.Rings() {
		for _, a := range ring {
			if a == i {
				return true
			}
		}
	}
	return false
}

// BondInRing reports whether the bond between atom positions i and j
// belongs to a ring.
func (G *Graph) BondInRing(i, j int) bool {
	for _, ring := range G.Rings() {
		for k, a := range ring {
			b := ring[(k+1)%len(ring)]
			if (a == i && b == j) || (a == j && b == i) {
				return true
			}
		}
	}
	return false
}
