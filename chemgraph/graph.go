package chemgraph

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"

	lewis "github.com/rmera/golewis"
)

//Atom is a graph node wrapping an atom of a molecule. Its node ID is the atom ID.
type Atom struct {
	*lewis.Atom
}

func (A *Atom) ID() int64 {
	return int64(A.Atom.ID)
}

//AtID returns the ID of the wrapped atom as an int.
func (A *Atom) AtID() int {
	return A.Atom.ID
}

//Bond is an undirected, weighted edge. The weight is the bond order.
type Bond struct {
	At1, At2 *Atom
	Order    int
}

func (B *Bond) Weight() float64 {
	return float64(B.Order)
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

//ReversedEdge returns a new bond with the ends swapped. The receiver is not
//modified, as the graph keeps a single value for both directions.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{At1: B.At2, At2: B.At1, Order: B.Order}
}

//Topology is a gonum weighted undirected graph of a molecule's bonds.
type Topology struct {
	*simple.WeightedUndirectedGraph
	mol   *lewis.Molecule
	atoms []*Atom
}

//New builds the graph for mol. Every atom is a node, including the ones
//left without bonds.
func New(mol *lewis.Molecule) *Topology {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	atoms := make([]*Atom, mol.Len())
	for i := range atoms {
		atoms[i] = &Atom{Atom: mol.Atom(i)}
		g.AddNode(atoms[i])
	}
	for _, at := range atoms {
		for _, b := range at.Bonds {
			if b.Partner < at.AtID() {
				continue //already added from the other side
			}
			g.SetWeightedEdge(&Bond{At1: at, At2: atoms[b.Partner], Order: b.Order})
		}
	}
	return &Topology{WeightedUndirectedGraph: g, mol: mol, atoms: atoms}
}

//Atom returns the node for the atom with the given ID.
func (T *Topology) Atom(id int) *Atom {
	return T.atoms[id]
}

//Neighbors returns the sorted IDs of the atoms bonded to id.
func (T *Topology) Neighbors(id int) []int {
	ret := idsOf(graph.NodesOf(T.From(int64(id))))
	sort.Ints(ret)
	return ret
}

//Fragments returns the connected components of the molecule, as sorted atom
//IDs. Fragments are sorted by their lowest ID. A molecule where every atom is
//reachable from the central one has a single fragment.
func (T *Topology) Fragments() [][]int {
	comps := topo.ConnectedComponents(T.WeightedUndirectedGraph)
	ret := make([][]int, 0, len(comps))
	for _, c := range comps {
		ids := idsOf(c)
		sort.Ints(ids)
		ret = append(ret, ids)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

//Distances returns, for each atom, the number of bonds in the shortest path
//from the central atom, or -1 if the atom is not connected to it.
func (T *Topology) Distances() []int {
	dist := make([]int, len(T.atoms))
	for i := range dist {
		dist[i] = -1
	}
	var bf traverse.BreadthFirst
	bf.Walk(T.WeightedUndirectedGraph, T.atoms[T.mol.CentralIndex], func(n graph.Node, d int) bool {
		dist[n.ID()] = d
		return false
	})
	return dist
}

//UniqueBonds returns each bond once, with At1 the lower ID, sorted by
//(At1, At2).
func (T *Topology) UniqueBonds() []*Bond {
	edges := graph.WeightedEdgesOf(T.WeightedEdges())
	ret := make([]*Bond, 0, len(edges))
	for _, e := range edges {
		b := e.(*Bond)
		if b.At1.AtID() > b.At2.AtID() {
			b = b.ReversedEdge().(*Bond)
		}
		ret = append(ret, b)
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].At1.AtID() != ret[j].At1.AtID() {
			return ret[i].At1.AtID() < ret[j].At1.AtID()
		}
		return ret[i].At2.AtID() < ret[j].At2.AtID()
	})
	return ret
}

func idsOf(nodes []graph.Node) []int {
	ret := make([]int, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, int(n.ID()))
	}
	return ret
}
