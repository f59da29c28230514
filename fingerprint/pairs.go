package fingerprint

import (
	chem "github.com/rmera/chemprint"
	"github.com/rmera/chemprint/molgraph"
)

//atomPairFP collects, for every pair of heavy atoms, the two atom codes
//and the topological distance between them. Unhashed, the identifier is
//a deterministic packing of (distance, lower code, higher code); hashed,
//the packing is hashed and folded into NBits.
func atomPairFP(m *chem.Mol, hashed bool, par Params) (Vector, error) {
	g := molgraph.New(m)
	heavy := make([]int, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		if m.IsHeavy(i) {
			heavy = append(heavy, i)
		}
	}
	var vec *Counts
	if hashed {
		vec = NewCounts(par.NBits)
	} else {
		vec = NewCounts(0)
	}
	for a, i := range heavy {
		dist := g.Distances(i)
		for _, j := range heavy[a+1:] {
			if dist[j] <= 0 {
				continue
			}
			lo, hi := atomCode(m, i), atomCode(m, j)
			if lo > hi {
				lo, hi = hi, lo
			}
			id := dist[j]<<22 | lo<<11 | hi
			if hashed {
				id = int(hash32(uint32(id)))
			}
			vec.Add(id, 1)
		}
	}
	return vec, nil
}

//torsionFP collects every linear path of four heavy atoms, identified by
//the codes of its atoms read in the direction that compares smaller.
func torsionFP(m *chem.Mol, hashed bool, par Params) (Vector, error) {
	var vec *Counts
	if hashed {
		vec = NewCounts(par.NBits)
	} else {
		vec = NewCounts(0)
	}
	for _, path := range heavyPaths(m, 4) {
		codes := make([]int, len(path))
		for k, i := range path {
			codes[k] = atomCode(m, i)
		}
		if reversedIsSmaller(codes) {
			for a, b := 0, len(codes)-1; a < b; a, b = a+1, b-1 {
				codes[a], codes[b] = codes[b], codes[a]
			}
		}
		id := 0
		for _, c := range codes {
			id = id<<11 | c
		}
		if hashed {
			id = int(hash32(uint32(id>>22), uint32(id)))
		}
		vec.Add(id, 1)
	}
	return vec, nil
}

//heavyPaths returns every simple path of exactly length heavy atoms,
//each undirected path once.
func heavyPaths(m *chem.Mol, length int) [][]int {
	var paths [][]int
	var walk func(path []int)
	walk = func(path []int) {
		if len(path) == length {
			if path[0] < path[len(path)-1] {
				paths = append(paths, append([]int(nil), path...))
			}
			return
		}
		last := path[len(path)-1]
		for _, j := range m.HeavyNeighbors(last) {
			if contains(path, j) {
				continue
			}
			walk(append(path, j))
		}
	}
	for i := 0; i < m.Len(); i++ {
		if m.IsHeavy(i) {
			walk([]int{i})
		}
	}
	return paths
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func reversedIsSmaller(codes []int) bool {
	for a, b := 0, len(codes)-1; a < b; a, b = a+1, b-1 {
		if codes[b] != codes[a] {
			return codes[b] < codes[a]
		}
	}
	return false
}
