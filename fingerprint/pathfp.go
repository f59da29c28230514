package fingerprint

import (
	chem "github.com/rmera/chemprint"
)

//pathFP enumerates every simple bond path with between MinPath and
//MaxPath bonds, over all atoms. A path is identified by the sequence of
//its atom codes, read in the direction that compares smaller. Unhashed,
//identifiers keep counts; hashed, they are folded into an NBits-wide bit
//vector.
func pathFP(m *chem.Mol, hashed bool, par Params) (Vector, error) {
	var vec Vector
	var add func(id uint32)
	if hashed {
		bits := NewBits(par.NBits)
		add = func(id uint32) { bits.Set(int(id)) }
		vec = bits
	} else {
		counts := NewCounts(0)
		add = func(id uint32) { counts.Add(int(id), 1) }
		vec = counts
	}
	record := func(path []int) {
		codes := make([]uint32, len(path))
		for k, i := range path {
			codes[k] = uint32(atomCode(m, i))
		}
		if reversedIsSmaller32(codes) {
			for a, b := 0, len(codes)-1; a < b; a, b = a+1, b-1 {
				codes[a], codes[b] = codes[b], codes[a]
			}
		}
		add(hash32(codes...))
	}
	var walk func(path []int)
	walk = func(path []int) {
		bonds := len(path) - 1
		if bonds >= par.MinPath && path[0] < path[len(path)-1] {
			record(path)
		}
		if bonds == par.MaxPath {
			return
		}
		last := path[len(path)-1]
		for _, j := range m.Neighbors(last) {
			if contains(path, j) {
				continue
			}
			walk(append(path, j))
		}
	}
	for i := 0; i < m.Len(); i++ {
		walk([]int{i})
	}
	return vec, nil
}

func reversedIsSmaller32(codes []uint32) bool {
	for a, b := 0, len(codes)-1; a < b; a, b = a+1, b-1 {
		if codes[b] != codes[a] {
			return codes[b] < codes[a]
		}
	}
	return false
}
