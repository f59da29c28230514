package fingerprint

import (
	"sort"

	chem "github.com/rmera/chemprint"
)

//morganFP computes circular environment identifiers. Every atom starts
//from an invariant built on its element and degree; each round hashes an
//atom's identifier together with the sorted identifiers of its
//neighbors, widening the environment by one bond. All identifiers from
//radius zero up to the requested radius are collected, with counts.
func morganFP(m *chem.Mol, hashed bool, par Params) (Vector, error) {
	n := m.Len()
	cur := make([]uint32, n)
	for i := 0; i < n; i++ {
		z := chem.AtomicNumber(m.Atom(i).Symbol)
		cur[i] = hash32(0, uint32(z), uint32(len(m.Neighbors(i))))
	}
	var vec *Counts
	if hashed {
		vec = NewCounts(par.NBits)
	} else {
		vec = NewCounts(0)
	}
	for _, id := range cur {
		vec.Add(int(id), 1)
	}
	for r := 1; r <= par.Radius; r++ {
		next := make([]uint32, n)
		for i := 0; i < n; i++ {
			neigh := m.Neighbors(i)
			nids := make([]uint32, len(neigh))
			for k, j := range neigh {
				nids[k] = cur[j]
			}
			sort.Slice(nids, func(a, b int) bool { return nids[a] < nids[b] })
			feats := append([]uint32{uint32(r), cur[i]}, nids...)
			next[i] = hash32(feats...)
		}
		for _, id := range next {
			vec.Add(int(id), 1)
		}
		cur = next
	}
	return vec, nil
}
