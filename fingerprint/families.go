package fingerprint

import (
	"encoding/binary"
	"hash/fnv"
	"sort"

	chem "github.com/rmera/chemprint"
)

// Params holds the tunable parameters of the fingerprint families. The
// zero value of each field means "use the default".
type Params struct {
	NBits   int // width of hashed fingerprints, and fold width for dense output of unhashed ones (2048)
	Radius  int // circular environment radius (2)
	MinPath int // shortest bond path enumerated (1)
	MaxPath int // longest bond path enumerated (7)
}

const (
	defaultNBits   = 2048
	defaultRadius  = 2
	defaultMinPath = 1
	defaultMaxPath = 7
	maccsWidth     = 167
)

func (P Params) withDefaults() Params {
	if P.NBits <= 0 {
		P.NBits = defaultNBits
	}
	if P.Radius <= 0 {
		P.Radius = defaultRadius
	}
	if P.MinPath <= 0 {
		P.MinPath = defaultMinPath
	}
	if P.MaxPath <= 0 {
		P.MaxPath = defaultMaxPath
	}
	return P
}

type computeFunc func(m *chem.Mol, hashed bool, par Params) (Vector, error)

type family struct {
	compute  computeFunc
	hashable bool
}

// The fingerprint catalog. MACCSKeys has a fixed key set, so no hashed
// variant exists for it.
var catalog = map[string]*family{
	"MACCSKeys":          {compute: maccsFP, hashable: false},
	"Morgan":             {compute: morganFP, hashable: true},
	"AtomPair":           {compute: atomPairFP, hashable: true},
	"TopologicalTorsion": {compute: torsionFP, hashable: true},
	"RDKit":              {compute: pathFP, hashable: true},
}

// ListAvailable returns the fingerprint family names, sorted.
func ListAvailable() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// hash32 combines a sequence of integer features into a 32-bit
// identifier (FNV-1a).
func hash32(vals ...uint32) uint32 {
	h := fnv.New32a()
	var b [4]byte
	for _, v := range vals {
		binary.BigEndian.PutUint32(b[:], v)
		h.Write(b[:])
	}
	return h.Sum32()
}

// atomCode packs the element and heavy-atom degree of the ith atom into
// a small deterministic code, used by the pair and path families.
func atomCode(m *chem.Mol, i int) int {
	return chem.AtomicNumber(m.Atom(i).Symbol)*16 + len(m.HeavyNeighbors(i))
}
