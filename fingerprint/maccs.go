package fingerprint

import (
	chem "github.com/rmera/chemprint"
	"github.com/rmera/chemprint/molgraph"
)

//The MACCS implementation covers the subset of the 166 public keys that
//can be evaluated from element identities and connectivity alone. Keys
//needing bond orders, charges or aromaticity are left unset. Key numbers
//follow the public numbering, so bit 82 here is key 82 there.

type maccsPred func(m *chem.Mol, g *molgraph.Graph) bool

func elementPresent(sym string) maccsPred {
	return func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			if m.Atom(i).Symbol == sym {
				return true
			}
		}
		return false
	}
}

func ringOfSize(size int) maccsPred {
	return func(m *chem.Mol, g *molgraph.Graph) bool {
		for _, ring := range g.Rings() {
			if len(ring) == size {
				return true
			}
		}
		return false
	}
}

func isHetero(m *chem.Mol, i int) bool {
	s := m.Atom(i).Symbol
	return s != "C" && s != "H"
}

func isCH2(m *chem.Mol, i int) bool {
	return m.Atom(i).Symbol == "C" && m.HCount(i) == 2 && len(m.HeavyNeighbors(i)) == 2
}

func isCH3(m *chem.Mol, i int) bool {
	return m.Atom(i).Symbol == "C" && m.HCount(i) == 3
}

var maccsKeys = map[int]maccsPred{
	29: elementPresent("P"),
	42: elementPresent("F"),
	//methylene bridging two heavy atoms
	82: func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			if isCH2(m, i) {
				return true
			}
		}
		return false
	},
	88:  elementPresent("S"),
	96:  ringOfSize(5),
	103: elementPresent("Cl"),
	//carbon with two or more hydrogens, bonded to an oxygen and to
	//another heavy atom
	109: func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			if m.Atom(i).Symbol != "C" || m.HCount(i) < 2 {
				continue
			}
			oxy, other := false, false
			for _, j := range m.HeavyNeighbors(i) {
				if m.Atom(j).Symbol == "O" {
					oxy = true
				} else {
					other = true
				}
			}
			if oxy && other {
				return true
			}
		}
		return false
	},
	//two or more bonds between heavy atoms
	112: func(m *chem.Mol, g *molgraph.Graph) bool {
		n := 0
		for _, b := range m.Bonds() {
			if b.At1.Symbol != "H" && b.At2.Symbol != "H" {
				n++
			}
		}
		return n >= 2
	},
	//methyl bonded to a methylene
	114: func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			if !isCH3(m, i) {
				continue
			}
			for _, j := range m.HeavyNeighbors(i) {
				if isCH2(m, j) {
					return true
				}
			}
		}
		return false
	},
	//nitrogen in a ring
	121: func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			if m.Atom(i).Symbol == "N" && g.InRing(i) {
				return true
			}
		}
		return false
	},
	//more than one ring
	125: func(m *chem.Mol, g *molgraph.Graph) bool {
		return g.RingCount() > 1
	},
	//chain of at least three heavy atoms
	126: func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			if m.IsHeavy(i) && len(m.HeavyNeighbors(i)) >= 2 {
				return true
			}
		}
		return false
	},
	//halogen present
	134: func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			switch m.Atom(i).Symbol {
			case "F", "Cl", "Br", "I":
				return true
			}
		}
		return false
	},
	//heteroatom bonded to a methylene
	138: func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			if !isHetero(m, i) {
				continue
			}
			for _, j := range m.HeavyNeighbors(i) {
				if isCH2(m, j) {
					return true
				}
			}
		}
		return false
	},
	//hydroxyl
	139: func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			if m.Atom(i).Symbol == "O" && m.HCount(i) >= 1 {
				return true
			}
		}
		return false
	},
	//heteroatom bonded to a carbon carrying hydrogens
	153: func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			if !isHetero(m, i) {
				continue
			}
			for _, j := range m.HeavyNeighbors(i) {
				if m.Atom(j).Symbol == "C" && m.HCount(j) > 0 {
					return true
				}
			}
		}
		return false
	},
	//methylene whose two heavy bonds are both acyclic
	155: func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			if !isCH2(m, i) {
				continue
			}
			acyclic := true
			for _, j := range m.HeavyNeighbors(i) {
				if g.BondInRing(i, j) {
					acyclic = false
				}
			}
			if acyclic {
				return true
			}
		}
		return false
	},
	//carbon-oxygen bond
	157: func(m *chem.Mol, g *molgraph.Graph) bool {
		for _, b := range m.Bonds() {
			s1, s2 := b.At1.Symbol, b.At2.Symbol
			if (s1 == "C" && s2 == "O") || (s1 == "O" && s2 == "C") {
				return true
			}
		}
		return false
	},
	//methyl present
	160: func(m *chem.Mol, g *molgraph.Graph) bool {
		for i := 0; i < m.Len(); i++ {
			if isCH3(m, i) {
				return true
			}
		}
		return false
	},
	161: elementPresent("N"),
	163: ringOfSize(6),
	164: elementPresent("O"),
	//any ring
	165: func(m *chem.Mol, g *molgraph.Graph) bool {
		return g.RingCount() > 0
	},
	//more than one connected fragment
	166: func(m *chem.Mol, g *molgraph.Graph) bool {
		return g.NumComponents() > 1
	},
}

func maccsFP(m *chem.Mol, hashed bool, par Params) (Vector, error) {
	g := molgraph.New(m)
	bits := NewBits(maccsWidth)
	for key, pred := range maccsKeys {
		if pred(m, g) {
			bits.Set(key)
		}
	}
	return bits, nil
}
