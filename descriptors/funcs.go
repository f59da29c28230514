package descriptors

import (
	"fmt"
	"math"
	"sort"
	"strings"

	chem "github.com/rmera/chemprint"
	"github.com/rmera/chemprint/molgraph"
	"gonum.org/v1/gonum/mat"
)

// Func computes one descriptor from a bonded, single-conformer molecule.
type Func func(m *chem.Mol) (Value, error)

func molWt(m *chem.Mol) (Value, error) {
	masses, err := m.Masses()
	if err != nil {
		return Value{}, err
	}
	var w float64
	for _, mass := range masses {
		w += mass
	}
	return Float(w), nil
}

func exactMolWt(m *chem.Mol) (Value, error) {
	var w float64
	for i := 0; i < m.Len(); i++ {
		iso, ok := chem.IsoMassOf(m.Atom(i).Symbol)
		if !ok {
			return Value{}, fmt.Errorf("no isotopic mass known for element '%s' (atom %d)", m.Atom(i).Symbol, i)
		}
		w += iso
	}
	return Float(w), nil
}

func numAtoms(m *chem.Mol) (Value, error) {
	return Float(float64(m.Len())), nil
}

func heavyAtomCount(m *chem.Mol) (Value, error) {
	n := 0
	for i := 0; i < m.Len(); i++ {
		if m.IsHeavy(i) {
			n++
		}
	}
	return Float(float64(n)), nil
}

func numBonds(m *chem.Mol) (Value, error) {
	return Float(float64(len(m.Bonds()))), nil
}

//N or O carrying at least one hydrogen
func numHDonors(m *chem.Mol) (Value, error) {
	n := 0
	for i := 0; i < m.Len(); i++ {
		s := m.Atom(i).Symbol
		if (s == "N" || s == "O") && m.HCount(i) > 0 {
			n++
		}
	}
	return Float(float64(n)), nil
}

func numHAcceptors(m *chem.Mol) (Value, error) {
	n := 0
	for i := 0; i < m.Len(); i++ {
		s := m.Atom(i).Symbol
		if s == "N" || s == "O" {
			n++
		}
	}
	return Float(float64(n)), nil
}

//acyclic bonds between two non-terminal heavy atoms
func numRotatableBonds(m *chem.Mol) (Value, error) {
	g := molgraph.New(m)
	n := 0
	for _, b := range m.Bonds() {
		i, j := b.At1.Index(), b.At2.Index()
		if !m.IsHeavy(i) || !m.IsHeavy(j) {
			continue
		}
		if len(m.HeavyNeighbors(i)) < 2 || len(m.HeavyNeighbors(j)) < 2 {
			continue
		}
		if g.BondInRing(i, j) {
			continue
		}
		n++
	}
	return Float(float64(n)), nil
}

func ringCount(m *chem.Mol) (Value, error) {
	return Float(float64(molgraph.New(m).RingCount())), nil
}

//fraction of carbons with four single bonds
func fractionCSP3(m *chem.Mol) (Value, error) {
	carbons, sp3 := 0, 0
	for i := 0; i < m.Len(); i++ {
		if m.Atom(i).Symbol != "C" {
			continue
		}
		carbons++
		if len(m.Neighbors(i)) == 4 {
			sp3++
		}
	}
	if carbons == 0 {
		return Float(0), nil
	}
	return Float(float64(sp3) / float64(carbons)), nil
}

//calcMolFormula writes the formula in Hill order: C first, H second, the
//rest alphabetically. Without carbon, everything goes alphabetically.
func calcMolFormula(m *chem.Mol) (Value, error) {
	counts := make(map[string]int)
	for i := 0; i < m.Len(); i++ {
		counts[m.Atom(i).Symbol]++
	}
	var b strings.Builder
	write := func(sym string) {
		if n := counts[sym]; n > 0 {
			b.WriteString(sym)
			if n > 1 {
				fmt.Fprintf(&b, "%d", n)
			}
			delete(counts, sym)
		}
	}
	rest := func() []string {
		syms := make([]string, 0, len(counts))
		for s := range counts {
			syms = append(syms, s)
		}
		sort.Strings(syms)
		return syms
	}
	if counts["C"] > 0 {
		write("C")
		write("H")
	}
	for _, s := range rest() {
		write(s)
	}
	return Text(b.String()), nil
}

func calcNumHeteroatoms(m *chem.Mol) (Value, error) {
	n := 0
	for i := 0; i < m.Len(); i++ {
		s := m.Atom(i).Symbol
		if s != "C" && s != "H" {
			n++
		}
	}
	return Float(float64(n)), nil
}

//gyrationEigen returns the eigenvalues of the mass-weighted gyration
//tensor, ascending.
func gyrationEigen(m *chem.Mol) ([3]float64, error) {
	var ev [3]float64
	masses, err := m.Masses()
	if err != nil {
		return ev, err
	}
	com, err := m.CenterOfMass()
	if err != nil {
		return ev, err
	}
	xyz := m.Coords()
	var total float64
	t := mat.NewSymDense(3, nil)
	for i, mass := range masses {
		d := [3]float64{
			xyz.At(i, 0) - com.At(0, 0),
			xyz.At(i, 1) - com.At(0, 1),
			xyz.At(i, 2) - com.At(0, 2),
		}
		for a := 0; a < 3; a++ {
			for b := a; b < 3; b++ {
				t.SetSym(a, b, t.At(a, b)+mass*d[a]*d[b])
			}
		}
		total += mass
	}
	for a := 0; a < 3; a++ {
		for b := a; b < 3; b++ {
			t.SetSym(a, b, t.At(a, b)/total)
		}
	}
	var eig mat.EigenSym
	if !eig.Factorize(t, false) {
		return ev, fmt.Errorf("gyration tensor eigendecomposition failed")
	}
	vals := eig.Values(nil)
	copy(ev[:], vals)
	return ev, nil
}

func calcRadiusOfGyration(m *chem.Mol) (Value, error) {
	ev, err := gyrationEigen(m)
	if err != nil {
		return Value{}, err
	}
	return Float(math.Sqrt(ev[0] + ev[1] + ev[2])), nil
}

func calcAsphericity(m *chem.Mol) (Value, error) {
	ev, err := gyrationEigen(m)
	if err != nil {
		return Value{}, err
	}
	num := 0.5 * (math.Pow(ev[0]-ev[1], 2) + math.Pow(ev[1]-ev[2], 2) + math.Pow(ev[2]-ev[0], 2))
	den := math.Pow(ev[0], 2) + math.Pow(ev[1], 2) + math.Pow(ev[2], 2)
	if den == 0 {
		return Float(0), nil
	}
	return Float(num / den), nil
}

func calcEccentricity(m *chem.Mol) (Value, error) {
	ev, err := gyrationEigen(m)
	if err != nil {
		return Value{}, err
	}
	max, min := ev[2], ev[0]
	if max == 0 {
		return Float(0), nil
	}
	return Float(math.Sqrt(max*max-min*min) / max), nil
}
