package molgraph

import (
	"testing"

	chem "github.com/rmera/chemprint"
	v3 "github.com/rmera/chemprint/v3"
)

func molFromRaw(Te *testing.T, symbols []string, coords []float64) *chem.Mol {
	ats := make([]*chem.Atom, len(symbols))
	for i, s := range symbols {
		ats[i] = &chem.Atom{ID: i + 1, Symbol: s}
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		Te.Fatal(err)
	}
	top, err := chem.NewTopology(ats, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := chem.NewMolecule(top, []*v3.Matrix{c})
	if err != nil {
		Te.Fatal(err)
	}
	g, err := mol.Select(nil)
	if err != nil {
		Te.Fatal(err)
	}
	m, err := chem.MolFromGroup(g)
	if err != nil {
		Te.Fatal(err)
	}
	return m
}

func ethanolMol(Te *testing.T) *chem.Mol {
	return molFromRaw(Te,
		[]string{"C", "C", "O", "H", "H", "H", "H", "H", "H"},
		[]float64{
			0.00, 0.00, 0.00,
			1.54, 0.00, 0.00,
			2.02, 1.34, 0.00,
			-0.36, 1.03, 0.00,
			-0.36, -0.51, 0.89,
			-0.36, -0.51, -0.89,
			1.90, -0.51, 0.89,
			1.90, -0.51, -0.89,
			2.97, 1.35, 0.00,
		})
}

func TestDistances(Te *testing.T) {
	g := New(ethanolMol(Te))
	d := g.Distances(2) //from the oxygen
	if d[1] != 1 || d[0] != 2 || d[8] != 1 {
		Te.Errorf("wrong distances from oxygen: %v", d)
	}
	if d[3] != 3 { //hydrogen on the far carbon
		Te.Errorf("wrong distance to methyl hydrogen: %d", d[3])
	}
}

func TestComponentsAndRings(Te *testing.T) {
	g := New(ethanolMol(Te))
	if n := g.NumComponents(); n != 1 {
		Te.Errorf("ethanol should be a single fragment, got %d", n)
	}
	if n := g.RingCount(); n != 0 {
		Te.Errorf("ethanol should have no rings, got %d", n)
	}

	//a C3 triangle: every atom and bond in one 3-ring
	tri := molFromRaw(Te,
		[]string{"C", "C", "C"},
		[]float64{
			0.00, 0.00, 0.00,
			1.50, 0.00, 0.00,
			0.75, 1.30, 0.00,
		})
	gt := New(tri)
	if n := gt.RingCount(); n != 1 {
		Te.Errorf("triangle should have 1 ring, got %d", n)
	}
	rings := gt.Rings()
	if len(rings) != 1 || len(rings[0]) != 3 {
		Te.Errorf("wrong rings: %v", rings)
	}
	for i := 0; i < 3; i++ {
		if !gt.InRing(i) {
			Te.Errorf("atom %d should be in a ring", i)
		}
	}
	if !gt.BondInRing(0, 1) || !gt.BondInRing(1, 2) || !gt.BondInRing(2, 0) {
		Te.Error("all triangle bonds should be in the ring")
	}
	if g.BondInRing(0, 1) {
		Te.Error("ethanol C-C bond should not be in a ring")
	}
}
