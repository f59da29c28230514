package descriptors

import (
	"errors"
	"math"
	"strings"
	"testing"

	chem "github.com/rmera/chemprint"
	v3 "github.com/rmera/chemprint/v3"
)

//an all-atom ethanol with an idealized geometry, one frame
func ethanol(Te *testing.T) *chem.Molecule {
	symbols := []string{"C", "C", "O", "H", "H", "H", "H", "H", "H"}
	ats := make([]*chem.Atom, len(symbols))
	for i, s := range symbols {
		ats[i] = &chem.Atom{ID: i + 1, Symbol: s}
	}
	coords, err := v3.NewMatrix([]float64{
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
	if err != nil {
		Te.Fatal(err)
	}
	top, err := chem.NewTopology(ats, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := chem.NewMolecule(top, []*v3.Matrix{coords})
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func group(Te *testing.T, mol *chem.Molecule) *chem.Group {
	g, err := mol.Select(nil)
	if err != nil {
		Te.Fatal(err)
	}
	return g
}

func TestNotAtomGroup(Te *testing.T) {
	mol := ethanol(Te)
	_, err := New(mol, "MolWt")
	if err == nil {
		Te.Fatal("a whole Molecule should be rejected")
	}
	var ite *chem.InputTypeError
	if !errors.As(err, &ite) {
		Te.Errorf("expected InputTypeError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "must be an AtomGroup") {
		Te.Errorf("wrong message: %s", err)
	}
}

func TestUnknownDescriptor(Te *testing.T) {
	g := group(Te, ethanol(Te))
	_, err := New(g, "foo")
	if err == nil {
		Te.Fatal("unknown descriptor should fail at construction")
	}
	var le *chem.LookupError
	if !errors.As(err, &le) {
		Te.Fatalf("expected LookupError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "Could not find 'foo'") {
		Te.Errorf("message should name the descriptor: %s", err)
	}
}

func TestNamedDescriptors(Te *testing.T) {
	g := group(Te, ethanol(Te))
	//MolFormula is cataloged as "CalcMolFormula" but the short
	//name must resolve too.
	calc, err := New(g, "MolWt", "MolFormula")
	if err != nil {
		Te.Fatal(err)
	}
	table, err := calc.Run()
	if err != nil {
		Te.Fatal(err)
	}
	if fr, de := table.Dims(); fr != 1 || de != 2 {
		Te.Fatalf("wrong table shape (%d, %d)", fr, de)
	}
	w, ok := table.At(0, 0).Float64()
	if !ok || math.Abs(w-46.069) > 1e-3 {
		Te.Errorf("wrong MolWt %v", table.At(0, 0))
	}
	formula, ok := table.At(0, 1).Text()
	if !ok || formula != "C2H6O" {
		Te.Errorf("wrong formula %v", table.At(0, 1))
	}
}

func TestCounts(Te *testing.T) {
	g := group(Te, ethanol(Te))
	calc, err := New(g, "NumAtoms", "HeavyAtomCount", "NumBonds", "NumHDonors",
		"NumHAcceptors", "NumRotatableBonds", "RingCount", "FractionCSP3",
		"NumHeteroatoms")
	if err != nil {
		Te.Fatal(err)
	}
	table, err := calc.Run()
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{9, 3, 8, 1, 1, 0, 0, 1, 1}
	for j, w := range want {
		got, ok := table.At(0, j).Float64()
		if !ok || math.Abs(got-w) > 1e-12 {
			Te.Errorf("%s: want %v, got %v", table.Names()[j], w, table.At(0, j))
		}
	}
}

func TestFuncBypassRoundTrip(Te *testing.T) {
	g := group(Te, ethanol(Te))
	named, err := New(g, "MolWt")
	if err != nil {
		Te.Fatal(err)
	}
	direct, err := New(g)
	if err != nil {
		Te.Fatal(err)
	}
	//the same catalog function, passed directly
	direct.AddFunc("mw", ListAvailableFlat()["MolWt"])
	direct.AddFunc("natoms", func(m *chem.Mol) (Value, error) {
		return Float(float64(m.Len())), nil
	})
	t1, err := named.Run()
	if err != nil {
		Te.Fatal(err)
	}
	t2, err := direct.Run()
	if err != nil {
		Te.Fatal(err)
	}
	w1, _ := t1.At(0, 0).Float64()
	w2, _ := t2.At(0, 0).Float64()
	if w1 != w2 {
		Te.Errorf("catalog name and direct function disagree: %v vs %v", w1, w2)
	}
	if n, _ := t2.At(0, 1).Float64(); n != 9 {
		Te.Errorf("wrong atom count from direct function: %v", n)
	}
}

func TestMultiFrame(Te *testing.T) {
	mol := ethanol(Te)
	//second frame: same conformer, translated; third: expanded
	shift, _ := v3.NewMatrix([]float64{1, 0, 0})
	f2 := v3.Zeros(mol.Len())
	f2.AddVec(mol.Coords[0], shift)
	f3 := v3.Zeros(mol.Len())
	f3.Scale(1.5, mol.Coords[0])
	if err := mol.AddFrame(f2); err != nil {
		Te.Fatal(err)
	}
	if err := mol.AddFrame(f3); err != nil {
		Te.Fatal(err)
	}
	g := group(Te, mol)
	calc, err := New(g, "RadiusOfGyration")
	if err != nil {
		Te.Fatal(err)
	}
	table, err := calc.Run()
	if err != nil {
		Te.Fatal(err)
	}
	if fr, de := table.Dims(); fr != 3 || de != 1 {
		Te.Fatalf("wrong table shape (%d, %d)", fr, de)
	}
	r1, _ := table.At(0, 0).Float64()
	r2, _ := table.At(1, 0).Float64()
	r3, _ := table.At(2, 0).Float64()
	if math.Abs(r1-r2) > 1e-9 {
		Te.Errorf("translation should not change the radius of gyration: %v vs %v", r1, r2)
	}
	if math.Abs(r3-1.5*r1) > 1e-9 {
		Te.Errorf("expansion by 1.5 should scale the radius of gyration: %v vs %v", r3, r1)
	}
}

func TestListAvailable(Te *testing.T) {
	av := ListAvailable()
	names, ok := av[NSDescriptors]
	if !ok {
		Te.Fatalf("missing namespace %s", NSDescriptors)
	}
	found := false
	for _, n := range names {
		if n == "MolWt" {
			found = true
		}
	}
	if !found {
		Te.Error("MolWt missing from the descriptors namespace")
	}
	flat := ListAvailableFlat()
	if _, ok := flat["CalcMolFormula"]; !ok {
		Te.Error("flat catalog should keep the Calc-prefixed spelling")
	}
}

func TestDenseAndStats(Te *testing.T) {
	mol := ethanol(Te)
	shift, _ := v3.NewMatrix([]float64{0, 1, 0})
	f2 := v3.Zeros(mol.Len())
	f2.AddVec(mol.Coords[0], shift)
	f3 := v3.Zeros(mol.Len())
	f3.AddVec(mol.Coords[0], shift)
	mol.AddFrame(f2)
	mol.AddFrame(f3)
	g := group(Te, mol)
	calc, err := New(g, "MolWt", "MolFormula")
	if err != nil {
		Te.Fatal(err)
	}
	table, err := calc.Run()
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := table.Dense(); err == nil {
		Te.Error("Dense should refuse a textual column")
	} else if !strings.Contains(err.Error(), "MolFormula") {
		Te.Errorf("Dense error should name the column: %v", err)
	}
	mean, stdev, err := table.ColumnStats(0)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(mean-46.069) > 1e-3 || stdev != 0 {
		Te.Errorf("wrong stats: mean %v stdev %v", mean, stdev)
	}
	col, err := table.Column("MolWt")
	if err != nil || len(col) != 3 {
		Te.Errorf("wrong column: %v %v", col, err)
	}
}
