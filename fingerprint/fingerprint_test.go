package fingerprint

import (
	"errors"
	"strings"
	"testing"

	chem "github.com/rmera/chemprint"
	v3 "github.com/rmera/chemprint/v3"
)

//an all-atom ethanol with an idealized geometry, one frame
func ethanol(Te *testing.T) *chem.Group {
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
	g, err := mol.Select(nil)
	if err != nil {
		Te.Fatal(err)
	}
	return g
}

func sumCounts(m map[int]int) int {
	s := 0
	for _, c := range m {
		s += c
	}
	return s
}

func TestValidation(Te *testing.T) {
	g := ethanol(Te)
	if _, err := Get(nil, "Morgan", false, ""); err == nil {
		Te.Error("a nil selection should be rejected")
	}
	_, err := Get(g, "foo", true, "banana")
	var le *chem.LookupError
	if !errors.As(err, &le) || !strings.Contains(err.Error(), "Could not find 'foo' in the available fingerprints") {
		Te.Errorf("family lookup should fail before anything else: %v", err)
	}
	_, err = Get(g, "MACCSKeys", true, "banana")
	var ue *chem.UnsupportedError
	if !errors.As(err, &ue) {
		Te.Fatalf("expected UnsupportedError, got %T: %v", err, err)
	}
	if err.Error() != "MACCSKeys is not available in a hashed version" {
		Te.Errorf("wrong message: %s", err)
	}
	_, err = Get(g, "Morgan", true, "banana")
	if !errors.As(err, &le) || !strings.Contains(err.Error(), "'banana' is not a supported output type") {
		Te.Errorf("wrong output-type error: %v", err)
	}
}

func TestListAvailable(Te *testing.T) {
	names := ListAvailable()
	want := []string{"AtomPair", "MACCSKeys", "Morgan", "RDKit", "TopologicalTorsion"}
	if len(names) != len(want) {
		Te.Fatalf("wrong families: %v", names)
	}
	for i, n := range want {
		if names[i] != n {
			Te.Errorf("wrong families: %v", names)
		}
	}
}

func TestMACCS(Te *testing.T) {
	g := ethanol(Te)
	res, err := Get(g, "MACCSKeys", false, DTypeDict)
	if err != nil {
		Te.Fatal(err)
	}
	want := []int{82, 109, 112, 114, 126, 138, 139, 153, 155, 157, 160, 164}
	if len(res.Map) != len(want) {
		Te.Errorf("wrong key count: %v", res.Map)
	}
	for _, k := range want {
		if res.Map[k] != 1 {
			Te.Errorf("key %d should be set", k)
		}
	}
	arr, err := Get(g, "MACCSKeys", false, DTypeArray)
	if err != nil {
		Te.Fatal(err)
	}
	if len(arr.Array) != 167 {
		Te.Fatalf("wrong width %d", len(arr.Array))
	}
	on := 0
	for _, v := range arr.Array {
		on += v
	}
	if on != len(want) {
		Te.Errorf("wrong number of set bits: %d", on)
	}
}

func TestMorgan(Te *testing.T) {
	g := ethanol(Te)
	res, err := Get(g, "Morgan", false, DTypeDict)
	if err != nil {
		Te.Fatal(err)
	}
	//radius 2: one environment per atom per radius, 9 atoms. At
	//radius 0 the two carbons and the six hydrogens collapse by
	//symmetry of (element, degree); at radius 1 the hydrogens on the
	//two carbons still collapse.
	if len(res.Map) != 14 {
		Te.Errorf("wrong number of environments: %d", len(res.Map))
	}
	if s := sumCounts(res.Map); s != 27 {
		Te.Errorf("environment counts should sum to 27, got %d", s)
	}
	r0, err := Get(g, "Morgan", false, DTypeDict, Params{Radius: 2})
	if err != nil {
		Te.Fatal(err)
	}
	if len(r0.Map) != len(res.Map) {
		Te.Error("explicit default radius should not change the result")
	}
	hashed, err := Get(g, "Morgan", true, DTypeArray)
	if err != nil {
		Te.Fatal(err)
	}
	if len(hashed.Array) != 2048 {
		Te.Errorf("wrong default width %d", len(hashed.Array))
	}
	small, err := Get(g, "Morgan", true, DTypeArray, Params{NBits: 512})
	if err != nil {
		Te.Fatal(err)
	}
	if len(small.Array) != 512 {
		Te.Errorf("wrong width %d", len(small.Array))
	}
}

func TestAtomPair(Te *testing.T) {
	g := ethanol(Te)
	res, err := Get(g, "AtomPair", false, DTypeDict)
	if err != nil {
		Te.Fatal(err)
	}
	//three heavy atoms, three pairs: C-C and C-O at distance one,
	//C-O at distance two
	if len(res.Map) != 3 || sumCounts(res.Map) != 3 {
		Te.Fatalf("wrong pairs: %v", res.Map)
	}
	for id, c := range res.Map {
		if c != 1 {
			Te.Errorf("pair %d counted %d times", id, c)
		}
		if d := id >> 22; d != 1 && d != 2 {
			Te.Errorf("pair %d at impossible distance %d", id, d)
		}
	}
	hashed, err := Get(g, "AtomPair", true, DTypeArray, Params{NBits: 128})
	if err != nil {
		Te.Fatal(err)
	}
	if len(hashed.Array) != 128 {
		Te.Fatalf("wrong width %d", len(hashed.Array))
	}
	s := 0
	for _, v := range hashed.Array {
		s += v
	}
	if s != 3 {
		Te.Errorf("folding should preserve pair counts, got %d", s)
	}
}

func TestTorsion(Te *testing.T) {
	g := ethanol(Te)
	res, err := Get(g, "TopologicalTorsion", false, DTypeDict)
	if err != nil {
		Te.Fatal(err)
	}
	//no path of four heavy atoms in ethanol
	if len(res.Map) != 0 {
		Te.Errorf("expected no torsions, got %v", res.Map)
	}
}

func TestPathFingerprint(Te *testing.T) {
	g := ethanol(Te)
	res, err := Get(g, "RDKit", false, DTypeDict)
	if err != nil {
		Te.Fatal(err)
	}
	//ethanol's bonds form a tree on nine atoms, so there is exactly
	//one simple path per atom pair and every one fits in the default
	//length range
	if s := sumCounts(res.Map); s != 36 {
		Te.Errorf("path counts should sum to 36, got %d", s)
	}
	bondsOnly, err := Get(g, "RDKit", false, DTypeDict, Params{MinPath: 1, MaxPath: 1})
	if err != nil {
		Te.Fatal(err)
	}
	if s := sumCounts(bondsOnly.Map); s != 8 {
		Te.Errorf("single-bond paths should sum to 8, got %d", s)
	}
	hashed, err := Get(g, "RDKit", true, DTypeArray)
	if err != nil {
		Te.Fatal(err)
	}
	if len(hashed.Array) != 2048 {
		Te.Errorf("wrong width %d", len(hashed.Array))
	}
}

func TestRawVector(Te *testing.T) {
	g := ethanol(Te)
	res, err := Get(g, "Morgan", false, "")
	if err != nil {
		Te.Fatal(err)
	}
	if res.Vector == nil || res.Array != nil || res.Map != nil {
		Te.Error("empty dtype should produce the raw vector only")
	}
	if res.Vector.Width() != 0 {
		Te.Error("an unhashed vector should be unbounded")
	}
	ids := res.Vector.Nonzero()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			Te.Fatal("identifiers should come out ascending")
		}
	}
	folded := ToArray(res.Vector, 64)
	if len(folded) != 64 {
		Te.Errorf("wrong folded width %d", len(folded))
	}
	s := 0
	for _, v := range folded {
		s += v
	}
	if s != 27 {
		Te.Errorf("folding should preserve counts, got %d", s)
	}
}
