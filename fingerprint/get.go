package fingerprint

import (
	chem "github.com/rmera/chemprint"
)

// Output-type selectors for Get. The empty string keeps the raw vector.
const (
	DTypeArray = "array"
	DTypeDict  = "dict"
)

// Result is the outcome of a fingerprint calculation. Vector is always
// set; Array or Map is filled when the corresponding output type was
// requested.
type Result struct {
	Family string
	Hashed bool
	Vector Vector
	Array  []int
	Map    map[int]int
}

// Get computes the named fingerprint for the first frame of sel. The
// dtype selector picks the normalized output: "array" for a dense count
// slice, "dict" for an identifier-to-count mapping, "" for the raw
// vector only. All arguments are validated before any computation, in
// this order: the selection, the family name, the hashed variant's
// availability, and the output type.
func Get(sel chem.AtomGroup, name string, hashed bool, dtype string, par ...Params) (*Result, error) {
	if err := chem.CheckGroup(sel); err != nil {
		return nil, err
	}
	fam, ok := catalog[name]
	if !ok {
		return nil, chem.NewLookupError(name, "the available fingerprints")
	}
	if hashed && !fam.hashable {
		return nil, &chem.UnsupportedError{Name: name, Mode: "hashed"}
	}
	switch dtype {
	case "", DTypeArray, DTypeDict:
	default:
		return nil, chem.NewOutputTypeError(dtype)
	}
	p := Params{}
	if len(par) > 0 {
		p = par[0]
	}
	p = p.withDefaults()
	m, err := chem.MolFromGroup(sel)
	if err != nil {
		return nil, err
	}
	vec, err := fam.compute(m, hashed, p)
	if err != nil {
		return nil, err
	}
	res := &Result{Family: name, Hashed: hashed, Vector: vec}
	switch dtype {
	case DTypeArray:
		res.Array = ToArray(vec, p.NBits)
	case DTypeDict:
		res.Map = ToMap(vec)
	}
	return res, nil
}
