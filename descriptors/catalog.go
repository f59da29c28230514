package descriptors

import (
	"sort"

	chem "github.com/rmera/chemprint"
)

//The capability catalog is declared statically: two namespaces mapping
//descriptor names to functions. The moldescriptors namespace uses the
//conventional "Calc" prefix; Lookup tolerates the missing prefix, so
//"MolFormula" finds "CalcMolFormula".

// Namespace names, as reported by ListAvailable.
const (
	NSDescriptors    = "chemprint/descriptors"
	NSMolDescriptors = "chemprint/moldescriptors"
)

var descCatalog = map[string]Func{
	"MolWt":             molWt,
	"ExactMolWt":        exactMolWt,
	"NumAtoms":          numAtoms,
	"HeavyAtomCount":    heavyAtomCount,
	"NumBonds":          numBonds,
	"NumHDonors":        numHDonors,
	"NumHAcceptors":     numHAcceptors,
	"NumRotatableBonds": numRotatableBonds,
	"RingCount":         ringCount,
	"FractionCSP3":      fractionCSP3,
}

var molDescCatalog = map[string]Func{
	"CalcMolFormula":       calcMolFormula,
	"CalcNumHeteroatoms":   calcNumHeteroatoms,
	"CalcNumRings":         ringCount,
	"CalcRadiusOfGyration": calcRadiusOfGyration,
	"CalcAsphericity":      calcAsphericity,
	"CalcEccentricity":     calcEccentricity,
}

// Lookup resolves a descriptor name against the catalog: first an exact
// match in either namespace, then the "Calc"-prefixed form. Matching is
// case-sensitive and not fuzzy. An unresolvable name gets a LookupError
// naming it.
func Lookup(name string) (Func, error) {
	if f, ok := descCatalog[name]; ok {
		return f, nil
	}
	if f, ok := molDescCatalog[name]; ok {
		return f, nil
	}
	if f, ok := molDescCatalog["Calc"+name]; ok {
		return f, nil
	}
	return nil, chem.NewLookupError(name, "the available descriptors")
}

// ListAvailable returns the full catalog as a namespace to sorted-names
// mapping, for discovery.
func ListAvailable() map[string][]string {
	av := make(map[string][]string, 2)
	for ns, cat := range map[string]map[string]Func{
		NSDescriptors:    descCatalog,
		NSMolDescriptors: molDescCatalog,
	} {
		names := make([]string, 0, len(cat))
		for n := range cat {
			names = append(names, n)
		}
		sort.Strings(names)
		av[ns] = names
	}
	return av
}

// ListAvailableFlat returns the catalog flattened to a name-to-function
// mapping, keeping the namespaces' own spelling of each name.
func ListAvailableFlat() map[string]Func {
	flat := make(map[string]Func, len(descCatalog)+len(molDescCatalog))
	for n, f := range descCatalog {
		flat[n] = f
	}
	for n, f := range molDescCatalog {
		flat[n] = f
	}
	return flat
}
