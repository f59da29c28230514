/*
 * atomicdata.go, part of chemprint.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

package chemprint

//Element data for the common "bio-elements" plus halogens. Analyses
//on atoms outside these tables fail with an explicit error rather than
//falling back to guesses.

//Standard atomic weights (CIAAW 2021, abridged).
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"O":  15.999,
	"N":  14.007,
	"P":  30.974,
	"S":  32.06,
	"Se": 78.971,
	"K":  39.098,
	"Ca": 40.078,
	"Mg": 24.305,
	"Cl": 35.45,
	"Na": 22.990,
	"Cu": 63.546,
	"Zn": 65.38,
	"Co": 58.933,
	"Fe": 55.845,
	"Mn": 54.938,
	"Cr": 51.996,
	"Si": 28.085,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.904,
}

//Masses of the most abundant isotope, for monoisotopic weights.
var symbolIsoMass = map[string]float64{
	"H":  1.00783,
	"C":  12.0000,
	"O":  15.9949,
	"N":  14.0031,
	"P":  30.9738,
	"S":  31.9721,
	"Se": 79.9165,
	"K":  38.9637,
	"Ca": 39.9626,
	"Mg": 23.9850,
	"Cl": 34.9689,
	"Na": 22.9898,
	"Cu": 62.9296,
	"Zn": 63.9291,
	"Co": 58.9332,
	"Fe": 55.9349,
	"Mn": 54.9380,
	"Cr": 51.9405,
	"Si": 27.9769,
	"Be": 9.0122,
	"F":  18.9984,
	"Br": 78.9183,
	"I":  126.9045,
}

//Atomic numbers, used for element identity and formula ordering.
var symbolNumber = map[string]int{
	"H":  1,
	"Be": 4,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Na": 11,
	"Mg": 12,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"K":  19,
	"Ca": 20,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Cu": 29,
	"Zn": 30,
	"Se": 34,
	"Br": 35,
	"I":  53,
}

//Covalent radii, values from Cordero et al., 2008 (DOI:10.1039/B801115J).
//The H radius is enlarged on purpose: H can only have one bond, so any
//extra bonds the longer radius produces get pruned afterwards.
var symbolCovrad = map[string]float64{
	"H":  0.4,
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,
	"Fe": 1.52,
	"Mn": 1.61,
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

//Maximum number of bonds per element, for pruning spurious bonds.
//A value of 0 means undefined: the atom is not checked.
var symbolMaxBonds = map[string]int{
	"H":  1,
	"C":  4,
	"O":  2,
	"N":  0, //undefined
	"P":  0,
	"S":  0,
	"Se": 0,
	"Be": 0,
	"F":  1,
	"Br": 1,
	"I":  1,
}

// AtomicNumber returns the atomic number for an element symbol, or 0 if
// the element is not in the tables.
func AtomicNumber(symbol string) int {
	return symbolNumber[symbol]
}

// MassOf returns the standard atomic weight of an element symbol.
func MassOf(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

// IsoMassOf returns the mass of the most abundant isotope of an element
// symbol.
func IsoMassOf(symbol string) (float64, bool) {
	m, ok := symbolIsoMass[symbol]
	return m, ok
}
