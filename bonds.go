/*
 * bonds.go, part of chemprint.
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

import (
	"fmt"
	"sort"

	v3 "github.com/rmera/chemprint/v3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// Bond represents a chemical bond between two atoms.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
	Order float64 //Order 0 means undetermined
}

// Cross returns the atom of the bond that is not origin. Panics if origin
// is in neither end, which got to be a programming error.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.index == B.At1.index {
		return B.At2
	}
	if origin.index == B.At2.index {
		return B.At1
	}
	panic("chemprint: trying to cross a bond from an atom not present in it")
}

//returns a new *Bond slice with the bond with the given index removed
func takeFromBonds(bonds []*Bond, index int) []*Bond {
	newb := make([]*Bond, 0, len(bonds)-1)
	for _, v := range bonds {
		if v.Index != index {
			newb = append(newb, v)
		}
	}
	return newb
}

// RemoveBond removes the bond b from both its atoms. It fails if b was not
// recorded in either atom.
func RemoveBond(b *Bond) error {
	lenb1 := len(b.At1.Bonds)
	lenb2 := len(b.At2.Bonds)
	b.At1.Bonds = takeFromBonds(b.At1.Bonds, b.Index)
	b.At2.Bonds = takeFromBonds(b.At2.Bonds, b.Index)
	if len(b.At1.Bonds) == lenb1 || len(b.At2.Bonds) == lenb2 {
		err := CError{fmt.Sprintf("failed to remove bond index %d", b.Index), []string{"RemoveBond"}}
		return err
	}
	return nil
}

// AssignBonds perceives the bonds of mol from the given coordinates, based
// on a simple distance criterion similar to DOI:10.1186/1758-2946-3-33,
// and records them in the atoms. It returns the bonds found. Indexes are
// filled on mol as a side effect. Not meant for macromolecular systems.
func AssignBonds(coord *v3.Matrix, mol *Topology) ([]*Bond, error) {
	mol.FillIndexes()
	bonds := make([]*Bond, 0, 10)
	tot := mol.Len()
	var nextIndex int
	for i := 0; i < tot; i++ {
		at1 := mol.Atom(i)
		cov1, ok := symbolCovrad[at1.Symbol]
		if !ok {
			err := CError{fmt.Sprintf("no covalent radius known for element '%s' (atom %d)", at1.Symbol, i), []string{"AssignBonds"}}
			return nil, err
		}
		for j := i + 1; j < tot; j++ {
			at2 := mol.Atom(j)
			cov2, ok := symbolCovrad[at2.Symbol]
			if !ok {
				err := CError{fmt.Sprintf("no covalent radius known for element '%s' (atom %d)", at2.Symbol, j), []string{"AssignBonds"}}
				return nil, err
			}
			d := coord.Dist(i, j)
			if d < cov1+cov2+bondtol && d > tooclose {
				b := &Bond{Index: nextIndex, Dist: d, At1: at1, At2: at2}
				at1.Bonds = append(at1.Bonds, b)
				at2.Bonds = append(at2.Bonds, b)
				bonds = append(bonds, b)
				nextIndex++
			}
		}
	}
	//Prune the longest bonds of atoms that ended up with too many.
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //no maximum defined for this element
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			pruned := at.Bonds[len(at.Bonds)-1]
			if err := RemoveBond(pruned); err != nil {
				return nil, errDecorate(err, "AssignBonds")
			}
			for k, v := range bonds {
				if v.Index == pruned.Index {
					bonds = append(bonds[:k], bonds[k+1:]...)
					break
				}
			}
		}
	}
	return bonds, nil
}
