/*
 * mol.go, part of chemprint.
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
	v3 "github.com/rmera/chemprint/v3"
)

// Mol is a single-conformer molecule with perceived connectivity: the
// representation the descriptor and fingerprint functions consume. It is
// built per call (or per frame) from an AtomGroup and never cached; its
// atoms are copies, so computing on a Mol does not touch the selection it
// came from.
type Mol struct {
	*Topology
	xyz   *v3.Matrix
	bonds []*Bond
}

// MolFromGroup converts an atom group into a Mol, using the coordinates
// of the given frame (the first one if no frame is given). Bonds are
// perceived from the frame's geometry.
func MolFromGroup(sel AtomGroup, frame ...int) (*Mol, error) {
	if err := CheckGroup(sel); err != nil {
		return nil, err
	}
	fr := 0
	if len(frame) > 0 {
		fr = frame[0]
	}
	coords, err := sel.FrameCoords(fr)
	if err != nil {
		return nil, errDecorate(err, "MolFromGroup")
	}
	ats := make([]*Atom, sel.Len())
	for i := 0; i < sel.Len(); i++ {
		ats[i] = sel.Atom(i).Copy()
	}
	top, err := NewTopology(ats, 0, 0)
	if err != nil {
		return nil, errDecorate(err, "MolFromGroup")
	}
	bonds, err := AssignBonds(coords, top)
	if err != nil {
		return nil, errDecorate(err, "MolFromGroup")
	}
	return &Mol{Topology: top, xyz: coords, bonds: bonds}, nil
}

// Coords returns the coordinates of the molecule.
func (M *Mol) Coords() *v3.Matrix {
	return M.xyz
}

// Bonds returns the perceived bonds of the molecule.
func (M *Mol) Bonds() []*Bond {
	return M.bonds
}

// Neighbors returns the positions of every atom bonded to the ith atom.
func (M *Mol) Neighbors(i int) []int {
	at := M.Atom(i)
	n := make([]int, 0, len(at.Bonds))
	for _, b := range at.Bonds {
		n = append(n, b.Cross(at).index)
	}
	return n
}

// HeavyNeighbors returns the positions of the non-hydrogen atoms bonded
// to the ith atom.
func (M *Mol) HeavyNeighbors(i int) []int {
	at := M.Atom(i)
	n := make([]int, 0, len(at.Bonds))
	for _, b := range at.Bonds {
		other := b.Cross(at)
		if other.Symbol != "H" {
			n = append(n, other.index)
		}
	}
	return n
}

// HCount returns the number of hydrogens bonded to the ith atom.
func (M *Mol) HCount(i int) int {
	at := M.Atom(i)
	h := 0
	for _, b := range at.Bonds {
		if b.Cross(at).Symbol == "H" {
			h++
		}
	}
	return h
}

// IsHeavy reports whether the ith atom is not a hydrogen.
func (M *Mol) IsHeavy(i int) bool {
	return M.Atom(i).Symbol != "H"
}

// CenterOfMass returns the mass-weighted center of the molecule as a
// 1-vector matrix.
func (M *Mol) CenterOfMass() (*v3.Matrix, error) {
	masses, err := M.Masses()
	if err != nil {
		return nil, errDecorate(err, "CenterOfMass")
	}
	com := v3.Zeros(1)
	var total float64
	for i, m := range masses {
		com.Set(0, 0, com.At(0, 0)+m*M.xyz.At(i, 0))
		com.Set(0, 1, com.At(0, 1)+m*M.xyz.At(i, 1))
		com.Set(0, 2, com.At(0, 2)+m*M.xyz.At(i, 2))
		total += m
	}
	com.Scale(1/total, com)
	return com, nil
}
