/*
 * molecule.go, part of chemprint.
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

	v3 "github.com/rmera/chemprint/v3"
)

// AtomGroup is the interface for an ordered collection of atoms with
// per-frame coordinates: the input every analysis in this library takes.
// Both Molecule (the whole system) and Group (a selection) satisfy it, but
// analyses only accept genuine selections; see CheckGroup.
type AtomGroup interface {
	Atomer
	Masser

	// FrameCoords returns the coordinates of the group's atoms for the
	// given frame, as a fresh matrix.
	FrameCoords(frame int) (*v3.Matrix, error)

	// NFrames returns the number of frames (conformers) available.
	NFrames() int
}

// CheckGroup returns an InputTypeError if sel is not a genuine atom group:
// nil, empty, or a whole-system container. A Molecule must be narrowed
// with Select (possibly selecting all its atoms) before analysis. The
// check runs before any computation is attempted.
func CheckGroup(sel AtomGroup) error {
	if sel == nil {
		return &InputTypeError{Got: "nil"}
	}
	if _, ok := sel.(*Molecule); ok {
		return &InputTypeError{Got: "*chemprint.Molecule"}
	}
	if sel.Len() == 0 {
		return &InputTypeError{Got: "an empty selection"}
	}
	return nil
}

// Molecule contains the full info for a molecular system in one or more
// states (frames). Coordinates are stored separately from the topology,
// one matrix per frame.
type Molecule struct {
	*Topology
	Coords []*v3.Matrix
}

// NewMolecule makes a molecule from a topology and one or more frames of
// coordinates. It checks that every frame matches the number of atoms.
func NewMolecule(top *Topology, coords []*v3.Matrix) (*Molecule, error) {
	if top == nil {
		return nil, CError{"nil topology given", []string{"NewMolecule"}}
	}
	if len(coords) == 0 {
		return nil, CError{"no coordinates given", []string{"NewMolecule"}}
	}
	for i, c := range coords {
		if c.NVecs() != top.Len() {
			return nil, CError{fmt.Sprintf("frame %d has %d coordinates for %d atoms", i, c.NVecs(), top.Len()), []string{"NewMolecule"}}
		}
	}
	return &Molecule{Topology: top, Coords: coords}, nil
}

// AddFrame appends a frame of coordinates to the molecule. It checks that
// the number of coordinates matches the number of atoms.
func (M *Molecule) AddFrame(frame *v3.Matrix) error {
	if frame == nil {
		return CError{"attempted to add a nil frame", []string{"AddFrame"}}
	}
	if frame.NVecs() != M.Len() {
		return CError{fmt.Sprintf("wrong number of coordinates (%d) for %d atoms", frame.NVecs(), M.Len()), []string{"AddFrame"}}
	}
	M.Coords = append(M.Coords, frame)
	return nil
}

// NFrames returns the number of frames in the molecule.
func (M *Molecule) NFrames() int {
	return len(M.Coords)
}

// FrameCoords returns a copy of the coordinates for the given frame.
func (M *Molecule) FrameCoords(frame int) (*v3.Matrix, error) {
	if frame < 0 || frame >= len(M.Coords) {
		return nil, CError{fmt.Sprintf("frame requested (%d) out of range", frame), []string{"FrameCoords"}}
	}
	return M.Coords[frame].Copy(), nil
}

// Select returns a Group with the atoms in the given positions, in order.
// A nil or empty indexes slice selects every atom. The group is a view:
// it reads topology and coordinates from the parent molecule.
func (M *Molecule) Select(indexes []int) (*Group, error) {
	if len(indexes) == 0 {
		indexes = make([]int, M.Len())
		for i := range indexes {
			indexes[i] = i
		}
	}
	for k, j := range indexes {
		if j < 0 || j >= M.Len() {
			return nil, CError{fmt.Sprintf("atom requested (number %d, value %d) out of range", k, j), []string{"Select"}}
		}
	}
	return &Group{mol: M, indexes: indexes}, nil
}

// Group is an ordered selection of atoms from a Molecule: the AtomGroup
// every analysis in this library operates on.
type Group struct {
	mol     *Molecule
	indexes []int
}

// Atom returns the ith atom of the selection. Panics if out of range.
func (G *Group) Atom(i int) *Atom {
	return G.mol.Atom(G.indexes[i])
}

// Len returns the number of atoms in the selection.
func (G *Group) Len() int {
	return len(G.indexes)
}

// NFrames returns the number of frames of the parent molecule.
func (G *Group) NFrames() int {
	return G.mol.NFrames()
}

// Indexes returns a copy of the selected positions in the parent molecule.
func (G *Group) Indexes() []int {
	idx := make([]int, len(G.indexes))
	copy(idx, G.indexes)
	return idx
}

// FrameCoords returns the coordinates of the selected atoms for the given
// frame, as a fresh matrix.
func (G *Group) FrameCoords(frame int) (*v3.Matrix, error) {
	if frame < 0 || frame >= G.mol.NFrames() {
		return nil, CError{fmt.Sprintf("frame requested (%d) out of range", frame), []string{"FrameCoords"}}
	}
	c := v3.Zeros(G.Len())
	if err := c.SomeVecs(G.mol.Coords[frame], G.indexes); err != nil {
		return nil, errDecorate(err, "FrameCoords")
	}
	return c, nil
}

// Masses returns the masses of the selected atoms.
func (G *Group) Masses() ([]float64, error) {
	masses := make([]float64, G.Len())
	for i := 0; i < G.Len(); i++ {
		at := G.Atom(i)
		if at.Mass > 0 {
			masses[i] = at.Mass
			continue
		}
		m, ok := symbolMass[at.Symbol]
		if !ok {
			return nil, CError{fmt.Sprintf("no mass known for element '%s' (atom %d)", at.Symbol, i), []string{"Masses"}}
		}
		masses[i] = m
	}
	return masses, nil
}
