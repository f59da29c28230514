/*
 * atom.go, part of chemprint.
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

import "fmt"

// Atom contains the information about one atom, except for the
// coordinates, which live in a separate matrix (one per frame).
type Atom struct {
	Name    string  //PDB-style name, if any
	ID      int     //The atom ID as read from an input, 1-based
	index   int     //The current position of the atom in its container
	Molname string  //Name of the residue or molecule this atom belongs to
	Molid   int     //Residue/molecule number
	Chain   string
	Mass    float64
	Charge  float64 //Partial charge
	Symbol  string  //Element symbol, e.g. "C"
	Bonds   []*Bond //Bonds, filled by AssignBonds
}

// Copy returns a copy of the atom. Bonds are not copied, as they refer to
// other atoms in the original container.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("chemprint: attempted to copy a nil Atom")
	}
	at := new(Atom)
	*at = *A
	at.Bonds = nil
	return at
}

// Index returns the current position of the atom in its container.
// It is only valid after FillIndexes has been called on the container.
func (A *Atom) Index() int {
	return A.index
}

// Atomer is the basic interface for a topology: indexed access to atoms.
type Atomer interface {
	// Atom returns the atom at position i. Panics if out of range.
	Atom(i int) *Atom
	Len() int
}

// Masser returns a slice with the mass of each atom in the reference.
type Masser interface {
	Masses() ([]float64, error)
}

// Topology contains the information about a molecule that is not expected
// to change in time, i.e. everything except coordinates.
type Topology struct {
	Atoms  []*Atom
	charge int
	multi  int
}

// NewTopology makes a topology from the given atoms, total charge and
// multiplicity. It fails if ats is nil.
func NewTopology(ats []*Atom, charge, multi int) (*Topology, error) {
	if ats == nil {
		return nil, CError{"nil atom slice given", []string{"NewTopology"}}
	}
	return &Topology{Atoms: ats, charge: charge, multi: multi}, nil
}

// Atom returns the atom at position i. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("chemprint: requested Atom out of bounds")
	}
	return T.Atoms[i]
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// Charge returns the total charge of the topology.
func (T *Topology) Charge() int {
	return T.charge
}

// Multi returns the multiplicity of the topology.
func (T *Topology) Multi() int {
	return T.multi
}

// SetCharge sets the total charge.
func (T *Topology) SetCharge(c int) {
	T.charge = c
}

// SetMulti sets the multiplicity.
func (T *Topology) SetMulti(m int) {
	T.multi = m
}

// FillIndexes records in every atom its current position in the topology.
// Bond perception and graph building need the indexes filled.
func (T *Topology) FillIndexes() {
	for i, at := range T.Atoms {
		at.index = i
	}
}

// Masses returns a slice with the mass of every atom. Atoms with a zero
// Mass field get their mass from the element table; an unknown symbol is
// an error.
func (T *Topology) Masses() ([]float64, error) {
	masses := make([]float64, T.Len())
	for i, at := range T.Atoms {
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

// CopyAtoms returns a deep copy of the topology.
func (T *Topology) CopyAtoms() *Topology {
	ats := make([]*Atom, T.Len())
	for i, at := range T.Atoms {
		ats[i] = at.Copy()
	}
	return &Topology{Atoms: ats, charge: T.charge, multi: T.multi}
}
