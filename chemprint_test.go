/*
 * chemprint_test.go, part of chemprint.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 */

package chemprint

import (
	"errors"
	"math"
	"strings"
	"testing"

	v3 "github.com/rmera/chemprint/v3"
)

//ethanol returns an all-atom ethanol molecule (CH3CH2OH, 9 atoms) with an
//idealized gas-phase geometry, built in memory. Atom order: C, C, O, then
//the hydrogens (3 on the first carbon, 2 on the second, 1 on the oxygen).
func ethanol(Te *testing.T) *Molecule {
	symbols := []string{"C", "C", "O", "H", "H", "H", "H", "H", "H"}
	ats := make([]*Atom, len(symbols))
	for i, s := range symbols {
		ats[i] = &Atom{ID: i + 1, Symbol: s, Molname: "ETH", Molid: 1}
	}
	coords, err := v3.NewMatrix([]float64{
		0.00, 0.00, 0.00, //C1
		1.54, 0.00, 0.00, //C2
		2.02, 1.34, 0.00, //O
		-0.36, 1.03, 0.00, //H on C1
		-0.36, -0.51, 0.89, //H on C1
		-0.36, -0.51, -0.89, //H on C1
		1.90, -0.51, 0.89, //H on C2
		1.90, -0.51, -0.89, //H on C2
		2.97, 1.35, 0.00, //H on O
	})
	if err != nil {
		Te.Fatal(err)
	}
	top, err := NewTopology(ats, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule(top, []*v3.Matrix{coords})
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestAssignBonds(Te *testing.T) {
	mol := ethanol(Te)
	g, err := mol.Select(nil)
	if err != nil {
		Te.Fatal(err)
	}
	m, err := MolFromGroup(g)
	if err != nil {
		Te.Fatal(err)
	}
	if len(m.Bonds()) != 8 {
		Te.Errorf("ethanol should have 8 bonds, got %d", len(m.Bonds()))
	}
	if len(m.Atom(2).Bonds) != 2 {
		Te.Errorf("oxygen should have 2 bonds, got %d", len(m.Atom(2).Bonds))
	}
	//the hydroxyl hydrogen is bonded to the oxygen only
	ho := m.Atom(8)
	if len(ho.Bonds) != 1 || ho.Bonds[0].Cross(ho).Symbol != "O" {
		Te.Errorf("hydroxyl hydrogen bonded wrong: %v", ho.Bonds)
	}
	if got := m.HCount(0); got != 3 {
		Te.Errorf("first carbon should carry 3 hydrogens, got %d", got)
	}
	heavy := m.HeavyNeighbors(1)
	if len(heavy) != 2 {
		Te.Errorf("second carbon should have 2 heavy neighbors, got %v", heavy)
	}
}

func TestSelect(Te *testing.T) {
	mol := ethanol(Te)
	g, err := mol.Select([]int{0, 1, 2})
	if err != nil {
		Te.Fatal(err)
	}
	if g.Len() != 3 {
		Te.Errorf("wrong selection length %d", g.Len())
	}
	c, err := g.FrameCoords(0)
	if err != nil {
		Te.Fatal(err)
	}
	if c.NVecs() != 3 || c.At(2, 1) != 1.34 {
		Te.Errorf("wrong selection coordinates: %v", c)
	}
	masses, err := g.Masses()
	if err != nil {
		Te.Fatal(err)
	}
	var sum float64
	for _, m := range masses {
		sum += m
	}
	if math.Abs(sum-40.021) > 1e-3 {
		Te.Errorf("wrong heavy-atom mass sum %f", sum)
	}
	if _, err := mol.Select([]int{0, 99}); err == nil {
		Te.Error("out of range selection should fail")
	}
}

func TestCheckGroup(Te *testing.T) {
	mol := ethanol(Te)
	err := CheckGroup(mol)
	if err == nil {
		Te.Fatal("a whole Molecule should not pass as an AtomGroup")
	}
	var ite *InputTypeError
	if !errors.As(err, &ite) {
		Te.Errorf("expected InputTypeError, got %T", err)
	}
	if !strings.Contains(err.Error(), "must be an AtomGroup") {
		Te.Errorf("wrong message: %s", err.Error())
	}
	g, _ := mol.Select(nil)
	if err := CheckGroup(g); err != nil {
		Te.Errorf("a Group should pass: %v", err)
	}
}

func TestCenterOfMass(Te *testing.T) {
	mol := ethanol(Te)
	g, _ := mol.Select(nil)
	m, err := MolFromGroup(g)
	if err != nil {
		Te.Fatal(err)
	}
	com, err := m.CenterOfMass()
	if err != nil {
		Te.Fatal(err)
	}
	//the center of mass sits between the two carbons and the oxygen
	if com.At(0, 0) < 0.5 || com.At(0, 0) > 2.0 {
		Te.Errorf("suspicious center of mass: %v", com)
	}
}
