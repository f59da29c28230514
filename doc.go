/*
 * doc.go, part of chemprint.
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

/*
Package chemprint computes molecular descriptors and structural
fingerprints from in-memory groups of atoms, possibly holding several
frames (conformers) of the same topology.


	**chemprint capabilities**

    Atom, topology and multi-frame molecule structures, with ordered
	atom selections (groups).

    Distance-criterion bond perception, building a bonded, single-conformer
	Mol representation per analysis call.

    Molecular descriptors (weights, formula, counts, shape indicators from
	the gyration tensor) dispatched by name from a static capability
	catalog, one result row per frame. See the descriptors subpackage.

    Structural fingerprints in five families (MACCSKeys, AtomPair, Morgan,
	RDKit, TopologicalTorsion), hashed and unhashed, with array, map and
	native bit/count vector output shapes. See the fingerprint subpackage.

    A molecular graph implementing the gonum graph interfaces, for
	topological distances, rings and path enumeration. See molgraph.

    Compressed streaming of per-frame analysis records (stream) and
	descriptor time-series plots (descplot).

Coordinates use the v3 subpackage, a 3-column matrix type backed by gonum.
*/
package chemprint
