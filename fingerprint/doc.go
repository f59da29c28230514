/*
Package fingerprint turns atom groups into molecular fingerprints.

Five families are available: MACCSKeys, Morgan, AtomPair,
TopologicalTorsion and RDKit (bond paths). Each family except MACCSKeys
comes in an unhashed variant, whose identifiers live in an unbounded
space and keep counts, and a hashed one, folded into a fixed width.
The raw result can be normalized into a dense count slice or an
identifier-to-count mapping.
*/
package fingerprint
