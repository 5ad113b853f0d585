// Package lattice provides the triclinic-cell geometry primitives the
// partitioning engine builds on: cartesian/fractional coordinate
// transforms, cell volume, the 27 periodic-image shift vectors, and the
// minimum-image distance table used to seed surface-distance search.
package lattice
