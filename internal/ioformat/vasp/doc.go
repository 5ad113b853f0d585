// Package vasp reads VASP CHGCAR/AECCAR-style density files: a POSCAR
// header (scale, lattice, species, atom positions) followed by the grid
// dimensions and a flattened density grid stored x-fastest, the
// opposite of the engine's native z-fastest convention.
package vasp
