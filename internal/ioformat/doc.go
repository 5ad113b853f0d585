// Package ioformat defines the shared result type produced by the
// concrete density-file readers in its cube and vasp subpackages, and
// any shared parsing helpers they both need.
//
// Readers have a narrow surface deliberately: each is a
// func(io.Reader) (ioformat.Result, error), kept free of the engine's
// internal/lattice and internal/density types so that adding a new file
// format never touches the partitioning core, matching the external,
// "out of scope... external collaborators" framing the original CLI
// draws around its file I/O.
package ioformat
