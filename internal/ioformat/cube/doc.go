// Package cube reads the Gaussian cube file format: a header describing
// the cell and grid, an atom list, then the flattened density values in
// their native z-fastest order (the same convention the engine's core
// uses internally, so cube input needs no transpose).
package cube
