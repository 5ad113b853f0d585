// Package sumref sums zero, one or two reference density files into the
// single density grid a partitioning run actually operates on, mirroring
// kerrigoon/bader-rs's Reference::{None,One,Two} and its AECCAR0/AECCAR2
// convenience pairing.
package sumref
