// Package config parses and validates the command-line run configuration
// for a Bader partitioning invocation: the input file, its type, the
// partitioning method, reference-density files, vacuum tolerance and
// thread count.
//
// It follows the flag-for-flag behavior of kerrigoon/bader-rs's
// arguments.rs, translated from clap's ArgMatches into Go's stdlib flag
// package, the only CLI parser used anywhere in the pack.
package config
