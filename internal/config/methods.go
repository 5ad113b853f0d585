package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/banshee-data/bader/internal/monitoring"
	"github.com/banshee-data/bader/internal/partition"
)

// stringList is a flag.Value that accumulates one string per occurrence
// of the flag, the stdlib equivalent of clap's multiple(true) --ref.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse builds a FlagSet matching the original "bader" CLI (-m/--method,
// -t/--type, -r/--ref, -a/--aec, -v/--vac, -J/--threads, and a single
// positional file argument), parses args, and validates the result.
func Parse(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	method := fs.String("method", "neargrid", `partitioning method: "ongrid" or "neargrid"`)
	fs.StringVar(method, "m", "neargrid", "shorthand for -method")
	fileType := fs.String("type", "", `file type: "cube" or "vasp" (inferred from the filename if omitted)`)
	fs.StringVar(fileType, "t", "", "shorthand for -type")
	var refs stringList
	fs.Var(&refs, "ref", "reference charge file; may be passed up to twice")
	fs.Var(&refs, "r", "shorthand for -ref")
	aec := fs.Bool("aec", false, "convenience flag for reading both AECCAR0 and AECCAR2")
	fs.BoolVar(aec, "a", false, "shorthand for -aec")
	vac := fs.String("vac", "", `vacuum cutoff, a float or "auto" for 1e-3`)
	fs.StringVar(vac, "v", "", "shorthand for -vac")
	threads := fs.Int("threads", 0, "worker count; 0 lets the runtime decide")
	fs.IntVar(threads, "J", 0, "shorthand for -threads")

	// flag stops at the first positional argument; resume after each one
	// so flags may also follow the file path.
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if len(positional) < 1 {
		return nil, ErrMissingFile
	}
	file := positional[0]

	m, err := parseMethod(*method)
	if err != nil {
		return nil, err
	}

	if *fileType != "" && *fileType != "cube" && *fileType != "vasp" {
		return nil, ErrInvalidFileType
	}

	if len(refs) > 2 {
		return nil, ErrTooManyReferences
	}
	if *aec && len(refs) > 0 {
		return nil, ErrAECConflictsWithRef
	}

	vacuum, err := parseVacuumTolerance(*vac)
	if err != nil {
		return nil, err
	}

	if *threads < 0 {
		return nil, ErrInvalidThreads
	}

	cfg := &Config{
		File:            file,
		FileType:        *fileType,
		Method:          m,
		References:      []string(refs),
		AllElectron:     *aec,
		VacuumTolerance: vacuum,
		Threads:         *threads,
	}

	kind := cfg.ResolveFileKind()
	if cfg.AllElectron && kind != KindVASP {
		return nil, ErrAECRequiresVASP
	}
	if kind == KindUnknown {
		monitoring.Logf("config: cannot infer file type of %s; reading it as vasp", file)
	}

	return cfg, nil
}

func parseMethod(s string) (partition.Method, error) {
	switch s {
	case "ongrid":
		return partition.OnGrid, nil
	case "neargrid", "":
		return partition.NearGrid, nil
	default:
		return 0, ErrInvalidMethod
	}
}

func parseVacuumTolerance(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	if s == "auto" {
		v := 1e-3
		return &v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVacuumTolerance, s)
	}
	return &v, nil
}

// ResolveFileKind determines which parser should read c.File: an
// explicit --type wins; otherwise the filename is inspected the same
// way the original CLI does. When neither "cube" nor "car" appears in
// it, KindUnknown is returned; Parse logs a notice for that case, and
// ZYXFormat and the CLI's reader selection treat it as VASP.
func (c *Config) ResolveFileKind() FileKind {
	switch c.FileType {
	case "cube":
		return KindCube
	case "vasp":
		return KindVASP
	}

	lower := strings.ToLower(c.File)
	switch {
	case strings.Contains(lower, "cube"):
		return KindCube
	case strings.Contains(lower, "car"):
		return KindVASP
	default:
		return KindUnknown
	}
}

// ZYXFormat reports whether the resolved input format is laid out
// x-fastest on disk (VASP) rather than z-fastest (cube), matching the
// original CLI's zyx_format flag.
func (c *Config) ZYXFormat() bool {
	return c.ResolveFileKind() != KindCube
}
