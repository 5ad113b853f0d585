package config

import "github.com/banshee-data/bader/internal/partition"

// FileKind identifies which parser a density file should be read with.
type FileKind int

const (
	// KindUnknown means the caller did not specify a type and filename
	// inference could not identify one. Such a file is read as VASP,
	// matching the original CLI's fallback.
	KindUnknown FileKind = iota
	KindCube
	KindVASP
)

func (k FileKind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindVASP:
		return "vasp"
	default:
		return "unknown"
	}
}

// Config holds the parsed, validated settings for one partitioning run.
type Config struct {
	// File is the path to the charge-density file to partition.
	File string
	// FileType is an explicit --type override ("cube" or "vasp"); empty
	// means infer from the filename.
	FileType string
	// Method selects the partitioning algorithm.
	Method partition.Method
	// References holds 0, 1 or 2 reference density file paths, summed
	// together before partitioning when non-empty.
	References []string
	// AllElectron is the --aec convenience flag, equivalent to
	// References = []string{"AECCAR0", "AECCAR2"}.
	AllElectron bool
	// VacuumTolerance is nil when no cutoff was requested; otherwise
	// voxels with density below it are excluded as vacuum.
	VacuumTolerance *float64
	// Threads is the worker count to use; 0 means "let the runtime
	// decide" (runtime.NumCPU()).
	Threads int
}

// ResolvedReferences returns the effective reference file list, expanding
// AllElectron into the AECCAR0/AECCAR2 pair.
func (c *Config) ResolvedReferences() []string {
	if c.AllElectron {
		return []string{"AECCAR0", "AECCAR2"}
	}
	return c.References
}
