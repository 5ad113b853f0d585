package config

import "errors"

// ErrMissingFile is returned when no input file path was supplied.
var ErrMissingFile = errors.New("config: file is required")

// ErrInvalidFileType is returned for a --type value other than "cube" or
// "vasp".
var ErrInvalidFileType = errors.New("config: file type must be \"cube\" or \"vasp\"")

// ErrInvalidMethod is returned for a --method value other than "ongrid"
// or "neargrid".
var ErrInvalidMethod = errors.New("config: method must be \"ongrid\" or \"neargrid\"")

// ErrTooManyReferences is returned when more than two --ref flags are
// supplied.
var ErrTooManyReferences = errors.New("config: at most two reference files may be supplied")

// ErrAECConflictsWithRef is returned when --aec is combined with --ref.
var ErrAECConflictsWithRef = errors.New("config: --aec cannot be combined with --ref")

// ErrAECRequiresVASP is returned when --aec is used against a non-VASP
// input, since AECCAR0/AECCAR2 are VASP-only files.
var ErrAECRequiresVASP = errors.New("config: --aec requires a VASP input file")

// ErrInvalidVacuumTolerance is returned when --vac is neither "auto" nor
// a parseable float.
var ErrInvalidVacuumTolerance = errors.New("config: vacuum tolerance must be \"auto\" or a number")

// ErrInvalidThreads is returned when --threads is not a non-negative
// integer.
var ErrInvalidThreads = errors.New("config: threads must be a non-negative integer")
