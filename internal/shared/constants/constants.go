package constants

import "io/fs"

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// MaxBatchPasswords caps how many candidate passwords a batch check reads
	// from a single input file.
	MaxBatchPasswords = 1000
	// RedactedPrefixLen is how many leading characters of a candidate password
	// survive redaction in batch result files.
	RedactedPrefixLen = 3
)
