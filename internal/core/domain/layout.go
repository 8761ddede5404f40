package domain

import "path/filepath"

const (
	// StitchDirName is the name of the internal workspace directory.
	StitchDirName = ".stitch"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// FingerprintDirName is the name of the asset fingerprint store directory.
	FingerprintDirName = "fingerprints"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "stitch.yaml"

	// EnvFileName is the name of the environment file loaded at resolution.
	EnvFileName = ".env"

	// LocalEnvFileName is the local override environment file.
	LocalEnvFileName = ".env.local"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCachePath returns the cache root relative to the project root.
// It joins .stitch and cache.
func DefaultCachePath() string {
	return filepath.Join(StitchDirName, CacheDirName)
}

// DefaultFingerprintPath returns the fingerprint store directory relative to
// the project root. It joins .stitch, cache and fingerprints.
func DefaultFingerprintPath() string {
	return filepath.Join(StitchDirName, CacheDirName, FingerprintDirName)
}
