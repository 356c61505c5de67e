package domain

import "path/filepath"

const (
	// VisitDirName is the name of the per-user state directory.
	VisitDirName = ".visit"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "visit.yaml"

	// ProfileCacheFileName is the name of the launch profile cache.
	ProfileCacheFileName = "profiles.json"

	// EngineLogFileName is the name of the log written by spawned servers.
	EngineLogFileName = "engine.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultVisitPath returns the state directory below home.
func DefaultVisitPath(home string) string {
	return filepath.Join(home, VisitDirName)
}

// DefaultProfileCachePath returns the launch profile cache below home.
func DefaultProfileCachePath(home string) string {
	return filepath.Join(home, VisitDirName, ProfileCacheFileName)
}

// DefaultEngineLogPath returns the log file of spawned servers below home.
func DefaultEngineLogPath(home string) string {
	return filepath.Join(home, VisitDirName, EngineLogFileName)
}
