package domain

import (
	"maps"
	"slices"
	"strings"
)

// encodedSpace replaces spaces in persisted recent paths.
const encodedSpace = "%32"

// FileServerSettings is the persisted state of the file server list.
type FileServerSettings struct {
	Host                  string
	Path                  string
	Filter                string
	UseCurrentDir         bool
	AutomaticFileGrouping bool
	SmartFileGrouping     bool
	// RecentPaths maps a host to the directories most recently visited on it.
	RecentPaths map[string][]string
}

// DefaultFileServerSettings returns the settings used when nothing is persisted.
func DefaultFileServerSettings() FileServerSettings {
	return FileServerSettings{
		Host:                  LocalHost,
		Path:                  ".",
		Filter:                "*",
		AutomaticFileGrouping: true,
		SmartFileGrouping:     true,
		RecentPaths:           map[string][]string{},
	}
}

// Clone returns a deep copy of s.
func (s FileServerSettings) Clone() FileServerSettings {
	c := s
	c.RecentPaths = make(map[string][]string, len(s.RecentPaths))
	for host, paths := range s.RecentPaths {
		c.RecentPaths[host] = slices.Clone(paths)
	}
	return c
}

// AddRecentPath records path as the most recent directory on host.
func (s *FileServerSettings) AddRecentPath(host, path string, limit int) {
	if s.RecentPaths == nil {
		s.RecentPaths = map[string][]string{}
	}
	paths := slices.DeleteFunc(slices.Clone(s.RecentPaths[host]), func(p string) bool { return p == path })
	paths = append([]string{path}, paths...)
	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}
	s.RecentPaths[host] = paths
}

// RecentHosts returns the hosts that have recent paths, sorted.
func (s FileServerSettings) RecentHosts() []string {
	return slices.Sorted(maps.Keys(s.RecentPaths))
}

// EncodeRecentPath escapes spaces so a path survives whitespace-separated storage.
func EncodeRecentPath(path string) string {
	return strings.ReplaceAll(path, " ", encodedSpace)
}

// DecodeRecentPath reverses EncodeRecentPath.
func DecodeRecentPath(path string) string {
	return strings.ReplaceAll(path, encodedSpace, " ")
}

// FileEntry is one entry of a directory listing.
type FileEntry struct {
	Name      string   `json:"name"`
	Size      int64    `json:"size"`
	CanAccess bool     `json:"canAccess"`
	IsVirtual bool     `json:"isVirtual"`
	Members   []string `json:"members,omitempty"`
}

// FileList is the result of listing a directory on a metadata server.
type FileList struct {
	Directory string      `json:"directory"`
	Dirs      []FileEntry `json:"dirs"`
	Files     []FileEntry `json:"files"`
	Others    []FileEntry `json:"others"`
}

// FileListRequest selects what a directory listing returns.
type FileListRequest struct {
	Filter                string `json:"filter"`
	AutomaticFileGrouping bool   `json:"automaticFileGrouping"`
	SmartFileGrouping     bool   `json:"smartFileGrouping"`
}
