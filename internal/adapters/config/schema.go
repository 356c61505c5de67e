package config

// Visitfile is the structure of visit.yaml.
type Visitfile struct {
	Version    string         `yaml:"version"`
	Engine     *EngineDTO     `yaml:"engine,omitempty"`
	Cache      *CacheDTO      `yaml:"cache,omitempty"`
	Hosts      []HostDTO      `yaml:"hosts,omitempty"`
	FileServer *FileServerDTO `yaml:"fileServer,omitempty"`
}

// EngineDTO configures engine launches. Durations use time.ParseDuration syntax.
type EngineDTO struct {
	NumRestarts                    *int              `yaml:"numRestarts"`
	RetryDelay                     string            `yaml:"retryDelay"`
	LaunchTimeout                  string            `yaml:"launchTimeout"`
	KeepAliveInterval              string            `yaml:"keepAliveInterval"`
	Arguments                      []string          `yaml:"arguments"`
	Precision                      string            `yaml:"precision"`
	Backend                        string            `yaml:"backend"`
	RemoveDuplicateNodes           bool              `yaml:"removeDuplicateNodes"`
	DefaultFileOpenOptions         map[string]string `yaml:"defaultFileOpenOptions"`
	TreatAllDatabasesAsTimeVarying bool              `yaml:"treatAllDatabasesAsTimeVarying"`
	Executable                     string            `yaml:"executable"`
	RemotePortBase                 int               `yaml:"remotePortBase"`
}

// CacheDTO sizes the metadata caches.
type CacheDTO struct {
	MetadataSize int `yaml:"metadataSize"`
	SILSize      int `yaml:"silSize"`
}

// HostDTO is one launch profile.
type HostDTO struct {
	Name          string   `yaml:"name"`
	Host          string   `yaml:"host"`
	Arguments     []string `yaml:"arguments,omitempty"`
	LaunchMethod  string   `yaml:"launchMethod,omitempty"`
	Parallel      bool     `yaml:"parallel,omitempty"`
	NumProcs      int      `yaml:"numProcs,omitempty"`
	ShareBatchJob bool     `yaml:"shareBatchJob,omitempty"`
	Executable    string   `yaml:"executable,omitempty"`
}

// FileServerDTO is the persisted state of the file server list. Recent
// paths are stored per host as one space-separated string.
type FileServerDTO struct {
	Host                  string            `yaml:"host"`
	Path                  string            `yaml:"path"`
	Filter                string            `yaml:"filter"`
	UseCurrentDir         *bool             `yaml:"useCurrentDir,omitempty"`
	AutomaticFileGrouping *bool             `yaml:"automaticFileGrouping,omitempty"`
	SmartFileGrouping     *bool             `yaml:"smartFileGrouping,omitempty"`
	RecentPaths           map[string]string `yaml:"recentPaths,omitempty"`
}
