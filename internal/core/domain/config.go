package domain

import "time"

// Config is the resolved client configuration.
type Config struct {
	Engine     EngineConfig
	Cache      CacheConfig
	Profiles   []LaunchProfile
	FileServer FileServerSettings
}

// EngineConfig controls how engines are launched and kept alive.
type EngineConfig struct {
	NumRestarts       int
	RetryDelay        time.Duration
	LaunchTimeout     time.Duration
	KeepAliveInterval time.Duration
	Arguments         []string
	// TreatAllDatabasesAsTimeVarying caches metadata per time state for every file.
	TreatAllDatabasesAsTimeVarying bool
	Settings                       GlobalSettings
	Executable                     string
	RemotePortBase                 int
}

// CacheConfig sizes the metadata and SIL caches.
type CacheConfig struct {
	MetaDataSize int
	SILSize      int
}

// Defaults for a Config with nothing set.
const (
	DefaultNumRestarts       = 2
	DefaultLaunchTimeout     = 30 * time.Second
	DefaultKeepAliveInterval = 5 * time.Minute
	DefaultCacheSize         = 50
	DefaultRemotePortBase    = 5600
)

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			NumRestarts:       DefaultNumRestarts,
			LaunchTimeout:     DefaultLaunchTimeout,
			KeepAliveInterval: DefaultKeepAliveInterval,
			Settings:          DefaultGlobalSettings(),
			RemotePortBase:    DefaultRemotePortBase,
		},
		Cache: CacheConfig{
			MetaDataSize: DefaultCacheSize,
			SILSize:      DefaultCacheSize,
		},
		FileServer: DefaultFileServerSettings(),
	}
}

// Profile returns the first configured launch profile for host.
func (c *Config) Profile(host string) (LaunchProfile, bool) {
	host = NormalizeHost(host)
	for _, p := range c.Profiles {
		if NormalizeHost(p.Host) == host {
			return p.Clone(), true
		}
	}
	return LaunchProfile{}, false
}

// ProfilesFor returns every configured launch profile for host.
func (c *Config) ProfilesFor(host string) []LaunchProfile {
	host = NormalizeHost(host)
	var out []LaunchProfile
	for _, p := range c.Profiles {
		if NormalizeHost(p.Host) == host {
			out = append(out, p.Clone())
		}
	}
	return out
}
