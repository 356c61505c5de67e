package domain

import (
	"maps"
	"slices"
	"time"
)

// ProtocolVersion is exchanged on connect; sessions with a different version are refused.
const ProtocolVersion = "3.4"

// EngineProperties are reported by an engine once it is running.
type EngineProperties struct {
	Host          string `json:"host"`
	PID           int    `json:"pid"`
	NumProcessors int    `json:"numProcessors"`
	NumNodes      int    `json:"numNodes"`
	LoadBalancing string `json:"loadBalancing"`
	Version       string `json:"version"`
	Role          string `json:"role"`
}

// LaunchMethod names how a parallel engine is started.
type LaunchMethod string

const (
	// LaunchDirect runs the engine on the target host directly.
	LaunchDirect LaunchMethod = ""
	// LaunchMPIRun runs the engine through mpirun.
	LaunchMPIRun LaunchMethod = "mpirun"
	// LaunchSrun runs the engine through a slurm allocation.
	LaunchSrun LaunchMethod = "srun"
	// LaunchQsub submits the engine to a batch queue.
	LaunchQsub LaunchMethod = "qsub"
	// LaunchSbatch submits the engine to a slurm batch queue.
	LaunchSbatch LaunchMethod = "sbatch"
)

// IsScheduler reports whether the method hands the launch to a job scheduler.
func (m LaunchMethod) IsScheduler() bool {
	return m == LaunchQsub || m == LaunchSbatch
}

// LaunchProfile describes how to start an engine on a host.
type LaunchProfile struct {
	Name         string       `json:"name" yaml:"name"`
	Host         string       `json:"host" yaml:"host"`
	Arguments    []string     `json:"arguments,omitempty" yaml:"arguments"`
	LaunchMethod LaunchMethod `json:"launchMethod,omitempty" yaml:"launchMethod"`
	Parallel     bool         `json:"parallel,omitempty" yaml:"parallel"`
	NumProcs     int          `json:"numProcs,omitempty" yaml:"numProcs"`
	// ShareBatchJob starts the engine through the metadata server already
	// running in the same allocation.
	ShareBatchJob bool `json:"shareBatchJob,omitempty" yaml:"shareBatchJob"`
	// Executable overrides the remote command used to start the server.
	Executable string `json:"executable,omitempty" yaml:"executable"`
}

// IsSchedulerLaunch reports whether a launch with p waits on a job scheduler.
func (p LaunchProfile) IsSchedulerLaunch() bool {
	return p.Parallel && p.LaunchMethod.IsScheduler()
}

// Clone returns a deep copy of p.
func (p LaunchProfile) Clone() LaunchProfile {
	p.Arguments = slices.Clone(p.Arguments)
	return p
}

// DefaultLaunchProfile is used when nothing else selects a profile for host.
func DefaultLaunchProfile(host string) LaunchProfile {
	return LaunchProfile{Name: "serial", Host: NormalizeHost(host), NumProcs: 1}
}

// Precision selects the floating point precision used by engines.
type Precision string

const (
	// PrecisionNative keeps whatever precision the file stores.
	PrecisionNative Precision = "native"
	// PrecisionFloat converts data to single precision.
	PrecisionFloat Precision = "float"
	// PrecisionDouble converts data to double precision.
	PrecisionDouble Precision = "double"
)

// Backend selects the data-processing backend used by engines.
type Backend string

const (
	// BackendDefault is the built-in pipeline.
	BackendDefault Backend = "default"
	// BackendAccelerated offloads supported filters.
	BackendAccelerated Backend = "accelerated"
)

// GlobalSettings are pushed to every engine when it starts and whenever they change.
type GlobalSettings struct {
	FileOpenOptions      map[string]string `json:"fileOpenOptions"`
	Precision            Precision         `json:"precision"`
	Backend              Backend           `json:"backend"`
	RemoveDuplicateNodes bool              `json:"removeDuplicateNodes"`
}

// DefaultGlobalSettings returns the settings of a fresh client.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		FileOpenOptions: map[string]string{},
		Precision:       PrecisionNative,
		Backend:         BackendDefault,
	}
}

// Clone returns a deep copy of s.
func (s GlobalSettings) Clone() GlobalSettings {
	s.FileOpenOptions = maps.Clone(s.FileOpenOptions)
	return s
}

// LaunchRequest carries everything a launcher needs to start one server.
type LaunchRequest struct {
	Key       EngineKey
	Profile   LaunchProfile
	Role      string
	Arguments []string
	// SecurityKey is handed to the server and checked on connect.
	SecurityKey string
	Timeout     time.Duration
	// ReverseLaunch makes the server dial back to a listener owned by the client.
	ReverseLaunch bool
}

// ProcessLaunchRequest asks an existing server to start another process.
type ProcessLaunchRequest struct {
	Program   string   `json:"program"`
	Arguments []string `json:"arguments"`
	LogPath   string   `json:"logPath"`
}

// Server roles.
const (
	RoleEngine   = "engine"
	RoleMetaData = "mdserver"
)
