package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrBadHostname is returned when a host name cannot be resolved.
	ErrBadHostname = zerr.New("bad host name")

	// ErrIncompatibleVersion is returned when a remote process speaks a different protocol version.
	ErrIncompatibleVersion = zerr.New("incompatible version")

	// ErrIncompatibleSecurityToken is returned when a remote process rejects the security key.
	ErrIncompatibleSecurityToken = zerr.New("incompatible security token")

	// ErrCouldNotConnect is returned when a launched or targeted process never became reachable.
	ErrCouldNotConnect = zerr.New("could not connect")

	// ErrCancelledConnect is returned when the user or a scheduler cancelled a launch.
	ErrCancelledConnect = zerr.New("connection cancelled")

	// ErrLostConnection is returned when an established session stops responding.
	ErrLostConnection = zerr.New("lost connection")

	// ErrLaunchInProgress is returned when a launch is requested while another one is running.
	ErrLaunchInProgress = zerr.New("another engine launch is already in progress")

	// ErrNoEngine is returned when a call needs a session that does not exist.
	ErrNoEngine = zerr.New("no engine running for key")

	// ErrNoMetaDataServer is returned when a call needs a metadata server that does not exist.
	ErrNoMetaDataServer = zerr.New("no metadata server running for host")

	// ErrGetFileListFailed is returned when a directory listing fails on the remote side.
	ErrGetFileListFailed = zerr.New("failed to get file list")

	// ErrGetMetaDataFailed is returned when metadata for a file cannot be read.
	ErrGetMetaDataFailed = zerr.New("failed to get metadata")

	// ErrGetSILFailed is returned when the subset inclusion lattice for a file cannot be read.
	ErrGetSILFailed = zerr.New("failed to get SIL")

	// ErrChangeDirectoryFailed is returned when the remote working directory cannot be changed.
	ErrChangeDirectoryFailed = zerr.New("failed to change directory")

	// ErrInvalidFile is returned when a database cannot be opened.
	ErrInvalidFile = zerr.New("invalid file")

	// ErrInvalidVariable is returned when a variable is not defined by the open database.
	ErrInvalidVariable = zerr.New("invalid variable")

	// ErrInvalidNetwork is returned when a network id does not name a plot on the engine.
	ErrInvalidNetwork = zerr.New("invalid network id")

	// ErrNoOpenDatabase is returned when a plot is requested before a database was opened.
	ErrNoOpenDatabase = zerr.New("no open database")

	// ErrUnknownOperator is returned when an operator name is not supported by the engine.
	ErrUnknownOperator = zerr.New("unknown operator")

	// ErrUnknownQuery is returned when a query name is not supported by the engine.
	ErrUnknownQuery = zerr.New("unknown query")

	// ErrHistogramUnavailable is returned when a data source cannot produce a histogram.
	ErrHistogramUnavailable = zerr.New("histogram unavailable")

	// ErrInvalidCondition is returned when a histogram filter condition cannot be parsed.
	ErrInvalidCondition = zerr.New("invalid histogram condition")

	// ErrInterrupted is returned when an engine computation was interrupted.
	ErrInterrupted = zerr.New("execution interrupted")

	// ErrTooManyTimeSteps is returned when a contract asks for more time steps than supported.
	ErrTooManyTimeSteps = zerr.New("too many time steps requested")

	// ErrHistogramOwnershipMismatch is returned when ranks disagree on who owns a histogram.
	ErrHistogramOwnershipMismatch = zerr.New("histogram ownership mismatch across ranks")

	// ErrMixedHistogramUnification is returned when one unification mixes partial and single ownership.
	ErrMixedHistogramUnification = zerr.New("mixed partial and single-owner histograms")

	// ErrDegenerateView is returned when camera parameters do not define a valid projection.
	ErrDegenerateView = zerr.New("degenerate view")

	// ErrProfileNotFound is returned when no launch profile matches a host.
	ErrProfileNotFound = zerr.New("no launch profile for host")

	// ErrProfileStoreReadFailed is returned when the launch profile cache cannot be read.
	ErrProfileStoreReadFailed = zerr.New("failed to read launch profile cache")

	// ErrProfileStoreWriteFailed is returned when the launch profile cache cannot be written.
	ErrProfileStoreWriteFailed = zerr.New("failed to write launch profile cache")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when the config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrSpawnFailed is returned when a local or remote process cannot be started.
	ErrSpawnFailed = zerr.New("failed to spawn process")
)

// IsConnectionLoss reports whether err means an established session went away
// and a rebuilt session may succeed.
func IsConnectionLoss(err error) bool {
	return errors.Is(err, ErrLostConnection)
}

// IsFatalForSession reports whether err marks the session as unusable without
// any retry: version, security and host mismatches, and cancellation.
func IsFatalForSession(err error) bool {
	return errors.Is(err, ErrIncompatibleVersion) ||
		errors.Is(err, ErrIncompatibleSecurityToken) ||
		errors.Is(err, ErrBadHostname) ||
		errors.Is(err, ErrCancelledConnect)
}

// IsTransient reports whether err is a connection failure worth another
// attempt with a rebuilt session.
func IsTransient(err error) bool {
	if IsFatalForSession(err) {
		return false
	}
	return errors.Is(err, ErrCouldNotConnect) || IsConnectionLoss(err)
}

// IsLaunchFailure reports whether err belongs to the set of failures that
// abort an engine launch.
func IsLaunchFailure(err error) bool {
	return IsFatalForSession(err) ||
		errors.Is(err, ErrCouldNotConnect) ||
		errors.Is(err, ErrLostConnection)
}
