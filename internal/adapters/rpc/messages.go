package rpc

import "go.trai.ch/visit/internal/core/domain"

// HandshakeRequest opens a session.
type HandshakeRequest struct {
	Version     string `json:"version"`
	SecurityKey string `json:"securityKey"`
}

// HandshakeResponse answers a handshake.
type HandshakeResponse struct {
	Version string `json:"version"`
	Role    string `json:"role"`
	PID     int    `json:"pid"`
}

// Empty is the request or response of calls that carry nothing.
type Empty struct{}

// NetworkRequest names a network.
type NetworkRequest struct {
	NetworkID int `json:"networkId"`
}

// NetworkResponse returns a network id.
type NetworkResponse struct {
	NetworkID int `json:"networkId"`
}

// PathRequest carries a directory or file path.
type PathRequest struct {
	Path string `json:"path"`
}

// PathResponse returns a directory, path or separator.
type PathResponse struct {
	Path string `json:"path"`
}

// FileStateRequest names a file at one time state.
type FileStateRequest struct {
	File      string `json:"file"`
	TimeState int    `json:"timeState"`
}

// MetaDataResponse carries database metadata.
type MetaDataResponse struct {
	MetaData *domain.Metadata `json:"metadata"`
}

// SILResponse carries a subset inclusion lattice.
type SILResponse struct {
	SIL *domain.SIL `json:"sil"`
}
