package ports

import (
	"context"

	"go.trai.ch/visit/internal/core/domain"
)

//go:generate mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks

// MetaDataService is the set of calls a metadata server answers.
type MetaDataService interface {
	ProcessLauncher

	// SendKeepAlive checks that the server is alive.
	SendKeepAlive(ctx context.Context) error

	// GetFileList lists the current directory.
	GetFileList(ctx context.Context, req domain.FileListRequest) (domain.FileList, error)

	// ChangeDirectory changes the current directory.
	ChangeDirectory(ctx context.Context, dir string) error

	// GetDirectory returns the current directory.
	GetDirectory(ctx context.Context) (string, error)

	// ExpandPath resolves "~" and relative components against the current directory.
	ExpandPath(ctx context.Context, path string) (string, error)

	// GetSeparator returns the path separator of the server's file system.
	GetSeparator(ctx context.Context) (string, error)

	// GetMetaData reads the metadata of file at timeState.
	GetMetaData(ctx context.Context, file string, timeState int) (*domain.Metadata, error)

	// GetSIL reads the subset inclusion lattice of file at timeState.
	GetSIL(ctx context.Context, file string, timeState int) (*domain.SIL, error)

	// CloseDatabase releases any state the server holds for file.
	CloseDatabase(ctx context.Context, file string) error
}

// MetaDataProxy is a connection to one metadata server.
type MetaDataProxy interface {
	MetaDataService

	// Close releases the connection.
	Close() error
}
