package rpc

import (
	"context"
	"errors"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// reasonKey is the trailer carrying the reason token of a failed call.
const reasonKey = "visit-reason"

type reason struct {
	token string
	err   error
	code  codes.Code
}

// reasons maps domain sentinels to wire tokens. Order matters: the first
// sentinel matched by errors.Is wins.
var reasons = []reason{
	{"incompatible_version", domain.ErrIncompatibleVersion, codes.FailedPrecondition},
	{"incompatible_security_token", domain.ErrIncompatibleSecurityToken, codes.PermissionDenied},
	{"bad_hostname", domain.ErrBadHostname, codes.InvalidArgument},
	{"cancelled_connect", domain.ErrCancelledConnect, codes.Canceled},
	{"could_not_connect", domain.ErrCouldNotConnect, codes.Unavailable},
	{"lost_connection", domain.ErrLostConnection, codes.Unavailable},
	{"get_file_list_failed", domain.ErrGetFileListFailed, codes.Internal},
	{"get_metadata_failed", domain.ErrGetMetaDataFailed, codes.Internal},
	{"get_sil_failed", domain.ErrGetSILFailed, codes.Internal},
	{"change_directory_failed", domain.ErrChangeDirectoryFailed, codes.NotFound},
	{"invalid_file", domain.ErrInvalidFile, codes.NotFound},
	{"invalid_variable", domain.ErrInvalidVariable, codes.InvalidArgument},
	{"invalid_network", domain.ErrInvalidNetwork, codes.NotFound},
	{"no_open_database", domain.ErrNoOpenDatabase, codes.FailedPrecondition},
	{"unknown_operator", domain.ErrUnknownOperator, codes.Unimplemented},
	{"unknown_query", domain.ErrUnknownQuery, codes.Unimplemented},
	{"invalid_condition", domain.ErrInvalidCondition, codes.InvalidArgument},
	{"histogram_unavailable", domain.ErrHistogramUnavailable, codes.FailedPrecondition},
	{"interrupted", domain.ErrInterrupted, codes.Aborted},
	{"too_many_time_steps", domain.ErrTooManyTimeSteps, codes.ResourceExhausted},
	{"spawn_failed", domain.ErrSpawnFailed, codes.Internal},
}

// toStatus converts a backend error into a gRPC status error and sets the
// reason trailer on ctx.
func toStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			_ = grpc.SetTrailer(ctx, metadata.Pairs(reasonKey, r.token))
			return status.Error(r.code, err.Error())
		}
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Unknown, err.Error())
}

// fromStatus converts the error of a call to method back into a domain
// error. Transport failures become domain.ErrLostConnection.
func fromStatus(method string, err error, trailer metadata.MD) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return zerr.With(zerr.Wrap(err, "call failed"), "rpc.method", method)
	}

	var sentinel error
	if tokens := trailer.Get(reasonKey); len(tokens) > 0 {
		for _, r := range reasons {
			if r.token == tokens[0] {
				sentinel = r.err
				break
			}
		}
	}
	if sentinel == nil {
		switch st.Code() {
		case codes.Unavailable, codes.DeadlineExceeded:
			sentinel = domain.ErrLostConnection
		case codes.Canceled:
			sentinel = context.Canceled
		}
	}

	if sentinel == nil {
		return zerr.With(zerr.Wrap(errors.New(st.Message()), "call failed"), "rpc.method", method)
	}
	return zerr.With(zerr.Wrap(sentinel, st.Message()), "rpc.method", method)
}
