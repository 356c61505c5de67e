package rpc

import (
	"context"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "visit.v1.Server"

// Method names.
const (
	MethodHandshake           = "Handshake"
	MethodKeepAlive           = "KeepAlive"
	MethodLaunchProcess       = "LaunchProcess"
	MethodGetEngineProperties = "GetEngineProperties"
	MethodSetGlobalSettings   = "SetGlobalSettings"
	MethodOpenDatabase        = "OpenDatabase"
	MethodApplyOperator       = "ApplyOperator"
	MethodMakePlot            = "MakePlot"
	MethodExecute             = "Execute"
	MethodRender              = "Render"
	MethodPick                = "Pick"
	MethodQuery               = "Query"
	MethodReleaseData         = "ReleaseData"
	MethodClearCache          = "ClearCache"
	MethodInterrupt           = "Interrupt"
	MethodGetFileList         = "GetFileList"
	MethodChangeDirectory     = "ChangeDirectory"
	MethodGetDirectory        = "GetDirectory"
	MethodExpandPath          = "ExpandPath"
	MethodGetSeparator        = "GetSeparator"
	MethodGetMetaData         = "GetMetaData"
	MethodGetSIL              = "GetSIL"
	MethodCloseDatabase       = "CloseDatabase"
)

// Backend answers the calls of both server roles.
type Backend interface {
	ports.EngineService
	ports.MetaDataService
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// serverAPI is the handler type checked by grpc.Server.RegisterService.
type serverAPI interface {
	handshake(ctx context.Context, req *HandshakeRequest) (*HandshakeResponse, error)
}

func unary[Req, Resp any](name string, fn func(ctx context.Context, s *Server, req *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			req := new(Req)
			if err := dec(req); err != nil {
				return nil, err
			}
			s := srv.(*Server)
			handler := func(ctx context.Context, r any) (any, error) {
				resp, err := fn(ctx, s, r.(*Req))
				if err != nil {
					return nil, toStatus(ctx, err)
				}
				return resp, nil
			}
			if interceptor == nil {
				return handler(ctx, req)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			return interceptor(ctx, req, info, handler)
		},
	}
}

func empty(err error) (*Empty, error) {
	if err != nil {
		return nil, err
	}
	return &Empty{}, nil
}

func result[T any](v T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return &v, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*serverAPI)(nil),
	Metadata:    "visit/v1/server.json",
	Methods: []grpc.MethodDesc{
		unary(MethodHandshake, func(ctx context.Context, s *Server, req *HandshakeRequest) (*HandshakeResponse, error) {
			return s.handshake(ctx, req)
		}),
		unary(MethodKeepAlive, func(ctx context.Context, s *Server, _ *Empty) (*Empty, error) {
			return empty(s.backend.SendKeepAlive(ctx))
		}),
		unary(MethodLaunchProcess, func(ctx context.Context, s *Server, req *domain.ProcessLaunchRequest) (*Empty, error) {
			return empty(s.backend.LaunchProcess(ctx, *req))
		}),
		unary(MethodGetEngineProperties, func(ctx context.Context, s *Server, _ *Empty) (*domain.EngineProperties, error) {
			return result(s.backend.GetEngineProperties(ctx))
		}),
		unary(MethodSetGlobalSettings, func(ctx context.Context, s *Server, req *domain.GlobalSettings) (*Empty, error) {
			return empty(s.backend.SetGlobalSettings(ctx, *req))
		}),
		unary(MethodOpenDatabase, func(ctx context.Context, s *Server, req *domain.OpenDatabaseRequest) (*Empty, error) {
			return empty(s.backend.OpenDatabase(ctx, *req))
		}),
		unary(MethodApplyOperator, func(ctx context.Context, s *Server, req *domain.ApplyOperatorRequest) (*Empty, error) {
			return empty(s.backend.ApplyOperator(ctx, *req))
		}),
		unary(MethodMakePlot, func(ctx context.Context, s *Server, req *domain.MakePlotRequest) (*NetworkResponse, error) {
			id, err := s.backend.MakePlot(ctx, *req)
			return result(NetworkResponse{NetworkID: id}, err)
		}),
		unary(MethodExecute, func(ctx context.Context, s *Server, req *NetworkRequest) (*domain.ExecuteResult, error) {
			return result(s.backend.Execute(ctx, req.NetworkID))
		}),
		unary(MethodRender, func(ctx context.Context, s *Server, req *domain.RenderRequest) (*domain.RenderResult, error) {
			return result(s.backend.Render(ctx, *req))
		}),
		unary(MethodPick, func(ctx context.Context, s *Server, req *domain.PickRequest) (*domain.PickResult, error) {
			return result(s.backend.Pick(ctx, *req))
		}),
		unary(MethodQuery, func(ctx context.Context, s *Server, req *domain.QueryRequest) (*domain.QueryResult, error) {
			return result(s.backend.Query(ctx, *req))
		}),
		unary(MethodReleaseData, func(ctx context.Context, s *Server, req *NetworkRequest) (*Empty, error) {
			return empty(s.backend.ReleaseData(ctx, req.NetworkID))
		}),
		unary(MethodClearCache, func(ctx context.Context, s *Server, req *domain.ClearCacheRequest) (*Empty, error) {
			return empty(s.backend.ClearCache(ctx, *req))
		}),
		unary(MethodInterrupt, func(ctx context.Context, s *Server, _ *Empty) (*Empty, error) {
			return empty(s.backend.Interrupt(ctx))
		}),
		unary(MethodGetFileList, func(ctx context.Context, s *Server, req *domain.FileListRequest) (*domain.FileList, error) {
			return result(s.backend.GetFileList(ctx, *req))
		}),
		unary(MethodChangeDirectory, func(ctx context.Context, s *Server, req *PathRequest) (*Empty, error) {
			return empty(s.backend.ChangeDirectory(ctx, req.Path))
		}),
		unary(MethodGetDirectory, func(ctx context.Context, s *Server, _ *Empty) (*PathResponse, error) {
			dir, err := s.backend.GetDirectory(ctx)
			return result(PathResponse{Path: dir}, err)
		}),
		unary(MethodExpandPath, func(ctx context.Context, s *Server, req *PathRequest) (*PathResponse, error) {
			p, err := s.backend.ExpandPath(ctx, req.Path)
			return result(PathResponse{Path: p}, err)
		}),
		unary(MethodGetSeparator, func(ctx context.Context, s *Server, _ *Empty) (*PathResponse, error) {
			sep, err := s.backend.GetSeparator(ctx)
			return result(PathResponse{Path: sep}, err)
		}),
		unary(MethodGetMetaData, func(ctx context.Context, s *Server, req *FileStateRequest) (*MetaDataResponse, error) {
			md, err := s.backend.GetMetaData(ctx, req.File, req.TimeState)
			return result(MetaDataResponse{MetaData: md}, err)
		}),
		unary(MethodGetSIL, func(ctx context.Context, s *Server, req *FileStateRequest) (*SILResponse, error) {
			sil, err := s.backend.GetSIL(ctx, req.File, req.TimeState)
			return result(SILResponse{SIL: sil}, err)
		}),
		unary(MethodCloseDatabase, func(ctx context.Context, s *Server, req *PathRequest) (*Empty, error) {
			return empty(s.backend.CloseDatabase(ctx, req.Path))
		}),
	},
}
