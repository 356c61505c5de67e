package rpc

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net"
	"os"
	"time"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// keyHeader carries the security key on every call after the handshake.
const keyHeader = "visit-key"

// ServerOptions configure a Server.
type ServerOptions struct {
	Role        string
	SecurityKey string
	// IdleTimeout stops the server after this long without calls. Zero
	// disables it.
	IdleTimeout time.Duration
	Logger      ports.Logger
}

// Server exposes a Backend over gRPC.
type Server struct {
	backend     Backend
	role        string
	securityKey string
	lifecycle   *Lifecycle
	logger      ports.Logger
	grpcServer  *grpc.Server
}

// NewServer creates a server for backend.
func NewServer(backend Backend, opts ServerOptions) *Server {
	s := &Server{
		backend:     backend,
		role:        opts.Role,
		securityKey: opts.SecurityKey,
		lifecycle:   NewLifecycle(opts.IdleTimeout),
		logger:      opts.Logger,
	}
	if s.role == "" {
		s.role = domain.RoleEngine
	}
	s.grpcServer = grpc.NewServer(
		grpc.ForceServerCodec(Codec{}),
		grpc.UnaryInterceptor(s.authorize),
	)
	s.grpcServer.RegisterService(&serviceDesc, s)
	return s
}

// Lifecycle returns the idle clock of the server.
func (s *Server) Lifecycle() *Lifecycle {
	return s.lifecycle
}

// Serve answers calls on lis until ctx is done, the server idles out, or
// the listener fails.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.grpcServer.GracefulStop()
		return ctx.Err()
	case <-s.lifecycle.Done():
		if s.logger != nil {
			s.logger.Info(fmt.Sprintf("%s on %s idle for %s, shutting down", s.role, lis.Addr(), s.lifecycle.timeout))
		}
		s.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		if err != nil {
			return zerr.Wrap(err, "rpc server failed")
		}
		return nil
	}
}

// Stop closes every connection immediately.
func (s *Server) Stop() {
	s.lifecycle.Shutdown()
	s.grpcServer.Stop()
}

func (s *Server) handshake(_ context.Context, req *HandshakeRequest) (*HandshakeResponse, error) {
	if req.Version != domain.ProtocolVersion {
		err := zerr.Wrap(domain.ErrIncompatibleVersion, "handshake refused")
		err = zerr.With(err, "client.version", req.Version)
		return nil, zerr.With(err, "server.version", domain.ProtocolVersion)
	}
	if !s.keyMatches(req.SecurityKey) {
		return nil, zerr.Wrap(domain.ErrIncompatibleSecurityToken, "handshake refused")
	}
	return &HandshakeResponse{
		Version: domain.ProtocolVersion,
		Role:    s.role,
		PID:     os.Getpid(),
	}, nil
}

func (s *Server) keyMatches(key string) bool {
	return subtle.ConstantTimeCompare([]byte(key), []byte(s.securityKey)) == 1
}

// authorize restarts the idle clock and rejects calls that do not carry the
// security key. The handshake checks the key in its body.
func (s *Server) authorize(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	s.lifecycle.Touch()
	if info.FullMethod == fullMethod(MethodHandshake) {
		return handler(ctx, req)
	}
	md, _ := metadata.FromIncomingContext(ctx)
	keys := md.Get(keyHeader)
	if len(keys) == 0 || !s.keyMatches(keys[0]) {
		return nil, toStatus(ctx, zerr.With(zerr.Wrap(domain.ErrIncompatibleSecurityToken, "call refused"), "rpc.method", info.FullMethod))
	}
	return handler(ctx, req)
}
