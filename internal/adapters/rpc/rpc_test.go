package rpc_test

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/visit/internal/adapters/rpc"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

const testKey = "0123456789abcdef"

var (
	_ ports.EngineProxy   = (*rpc.Client)(nil)
	_ ports.MetaDataProxy = (*rpc.Client)(nil)
)

// backend answers a handful of calls; everything else panics through the
// nil embedded interface.
type backend struct {
	rpc.Backend
	keepAlives atomic.Int32
	executeErr error
}

func (b *backend) SendKeepAlive(context.Context) error {
	b.keepAlives.Add(1)
	return nil
}

func (b *backend) GetEngineProperties(context.Context) (domain.EngineProperties, error) {
	return domain.EngineProperties{Host: "hpc", PID: 42, NumProcessors: 8, Role: domain.RoleEngine}, nil
}

func (b *backend) Execute(_ context.Context, id int) (domain.ExecuteResult, error) {
	if b.executeErr != nil {
		return domain.ExecuteResult{}, b.executeErr
	}
	return domain.ExecuteResult{
		NetworkID:      id,
		Contract:       domain.NewContract("a", []int{0, 1}),
		UsedHistograms: true,
		NumRows:        10,
	}, nil
}

func (b *backend) Render(_ context.Context, req domain.RenderRequest) (domain.RenderResult, error) {
	return domain.RenderResult{
		WindowID:       req.WindowID,
		VisibleDomains: map[int][]int{3: {0, 2}},
		View:           req.View,
	}, nil
}

func (b *backend) GetMetaData(_ context.Context, file string, state int) (*domain.Metadata, error) {
	if file == "missing.csv" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidFile, "open failed"), "file", file)
	}
	return &domain.Metadata{FullName: file, NumStates: state + 1, Variables: []domain.Variable{{Name: "a"}}}, nil
}

func (b *backend) GetDirectory(context.Context) (string, error) {
	return "/data", nil
}

func serve(t *testing.T, b *backend) (*rpc.Server, *bufconn.Listener) {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := rpc.NewServer(b, rpc.ServerOptions{Role: domain.RoleEngine, SecurityKey: testKey})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return srv, lis
}

func dial(t *testing.T, lis *bufconn.Listener, key string) *rpc.Client {
	t.Helper()
	c, err := rpc.Dial("passthrough:///bufnet", key, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestHandshake(t *testing.T) {
	_, lis := serve(t, &backend{})
	c := dial(t, lis, testKey)

	resp, err := c.Handshake(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ProtocolVersion, resp.Version)
	assert.Equal(t, domain.RoleEngine, resp.Role)
	assert.Positive(t, resp.PID)
}

func TestWrongKeyIsRefused(t *testing.T) {
	b := &backend{}
	_, lis := serve(t, b)
	c := dial(t, lis, "not-the-key")

	_, err := c.Handshake(context.Background())
	require.ErrorIs(t, err, domain.ErrIncompatibleSecurityToken)

	err = c.SendKeepAlive(context.Background())
	require.ErrorIs(t, err, domain.ErrIncompatibleSecurityToken)
	assert.Zero(t, b.keepAlives.Load())
}

func TestCallsRoundTrip(t *testing.T) {
	b := &backend{}
	_, lis := serve(t, b)
	c := dial(t, lis, testKey)
	ctx := context.Background()

	require.NoError(t, c.SendKeepAlive(ctx))
	assert.Equal(t, int32(1), b.keepAlives.Load())

	props, err := c.GetEngineProperties(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, props.PID)
	assert.Equal(t, 8, props.NumProcessors)

	res, err := c.Execute(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, res.NetworkID)
	require.NotNil(t, res.Contract)
	assert.Equal(t, []int{0, 1}, res.Contract.Domains)
	assert.True(t, res.UsedHistograms)

	view := domain.DefaultViewInfo()
	rr, err := c.Render(ctx, domain.RenderRequest{WindowID: 2, NetworkIDs: []int{3}, View: view})
	require.NoError(t, err)
	assert.Equal(t, 2, rr.WindowID)
	assert.Equal(t, map[int][]int{3: {0, 2}}, rr.VisibleDomains)
	assert.Equal(t, view, rr.View)

	md, err := c.GetMetaData(ctx, "/data/a.csv", 2)
	require.NoError(t, err)
	assert.Equal(t, "/data/a.csv", md.FullName)
	assert.Equal(t, 3, md.NumStates)

	dir, err := c.GetDirectory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/data", dir)
}

func TestErrorsMapToSentinels(t *testing.T) {
	b := &backend{}
	_, lis := serve(t, b)
	c := dial(t, lis, testKey)
	ctx := context.Background()

	_, err := c.GetMetaData(ctx, "missing.csv", 0)
	require.ErrorIs(t, err, domain.ErrInvalidFile)
	assert.Contains(t, err.Error(), "open failed")

	b.executeErr = zerr.Wrap(domain.ErrInterrupted, "stopped at domain 3")
	_, err = c.Execute(ctx, 1)
	require.ErrorIs(t, err, domain.ErrInterrupted)

	b.executeErr = errors.New("disk on fire")
	_, err = c.Execute(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.False(t, domain.IsConnectionLoss(err))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, rpc.MethodExecute, zErr.Metadata()["rpc.method"])
}

func TestStoppedServerIsLostConnection(t *testing.T) {
	srv, lis := serve(t, &backend{})
	c := dial(t, lis, testKey)
	ctx := context.Background()

	require.NoError(t, c.SendKeepAlive(ctx))
	srv.Stop()
	require.NoError(t, lis.Close())

	err := c.SendKeepAlive(ctx)
	require.ErrorIs(t, err, domain.ErrLostConnection)
	assert.True(t, domain.IsConnectionLoss(err))
}

func TestServeReturnsOnShutdown(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := rpc.NewServer(&backend{}, rpc.ServerOptions{SecurityKey: testKey})

	done := make(chan error, 1)
	go func() { done <- srv.Serve(context.Background(), lis) }()

	srv.Lifecycle().Shutdown()
	assert.NoError(t, <-done)
}

func TestCodec(t *testing.T) {
	var c rpc.Codec
	assert.Equal(t, "json", c.Name())

	data, err := c.Marshal(&rpc.FileStateRequest{File: "a.csv", TimeState: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"file":"a.csv","timeState":3}`, string(data))

	var got rpc.FileStateRequest
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, 3, got.TimeState)
}
