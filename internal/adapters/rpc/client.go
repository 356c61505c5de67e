package rpc

import (
	"context"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Client implements ports.EngineProxy and ports.MetaDataProxy.
type Client struct {
	conn        *grpc.ClientConn
	addr        string
	securityKey string
}

// Dial prepares a client for the server at addr. The connection is made
// lazily on the first call; Handshake checks that the server is there.
func Dial(addr, securityKey string, opts ...grpc.DialOption) (*Client, error) {
	c := &Client{addr: addr, securityKey: securityKey}
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})),
		grpc.WithUnaryInterceptor(c.attachKey),
	}, opts...)

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "rpc client creation failed"), "addr", addr)
	}
	c.conn = conn
	return c, nil
}

// Addr returns the address the client talks to.
func (c *Client) Addr() string { return c.addr }

func (c *Client) attachKey(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	ctx = metadata.AppendToOutgoingContext(ctx, keyHeader, c.securityKey)
	return invoker(ctx, method, req, reply, cc, opts...)
}

func invoke[Resp any](ctx context.Context, c *Client, method string, req any) (*Resp, error) {
	resp := new(Resp)
	var trailer metadata.MD
	err := c.conn.Invoke(ctx, fullMethod(method), req, resp, grpc.Trailer(&trailer))
	if err != nil {
		return nil, fromStatus(method, err, trailer)
	}
	return resp, nil
}

func (c *Client) call(ctx context.Context, method string, req any) error {
	_, err := invoke[Empty](ctx, c, method, req)
	return err
}

// Handshake checks the protocol version and the security key.
func (c *Client) Handshake(ctx context.Context) (*HandshakeResponse, error) {
	resp, err := invoke[HandshakeResponse](ctx, c, MethodHandshake, &HandshakeRequest{
		Version:     domain.ProtocolVersion,
		SecurityKey: c.securityKey,
	})
	if err != nil {
		return nil, err
	}
	if resp.Version != domain.ProtocolVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrIncompatibleVersion, "handshake refused"), "server.version", resp.Version)
	}
	return resp, nil
}

// SendKeepAlive implements ports.EngineService.
func (c *Client) SendKeepAlive(ctx context.Context) error {
	return c.call(ctx, MethodKeepAlive, &Empty{})
}

// LaunchProcess implements ports.ProcessLauncher.
func (c *Client) LaunchProcess(ctx context.Context, req domain.ProcessLaunchRequest) error {
	return c.call(ctx, MethodLaunchProcess, &req)
}

// GetEngineProperties implements ports.EngineService.
func (c *Client) GetEngineProperties(ctx context.Context) (domain.EngineProperties, error) {
	resp, err := invoke[domain.EngineProperties](ctx, c, MethodGetEngineProperties, &Empty{})
	if err != nil {
		return domain.EngineProperties{}, err
	}
	return *resp, nil
}

// SetGlobalSettings implements ports.EngineService.
func (c *Client) SetGlobalSettings(ctx context.Context, settings domain.GlobalSettings) error {
	return c.call(ctx, MethodSetGlobalSettings, &settings)
}

// OpenDatabase implements ports.EngineService.
func (c *Client) OpenDatabase(ctx context.Context, req domain.OpenDatabaseRequest) error {
	return c.call(ctx, MethodOpenDatabase, &req)
}

// ApplyOperator implements ports.EngineService.
func (c *Client) ApplyOperator(ctx context.Context, req domain.ApplyOperatorRequest) error {
	return c.call(ctx, MethodApplyOperator, &req)
}

// MakePlot implements ports.EngineService.
func (c *Client) MakePlot(ctx context.Context, req domain.MakePlotRequest) (int, error) {
	resp, err := invoke[NetworkResponse](ctx, c, MethodMakePlot, &req)
	if err != nil {
		return -1, err
	}
	return resp.NetworkID, nil
}

// Execute implements ports.EngineService.
func (c *Client) Execute(ctx context.Context, networkID int) (domain.ExecuteResult, error) {
	resp, err := invoke[domain.ExecuteResult](ctx, c, MethodExecute, &NetworkRequest{NetworkID: networkID})
	if err != nil {
		return domain.ExecuteResult{}, err
	}
	return *resp, nil
}

// Render implements ports.EngineService.
func (c *Client) Render(ctx context.Context, req domain.RenderRequest) (domain.RenderResult, error) {
	resp, err := invoke[domain.RenderResult](ctx, c, MethodRender, &req)
	if err != nil {
		return domain.RenderResult{}, err
	}
	return *resp, nil
}

// Pick implements ports.EngineService.
func (c *Client) Pick(ctx context.Context, req domain.PickRequest) (domain.PickResult, error) {
	resp, err := invoke[domain.PickResult](ctx, c, MethodPick, &req)
	if err != nil {
		return domain.PickResult{}, err
	}
	return *resp, nil
}

// Query implements ports.EngineService.
func (c *Client) Query(ctx context.Context, req domain.QueryRequest) (domain.QueryResult, error) {
	resp, err := invoke[domain.QueryResult](ctx, c, MethodQuery, &req)
	if err != nil {
		return domain.QueryResult{}, err
	}
	return *resp, nil
}

// ReleaseData implements ports.EngineService.
func (c *Client) ReleaseData(ctx context.Context, networkID int) error {
	return c.call(ctx, MethodReleaseData, &NetworkRequest{NetworkID: networkID})
}

// ClearCache implements ports.EngineService.
func (c *Client) ClearCache(ctx context.Context, req domain.ClearCacheRequest) error {
	return c.call(ctx, MethodClearCache, &req)
}

// Interrupt implements ports.EngineService.
func (c *Client) Interrupt(ctx context.Context) error {
	return c.call(ctx, MethodInterrupt, &Empty{})
}

// GetFileList implements ports.MetaDataService.
func (c *Client) GetFileList(ctx context.Context, req domain.FileListRequest) (domain.FileList, error) {
	resp, err := invoke[domain.FileList](ctx, c, MethodGetFileList, &req)
	if err != nil {
		return domain.FileList{}, err
	}
	return *resp, nil
}

// ChangeDirectory implements ports.MetaDataService.
func (c *Client) ChangeDirectory(ctx context.Context, dir string) error {
	return c.call(ctx, MethodChangeDirectory, &PathRequest{Path: dir})
}

// GetDirectory implements ports.MetaDataService.
func (c *Client) GetDirectory(ctx context.Context) (string, error) {
	resp, err := invoke[PathResponse](ctx, c, MethodGetDirectory, &Empty{})
	if err != nil {
		return "", err
	}
	return resp.Path, nil
}

// ExpandPath implements ports.MetaDataService.
func (c *Client) ExpandPath(ctx context.Context, path string) (string, error) {
	resp, err := invoke[PathResponse](ctx, c, MethodExpandPath, &PathRequest{Path: path})
	if err != nil {
		return "", err
	}
	return resp.Path, nil
}

// GetSeparator implements ports.MetaDataService.
func (c *Client) GetSeparator(ctx context.Context) (string, error) {
	resp, err := invoke[PathResponse](ctx, c, MethodGetSeparator, &Empty{})
	if err != nil {
		return "", err
	}
	return resp.Path, nil
}

// GetMetaData implements ports.MetaDataService.
func (c *Client) GetMetaData(ctx context.Context, file string, timeState int) (*domain.Metadata, error) {
	resp, err := invoke[MetaDataResponse](ctx, c, MethodGetMetaData, &FileStateRequest{File: file, TimeState: timeState})
	if err != nil {
		return nil, err
	}
	return resp.MetaData, nil
}

// GetSIL implements ports.MetaDataService.
func (c *Client) GetSIL(ctx context.Context, file string, timeState int) (*domain.SIL, error) {
	resp, err := invoke[SILResponse](ctx, c, MethodGetSIL, &FileStateRequest{File: file, TimeState: timeState})
	if err != nil {
		return nil, err
	}
	return resp.SIL, nil
}

// CloseDatabase implements ports.MetaDataService.
func (c *Client) CloseDatabase(ctx context.Context, file string) error {
	return c.call(ctx, MethodCloseDatabase, &PathRequest{Path: file})
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
