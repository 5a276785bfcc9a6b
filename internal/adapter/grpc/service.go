package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified name of the net-worth service
const ServiceName = "networth.v1.NetWorthService"

// NetWorthServiceServer is the server API for NetWorthService
type NetWorthServiceServer interface {
	CreateAsset(context.Context, *CreateAssetRequest) (*CreateAssetResponse, error)
	RenameAsset(context.Context, *RenameAssetRequest) (*RenameAssetResponse, error)
	DeleteAsset(context.Context, *DeleteAssetRequest) (*DeleteAssetResponse, error)
	ListAssets(context.Context, *ListAssetsRequest) (*ListAssetsResponse, error)
	RecordValue(context.Context, *RecordValueRequest) (*RecordValueResponse, error)
	UpdateValue(context.Context, *UpdateValueRequest) (*UpdateValueResponse, error)
	DeleteValue(context.Context, *DeleteValueRequest) (*DeleteValueResponse, error)
	GetValueHistory(context.Context, *GetValueHistoryRequest) (*GetValueHistoryResponse, error)
	GetNetWorth(context.Context, *GetNetWorthRequest) (*GetNetWorthResponse, error)
	GetNetWorthChart(context.Context, *GetNetWorthChartRequest) (*GetNetWorthChartResponse, error)
	GetNetWorthCharts(context.Context, *GetNetWorthChartsRequest) (*GetNetWorthChartsResponse, error)
	GetAssetChart(context.Context, *GetAssetChartRequest) (*GetAssetChartResponse, error)
	GetAllocation(context.Context, *GetAllocationRequest) (*GetAllocationResponse, error)
	GetInsights(context.Context, *GetInsightsRequest) (*GetInsightsResponse, error)
	RefreshWidget(context.Context, *RefreshWidgetRequest) (*WidgetSnapshotResponse, error)
	GetWidgetSnapshot(context.Context, *GetWidgetSnapshotRequest) (*WidgetSnapshotResponse, error)
}

// ServiceDesc describes NetWorthService for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NetWorthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateAsset", Handler: unaryHandler("CreateAsset", NetWorthServiceServer.CreateAsset)},
		{MethodName: "RenameAsset", Handler: unaryHandler("RenameAsset", NetWorthServiceServer.RenameAsset)},
		{MethodName: "DeleteAsset", Handler: unaryHandler("DeleteAsset", NetWorthServiceServer.DeleteAsset)},
		{MethodName: "ListAssets", Handler: unaryHandler("ListAssets", NetWorthServiceServer.ListAssets)},
		{MethodName: "RecordValue", Handler: unaryHandler("RecordValue", NetWorthServiceServer.RecordValue)},
		{MethodName: "UpdateValue", Handler: unaryHandler("UpdateValue", NetWorthServiceServer.UpdateValue)},
		{MethodName: "DeleteValue", Handler: unaryHandler("DeleteValue", NetWorthServiceServer.DeleteValue)},
		{MethodName: "GetValueHistory", Handler: unaryHandler("GetValueHistory", NetWorthServiceServer.GetValueHistory)},
		{MethodName: "GetNetWorth", Handler: unaryHandler("GetNetWorth", NetWorthServiceServer.GetNetWorth)},
		{MethodName: "GetNetWorthChart", Handler: unaryHandler("GetNetWorthChart", NetWorthServiceServer.GetNetWorthChart)},
		{MethodName: "GetNetWorthCharts", Handler: unaryHandler("GetNetWorthCharts", NetWorthServiceServer.GetNetWorthCharts)},
		{MethodName: "GetAssetChart", Handler: unaryHandler("GetAssetChart", NetWorthServiceServer.GetAssetChart)},
		{MethodName: "GetAllocation", Handler: unaryHandler("GetAllocation", NetWorthServiceServer.GetAllocation)},
		{MethodName: "GetInsights", Handler: unaryHandler("GetInsights", NetWorthServiceServer.GetInsights)},
		{MethodName: "RefreshWidget", Handler: unaryHandler("RefreshWidget", NetWorthServiceServer.RefreshWidget)},
		{MethodName: "GetWidgetSnapshot", Handler: unaryHandler("GetWidgetSnapshot", NetWorthServiceServer.GetWidgetSnapshot)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "networth/v1/networth.json",
}

// RegisterNetWorthServiceServer registers srv with s
func RegisterNetWorthServiceServer(s grpc.ServiceRegistrar, srv NetWorthServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryHandler adapts a typed service method to a grpc.MethodHandler
func unaryHandler[Req, Resp any](
	method string,
	call func(NetWorthServiceServer, context.Context, *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(NetWorthServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client is the client API for NetWorthService.
// Calls are sent with the JSON content-subtype.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a client over an established connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.conn.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAsset(ctx context.Context, in *CreateAssetRequest, opts ...grpc.CallOption) (*CreateAssetResponse, error) {
	return invoke[CreateAssetResponse](ctx, c, "CreateAsset", in, opts)
}

func (c *Client) RenameAsset(ctx context.Context, in *RenameAssetRequest, opts ...grpc.CallOption) (*RenameAssetResponse, error) {
	return invoke[RenameAssetResponse](ctx, c, "RenameAsset", in, opts)
}

func (c *Client) DeleteAsset(ctx context.Context, in *DeleteAssetRequest, opts ...grpc.CallOption) (*DeleteAssetResponse, error) {
	return invoke[DeleteAssetResponse](ctx, c, "DeleteAsset", in, opts)
}

func (c *Client) ListAssets(ctx context.Context, in *ListAssetsRequest, opts ...grpc.CallOption) (*ListAssetsResponse, error) {
	return invoke[ListAssetsResponse](ctx, c, "ListAssets", in, opts)
}

func (c *Client) RecordValue(ctx context.Context, in *RecordValueRequest, opts ...grpc.CallOption) (*RecordValueResponse, error) {
	return invoke[RecordValueResponse](ctx, c, "RecordValue", in, opts)
}

func (c *Client) UpdateValue(ctx context.Context, in *UpdateValueRequest, opts ...grpc.CallOption) (*UpdateValueResponse, error) {
	return invoke[UpdateValueResponse](ctx, c, "UpdateValue", in, opts)
}

func (c *Client) DeleteValue(ctx context.Context, in *DeleteValueRequest, opts ...grpc.CallOption) (*DeleteValueResponse, error) {
	return invoke[DeleteValueResponse](ctx, c, "DeleteValue", in, opts)
}

func (c *Client) GetValueHistory(ctx context.Context, in *GetValueHistoryRequest, opts ...grpc.CallOption) (*GetValueHistoryResponse, error) {
	return invoke[GetValueHistoryResponse](ctx, c, "GetValueHistory", in, opts)
}

func (c *Client) GetNetWorth(ctx context.Context, in *GetNetWorthRequest, opts ...grpc.CallOption) (*GetNetWorthResponse, error) {
	return invoke[GetNetWorthResponse](ctx, c, "GetNetWorth", in, opts)
}

func (c *Client) GetNetWorthChart(ctx context.Context, in *GetNetWorthChartRequest, opts ...grpc.CallOption) (*GetNetWorthChartResponse, error) {
	return invoke[GetNetWorthChartResponse](ctx, c, "GetNetWorthChart", in, opts)
}

func (c *Client) GetNetWorthCharts(ctx context.Context, in *GetNetWorthChartsRequest, opts ...grpc.CallOption) (*GetNetWorthChartsResponse, error) {
	return invoke[GetNetWorthChartsResponse](ctx, c, "GetNetWorthCharts", in, opts)
}

func (c *Client) GetAssetChart(ctx context.Context, in *GetAssetChartRequest, opts ...grpc.CallOption) (*GetAssetChartResponse, error) {
	return invoke[GetAssetChartResponse](ctx, c, "GetAssetChart", in, opts)
}

func (c *Client) GetAllocation(ctx context.Context, in *GetAllocationRequest, opts ...grpc.CallOption) (*GetAllocationResponse, error) {
	return invoke[GetAllocationResponse](ctx, c, "GetAllocation", in, opts)
}

func (c *Client) GetInsights(ctx context.Context, in *GetInsightsRequest, opts ...grpc.CallOption) (*GetInsightsResponse, error) {
	return invoke[GetInsightsResponse](ctx, c, "GetInsights", in, opts)
}

func (c *Client) RefreshWidget(ctx context.Context, in *RefreshWidgetRequest, opts ...grpc.CallOption) (*WidgetSnapshotResponse, error) {
	return invoke[WidgetSnapshotResponse](ctx, c, "RefreshWidget", in, opts)
}

func (c *Client) GetWidgetSnapshot(ctx context.Context, in *GetWidgetSnapshotRequest, opts ...grpc.CallOption) (*WidgetSnapshotResponse, error) {
	return invoke[WidgetSnapshotResponse](ctx, c, "GetWidgetSnapshot", in, opts)
}
