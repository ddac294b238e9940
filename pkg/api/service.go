package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dosing.v1.DosingService"

// DosingServiceServer is the server API for the dosing service
type DosingServiceServer interface {
	RegisterTank(context.Context, *RegisterTankRequest) (*RegisterTankResponse, error)
	RegisterFertilizer(context.Context, *RegisterFertilizerRequest) (*RegisterFertilizerResponse, error)
	RecordDose(context.Context, *RecordDoseRequest) (*RecordDoseResponse, error)
	GetDoseHistory(context.Context, *GetDoseHistoryRequest) (*GetDoseHistoryResponse, error)
	AnalyzeTank(context.Context, *AnalyzeTankRequest) (*AnalyzeTankResponse, error)
	ProjectTank(context.Context, *ProjectTankRequest) (*ProjectionResponse, error)
	ProjectNutrients(context.Context, *ProjectNutrientsRequest) (*ProjectionResponse, error)
}

// UnimplementedDosingServiceServer can be embedded to stay forward compatible
type UnimplementedDosingServiceServer struct{}

func (UnimplementedDosingServiceServer) RegisterTank(context.Context, *RegisterTankRequest) (*RegisterTankResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterTank not implemented")
}
func (UnimplementedDosingServiceServer) RegisterFertilizer(context.Context, *RegisterFertilizerRequest) (*RegisterFertilizerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterFertilizer not implemented")
}
func (UnimplementedDosingServiceServer) RecordDose(context.Context, *RecordDoseRequest) (*RecordDoseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordDose not implemented")
}
func (UnimplementedDosingServiceServer) GetDoseHistory(context.Context, *GetDoseHistoryRequest) (*GetDoseHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDoseHistory not implemented")
}
func (UnimplementedDosingServiceServer) AnalyzeTank(context.Context, *AnalyzeTankRequest) (*AnalyzeTankResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AnalyzeTank not implemented")
}
func (UnimplementedDosingServiceServer) ProjectTank(context.Context, *ProjectTankRequest) (*ProjectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProjectTank not implemented")
}
func (UnimplementedDosingServiceServer) ProjectNutrients(context.Context, *ProjectNutrientsRequest) (*ProjectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProjectNutrients not implemented")
}

// unary adapts a typed server method to a grpc.MethodHandler
func unary[Req, Resp any](method string, call func(DosingServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DosingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(DosingServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes dosing.v1.DosingService for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DosingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterTank", Handler: unary("RegisterTank", DosingServiceServer.RegisterTank)},
		{MethodName: "RegisterFertilizer", Handler: unary("RegisterFertilizer", DosingServiceServer.RegisterFertilizer)},
		{MethodName: "RecordDose", Handler: unary("RecordDose", DosingServiceServer.RecordDose)},
		{MethodName: "GetDoseHistory", Handler: unary("GetDoseHistory", DosingServiceServer.GetDoseHistory)},
		{MethodName: "AnalyzeTank", Handler: unary("AnalyzeTank", DosingServiceServer.AnalyzeTank)},
		{MethodName: "ProjectTank", Handler: unary("ProjectTank", DosingServiceServer.ProjectTank)},
		{MethodName: "ProjectNutrients", Handler: unary("ProjectNutrients", DosingServiceServer.ProjectNutrients)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dosing/v1/dosing.json",
}

// RegisterDosingServiceServer registers srv on s
func RegisterDosingServiceServer(s grpc.ServiceRegistrar, srv DosingServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// DosingServiceClient is the client API for the dosing service
type DosingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDosingServiceClient creates a client over an established connection
func NewDosingServiceClient(cc grpc.ClientConnInterface) *DosingServiceClient {
	return &DosingServiceClient{cc: cc}
}

func (c *DosingServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *DosingServiceClient) RegisterTank(ctx context.Context, in *RegisterTankRequest, opts ...grpc.CallOption) (*RegisterTankResponse, error) {
	out := new(RegisterTankResponse)
	if err := c.invoke(ctx, "RegisterTank", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DosingServiceClient) RegisterFertilizer(ctx context.Context, in *RegisterFertilizerRequest, opts ...grpc.CallOption) (*RegisterFertilizerResponse, error) {
	out := new(RegisterFertilizerResponse)
	if err := c.invoke(ctx, "RegisterFertilizer", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DosingServiceClient) RecordDose(ctx context.Context, in *RecordDoseRequest, opts ...grpc.CallOption) (*RecordDoseResponse, error) {
	out := new(RecordDoseResponse)
	if err := c.invoke(ctx, "RecordDose", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DosingServiceClient) GetDoseHistory(ctx context.Context, in *GetDoseHistoryRequest, opts ...grpc.CallOption) (*GetDoseHistoryResponse, error) {
	out := new(GetDoseHistoryResponse)
	if err := c.invoke(ctx, "GetDoseHistory", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DosingServiceClient) AnalyzeTank(ctx context.Context, in *AnalyzeTankRequest, opts ...grpc.CallOption) (*AnalyzeTankResponse, error) {
	out := new(AnalyzeTankResponse)
	if err := c.invoke(ctx, "AnalyzeTank", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DosingServiceClient) ProjectTank(ctx context.Context, in *ProjectTankRequest, opts ...grpc.CallOption) (*ProjectionResponse, error) {
	out := new(ProjectionResponse)
	if err := c.invoke(ctx, "ProjectTank", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DosingServiceClient) ProjectNutrients(ctx context.Context, in *ProjectNutrientsRequest, opts ...grpc.CallOption) (*ProjectionResponse, error) {
	out := new(ProjectionResponse)
	if err := c.invoke(ctx, "ProjectNutrients", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
