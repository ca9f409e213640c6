package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const serviceName = "cardfraud.CardFraudService"

// CardFraudServiceServer - gRPC-интерфейс card-service. Сообщения строятся из
// well-known типов protobuf, поэтому сгенерированный код не нужен.
type CardFraudServiceServer interface {
	RecordOperation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DetectFraud(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GetCard(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListAlerts(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
}

func RegisterCardFraudServiceServer(s grpc.ServiceRegistrar, srv CardFraudServiceServer) {
	s.RegisterService(&cardFraudServiceDesc, srv)
}

var cardFraudServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CardFraudServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RecordOperation", Handler: recordOperationHandler},
		{MethodName: "DetectFraud", Handler: detectFraudHandler},
		{MethodName: "GetCard", Handler: getCardHandler},
		{MethodName: "ListAlerts", Handler: listAlertsHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func recordOperationHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardFraudServiceServer).RecordOperation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/RecordOperation"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CardFraudServiceServer).RecordOperation(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func detectFraudHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardFraudServiceServer).DetectFraud(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/DetectFraud"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CardFraudServiceServer).DetectFraud(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func getCardHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardFraudServiceServer).GetCard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetCard"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CardFraudServiceServer).GetCard(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listAlertsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardFraudServiceServer).ListAlerts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ListAlerts"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CardFraudServiceServer).ListAlerts(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// CardFraudServiceClient - клиент для CardFraudService
type CardFraudServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCardFraudServiceClient(cc grpc.ClientConnInterface) *CardFraudServiceClient {
	return &CardFraudServiceClient{cc: cc}
}

func (c *CardFraudServiceClient) RecordOperation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/RecordOperation", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CardFraudServiceClient) DetectFraud(ctx context.Context, cardID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/DetectFraud", wrapperspb.String(cardID), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CardFraudServiceClient) GetCard(ctx context.Context, cardID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/GetCard", wrapperspb.String(cardID), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CardFraudServiceClient) ListAlerts(ctx context.Context, cardID string, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/ListAlerts", wrapperspb.String(cardID), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
