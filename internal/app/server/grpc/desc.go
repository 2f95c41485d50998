package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "shortlink.v1.Links"

// Full method names, as seen by interceptors.
const (
	MethodResolve       = "/" + ServiceName + "/Resolve"
	MethodCreateLink    = "/" + ServiceName + "/CreateLink"
	MethodGetLink       = "/" + ServiceName + "/GetLink"
	MethodListLinks     = "/" + ServiceName + "/ListLinks"
	MethodDeleteLink    = "/" + ServiceName + "/DeleteLink"
	MethodLinkStats     = "/" + ServiceName + "/LinkStats"
	MethodOwnerSummary  = "/" + ServiceName + "/OwnerSummary"
	MethodInternalStats = "/" + ServiceName + "/InternalStats"
)

// LinksServiceServer is the server API of shortlink.v1.Links. Messages are
// protobuf well-known types so no generated code is needed.
type LinksServiceServer interface {
	Resolve(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	CreateLink(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetLink(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListLinks(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	DeleteLink(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	LinkStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	OwnerSummary(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	InternalStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// LinksServiceDesc describes shortlink.v1.Links for grpc.Server.RegisterService.
var LinksServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LinksServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary[wrapperspb.StringValue]("Resolve", LinksServiceServer.Resolve),
		unary[structpb.Struct]("CreateLink", LinksServiceServer.CreateLink),
		unary[wrapperspb.StringValue]("GetLink", LinksServiceServer.GetLink),
		unary[wrapperspb.StringValue]("ListLinks", LinksServiceServer.ListLinks),
		unary[wrapperspb.StringValue]("DeleteLink", LinksServiceServer.DeleteLink),
		unary[structpb.Struct]("LinkStats", LinksServiceServer.LinkStats),
		unary[emptypb.Empty]("OwnerSummary", LinksServiceServer.OwnerSummary),
		unary[emptypb.Empty]("InternalStats", LinksServiceServer.InternalStats),
	},
	Streams: []grpc.StreamDesc{},
}

// unary builds the method handler that protoc-gen-go-grpc would generate.
func unary[Req any, PReq interface {
	*Req
	proto.Message
}, Resp proto.Message](name string, call func(LinksServiceServer, context.Context, PReq) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			impl := srv.(LinksServiceServer)
			if interceptor == nil {
				return call(impl, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(impl, ctx, req.(PReq))
			})
		},
	}
}
