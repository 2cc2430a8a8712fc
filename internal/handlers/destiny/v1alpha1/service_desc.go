package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "destiny.v1alpha1.DestinyService"

// Method names
const (
	MethodBuildProgressionTables   = "BuildProgressionTables"
	MethodClassifyVariant          = "ClassifyVariant"
	MethodResolveCrossSpecModifier = "ResolveCrossSpecModifier"
	MethodCalculateItemPower       = "CalculateItemPower"
	MethodCalculateLoadout         = "CalculateLoadout"
	MethodGetProfile               = "GetProfile"
	MethodBindProfile              = "BindProfile"
	MethodSetLevel                 = "SetLevel"
	MethodImportSpecs              = "ImportSpecs"
	MethodResetProfile             = "ResetProfile"
	MethodListProfiles             = "ListProfiles"
	MethodDeleteProfile            = "DeleteProfile"
)

// DestinyServiceServer is the server API. Every message is a
// google.protobuf.Struct.
type DestinyServiceServer interface {
	BuildProgressionTables(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClassifyVariant(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveCrossSpecModifier(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CalculateItemPower(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CalculateLoadout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	BindProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLevel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportSpecs(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProfiles(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(srv DestinyServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(DestinyServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(DestinyServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes DestinyService for grpc.Server registration
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DestinyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodBuildProgressionTables, DestinyServiceServer.BuildProgressionTables),
		unaryHandler(MethodClassifyVariant, DestinyServiceServer.ClassifyVariant),
		unaryHandler(MethodResolveCrossSpecModifier, DestinyServiceServer.ResolveCrossSpecModifier),
		unaryHandler(MethodCalculateItemPower, DestinyServiceServer.CalculateItemPower),
		unaryHandler(MethodCalculateLoadout, DestinyServiceServer.CalculateLoadout),
		unaryHandler(MethodGetProfile, DestinyServiceServer.GetProfile),
		unaryHandler(MethodBindProfile, DestinyServiceServer.BindProfile),
		unaryHandler(MethodSetLevel, DestinyServiceServer.SetLevel),
		unaryHandler(MethodImportSpecs, DestinyServiceServer.ImportSpecs),
		unaryHandler(MethodResetProfile, DestinyServiceServer.ResetProfile),
		unaryHandler(MethodListProfiles, DestinyServiceServer.ListProfiles),
		unaryHandler(MethodDeleteProfile, DestinyServiceServer.DeleteProfile),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "destiny/v1alpha1/destiny.proto",
}

// RegisterDestinyServiceServer registers srv on s
func RegisterDestinyServiceServer(s grpc.ServiceRegistrar, srv DestinyServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls DestinyService methods on a connection
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a client connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with req and returns the response struct
func (c *Client) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
