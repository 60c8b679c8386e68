package managementv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ServiceName is the fully qualified name of the daemon management service.
const ServiceName = "mullvad_daemon.management_interface.ManagementService"

// Full method names.
const (
	ManagementService_ConnectTunnel_FullMethodName             = "/" + ServiceName + "/ConnectTunnel"
	ManagementService_DisconnectTunnel_FullMethodName          = "/" + ServiceName + "/DisconnectTunnel"
	ManagementService_ReconnectTunnel_FullMethodName           = "/" + ServiceName + "/ReconnectTunnel"
	ManagementService_GetTunnelState_FullMethodName            = "/" + ServiceName + "/GetTunnelState"
	ManagementService_EventsListen_FullMethodName              = "/" + ServiceName + "/EventsListen"
	ManagementService_PrepareRestart_FullMethodName            = "/" + ServiceName + "/PrepareRestartV2"
	ManagementService_GetCurrentVersion_FullMethodName         = "/" + ServiceName + "/GetCurrentVersion"
	ManagementService_GetVersionInfo_FullMethodName            = "/" + ServiceName + "/GetVersionInfo"
	ManagementService_IsPerformingPostUpgrade_FullMethodName   = "/" + ServiceName + "/IsPerformingPostUpgrade"
	ManagementService_NeedFullDiskPermissions_FullMethodName   = "/" + ServiceName + "/NeedFullDiskPermissions"
	ManagementService_CheckVolumes_FullMethodName              = "/" + ServiceName + "/CheckVolumes"
	ManagementService_GetRelayLocations_FullMethodName         = "/" + ServiceName + "/GetRelayLocations"
	ManagementService_GetSettings_FullMethodName               = "/" + ServiceName + "/GetSettings"
	ManagementService_SetRelaySettings_FullMethodName          = "/" + ServiceName + "/SetRelaySettings"
	ManagementService_SetAllowLan_FullMethodName               = "/" + ServiceName + "/SetAllowLan"
	ManagementService_SetShowBetaReleases_FullMethodName       = "/" + ServiceName + "/SetShowBetaReleases"
	ManagementService_SetEnableIpv6_FullMethodName             = "/" + ServiceName + "/SetEnableIpv6"
	ManagementService_SetBlockWhenDisconnected_FullMethodName  = "/" + ServiceName + "/SetBlockWhenDisconnected"
	ManagementService_SetAutoConnect_FullMethodName            = "/" + ServiceName + "/SetAutoConnect"
	ManagementService_SetBridgeState_FullMethodName            = "/" + ServiceName + "/SetBridgeState"
	ManagementService_SetBridgeSettings_FullMethodName         = "/" + ServiceName + "/SetBridgeSettings"
	ManagementService_SetObfuscationSettings_FullMethodName    = "/" + ServiceName + "/SetObfuscationSettings"
	ManagementService_SetOpenvpnMssfix_FullMethodName          = "/" + ServiceName + "/SetOpenvpnMssfix"
	ManagementService_SetWireguardMtu_FullMethodName           = "/" + ServiceName + "/SetWireguardMtu"
	ManagementService_SetQuantumResistantTunnel_FullMethodName = "/" + ServiceName + "/SetQuantumResistantTunnel"
	ManagementService_SetEnableDaita_FullMethodName            = "/" + ServiceName + "/SetEnableDaita"
	ManagementService_SetDaitaDirectOnly_FullMethodName        = "/" + ServiceName + "/SetDaitaDirectOnly"
	ManagementService_SetDnsOptions_FullMethodName             = "/" + ServiceName + "/SetDnsOptions"
	ManagementService_ApplyJsonSettings_FullMethodName         = "/" + ServiceName + "/ApplyJsonSettings"
	ManagementService_ClearAllRelayOverrides_FullMethodName    = "/" + ServiceName + "/ClearAllRelayOverrides"
	ManagementService_CreateNewAccount_FullMethodName          = "/" + ServiceName + "/CreateNewAccount"
	ManagementService_LoginAccount_FullMethodName              = "/" + ServiceName + "/LoginAccount"
	ManagementService_LogoutAccount_FullMethodName             = "/" + ServiceName + "/LogoutAccount"
	ManagementService_GetAccountData_FullMethodName            = "/" + ServiceName + "/GetAccountData"
	ManagementService_GetAccountHistory_FullMethodName         = "/" + ServiceName + "/GetAccountHistory"
	ManagementService_ClearAccountHistory_FullMethodName       = "/" + ServiceName + "/ClearAccountHistory"
	ManagementService_GetWwwAuthToken_FullMethodName           = "/" + ServiceName + "/GetWwwAuthToken"
	ManagementService_SubmitVoucher_FullMethodName             = "/" + ServiceName + "/SubmitVoucher"
	ManagementService_GetDevice_FullMethodName                 = "/" + ServiceName + "/GetDevice"
	ManagementService_UpdateDevice_FullMethodName              = "/" + ServiceName + "/UpdateDevice"
	ManagementService_ListDevices_FullMethodName               = "/" + ServiceName + "/ListDevices"
	ManagementService_RemoveDevice_FullMethodName              = "/" + ServiceName + "/RemoveDevice"
	ManagementService_CreateCustomList_FullMethodName          = "/" + ServiceName + "/CreateCustomList"
	ManagementService_DeleteCustomList_FullMethodName          = "/" + ServiceName + "/DeleteCustomList"
	ManagementService_UpdateCustomList_FullMethodName          = "/" + ServiceName + "/UpdateCustomList"
	ManagementService_AddApiAccessMethod_FullMethodName        = "/" + ServiceName + "/AddApiAccessMethod"
	ManagementService_RemoveApiAccessMethod_FullMethodName     = "/" + ServiceName + "/RemoveApiAccessMethod"
	ManagementService_SetApiAccessMethod_FullMethodName        = "/" + ServiceName + "/SetApiAccessMethod"
	ManagementService_UpdateApiAccessMethod_FullMethodName     = "/" + ServiceName + "/UpdateApiAccessMethod"
	ManagementService_GetCurrentApiAccessMethod_FullMethodName = "/" + ServiceName + "/GetCurrentApiAccessMethod"
	ManagementService_TestApiAccessMethodById_FullMethodName   = "/" + ServiceName + "/TestApiAccessMethodById"
	ManagementService_TestCustomApiAccessMethod_FullMethodName = "/" + ServiceName + "/TestCustomApiAccessMethod"
	ManagementService_AddSplitTunnelApp_FullMethodName         = "/" + ServiceName + "/AddSplitTunnelApp"
	ManagementService_RemoveSplitTunnelApp_FullMethodName      = "/" + ServiceName + "/RemoveSplitTunnelApp"
	ManagementService_SetSplitTunnelState_FullMethodName       = "/" + ServiceName + "/SetSplitTunnelState"
	ManagementService_AppUpgrade_FullMethodName                = "/" + ServiceName + "/AppUpgrade"
	ManagementService_AppUpgradeAbort_FullMethodName           = "/" + ServiceName + "/AppUpgradeAbort"
	ManagementService_AppUpgradeEventsListen_FullMethodName    = "/" + ServiceName + "/AppUpgradeEventsListen"
)

// Invoke performs a unary call on cc using the JSON content subtype.
func Invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(ContentSubtype)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// NewServerStream opens a server-streaming call on cc and sends the single request.
func NewServerStream[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, desc *grpc.StreamDesc, method string, in *Req, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Resp], error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(ContentSubtype)}, opts...)
	stream, err := cc.NewStream(ctx, desc, method, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Req, Resp]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// EventsListen opens the daemon event feed.
func EventsListen(ctx context.Context, cc grpc.ClientConnInterface, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DaemonEvent], error) {
	return NewServerStream[emptypb.Empty, DaemonEvent](ctx, cc, &ManagementService_ServiceDesc.Streams[0], ManagementService_EventsListen_FullMethodName, &emptypb.Empty{}, opts...)
}

// AppUpgradeEventsListen opens the app upgrade event feed.
func AppUpgradeEventsListen(ctx context.Context, cc grpc.ClientConnInterface, opts ...grpc.CallOption) (grpc.ServerStreamingClient[AppUpgradeEvent], error) {
	return NewServerStream[emptypb.Empty, AppUpgradeEvent](ctx, cc, &ManagementService_ServiceDesc.Streams[1], ManagementService_AppUpgradeEventsListen_FullMethodName, &emptypb.Empty{}, opts...)
}

// UnaryFunc is a server-side implementation of one unary method.
type UnaryFunc[Req, Resp any] func(ctx context.Context, in *Req) (*Resp, error)

// StreamFunc is a server-side implementation of one server-streaming method.
type StreamFunc[Req, Resp any] func(in *Req, stream grpc.ServerStreamingServer[Resp]) error

type unaryImpl struct {
	newReq func() any
	call   func(ctx context.Context, req any) (any, error)
}

// ManagementServiceServer holds the daemon-side implementations keyed by full
// method name. Methods without an implementation answer codes.Unimplemented.
type ManagementServiceServer struct {
	unary   map[string]unaryImpl
	streams map[string]func(stream grpc.ServerStream) error
}

// NewManagementServiceServer creates an empty server.
func NewManagementServiceServer() *ManagementServiceServer {
	return &ManagementServiceServer{
		unary:   make(map[string]unaryImpl),
		streams: make(map[string]func(grpc.ServerStream) error),
	}
}

// HandleUnary installs the implementation of a unary method.
func HandleUnary[Req, Resp any](s *ManagementServiceServer, method string, fn UnaryFunc[Req, Resp]) {
	s.unary[method] = unaryImpl{
		newReq: func() any { return new(Req) },
		call: func(ctx context.Context, req any) (any, error) {
			return fn(ctx, req.(*Req))
		},
	}
}

// HandleStream installs the implementation of a server-streaming method.
func HandleStream[Req, Resp any](s *ManagementServiceServer, method string, fn StreamFunc[Req, Resp]) {
	s.streams[method] = func(stream grpc.ServerStream) error {
		in := new(Req)
		if err := stream.RecvMsg(in); err != nil {
			return err
		}
		return fn(in, &grpc.GenericServerStream[Req, Resp]{ServerStream: stream})
	}
}

// Register registers s on registrar.
func (s *ManagementServiceServer) Register(registrar grpc.ServiceRegistrar) {
	desc := grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*any)(nil),
		Metadata:    ManagementService_ServiceDesc.Metadata,
	}
	for _, m := range unaryMethods {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: m[len(ServiceName)+2:],
			Handler:    s.unaryHandler(m),
		})
	}
	for _, sd := range ManagementService_ServiceDesc.Streams {
		full := "/" + ServiceName + "/" + sd.StreamName
		sd.Handler = func(_ any, stream grpc.ServerStream) error {
			h, ok := s.streams[full]
			if !ok {
				return status.Errorf(codes.Unimplemented, "method %s not implemented", sd.StreamName)
			}
			return h(stream)
		}
		desc.Streams = append(desc.Streams, sd)
	}
	registrar.RegisterService(&desc, s)
}

func (s *ManagementServiceServer) unaryHandler(method string) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		h, ok := s.unary[method]
		if !ok {
			return nil, status.Errorf(codes.Unimplemented, "method %s not implemented", method)
		}
		in := h.newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return h.call(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		return interceptor(ctx, in, info, h.call)
	}
}

// ManagementService_ServiceDesc describes the streaming methods of the
// service. Unary methods are added per server by Register.
var ManagementService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*any)(nil),
	Streams: []grpc.StreamDesc{
		{StreamName: "EventsListen", ServerStreams: true},
		{StreamName: "AppUpgradeEventsListen", ServerStreams: true},
	},
	Metadata: "management_interface.proto",
}

var unaryMethods = []string{
	ManagementService_ConnectTunnel_FullMethodName,
	ManagementService_DisconnectTunnel_FullMethodName,
	ManagementService_ReconnectTunnel_FullMethodName,
	ManagementService_GetTunnelState_FullMethodName,
	ManagementService_PrepareRestart_FullMethodName,
	ManagementService_GetCurrentVersion_FullMethodName,
	ManagementService_GetVersionInfo_FullMethodName,
	ManagementService_IsPerformingPostUpgrade_FullMethodName,
	ManagementService_NeedFullDiskPermissions_FullMethodName,
	ManagementService_CheckVolumes_FullMethodName,
	ManagementService_GetRelayLocations_FullMethodName,
	ManagementService_GetSettings_FullMethodName,
	ManagementService_SetRelaySettings_FullMethodName,
	ManagementService_SetAllowLan_FullMethodName,
	ManagementService_SetShowBetaReleases_FullMethodName,
	ManagementService_SetEnableIpv6_FullMethodName,
	ManagementService_SetBlockWhenDisconnected_FullMethodName,
	ManagementService_SetAutoConnect_FullMethodName,
	ManagementService_SetBridgeState_FullMethodName,
	ManagementService_SetBridgeSettings_FullMethodName,
	ManagementService_SetObfuscationSettings_FullMethodName,
	ManagementService_SetOpenvpnMssfix_FullMethodName,
	ManagementService_SetWireguardMtu_FullMethodName,
	ManagementService_SetQuantumResistantTunnel_FullMethodName,
	ManagementService_SetEnableDaita_FullMethodName,
	ManagementService_SetDaitaDirectOnly_FullMethodName,
	ManagementService_SetDnsOptions_FullMethodName,
	ManagementService_ApplyJsonSettings_FullMethodName,
	ManagementService_ClearAllRelayOverrides_FullMethodName,
	ManagementService_CreateNewAccount_FullMethodName,
	ManagementService_LoginAccount_FullMethodName,
	ManagementService_LogoutAccount_FullMethodName,
	ManagementService_GetAccountData_FullMethodName,
	ManagementService_GetAccountHistory_FullMethodName,
	ManagementService_ClearAccountHistory_FullMethodName,
	ManagementService_GetWwwAuthToken_FullMethodName,
	ManagementService_SubmitVoucher_FullMethodName,
	ManagementService_GetDevice_FullMethodName,
	ManagementService_UpdateDevice_FullMethodName,
	ManagementService_ListDevices_FullMethodName,
	ManagementService_RemoveDevice_FullMethodName,
	ManagementService_CreateCustomList_FullMethodName,
	ManagementService_DeleteCustomList_FullMethodName,
	ManagementService_UpdateCustomList_FullMethodName,
	ManagementService_AddApiAccessMethod_FullMethodName,
	ManagementService_RemoveApiAccessMethod_FullMethodName,
	ManagementService_SetApiAccessMethod_FullMethodName,
	ManagementService_UpdateApiAccessMethod_FullMethodName,
	ManagementService_GetCurrentApiAccessMethod_FullMethodName,
	ManagementService_TestApiAccessMethodById_FullMethodName,
	ManagementService_TestCustomApiAccessMethod_FullMethodName,
	ManagementService_AddSplitTunnelApp_FullMethodName,
	ManagementService_RemoveSplitTunnelApp_FullMethodName,
	ManagementService_SetSplitTunnelState_FullMethodName,
	ManagementService_AppUpgrade_FullMethodName,
	ManagementService_AppUpgradeAbort_FullMethodName,
}
