package intercepters

import (
	"context"
	"net"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/atinyakov/shortlink/internal/middleware"
)

type contextKey string

const RealIPKey contextKey = "real-ip"

// SubnetIPInterceptor copies the x-real-ip metadata value into the context.
func SubnetIPInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if ips := md.Get("x-real-ip"); len(ips) > 0 {
			ctx = context.WithValue(ctx, RealIPKey, ips[0])
		}
	}
	return handler(ctx, req)
}

// WithTrustedSubnet rejects calls to the listed full method names unless
// the real IP placed by SubnetIPInterceptor lies in cidr. It must run after
// SubnetIPInterceptor in the chain.
func WithTrustedSubnet(cidr string, methods ...string) grpc.UnaryServerInterceptor {
	_, trusted, err := net.ParseCIDR(strings.TrimSpace(cidr))
	if err != nil {
		trusted = nil
	}

	guarded := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		guarded[m] = struct{}{}
	}

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if _, ok := guarded[info.FullMethod]; !ok {
			return handler(ctx, req)
		}

		ip, _ := ctx.Value(RealIPKey).(string)
		if !middleware.InSubnet(trusted, ip) {
			return nil, status.Error(codes.PermissionDenied, "caller outside trusted subnet")
		}
		return handler(ctx, req)
	}
}
