package intercepters

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestSubnetIPInterceptor(t *testing.T) {
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		ip, _ := ctx.Value(RealIPKey).(string)
		return ip, nil
	}

	tests := []struct {
		name   string
		ctx    context.Context
		wantIP string
	}{
		{
			name:   "with x-real-ip metadata",
			ctx:    metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-real-ip", "192.168.1.100")),
			wantIP: "192.168.1.100",
		},
		{
			name:   "with empty x-real-ip metadata",
			ctx:    metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-real-ip", "")),
			wantIP: "",
		},
		{
			name:   "without metadata",
			ctx:    context.Background(),
			wantIP: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := SubnetIPInterceptor(tt.ctx, nil, &grpc.UnaryServerInfo{
				FullMethod: "/test.TestMethod",
			}, handler)
			if err != nil {
				t.Fatalf("Interceptor returned error: %v", err)
			}
			gotIP, _ := resp.(string)
			if gotIP != tt.wantIP {
				t.Errorf("got IP = %q, want %q", gotIP, tt.wantIP)
			}
		})
	}
}

func TestWithTrustedSubnet(t *testing.T) {
	const guarded = "/shortlink.v1.Links/InternalStats"

	interceptor := WithTrustedSubnet("10.0.0.0/24", guarded)
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	}

	tests := []struct {
		name     string
		method   string
		realIP   string
		wantCode codes.Code
	}{
		{"trusted caller", guarded, "10.0.0.7", codes.OK},
		{"untrusted caller", guarded, "10.0.1.7", codes.PermissionDenied},
		{"no real ip", guarded, "", codes.PermissionDenied},
		{"unguarded method", "/shortlink.v1.Links/Resolve", "", codes.OK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.realIP != "" {
				ctx = context.WithValue(ctx, RealIPKey, tt.realIP)
			}

			resp, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: tt.method}, handler)
			if tt.wantCode == codes.OK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp != "ok" {
					t.Errorf("unexpected response: %v", resp)
				}
				return
			}
			if got := status.Code(err); got != tt.wantCode {
				t.Errorf("got code %v, want %v", got, tt.wantCode)
			}
		})
	}
}

func TestWithTrustedSubnet_NoSubnetConfigured(t *testing.T) {
	interceptor := WithTrustedSubnet("", "/shortlink.v1.Links/InternalStats")
	ctx := context.WithValue(context.Background(), RealIPKey, "10.0.0.1")

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/shortlink.v1.Links/InternalStats"},
		func(ctx context.Context, req interface{}) (interface{}, error) { return nil, nil })

	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
}
