package intercepters

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/atinyakov/shortlink/internal/app/service"
	"github.com/atinyakov/shortlink/internal/middleware"
)

// NewTokenTrailer carries a freshly issued token back to the caller.
const NewTokenTrailer = "new-token"

// WithJWT resolves the owner from the "authorization: Bearer" metadata.
// Callers without a token get a new identity in the NewTokenTrailer trailer;
// an invalid token is rejected with Unauthenticated.
func WithJWT(auth service.AuthIface) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		var userID string
		if authHeader := md.Get("authorization"); len(authHeader) > 0 {
			claims, err := auth.ParseRawJWT(strings.TrimPrefix(authHeader[0], "Bearer "))
			if err != nil {
				return nil, status.Errorf(codes.Unauthenticated, "invalid JWT: %v", err)
			}
			userID = claims.UserID
		} else {
			token, generatedID, err := auth.BuildJWTString()
			if err != nil {
				return nil, status.Errorf(codes.Internal, "failed to build JWT: %v", err)
			}
			userID = generatedID
			_ = grpc.SetTrailer(ctx, metadata.Pairs(NewTokenTrailer, token))
		}

		return handler(context.WithValue(ctx, middleware.UserIDKey, userID), req)
	}
}
