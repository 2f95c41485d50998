// Package grpc exposes the link service over gRPC.
package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"net"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/atinyakov/shortlink/internal/app/service"
	"github.com/atinyakov/shortlink/internal/intercepters"
	"github.com/atinyakov/shortlink/internal/middleware"
	"github.com/atinyakov/shortlink/internal/models"
	"github.com/atinyakov/shortlink/internal/storage"
)

// Server wraps the gRPC server and its listen address.
type Server struct {
	grpcServer *grpc.Server
	addr       string
	logger     *zap.Logger
}

// New builds a gRPC server for the link service. InternalStats is only
// served to callers whose x-real-ip lies in trustedSubnet.
func New(addr, trustedSubnet string, auth service.AuthIface, impl *LinksServer, logger *zap.Logger) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(intercepters.InterceptorLogger(logger)),
			intercepters.SubnetIPInterceptor,
			intercepters.WithTrustedSubnet(trustedSubnet, MethodInternalStats),
			intercepters.WithJWT(auth),
		),
	)

	s.RegisterService(&LinksServiceDesc, impl)

	return &Server{
		grpcServer: s,
		addr:       addr,
		logger:     logger,
	}
}

// Start listens on the configured address and serves until stopped.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.logger.Error("gRPC server failed to listen", zap.Error(err))
		return err
	}

	s.logger.Info("gRPC server listening", zap.String("addr", s.addr))
	return s.Serve(lis)
}

func (s *Server) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// GracefulStop waits for in-flight calls and stops the server.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

// LinksServer implements LinksServiceServer on top of the link services.
type LinksServer struct {
	Links    service.LinkServiceIface
	Resolver service.ResolverIface
	Stats    service.StatsIface
}

var _ LinksServiceServer = (*LinksServer)(nil)

type statsRequest struct {
	ID    string `json:"id"`
	Limit int    `json:"limit"`
}

// Resolve answers the destination of a code without recording a click.
func (s *LinksServer) Resolve(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	original, err := s.Resolver.Resolve(ctx, req.GetValue())
	if err != nil {
		return nil, statusFrom(err)
	}
	return wrapperspb.String(original), nil
}

func (s *LinksServer) CreateLink(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	var body models.CreateLinkRequest
	if err := fromStruct(req, &body); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	link, err := s.Links.Create(ctx, owner, body)
	if err != nil {
		return nil, statusFrom(err)
	}
	return toStruct(s.Links.Response(*link))
}

func (s *LinksServer) GetLink(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	link, err := s.Links.Get(ctx, owner, req.GetValue())
	if err != nil {
		return nil, statusFrom(err)
	}
	return toStruct(s.Links.Response(*link))
}

// ListLinks returns {"links": [...]} filtered by the title query in req.
func (s *LinksServer) ListLinks(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	links, err := s.Links.List(ctx, owner, req.GetValue())
	if err != nil {
		return nil, statusFrom(err)
	}

	items := make([]models.LinkResponse, 0, len(links))
	for _, l := range links {
		items = append(items, s.Links.Response(l))
	}
	return toStruct(map[string]any{"links": items})
}

func (s *LinksServer) DeleteLink(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.Links.Delete(ctx, owner, req.GetValue()); err != nil {
		return nil, statusFrom(err)
	}
	return &emptypb.Empty{}, nil
}

// LinkStats expects {"id": "...", "limit": N}; limit defaults to
// service.DefaultTopLimit.
func (s *LinksServer) LinkStats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	var body statsRequest
	if err := fromStruct(req, &body); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if body.Limit < 0 || body.Limit > service.MaxTopLimit {
		return nil, status.Errorf(codes.InvalidArgument, "limit must be an integer between 1 and %d", service.MaxTopLimit)
	}
	if body.Limit == 0 {
		body.Limit = service.DefaultTopLimit
	}

	link, err := s.Links.Get(ctx, owner, body.ID)
	if err != nil {
		return nil, statusFrom(err)
	}

	stats, err := s.Stats.LinkStats(ctx, link.ID, body.Limit)
	if err != nil {
		return nil, statusFrom(err)
	}
	return toStruct(stats)
}

func (s *LinksServer) OwnerSummary(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	sum, err := s.Stats.OwnerSummary(ctx, owner)
	if err != nil {
		return nil, statusFrom(err)
	}
	return toStruct(sum)
}

func (s *LinksServer) InternalStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	stats, err := s.Links.ServiceStats(ctx)
	if err != nil {
		return nil, statusFrom(err)
	}
	return toStruct(stats)
}

func ownerFrom(ctx context.Context) (string, error) {
	owner, ok := ctx.Value(middleware.UserIDKey).(string)
	if !ok || owner == "" {
		return "", status.Error(codes.Internal, "user ID missing in context")
	}
	return owner, nil
}

func statusFrom(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return status.Error(codes.NotFound, "link not found")
	case errors.Is(err, storage.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, service.ErrAliasTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, service.ErrInvalidURL), errors.Is(err, service.ErrInvalidAlias):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func fromStruct(in *structpb.Struct, v any) error {
	raw, err := protojson.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
