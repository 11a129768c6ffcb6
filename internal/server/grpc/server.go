package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/draftkeeper/internal/logging"
	pb "github.com/dmitrijs2005/draftkeeper/internal/proto"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	"github.com/dmitrijs2005/draftkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UserService is the account side of the server as used by the handlers.
type UserService interface {
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error)
	DeleteAccount(ctx context.Context, userID string) (int64, error)
}

// ProjectService is the remote project store as used by the handlers.
type ProjectService interface {
	List(ctx context.Context, userID string) ([]*models.Project, error)
	Get(ctx context.Context, userID, id string) (*models.Project, error)
	Upsert(ctx context.Context, userID string, p *models.Project) error
	Delete(ctx context.Context, userID, id string) error
}

type GRPCServer struct {
	pb.UnimplementedDraftKeeperServer

	address   string
	users     UserService
	projects  ProjectService
	logger    logging.Logger
	jwtSecret []byte
}

var _ pb.DraftKeeperServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, us UserService, ps ProjectService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		projects:  ps,
		jwtSecret: []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterDraftKeeperServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.DraftKeeper_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
