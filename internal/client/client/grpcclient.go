package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	pb "github.com/dmitrijs2005/draftkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Client is the server API consumed by the auth service and the remote store.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, username string, salt []byte, verifier []byte) (string, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) (string, error)
	SetTokens(access, refresh string)
	Tokens() (access, refresh string)

	ListProjects(ctx context.Context, userID string) ([]*pb.Project, error)
	GetProject(ctx context.Context, id string) (*pb.Project, error)
	UpsertProject(ctx context.Context, p *pb.Project) error
	DeleteProject(ctx context.Context, id string) error
	DeleteAllUserData(ctx context.Context, userID string) (int64, error)
}

const saltTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	dialOpts    []grpc.DialOption
	conn        *grpc.ClientConn
	client      pb.DraftKeeperClient
	health      healthpb.HealthClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.Tokens()
	if common.PublicMethods[method] || access == "" {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	s.SetTokens(resp.AccessToken, resp.RefreshToken)

	// tokens refreshed, retry once with the new access token
	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults (tests pass a bufconn dialer).
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, dialOpts: opts}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewDraftKeeperClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

func (s *GRPCClient) Tokens() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

// Ping asks the standard health service whether DraftKeeper is serving.
func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.DraftKeeper_ServiceDesc.ServiceName})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, salt []byte, verifier []byte) (string, error) {
	resp, err := s.client.RegisterUser(ctx, &pb.RegisterUserRequest{Username: userName, Salt: salt, Verifier: verifier})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.UserId, nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, userName string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, saltTimeout)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Username: userName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

// Login stores the issued tokens and returns the user id.
func (s *GRPCClient) Login(ctx context.Context, userName string, verifier []byte) (string, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: userName, VerifierCandidate: verifier})
	if err != nil {
		return "", s.mapError(err)
	}
	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return resp.UserId, nil
}

func (s *GRPCClient) ListProjects(ctx context.Context, userID string) ([]*pb.Project, error) {
	resp, err := s.client.ListProjects(ctx, &pb.ListProjectsRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Projects, nil
}

func (s *GRPCClient) GetProject(ctx context.Context, id string) (*pb.Project, error) {
	resp, err := s.client.GetProject(ctx, &pb.GetProjectRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Project == nil {
		return nil, ErrNotFound
	}
	return resp.Project, nil
}

func (s *GRPCClient) UpsertProject(ctx context.Context, p *pb.Project) error {
	if _, err := s.client.UpsertProject(ctx, &pb.UpsertProjectRequest{Project: p}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.client.DeleteProject(ctx, &pb.DeleteProjectRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) DeleteAllUserData(ctx context.Context, userID string) (int64, error) {
	resp, err := s.client.DeleteAllUserData(ctx, &pb.DeleteAllUserDataRequest{UserId: userID})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.DeletedProjects, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrConflict, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
