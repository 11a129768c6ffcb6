package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	pb "github.com/dmitrijs2005/draftkeeper/internal/proto"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/draftkeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps service errors to gRPC statuses. Unknown errors are logged
// and hidden behind codes.Internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, users.ErrUserExists):
		return status.Error(codes.AlreadyExists, "user already exists")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrForeignRecord):
		return status.Error(codes.FailedPrecondition, common.ErrForeignRecord.Error())
	case errors.Is(err, services.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) caller(ctx context.Context) (string, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "unauthorized")
	}
	return userID, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	result, err := s.users.Register(ctx, req.Username, req.Salt, req.Verifier)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username, "user_id", result.ID)
	return &pb.RegisterUserResponse{UserId: result.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {

	result, err := s.users.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.GetSaltResponse{Salt: result}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{UserId: tokens.UserID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) ListProjects(ctx context.Context, req *pb.ListProjectsRequest) (*pb.ListProjectsResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.UserId != userID {
		return nil, status.Error(codes.PermissionDenied, "user mismatch")
	}

	list, err := s.projects.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.Project, 0, len(list))
	for _, p := range list {
		out = append(out, projectToPB(p))
	}
	return &pb.ListProjectsResponse{Projects: out}, nil
}

func (s *GRPCServer) GetProject(ctx context.Context, req *pb.GetProjectRequest) (*pb.GetProjectResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.projects.Get(ctx, userID, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetProjectResponse{Project: projectToPB(p)}, nil
}

func (s *GRPCServer) UpsertProject(ctx context.Context, req *pb.UpsertProjectRequest) (*pb.UpsertProjectResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.Project == nil {
		return nil, status.Error(codes.InvalidArgument, "project is required")
	}

	if err := s.projects.Upsert(ctx, userID, projectFromPB(req.Project)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UpsertProjectResponse{}, nil
}

func (s *GRPCServer) DeleteProject(ctx context.Context, req *pb.DeleteProjectRequest) (*pb.DeleteProjectResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.projects.Delete(ctx, userID, req.Id); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteProjectResponse{}, nil
}

func (s *GRPCServer) DeleteAllUserData(ctx context.Context, req *pb.DeleteAllUserDataRequest) (*pb.DeleteAllUserDataResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.UserId != userID {
		return nil, status.Error(codes.PermissionDenied, "user mismatch")
	}

	n, err := s.users.DeleteAccount(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteAllUserDataResponse{DeletedProjects: n}, nil
}

func projectToPB(p *models.Project) *pb.Project {
	out := &pb.Project{
		Id:                 p.ID,
		UserId:             p.UserID,
		Title:              p.Title,
		Deadline:           timeToPB(p.Deadline),
		CreatedAt:          timestamppb.New(p.CreatedAt),
		LastEditedAt:       timestamppb.New(p.LastEditedAt),
		LastProgressAt:     timeToPB(p.LastProgressAt),
		NudgeEnabled:       p.NudgeEnabled,
		NudgeMode:          p.NudgeMode,
		NudgeHour:          p.NudgeHour,
		NudgeMinute:        p.NudgeMinute,
		MaxInactivityHours: p.MaxInactivityHours,
		UpdatedAt:          timestamppb.New(p.UpdatedAt),
		IsArchived:         p.IsArchived,
	}
	if p.ContentData != nil {
		content := string(p.ContentData)
		out.ContentData = &content
	}
	return out
}

func projectFromPB(p *pb.Project) *models.Project {
	out := &models.Project{
		ID:                 p.GetId(),
		UserID:             p.GetUserId(),
		Title:              p.GetTitle(),
		Deadline:           timeFromPB(p.GetDeadline()),
		CreatedAt:          p.GetCreatedAt().AsTime(),
		LastEditedAt:       p.GetLastEditedAt().AsTime(),
		LastProgressAt:     timeFromPB(p.GetLastProgressAt()),
		NudgeEnabled:       p.GetNudgeEnabled(),
		NudgeMode:          p.GetNudgeMode(),
		NudgeHour:          p.GetNudgeHour(),
		NudgeMinute:        p.GetNudgeMinute(),
		MaxInactivityHours: p.GetMaxInactivityHours(),
		UpdatedAt:          p.GetUpdatedAt().AsTime(),
		IsArchived:         p.GetIsArchived(),
	}
	if p.ContentData != nil {
		out.ContentData = []byte(*p.ContentData)
	}
	return out
}

func timeToPB(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func timeFromPB(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}
