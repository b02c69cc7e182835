package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitlite/internal/auth"
	"github.com/mmynk/splitlite/internal/models"
	"github.com/mmynk/splitlite/internal/storage"
	"github.com/mmynk/splitlite/pkg/api"
	"github.com/mmynk/splitlite/pkg/api/apiconnect"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	apiconnect.UnimplementedGroupServiceHandler
	store         storage.Store
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *GroupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GroupService{
		store:         store,
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// CreateGroup creates a new group with a fresh join code.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	s.logger.Info("CreateGroup request received", "name", name, "has_pin", req.Msg.PIN != "")

	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group name required"))
	}

	pinHash, err := s.authenticator.HashCredential(req.Msg.PIN)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPIN) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		s.logger.Error("CreateGroup failed to hash PIN", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	// Save to storage (generates ID, Code and CreatedAt)
	group := &models.Group{Name: name, PINHash: pinHash}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		s.logger.Error("CreateGroup failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Group created", "group_id", group.ID, "code", group.Code)

	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(group)}), nil
}

// GetGroup looks a group up by its join code.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	s.logger.Info("GetGroup request received", "code", req.Msg.Code)

	if strings.TrimSpace(req.Msg.Code) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("code required"))
	}

	group, err := s.store.GetGroupByCode(ctx, req.Msg.Code)
	if err != nil {
		s.logger.Warn("GetGroup failed", "code", req.Msg.Code, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.GetGroupResponse{Group: toAPIGroup(group)}), nil
}

// JoinGroup adds the caller to a group and opens a member session.
func (s *GroupService) JoinGroup(ctx context.Context, req *connect.Request[api.JoinGroupRequest]) (*connect.Response[api.JoinGroupResponse], error) {
	s.logger.Info("JoinGroup request received", "code", req.Msg.Code, "display_name", req.Msg.DisplayName)

	group, member, err := s.authenticator.Join(ctx, req.Msg.Code, req.Msg.PIN, req.Msg.DisplayName)
	if err != nil {
		s.logger.Warn("JoinGroup failed", "code", req.Msg.Code, "error", err)
		switch {
		case errors.Is(err, auth.ErrEmptyName):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		case errors.Is(err, auth.ErrWrongPIN):
			return nil, connect.NewError(connect.CodePermissionDenied, err)
		default:
			return nil, storeError(err)
		}
	}

	token, err := s.jwtManager.Generate(member)
	if err != nil {
		s.logger.Error("Failed to generate token", "member_id", member.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Member joined", "group_id", group.ID, "member_id", member.ID)

	return connect.NewResponse(&api.JoinGroupResponse{
		Group:  toAPIGroup(group),
		Member: toAPIMember(member),
		Token:  token,
	}), nil
}

// ListMembers returns the group's members in join order.
func (s *GroupService) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	if err := authorizeGroup(ctx, s.store, req.Msg.GroupID); err != nil {
		return nil, err
	}

	members, err := s.store.LoadMembers(ctx, req.Msg.GroupID)
	if err != nil {
		s.logger.Error("ListMembers failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, storeError(err)
	}

	out := make([]*api.Member, len(members))
	for i := range members {
		out[i] = toAPIMember(&members[i])
	}

	return connect.NewResponse(&api.ListMembersResponse{Members: out}), nil
}

// RemoveMember deletes a member of the caller's group who has no expenses.
func (s *GroupService) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	s.logger.Info("RemoveMember request received", "member_id", req.Msg.MemberID)

	if req.Msg.MemberID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("member_id required"))
	}

	member, err := s.store.GetMember(ctx, req.Msg.MemberID)
	if err != nil {
		return nil, storeError(err)
	}
	if err := authorizeGroup(ctx, s.store, member.GroupID); err != nil {
		return nil, err
	}

	if err := s.store.RemoveMember(ctx, member.ID); err != nil {
		s.logger.Warn("RemoveMember failed", "member_id", member.ID, "error", err)
		return nil, storeError(err)
	}

	s.logger.Info("Member removed", "group_id", member.GroupID, "member_id", member.ID)

	return connect.NewResponse(&api.RemoveMemberResponse{}), nil
}
