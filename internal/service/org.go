package service

import (
	"context"
	"fmt"

	"orghub/internal/config"
	"orghub/internal/model"
	"orghub/internal/repository"
	"orghub/pkg/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrgService holds the organization queries and the membership state machine.
// Membership mutations are ADMIN-gated: the author must hold an ADMIN entry in
// the organization's members list. The creator is auto-enrolled as ADMIN and
// can never be removed, though their access level may be changed (an ADMIN may
// demote anyone, including themself, even down to an organization with no
// ADMINs left).
type OrgService struct {
	orgs  repository.IOrgRepository
	users repository.IUserRepository
	cfg   *config.Config
}

// NewOrgService creates a new organization service
func NewOrgService(cfg *config.Config, orgs repository.IOrgRepository, users repository.IUserRepository) *OrgService {
	return &OrgService{orgs: orgs, users: users, cfg: cfg}
}

// Create inserts a new organization with the creator enrolled as its first
// ADMIN member, then appends the organization to the creator's back-reference
// list. The two writes are separate documents with no transaction around them.
func (s *OrgService) Create(ctx context.Context, name, createdBy string) (*model.Organization, error) {
	if name == "" || createdBy == "" {
		return nil, fmt.Errorf("%w: both name and created_by are required", ErrValidation)
	}
	creatorID, err := util.ParseObjectID(createdBy)
	if err != nil {
		return nil, fmt.Errorf("%w: created_by", ErrInvalidID)
	}

	if _, err := s.users.FindByID(ctx, creatorID); err != nil {
		return nil, err
	}

	org := &model.Organization{
		Name:      name,
		CreatedBy: creatorID,
		Members: []model.MemberPermission{
			{UserID: creatorID, AccessLevel: model.AccessLevelAdmin},
		},
	}
	org, err = s.orgs.Create(ctx, org)
	if err != nil {
		return nil, err
	}

	if err := s.users.AddOrganization(ctx, creatorID, org.ID); err != nil {
		return nil, fmt.Errorf("organization created but creator back-reference failed: %w", err)
	}
	return org, nil
}

// List returns the filtered total count and one page of organizations.
func (s *OrgService) List(ctx context.Context, nameFilter string, limit, offset int64) (int64, []*model.Organization, error) {
	return s.orgs.List(ctx, nameFilter, limit, offset)
}

// Get looks up an organization by id when key is a well-formed ObjectID,
// otherwise by exact name match.
func (s *OrgService) Get(ctx context.Context, key string) (*model.Organization, error) {
	if id, err := util.ParseObjectID(key); err == nil {
		return s.orgs.FindByID(ctx, id)
	}
	return s.orgs.FindByName(ctx, key)
}

// AddMember enrolls a user into an organization. Preconditions, first failure
// wins: identifiers parse, organization exists, target user exists, author is
// an ADMIN member, target is not already a member, access level is valid.
// The author and the target may be the same identifier.
func (s *OrgService) AddMember(ctx context.Context, orgID, authorID, userID, accessLevel string) (*model.Organization, error) {
	ids, err := s.parseMemberIDs(orgID, authorID, userID)
	if err != nil {
		return nil, err
	}

	org, err := s.orgs.FindByID(ctx, ids.org)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, ids.user); err != nil {
		return nil, err
	}
	if !org.IsAdmin(ids.author) {
		return nil, ErrNotAuthorized
	}
	if _, ok := org.Member(ids.user); ok {
		return nil, repository.ErrAlreadyMember
	}
	level, err := model.ParseAccessLevel(accessLevel)
	if err != nil {
		return nil, err
	}

	member := model.MemberPermission{UserID: ids.user, AccessLevel: level}
	if err := s.orgs.AddMember(ctx, ids.org, member); err != nil {
		return nil, err
	}
	if err := s.users.AddOrganization(ctx, ids.user, ids.org); err != nil {
		return nil, fmt.Errorf("member added but user back-reference failed: %w", err)
	}
	return s.orgs.FindByID(ctx, ids.org)
}

// UpdateMemberAccess sets an existing member's access level. Same ordered
// checks as AddMember, except the target must already be a member. Nothing
// prevents demoting the creator or the last remaining ADMIN.
func (s *OrgService) UpdateMemberAccess(ctx context.Context, orgID, authorID, userID, accessLevel string) (*model.Organization, error) {
	ids, err := s.parseMemberIDs(orgID, authorID, userID)
	if err != nil {
		return nil, err
	}

	org, err := s.orgs.FindByID(ctx, ids.org)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, ids.user); err != nil {
		return nil, err
	}
	if !org.IsAdmin(ids.author) {
		return nil, ErrNotAuthorized
	}
	if _, ok := org.Member(ids.user); !ok {
		return nil, repository.ErrMemberNotFound
	}
	level, err := model.ParseAccessLevel(accessLevel)
	if err != nil {
		return nil, err
	}

	if err := s.orgs.UpdateMemberAccess(ctx, ids.org, ids.user, level); err != nil {
		return nil, err
	}
	return s.orgs.FindByID(ctx, ids.org)
}

// RemoveMember removes a member and the matching back-reference. The creator
// check runs before the authorization check: even an ADMIN author is rejected
// when the target is the organization's creator.
func (s *OrgService) RemoveMember(ctx context.Context, orgID, authorID, userID string) (*model.Organization, error) {
	ids, err := s.parseMemberIDs(orgID, authorID, userID)
	if err != nil {
		return nil, err
	}

	org, err := s.orgs.FindByID(ctx, ids.org)
	if err != nil {
		return nil, err
	}
	if ids.user == org.CreatedBy {
		return nil, ErrCannotRemoveCreator
	}
	if !org.IsAdmin(ids.author) {
		return nil, ErrNotAuthorized
	}
	if _, ok := org.Member(ids.user); !ok {
		return nil, repository.ErrMemberNotFound
	}

	if err := s.orgs.RemoveMember(ctx, ids.org, ids.user); err != nil {
		return nil, err
	}
	if err := s.users.RemoveOrganization(ctx, ids.user, ids.org); err != nil {
		return nil, fmt.Errorf("member removed but user back-reference failed: %w", err)
	}
	return s.orgs.FindByID(ctx, ids.org)
}

type memberIDs struct {
	org    primitive.ObjectID
	author primitive.ObjectID
	user   primitive.ObjectID
}

func (s *OrgService) parseMemberIDs(orgID, authorID, userID string) (memberIDs, error) {
	var ids memberIDs
	var err error
	if ids.org, err = util.ParseObjectID(orgID); err != nil {
		return ids, fmt.Errorf("%w: organization id", ErrInvalidID)
	}
	if ids.author, err = util.ParseObjectID(authorID); err != nil {
		return ids, fmt.Errorf("%w: author id", ErrInvalidID)
	}
	if ids.user, err = util.ParseObjectID(userID); err != nil {
		return ids, fmt.Errorf("%w: user id", ErrInvalidID)
	}
	return ids, nil
}
