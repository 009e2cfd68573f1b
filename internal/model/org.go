package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberPermission grants one user one access level within an organization.
// There is at most one entry per user_id in an organization's members list.
type MemberPermission struct {
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	AccessLevel AccessLevel        `bson:"access_level" json:"access_level"`
}

type Organization struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedBy primitive.ObjectID `bson:"created_by" json:"created_by"`
	Members   []MemberPermission `bson:"members" json:"members"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Member returns the membership entry for userID, if any.
func (o *Organization) Member(userID primitive.ObjectID) (MemberPermission, bool) {
	for _, m := range o.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return MemberPermission{}, false
}

// IsAdmin reports whether userID is a member with ADMIN access.
func (o *Organization) IsAdmin(userID primitive.ObjectID) bool {
	m, ok := o.Member(userID)
	return ok && m.AccessLevel == AccessLevelAdmin
}

// CreateOrganizationRequest is the body of POST /organizations/
type CreateOrganizationRequest struct {
	Name      string `json:"name" binding:"required"`
	CreatedBy string `json:"created_by" binding:"required"`
}

// MemberRequest is the body of the add/update member endpoints.
type MemberRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	AccessLevel string `json:"access_level" binding:"required"`
}

// RemoveMemberRequest is the body of the remove member endpoint.
type RemoveMemberRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// MemberPermissionResponse is the wire projection of a MemberPermission.
type MemberPermissionResponse struct {
	UserID      string      `json:"user_id"`
	AccessLevel AccessLevel `json:"access_level"`
}

// OrganizationResponse is the wire projection of an Organization.
type OrganizationResponse struct {
	ID        string                     `json:"id"`
	Name      string                     `json:"name"`
	CreatedBy string                     `json:"created_by"`
	Members   []MemberPermissionResponse `json:"members"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// OrganizationsResponse is the paginated list envelope for organizations.
type OrganizationsResponse struct {
	TotalCount    int64                  `json:"total_count"`
	Organizations []OrganizationResponse `json:"organizations"`
}

// ToResponse converts Organization to OrganizationResponse.
func (o *Organization) ToResponse() OrganizationResponse {
	members := make([]MemberPermissionResponse, len(o.Members))
	for i, m := range o.Members {
		members[i] = MemberPermissionResponse{
			UserID:      m.UserID.Hex(),
			AccessLevel: m.AccessLevel,
		}
	}
	return OrganizationResponse{
		ID:        o.ID.Hex(),
		Name:      o.Name,
		CreatedBy: o.CreatedBy.Hex(),
		Members:   members,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
