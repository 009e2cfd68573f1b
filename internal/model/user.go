package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name          string               `bson:"name" json:"name"`
	Email         string               `bson:"email" json:"email"`
	Organizations []primitive.ObjectID `bson:"organizations" json:"organizations"`
	CreatedAt     time.Time            `bson:"created_at" json:"created_at"`
}

// CreateUserRequest is the body of POST /users/
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UserResponse is the wire projection of a User; ids serialize as hex strings.
type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Organizations []string  `json:"organizations"`
	CreatedAt     time.Time `json:"created_at"`
}

// UsersResponse is the paginated list envelope for users.
type UsersResponse struct {
	TotalCount int64          `json:"total_count"`
	Users      []UserResponse `json:"users"`
}

// ToResponse converts User to UserResponse.
func (u *User) ToResponse() UserResponse {
	orgs := make([]string, len(u.Organizations))
	for i, id := range u.Organizations {
		orgs[i] = id.Hex()
	}
	return UserResponse{
		ID:            u.ID.Hex(),
		Name:          u.Name,
		Email:         u.Email,
		Organizations: orgs,
		CreatedAt:     u.CreatedAt,
	}
}
