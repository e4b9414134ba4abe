package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is the coarse authorization level stored on a user record.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleHR    Role = "hr"
)

// Stamp records who performed a mutation, denormalized onto the document
// so audit reads never need a join.
type Stamp struct {
	ID    bson.ObjectID `json:"_id" bson:"_id"`
	Email string        `json:"email" bson:"email"`
}

// CompanyRef is the embedded company reference carried by users and jobs.
type CompanyRef struct {
	ID   bson.ObjectID `json:"_id" bson:"_id"`
	Name string        `json:"name" bson:"name"`
}

type User struct {
	ID       bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name     string        `json:"name" bson:"name"`
	Email    string        `json:"email" bson:"email"`
	Password string        `json:"-" bson:"password"`
	Age      int           `json:"age" bson:"age"`
	Gender   string        `json:"gender" bson:"gender"`
	Address  string        `json:"address" bson:"address"`
	Role     Role          `json:"role" bson:"role"`
	Company  *CompanyRef   `json:"company,omitempty" bson:"company,omitempty"`

	// Single-slot refresh token. Empty means no active session; issuing a
	// new token overwrites, and thereby revokes, the previous one.
	RefreshToken string `json:"-" bson:"refreshToken,omitempty"`

	CreatedBy *Stamp `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy *Stamp `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	DeletedBy *Stamp `json:"deletedBy,omitempty" bson:"deletedBy,omitempty"`

	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	IsDeleted bool       `json:"isDeleted" bson:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// Identity returns the public identity of the user, the shape embedded in
// token claims and login responses.
func (u User) Identity() Identity {
	return Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
