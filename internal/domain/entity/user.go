package entity

import (
	"time"
)

// User represents a club member account
type User struct {
	ID           int64      `bson:"_id" json:"id"`
	Email        string     `bson:"email" json:"email"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	FirstName    string     `bson:"first_name" json:"firstName"`
	LastName     string     `bson:"last_name" json:"lastName"`
	Phone        *string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      *string    `bson:"address,omitempty" json:"address,omitempty"`
	DateOfBirth  *time.Time `bson:"date_of_birth,omitempty" json:"dateOfBirth,omitempty"`
	Roles        []UserRole `bson:"roles" json:"roles"`
	CreatedAt    time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updatedAt"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// HasRole reports whether the user carries the given role tag.
func (u *User) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Caller returns the request identity derived from this account.
func (u *User) Caller() Caller {
	return NewCaller(u.ID, u.Roles)
}
