package models

import (
	"time"
)

type Role string

const (
	RoleUser      Role = "ROLE_USER"
	RoleAdmin     Role = "ROLE_ADMIN"
	RoleModerator Role = "ROLE_MODERATOR"
)

// RoleSet is the set of role tags a user holds. It is persisted as a JSON
// array so the same column works on PostgreSQL and SQLite.
type RoleSet []Role

// Has reports whether the set contains the given role.
func (r RoleSet) Has(role Role) bool {
	for _, held := range r {
		if held == role {
			return true
		}
	}
	return false
}

// Normalize deduplicates the set and guarantees ROLE_USER membership.
// Every account is at least a regular user, whatever else it holds.
func (r RoleSet) Normalize() RoleSet {
	out := RoleSet{RoleUser}
	for _, role := range r {
		if !out.Has(role) {
			out = append(out, role)
		}
	}
	return out
}

// Strings returns the set as plain strings, for JWT claims.
func (r RoleSet) Strings() []string {
	out := make([]string, len(r))
	for i, role := range r {
		out[i] = string(role)
	}
	return out
}

type User struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	Email                  string    `gorm:"type:varchar(180);uniqueIndex;not null" json:"email"`
	PasswordHash           string    `gorm:"type:varchar(255);not null" json:"-"` // Never expose password hash in JSON
	Roles                  RoleSet   `gorm:"serializer:json;type:text;not null" json:"roles"`
	NewsletterSubscription bool      `gorm:"not null;default:false" json:"newsletterSubscription"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}
