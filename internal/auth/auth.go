// Package auth holds the role model. Roles are caller-supplied and not
// verified here; the Authorizer interface is the seam where a real
// identity backend would plug in.
package auth

import "errors"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Authorizer decides which roles may review pending bookings.
type Authorizer interface {
	CanReview(role Role) bool
}

// RoleAuthorizer grants review rights to admins only.
type RoleAuthorizer struct{}

func (RoleAuthorizer) CanReview(role Role) bool {
	return role == RoleAdmin
}

var ErrUnknownUser = errors.New("unknown user id")

// demoAccounts is the fixed id-to-role map of the demo deployment.
var demoAccounts = map[string]Role{
	"123": RoleStudent,
	"456": RoleTeacher,
	"789": RoleAdmin,
}

// Login resolves a demo user id to its role.
func Login(userID string) (Role, error) {
	role, ok := demoAccounts[userID]
	if !ok {
		return "", ErrUnknownUser
	}
	return role, nil
}
