package domain

import (
	"errors"
	"fmt"
)

// Role is one of the three roles a user can hold.
type Role string

const (
	RoleAdmin   Role = "ADMIN"   // full read/write across all branches
	RoleManager Role = "MANAGER" // read-only across all branches
	RoleStaff   Role = "STAFF"   // read/write limited to one home branch
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// ErrStaffWithoutBranch is returned when a STAFF identity is requested without a home branch.
var ErrStaffWithoutBranch = errors.New("staff identity requires a home branch")

// Identity is the authenticated caller of a request. It is built fresh from
// the verified token on every request and never persisted.
//
// The concrete types are Admin, Manager and Staff; only Staff carries a home
// branch, so a STAFF caller without one cannot be represented.
type Identity interface {
	UserID() string
	Role() Role
	isIdentity()
}

// Admin is an ADMIN caller.
type Admin struct {
	ID string
}

func (a Admin) UserID() string { return a.ID }
func (Admin) Role() Role { return RoleAdmin }
func (Admin) isIdentity() {}

// Manager is a MANAGER caller.
type Manager struct {
	ID string
}

func (m Manager) UserID() string { return m.ID }
func (Manager) Role() Role { return RoleManager }
func (Manager) isIdentity() {}

// Staff is a STAFF caller bound to HomeBranchID.
type Staff struct {
	ID           string
	HomeBranchID string
}

func (s Staff) UserID() string { return s.ID }
func (Staff) Role() Role { return RoleStaff }
func (Staff) isIdentity() {}

// NewIdentity builds the variant matching role. branchID is ignored for
// ADMIN and MANAGER and required for STAFF.
func NewIdentity(userID string, role Role, branchID *string) (Identity, error) {
	if userID == "" {
		return nil, errors.New("identity requires a user id")
	}
	switch role {
	case RoleAdmin:
		return Admin{ID: userID}, nil
	case RoleManager:
		return Manager{ID: userID}, nil
	case RoleStaff:
		if branchID == nil || *branchID == "" {
			return nil, ErrStaffWithoutBranch
		}
		return Staff{ID: userID, HomeBranchID: *branchID}, nil
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}
}

// HomeBranchOf returns the home branch of a Staff identity and false for everyone else.
func HomeBranchOf(id Identity) (string, bool) {
	if s, ok := id.(Staff); ok {
		return s.HomeBranchID, true
	}
	return "", false
}
