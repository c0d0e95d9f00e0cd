package policy

import "github.com/alfadli/hrm_backend/internal/core/domain"

// Affordances tell the client which controls to show. They are a UX hint
// only; every request is still checked by Evaluate.
type Affordances struct {
	IsAdmin   bool `json:"isAdmin"`
	IsManager bool `json:"isManager"`
	IsStaff   bool `json:"isStaff"`
	CanWrite  bool `json:"canWrite"`
}

// AffordancesFor derives the client affordances of identity.
func AffordancesFor(identity domain.Identity) Affordances {
	var a Affordances
	switch identity.(type) {
	case domain.Admin:
		a.IsAdmin = true
	case domain.Manager:
		a.IsManager = true
	case domain.Staff:
		a.IsStaff = true
	}
	a.CanWrite = a.IsAdmin || a.IsStaff
	return a
}
