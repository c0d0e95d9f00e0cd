package domain

// User is an account that can log in. STAFF users always carry a BranchID.
type User struct {
	UserID       string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         Role    `json:"role"`
	BranchID     *string `json:"branchId,omitempty"`
	BranchName   string  `json:"branchName,omitempty"`
	PasswordHash string  `json:"-"`
	AuditFields
}

// Identity returns the request identity this user would authenticate as.
func (u User) Identity() (Identity, error) {
	return NewIdentity(u.UserID, u.Role, u.BranchID)
}
