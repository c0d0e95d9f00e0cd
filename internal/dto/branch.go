package dto

// CreateBranchRequest defines the data needed to create a branch.
type CreateBranchRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	IsActive *bool  `json:"isActive"` // defaults to true
}

// UpdateBranchRequest defines the fields of a branch that can be changed.
type UpdateBranchRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	IsActive *bool   `json:"isActive"`
}
