package acl

import "github.com/google/uuid"

type CreateACLRequest struct {
	FileID      uuid.UUID `json:"file_id" binding:"required"`
	PrincipalID uuid.UUID `json:"principal_id" binding:"required"`
	Role        string    `json:"role" binding:"omitempty,max=32"`
}

type UpdateACLRequest struct {
	FileID      uuid.UUID `json:"file_id" binding:"required"`
	PrincipalID uuid.UUID `json:"principal_id" binding:"required"`
	Role        string    `json:"role" binding:"required,max=32"`
}
