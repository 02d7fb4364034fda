package acl

import (
	"context"

	"github.com/google/uuid"
)

// FileNodeRepository is the slice of the filenode repository this package
// needs. Satisfied by filenode.Repository.
type FileNodeRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
