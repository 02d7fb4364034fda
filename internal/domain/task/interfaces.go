package task

import (
	"context"

	"github.com/google/uuid"

	"aurorah/internal/domain/filenode"
)

// Narrow read surfaces this package needs from its neighbours. Each is
// satisfied structurally by the neighbour's Repository, so wiring stays in
// cmd/api and tests can stub them.

type FileNodeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*filenode.FileNode, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type PresetRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type TranslationRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ProofreadingRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Fetcher reads the raw document body from a node's file_url.
type Fetcher interface {
	ReadRawText(ctx context.Context, url string) (string, error)
}
