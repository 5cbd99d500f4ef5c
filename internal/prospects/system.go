package prospects

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for prospect domain operations.
// Prospects are created once and never updated or deleted.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*Prospect, error)
	Find(ctx context.Context, id uuid.UUID) (*Prospect, error)
	List(ctx context.Context) ([]Prospect, error)
}
