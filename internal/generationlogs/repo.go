package generationlogs

import "context"

// Repo is append-only.
type Repo interface {
	Create(ctx context.Context, record Record) error
}
