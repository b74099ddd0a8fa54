package reputation

import (
	"context"

	"github.com/hakem-ai/compare-cli/internal/model"
)

// Store is the persistence interface for reputation records. The comparison
// engine only reads; mutation is reserved for the admin CLI.
type Store interface {
	List(ctx context.Context) ([]model.ReputationRecord, error)
	Get(ctx context.Context, companyName string) (*model.ReputationRecord, error)
	Upsert(ctx context.Context, rec model.ReputationRecord) error
	Delete(ctx context.Context, companyName string) error

	Migrate(ctx context.Context) error
	Close() error
}
