// Package catalog provides read access to the external item catalog
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/destiny-api/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
)

// Repository defines read access to the item catalog. The catalog is loaded
// once and is immutable afterwards.
type Repository interface {
	// List returns every item in catalog order
	// Returns errors.Internal when the catalog cannot be loaded
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get returns a single item
	// Returns errors.InvalidArgument for an empty item ID
	// Returns errors.NotFound if the item is not in the catalog
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// ListInput defines the input for listing items
type ListInput struct{}

// ListOutput defines the output for listing items
type ListOutput struct {
	Items []destiny.ItemEntry
}

// GetInput defines the input for getting an item
type GetInput struct {
	ItemID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item destiny.ItemEntry
}
