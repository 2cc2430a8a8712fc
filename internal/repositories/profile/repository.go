// Package profile persists character specialization profiles. A profile is
// addressed by owner and slot; the owner index tracks which slots are bound.
package profile

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/KirkDiggler/destiny-api/internal/repositories/profile Repository

import (
	"context"
	"time"
)

// Data is the persisted form of a profile. Specs is kept as raw numbers so
// legacy blobs with human-readable keys or out-of-range values survive the
// round trip until the service rehydrates them.
type Data struct {
	ID        string             `json:"profile_id"`
	OwnerID   string             `json:"owner_id"`
	Slot      int                `json:"slot"`
	Name      string             `json:"name"`
	Server    string             `json:"server"`
	Specs     map[string]float64 `json:"specs"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Repository defines the storage interface for profiles
type Repository interface {
	// Get retrieves a profile
	// Returns errors.NotFound if the slot is not bound
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a profile and indexes its slot under the owner
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns every bound profile of an owner ordered by slot
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a profile
	// Returns errors.NotFound if the slot is not bound
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Scan visits every stored profile. Used by maintenance jobs.
	Scan(ctx context.Context, input ScanInput) (*ScanOutput, error)
}

// GetInput defines the request for retrieving a profile
type GetInput struct {
	OwnerID string
	Slot    int
}

// GetOutput defines the response for retrieving a profile
type GetOutput struct {
	Profile *Data
}

// SaveInput defines the request for saving a profile
type SaveInput struct {
	Profile *Data
}

// SaveOutput defines the response for saving a profile
type SaveOutput struct {
	Profile *Data
}

// ListInput defines the request for listing an owner's profiles
type ListInput struct {
	OwnerID string
}

// ListOutput defines the response for listing profiles
type ListOutput struct {
	Profiles []*Data
}

// DeleteInput defines the request for deleting a profile
type DeleteInput struct {
	OwnerID string
	Slot    int
}

// DeleteOutput defines the response for deleting a profile
type DeleteOutput struct{}

// ScanInput defines the request for scanning all profiles. Visit is called
// once per decodable profile; returning an error stops the scan.
type ScanInput struct {
	Visit func(ctx context.Context, profile *Data) error
}

// ScanOutput reports the scan result
type ScanOutput struct {
	Visited int
	Skipped int
}
