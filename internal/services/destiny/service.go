// Package destiny defines the interface for Destiny Board and item power
// operations
package destiny

//go:generate mockgen -destination=mock/mock_service.go -package=destinymock github.com/KirkDiggler/destiny-api/internal/services/destiny Service

import (
	"context"

	"github.com/KirkDiggler/destiny-api/internal/engine/itempower"
	"github.com/KirkDiggler/destiny-api/internal/engine/progression"
	"github.com/KirkDiggler/destiny-api/internal/engine/variant"
	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
)

// Service defines the interface for Destiny Board operations
type Service interface {
	// Tables and item rules
	BuildProgressionTables(ctx context.Context, input *BuildProgressionTablesInput) (*BuildProgressionTablesOutput, error)
	ClassifyVariant(ctx context.Context, input *ClassifyVariantInput) (*ClassifyVariantOutput, error)
	ResolveCrossSpecModifier(ctx context.Context, input *ResolveCrossSpecModifierInput) (*ResolveCrossSpecModifierOutput, error)

	// Item power
	CalculateItemPower(ctx context.Context, input *CalculateItemPowerInput) (*CalculateItemPowerOutput, error)
	CalculateLoadout(ctx context.Context, input *CalculateLoadoutInput) (*CalculateLoadoutOutput, error)

	// Character profiles
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)
	BindProfile(ctx context.Context, input *BindProfileInput) (*BindProfileOutput, error)
	SetLevel(ctx context.Context, input *SetLevelInput) (*SetLevelOutput, error)
	ImportSpecs(ctx context.Context, input *ImportSpecsInput) (*ImportSpecsOutput, error)
	ResetProfile(ctx context.Context, input *ResetProfileInput) (*ResetProfileOutput, error)
	ListProfiles(ctx context.Context, input *ListProfilesInput) (*ListProfilesOutput, error)
	DeleteProfile(ctx context.Context, input *DeleteProfileInput) (*DeleteProfileOutput, error)
}

// Table and item rule types

// BuildProgressionTablesInput defines the request for building tables
type BuildProgressionTablesInput struct{}

// BuildProgressionTablesOutput defines the response for building tables
type BuildProgressionTablesOutput struct {
	Tables []progression.Table
}

// ClassifyVariantInput defines the request for classifying an item id
type ClassifyVariantInput struct {
	ItemID string
}

// ClassifyVariantOutput defines the response for classifying an item id
type ClassifyVariantOutput struct {
	Class variant.Class
}

// ResolveCrossSpecModifierInput defines the request for a catalog item's
// cross-specialization modifier
type ResolveCrossSpecModifierInput struct {
	ItemID string
}

// ResolveCrossSpecModifierOutput defines the response for a cross-spec lookup
type ResolveCrossSpecModifierOutput struct {
	Item     destiny.ItemEntry
	Class    variant.Class
	Modifier float64
}

// Item power types

// CalculateItemPowerInput defines the request for one item's power.
// An empty OwnerID evaluates against a profile with every level at zero.
type CalculateItemPowerInput struct {
	OwnerID string
	Slot    int
	ItemID  string
	Quality destiny.Quality
	BaseIP  *float64 // Optional, defaults to the catalog item power
}

// CalculateItemPowerOutput defines the response for one item's power
type CalculateItemPowerOutput struct {
	Result *itempower.Result
}

// LoadoutItem is one equipped item of a loadout request
type LoadoutItem struct {
	ItemID  string
	Quality destiny.Quality
	BaseIP  *float64
}

// CalculateLoadoutInput defines the request for a set of equipped items
type CalculateLoadoutInput struct {
	OwnerID string
	Slot    int
	Items   []LoadoutItem
}

// CalculateLoadoutOutput defines the response for a loadout
type CalculateLoadoutOutput struct {
	Loadout *itempower.LoadoutResult
}

// Profile types

// GetProfileInput defines the request for getting a profile
type GetProfileInput struct {
	OwnerID string
	Slot    int
}

// GetProfileOutput defines the response for getting a profile
type GetProfileOutput struct {
	Profile *destiny.Profile
}

// BindProfileInput defines the request for binding a character slot
type BindProfileInput struct {
	OwnerID string
	Slot    int
	Name    string
	Server  string
}

// BindProfileOutput defines the response for binding a character slot
type BindProfileOutput struct {
	Profile *destiny.Profile
	Created bool
}

// SetLevelInput defines the request for setting one table level
type SetLevelInput struct {
	OwnerID string
	Slot    int
	TableID string
	Level   float64
}

// SetLevelOutput defines the response for setting a level.
// Applied is false when the table id is unknown and nothing changed.
type SetLevelOutput struct {
	Profile *destiny.Profile
	Applied bool
}

// ImportSpecsInput defines the request for a bulk import. Keys may be
// canonical ids or human-readable names.
type ImportSpecsInput struct {
	OwnerID string
	Slot    int
	Specs   map[string]float64
}

// ImportSpecsOutput defines the response for a bulk import
type ImportSpecsOutput struct {
	Profile *destiny.Profile
}

// ResetProfileInput defines the request for resetting levels to zero
type ResetProfileInput struct {
	OwnerID string
	Slot    int
}

// ResetProfileOutput defines the response for a reset
type ResetProfileOutput struct {
	Profile *destiny.Profile
}

// ListProfilesInput defines the request for listing an owner's profiles
type ListProfilesInput struct {
	OwnerID string
}

// ListProfilesOutput defines the response for listing profiles
type ListProfilesOutput struct {
	Profiles []*destiny.Profile
}

// DeleteProfileInput defines the request for unbinding a slot
type DeleteProfileInput struct {
	OwnerID string
	Slot    int
}

// DeleteProfileOutput defines the response for unbinding a slot
type DeleteProfileOutput struct{}
