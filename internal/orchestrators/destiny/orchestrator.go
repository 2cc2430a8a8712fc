// Package destiny implements the Destiny Board orchestrator. It loads
// profiles through the specs schema so stored data is always rehydrated
// onto the current table set before any level is read.
package destiny

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/KirkDiggler/destiny-api/internal/engine/itempower"
	"github.com/KirkDiggler/destiny-api/internal/engine/progression"
	"github.com/KirkDiggler/destiny-api/internal/engine/specs"
	"github.com/KirkDiggler/destiny-api/internal/engine/variant"
	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
	"github.com/KirkDiggler/destiny-api/internal/errors"
	"github.com/KirkDiggler/destiny-api/internal/pkg/idgen"
	catalogrepo "github.com/KirkDiggler/destiny-api/internal/repositories/catalog"
	profilerepo "github.com/KirkDiggler/destiny-api/internal/repositories/profile"
	service "github.com/KirkDiggler/destiny-api/internal/services/destiny"
)

// Config holds the dependencies for the destiny orchestrator
type Config struct {
	CatalogRepo catalogrepo.Repository
	ProfileRepo profilerepo.Repository
	Schema      *specs.Schema
	IDGenerator idgen.Generator

	Quality                  itempower.QualitySchedule
	MasteryModifierBonusRate float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.Schema == nil {
		vb.RequiredField("Schema")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.MasteryModifierBonusRate < 0 || math.IsNaN(c.MasteryModifierBonusRate) {
		vb.Field("MasteryModifierBonusRate", "must not be negative")
	}

	return vb.Build()
}

// rules is the table catalog and calculator derived from the item catalog
type rules struct {
	catalog *progression.Catalog
	calc    *itempower.Calculator
}

// Orchestrator implements the destiny.Service interface
type Orchestrator struct {
	catalogRepo catalogrepo.Repository
	profileRepo profilerepo.Repository
	schema      *specs.Schema
	idGenerator idgen.Generator
	quality     itempower.QualitySchedule
	masteryRate float64

	mu    sync.Mutex
	built *rules
}

// New creates a new destiny orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		catalogRepo: cfg.CatalogRepo,
		profileRepo: cfg.ProfileRepo,
		schema:      cfg.Schema,
		idGenerator: cfg.IDGenerator,
		quality:     cfg.Quality,
		masteryRate: cfg.MasteryModifierBonusRate,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ service.Service = (*Orchestrator)(nil)

// rules builds the progression catalog on first use. A failed build is not
// cached.
func (o *Orchestrator) rules(ctx context.Context) (*rules, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.built != nil {
		return o.built, nil
	}

	out, err := o.catalogRepo.List(ctx, catalogrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load item catalog")
	}

	catalog := progression.NewCatalog(out.Items)
	calc, err := itempower.New(&itempower.Config{
		Catalog:                  catalog,
		Quality:                  o.quality,
		MasteryModifierBonusRate: o.masteryRate,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calculator")
	}

	slog.InfoContext(ctx, "progression catalog built",
		"items", len(out.Items),
		"tables", catalog.Len())

	o.built = &rules{catalog: catalog, calc: calc}
	return o.built, nil
}

// Table and item rules

// BuildProgressionTables returns every progression table derived from the
// item catalog
func (o *Orchestrator) BuildProgressionTables(ctx context.Context, input *service.BuildProgressionTablesInput) (*service.BuildProgressionTablesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.rules(ctx)
	if err != nil {
		return nil, err
	}

	return &service.BuildProgressionTablesOutput{Tables: r.catalog.Tables()}, nil
}

// ClassifyVariant reports the variant class of an item id
func (o *Orchestrator) ClassifyVariant(_ context.Context, input *service.ClassifyVariantInput) (*service.ClassifyVariantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("itemID", input.ItemID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &service.ClassifyVariantOutput{Class: variant.Classify(input.ItemID)}, nil
}

// ResolveCrossSpecModifier looks an item up in the catalog and returns the
// cross-specialization modifier its specialization table gets
func (o *Orchestrator) ResolveCrossSpecModifier(ctx context.Context, input *service.ResolveCrossSpecModifierInput) (*service.ResolveCrossSpecModifierOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("itemID", input.ItemID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.catalogRepo.Get(ctx, catalogrepo.GetInput{ItemID: input.ItemID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %s", input.ItemID)
	}

	return &service.ResolveCrossSpecModifierOutput{
		Item:     out.Item,
		Class:    variant.Classify(out.Item.ID),
		Modifier: progression.ResolveCrossSpecModifier(out.Item),
	}, nil
}

// Item power

// CalculateItemPower evaluates one catalog item against a profile
func (o *Orchestrator) CalculateItemPower(ctx context.Context, input *service.CalculateItemPowerInput) (*service.CalculateItemPowerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("itemID", input.ItemID, vb)
	validateQuality("quality", input.Quality, vb)
	validateBaseIP("baseIP", input.BaseIP, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	r, err := o.rules(ctx)
	if err != nil {
		return nil, err
	}

	levels, err := o.levelsFor(ctx, input.OwnerID, input.Slot)
	if err != nil {
		return nil, err
	}

	calcInput, err := o.itemInput(ctx, service.LoadoutItem{
		ItemID:  input.ItemID,
		Quality: input.Quality,
		BaseIP:  input.BaseIP,
	}, levels)
	if err != nil {
		return nil, err
	}

	return &service.CalculateItemPowerOutput{Result: r.calc.Calculate(calcInput)}, nil
}

// CalculateLoadout evaluates a set of equipped items against one profile
func (o *Orchestrator) CalculateLoadout(ctx context.Context, input *service.CalculateLoadoutInput) (*service.CalculateLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	for i, item := range input.Items {
		errors.ValidateRequired(fieldName("items", i, "itemID"), item.ItemID, vb)
		validateQuality(fieldName("items", i, "quality"), item.Quality, vb)
		validateBaseIP(fieldName("items", i, "baseIP"), item.BaseIP, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	r, err := o.rules(ctx)
	if err != nil {
		return nil, err
	}

	levels, err := o.levelsFor(ctx, input.OwnerID, input.Slot)
	if err != nil {
		return nil, err
	}

	inputs := make([]itempower.Input, 0, len(input.Items))
	for _, item := range input.Items {
		calcInput, err := o.itemInput(ctx, item, levels)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, calcInput)
	}

	return &service.CalculateLoadoutOutput{Loadout: r.calc.CalculateLoadout(inputs)}, nil
}

func (o *Orchestrator) itemInput(ctx context.Context, item service.LoadoutItem, levels itempower.LevelSource) (itempower.Input, error) {
	out, err := o.catalogRepo.Get(ctx, catalogrepo.GetInput{ItemID: item.ItemID})
	if err != nil {
		return itempower.Input{}, errors.Wrapf(err, "failed to get item %s", item.ItemID)
	}

	base := out.Item.ItemPower
	if item.BaseIP != nil {
		base = *item.BaseIP
	}

	return itempower.Input{
		Item:    out.Item,
		BaseIP:  base,
		Quality: item.Quality,
		Specs:   levels,
	}, nil
}

// levelsFor returns the levels of a bound profile, or all zeros when no
// owner is given
func (o *Orchestrator) levelsFor(ctx context.Context, ownerID string, slot int) (itempower.LevelSource, error) {
	if ownerID == "" {
		return specs.NewStore(o.schema), nil
	}

	_, store, err := o.loadProfile(ctx, ownerID, slot)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Character profiles

// GetProfile returns a bound profile
func (o *Orchestrator) GetProfile(ctx context.Context, input *service.GetProfileInput) (*service.GetProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	data, store, err := o.loadProfile(ctx, input.OwnerID, input.Slot)
	if err != nil {
		return nil, err
	}

	return &service.GetProfileOutput{Profile: toEntity(data, store)}, nil
}

// BindProfile binds a character slot to a name and server. A new binding
// starts with every level at zero; rebinding renames and keeps levels.
func (o *Orchestrator) BindProfile(ctx context.Context, input *service.BindProfileInput) (*service.BindProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("server", input.Server, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, store, err := o.loadProfile(ctx, input.OwnerID, input.Slot)
	created := false
	switch {
	case errors.IsNotFound(err):
		created = true
		store = specs.NewStore(o.schema)
		data = &profilerepo.Data{
			ID:      o.idGenerator.Generate(),
			OwnerID: input.OwnerID,
			Slot:    input.Slot,
		}
	case err != nil:
		return nil, err
	}

	data.Name = input.Name
	data.Server = input.Server

	saved, err := o.save(ctx, data, store)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "profile bound",
		"owner_id", input.OwnerID,
		"slot", input.Slot,
		"profile_id", saved.ID,
		"created", created)

	return &service.BindProfileOutput{Profile: toEntity(saved, store), Created: created}, nil
}

// SetLevel sets one table level. Unknown table ids change nothing.
func (o *Orchestrator) SetLevel(ctx context.Context, input *service.SetLevelInput) (*service.SetLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("tableID", input.TableID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, store, err := o.loadProfile(ctx, input.OwnerID, input.Slot)
	if err != nil {
		return nil, err
	}

	if !store.SetLevel(input.TableID, input.Level) {
		slog.WarnContext(ctx, "ignoring level for unknown table",
			"owner_id", input.OwnerID,
			"slot", input.Slot,
			"table_id", input.TableID)
		return &service.SetLevelOutput{Profile: toEntity(data, store), Applied: false}, nil
	}

	saved, err := o.save(ctx, data, store)
	if err != nil {
		return nil, err
	}

	return &service.SetLevelOutput{Profile: toEntity(saved, store), Applied: true}, nil
}

// ImportSpecs replaces every level with a bulk import. Keys may be
// canonical ids or human-readable names; anything else is dropped.
func (o *Orchestrator) ImportSpecs(ctx context.Context, input *service.ImportSpecsInput) (*service.ImportSpecsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	data, store, err := o.loadProfile(ctx, input.OwnerID, input.Slot)
	if err != nil {
		return nil, err
	}

	store.Replace(input.Specs)

	saved, err := o.save(ctx, data, store)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "specs imported",
		"owner_id", input.OwnerID,
		"slot", input.Slot,
		"keys", len(input.Specs))

	return &service.ImportSpecsOutput{Profile: toEntity(saved, store)}, nil
}

// ResetProfile puts every level of a profile back to zero
func (o *Orchestrator) ResetProfile(ctx context.Context, input *service.ResetProfileInput) (*service.ResetProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	data, store, err := o.loadProfile(ctx, input.OwnerID, input.Slot)
	if err != nil {
		return nil, err
	}

	store.Reset()

	saved, err := o.save(ctx, data, store)
	if err != nil {
		return nil, err
	}

	return &service.ResetProfileOutput{Profile: toEntity(saved, store)}, nil
}

// ListProfiles returns every bound profile of an owner
func (o *Orchestrator) ListProfiles(ctx context.Context, input *service.ListProfilesInput) (*service.ListProfilesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.profileRepo.List(ctx, profilerepo.ListInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list profiles")
	}

	profiles := make([]*destiny.Profile, 0, len(out.Profiles))
	for _, data := range out.Profiles {
		if data.Slot >= specs.MaxSlots {
			continue
		}
		profiles = append(profiles, toEntity(data, specs.Load(o.schema, data.Specs)))
	}

	return &service.ListProfilesOutput{Profiles: profiles}, nil
}

// DeleteProfile unbinds a character slot
func (o *Orchestrator) DeleteProfile(ctx context.Context, input *service.DeleteProfileInput) (*service.DeleteProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateAddress(input.OwnerID, input.Slot); err != nil {
		return nil, err
	}

	if _, err := o.profileRepo.Delete(ctx, profilerepo.DeleteInput{
		OwnerID: input.OwnerID,
		Slot:    input.Slot,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete profile")
	}

	slog.InfoContext(ctx, "profile deleted",
		"owner_id", input.OwnerID,
		"slot", input.Slot)

	return &service.DeleteProfileOutput{}, nil
}

// loadProfile reads a profile and rehydrates its levels
func (o *Orchestrator) loadProfile(ctx context.Context, ownerID string, slot int) (*profilerepo.Data, *specs.Store, error) {
	if err := validateAddress(ownerID, slot); err != nil {
		return nil, nil, err
	}

	out, err := o.profileRepo.Get(ctx, profilerepo.GetInput{OwnerID: ownerID, Slot: slot})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to get profile")
	}

	return out.Profile, specs.Load(o.schema, out.Profile.Specs), nil
}

func (o *Orchestrator) save(ctx context.Context, data *profilerepo.Data, store *specs.Store) (*profilerepo.Data, error) {
	data.Specs = toPersisted(store.Snapshot())

	out, err := o.profileRepo.Save(ctx, profilerepo.SaveInput{Profile: data})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save profile")
	}
	return out.Profile, nil
}

func validateAddress(ownerID string, slot int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", ownerID, vb)
	errors.ValidateRange("slot", slot, 0, specs.MaxSlots-1, vb)
	return vb.Build()
}
