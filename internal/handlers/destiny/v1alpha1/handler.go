// Package v1alpha1 handles the grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/destiny-api/internal/engine/itempower"
	"github.com/KirkDiggler/destiny-api/internal/engine/progression"
	"github.com/KirkDiggler/destiny-api/internal/engine/variant"
	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
	"github.com/KirkDiggler/destiny-api/internal/errors"
	service "github.com/KirkDiggler/destiny-api/internal/services/destiny"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	DestinyService service.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.DestinyService == nil {
		return errors.InvalidArgument("destiny service is required")
	}
	return nil
}

// Handler implements DestinyServiceServer
type Handler struct {
	destinyService service.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{destinyService: cfg.DestinyService}, nil
}

// Ensure Handler implements the server interface
var _ DestinyServiceServer = (*Handler)(nil)

// Response shapes

type tablesResponse struct {
	Tables []progression.Table `json:"tables"`
}

type classifyResponse struct {
	ItemID string        `json:"itemId"`
	Class  variant.Class `json:"class"`
	Simple bool          `json:"simple"`
}

type crossSpecResponse struct {
	Item     destiny.ItemEntry `json:"item"`
	Class    variant.Class     `json:"class"`
	Modifier float64           `json:"modifier"`
}

type itemPowerResponse struct {
	Result *itempower.Result `json:"result"`
}

type loadoutResponse struct {
	Loadout *itempower.LoadoutResult `json:"loadout"`
}

type profileResponse struct {
	Profile *destiny.Profile `json:"profile"`
	Created *bool            `json:"created,omitempty"`
	Applied *bool            `json:"applied,omitempty"`
}

type profilesResponse struct {
	Profiles []*destiny.Profile `json:"profiles"`
}

func respond(v any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	out, err := toStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func invalid(err error) (*structpb.Struct, error) {
	return nil, errors.ToGRPCError(err)
}

// BuildProgressionTables returns the table catalog
func (h *Handler) BuildProgressionTables(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.destinyService.BuildProgressionTables(ctx, &service.BuildProgressionTablesInput{})
	if err != nil {
		return respond(nil, err)
	}
	return respond(tablesResponse{Tables: out.Tables}, nil)
}

// ClassifyVariant classifies an item id
func (h *Handler) ClassifyVariant(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	itemID := r.requiredStr("itemId")
	if err := r.err(); err != nil {
		return invalid(err)
	}

	out, err := h.destinyService.ClassifyVariant(ctx, &service.ClassifyVariantInput{ItemID: itemID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(classifyResponse{
		ItemID: itemID,
		Class:  out.Class,
		Simple: out.Class.IsSimple(),
	}, nil)
}

// ResolveCrossSpecModifier returns a catalog item's cross-specialization modifier
func (h *Handler) ResolveCrossSpecModifier(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	itemID := r.requiredStr("itemId")
	if err := r.err(); err != nil {
		return invalid(err)
	}

	out, err := h.destinyService.ResolveCrossSpecModifier(ctx, &service.ResolveCrossSpecModifierInput{ItemID: itemID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(crossSpecResponse{Item: out.Item, Class: out.Class, Modifier: out.Modifier}, nil)
}

// CalculateItemPower evaluates one item
func (h *Handler) CalculateItemPower(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &service.CalculateItemPowerInput{
		OwnerID: r.str("ownerId"),
		Slot:    r.integer("slot"),
		ItemID:  r.requiredStr("itemId"),
		Quality: r.quality("quality"),
		BaseIP:  r.optionalNumber("baseIP"),
	}
	if err := r.err(); err != nil {
		return invalid(err)
	}

	out, err := h.destinyService.CalculateItemPower(ctx, input)
	if err != nil {
		return respond(nil, err)
	}
	return respond(itemPowerResponse{Result: out.Result}, nil)
}

// CalculateLoadout evaluates a set of equipped items
func (h *Handler) CalculateLoadout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &service.CalculateLoadoutInput{
		OwnerID: r.str("ownerId"),
		Slot:    r.integer("slot"),
	}
	for _, item := range r.list("items") {
		ir := newRequest(item)
		ir.vb = r.vb
		input.Items = append(input.Items, service.LoadoutItem{
			ItemID:  ir.requiredStr("itemId"),
			Quality: ir.quality("quality"),
			BaseIP:  ir.optionalNumber("baseIP"),
		})
	}
	if err := r.err(); err != nil {
		return invalid(err)
	}

	out, err := h.destinyService.CalculateLoadout(ctx, input)
	if err != nil {
		return respond(nil, err)
	}
	return respond(loadoutResponse{Loadout: out.Loadout}, nil)
}

// GetProfile returns a bound profile
func (h *Handler) GetProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &service.GetProfileInput{
		OwnerID: r.requiredStr("ownerId"),
		Slot:    r.integer("slot"),
	}
	if err := r.err(); err != nil {
		return invalid(err)
	}

	out, err := h.destinyService.GetProfile(ctx, input)
	if err != nil {
		return respond(nil, err)
	}
	return respond(profileResponse{Profile: out.Profile}, nil)
}

// BindProfile binds a character slot to a name and server
func (h *Handler) BindProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &service.BindProfileInput{
		OwnerID: r.requiredStr("ownerId"),
		Slot:    r.integer("slot"),
		Name:    r.requiredStr("name"),
		Server:  r.requiredStr("server"),
	}
	if err := r.err(); err != nil {
		return invalid(err)
	}

	out, err := h.destinyService.BindProfile(ctx, input)
	if err != nil {
		return respond(nil, err)
	}
	created := out.Created
	return respond(profileResponse{Profile: out.Profile, Created: &created}, nil)
}

// SetLevel sets one table level
func (h *Handler) SetLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &service.SetLevelInput{
		OwnerID: r.requiredStr("ownerId"),
		Slot:    r.integer("slot"),
		TableID: r.requiredStr("tableId"),
	}
	if level, ok := r.number("level"); ok {
		input.Level = level
	} else if _, present := req.GetFields()["level"]; !present {
		r.vb.RequiredField("level")
	}
	if err := r.err(); err != nil {
		return invalid(err)
	}

	out, err := h.destinyService.SetLevel(ctx, input)
	if err != nil {
		return respond(nil, err)
	}
	applied := out.Applied
	return respond(profileResponse{Profile: out.Profile, Applied: &applied}, nil)
}

// ImportSpecs replaces a profile's levels with a bulk import
func (h *Handler) ImportSpecs(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &service.ImportSpecsInput{
		OwnerID: r.requiredStr("ownerId"),
		Slot:    r.integer("slot"),
		Specs:   r.numberMap("specs"),
	}
	if err := r.err(); err != nil {
		return invalid(err)
	}

	out, err := h.destinyService.ImportSpecs(ctx, input)
	if err != nil {
		return respond(nil, err)
	}
	return respond(profileResponse{Profile: out.Profile}, nil)
}

// ResetProfile puts every level back to zero
func (h *Handler) ResetProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &service.ResetProfileInput{
		OwnerID: r.requiredStr("ownerId"),
		Slot:    r.integer("slot"),
	}
	if err := r.err(); err != nil {
		return invalid(err)
	}

	out, err := h.destinyService.ResetProfile(ctx, input)
	if err != nil {
		return respond(nil, err)
	}
	return respond(profileResponse{Profile: out.Profile}, nil)
}

// ListProfiles returns every bound profile of an owner
func (h *Handler) ListProfiles(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &service.ListProfilesInput{OwnerID: r.requiredStr("ownerId")}
	if err := r.err(); err != nil {
		return invalid(err)
	}

	out, err := h.destinyService.ListProfiles(ctx, input)
	if err != nil {
		return respond(nil, err)
	}
	return respond(profilesResponse{Profiles: out.Profiles}, nil)
}

// DeleteProfile unbinds a character slot
func (h *Handler) DeleteProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &service.DeleteProfileInput{
		OwnerID: r.requiredStr("ownerId"),
		Slot:    r.integer("slot"),
	}
	if err := r.err(); err != nil {
		return invalid(err)
	}

	if _, err := h.destinyService.DeleteProfile(ctx, input); err != nil {
		return respond(nil, err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{}}, nil
}
