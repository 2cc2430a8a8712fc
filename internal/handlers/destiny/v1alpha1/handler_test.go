package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/destiny-api/internal/engine/itempower"
	"github.com/KirkDiggler/destiny-api/internal/engine/progression"
	"github.com/KirkDiggler/destiny-api/internal/engine/variant"
	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
	"github.com/KirkDiggler/destiny-api/internal/errors"
	"github.com/KirkDiggler/destiny-api/internal/handlers/destiny/v1alpha1"
	service "github.com/KirkDiggler/destiny-api/internal/services/destiny"
	destinymock "github.com/KirkDiggler/destiny-api/internal/services/destiny/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *destinymock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context

	testOwnerID string
	profile     *destiny.Profile
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = destinymock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		DestinyService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler
	s.ctx = context.Background()

	s.testOwnerID = "owner_123"
	s.profile = &destiny.Profile{
		ID:        "profile_1",
		OwnerID:   s.testOwnerID,
		Slot:      1,
		Name:      "Ember",
		Server:    "west",
		Specs:     map[string]int{"FIRE_STAFF_FIGHTER": 50},
		UpdatedAt: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) mustStruct(m map[string]any) *structpb.Struct {
	st, err := structpb.NewStruct(m)
	s.Require().NoError(err)
	return st
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	h, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)
	s.Nil(h)

	h, err = v1alpha1.NewHandler(nil)
	s.Error(err)
	s.Nil(h)
}

func (s *HandlerTestSuite) TestBuildProgressionTables() {
	s.mockService.EXPECT().
		BuildProgressionTables(s.ctx, &service.BuildProgressionTablesInput{}).
		Return(&service.BuildProgressionTablesOutput{Tables: []progression.Table{
			{UniqueName: "FIRE_STAFF_FIGHTER", MasteryModifier: 0.2, Progression: []progression.Point{{Level: 1, Points: 1000}}},
		}}, nil)

	resp, err := s.handler.BuildProgressionTables(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)

	tables := resp.GetFields()["tables"].GetListValue().GetValues()
	s.Require().Len(tables, 1)
	table := tables[0].GetStructValue().GetFields()
	s.Equal("FIRE_STAFF_FIGHTER", table["uniquename"].GetStringValue())
	s.InDelta(0.2, table["masterymodifier"].GetNumberValue(), 1e-12)
	s.Len(table["progression"].GetListValue().GetValues(), 1)
}

func (s *HandlerTestSuite) TestClassifyVariant() {
	s.Run("classifies", func() {
		s.mockService.EXPECT().
			ClassifyVariant(s.ctx, &service.ClassifyVariantInput{ItemID: "T6_MAIN_SWORD_AVALON"}).
			Return(&service.ClassifyVariantOutput{Class: variant.Avalon}, nil)

		resp, err := s.handler.ClassifyVariant(s.ctx, s.mustStruct(map[string]any{"itemId": "T6_MAIN_SWORD_AVALON"}))
		s.Require().NoError(err)
		s.Equal("avalon", resp.GetFields()["class"].GetStringValue())
		s.False(resp.GetFields()["simple"].GetBoolValue())
	})

	s.Run("missing item id", func() {
		resp, err := s.handler.ClassifyVariant(s.ctx, &structpb.Struct{})
		s.Nil(resp)
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestResolveCrossSpecModifierNotFound() {
	s.mockService.EXPECT().
		ResolveCrossSpecModifier(s.ctx, &service.ResolveCrossSpecModifierInput{ItemID: "T8_NOPE"}).
		Return(nil, errors.NotFoundf("item T8_NOPE not found").WithMeta("item_id", "T8_NOPE"))

	_, err := s.handler.ResolveCrossSpecModifier(s.ctx, s.mustStruct(map[string]any{"itemId": "T8_NOPE"}))
	s.Equal(codes.NotFound, status.Code(err))

	converted := errors.FromGRPCError(err)
	var appErr *errors.Error
	s.Require().True(errors.As(converted, &appErr))
	s.Equal("T8_NOPE", appErr.Meta["item_id"])
}

func (s *HandlerTestSuite) TestCalculateItemPower() {
	s.Run("passes every field", func() {
		base := 800.0
		s.mockService.EXPECT().
			CalculateItemPower(s.ctx, &service.CalculateItemPowerInput{
				OwnerID: s.testOwnerID,
				Slot:    1,
				ItemID:  "T4_MAIN_FIRESTAFF",
				Quality: destiny.QualityExcellent,
				BaseIP:  &base,
			}).
			Return(&service.CalculateItemPowerOutput{Result: &itempower.Result{
				ItemID:           "T4_MAIN_FIRESTAFF",
				BaseIP:           800,
				TotalIP:          851,
				SiblingSpecsUsed: []itempower.SiblingSpec{{TableID: "GREAT_FIRE_STAFF_SPECIALIST", Level: 10, Modifier: 0.1, Contribution: 1}},
			}}, nil)

		resp, err := s.handler.CalculateItemPower(s.ctx, s.mustStruct(map[string]any{
			"ownerId": s.testOwnerID,
			"slot":    1,
			"itemId":  "T4_MAIN_FIRESTAFF",
			"quality": "excellent",
			"baseIP":  800,
		}))
		s.Require().NoError(err)

		result := resp.GetFields()["result"].GetStructValue().GetFields()
		s.InDelta(851.0, result["totalIP"].GetNumberValue(), 1e-9)
		s.Len(result["siblingSpecsUsed"].GetListValue().GetValues(), 1)
	})

	s.Run("quality by number", func() {
		s.mockService.EXPECT().
			CalculateItemPower(s.ctx, &service.CalculateItemPowerInput{
				ItemID:  "T4_OFF_SHIELD",
				Quality: destiny.QualityMasterpiece,
			}).
			Return(&service.CalculateItemPowerOutput{Result: &itempower.Result{ItemID: "T4_OFF_SHIELD"}}, nil)

		_, err := s.handler.CalculateItemPower(s.ctx, s.mustStruct(map[string]any{
			"itemId":  "T4_OFF_SHIELD",
			"quality": 5,
		}))
		s.NoError(err)
	})

	s.Run("malformed fields", func() {
		testCases := []struct {
			name string
			req  map[string]any
		}{
			{name: "fractional slot", req: map[string]any{"itemId": "X", "slot": 1.5}},
			{name: "unknown quality", req: map[string]any{"itemId": "X", "quality": "legendary"}},
			{name: "base not numeric", req: map[string]any{"itemId": "X", "baseIP": "lots"}},
			{name: "item id not a string", req: map[string]any{"itemId": 7}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				_, err := s.handler.CalculateItemPower(s.ctx, s.mustStruct(tc.req))
				s.Equal(codes.InvalidArgument, status.Code(err))
			})
		}
	})
}

func (s *HandlerTestSuite) TestCalculateLoadout() {
	s.mockService.EXPECT().
		CalculateLoadout(s.ctx, &service.CalculateLoadoutInput{
			OwnerID: s.testOwnerID,
			Items: []service.LoadoutItem{
				{ItemID: "T4_MAIN_FIRESTAFF"},
				{ItemID: "T4_OFF_SHIELD", Quality: destiny.QualityGood},
			},
		}).
		Return(&service.CalculateLoadoutOutput{Loadout: &itempower.LoadoutResult{
			Items:     []*itempower.Result{{ItemID: "T4_MAIN_FIRESTAFF"}, {ItemID: "T4_OFF_SHIELD"}},
			AverageIP: 725,
		}}, nil)

	resp, err := s.handler.CalculateLoadout(s.ctx, s.mustStruct(map[string]any{
		"ownerId": s.testOwnerID,
		"items": []any{
			map[string]any{"itemId": "T4_MAIN_FIRESTAFF"},
			map[string]any{"itemId": "T4_OFF_SHIELD", "quality": "good"},
		},
	}))
	s.Require().NoError(err)

	loadout := resp.GetFields()["loadout"].GetStructValue().GetFields()
	s.InDelta(725.0, loadout["averageIP"].GetNumberValue(), 1e-9)
	s.Len(loadout["items"].GetListValue().GetValues(), 2)
}

func (s *HandlerTestSuite) TestBindProfile() {
	s.mockService.EXPECT().
		BindProfile(s.ctx, &service.BindProfileInput{
			OwnerID: s.testOwnerID,
			Slot:    1,
			Name:    "Ember",
			Server:  "west",
		}).
		Return(&service.BindProfileOutput{Profile: s.profile, Created: true}, nil)

	resp, err := s.handler.BindProfile(s.ctx, s.mustStruct(map[string]any{
		"ownerId": s.testOwnerID,
		"slot":    1,
		"name":    "Ember",
		"server":  "west",
	}))
	s.Require().NoError(err)
	s.True(resp.GetFields()["created"].GetBoolValue())

	profile := resp.GetFields()["profile"].GetStructValue().GetFields()
	s.Equal("profile_1", profile["profileId"].GetStringValue())
	s.InDelta(50.0, profile["specs"].GetStructValue().GetFields()["FIRE_STAFF_FIGHTER"].GetNumberValue(), 1e-9)
}

func (s *HandlerTestSuite) TestSetLevel() {
	s.Run("reports applied", func() {
		s.mockService.EXPECT().
			SetLevel(s.ctx, &service.SetLevelInput{
				OwnerID: s.testOwnerID,
				Slot:    1,
				TableID: "NOT_A_TABLE",
				Level:   40,
			}).
			Return(&service.SetLevelOutput{Profile: s.profile, Applied: false}, nil)

		resp, err := s.handler.SetLevel(s.ctx, s.mustStruct(map[string]any{
			"ownerId": s.testOwnerID,
			"slot":    1,
			"tableId": "NOT_A_TABLE",
			"level":   40,
		}))
		s.Require().NoError(err)

		applied, ok := resp.GetFields()["applied"]
		s.Require().True(ok)
		s.False(applied.GetBoolValue())
	})

	s.Run("level required", func() {
		_, err := s.handler.SetLevel(s.ctx, s.mustStruct(map[string]any{
			"ownerId": s.testOwnerID,
			"tableId": "SWORD_FIGHTER",
		}))
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestImportSpecs() {
	s.Run("passes raw keys through", func() {
		s.mockService.EXPECT().
			ImportSpecs(s.ctx, &service.ImportSpecsInput{
				OwnerID: s.testOwnerID,
				Slot:    1,
				Specs:   map[string]float64{"Fire Staff Fighter": 50},
			}).
			Return(&service.ImportSpecsOutput{Profile: s.profile}, nil)

		_, err := s.handler.ImportSpecs(s.ctx, s.mustStruct(map[string]any{
			"ownerId": s.testOwnerID,
			"slot":    1,
			"specs":   map[string]any{"Fire Staff Fighter": 50},
		}))
		s.NoError(err)
	})

	s.Run("stale values are coerced or dropped", func() {
		s.mockService.EXPECT().
			ImportSpecs(s.ctx, &service.ImportSpecsInput{
				OwnerID: s.testOwnerID,
				Specs: map[string]float64{
					"FIRE_STAFF_FIGHTER": 45,
					"SWORD_FIGHTER":      10,
				},
			}).
			Return(&service.ImportSpecsOutput{Profile: s.profile}, nil)

		_, err := s.handler.ImportSpecs(s.ctx, s.mustStruct(map[string]any{
			"ownerId": s.testOwnerID,
			"specs": map[string]any{
				"FIRE_STAFF_FIGHTER":  "45",
				"SWORD_FIGHTER":       10,
				"SHIELD_FIGHTER":      "fifty",
				"CLAYMORE_SPECIALIST": true,
			},
		}))
		s.NoError(err)
	})

	s.Run("specs not an object", func() {
		_, err := s.handler.ImportSpecs(s.ctx, s.mustStruct(map[string]any{
			"ownerId": s.testOwnerID,
			"specs":   "FIRE_STAFF_FIGHTER=45",
		}))
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestGetProfileNotFound() {
	s.mockService.EXPECT().
		GetProfile(s.ctx, &service.GetProfileInput{OwnerID: s.testOwnerID, Slot: 2}).
		Return(nil, errors.NotFound("profile not found"))

	_, err := s.handler.GetProfile(s.ctx, s.mustStruct(map[string]any{
		"ownerId": s.testOwnerID,
		"slot":    2,
	}))
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestListAndDeleteProfiles() {
	s.mockService.EXPECT().
		ListProfiles(s.ctx, &service.ListProfilesInput{OwnerID: s.testOwnerID}).
		Return(&service.ListProfilesOutput{Profiles: []*destiny.Profile{s.profile}}, nil)
	s.mockService.EXPECT().
		DeleteProfile(s.ctx, &service.DeleteProfileInput{OwnerID: s.testOwnerID, Slot: 1}).
		Return(&service.DeleteProfileOutput{}, nil)
	s.mockService.EXPECT().
		ResetProfile(s.ctx, &service.ResetProfileInput{OwnerID: s.testOwnerID, Slot: 1}).
		Return(&service.ResetProfileOutput{Profile: s.profile}, nil)

	resp, err := s.handler.ListProfiles(s.ctx, s.mustStruct(map[string]any{"ownerId": s.testOwnerID}))
	s.Require().NoError(err)
	s.Len(resp.GetFields()["profiles"].GetListValue().GetValues(), 1)

	_, err = s.handler.ResetProfile(s.ctx, s.mustStruct(map[string]any{"ownerId": s.testOwnerID, "slot": 1}))
	s.NoError(err)

	_, err = s.handler.DeleteProfile(s.ctx, s.mustStruct(map[string]any{"ownerId": s.testOwnerID, "slot": 1}))
	s.NoError(err)
}
