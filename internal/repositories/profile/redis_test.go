package profile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	apperrors "github.com/KirkDiggler/destiny-api/internal/errors"
	"github.com/KirkDiggler/destiny-api/internal/pkg/clock"
	"github.com/KirkDiggler/destiny-api/internal/repositories/profile"
	"github.com/KirkDiggler/destiny-api/internal/testutils"
)

const testOwnerID = "owner_456"

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    profile.Repository
	ctx     context.Context
	now     time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T(), nil)
	s.mr = mr
	s.cleanup = cleanup
	s.now = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	repo, err := profile.NewRedis(&profile.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testProfile(slot int) *profile.Data {
	return &profile.Data{
		ID:      "profile_1",
		OwnerID: testOwnerID,
		Slot:    slot,
		Name:    "Ember",
		Server:  "west",
		Specs:   map[string]float64{"FIRE_STAFF_FIGHTER": 50, "FIRE_STAFF_SPECIALIST": 20},
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	repo, err := profile.NewRedis(nil)
	s.Error(err)
	s.Nil(repo)

	repo, err = profile.NewRedis(&profile.RedisConfig{})
	s.Error(err)
	s.Nil(repo)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	s.Run("round trip", func() {
		out, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: s.testProfile(0)})
		s.Require().NoError(err)
		s.Equal(s.now, out.Profile.UpdatedAt)

		got, err := s.repo.Get(s.ctx, profile.GetInput{OwnerID: testOwnerID, Slot: 0})
		s.Require().NoError(err)
		s.Equal("Ember", got.Profile.Name)
		s.Equal("west", got.Profile.Server)
		s.Equal(50.0, got.Profile.Specs["FIRE_STAFF_FIGHTER"])
		s.True(s.now.Equal(got.Profile.UpdatedAt))
	})

	s.Run("indexes the slot", func() {
		members, err := s.mr.Members("destiny:owner:" + testOwnerID + ":slots")
		s.Require().NoError(err)
		s.Contains(members, "0")
	})

	s.Run("nil specs stored as empty object", func() {
		p := s.testProfile(1)
		p.Specs = nil
		_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: p})
		s.Require().NoError(err)

		got, err := s.repo.Get(s.ctx, profile.GetInput{OwnerID: testOwnerID, Slot: 1})
		s.Require().NoError(err)
		s.NotNil(got.Profile.Specs)
		s.Empty(got.Profile.Specs)
	})

	s.Run("missing profile", func() {
		got, err := s.repo.Get(s.ctx, profile.GetInput{OwnerID: testOwnerID, Slot: 2})
		s.Error(err)
		s.Nil(got)
		s.True(apperrors.IsNotFound(err))
	})

	s.Run("invalid input", func() {
		_, err := s.repo.Save(s.ctx, profile.SaveInput{})
		s.True(apperrors.IsInvalidArgument(err))

		_, err = s.repo.Get(s.ctx, profile.GetInput{Slot: 0})
		s.True(apperrors.IsInvalidArgument(err))

		_, err = s.repo.Get(s.ctx, profile.GetInput{OwnerID: testOwnerID, Slot: -1})
		s.True(apperrors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGetLegacyBlob() {
	s.Require().NoError(s.mr.Set(profile.Key(testOwnerID, 0),
		`{"profile_id":"old","owner_id":"owner_456","slot":0,"name":"Old","specs":{"Fire Staff Fighter":"75","FIRE_STAFF_SPECIALIST":130.4,"broken":{"x":1}}}`))

	got, err := s.repo.Get(s.ctx, profile.GetInput{OwnerID: testOwnerID, Slot: 0})
	s.Require().NoError(err)
	s.Equal(map[string]float64{
		"Fire Staff Fighter":    75,
		"FIRE_STAFF_SPECIALIST": 130.4,
	}, got.Profile.Specs)
}

func (s *RedisRepositoryTestSuite) TestGetCorruptBlob() {
	s.Require().NoError(s.mr.Set(profile.Key(testOwnerID, 0), `{"profile_id":`))

	_, err := s.repo.Get(s.ctx, profile.GetInput{OwnerID: testOwnerID, Slot: 0})
	s.Error(err)
	s.Equal(apperrors.CodeDataLoss, apperrors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestList() {
	for _, slot := range []int{2, 0} {
		_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: s.testProfile(slot)})
		s.Require().NoError(err)
	}

	s.Run("ordered by slot", func() {
		out, err := s.repo.List(s.ctx, profile.ListInput{OwnerID: testOwnerID})
		s.Require().NoError(err)
		s.Require().Len(out.Profiles, 2)
		s.Equal(0, out.Profiles[0].Slot)
		s.Equal(2, out.Profiles[1].Slot)
	})

	s.Run("dangling index entries are skipped", func() {
		s.mr.Del(profile.Key(testOwnerID, 2))

		out, err := s.repo.List(s.ctx, profile.ListInput{OwnerID: testOwnerID})
		s.Require().NoError(err)
		s.Len(out.Profiles, 1)
	})

	s.Run("unknown owner", func() {
		out, err := s.repo.List(s.ctx, profile.ListInput{OwnerID: "nobody"})
		s.Require().NoError(err)
		s.NotNil(out.Profiles)
		s.Empty(out.Profiles)
	})
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: s.testProfile(1)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, profile.DeleteInput{OwnerID: testOwnerID, Slot: 1})
	s.Require().NoError(err)
	s.False(s.mr.Exists(profile.Key(testOwnerID, 1)))

	members, _ := s.mr.Members("destiny:owner:" + testOwnerID + ":slots")
	s.NotContains(members, "1")

	_, err = s.repo.Delete(s.ctx, profile.DeleteInput{OwnerID: testOwnerID, Slot: 1})
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestScan() {
	for _, slot := range []int{0, 1} {
		_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: s.testProfile(slot)})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.mr.Set(profile.Key("other", 0), `not json`))

	s.Run("visits decodable profiles", func() {
		var seen []int
		out, err := s.repo.Scan(s.ctx, profile.ScanInput{
			Visit: func(_ context.Context, p *profile.Data) error {
				seen = append(seen, p.Slot)
				return nil
			},
		})
		s.Require().NoError(err)
		s.Equal(2, out.Visited)
		s.Equal(1, out.Skipped)
		s.ElementsMatch([]int{0, 1}, seen)
	})

	s.Run("visit error stops the scan", func() {
		stop := errors.New("stop")
		_, err := s.repo.Scan(s.ctx, profile.ScanInput{
			Visit: func(context.Context, *profile.Data) error { return stop },
		})
		s.ErrorIs(err, stop)
	})

	s.Run("visit required", func() {
		_, err := s.repo.Scan(s.ctx, profile.ScanInput{})
		s.True(apperrors.IsInvalidArgument(err))
	})
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
