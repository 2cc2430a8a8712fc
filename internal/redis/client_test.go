package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/destiny-api/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
}

func (s *ClientTestSuite) TearDownTest() {
	s.mr.Close()
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	client, err := redis.NewClient("", nil)
	s.Error(err)
	s.Nil(client)
}

func (s *ClientTestSuite) TestConnect() {
	testCases := []struct {
		name      string
		endpoints []string
		wantErr   bool
	}{
		{name: "no endpoints", endpoints: nil, wantErr: true},
		{name: "single endpoint", endpoints: []string{s.mr.Addr()}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, err := redis.Connect(tc.endpoints, nil)
			if tc.wantErr {
				s.Error(err)
				return
			}
			s.Require().NoError(err)
			s.NoError(client.Ping(context.Background()).Err())
			s.NoError(client.Close())
		})
	}
}
