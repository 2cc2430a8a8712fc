package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/destiny-api/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("profile")

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "profile_"))
	assert.NotEqual(t, first, second)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("profile")

	assert.Equal(t, "profile_1", gen.Generate())
	assert.Equal(t, "profile_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
