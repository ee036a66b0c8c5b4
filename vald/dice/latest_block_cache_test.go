package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/dicegame/vald/dice"
)

func TestGetSet(t *testing.T) {
	cache := dice.NewLatestBlockCache()

	_, ok := cache.Get()
	assert.False(t, ok)

	assert.True(t, cache.Set(0))
	actual, ok := cache.Get()
	assert.True(t, ok)
	assert.EqualValues(t, 0, actual)

	assert.True(t, cache.Set(10))
	assert.False(t, cache.Set(10))
	assert.False(t, cache.Set(9))

	actual, _ = cache.Get()
	assert.EqualValues(t, 10, actual)
}
