package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFixed_ReturnsUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("BRT", -3*60*60)
	local := time.Date(2023, 10, 16, 7, 0, 0, 0, loc)

	got := NewFixed(local).Now()

	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(local))
	assert.Equal(t, 10, got.Hour())
}

func TestNewSystem_ReturnsUTC(t *testing.T) {
	t.Parallel()

	got := NewSystem().Now()

	assert.Equal(t, time.UTC, got.Location())
	assert.WithinDuration(t, time.Now(), got, time.Second)
}
