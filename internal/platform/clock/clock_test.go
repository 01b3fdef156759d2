package clock_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/SscSPs/sopas_backend/internal/platform/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_UsesBusinessTimezone(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)

	// 03:30 UTC on March 2nd is still March 1st in Lima (UTC-5).
	instant := time.Date(2026, 3, 2, 3, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), clock.DateOf(instant, lima))
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), clock.DateOf(instant, time.UTC))
}

func TestFixed(t *testing.T) {
	start := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start, time.UTC)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), c.Today())

	c.Advance(2 * time.Hour)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), c.Today())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestSystemClock_NowIsUTC(t *testing.T) {
	c := clock.NewSystemClock(nil)
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.Equal(t, time.UTC, c.Today().Location())
}
