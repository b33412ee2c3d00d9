package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/restorun-backoffice/internal/domain"
)

func TestParseTimeframe(t *testing.T) {
	tf, err := ParseTimeframe("")
	require.NoError(t, err)
	assert.Equal(t, Week, tf)

	tf, err = ParseTimeframe("month")
	require.NoError(t, err)
	assert.Equal(t, 30, tf.Days())

	_, err = ParseTimeframe("year")
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestWindowFor(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	// 2024-01-10 22:00 UTC is already Jan 11 in Moscow.
	now := time.Date(2024, 1, 10, 22, 0, 0, 0, time.UTC)

	start, days := WindowFor(Week, now, moscow)
	assert.Equal(t, 7, days)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, moscow), start)

	start, days = WindowFor(Month, now, time.UTC)
	assert.Equal(t, 30, days)
	assert.Equal(t, time.Date(2023, 12, 12, 0, 0, 0, 0, time.UTC), start)
}
