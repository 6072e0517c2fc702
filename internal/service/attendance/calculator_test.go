package attendance

import (
	"testing"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_WorkMinutes(t *testing.T) {
	c := NewCalculator(480)
	in := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	minutes, err := c.WorkMinutes(in, in.Add(8*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 480, minutes)

	// Seconds round down to whole minutes
	minutes, err = c.WorkMinutes(in, in.Add(90*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, minutes)
}

func TestCalculator_WorkMinutes_InvalidOrder(t *testing.T) {
	c := NewCalculator(480)
	in := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	_, err := c.WorkMinutes(in, in.Add(-time.Hour))
	assert.ErrorIs(t, err, attendance.ErrInvalidTimeOrder)

	// A clock-out at the exact clock-in instant is a zero-minute day, not an error
	minutes, err := c.WorkMinutes(in, in)
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestCalculator_Overtime(t *testing.T) {
	c := NewCalculator(480)

	overtime, minutes := c.Overtime(480)
	assert.False(t, overtime)
	assert.Equal(t, 0, minutes)

	overtime, minutes = c.Overtime(481)
	assert.True(t, overtime)
	assert.Equal(t, 1, minutes)

	overtime, minutes = c.Overtime(600)
	assert.True(t, overtime)
	assert.Equal(t, 120, minutes)

	overtime, minutes = c.Overtime(0)
	assert.False(t, overtime)
	assert.Equal(t, 0, minutes)
}

func TestCombineDateAndClock(t *testing.T) {
	date := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)

	combined, err := CombineDateAndClock(date, "08:45")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 3, 8, 45, 0, 0, time.UTC), combined)

	_, err = CombineDateAndClock(date, "25:00")
	assert.Error(t, err)
}
