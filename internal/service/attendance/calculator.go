package attendance

import (
	"fmt"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/attendance"
)

// Calculator derives attendance accounting from a pair of timestamps. The
// standard shift is the overtime threshold: anything worked past it counts
// as overtime minutes.
type Calculator struct {
	StandardShiftMinutes int
}

func NewCalculator(standardShiftMinutes int) Calculator {
	return Calculator{StandardShiftMinutes: standardShiftMinutes}
}

// WorkMinutes returns whole minutes between clock-in and clock-out, rounded
// down. A clock-out before clock-in is rejected.
func (c Calculator) WorkMinutes(timeIn, timeOut time.Time) (int, error) {
	if timeOut.Before(timeIn) {
		return 0, attendance.ErrInvalidTimeOrder
	}
	return int(timeOut.Sub(timeIn).Minutes()), nil
}

// Overtime reports whether worked minutes exceed the standard shift and by
// how much.
func (c Calculator) Overtime(workMinutes int) (bool, int) {
	if workMinutes <= c.StandardShiftMinutes {
		return false, 0
	}
	return true, workMinutes - c.StandardShiftMinutes
}

// CombineDateAndClock builds a timestamp from a record's date and a "HH:MM"
// clock time in the date's location.
func CombineDateAndClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse clock time: %w", err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
