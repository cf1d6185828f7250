package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"full june 2025", date(2025, time.June, 1), date(2025, time.June, 30), 21},
		{"full may 2025", date(2025, time.May, 1), date(2025, time.May, 31), 22},
		{"single weekday", date(2025, time.June, 2), date(2025, time.June, 2), 1},
		{"single saturday", date(2025, time.June, 7), date(2025, time.June, 7), 0},
		{"weekend only", date(2025, time.June, 7), date(2025, time.June, 8), 0},
		{"one full week", date(2025, time.June, 2), date(2025, time.June, 8), 5},
		{"inverted range", date(2025, time.June, 30), date(2025, time.June, 1), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WorkingDays(c.start, c.end)
			if got != c.want {
				t.Errorf("WorkingDays(%s, %s) = %d, want %d",
					c.start.Format("2006-01-02"), c.end.Format("2006-01-02"), got, c.want)
			}
		})
	}
}

func TestWorkingDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, time.June, 2, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 6, 0, 1, 0, 0, time.UTC)
	if got := WorkingDays(start, end); got != 5 {
		t.Errorf("WorkingDays with time-of-day = %d, want 5", got)
	}
}

func TestIsWeekend(t *testing.T) {
	if !IsWeekend(date(2025, time.June, 7)) {
		t.Error("IsWeekend(saturday) = false, want true")
	}
	if !IsWeekend(date(2025, time.June, 8)) {
		t.Error("IsWeekend(sunday) = false, want true")
	}
	if IsWeekend(date(2025, time.June, 9)) {
		t.Error("IsWeekend(monday) = true, want false")
	}
}
