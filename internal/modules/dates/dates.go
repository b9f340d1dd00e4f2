// README: Calendar timestamps and the absolute-minute arithmetic behind ordering and fees.
package dates

import "fmt"

const (
	MinutesPerDay = 1440
	// MinutesPerYear uses a fixed 365-day year; leap days only enter the
	// arithmetic through the month-offset table. The resulting scale is
	// calendar-naive but strictly monotonic, which is all that duration
	// math and ordering need.
	MinutesPerYear = 525600

	// FirstYear is the earliest year the system accepts.
	FirstYear = 2024
)

// Epoch is the timestamp the system starts at before any movement.
var Epoch = Timestamp{Year: 2024, Month: 1, Day: 1}

// Timestamp is an immutable calendar instant with minute precision.
// There is no timezone.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the Gregorian month length, February adjusted for
// leap years. Month is 1-based.
func DaysInMonth(month, year int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

func minutesBeforeMonth(month, year int) int {
	sum := 0
	for m := 1; m < month; m++ {
		sum += DaysInMonth(m, year) * MinutesPerDay
	}
	return sum
}

// Minutes converts t to its absolute-minute value.
func (t Timestamp) Minutes() int {
	return t.Year*MinutesPerYear + minutesBeforeMonth(t.Month, t.Year) +
		(t.Day-1)*MinutesPerDay + t.Hour*60 + t.Minute
}

// CompareDateTime orders two timestamps at full minute precision.
// Returns -1 when a is before b, 0 when equal, 1 when after.
func CompareDateTime(a, b Timestamp) int {
	am, bm := a.Minutes(), b.Minutes()
	switch {
	case am < bm:
		return -1
	case am > bm:
		return 1
	}
	return 0
}

// CompareDate orders by calendar day only, ignoring hour and minute.
func CompareDate(a, b Timestamp) int {
	switch {
	case a.Year != b.Year:
		return sign(a.Year - b.Year)
	case a.Month != b.Month:
		return sign(a.Month - b.Month)
	case a.Day != b.Day:
		return sign(a.Day - b.Day)
	}
	return 0
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

// Valid reports whether ts is a real calendar instant no earlier than
// FirstYear and, unless forBilling, not before last. Movements must be
// non-decreasing across the whole command stream; billing queries may
// reference any valid past date.
func Valid(ts, last Timestamp, forBilling bool) bool {
	if ts.Year < FirstYear {
		return false
	}
	if ts.Month < 1 || ts.Month > 12 {
		return false
	}
	if ts.Day < 1 || ts.Day > DaysInMonth(ts.Month, ts.Year) {
		return false
	}
	if ts.Hour < 0 || ts.Hour > 23 {
		return false
	}
	if ts.Minute < 0 || ts.Minute > 59 {
		return false
	}
	if !forBilling && CompareDateTime(ts, last) < 0 {
		return false
	}
	return true
}

// SpansFeb29 reports whether a stay straddles February 29 of the entry's
// year: the entry begins before the leap day ends and the exit lands after
// it starts. The fee calculator uses this to leave the leap day unbilled.
func SpansFeb29(entry, exit Timestamp) bool {
	if !IsLeapYear(entry.Year) {
		return false
	}
	if !(entry.Month < 3 || (entry.Month == 3 && entry.Day == 1)) {
		return false
	}
	feb29 := Timestamp{Year: entry.Year, Month: 2, Day: 29}
	start := feb29.Minutes()
	return exit.Minutes() > start && entry.Minutes() < start+MinutesPerDay
}

// String renders DD-MM-YYYY HH:MM, the simulator's only timestamp format.
func (t Timestamp) String() string {
	return fmt.Sprintf("%s %s", t.DateString(), t.ClockString())
}

func (t Timestamp) DateString() string {
	return fmt.Sprintf("%02d-%02d-%04d", t.Day, t.Month, t.Year)
}

func (t Timestamp) ClockString() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
