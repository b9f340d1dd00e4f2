// README: Tiered parking fee calculator.
package pricing

import "github.com/tiago-firmino/iaed2024/internal/modules/dates"

// Calculate returns the amount due for a stay between entry and exit under
// the given tariff.
//
// Each full day is charged at the daily cap. The leftover partial day is
// billed in 15-minute intervals: the first hour holds at most four
// intervals at the first-hour rate, every interval after that costs the
// regular rate, and the partial day as a whole never exceeds the daily cap.
// A stay that straddles February 29 has one day's worth of minutes
// deducted first, so the leap day itself is never billed; the deduction is
// clamped so a short straddling stay costs zero rather than going
// negative.
func Calculate(entry, exit dates.Timestamp, t Tariff) float64 {
	duration := exit.Minutes() - entry.Minutes()
	if duration <= 0 {
		return 0
	}
	if dates.SpansFeb29(entry, exit) {
		duration -= dates.MinutesPerDay
		if duration < 0 {
			duration = 0
		}
	}

	fullDays := duration / dates.MinutesPerDay
	rem := duration % dates.MinutesPerDay
	total := float64(fullDays) * t.MaxDaily
	if rem == 0 {
		return total
	}

	// First hour: up to four 15-minute intervals.
	intervals := 4
	if rem < 60 {
		intervals = (rem-1)/15 + 1
	}
	partial := float64(intervals) * t.FirstHour
	if rem < intervals*15 {
		rem = 0
	} else {
		rem -= intervals * 15
	}

	// Past the first hour: plain 15-minute rounding.
	partial += float64((rem+14)/15) * t.Hour

	if partial > t.MaxDaily {
		partial = t.MaxDaily
	}
	return total + partial
}
