// README: Billing and activity queries over the movement logs.
package parking

import (
	"github.com/tiago-firmino/iaed2024/internal/modules/dates"
	"github.com/tiago-firmino/iaed2024/internal/modules/vehicle"
)

// BillingRow is one exit on the queried day.
type BillingRow struct {
	Plate string
	At    dates.Timestamp
	Paid  float64
}

// DailyTotal is a park's revenue for one calendar day.
type DailyTotal struct {
	Date  dates.Timestamp
	Total float64
}

// ActivityRecord pairs an entry with the exit that closed it; LeftAt is
// nil while the vehicle is still inside.
type ActivityRecord struct {
	ParkName  string
	EnteredAt dates.Timestamp
	LeftAt    *dates.Timestamp
}

// BillingByDay lists a park's exits on one calendar day in chronological
// order. The day must be valid and not after the last accepted movement;
// monotonicity does not apply, so any past day may be queried.
func (s *System) BillingByDay(parkName string, day dates.Timestamp) ([]BillingRow, error) {
	p := s.lookupPark(parkName)
	if p == nil {
		return nil, ErrNoSuchPark
	}
	if dates.CompareDate(day, s.lastStamp) > 0 {
		return nil, ErrInvalidDate
	}
	if !dates.Valid(day, s.lastStamp, true) {
		return nil, ErrInvalidDate
	}

	var rows []BillingRow
	// Exits are sorted by full timestamp, so one day's records form a
	// contiguous run; stop once past it.
	started := false
	for e := range p.exits.All() {
		cmp := dates.CompareDate(e.LeftAt, day)
		if started && cmp != 0 {
			break
		}
		if cmp == 0 {
			started = true
			rows = append(rows, BillingRow{Plate: e.Plate, At: e.LeftAt, Paid: e.Paid})
		}
	}
	return rows, nil
}

// BillingTotals reports a park's revenue per day since creation, in
// chronological order.
func (s *System) BillingTotals(parkName string) ([]DailyTotal, error) {
	p := s.lookupPark(parkName)
	if p == nil {
		return nil, ErrNoSuchPark
	}

	var totals []DailyTotal
	first, ok := p.exits.Front()
	if !ok {
		return totals, nil
	}

	day := first.LeftAt
	sum := 0.0
	for e := range p.exits.All() {
		if dates.CompareDate(day, e.LeftAt) != 0 {
			totals = append(totals, DailyTotal{Date: day, Total: sum})
			sum = 0
		}
		sum += e.Paid
		day = e.LeftAt
	}
	totals = append(totals, DailyTotal{Date: day, Total: sum})
	return totals, nil
}

// VehicleTotalPaid sums everything the vehicle has ever paid, across all
// parks. An unknown vehicle has simply paid nothing.
func (s *System) VehicleTotalPaid(plate string) (float64, error) {
	if !vehicle.ValidPlate(plate) {
		return 0, ErrInvalidPlate
	}
	total := 0.0
	for p := range s.parks.All() {
		for e := range p.exits.All() {
			if e.Plate == plate {
				total += e.Paid
			}
		}
	}
	return total, nil
}

// VehicleActivity lists the vehicle's stays grouped by park in name order
// and chronologically within each park. Each entry is paired with the
// first exit of that plate in that park at or after the entry time; an
// open stay has no exit. A vehicle with no history is a rejection.
func (s *System) VehicleActivity(plate string) ([]ActivityRecord, error) {
	if !vehicle.ValidPlate(plate) {
		return nil, ErrInvalidPlate
	}

	var records []ActivityRecord
	for p := range s.sorted.All() {
		for e := range p.entries.All() {
			if e.Plate != plate {
				continue
			}
			rec := ActivityRecord{ParkName: p.Name, EnteredAt: e.At}
			for x := range p.exits.All() {
				if x.Plate == plate && dates.CompareDateTime(x.LeftAt, e.At) >= 0 {
					left := x.LeftAt
					rec.LeftAt = &left
					break
				}
			}
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, ErrNoActivity
	}
	return records, nil
}
