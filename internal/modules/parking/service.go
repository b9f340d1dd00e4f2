// README: System aggregate root: park lifecycle and vehicle movements.
package parking

import (
	"errors"

	"github.com/google/uuid"

	"github.com/tiago-firmino/iaed2024/internal/collections"
	"github.com/tiago-firmino/iaed2024/internal/modules/dates"
	"github.com/tiago-firmino/iaed2024/internal/modules/pricing"
	"github.com/tiago-firmino/iaed2024/internal/modules/vehicle"
)

// MaxParks is the hard cap on simultaneously existing parks.
const MaxParks = 20

// One sentinel per rejection reason; the CLI maps each to its user-facing
// message. A rejection aborts only the offending command and leaves the
// system untouched.
var (
	ErrTooManyParks    = errors.New("too many parks")
	ErrDuplicatePark   = errors.New("parking already exists")
	ErrInvalidCapacity = errors.New("invalid capacity")
	ErrInvalidTariff   = errors.New("invalid cost")
	ErrNoSuchPark      = errors.New("no such parking")
	ErrParkFull        = errors.New("parking is full")
	ErrInvalidPlate    = errors.New("invalid licence plate")
	ErrInvalidEntry    = errors.New("invalid vehicle entry")
	ErrInvalidExit     = errors.New("invalid vehicle exit")
	ErrInvalidDate     = errors.New("invalid date")
	ErrNoActivity      = errors.New("no entries found in any parking")
)

// System holds every park, a name-sorted view of them, the vehicle index
// and the timestamp of the last accepted movement. One instance per run,
// constructed explicitly and handed to the command layer.
type System struct {
	parks    *collections.List[*Park] // creation order
	sorted   *collections.List[*Park] // name order
	vehicles *vehicle.Index
	count    int
	limit    int
	// lastStamp enforces the monotonic command stream: no accepted
	// movement may precede it.
	lastStamp dates.Timestamp
}

func NewSystem() *System {
	return NewSystemWithLimit(MaxParks)
}

func NewSystemWithLimit(limit int) *System {
	return &System{
		parks:     collections.New[*Park](),
		sorted:    collections.New[*Park](),
		vehicles:  vehicle.NewIndex(),
		limit:     limit,
		lastStamp: dates.Epoch,
	}
}

type CreateParkCommand struct {
	Name     string
	Capacity int
	Tariff   pricing.Tariff
}

// MovementCommand covers both entries and exits.
type MovementCommand struct {
	ParkName string
	Plate    string
	At       dates.Timestamp
}

// ParkInfo is one row of the park listing.
type ParkInfo struct {
	Name     string
	Capacity int
	Free     int
}

// EntryReceipt reports where a vehicle entered and the space left.
type EntryReceipt struct {
	ID       uuid.UUID
	ParkName string
	Free     int
}

// ExitReceipt reports the closed stay and the amount charged.
type ExitReceipt struct {
	ID        uuid.UUID
	Plate     string
	EnteredAt dates.Timestamp
	LeftAt    dates.Timestamp
	Paid      float64
}

func (s *System) lookupPark(name string) *Park {
	for p := range s.parks.All() {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// CreatePark registers a new park. Rejections, in order: park cap reached,
// duplicate name, non-positive capacity, tariff amounts not positive and
// strictly increasing.
func (s *System) CreatePark(cmd CreateParkCommand) error {
	switch {
	case s.count >= s.limit:
		return ErrTooManyParks
	case s.lookupPark(cmd.Name) != nil:
		return ErrDuplicatePark
	case cmd.Capacity <= 0:
		return ErrInvalidCapacity
	case !cmd.Tariff.Valid():
		return ErrInvalidTariff
	}

	p := newPark(cmd.Name, cmd.Capacity, cmd.Tariff)
	s.parks.Append(p)
	s.sorted.SortedInsert(p, byName)
	s.count++
	return nil
}

// ListParks returns every park in creation order.
func (s *System) ListParks() []ParkInfo {
	out := make([]ParkInfo, 0, s.count)
	for p := range s.parks.All() {
		out = append(out, ParkInfo{Name: p.Name, Capacity: p.Capacity, Free: p.Free()})
	}
	return out
}

// RemovePark deletes the park and everything it owns. Vehicles still
// inside survive with their current stay cleared, so they remain findable
// by plate and may enter elsewhere. Returns the names of the remaining
// parks in name order.
func (s *System) RemovePark(name string) ([]string, error) {
	p := s.lookupPark(name)
	if p == nil {
		return nil, ErrNoSuchPark
	}

	for v := range p.parked.All() {
		v.CurrentPark = ""
	}
	s.parks.Remove(p)
	s.sorted.Remove(p)
	s.count--

	remaining := make([]string, 0, s.count)
	for q := range s.sorted.All() {
		remaining = append(remaining, q.Name)
	}
	return remaining, nil
}

// movementDateValid applies the calendar and monotonicity rules plus the
// blanket ban on movements dated February 29.
func (s *System) movementDateValid(at dates.Timestamp) bool {
	if !dates.Valid(at, s.lastStamp, false) {
		return false
	}
	return !(at.Day == 29 && at.Month == 2)
}

// RegisterEntry records a vehicle entering a park. Validation order
// matters for reporting: park existence, date, capacity, plate, vehicle
// state.
func (s *System) RegisterEntry(cmd MovementCommand) (EntryReceipt, error) {
	p := s.lookupPark(cmd.ParkName)
	if p == nil {
		return EntryReceipt{}, ErrNoSuchPark
	}
	if !s.movementDateValid(cmd.At) {
		return EntryReceipt{}, ErrInvalidDate
	}
	if p.count == p.Capacity {
		return EntryReceipt{}, ErrParkFull
	}
	if !vehicle.ValidPlate(cmd.Plate) {
		return EntryReceipt{}, ErrInvalidPlate
	}
	v := s.vehicles.Lookup(cmd.Plate)
	if v != nil && v.Parked() {
		return EntryReceipt{}, ErrInvalidEntry
	}

	if v == nil {
		v = &vehicle.Vehicle{Plate: cmd.Plate}
		s.vehicles.Insert(v)
	}
	v.LastEntry = cmd.At
	v.CurrentPark = p.Name

	entry := &Entry{
		ID:       uuid.New(),
		ParkName: p.Name,
		Plate:    cmd.Plate,
		At:       cmd.At,
	}
	p.entries.SortedInsert(entry, byEntryTime)
	p.parked.Append(v)
	p.count++
	s.lastStamp = cmd.At

	return EntryReceipt{ID: entry.ID, ParkName: p.Name, Free: p.Free()}, nil
}

// RegisterExit closes the vehicle's stay in this park, charging the tariff
// for the time since its last entry.
func (s *System) RegisterExit(cmd MovementCommand) (ExitReceipt, error) {
	p := s.lookupPark(cmd.ParkName)
	if p == nil {
		return ExitReceipt{}, ErrNoSuchPark
	}
	if !s.movementDateValid(cmd.At) {
		return ExitReceipt{}, ErrInvalidDate
	}
	if !vehicle.ValidPlate(cmd.Plate) {
		return ExitReceipt{}, ErrInvalidPlate
	}
	v := s.vehicles.Lookup(cmd.Plate)
	if v == nil || !v.Parked() || v.CurrentPark != p.Name {
		return ExitReceipt{}, ErrInvalidExit
	}

	paid := pricing.Calculate(v.LastEntry, cmd.At, p.Tariff)
	exit := &Exit{
		ID:        uuid.New(),
		ParkName:  p.Name,
		Plate:     cmd.Plate,
		EnteredAt: v.LastEntry,
		LeftAt:    cmd.At,
		Paid:      paid,
	}
	p.exits.SortedInsert(exit, byExitTime)
	p.parked.Remove(v)
	p.count--
	v.CurrentPark = ""
	s.lastStamp = cmd.At

	return ExitReceipt{
		ID:        exit.ID,
		Plate:     cmd.Plate,
		EnteredAt: exit.EnteredAt,
		LeftAt:    cmd.At,
		Paid:      paid,
	}, nil
}
