// README: Park aggregate plus the entry/exit movement records it owns.
package parking

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tiago-firmino/iaed2024/internal/collections"
	"github.com/tiago-firmino/iaed2024/internal/modules/dates"
	"github.com/tiago-firmino/iaed2024/internal/modules/pricing"
	"github.com/tiago-firmino/iaed2024/internal/modules/vehicle"
)

// Entry records a vehicle driving into a park. Entries live until their
// park is removed.
type Entry struct {
	ID       uuid.UUID
	ParkName string
	Plate    string
	At       dates.Timestamp
}

// Exit records a vehicle leaving a park together with the stay it closes
// and the amount charged. Immutable once created.
type Exit struct {
	ID        uuid.UUID
	ParkName  string
	Plate     string
	EnteredAt dates.Timestamp
	LeftAt    dates.Timestamp
	Paid      float64
}

// Park owns its movement logs and the membership list of vehicles
// currently inside; the vehicles themselves belong to the system-wide
// index and outlive the park.
type Park struct {
	Name     string
	Capacity int
	Tariff   pricing.Tariff

	entries *collections.List[*Entry]          // entry time ascending
	exits   *collections.List[*Exit]           // exit time ascending
	parked  *collections.List[*vehicle.Vehicle] // insertion order
	count   int
}

func newPark(name string, capacity int, tariff pricing.Tariff) *Park {
	return &Park{
		Name:     name,
		Capacity: capacity,
		Tariff:   tariff,
		entries:  collections.New[*Entry](),
		exits:    collections.New[*Exit](),
		parked:   collections.New[*vehicle.Vehicle](),
	}
}

// Free returns the number of unoccupied spaces.
func (p *Park) Free() int {
	return p.Capacity - p.count
}

func byName(a, b *Park) int {
	return strings.Compare(a.Name, b.Name)
}

func byEntryTime(a, b *Entry) int {
	return dates.CompareDateTime(a.At, b.At)
}

func byExitTime(a, b *Exit) int {
	return dates.CompareDateTime(a.LeftAt, b.LeftAt)
}
