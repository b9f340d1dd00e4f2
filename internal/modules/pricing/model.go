// README: Tariff definition for a park's pricing schedule.
package pricing

// Tariff is the three-tier price schedule attached to a park: the rate per
// 15-minute interval inside the first hour, the rate per interval after it,
// and the cap a single day can cost.
type Tariff struct {
	FirstHour float64
	Hour      float64
	MaxDaily  float64
}

// Valid reports whether all amounts are positive and strictly increasing
// across the tiers. Checked once at park creation, never re-checked.
func (t Tariff) Valid() bool {
	if t.FirstHour <= 0 || t.Hour <= 0 || t.MaxDaily <= 0 {
		return false
	}
	return t.FirstHour < t.Hour && t.Hour < t.MaxDaily
}
