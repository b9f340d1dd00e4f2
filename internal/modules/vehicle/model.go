// README: Vehicle record tracked across its entire parking history.
package vehicle

import "github.com/tiago-firmino/iaed2024/internal/modules/dates"

// Vehicle is identified by its licence plate and lives for the whole run;
// it is created on its first entry and never deleted, even when the park it
// sits in is removed. CurrentPark names the park it currently occupies and
// is empty while it is on the street.
type Vehicle struct {
	Plate       string
	LastEntry   dates.Timestamp
	CurrentPark string
}

func (v *Vehicle) Parked() bool {
	return v.CurrentPark != ""
}
