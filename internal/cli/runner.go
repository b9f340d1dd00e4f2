// README: Command dispatch loop: parses lines, drives the System, renders results.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/labstack/gommon/log"

	"github.com/tiago-firmino/iaed2024/internal/modules/parking"
	"github.com/tiago-firmino/iaed2024/internal/modules/pricing"
)

// Runner reads commands from an input stream and writes each command's
// report to out. Diagnostics go to the logger, never to out.
type Runner struct {
	sys *parking.System
	out io.Writer
	log *log.Logger
}

func NewRunner(sys *parking.System, out io.Writer, logger *log.Logger) *Runner {
	return &Runner{sys: sys, out: out, log: logger}
}

// Run processes commands until the quit command or EOF.
func (r *Runner) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if !r.dispatch(sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

// dispatch handles one line; false means quit.
func (r *Runner) dispatch(line string) bool {
	ls := newLineScanner(line)
	cmd, ok := ls.word()
	if !ok {
		return true // blank line
	}
	switch cmd {
	case "q":
		return false
	case "p":
		r.handlePark(ls)
	case "e":
		r.handleEntry(ls)
	case "s":
		r.handleExit(ls)
	case "v":
		r.handleActivity(ls)
	case "f":
		r.handleBilling(ls)
	case "r":
		r.handleRemove(ls)
	case "u":
		r.handlePaid(ls)
	default:
		r.log.Warnf("ignoring unknown command %q", cmd)
	}
	return true
}

// handlePark lists every park when called without arguments, otherwise
// creates one.
func (r *Runner) handlePark(ls *lineScanner) {
	if !ls.more() {
		for _, p := range r.sys.ListParks() {
			fmt.Fprintf(r.out, "%s %d %d\n", p.Name, p.Capacity, p.Free)
		}
		return
	}
	name, valid, _ := ls.name()
	if !valid {
		fmt.Fprintln(r.out, "invalid parking name.")
		return
	}
	if !ls.more() {
		return
	}
	capacity, ok := ls.int()
	if !ok {
		fmt.Fprintln(r.out, "invalid cost.")
		return
	}
	var prices [3]float64
	for i := range prices {
		f, ok := ls.float()
		if !ok {
			fmt.Fprintln(r.out, "invalid cost.")
			return
		}
		prices[i] = f
	}
	cmd := parking.CreateParkCommand{
		Name:     name,
		Capacity: capacity,
		Tariff: pricing.Tariff{
			FirstHour: prices[0],
			Hour:      prices[1],
			MaxDaily:  prices[2],
		},
	}

	switch err := r.sys.CreatePark(cmd); {
	case err == nil:
		r.log.Debugf("park %q created, capacity %d", name, capacity)
	case errors.Is(err, parking.ErrTooManyParks):
		fmt.Fprintln(r.out, "too many parks.")
	case errors.Is(err, parking.ErrDuplicatePark):
		fmt.Fprintf(r.out, "%s: parking already exists.\n", name)
	case errors.Is(err, parking.ErrInvalidCapacity):
		fmt.Fprintf(r.out, "%d: invalid capacity.\n", capacity)
	case errors.Is(err, parking.ErrInvalidTariff):
		fmt.Fprintln(r.out, "invalid cost.")
	}
}

func (r *Runner) handleEntry(ls *lineScanner) {
	name, _, _ := ls.name()
	plate, _ := ls.word()
	at, ok := ls.stamp()
	if !ok {
		fmt.Fprintln(r.out, "invalid date.")
		return
	}
	receipt, err := r.sys.RegisterEntry(parking.MovementCommand{ParkName: name, Plate: plate, At: at})
	if err != nil {
		r.printMovementError(err, name, plate)
		return
	}
	r.log.Debugf("entry %s recorded, id=%s", plate, receipt.ID)
	fmt.Fprintf(r.out, "%s %d\n", receipt.ParkName, receipt.Free)
}

func (r *Runner) handleExit(ls *lineScanner) {
	name, _, _ := ls.name()
	plate, _ := ls.word()
	at, ok := ls.stamp()
	if !ok {
		fmt.Fprintln(r.out, "invalid date.")
		return
	}
	receipt, err := r.sys.RegisterExit(parking.MovementCommand{ParkName: name, Plate: plate, At: at})
	if err != nil {
		r.printMovementError(err, name, plate)
		return
	}
	r.log.Debugf("exit %s recorded, id=%s, paid %.2f", plate, receipt.ID, receipt.Paid)
	fmt.Fprintf(r.out, "%s %s %s %.2f\n", receipt.Plate, receipt.EnteredAt, receipt.LeftAt, receipt.Paid)
}

func (r *Runner) printMovementError(err error, parkName, plate string) {
	switch {
	case errors.Is(err, parking.ErrNoSuchPark):
		fmt.Fprintf(r.out, "%s: no such parking.\n", parkName)
	case errors.Is(err, parking.ErrInvalidDate):
		fmt.Fprintln(r.out, "invalid date.")
	case errors.Is(err, parking.ErrParkFull):
		fmt.Fprintf(r.out, "%s: parking is full.\n", parkName)
	case errors.Is(err, parking.ErrInvalidPlate):
		fmt.Fprintf(r.out, "%s: invalid licence plate.\n", plate)
	case errors.Is(err, parking.ErrInvalidEntry):
		fmt.Fprintf(r.out, "%s: invalid vehicle entry.\n", plate)
	case errors.Is(err, parking.ErrInvalidExit):
		fmt.Fprintf(r.out, "%s: invalid vehicle exit.\n", plate)
	}
}

func (r *Runner) handleActivity(ls *lineScanner) {
	plate, _ := ls.word()
	records, err := r.sys.VehicleActivity(plate)
	switch {
	case errors.Is(err, parking.ErrInvalidPlate):
		fmt.Fprintf(r.out, "%s: invalid licence plate.\n", plate)
		return
	case errors.Is(err, parking.ErrNoActivity):
		fmt.Fprintf(r.out, "%s: no entries found in any parking.\n", plate)
		return
	}
	for _, rec := range records {
		if rec.LeftAt != nil {
			fmt.Fprintf(r.out, "%s %s %s\n", rec.ParkName, rec.EnteredAt, *rec.LeftAt)
		} else {
			fmt.Fprintf(r.out, "%s %s\n", rec.ParkName, rec.EnteredAt)
		}
	}
}

// handleBilling prints per-day totals with one argument and the day's
// exits with two.
func (r *Runner) handleBilling(ls *lineScanner) {
	name, _, _ := ls.name()
	if !ls.more() {
		totals, err := r.sys.BillingTotals(name)
		if errors.Is(err, parking.ErrNoSuchPark) {
			fmt.Fprintf(r.out, "%s: no such parking.\n", name)
			return
		}
		for _, d := range totals {
			fmt.Fprintf(r.out, "%s %.2f\n", d.Date.DateString(), d.Total)
		}
		return
	}
	// A malformed date still defers to the park check; the zero timestamp
	// can never validate.
	day, _ := ls.date()
	rows, err := r.sys.BillingByDay(name, day)
	switch {
	case errors.Is(err, parking.ErrNoSuchPark):
		fmt.Fprintf(r.out, "%s: no such parking.\n", name)
		return
	case errors.Is(err, parking.ErrInvalidDate):
		fmt.Fprintln(r.out, "invalid date.")
		return
	}
	for _, row := range rows {
		fmt.Fprintf(r.out, "%s %s %.2f\n", row.Plate, row.At.ClockString(), row.Paid)
	}
}

func (r *Runner) handleRemove(ls *lineScanner) {
	name, _, _ := ls.name()
	remaining, err := r.sys.RemovePark(name)
	if errors.Is(err, parking.ErrNoSuchPark) {
		fmt.Fprintf(r.out, "%s: no such parking.\n", name)
		return
	}
	r.log.Debugf("park %q removed, %d remain", name, len(remaining))
	for _, n := range remaining {
		fmt.Fprintln(r.out, n)
	}
}

func (r *Runner) handlePaid(ls *lineScanner) {
	plate, _ := ls.word()
	total, err := r.sys.VehicleTotalPaid(plate)
	if errors.Is(err, parking.ErrInvalidPlate) {
		fmt.Fprintf(r.out, "%s: invalid licence plate.\n", plate)
		return
	}
	fmt.Fprintf(r.out, "%.2f\n", total)
}
