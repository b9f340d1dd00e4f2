// README: Plate validation and index tests.
package vehicle

import (
	"fmt"
	"testing"

	"github.com/tiago-firmino/iaed2024/internal/modules/dates"
)

func TestValidPlate(t *testing.T) {
	cases := []struct {
		plate string
		want  bool
	}{
		{"AA-00-AA", true},  // letter, digit, letter
		{"00-AA-00", true},  // digit, letter, digit
		{"AA-00-00", true},  // one letter pair is enough
		{"00-00-00", true},  // three digit pairs allowed
		{"AA-AA-AA", false}, // no digit pair
		{"aa-00-AA", false}, // lowercase
		{"A1-00-AA", false}, // mixed group
		{"AA+00-AA", false}, // wrong separator
		{"AA-00-A", false},  // too short
		{"AA-00-AAA", false},
		{"AA-0O-AA", false}, // letter in a digit slot
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.plate, func(t *testing.T) {
			if got := ValidPlate(tc.plate); got != tc.want {
				t.Errorf("ValidPlate(%q) = %v, want %v", tc.plate, got, tc.want)
			}
		})
	}
}

func TestIndexInsertLookup(t *testing.T) {
	ix := NewIndex()
	v := &Vehicle{Plate: "AA-00-AA", LastEntry: dates.Epoch}
	ix.Insert(v)

	if got := ix.Lookup("AA-00-AA"); got != v {
		t.Fatalf("Lookup returned %v, want the inserted vehicle", got)
	}
	if got := ix.Lookup("BB-11-BB"); got != nil {
		t.Fatalf("Lookup of unknown plate = %v, want nil", got)
	}
}

// Plates with identical byte sums land in the same bucket; chaining must
// keep them all reachable.
func TestIndexCollisions(t *testing.T) {
	ix := NewIndex()
	a := &Vehicle{Plate: "AB-12-CD"}
	b := &Vehicle{Plate: "BA-12-DC"} // permutation, same byte sum
	c := &Vehicle{Plate: "CD-12-AB"}
	if hash(a.Plate) != hash(b.Plate) || hash(b.Plate) != hash(c.Plate) {
		t.Fatal("test plates should collide")
	}
	ix.Insert(a)
	ix.Insert(b)
	ix.Insert(c)

	for _, v := range []*Vehicle{a, b, c} {
		if got := ix.Lookup(v.Plate); got != v {
			t.Errorf("Lookup(%q) = %v, want %v", v.Plate, got, v)
		}
	}
}

func TestIndexManyVehicles(t *testing.T) {
	ix := NewIndex()
	var plates []string
	for i := 0; i < 600; i++ { // more vehicles than buckets
		p := fmt.Sprintf("AA-%02d-%c%c", i%100, 'A'+i%26, 'A'+(i/26)%26)
		if ix.Lookup(p) != nil {
			continue
		}
		plates = append(plates, p)
		ix.Insert(&Vehicle{Plate: p})
	}
	for _, p := range plates {
		v := ix.Lookup(p)
		if v == nil || v.Plate != p {
			t.Fatalf("Lookup(%q) lost the vehicle", p)
		}
	}
}

func TestParked(t *testing.T) {
	v := &Vehicle{Plate: "AA-00-AA"}
	if v.Parked() {
		t.Error("new vehicle should not be parked")
	}
	v.CurrentPark = "Saldanha"
	if !v.Parked() {
		t.Error("vehicle with a current park should be parked")
	}
}
