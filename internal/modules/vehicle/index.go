// README: Fixed-size chained hash index from licence plate to vehicle.
package vehicle

// tableSize is prime; plates are short and the byte-sum hash disperses
// adequately over it. The table never resizes.
const tableSize = 293

// Index maps licence plates to vehicles. Vehicles are only ever inserted.
type Index struct {
	buckets [tableSize]*bucketNode
}

type bucketNode struct {
	vehicle *Vehicle
	next    *bucketNode
}

func NewIndex() *Index {
	return &Index{}
}

func hash(plate string) int {
	sum := 0
	for i := 0; i < len(plate); i++ {
		sum += int(plate[i])
	}
	return sum % tableSize
}

// Insert adds v under its plate. The caller guarantees the plate is not
// already present.
func (ix *Index) Insert(v *Vehicle) {
	i := hash(v.Plate)
	ix.buckets[i] = &bucketNode{vehicle: v, next: ix.buckets[i]}
}

// Lookup returns the vehicle registered under plate, nil when unknown.
func (ix *Index) Lookup(plate string) *Vehicle {
	for n := ix.buckets[hash(plate)]; n != nil; n = n.next {
		if n.vehicle.Plate == plate {
			return n.vehicle
		}
	}
	return nil
}
