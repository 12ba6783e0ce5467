// internal/types/types.go
package types

// CreatureID is the stable identity of a creature. Statuses and other weak
// references store it instead of a pointer so that a removed creature is a
// failed lookup, not a dangling reference.
type CreatureID uint64

// NoCreature is never allocated.
const NoCreature CreatureID = 0

// IDAllocator hands out increasing creature IDs, starting at 1.
type IDAllocator struct {
	next CreatureID
}

// Next returns a fresh ID.
func (a *IDAllocator) Next() CreatureID {
	a.next++
	return a.next
}
