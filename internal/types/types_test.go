package types

import "testing"

func TestIDAllocatorNeverReturnsNoCreature(t *testing.T) {
	var a IDAllocator
	seen := map[CreatureID]bool{}
	for i := 0; i < 100; i++ {
		id := a.Next()
		if id == NoCreature {
			t.Fatal("allocated NoCreature")
		}
		if seen[id] {
			t.Fatalf("id %d allocated twice", id)
		}
		seen[id] = true
	}
}
