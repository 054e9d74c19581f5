package chain

import (
	"fmt"
	"testing"
)

func TestSubIndexDeterministic(t *testing.T) {
	t.Parallel()

	a := SubIndex("alice")
	b := SubIndex("alice")

	if a != b {
		t.Fatalf("index not stable: %d vs %d", a, b)
	}
}

func TestSubIndexDistinctOwners(t *testing.T) {
	t.Parallel()

	owners := []string{"alice", "bob", "carol", "alice ", "Alice", ""}
	seen := make(map[uint64]string, len(owners))

	for _, owner := range owners {
		idx := SubIndex(owner)

		if idx == PoolIndex {
			t.Fatalf("owner %q mapped onto the pool index", owner)
		}

		if prev, dup := seen[idx]; dup {
			t.Fatalf("owners %q and %q collide on index %d", prev, owner, idx)
		}

		seen[idx] = owner
	}
}

func TestReceiptAddressFormat(t *testing.T) {
	t.Parallel()

	idx := SubIndex("alice")
	got := ReceiptAddress("pool-addr", idx)
	want := fmt.Sprintf("pool-addr:%d", idx)

	if got != want {
		t.Fatalf("receipt address: want %s, got %s", want, got)
	}
}
