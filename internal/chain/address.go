package chain

import (
	"fmt"
	"hash/fnv"
)

// PoolIndex is the sub-account index of the pooled custody funds.
const PoolIndex uint64 = 0

// SubIndex derives the stable receipt sub-account index for an identity.
// FNV-1a over the full identity keeps the mapping deterministic across
// restarts without any stored allocation table.
func SubIndex(owner string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(owner))

	idx := h.Sum64()
	if idx == PoolIndex {
		idx++
	}

	return idx
}

// ReceiptAddress renders the displayable receipt address for a sub-account
// of the pool.
func ReceiptAddress(pool string, index uint64) string {
	return fmt.Sprintf("%s:%d", pool, index)
}
