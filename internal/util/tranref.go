package util

import (
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
)

// UUIDToTransactionNumber converts an order UUID to a numeric transaction
// number for eWAY (merchants must keep these unique per account, and many
// host platforms identify orders by UUID rather than a number).
// Uses FNV-1a 32-bit hashing so the same order always produces the same
// transaction number, which keeps accidental resubmissions identifiable on
// the gateway side.
func UUIDToTransactionNumber(id uuid.UUID) string {
	h := fnv.New32a()
	h.Write(id[:])
	return fmt.Sprintf("%d", h.Sum32())
}
