package idgen

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// FromBits builds an identifier from its high and low halves, both written
// big-endian.
func FromBits(hi, lo int64) uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[0:8], uint64(hi))
	binary.BigEndian.PutUint64(id[8:16], uint64(lo))
	return id
}

// Bits returns the high and low halves of id as signed two's complement
// integers.
func Bits(id uuid.UUID) (hi, lo int64) {
	return fold(id[0:8]), fold(id[8:16])
}

// fold decodes b as a big-endian integer. Bytes beyond the last eight are
// shifted out, so the result is the two's complement truncation to 64 bits.
func fold(b []byte) int64 {
	var result int64
	for _, v := range b {
		result = result<<8 | int64(v)
	}
	return result
}
