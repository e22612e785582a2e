package hdcp

import (
	crand "crypto/rand"
	"fmt"
	"math/bits"
	"math/rand/v2"
)

// KSV is a 40-bit Key Selection Vector. Only the low 40 bits are
// significant. A structurally valid KSV has exactly 20 of its 40 bits set,
// but every operation in this package accepts invalid KSVs as well; validity
// is a convention of the scheme, not a precondition.
type KSV uint64

// validWeight is the number of set bits a structurally valid KSV carries.
const validWeight = 20

// referenceKSV has the 20 low-order bits set and the 20 high-order bits
// clear; random KSVs are permutations of this pattern.
const referenceKSV KSV = 0x00000fffff

// ParseKSV leniently decodes a hex string into a KSV, using the codec's
// best-effort contract: malformed characters decode to zero nibbles and
// missing characters are leading zeros.
func ParseKSV(s string) KSV {
	return KSV(DecodeHex40(s))
}

// Hex renders the KSV as 10 lower-case hex characters.
func (k KSV) Hex() string {
	return EncodeHex40(uint64(k))
}

// Weight returns the Hamming weight of the KSV's low 40 bits.
func (k KSV) Weight() int {
	return bits.OnesCount64(uint64(k) & ksvMask)
}

// IsValid reports whether exactly 20 of the KSV's 40 bits are set.
// Example: 0x00000fffff is valid, 0x00000aaaa0 is not.
func (k KSV) IsValid() bool {
	return k.Weight() == validWeight
}

// RandomKSV returns a uniformly random structurally valid KSV: a random
// permutation of the 40 bit positions is applied to the reference pattern,
// which makes every one of the C(40,20) valid patterns equally likely. The
// permutation generator is seeded from crypto/rand; an error is returned
// only if reading the seed fails.
func RandomKSV() (KSV, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return 0, fmt.Errorf("failed to seed ksv generator: %w", err)
	}

	rng := rand.New(rand.NewChaCha8(seed))

	var k KSV
	for i, p := range rng.Perm(KSVBits) {
		if referenceKSV>>p&1 == 1 {
			k |= 1 << i
		}
	}

	return k, nil
}
