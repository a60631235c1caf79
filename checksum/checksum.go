package checksum

import "errors"

// Modulus is the fixed reduction modulus of the weak checksum.
const Modulus = 1024

// ErrZeroModulus is returned by Mod when asked for a zero modulus.
var ErrZeroModulus = errors.New("checksum: modulus must be positive")

// Digest is a checksum value in [0, modulus).
type Digest uint32

// Hasher digests strings. Extend must agree with Sum:
//
//	Extend(Sum(s), r) == Sum(s + string(r))
//
// so that search engines can digest a one-rune extension in O(1).
type Hasher interface {
	Sum(s string) Digest
	Extend(d Digest, r rune) Digest
}

// Modular is the code-point sum reduced modulo its value. The zero value is
// not usable; build one with Mod or use Default.
type Modular uint32

// Default is the checksum with the fixed Modulus.
const Default Modular = Modulus

// Sum returns the sum of the code points of s modulo Modulus.
func Sum(s string) Digest {
	return Default.Sum(s)
}

// Mod returns the code-point sum modulo m. Mod(Modulus) equals Default.
func Mod(m uint32) (Modular, error) {
	if m == 0 {
		return 0, ErrZeroModulus
	}

	return Modular(m), nil
}

// Valid reports whether m can be used as a modulus.
func (m Modular) Valid() bool { return m != 0 }

// Sum reduces after every rune so the accumulator stays below m.
func (m Modular) Sum(s string) Digest {
	var acc uint64
	mod := uint64(m)
	for _, r := range s {
		acc = (acc + uint64(r)) % mod
	}

	return Digest(acc)
}

// Extend adds r to an existing digest.
func (m Modular) Extend(d Digest, r rune) Digest {
	return Digest((uint64(d) + uint64(r)) % uint64(m))
}
