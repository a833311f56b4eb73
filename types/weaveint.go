// Package types holds the scalar types and wire constants shared by the
// block index and chunk proof packages.
package types

import (
	"fmt"
	"math/big"
)

// WeaveInt is a signed 128-bit integer. The weave spans far more than
// 2^64 bytes and intermediate offsets in chunk proof verification go
// negative, so neither int64 nor uint64 can stand in for it. Go has no
// native int128, so this wraps math/big.Int and pins every decode/encode
// path to the same two's-complement, big-endian convention the network
// itself uses.
type WeaveInt struct {
	v big.Int
}

// WeaveSize and WeaveOffset are both WeaveInt; the split is semantic
// only, as in the source this project is grounded on.
type WeaveSize = WeaveInt
type WeaveOffset = WeaveInt

var weaveInt128Modulus = new(big.Int).Lsh(big.NewInt(1), 128) // 2^128, for two's-complement decode

// NewWeaveInt builds a WeaveInt from a native int64.
func NewWeaveInt(n int64) WeaveInt {
	var w WeaveInt
	w.v.SetInt64(n)
	return w
}

// ParseWeaveSize parses a non-negative decimal string, as found in a
// snapshot's "weave_size" field. It rejects anything that is not purely
// decimal digits, including a leading sign.
func ParseWeaveSize(s string) (WeaveInt, error) {
	var w WeaveInt
	if s == "" {
		return w, fmt.Errorf("empty weave_size")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return w, fmt.Errorf("weave_size %q is not decimal", s)
		}
	}
	if _, ok := w.v.SetString(s, 10); !ok {
		return w, fmt.Errorf("weave_size %q is not a valid integer", s)
	}
	return w, nil
}

// FromSignedBigEndian128 decodes a 16-byte big-endian two's-complement
// buffer into a signed WeaveInt, matching Rust's i128::from_be_bytes.
func FromSignedBigEndian128(b []byte) (WeaveInt, error) {
	var w WeaveInt
	if len(b) != 16 {
		return w, fmt.Errorf("signed 128-bit value must be 16 bytes, got %d", len(b))
	}
	w.v.SetBytes(b)
	if b[0]&0x80 != 0 {
		w.v.Sub(&w.v, weaveInt128Modulus)
	}
	return w, nil
}

// Add returns w + o.
func (w WeaveInt) Add(o WeaveInt) WeaveInt {
	var r WeaveInt
	r.v.Add(&w.v, &o.v)
	return r
}

// Sub returns w - o.
func (w WeaveInt) Sub(o WeaveInt) WeaveInt {
	var r WeaveInt
	r.v.Sub(&w.v, &o.v)
	return r
}

// Mul returns w * o.
func (w WeaveInt) Mul(o WeaveInt) WeaveInt {
	var r WeaveInt
	r.v.Mul(&w.v, &o.v)
	return r
}

// QuoTrunc returns w / o, truncated toward zero (matching Rust's integer
// division for i128).
func (w WeaveInt) QuoTrunc(o WeaveInt) WeaveInt {
	var r WeaveInt
	r.v.Quo(&w.v, &o.v)
	return r
}

// Cmp returns -1, 0 or 1 as w is less than, equal to, or greater than o.
func (w WeaveInt) Cmp(o WeaveInt) int {
	return w.v.Cmp(&o.v)
}

func (w WeaveInt) LessThan(o WeaveInt) bool    { return w.Cmp(o) < 0 }
func (w WeaveInt) LessOrEqual(o WeaveInt) bool { return w.Cmp(o) <= 0 }
func (w WeaveInt) GreaterThan(o WeaveInt) bool { return w.Cmp(o) > 0 }
func (w WeaveInt) GreaterOrEqual(o WeaveInt) bool {
	return w.Cmp(o) >= 0
}
func (w WeaveInt) IsNegative() bool { return w.v.Sign() < 0 }
func (w WeaveInt) IsZero() bool     { return w.v.Sign() == 0 }

// MinWeaveInt returns the smaller of a and b.
func MinWeaveInt(a, b WeaveInt) WeaveInt {
	if a.LessOrEqual(b) {
		return a
	}
	return b
}

// MaxWeaveInt returns the larger of a and b.
func MaxWeaveInt(a, b WeaveInt) WeaveInt {
	if a.GreaterOrEqual(b) {
		return a
	}
	return b
}

// String renders the canonical decimal form (no leading zeros). Save
// does not use it; it re-emits each entry's original weave_size string.
func (w WeaveInt) String() string {
	return w.v.String()
}

// Int64 returns the value truncated to an int64; callers must only use
// this once a value is known to fit (e.g. a validated chunk_size).
func (w WeaveInt) Int64() int64 {
	return w.v.Int64()
}
