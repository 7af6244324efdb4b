// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package field implements arithmetic over Z/pZ for a prime p, together
// with the FFT metadata (two-adicity, roots of unity, optional small
// subgroup) that the fft and polynomial packages build on.
package field

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNotInField is returned when a value cannot be reduced into a field
// element without further context (reserved for future parsing helpers).
var ErrNotInField = errors.New("field: value is not a valid field element")

// Params describes a prime field and the metadata needed to run NTTs over
// it. It plays the role of an Fp parameter trait: one Params value is
// shared (by pointer) by every Element drawn from that field.
type Params struct {
	// Name is a human-readable identifier, used only for debugging/logging.
	Name string

	// Modulus is the prime p.
	Modulus *big.Int

	// Generator is a generator of the multiplicative group F*.
	Generator *big.Int

	// TwoAdicity s is the largest integer such that 2^s divides p-1.
	TwoAdicity uint32

	// TwoAdicRootOfUnity is an element of order 2^TwoAdicity.
	TwoAdicRootOfUnity *big.Int

	// SmallSubgroupBase q, if non-zero, is an odd prime such that F*
	// contains a subgroup of order q^SmallSubgroupBaseAdicity.
	SmallSubgroupBase uint32

	// SmallSubgroupBaseAdicity is the adicity b of the small subgroup base.
	SmallSubgroupBaseAdicity uint32

	// LargeSubgroupRootOfUnity, if set, is an element of order
	// 2^TwoAdicity * SmallSubgroupBase^SmallSubgroupBaseAdicity. It must be
	// set iff both small-subgroup fields above are non-zero.
	LargeSubgroupRootOfUnity *big.Int
}

// HasSmallSubgroup reports whether p carries mixed-radix FFT metadata.
func (p *Params) HasSmallSubgroup() bool {
	return p.SmallSubgroupBase != 0 && p.LargeSubgroupRootOfUnity != nil
}

func (p *Params) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("F_%s", p.Modulus.String())
}

// Element is a residue class modulo Params.Modulus, always kept in the
// canonical range [0, Modulus).
type Element struct {
	params *Params
	val    big.Int
}

// Params returns the field this element belongs to.
func (z Element) Params() *Params { return z.params }

// Zero returns the additive identity of p.
func Zero(p *Params) Element {
	return Element{params: p}
}

// One returns the multiplicative identity of p.
func One(p *Params) Element {
	var z Element
	z.params = p
	z.val.SetInt64(1)
	return z
}

// NewElement builds the field element equal to v mod p.Modulus.
func NewElement(p *Params, v *big.Int) Element {
	var z Element
	z.params = p
	z.val.Mod(v, p.Modulus)
	return z
}

// NewElementUint64 builds the field element equal to v mod p.Modulus.
func NewElementUint64(p *Params, v uint64) Element {
	var z Element
	z.params = p
	z.val.SetUint64(v)
	z.val.Mod(&z.val, p.Modulus)
	return z
}

// NewElementInt64 builds the field element equal to v mod p.Modulus,
// correctly reducing negative values.
func NewElementInt64(p *Params, v int64) Element {
	var z Element
	z.params = p
	z.val.SetInt64(v)
	z.val.Mod(&z.val, p.Modulus)
	return z
}

func (z *Element) requireSameField(other Element) {
	if z.params != other.params {
		panic("field: operands belong to different fields")
	}
}

// IsZero reports whether z is the additive identity.
func (z Element) IsZero() bool { return len(z.val.Bits()) == 0 }

// IsOne reports whether z is the multiplicative identity.
func (z Element) IsOne() bool { return z.val.Cmp(big.NewInt(1)) == 0 }

// Equal reports whether z and other represent the same residue class.
func (z Element) Equal(other Element) bool {
	return z.params == other.params && z.val.Cmp(&other.val) == 0
}

// BigInt returns the canonical big.Int representative of z, in [0, p).
func (z Element) BigInt() *big.Int {
	return new(big.Int).Set(&z.val)
}

// Add returns z + other.
func (z Element) Add(other Element) Element {
	z.requireSameField(other)
	var r Element
	r.params = z.params
	r.val.Add(&z.val, &other.val)
	if r.val.Cmp(r.params.Modulus) >= 0 {
		r.val.Sub(&r.val, r.params.Modulus)
	}
	return r
}

// Sub returns z - other.
func (z Element) Sub(other Element) Element {
	z.requireSameField(other)
	var r Element
	r.params = z.params
	r.val.Sub(&z.val, &other.val)
	if r.val.Sign() < 0 {
		r.val.Add(&r.val, r.params.Modulus)
	}
	return r
}

// Neg returns -z.
func (z Element) Neg() Element {
	if z.IsZero() {
		return z
	}
	var r Element
	r.params = z.params
	r.val.Sub(r.params.Modulus, &z.val)
	return r
}

// Mul returns z * other.
func (z Element) Mul(other Element) Element {
	z.requireSameField(other)
	var r Element
	r.params = z.params
	r.val.Mul(&z.val, &other.val)
	r.val.Mod(&r.val, r.params.Modulus)
	return r
}

// Square returns z * z.
func (z Element) Square() Element {
	var r Element
	r.params = z.params
	r.val.Mul(&z.val, &z.val)
	r.val.Mod(&r.val, r.params.Modulus)
	return r
}

// Inverse returns the multiplicative inverse of z. It returns
// (Element{}, false) when z is zero.
func (z Element) Inverse() (Element, bool) {
	if z.IsZero() {
		return Element{}, false
	}
	var r Element
	r.params = z.params
	r.val.ModInverse(&z.val, z.params.Modulus)
	return r, true
}

// bitsBE returns exp's bits, most significant first, with leading zero
// bits already stripped (the "trimmed" big-endian bit iterator described
// by the field contract's BitIteratorBE collaborator).
func bitsBE(exp *big.Int) []bool {
	n := exp.BitLen()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[n-1-i] = exp.Bit(i) == 1
	}
	return bits
}

// Pow returns z^exp via square-and-multiply, skipping leading zero bits.
func (z Element) Pow(exp *big.Int) Element {
	if exp.Sign() == 0 {
		return One(z.params)
	}
	neg := exp.Sign() < 0
	e := exp
	if neg {
		e = new(big.Int).Neg(exp)
	}

	var res Element
	have := false
	for _, bit := range bitsBE(e) {
		if have {
			res = res.Square()
		}
		if bit {
			if !have {
				res = z
				have = true
			} else {
				res = res.Mul(z)
			}
		}
	}
	if !have {
		res = One(z.params)
	}
	if neg {
		inv, ok := res.Inverse()
		if !ok {
			panic("field: Pow with negative exponent of zero base")
		}
		return inv
	}
	return res
}

// PowUint64 is a convenience wrapper of Pow for uint64 exponents.
func (z Element) PowUint64(exp uint64) Element {
	return z.Pow(new(big.Int).SetUint64(exp))
}

// PowWithTable exponentiates base (implicitly, via powersOf2) by exp,
// using a precomputed table powersOf2 = [base, base^2, base^4, ...]. It
// returns false if exp needs a power beyond what the table holds.
func PowWithTable(powersOf2 []Element, exp *big.Int) (Element, bool) {
	if len(powersOf2) == 0 {
		return Element{}, false
	}
	p := powersOf2[0].params
	res := One(p)
	bits := bitsBE(exp)
	// bits is big-endian; the table is indexed by bit position from the
	// least-significant end, so walk it in reverse.
	for i := len(bits) - 1; i >= 0; i-- {
		if !bits[i] {
			continue
		}
		pow := len(bits) - 1 - i
		if pow >= len(powersOf2) {
			return Element{}, false
		}
		res = res.Mul(powersOf2[pow])
	}
	return res, true
}

// SumOfProducts returns sum(a_i * b_i). a and b must have the same length.
func SumOfProducts(a, b []Element) Element {
	if len(a) == 0 {
		panic("field: SumOfProducts requires at least one field to infer the modulus")
	}
	sum := Zero(a[0].params)
	for i := range a {
		sum = sum.Add(a[i].Mul(b[i]))
	}
	return sum
}

// Cmp provides a total order on elements of the same field, convenient
// for sorting (e.g. a lookup table), mirroring fr.Element.Cmp in the
// teacher's codegenerated fields.
func (z Element) Cmp(other Element) int {
	z.requireSameField(other)
	return z.val.Cmp(&other.val)
}

func (z Element) String() string {
	return z.val.String()
}
