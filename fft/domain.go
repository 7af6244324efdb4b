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

// Package fft implements multiplicative evaluation domains (plain
// two-adic radix-2, and mixed-radix for fields carrying a small
// subgroup) together with their forward and inverse NTTs.
package fft

import (
	"errors"

	"github.com/consensys/gnark-ff-poly/field"
)

// ErrDomainTooSmall describes a field whose two-adicity (or, for
// MixedRadixDomain, its small-subgroup adicity) cannot represent a
// domain of the requested size. The domain constructors in this package
// report that case with a false result, not with this error.
var ErrDomainTooSmall = errors.New("fft: field cannot represent a domain of the requested size")

// ErrCosetOffsetZero describes a zero element used as a coset offset;
// zero has no multiplicative inverse. GetCoset reports that case with a
// false result, not with this error.
var ErrCosetOffsetZero = errors.New("fft: coset offset must be non-zero")

// Domain is the uniform interface shared by Radix2Domain and
// MixedRadixDomain, letting callers (notably the polynomial package)
// work against either concrete implementation without caring which one
// NewDomain picked.
type Domain interface {
	Params() *field.Params
	Size() int
	LogSizeOfGroup() uint32
	SizeAsFieldElement() field.Element
	SizeInv() field.Element
	GroupGen() field.Element
	GroupGenInv() field.Element
	CosetOffset() field.Element
	CosetOffsetInv() field.Element
	CosetOffsetPowSize() field.Element

	// FFTInPlace evaluates coeffs (a polynomial's coefficients, low
	// degree first) at every domain element, resizing as needed and
	// returning the (possibly reallocated) slice holding the result.
	FFTInPlace(coeffs []field.Element) []field.Element
	// IFFTInPlace is FFTInPlace's inverse: it interpolates evals (values
	// at every domain element) back into coefficient form.
	IFFTInPlace(evals []field.Element) []field.Element

	EvaluateAllLagrangeCoefficients(tau field.Element) []field.Element
	EvaluateVanishingPolynomial(tau field.Element) field.Element
	// VanishingPolynomialTerms returns the two-term representation of
	// this domain's vanishing polynomial x^size - offset^size: its
	// degree (size) and its constant coefficient (-offset^size).
	VanishingPolynomialTerms() (size int, constant field.Element)
	EvaluateFilterPolynomial(subdomain Domain, tau field.Element) field.Element

	Element(i int) field.Element
	// Elements returns an iterator-style closure yielding every element
	// of the domain in order, then (zero, false) once exhausted.
	Elements() func() (field.Element, bool)

	ReindexBySubdomain(other Domain, index int) int
	MulPolynomialsInEvaluationDomain(a, b []field.Element) []field.Element
}

// bitreverse returns the l-bit reversal of n, mirroring ark-poly's
// bitreverse (used by the mixed-radix two-adic rounds).
func bitreverse(n uint32, l uint32) uint32 {
	var r uint32
	for i := uint32(0); i < l; i++ {
		r = (r << 1) | (n & 1)
		n >>= 1
	}
	return r
}

// bitreversePermutationInPlace permutes a into bit-reversed order, used
// by the mixed-radix FFT when its small-subgroup part is trivial
// (q-adicity zero).
func bitreversePermutationInPlace(a []field.Element, width uint32) {
	n := len(a)
	for k := 0; k < n; k++ {
		rk := int(bitreverse(uint32(k), width))
		if k < rk {
			a[k], a[rk] = a[rk], a[k]
		}
	}
}

// computePowers returns [c, c*root, c*root^2, ..., c*root^(size-1)].
func computePowers(size int, root field.Element, c field.Element) []field.Element {
	out := make([]field.Element, size)
	value := c
	for i := 0; i < size; i++ {
		out[i] = value
		value = value.Mul(root)
	}
	return out
}

// distributePowersAndMulByConst multiplies coeffs[i] by c*g^i in place,
// the "twist by a coset offset" step shared by every domain kind.
func distributePowersAndMulByConst(coeffs []field.Element, g, c field.Element) {
	pow := c
	for i := range coeffs {
		coeffs[i] = coeffs[i].Mul(pow)
		pow = pow.Mul(g)
	}
}

func resized(v []field.Element, n int, zero field.Element) []field.Element {
	if len(v) >= n {
		return v[:n]
	}
	out := make([]field.Element, n)
	copy(out, v)
	for i := len(v); i < n; i++ {
		out[i] = zero
	}
	return out
}

// kAdicity returns the largest k with base^k dividing n.
func kAdicity(base, n uint64) uint32 {
	var k uint32
	for n%base == 0 && n != 0 {
		n /= base
		k++
	}
	return k
}

func checkedPow(base uint64, exp uint32) (uint64, bool) {
	r := uint64(1)
	for i := uint32(0); i < exp; i++ {
		next := r * base
		if base != 0 && next/base != r {
			return 0, false
		}
		r = next
	}
	return r, true
}
