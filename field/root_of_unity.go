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

package field

import "math/bits"

// kAdicity returns the largest k such that base^k divides n.
func kAdicity(base, n uint64) uint32 {
	if n == 0 {
		return 0
	}
	var k uint32
	for n%base == 0 {
		n /= base
		k++
	}
	return k
}

// log2 returns ceil(log2(n)) for n a power of two; panics otherwise.
func log2(n uint64) uint32 {
	if n == 0 || n&(n-1) != 0 {
		panic("field: log2 requires a power of two")
	}
	return uint32(bits.TrailingZeros64(n))
}

// GetRootOfUnity returns an element of order n, or false when n is not
// representable by this field (see spec.md section 4.A).
func (p *Params) GetRootOfUnity(n uint64) (Element, bool) {
	if p.HasSmallSubgroup() {
		q := uint64(p.SmallSubgroupBase)

		qAdicity := kAdicity(q, n)
		qPart := pow64(q, qAdicity)

		twoAdicity := kAdicity(2, n)
		twoPart := pow64(2, twoAdicity)

		if n != twoPart*qPart || twoAdicity > p.TwoAdicity || qAdicity > p.SmallSubgroupBaseAdicity {
			return Element{}, false
		}

		omega := NewElement(p, p.LargeSubgroupRootOfUnity)
		for i := qAdicity; i < p.SmallSubgroupBaseAdicity; i++ {
			omega = omega.PowUint64(q)
		}
		for i := twoAdicity; i < p.TwoAdicity; i++ {
			omega = omega.Square()
		}
		return omega, true
	}

	if n == 0 || n&(n-1) != 0 {
		return Element{}, false
	}
	logN := log2(n)
	if logN > p.TwoAdicity {
		return Element{}, false
	}

	omega := NewElement(p, p.TwoAdicRootOfUnity)
	for i := logN; i < p.TwoAdicity; i++ {
		omega = omega.Square()
	}
	return omega, true
}

// pow64 computes base^exp over the (unbounded) integers; exp is expected
// to be small (a two-adicity or small-subgroup adicity).
func pow64(base uint64, exp uint32) uint64 {
	r := uint64(1)
	for i := uint32(0); i < exp; i++ {
		r *= base
	}
	return r
}
