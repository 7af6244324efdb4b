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

package fft

import "github.com/consensys/gnark-ff-poly/field"

// mixedRadixFFTPermute computes the destination index of input index i
// under the combined radix-2/radix-q digit-reversal permutation.
func mixedRadixFFTPermute(twoAdicity, qAdicity uint32, q, n, i int) int {
	res := 0
	shift := n
	for k := uint32(0); k < twoAdicity; k++ {
		shift /= 2
		res += (i % 2) * shift
		i /= 2
	}
	for k := uint32(0); k < qAdicity; k++ {
		shift /= q
		res += (i % q) * shift
		i /= q
	}
	return res
}

// serialMixedRadixFFT runs the radix-q rounds (permuted via
// cycle-walking) then the radix-2 rounds, in place, exactly following
// ark-poly's serial_mixed_radix_fft.
func serialMixedRadixFFT(a []field.Element, omega field.Element, twoAdicity uint32, p *field.Params) {
	n := len(a)
	q := int(p.SmallSubgroupBase)
	qU64 := uint64(p.SmallSubgroupBase)
	nU64 := uint64(n)

	qAdicity := kAdicity(qU64, nU64)
	qPart, _ := checkedPow(qU64, qAdicity)
	twoPart, _ := checkedPow(2, twoAdicity)
	if nU64 != qPart*twoPart {
		panic("fft: mixed-radix input length does not match q^b * 2^a")
	}

	m := 1

	if qAdicity > 0 {
		seen := make([]bool, n)
		for k := 0; k < n; k++ {
			i := k
			aI := a[i]
			for !seen[i] {
				dest := mixedRadixFFTPermute(twoAdicity, qAdicity, q, n, i)
				aDest := a[dest]
				a[dest] = aI
				seen[i] = true
				aI = aDest
				i = dest
			}
		}

		omegaQ := omega.PowUint64(uint64(n / q))
		qthRoots := make([]field.Element, q)
		qthRoots[0] = field.One(p)
		for i := 1; i < q; i++ {
			qthRoots[i] = qthRoots[i-1].Mul(omegaQ)
		}

		terms := make([]field.Element, q-1)

		for round := uint32(0); round < qAdicity; round++ {
			wM := omega.PowUint64(uint64(n / (q * m)))
			k := 0
			for k < n {
				wJ := field.One(p)
				for j := 0; j < m; j++ {
					baseTerm := a[k+j]
					wJI := wJ
					for i := 1; i < q; i++ {
						terms[i-1] = a[k+j+i*m].Mul(wJI)
						wJI = wJI.Mul(wJ)
					}

					for i := 0; i < q; i++ {
						acc := baseTerm
						for l := 1; l < q; l++ {
							tmp := terms[l-1].Mul(qthRoots[(i*l)%q])
							acc = acc.Add(tmp)
						}
						a[k+j+i*m] = acc
					}

					wJ = wJ.Mul(wM)
				}
				k += q * m
			}
			m *= q
		}
	} else {
		bitreversePermutationInPlace(a, twoAdicity)
	}

	for round := uint32(0); round < twoAdicity; round++ {
		wM := omega.PowUint64(uint64(n / (2 * m)))
		k := 0
		for k < n {
			w := field.One(p)
			for j := 0; j < m; j++ {
				t := a[k+m+j].Mul(w)
				a[k+m+j] = a[k+j].Sub(t)
				a[k+j] = a[k+j].Add(t)
				w = w.Mul(wM)
			}
			k += 2 * m
		}
		m *= 2
	}
}
