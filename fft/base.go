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

// base carries the fields and default-method logic shared by
// Radix2Domain and MixedRadixDomain (Go's analogue of the Rust
// EvaluationDomain trait's default methods), leaving only FFTInPlace,
// IFFTInPlace and construction to each concrete domain.
type base struct {
	params *field.Params

	size               uint64
	logSizeOfGroup     uint32
	sizeAsFieldElement field.Element
	sizeInv            field.Element
	groupGen           field.Element
	groupGenInv        field.Element
	offset             field.Element
	offsetInv          field.Element
	offsetPowSize      field.Element
}

func (b *base) Params() *field.Params          { return b.params }
func (b *base) Size() int                      { return int(b.size) }
func (b *base) LogSizeOfGroup() uint32         { return b.logSizeOfGroup }
func (b *base) SizeAsFieldElement() field.Element { return b.sizeAsFieldElement }
func (b *base) SizeInv() field.Element         { return b.sizeInv }
func (b *base) GroupGen() field.Element        { return b.groupGen }
func (b *base) GroupGenInv() field.Element     { return b.groupGenInv }
func (b *base) CosetOffset() field.Element     { return b.offset }
func (b *base) CosetOffsetInv() field.Element  { return b.offsetInv }
func (b *base) CosetOffsetPowSize() field.Element { return b.offsetPowSize }

func (b *base) VanishingPolynomialTerms() (int, field.Element) {
	return int(b.size), b.offsetPowSize.Neg()
}

func (b *base) EvaluateVanishingPolynomial(tau field.Element) field.Element {
	return tau.PowUint64(b.size).Sub(b.offsetPowSize)
}

func (b *base) EvaluateAllLagrangeCoefficients(tau field.Element) []field.Element {
	size := int(b.size)
	zHAtTau := b.EvaluateVanishingPolynomial(tau)

	if zHAtTau.IsZero() {
		u := make([]field.Element, size)
		for i := range u {
			u[i] = field.Zero(b.params)
		}
		omegaI := b.offset
		for i := 0; i < size; i++ {
			if omegaI.Equal(tau) {
				u[i] = field.One(b.params)
				break
			}
			omegaI = omegaI.Mul(b.groupGen)
		}
		return u
	}

	v0Inv := b.sizeAsFieldElement.Mul(b.offset.PowUint64(uint64(size - 1)))
	zInv, _ := zHAtTau.Inverse()
	lI := zInv.Mul(v0Inv)
	negCurElem := b.offset.Neg()

	out := make([]field.Element, size)
	for i := 0; i < size; i++ {
		rI := tau.Add(negCurElem)
		out[i] = lI.Mul(rI)
		lI = lI.Mul(b.groupGenInv)
		negCurElem = negCurElem.Mul(b.groupGen)
	}
	field.BatchInvert(out)
	return out
}

func (b *base) EvaluateFilterPolynomial(subdomain Domain, tau field.Element) field.Element {
	vSub := subdomain.EvaluateVanishingPolynomial(tau)
	if vSub.IsZero() {
		return field.One(b.params)
	}
	num := subdomain.SizeAsFieldElement().Mul(b.EvaluateVanishingPolynomial(tau))
	den := b.sizeAsFieldElement.Mul(vSub)
	denInv, _ := den.Inverse()
	return num.Mul(denInv)
}

func (b *base) Element(i int) field.Element {
	result := b.groupGen.PowUint64(uint64(i))
	if !b.offset.IsOne() {
		result = result.Mul(b.offset)
	}
	return result
}

func (b *base) Elements() func() (field.Element, bool) {
	curElem := b.offset
	var curPow uint64
	return func() (field.Element, bool) {
		if curPow == b.size {
			return field.Element{}, false
		}
		out := curElem
		curElem = curElem.Mul(b.groupGen)
		curPow++
		return out, true
	}
}

func (b *base) ReindexBySubdomain(other Domain, index int) int {
	if b.Size() < other.Size() {
		panic("fft: ReindexBySubdomain requires the receiver to be at least as large as other")
	}
	period := b.Size() / other.Size()
	if index < other.Size() {
		return index * period
	}
	i := index - other.Size()
	x := period - 1
	return i + (i / x) + 1
}

func (b *base) MulPolynomialsInEvaluationDomain(a, bb []field.Element) []field.Element {
	if len(a) != len(bb) {
		panic("fft: MulPolynomialsInEvaluationDomain requires equal-length evaluation vectors")
	}
	out := make([]field.Element, len(a))
	for i := range a {
		out[i] = a[i].Mul(bb[i])
	}
	return out
}
