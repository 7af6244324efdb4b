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

import (
	"github.com/consensys/gnark-ff-poly/field"
	"github.com/consensys/gnark-ff-poly/internal/trace"
)

// MixedRadixDomain is a multiplicative subgroup of size 2^a * q^b,
// for a field carrying a small-subgroup base q (spec.md section 4.D).
type MixedRadixDomain struct {
	base
}

// bestMixedDomainSize picks the smallest representable domain size
// q^b * 2^a that is at least minSize, per ark-poly's
// best_mixed_domain_size.
func bestMixedDomainSize(p *field.Params, minSize int) (uint64, bool) {
	if !p.HasSmallSubgroup() {
		return 0, false
	}
	q := uint64(p.SmallSubgroupBase)
	best := uint64(0)
	found := false

	for b := uint32(0); b <= p.SmallSubgroupBaseAdicity; b++ {
		r, ok := checkedPow(q, b)
		if !ok {
			continue
		}
		var twoAdicity uint32
		for r < uint64(minSize) {
			r *= 2
			twoAdicity++
		}
		if twoAdicity <= p.TwoAdicity {
			if !found || r < best {
				best = r
				found = true
			}
		}
	}
	return best, found
}

// NewMixedRadixDomain builds the smallest mixed-radix domain of size
// at least minSize. It fails if p carries no small subgroup metadata or
// cannot represent that size.
func NewMixedRadixDomain(p *field.Params, minSize int) (*MixedRadixDomain, bool) {
	if !p.HasSmallSubgroup() {
		return nil, false
	}
	size, ok := bestMixedDomainSize(p, minSize)
	if !ok {
		return nil, false
	}

	q := uint64(p.SmallSubgroupBase)
	qAdicity := kAdicity(q, size)
	qPart, ok := checkedPow(q, qAdicity)
	if !ok {
		return nil, false
	}
	twoAdicity := kAdicity(2, size)
	twoPart, ok := checkedPow(2, twoAdicity)
	if !ok {
		return nil, false
	}
	if size != qPart*twoPart {
		return nil, false
	}

	groupGen, ok := p.GetRootOfUnity(size)
	if !ok {
		return nil, false
	}
	sizeAsField := field.NewElementUint64(p, size)
	sizeInv, ok := sizeAsField.Inverse()
	if !ok {
		return nil, false
	}
	groupGenInv, ok := groupGen.Inverse()
	if !ok {
		return nil, false
	}

	d := &MixedRadixDomain{base{
		params:             p,
		size:               size,
		logSizeOfGroup:     twoAdicity,
		sizeAsFieldElement: sizeAsField,
		sizeInv:            sizeInv,
		groupGen:           groupGen,
		groupGenInv:        groupGenInv,
		offset:             field.One(p),
		offsetInv:          field.One(p),
		offsetPowSize:      field.One(p),
	}}
	return d, true
}

// GetCoset returns the coset offset*d of d.
func (d *MixedRadixDomain) GetCoset(offset field.Element) (*MixedRadixDomain, bool) {
	offsetInv, ok := offset.Inverse()
	if !ok {
		return nil, false
	}
	c := *d
	c.base.offset = offset
	c.base.offsetInv = offsetInv
	c.base.offsetPowSize = offset.PowUint64(d.size)
	return &c, true
}

// ComputeSizeOfMixedRadixDomain reports the domain size
// NewMixedRadixDomain would pick for minSize, or false if p cannot
// represent it.
func ComputeSizeOfMixedRadixDomain(p *field.Params, minSize int) (int, bool) {
	if !p.HasSmallSubgroup() {
		return 0, false
	}
	size, ok := bestMixedDomainSize(p, minSize)
	if !ok {
		return 0, false
	}
	q := uint64(p.SmallSubgroupBase)
	qAdicity := kAdicity(q, size)
	qPart, ok := checkedPow(q, qAdicity)
	if !ok {
		return 0, false
	}
	twoAdicity := kAdicity(2, size)
	twoPart, ok := checkedPow(2, twoAdicity)
	if !ok {
		return 0, false
	}
	if size != qPart*twoPart {
		return 0, false
	}
	return int(size), true
}

// FFTInPlace runs the serial mixed-radix NTT: radix-q rounds (permuted
// by cycle-walking) followed by radix-2 rounds.
func (d *MixedRadixDomain) FFTInPlace(coeffs []field.Element) []field.Element {
	start := trace.Logger().Debug().Int("size", d.Size()).Int("inputLen", len(coeffs))
	defer start.Msg("mixed-radix fft done")

	if !d.offset.IsOne() {
		distributePowersAndMulByConst(coeffs, d.offset, field.One(d.params))
	}
	coeffs = resized(coeffs, d.Size(), field.Zero(d.params))
	serialMixedRadixFFT(coeffs, d.groupGen, d.logSizeOfGroup, d.params)
	return coeffs
}

// IFFTInPlace is FFTInPlace's inverse.
func (d *MixedRadixDomain) IFFTInPlace(evals []field.Element) []field.Element {
	start := trace.Logger().Debug().Int("size", d.Size()).Int("inputLen", len(evals))
	defer start.Msg("mixed-radix ifft done")

	evals = resized(evals, d.Size(), field.Zero(d.params))
	serialMixedRadixFFT(evals, d.groupGenInv, d.logSizeOfGroup, d.params)
	if d.offset.IsOne() {
		for i := range evals {
			evals[i] = evals[i].Mul(d.sizeInv)
		}
	} else {
		distributePowersAndMulByConst(evals, d.offsetInv, d.sizeInv)
	}
	return evals
}
