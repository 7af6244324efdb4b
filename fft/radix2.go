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
	"math/bits"

	"github.com/consensys/gnark-ff-poly/field"
	"github.com/consensys/gnark-ff-poly/internal/trace"
)

// degreeAwareFFTThresholdFactor controls when FFTInPlace prefers the
// degree-aware path (sparse input relative to the domain) over the
// standard full-size in-order FFT.
const degreeAwareFFTThresholdFactor = 1 << 2

// Radix2Domain is a multiplicative subgroup of size 2^k, the plain
// two-adic evaluation domain.
type Radix2Domain struct {
	base
}

// NewRadix2Domain builds the smallest radix-2 domain of size at least
// minSize. It fails if the field's two-adicity cannot represent that
// size.
func NewRadix2Domain(p *field.Params, minSize int) (*Radix2Domain, bool) {
	size := nextPowerOfTwo(uint64(minSize))
	logSize := uint32(bits.TrailingZeros64(size))
	if logSize > p.TwoAdicity {
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

	d := &Radix2Domain{base{
		params:             p,
		size:               size,
		logSizeOfGroup:     logSize,
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
func (d *Radix2Domain) GetCoset(offset field.Element) (*Radix2Domain, bool) {
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

// ComputeSizeOfRadix2Domain reports the domain size NewRadix2Domain
// would pick for minSize, or false if the field cannot represent it.
func ComputeSizeOfRadix2Domain(p *field.Params, minSize int) (int, bool) {
	size := nextPowerOfTwo(uint64(minSize))
	if uint32(bits.TrailingZeros64(size)) > p.TwoAdicity {
		return 0, false
	}
	return int(size), true
}

func nextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len64(n-1))
}

// FFTInPlace implements spec.md section 4.C: a degree-aware FFT when
// the input is sparse relative to the domain, otherwise a standard
// in-order forward FFT.
func (d *Radix2Domain) FFTInPlace(coeffs []field.Element) []field.Element {
	start := trace.Logger().Debug().Int("size", d.Size()).Int("inputLen", len(coeffs))
	defer start.Msg("radix2 fft done")

	if len(coeffs)*degreeAwareFFTThresholdFactor <= d.Size() {
		return d.degreeAwareFFTInPlace(coeffs)
	}
	coeffs = resized(coeffs, d.Size(), field.Zero(d.params))
	d.inOrderFFTInPlace(coeffs)
	return coeffs
}

// IFFTInPlace implements the inverse of FFTInPlace.
func (d *Radix2Domain) IFFTInPlace(evals []field.Element) []field.Element {
	start := trace.Logger().Debug().Int("size", d.Size()).Int("inputLen", len(evals))
	defer start.Msg("radix2 ifft done")

	evals = resized(evals, d.Size(), field.Zero(d.params))
	d.inOrderIFFTInPlace(evals)
	return evals
}

func log2(n int) uint32 {
	if n <= 0 || n&(n-1) != 0 {
		panic("fft: log2 requires a positive power of two")
	}
	return uint32(bits.TrailingZeros(uint(n)))
}

func (d *Radix2Domain) degreeAwareFFTInPlace(coeffs []field.Element) []field.Element {
	if !d.offset.IsOne() {
		distributePowersAndMulByConst(coeffs, d.offset, field.One(d.params))
	}

	n := d.Size()
	logN := d.logSizeOfGroup
	numCoeffs := len(coeffs)
	if numCoeffs == 0 || numCoeffs&(numCoeffs-1) != 0 {
		numCoeffs = int(nextPowerOfTwo(uint64(numCoeffs)))
	}
	logD := log2(numCoeffs)
	if logD > logN {
		panic("fft: domain is too small")
	}
	duplicityOfInitials := 1 << (logN - logD)

	out := resized(coeffs, n, field.Zero(d.params))

	for i := 0; i < numCoeffs; i++ {
		ri := int(bitrev(uint64(i), logN))
		if i < ri {
			out[i], out[ri] = out[ri], out[i]
		}
	}

	if duplicityOfInitials > 1 {
		for start := 0; start < n; start += duplicityOfInitials {
			v := out[start]
			for j := start + 1; j < start+duplicityOfInitials; j++ {
				out[j] = v
			}
		}
	}

	d.oiHelper(out, d.groupGen, duplicityOfInitials)
	return out
}

func (d *Radix2Domain) inOrderFFTInPlace(xs []field.Element) {
	if !d.offset.IsOne() {
		distributePowersAndMulByConst(xs, d.offset, field.One(d.params))
	}
	d.fftHelperInPlace(xs, fftOrderII)
}

func (d *Radix2Domain) inOrderIFFTInPlace(xs []field.Element) {
	d.ifftHelperInPlace(xs, fftOrderII)
	if d.offset.IsOne() {
		for i := range xs {
			xs[i] = xs[i].Mul(d.sizeInv)
		}
	} else {
		distributePowersAndMulByConst(xs, d.offsetInv, d.sizeInv)
	}
}

type fftOrder int

const (
	fftOrderII fftOrder = iota
	fftOrderIO
	fftOrderOI
)

func (d *Radix2Domain) fftHelperInPlace(xs []field.Element, ord fftOrder) {
	logLen := log2(len(xs))
	if ord == fftOrderOI {
		d.oiHelper(xs, d.groupGen, 1)
	} else {
		d.ioHelper(xs, d.groupGen)
	}
	if ord == fftOrderII {
		derange(xs, logLen)
	}
}

func (d *Radix2Domain) ifftHelperInPlace(xs []field.Element, ord fftOrder) {
	logLen := log2(len(xs))
	if ord == fftOrderII {
		derange(xs, logLen)
	}
	if ord == fftOrderIO {
		d.ioHelper(xs, d.groupGenInv)
	} else {
		d.oiHelper(xs, d.groupGenInv, 1)
	}
}

func (d *Radix2Domain) rootsOfUnity(root field.Element) []field.Element {
	return computePowers(d.Size()/2, root, field.One(d.params))
}

// minNumChunksForCompaction mirrors ark-poly's twiddle-table
// compaction threshold: below it the full root table is walked with a
// stride, above it a compacted sub-table is built once per round.
const minNumChunksForCompaction = 1 << 7

func (d *Radix2Domain) ioHelper(xi []field.Element, root field.Element) {
	roots := d.rootsOfUnity(root)
	step := 1
	first := true

	gap := len(xi) / 2
	for gap > 0 {
		chunkSize := 2 * gap
		numChunks := len(xi) / chunkSize
		if numChunks >= minNumChunksForCompaction {
			if !first {
				roots = strideCopy(roots, step*2)
			}
			step = 1
		} else {
			step = numChunks
		}
		first = false

		applyButterflyIO(xi, roots, step, chunkSize, gap)
		gap /= 2
	}
}

func (d *Radix2Domain) oiHelper(xi []field.Element, root field.Element, startGap int) {
	rootsCache := d.rootsOfUnity(root)
	compactionMaxSize := len(rootsCache) / 2
	if alt := len(rootsCache) / minNumChunksForCompaction; alt < compactionMaxSize {
		compactionMaxSize = alt
	}
	compactedRoots := make([]field.Element, compactionMaxSize)

	gap := startGap
	for gap < len(xi) {
		chunkSize := 2 * gap
		numChunks := len(xi) / chunkSize

		var roots []field.Element
		var step int
		if numChunks >= minNumChunksForCompaction && gap < len(xi)/2 {
			for i, j := 0, 0; j < gap; i, j = i+numChunks, j+1 {
				compactedRoots[j] = rootsCache[i]
			}
			roots = compactedRoots[:gap]
			step = 1
		} else {
			roots = rootsCache
			step = numChunks
		}

		applyButterflyOI(xi, roots, step, chunkSize, gap)
		gap *= 2
	}
}

func strideCopy(v []field.Element, stride int) []field.Element {
	out := make([]field.Element, 0, (len(v)+stride-1)/stride)
	for i := 0; i < len(v); i += stride {
		out = append(out, v[i])
	}
	return out
}

// applyButterflyIO runs the "in-order to out-of-order" (decimation in
// frequency) butterfly round: lo,hi <- lo+hi, (lo-hi)*root.
func applyButterflyIO(xi []field.Element, roots []field.Element, step, chunkSize, gap int) {
	for base := 0; base < len(xi); base += chunkSize {
		lo := xi[base : base+gap]
		hi := xi[base+gap : base+chunkSize]
		for i := range lo {
			root := roots[(i*step)%len(roots)]
			l, h := lo[i], hi[i]
			neg := l.Sub(h)
			lo[i] = l.Add(h)
			hi[i] = neg.Mul(root)
		}
	}
}

// applyButterflyOI runs the "out-of-order to in-order" (decimation in
// time) butterfly round: lo,hi <- lo+hi*root, lo-hi*root.
func applyButterflyOI(xi []field.Element, roots []field.Element, step, chunkSize, gap int) {
	for base := 0; base < len(xi); base += chunkSize {
		lo := xi[base : base+gap]
		hi := xi[base+gap : base+chunkSize]
		for i := range lo {
			root := roots[(i*step)%len(roots)]
			h := hi[i].Mul(root)
			l := lo[i]
			neg := l.Sub(h)
			lo[i] = l.Add(h)
			hi[i] = neg
		}
	}
}

func bitrev(a uint64, logLen uint32) uint64 {
	return bits.Reverse64(a) >> (64 - logLen)
}

// derange undoes the bit-reversal permutation over the open range
// 1..len-1, leaving the first and last elements fixed, matching
// ark-poly's derange exactly.
func derange(xi []field.Element, logLen uint32) {
	for idx := uint64(1); idx < uint64(len(xi))-1; idx++ {
		ridx := bitrev(idx, logLen)
		if idx < ridx {
			xi[idx], xi[ridx] = xi[ridx], xi[idx]
		}
	}
}
