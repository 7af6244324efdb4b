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
	"testing"

	"github.com/consensys/gnark-ff-poly/field"
	"github.com/stretchr/testify/require"
)

// naiveEvaluate evaluates coeffs (low-degree first) at z via Horner.
func naiveEvaluate(coeffs []field.Element, z field.Element, p *field.Params) field.Element {
	acc := field.Zero(p)
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(z).Add(coeffs[i])
	}
	return acc
}

func TestMixedRadixDomainConstruction(t *testing.T) {
	assert := require.New(t)
	p := field.BabyBearLike()

	d, ok := NewMixedRadixDomain(p, 5)
	assert.True(ok)
	assert.Equal(5, d.Size())
	assert.True(d.GroupGen().PowUint64(5).IsOne())
}

// TestMixedRadixFFTMatchesNaiveEvaluation checks the mixed-radix FFT
// output against direct Horner evaluation at every domain point, the
// definition of what FFTInPlace is supposed to compute.
func TestMixedRadixFFTMatchesNaiveEvaluation(t *testing.T) {
	assert := require.New(t)
	p := field.BabyBearLike()

	d, ok := NewMixedRadixDomain(p, 20) // picks smallest q^b*2^a >= 20 (q=5 here: 5*4=20)
	assert.True(ok)

	coeffs := make([]field.Element, 3)
	coeffs[0] = field.NewElementUint64(p, 3)
	coeffs[1] = field.NewElementUint64(p, 5)
	coeffs[2] = field.NewElementUint64(p, 7)

	got := d.FFTInPlace(append([]field.Element(nil), coeffs...))

	next := d.Elements()
	for i := 0; i < d.Size(); i++ {
		z, ok := next()
		assert.True(ok)
		want := naiveEvaluate(coeffs, z, p)
		assert.True(got[i].Equal(want), "domain point %d", i)
	}
}

func TestMixedRadixFFTIFFTRoundTrip(t *testing.T) {
	assert := require.New(t)
	p := field.BabyBearLike()
	d, ok := NewMixedRadixDomain(p, 20)
	assert.True(ok)

	coeffs := make([]field.Element, d.Size())
	for i := range coeffs {
		coeffs[i] = field.NewElementUint64(p, uint64(i+1))
	}

	evals := d.FFTInPlace(append([]field.Element(nil), coeffs...))
	back := d.IFFTInPlace(append([]field.Element(nil), evals...))

	for i := range coeffs {
		assert.True(back[i].Equal(coeffs[i]), "index %d", i)
	}
}
