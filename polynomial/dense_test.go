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

package polynomial

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-ff-poly/field"
	"github.com/consensys/gnark-ff-poly/fft"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func denseFromUint64(p *field.Params, vals ...uint64) *Dense {
	coeffs := make([]field.Element, len(vals))
	for i, v := range vals {
		coeffs[i] = field.NewElementUint64(p, v)
	}
	return NewDense(p, coeffs)
}

// TestFFTMulMatchesNaive covers spec.md scenario (c): FFT-based
// multiplication must equal the naive O(n*m) product.
func TestFFTMulMatchesNaive(t *testing.T) {
	assert := require.New(t)
	p := field.F17()

	a := denseFromUint64(p, 1, 2, 3)
	b := denseFromUint64(p, 4, 5)

	naive := a.NaiveMul(b)
	fast, err := a.Mul(b)
	assert.NoError(err)

	assert.Equal(naive.Degree(), fast.Degree())
	for i := range naive.Coeffs {
		assert.True(naive.Coeffs[i].Equal(fast.Coeffs[i]), "coeff %d", i)
	}
}

// TestDivideByVanishingScenario covers spec.md scenario (e): dividing
// x^8 - 1 by the vanishing polynomial of a size-4 domain (x^4 - 1)
// yields quotient x^4 + 1, remainder 0.
func TestDivideByVanishingScenario(t *testing.T) {
	assert := require.New(t)
	p := field.F17()

	domain, ok := fft.NewRadix2Domain(p, 4)
	assert.True(ok)
	assert.Equal(4, domain.Size())

	zero := field.Zero(p)
	one := field.One(p)
	coeffs := []field.Element{one.Neg(), zero, zero, zero, zero, zero, zero, zero, one}
	xToThe8MinusOne := NewDense(p, coeffs)

	quotient, remainder := xToThe8MinusOne.DivideByVanishing(domain)

	assert.True(remainder.IsZero())
	assert.Equal(4, quotient.Degree())
	want := denseFromUint64(p, 1, 0, 0, 0, 1)
	for i := range want.Coeffs {
		assert.True(quotient.Coeffs[i].Equal(want.Coeffs[i]), "coeff %d", i)
	}
}

// TestMulByVanishingThenDivideByVanishingIsIdentity covers invariant 9:
// mul_by_vanishing composed with divide_by_vanishing recovers the
// original polynomial with a zero remainder.
func TestMulByVanishingThenDivideByVanishingIsIdentity(t *testing.T) {
	assert := require.New(t)
	p := field.F17()

	domain, ok := fft.NewRadix2Domain(p, 4)
	assert.True(ok)

	original := denseFromUint64(p, 3, 5, 2)
	multiplied := original.MulByVanishing(domain)

	quotient, remainder := multiplied.DivideByVanishing(domain)
	assert.True(remainder.IsZero())
	assert.Equal(original.Degree(), quotient.Degree())
	for i := range original.Coeffs {
		assert.True(original.Coeffs[i].Equal(quotient.Coeffs[i]), "coeff %d", i)
	}
}

// TestEvaluateOverDomainThenInterpolate covers invariant 6: evaluating
// a polynomial over a domain and interpolating back recovers it.
func TestEvaluateOverDomainThenInterpolate(t *testing.T) {
	assert := require.New(t)
	p := field.F17()

	domain, ok := fft.NewRadix2Domain(p, 4)
	assert.True(ok)

	original := denseFromUint64(p, 3, 5, 2, 7)
	evals := EvaluateOverDomain(original, domain)
	back := evals.Interpolate()

	assert.Equal(original.Degree(), back.Degree())
	for i := range original.Coeffs {
		assert.True(original.Coeffs[i].Equal(back.Coeffs[i]), "coeff %d", i)
	}
}

// TestProductEvaluatesCorrectlyAtArbitraryPoint covers invariant 8: the
// FFT-computed product evaluates correctly at a point outside the
// domain used for the multiplication.
func TestProductEvaluatesCorrectlyAtArbitraryPoint(t *testing.T) {
	assert := require.New(t)
	p := field.F17()

	a := denseFromUint64(p, 2, 3)
	b := denseFromUint64(p, 1, 4, 1)

	product, err := a.Mul(b)
	assert.NoError(err)

	point := field.NewElementUint64(p, 11)
	want := a.Evaluate(point).Mul(b.Evaluate(point))
	assert.True(product.Evaluate(point).Equal(want))
}

// TestZeroPolynomialBoundaryBehaviors covers invariant 10.
func TestZeroPolynomialBoundaryBehaviors(t *testing.T) {
	assert := require.New(t)
	p := field.F17()

	zero := ZeroDense(p)
	nonZero := denseFromUint64(p, 1, 2)

	assert.True(zero.IsZero())
	assert.Equal(0, zero.Degree())
	assert.True(zero.Evaluate(field.NewElementUint64(p, 9)).IsZero())

	sum := zero.Add(nonZero)
	assert.True(sum.Degree() == nonZero.Degree())

	naiveProduct := zero.NaiveMul(nonZero)
	assert.True(naiveProduct.IsZero())

	fastProduct, err := zero.Mul(nonZero)
	assert.NoError(err)
	assert.True(fastProduct.IsZero())

	q, r, err := nonZero.Divide(zero)
	assert.Nil(q)
	assert.Nil(r)
	assert.Equal(ErrDivisionByZero, err)

	q2, r2, err := zero.Divide(nonZero)
	assert.NoError(err)
	assert.True(q2.IsZero())
	assert.True(r2.IsZero())
}

// TestCanonicalFormTrimsTrailingZeros covers invariant 3: Dense values
// never carry a trailing zero coefficient.
func TestCanonicalFormTrimsTrailingZeros(t *testing.T) {
	assert := require.New(t)
	p := field.F17()

	d := denseFromUint64(p, 1, 2, 0, 0)
	assert.Equal(1, d.Degree())
	assert.Len(d.Coeffs, 2)
}

func TestDenseBytesRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	p := field.F17()

	properties.Property("Dense WriteTo/ReadDense round trips", prop.ForAll(
		func(vals []uint64) bool {
			d := denseFromUint64(p, vals...)
			var buf bytes.Buffer
			if _, err := d.WriteTo(&buf); err != nil {
				return false
			}
			back, _, err := ReadDense(p, &buf)
			if err != nil {
				return false
			}
			if back.Degree() != d.Degree() {
				return false
			}
			for i := range d.Coeffs {
				if !d.Coeffs[i].Equal(back.Coeffs[i]) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt64Range(0, 16)),
	))

	properties.TestingRun(t)
}
