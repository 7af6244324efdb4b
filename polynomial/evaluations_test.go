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
	"testing"

	"github.com/consensys/gnark-ff-poly/field"
	"github.com/consensys/gnark-ff-poly/fft"
	"github.com/stretchr/testify/require"
)

// TestLagrangeCoefficientsScenario covers spec.md scenario (d):
// Lagrange coefficients at tau=5 on a size-4, h=1 domain satisfy
// sum(L_i) = 1 and the basis property sum(L_i * x_i) = tau.
func TestLagrangeCoefficientsScenario(t *testing.T) {
	assert := require.New(t)
	p := field.F17()

	d, ok := fft.NewRadix2Domain(p, 4)
	assert.True(ok)

	tau := field.NewElementUint64(p, 5)
	coeffs := d.EvaluateAllLagrangeCoefficients(tau)
	assert.Len(coeffs, 4)

	sum := field.Zero(p)
	weighted := field.Zero(p)
	next := d.Elements()
	for _, c := range coeffs {
		sum = sum.Add(c)
		x, ok := next()
		assert.True(ok)
		weighted = weighted.Add(c.Mul(x))
	}

	assert.True(sum.IsOne())
	assert.True(weighted.Equal(tau))
}

func TestEvaluationsDomainMismatchPanics(t *testing.T) {
	assert := require.New(t)
	p := field.F17()

	d1, ok := fft.NewRadix2Domain(p, 4)
	assert.True(ok)
	d2, ok := fft.NewRadix2Domain(p, 8)
	assert.True(ok)

	a := ZeroEvaluations(d1)
	b := ZeroEvaluations(d2)

	assert.Panics(func() { a.Add(b) })
}

func TestEvaluationsPointwiseArithmetic(t *testing.T) {
	assert := require.New(t)
	p := field.F17()

	d, ok := fft.NewRadix2Domain(p, 4)
	assert.True(ok)

	a := &Evaluations{Values: elemsFrom(p, 1, 2, 3, 4), Domain: d}
	b := &Evaluations{Values: elemsFrom(p, 5, 6, 7, 8), Domain: d}

	sum := a.Add(b)
	for i := range sum.Values {
		want := a.Values[i].Add(b.Values[i])
		assert.True(sum.Values[i].Equal(want))
	}

	diff := a.Sub(b)
	for i := range diff.Values {
		want := a.Values[i].Sub(b.Values[i])
		assert.True(diff.Values[i].Equal(want))
	}

	prod := a.Mul(b)
	for i := range prod.Values {
		want := a.Values[i].Mul(b.Values[i])
		assert.True(prod.Values[i].Equal(want))
	}
}

// TestEvaluationsDivPreservesZerosAndInverts covers invariant 13 as
// exercised through Evaluations.Div, which relies on field.BatchInvert.
func TestEvaluationsDivPreservesZerosAndInverts(t *testing.T) {
	assert := require.New(t)
	p := field.F17()

	d, ok := fft.NewRadix2Domain(p, 4)
	assert.True(ok)

	numerator := &Evaluations{Values: elemsFrom(p, 6, 0, 10, 3), Domain: d}
	denominator := &Evaluations{Values: elemsFrom(p, 2, 0, 5, 1), Domain: d}

	quotient := numerator.Div(denominator)

	assert.True(quotient.Values[1].IsZero(), "division where both numerator and denominator are zero stays zero")
	for _, i := range []int{0, 2, 3} {
		want := numerator.Values[i].Mul(mustInverse(t, denominator.Values[i]))
		assert.True(quotient.Values[i].Equal(want), "index %d", i)
	}
}

func elemsFrom(p *field.Params, vs ...uint64) []field.Element {
	out := make([]field.Element, len(vs))
	for i, v := range vs {
		out[i] = field.NewElementUint64(p, v)
	}
	return out
}

func mustInverse(t *testing.T, e field.Element) field.Element {
	t.Helper()
	inv, ok := e.Inverse()
	require.True(t, ok)
	return inv
}
