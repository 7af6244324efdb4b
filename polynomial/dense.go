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

// Package polynomial implements dense and sparse univariate polynomials
// over a field.Params, their arithmetic (including FFT-based
// multiplication via the fft package), and the Evaluations container
// that ties a polynomial's values to an fft.Domain.
package polynomial

import (
	"errors"

	"github.com/consensys/gnark-ff-poly/field"
	"github.com/consensys/gnark-ff-poly/fft"
	"github.com/consensys/gnark-ff-poly/internal/trace"
)

// ErrNoSuitableDomain is returned by Dense.Mul when the field cannot
// represent an evaluation domain large enough to hold the product.
var ErrNoSuitableDomain = errors.New("polynomial: field cannot represent a domain large enough for this product")

// ErrDivisionByZero is returned by Divide when the divisor is the zero
// polynomial.
var ErrDivisionByZero = errors.New("polynomial: division by the zero polynomial")

// Dense is a univariate polynomial stored as its coefficients, lowest
// degree first. The canonical-form invariant (spec.md section 3) holds
// for every Dense value produced by this package: Coeffs is either
// empty or its last entry is non-zero.
type Dense struct {
	params *field.Params
	Coeffs []field.Element
}

// NewDense builds a Dense polynomial over p from coeffs (which are
// copied), truncating trailing zeros. An empty or all-zero coeffs gives
// the zero polynomial, the same as ZeroDense(p).
func NewDense(p *field.Params, coeffs []field.Element) *Dense {
	d := &Dense{params: p, Coeffs: append([]field.Element(nil), coeffs...)}
	d.truncate()
	return d
}

// ZeroDense returns the zero polynomial over p.
func ZeroDense(p *field.Params) *Dense {
	return &Dense{params: p}
}

func (d *Dense) truncate() {
	for len(d.Coeffs) > 0 && d.Coeffs[len(d.Coeffs)-1].IsZero() {
		d.Coeffs = d.Coeffs[:len(d.Coeffs)-1]
	}
}

// Params returns the field this polynomial's coefficients belong to.
func (d *Dense) Params() *field.Params { return d.params }

// IsZero reports whether d is the zero polynomial.
func (d *Dense) IsZero() bool { return len(d.Coeffs) == 0 }

// Degree returns d's degree, 0 for the zero polynomial by convention.
func (d *Dense) Degree() int {
	if d.IsZero() {
		return 0
	}
	return len(d.Coeffs) - 1
}

// Evaluate computes d(point) via Horner's rule, folding from the top
// coefficient down.
func (d *Dense) Evaluate(point field.Element) field.Element {
	if d.IsZero() {
		return field.Zero(d.params)
	}
	if point.IsZero() {
		return d.Coeffs[0]
	}
	acc := field.Zero(d.params)
	for i := len(d.Coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(point).Add(d.Coeffs[i])
	}
	return acc
}

// Clone returns a deep copy of d.
func (d *Dense) Clone() *Dense {
	return &Dense{params: d.params, Coeffs: append([]field.Element(nil), d.Coeffs...)}
}

// Neg returns -d.
func (d *Dense) Neg() *Dense {
	out := make([]field.Element, len(d.Coeffs))
	for i, c := range d.Coeffs {
		out[i] = c.Neg()
	}
	return &Dense{params: d.params, Coeffs: out}
}

// Add returns d + other.
func (d *Dense) Add(other *Dense) *Dense {
	if d.IsZero() {
		return other.Clone()
	}
	if other.IsZero() {
		return d.Clone()
	}
	longer, shorter := d, other
	if other.Degree() > d.Degree() {
		longer, shorter = other, d
	}
	out := append([]field.Element(nil), longer.Coeffs...)
	for i, c := range shorter.Coeffs {
		out[i] = out[i].Add(c)
	}
	return NewDense(d.params, out)
}

// Sub returns d - other.
func (d *Dense) Sub(other *Dense) *Dense {
	if d.IsZero() {
		return other.Neg()
	}
	if other.IsZero() {
		return d.Clone()
	}
	n := len(d.Coeffs)
	if len(other.Coeffs) > n {
		n = len(other.Coeffs)
	}
	out := make([]field.Element, n)
	for i := 0; i < n; i++ {
		out[i] = field.Zero(d.params)
		if i < len(d.Coeffs) {
			out[i] = d.Coeffs[i]
		}
		if i < len(other.Coeffs) {
			out[i] = out[i].Sub(other.Coeffs[i])
		}
	}
	return NewDense(d.params, out)
}

// ScalarMul returns d * c, pointwise.
func (d *Dense) ScalarMul(c field.Element) *Dense {
	if d.IsZero() || c.IsZero() {
		return ZeroDense(d.params)
	}
	out := make([]field.Element, len(d.Coeffs))
	for i, v := range d.Coeffs {
		out[i] = v.Mul(c)
	}
	return &Dense{params: d.params, Coeffs: out}
}

// NaiveMul computes d*other in O(n*m) time via the double loop.
func (d *Dense) NaiveMul(other *Dense) *Dense {
	if d.IsZero() || other.IsZero() {
		return ZeroDense(d.params)
	}
	out := make([]field.Element, d.Degree()+other.Degree()+1)
	for i := range out {
		out[i] = field.Zero(d.params)
	}
	for i, a := range d.Coeffs {
		for j, b := range other.Coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return NewDense(d.params, out)
}

// Mul computes d*other via a General evaluation domain: evaluate both
// on a domain large enough to hold the product, multiply pointwise,
// interpolate back. It returns ErrNoSuitableDomain when the field
// cannot represent a domain of the required size.
func (d *Dense) Mul(other *Dense) (*Dense, error) {
	if d.IsZero() || other.IsZero() {
		return ZeroDense(d.params), nil
	}
	domain, ok := fft.NewDomain(d.params, len(d.Coeffs)+len(other.Coeffs)-1)
	if !ok {
		return nil, ErrNoSuitableDomain
	}

	start := trace.Logger().Debug().Int("domainSize", domain.Size())
	defer start.Msg("fft-based polynomial multiply done")

	selfEvals := domain.FFTInPlace(append([]field.Element(nil), d.Coeffs...))
	otherEvals := domain.FFTInPlace(append([]field.Element(nil), other.Coeffs...))
	product := domain.MulPolynomialsInEvaluationDomain(selfEvals, otherEvals)
	coeffs := domain.IFFTInPlace(product)
	return NewDense(d.params, coeffs), nil
}

// MulByVanishing returns d * V_D(x) where V_D(x) = x^|D| - offset^|D|
// is domain's vanishing polynomial (spec.md section 4.F).
func (d *Dense) MulByVanishing(domain fft.Domain) *Dense {
	size, constant := domain.VanishingPolynomialTerms()
	shifted := make([]field.Element, size+len(d.Coeffs))
	for i := range shifted {
		shifted[i] = field.Zero(d.params)
	}
	copy(shifted[size:], d.Coeffs)
	for i, c := range d.Coeffs {
		shifted[i] = shifted[i].Add(constant.Mul(c))
	}
	return NewDense(d.params, shifted)
}

// DivideByVanishing divides d by domain's vanishing polynomial,
// returning (quotient, remainder). It assumes domain's coset offset is
// 1 (spec.md section 9 open question: the reference design does not
// scale by offset^|D| for cosets, and callers are expected to ensure
// offset = 1 before calling).
func (d *Dense) DivideByVanishing(domain fft.Domain) (*Dense, *Dense) {
	size, _ := domain.VanishingPolynomialTerms()
	if len(d.Coeffs) < size {
		return ZeroDense(d.params), d.Clone()
	}

	quotient := append([]field.Element(nil), d.Coeffs[size:]...)
	for i := 1; i < len(d.Coeffs)/size; i++ {
		tail := d.Coeffs[size*(i+1):]
		for j, c := range tail {
			quotient[j] = quotient[j].Add(c)
		}
	}

	remainder := append([]field.Element(nil), d.Coeffs[:size]...)
	for i := 0; i < len(remainder) && i < len(quotient); i++ {
		remainder[i] = remainder[i].Add(quotient[i])
	}

	return NewDense(d.params, quotient), NewDense(d.params, remainder)
}

// Divide runs generic schoolbook long division, returning (quotient,
// remainder) such that d = quotient*divisor + remainder with
// deg(remainder) < deg(divisor). It fails when divisor is zero.
func (d *Dense) Divide(divisor *Dense) (*Dense, *Dense, error) {
	if divisor.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	if d.IsZero() {
		return ZeroDense(d.params), ZeroDense(d.params), nil
	}
	if d.Degree() < divisor.Degree() {
		return ZeroDense(d.params), d.Clone(), nil
	}

	divisorLeadInv, ok := divisor.Coeffs[divisor.Degree()].Inverse()
	if !ok {
		return nil, nil, ErrDivisionByZero
	}

	remainder := append([]field.Element(nil), d.Coeffs...)
	quotient := make([]field.Element, d.Degree()-divisor.Degree()+1)
	for i := range quotient {
		quotient[i] = field.Zero(d.params)
	}

	remDeg := len(remainder) - 1
	for remDeg >= divisor.Degree() {
		for remDeg >= 0 && remainder[remDeg].IsZero() {
			remDeg--
		}
		if remDeg < divisor.Degree() {
			break
		}
		coeff := remainder[remDeg].Mul(divisorLeadInv)
		shift := remDeg - divisor.Degree()
		quotient[shift] = coeff

		for i, dc := range divisor.Coeffs {
			remainder[shift+i] = remainder[shift+i].Sub(coeff.Mul(dc))
		}
		remDeg--
	}

	return NewDense(d.params, quotient), NewDense(d.params, remainder), nil
}

// ToSparse converts d to its sparse representation, dropping zero
// coefficients.
func (d *Dense) ToSparse() *Sparse {
	var terms []term
	for i, c := range d.Coeffs {
		if !c.IsZero() {
			terms = append(terms, term{exp: i, coeff: c})
		}
	}
	return &Sparse{params: d.params, terms: terms}
}
