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
	"github.com/consensys/gnark-ff-poly/field"
	"github.com/consensys/gnark-ff-poly/fft"
)

// Evaluations pairs a polynomial's values on a domain with the domain
// itself (spec.md section 4.H): Values[i] = P(domain.Element(i)).
type Evaluations struct {
	Values []field.Element
	Domain fft.Domain
}

// ZeroEvaluations returns the all-zero Evaluations over domain.
func ZeroEvaluations(domain fft.Domain) *Evaluations {
	v := make([]field.Element, domain.Size())
	z := field.Zero(domain.Params())
	for i := range v {
		v[i] = z
	}
	return &Evaluations{Values: v, Domain: domain}
}

// EvaluateOverDomain evaluates d at every point of domain via a forward
// FFT.
func EvaluateOverDomain(d *Dense, domain fft.Domain) *Evaluations {
	values := domain.FFTInPlace(append([]field.Element(nil), d.Coeffs...))
	return &Evaluations{Values: values, Domain: domain}
}

// Interpolate runs an inverse FFT on e's values and wraps the result as
// a Dense polynomial, truncating trailing zeros.
func (e *Evaluations) Interpolate() *Dense {
	coeffs := e.Domain.IFFTInPlace(append([]field.Element(nil), e.Values...))
	return NewDense(e.Domain.Params(), coeffs)
}

// domainsEqual compares the metadata that identifies a domain (size,
// generator, coset offset), rather than pointer identity, so that two
// independently constructed but equal domains compare equal — matching
// the Rust reference's derived PartialEq over the domain's fields.
func domainsEqual(a, b fft.Domain) bool {
	return a.Size() == b.Size() &&
		a.GroupGen().Equal(b.GroupGen()) &&
		a.CosetOffset().Equal(b.CosetOffset())
}

func (e *Evaluations) requireSameDomain(other *Evaluations) {
	if !domainsEqual(e.Domain, other.Domain) {
		panic("polynomial: Evaluations operands belong to different domains")
	}
}

// Add returns e + other, pointwise. Panics if the domains differ.
func (e *Evaluations) Add(other *Evaluations) *Evaluations {
	e.requireSameDomain(other)
	out := make([]field.Element, len(e.Values))
	for i := range out {
		out[i] = e.Values[i].Add(other.Values[i])
	}
	return &Evaluations{Values: out, Domain: e.Domain}
}

// Sub returns e - other, pointwise. Panics if the domains differ.
func (e *Evaluations) Sub(other *Evaluations) *Evaluations {
	e.requireSameDomain(other)
	out := make([]field.Element, len(e.Values))
	for i := range out {
		out[i] = e.Values[i].Sub(other.Values[i])
	}
	return &Evaluations{Values: out, Domain: e.Domain}
}

// Mul returns e * other, pointwise. Panics if the domains differ.
func (e *Evaluations) Mul(other *Evaluations) *Evaluations {
	e.requireSameDomain(other)
	out := make([]field.Element, len(e.Values))
	for i := range out {
		out[i] = e.Values[i].Mul(other.Values[i])
	}
	return &Evaluations{Values: out, Domain: e.Domain}
}

// Div returns e / other, pointwise, via Montgomery-trick batch
// inversion of other's values. Panics if the domains differ.
func (e *Evaluations) Div(other *Evaluations) *Evaluations {
	e.requireSameDomain(other)
	inv := append([]field.Element(nil), other.Values...)
	field.BatchInvert(inv)
	out := make([]field.Element, len(e.Values))
	for i := range out {
		out[i] = e.Values[i].Mul(inv[i])
	}
	return &Evaluations{Values: out, Domain: e.Domain}
}

// ScalarMul returns e * c, pointwise.
func (e *Evaluations) ScalarMul(c field.Element) *Evaluations {
	out := make([]field.Element, len(e.Values))
	for i, v := range e.Values {
		out[i] = v.Mul(c)
	}
	return &Evaluations{Values: out, Domain: e.Domain}
}
