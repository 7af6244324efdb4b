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
	"math/big"
	"sort"

	"github.com/consensys/gnark-ff-poly/field"
	"github.com/consensys/gnark-ff-poly/fft"
)

type term struct {
	exp   int
	coeff field.Element
}

// Sparse is a univariate polynomial stored as (exponent, coefficient)
// pairs, strictly ascending by exponent, with no zero coefficients
// (spec.md section 3).
type Sparse struct {
	params *field.Params
	terms  []term
}

// NewSparse builds a Sparse polynomial from (exponent, coeff) pairs,
// dropping zero coefficients and sorting ascending by exponent.
func NewSparse(p *field.Params, exps []int, coeffs []field.Element) *Sparse {
	if len(exps) != len(coeffs) {
		panic("polynomial: NewSparse requires matching exponent/coefficient slices")
	}
	var terms []term
	for i, e := range exps {
		if !coeffs[i].IsZero() {
			terms = append(terms, term{exp: e, coeff: coeffs[i]})
		}
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].exp < terms[j].exp })
	for i := 1; i < len(terms); i++ {
		if terms[i].exp == terms[i-1].exp {
			panic("polynomial: NewSparse requires unique exponents")
		}
	}
	return &Sparse{params: p, terms: terms}
}

// ZeroSparse returns the zero polynomial over p.
func ZeroSparse(p *field.Params) *Sparse {
	return &Sparse{params: p}
}

// Params returns the field this polynomial's coefficients belong to.
func (s *Sparse) Params() *field.Params { return s.params }

// IsZero reports whether s is the zero polynomial.
func (s *Sparse) IsZero() bool { return len(s.terms) == 0 }

// Degree returns s's degree (the largest exponent present), 0 for the
// zero polynomial by convention.
func (s *Sparse) Degree() int {
	if s.IsZero() {
		return 0
	}
	return s.terms[len(s.terms)-1].exp
}

// Terms returns s's (exponent, coefficient) pairs in ascending order.
func (s *Sparse) Terms() []struct {
	Exp   int
	Coeff field.Element
} {
	out := make([]struct {
		Exp   int
		Coeff field.Element
	}, len(s.terms))
	for i, t := range s.terms {
		out[i].Exp, out[i].Coeff = t.exp, t.coeff
	}
	return out
}

// Evaluate computes s(point) by precomputing ceil(log2(deg+1)) repeated
// squarings of point and reading each term's needed power from that
// table via field.PowWithTable (spec.md section 4.G).
func (s *Sparse) Evaluate(point field.Element) field.Element {
	if s.IsZero() {
		return field.Zero(s.params)
	}

	numPowers := bitLen(uint64(s.Degree()))
	if numPowers == 0 {
		numPowers = 1
	}
	powersOf2 := make([]field.Element, numPowers)
	p := point
	powersOf2[0] = p
	for i := 1; i < numPowers; i++ {
		p = p.Square()
		powersOf2[i] = p
	}

	total := field.Zero(s.params)
	for _, t := range s.terms {
		pw, ok := field.PowWithTable(powersOf2, big.NewInt(int64(t.exp)))
		if !ok {
			pw = point.PowUint64(uint64(t.exp))
		}
		total = total.Add(t.coeff.Mul(pw))
	}
	return total
}

func bitLen(n uint64) int {
	l := 0
	for n > 0 {
		l++
		n >>= 1
	}
	return l
}

// Add returns s + other via a merge over both sorted term lists.
func (s *Sparse) Add(other *Sparse) *Sparse {
	if s.IsZero() {
		return other.Clone()
	}
	if other.IsZero() {
		return s.Clone()
	}

	var out []term
	i, j := 0, 0
	for i < len(s.terms) && j < len(other.terms) {
		a, b := s.terms[i], other.terms[j]
		switch {
		case a.exp < b.exp:
			out = append(out, a)
			i++
		case a.exp > b.exp:
			out = append(out, b)
			j++
		default:
			sum := a.coeff.Add(b.coeff)
			if !sum.IsZero() {
				out = append(out, term{exp: a.exp, coeff: sum})
			}
			i++
			j++
		}
	}
	out = append(out, s.terms[i:]...)
	out = append(out, other.terms[j:]...)
	return &Sparse{params: s.params, terms: out}
}

// Neg returns -s.
func (s *Sparse) Neg() *Sparse {
	out := make([]term, len(s.terms))
	for i, t := range s.terms {
		out[i] = term{exp: t.exp, coeff: t.coeff.Neg()}
	}
	return &Sparse{params: s.params, terms: out}
}

// Sub returns s - other.
func (s *Sparse) Sub(other *Sparse) *Sparse {
	return s.Add(other.Neg())
}

// ScalarMul returns s * c, pointwise on coefficients.
func (s *Sparse) ScalarMul(c field.Element) *Sparse {
	if s.IsZero() || c.IsZero() {
		return ZeroSparse(s.params)
	}
	out := make([]term, len(s.terms))
	for i, t := range s.terms {
		out[i] = term{exp: t.exp, coeff: t.coeff.Mul(c)}
	}
	return &Sparse{params: s.params, terms: out}
}

// Mul computes s*other via a degree-keyed accumulator.
func (s *Sparse) Mul(other *Sparse) *Sparse {
	if s.IsZero() || other.IsZero() {
		return ZeroSparse(s.params)
	}
	acc := make(map[int]field.Element)
	var order []int
	for _, a := range s.terms {
		for _, b := range other.terms {
			e := a.exp + b.exp
			prod := a.coeff.Mul(b.coeff)
			if cur, ok := acc[e]; ok {
				acc[e] = cur.Add(prod)
			} else {
				acc[e] = prod
				order = append(order, e)
			}
		}
	}
	sort.Ints(order)
	var out []term
	for _, e := range order {
		if !acc[e].IsZero() {
			out = append(out, term{exp: e, coeff: acc[e]})
		}
	}
	return &Sparse{params: s.params, terms: out}
}

// Clone returns a deep copy of s.
func (s *Sparse) Clone() *Sparse {
	return &Sparse{params: s.params, terms: append([]term(nil), s.terms...)}
}

// ToDense materializes s as a zero-padded Dense polynomial.
func (s *Sparse) ToDense() *Dense {
	if s.IsZero() {
		return ZeroDense(s.params)
	}
	out := make([]field.Element, s.Degree()+1)
	for i := range out {
		out[i] = field.Zero(s.params)
	}
	for _, t := range s.terms {
		out[t.exp] = t.coeff
	}
	return NewDense(s.params, out)
}

// VanishingPolynomial returns domain's vanishing polynomial
// V_D(x) = x^|D| - offset^|D| in sparse form (spec.md GLOSSARY).
func VanishingPolynomial(domain fft.Domain) *Sparse {
	size, constant := domain.VanishingPolynomialTerms()
	return NewSparse(
		domain.Params(),
		[]int{0, size},
		[]field.Element{constant, field.One(domain.Params())},
	)
}

// FilterPolynomial returns the quotient of domain's vanishing
// polynomial (scaled) by subdomain's vanishing polynomial (scaled),
// exercising Divide with a zero remainder (spec.md section 6's
// supplemented filter_polynomial).
func FilterPolynomial(domain, subdomain fft.Domain) (*Dense, error) {
	selfScale := subdomain.SizeAsFieldElement().Mul(subdomain.CosetOffset().PowUint64(uint64(subdomain.Size())))
	subScale := domain.SizeAsFieldElement()

	selfVanishing := VanishingPolynomial(domain).ToDense().ScalarMul(selfScale)
	subVanishing := VanishingPolynomial(subdomain).ToDense().ScalarMul(subScale)

	quotient, remainder, err := selfVanishing.Divide(subVanishing)
	if err != nil {
		return nil, err
	}
	if !remainder.IsZero() {
		panic("polynomial: FilterPolynomial expected an exact division")
	}
	return quotient, nil
}
