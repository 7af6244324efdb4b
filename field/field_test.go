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

package field

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestF17RootOfUnity(t *testing.T) {
	assert := require.New(t)
	p := F17()

	// spec.md section 8, scenario (1): omega of order 16 must be 3, and
	// repeated squaring must walk down the power-of-two orders correctly.
	omega16, ok := p.GetRootOfUnity(16)
	assert.True(ok)
	assert.True(omega16.Equal(NewElementUint64(p, 3)))

	omega8, ok := p.GetRootOfUnity(8)
	assert.True(ok)
	assert.True(omega8.Equal(omega16.Square()))

	// order 16 generator to the 16th power is 1.
	assert.True(omega16.PowUint64(16).IsOne())

	// n=3 is not a power of two: rejected.
	_, ok = p.GetRootOfUnity(3)
	assert.False(ok)

	// n exceeding the two-adicity: rejected.
	_, ok = p.GetRootOfUnity(32)
	assert.False(ok)
}

func TestArithmeticBasics(t *testing.T) {
	assert := require.New(t)
	p := F17()

	a := NewElementUint64(p, 10)
	b := NewElementUint64(p, 12)

	assert.True(a.Add(b).Equal(NewElementUint64(p, 5))) // 10+12 = 22 = 5 mod 17
	assert.True(a.Sub(b).Equal(NewElementUint64(p, 15)))
	assert.True(a.Mul(b).Equal(NewElementUint64(p, 1))) // 120 mod 17 = 1

	inv, ok := a.Inverse()
	assert.True(ok)
	assert.True(a.Mul(inv).IsOne())

	zero := Zero(p)
	_, ok = zero.Inverse()
	assert.False(ok)
}

func TestPowWithTable(t *testing.T) {
	assert := require.New(t)
	p := F17()
	base := NewElementUint64(p, 3)

	table := make([]Element, 5)
	table[0] = base
	for i := 1; i < len(table); i++ {
		table[i] = table[i-1].Square()
	}

	for exp := uint64(0); exp < 16; exp++ {
		got, ok := PowWithTable(table, new(big.Int).SetUint64(exp))
		assert.True(ok)
		want := base.PowUint64(exp)
		assert.True(got.Equal(want), "exp=%d", exp)
	}

	// exponent requiring a power beyond the table is rejected.
	_, ok := PowWithTable(table, big.NewInt(1<<20))
	assert.False(ok)
}

func TestSumOfProducts(t *testing.T) {
	assert := require.New(t)
	p := F17()
	a := []Element{NewElementUint64(p, 2), NewElementUint64(p, 3), NewElementUint64(p, 5)}
	b := []Element{NewElementUint64(p, 7), NewElementUint64(p, 11), NewElementUint64(p, 13)}

	got := SumOfProducts(a, b)
	want := NewElementUint64(p, 2*7+3*11+5*13)
	assert.True(got.Equal(want))
}

func TestBytesRoundTrip(t *testing.T) {
	p := F17()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("Bytes/SetBytes round-trips any element", prop.ForAll(
		func(v uint64) bool {
			e := NewElementUint64(p, v)
			b := e.Bytes()
			back, err := p.SetBytes(b)
			if err != nil {
				return false
			}
			return back.Equal(e)
		},
		gen.UInt64Range(0, 1000),
	))

	properties.TestingRun(t)
}

func TestBatchInvertPreservesZerosAndInverts(t *testing.T) {
	assert := require.New(t)
	p := F17()

	v := []Element{
		NewElementUint64(p, 2),
		Zero(p),
		NewElementUint64(p, 5),
		NewElementUint64(p, 11),
		Zero(p),
	}
	orig := make([]Element, len(v))
	copy(orig, v)

	BatchInvert(v)

	for i, o := range orig {
		if o.IsZero() {
			assert.True(v[i].IsZero(), "zero at %d must stay zero", i)
			continue
		}
		assert.True(v[i].Mul(o).IsOne(), "index %d: v[i] must be the inverse of the original", i)
	}
}

func TestBatchInvertWithMultiplier(t *testing.T) {
	assert := require.New(t)
	p := F17()
	c := NewElementUint64(p, 6)

	v := []Element{NewElementUint64(p, 2), NewElementUint64(p, 9)}
	orig := make([]Element, len(v))
	copy(orig, v)

	BatchInvertWithMultiplier(v, c)

	for i, o := range orig {
		inv, ok := o.Inverse()
		assert.True(ok)
		assert.True(v[i].Equal(c.Mul(inv)))
	}
}
