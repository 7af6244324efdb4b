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

import "math/big"

func bigFromString(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("field: invalid decimal literal " + s)
	}
	return v
}

// F17 is the toy field used by the worked example: p = 17,
// TwoAdicity = 4 (16 = 2^4 divides p-1 = 16), generator 3, and
// TwoAdicRootOfUnity = 3^((p-1)/16) = 3^1 = 3.
func F17() *Params {
	return &Params{
		Name:               "F17",
		Modulus:            big.NewInt(17),
		Generator:          big.NewInt(3),
		TwoAdicity:         4,
		TwoAdicRootOfUnity: big.NewInt(3),
	}
}

// BN254Fr models the scalar field of the BN254 curve: a 254-bit prime
// with two-adicity 28, a pure two-adic FFT field with no small
// subgroup. Parameters match gnark-crypto's bn254 fr field.
func BN254Fr() *Params {
	return &Params{
		Name:      "BN254Fr",
		Modulus:   bigFromString("21888242871839275222246405745257275088548364400416034343698204186575808495617"),
		Generator: big.NewInt(5),
		TwoAdicity: 28,
		TwoAdicRootOfUnity: bigFromString(
			"19103219067921713944291392827692070036145651957329286315305642004821462161904"),
	}
}

// BabyBearLike models a small (31-bit) prime field shaped like
// BabyBear (p = 2^31 - 2^27 + 1 = 15*2^27 + 1), exercising a small
// subgroup on top of the two-adic part: p - 1 = 2^27 * 15, and 15 = 3*5
// is not itself a prime power, so SmallSubgroupBase here is taken to be
// its largest prime factor, 5 (p - 1 = 2^27 * 5 * 3), giving a mixed
// domain of size 2^a * 5^b for small b.
func BabyBearLike() *Params {
	p := bigFromString("2013265921") // 15*2^27 + 1
	// generator 31 has order p-1 in this field.
	return &Params{
		Name:                     "BabyBearLike",
		Modulus:                  p,
		Generator:                big.NewInt(31),
		TwoAdicity:               27,
		TwoAdicRootOfUnity:       bigFromString("440564289"),
		SmallSubgroupBase:        5,
		SmallSubgroupBaseAdicity: 1,
		LargeSubgroupRootOfUnity: big.NewInt(29791), // 31^3 = 31^((p-1)/(2^27*5)), order 2^27*5
	}
}
