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

// BatchInvert inverts every non-zero element of v in place, using
// Montgomery's trick: a single field inversion plus O(len(v))
// multiplications. Zero entries are left untouched. v is returned for
// convenient chaining.
func BatchInvert(v []Element) []Element {
	if len(v) == 0 {
		return v
	}
	return BatchInvertWithMultiplier(v, One(v[0].params))
}

// BatchInvertWithMultiplier sets v[i] <- c / v[i] in place for every
// non-zero v[i] (zero entries are preserved), in a single inversion.
func BatchInvertWithMultiplier(v []Element, c Element) []Element {
	if len(v) == 0 {
		return v
	}
	p := c.params

	// forward pass: running products over the non-zero entries.
	prefix := make([]Element, len(v))
	acc := One(p)
	for i, x := range v {
		if !x.IsZero() {
			acc = acc.Mul(x)
		}
		prefix[i] = acc
	}

	t, ok := acc.Inverse()
	if !ok {
		// acc starts at one and is only multiplied by non-zero entries,
		// so it is never zero and this branch is not taken; an all-zero
		// v leaves acc at one and the backward pass skips every entry.
		return v
	}
	t = t.Mul(c)

	for i := len(v) - 1; i >= 0; i-- {
		if v[i].IsZero() {
			continue
		}
		var prev Element
		if i == 0 {
			prev = One(p)
		} else {
			prev = prefix[i-1]
		}
		orig := v[i]
		v[i] = t.Mul(prev)
		t = t.Mul(orig)
	}
	return v
}
