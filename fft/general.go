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

import "github.com/consensys/gnark-ff-poly/field"

// NewDomain builds the general evaluation domain of spec.md section
// 4.E: it tries a plain radix-2 domain first, and falls back to a
// mixed-radix domain when the field carries small-subgroup metadata
// and radix-2 alone cannot reach minSize.
func NewDomain(p *field.Params, minSize int) (Domain, bool) {
	if d, ok := NewRadix2Domain(p, minSize); ok {
		return d, true
	}
	if p.HasSmallSubgroup() {
		if d, ok := NewMixedRadixDomain(p, minSize); ok {
			return d, true
		}
	}
	return nil, false
}

// ComputeSizeOfDomain mirrors NewDomain's selection logic without
// constructing the roots of unity, for callers that only need the
// padded size.
func ComputeSizeOfDomain(p *field.Params, minSize int) (int, bool) {
	if size, ok := ComputeSizeOfRadix2Domain(p, minSize); ok {
		return size, true
	}
	if p.HasSmallSubgroup() {
		if size, ok := ComputeSizeOfMixedRadixDomain(p, minSize); ok {
			return size, true
		}
	}
	return 0, false
}

// GetCoset returns the coset offset*d for a Domain obtained from
// NewDomain, preserving its concrete radix-2/mixed-radix kind.
func GetCoset(d Domain, offset field.Element) (Domain, bool) {
	switch dd := d.(type) {
	case *Radix2Domain:
		c, ok := dd.GetCoset(offset)
		if !ok {
			return nil, false
		}
		return c, true
	case *MixedRadixDomain:
		c, ok := dd.GetCoset(offset)
		if !ok {
			return nil, false
		}
		return c, true
	default:
		return nil, false
	}
}
