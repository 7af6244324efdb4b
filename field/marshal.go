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
	"crypto/rand"
	"errors"
	"io"
)

// ErrInvalidElementSize is returned by SetBytes when the encoded
// modulus byte length does not match the field this element belongs to.
var ErrInvalidElementSize = errors.New("field: invalid encoded element size")

// byteLen is the number of bytes needed to hold any element of p, i.e.
// ceil(bitlen(modulus)/8). It is fixed per field so encodings are
// constant-width.
func (p *Params) byteLen() int {
	return (p.Modulus.BitLen() + 7) / 8
}

// Bytes returns the big-endian, fixed-width encoding of z.
func (z Element) Bytes() []byte {
	n := z.params.byteLen()
	buf := make([]byte, n)
	z.val.FillBytes(buf)
	return buf
}

// SetBytes decodes a big-endian encoding produced by Bytes into an
// element of p. It fails if b does not carry p's fixed width or encodes
// a value outside [0, modulus).
func (p *Params) SetBytes(b []byte) (Element, error) {
	if len(b) != p.byteLen() {
		return Element{}, ErrInvalidElementSize
	}
	var z Element
	z.params = p
	z.val.SetBytes(b)
	if z.val.Cmp(p.Modulus) >= 0 {
		return Element{}, ErrInvalidElementSize
	}
	return z, nil
}

// WriteTo implements io.WriterTo, writing z's fixed-width big-endian
// encoding.
func (z Element) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(z.Bytes())
	return int64(n), err
}

// ReadFrom reads a fixed-width big-endian encoding of an element of p
// and returns the element with the number of bytes read. Because it
// also returns the element, Params does not satisfy io.ReaderFrom.
func (p *Params) ReadFrom(r io.Reader) (Element, int64, error) {
	buf := make([]byte, p.byteLen())
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return Element{}, int64(n), err
	}
	z, err := p.SetBytes(buf)
	return z, int64(n), err
}

// SetRandom draws a uniformly random element of p from r via rejection
// sampling, mirroring fr.Element.SetRandom's approach of discarding
// samples outside [0, modulus).
func (p *Params) SetRandom(r io.Reader) (Element, error) {
	n := p.byteLen()
	buf := make([]byte, n)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return Element{}, err
		}
		var z Element
		z.params = p
		z.val.SetBytes(buf)
		if z.val.Cmp(p.Modulus) < 0 {
			return z, nil
		}
	}
}

// Random draws a uniformly random element of p using crypto/rand.
func Random(p *Params) (Element, error) {
	return p.SetRandom(rand.Reader)
}
