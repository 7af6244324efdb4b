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

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/consensys/gnark-ff-poly/field"
)

// ErrInvalidDomainEncoding is returned by ReadRadix2Domain/
// ReadMixedRadixDomain when the encoded size cannot be reconstructed
// over p.
var ErrInvalidDomainEncoding = errors.New("fft: invalid encoded domain")

// WriteTo writes the domain's size and coset offset; the rest of the
// domain (roots of unity, inverses) is cheaply recomputed on read via
// NewRadix2Domain rather than shipped as redundant derived state.
func (d *Radix2Domain) WriteTo(w io.Writer) (int64, error) {
	return writeDomainHeader(w, d.Size(), d.offset)
}

// ReadRadix2Domain reconstructs a Radix2Domain written by WriteTo.
func ReadRadix2Domain(p *field.Params, r io.Reader) (*Radix2Domain, int64, error) {
	size, offset, n, err := readDomainHeader(p, r)
	if err != nil {
		return nil, n, err
	}
	d, ok := NewRadix2Domain(p, size)
	if !ok {
		return nil, n, ErrInvalidDomainEncoding
	}
	c, ok := d.GetCoset(offset)
	if !ok {
		return nil, n, ErrInvalidDomainEncoding
	}
	return c, n, nil
}

// WriteTo writes the domain's size and coset offset, mirroring
// Radix2Domain.WriteTo.
func (d *MixedRadixDomain) WriteTo(w io.Writer) (int64, error) {
	return writeDomainHeader(w, d.Size(), d.offset)
}

// ReadMixedRadixDomain reconstructs a MixedRadixDomain written by
// WriteTo.
func ReadMixedRadixDomain(p *field.Params, r io.Reader) (*MixedRadixDomain, int64, error) {
	size, offset, n, err := readDomainHeader(p, r)
	if err != nil {
		return nil, n, err
	}
	d, ok := NewMixedRadixDomain(p, size)
	if !ok {
		return nil, n, ErrInvalidDomainEncoding
	}
	c, ok := d.GetCoset(offset)
	if !ok {
		return nil, n, ErrInvalidDomainEncoding
	}
	return c, n, nil
}

func writeDomainHeader(w io.Writer, size int, offset field.Element) (int64, error) {
	var sizeBuf [8]byte
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(size))
	var total int64
	n, err := w.Write(sizeBuf[:])
	total += int64(n)
	if err != nil {
		return total, err
	}
	n2, err := offset.WriteTo(w)
	total += n2
	return total, err
}

func readDomainHeader(p *field.Params, r io.Reader) (int, field.Element, int64, error) {
	var sizeBuf [8]byte
	n, err := io.ReadFull(r, sizeBuf[:])
	total := int64(n)
	if err != nil {
		return 0, field.Element{}, total, err
	}
	size := int(binary.BigEndian.Uint64(sizeBuf[:]))

	offset, n2, err := p.ReadFrom(r)
	total += n2
	if err != nil {
		return 0, field.Element{}, total, err
	}
	return size, offset, total, nil
}
