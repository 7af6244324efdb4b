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
	"encoding/binary"
	"io"

	"github.com/consensys/gnark-ff-poly/field"
)

// WriteTo writes d's coefficient count followed by each coefficient's
// fixed-width encoding, composing field.Element's own WriteTo exactly
// as the ambient serialization design calls for.
func (d *Dense) WriteTo(w io.Writer) (int64, error) {
	return writeElements(w, d.Coeffs)
}

// ReadDense reconstructs a Dense polynomial written by WriteTo.
func ReadDense(p *field.Params, r io.Reader) (*Dense, int64, error) {
	coeffs, n, err := readElements(p, r)
	if err != nil {
		return nil, n, err
	}
	return NewDense(p, coeffs), n, nil
}

func writeElements(w io.Writer, v []field.Element) (int64, error) {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(v)))
	total := int64(0)
	n, err := w.Write(lenBuf[:])
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, e := range v {
		n2, err := e.WriteTo(w)
		total += n2
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteTo writes s's term count followed by each term's exponent (as a
// big-endian uint64) and coefficient encoding.
func (s *Sparse) WriteTo(w io.Writer) (int64, error) {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(s.terms)))
	total := int64(0)
	n, err := w.Write(lenBuf[:])
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, t := range s.terms {
		var expBuf [8]byte
		binary.BigEndian.PutUint64(expBuf[:], uint64(t.exp))
		n, err := w.Write(expBuf[:])
		total += int64(n)
		if err != nil {
			return total, err
		}
		n2, err := t.coeff.WriteTo(w)
		total += n2
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadSparse reconstructs a Sparse polynomial written by WriteTo.
func ReadSparse(p *field.Params, r io.Reader) (*Sparse, int64, error) {
	var lenBuf [8]byte
	n, err := io.ReadFull(r, lenBuf[:])
	total := int64(n)
	if err != nil {
		return nil, total, err
	}
	count := binary.BigEndian.Uint64(lenBuf[:])
	terms := make([]term, count)
	for i := range terms {
		var expBuf [8]byte
		n, err := io.ReadFull(r, expBuf[:])
		total += int64(n)
		if err != nil {
			return nil, total, err
		}
		coeff, n2, err := p.ReadFrom(r)
		total += n2
		if err != nil {
			return nil, total, err
		}
		terms[i] = term{exp: int(binary.BigEndian.Uint64(expBuf[:])), coeff: coeff}
	}
	return &Sparse{params: p, terms: terms}, total, nil
}

func readElements(p *field.Params, r io.Reader) ([]field.Element, int64, error) {
	var lenBuf [8]byte
	n, err := io.ReadFull(r, lenBuf[:])
	total := int64(n)
	if err != nil {
		return nil, total, err
	}
	count := binary.BigEndian.Uint64(lenBuf[:])
	out := make([]field.Element, count)
	for i := range out {
		e, n2, err := p.ReadFrom(r)
		total += n2
		if err != nil {
			return nil, total, err
		}
		out[i] = e
	}
	return out, total, nil
}
