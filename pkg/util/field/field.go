// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrZeroInverse signals an attempt to invert the additive identity, which is
// the only failure case for field inversion.
var ErrZeroInverse = errors.New("field: inverse of zero")

// Field fixes an odd prime modulus p, and acts as a factory for elements of
// GF(p).  A Field is immutable after construction and can be shared freely
// across goroutines.
type Field struct {
	// modulus of this field.
	p *big.Int
	// number of bytes required to encode the modulus.  Every element encodes
	// to exactly this many bytes (big endian, zero padded).
	byteLen int
}

// NewField constructs a field for a given odd prime modulus.  Composite (and
// even) moduli are rejected outright: with a composite p, Fermat inversion
// returns non-inverses, after which polynomial division stops cancelling
// leading terms and the Euclidean loops never terminate.
func NewField(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.New("field: modulus must be at least 2")
	}
	//
	if p.Bit(0) == 0 {
		return nil, errors.Errorf("field: modulus %s is even", p)
	}
	//
	if !p.ProbablyPrime(64) {
		return nil, errors.Errorf("field: modulus %s is composite", p)
	}
	//
	modulus := new(big.Int).Set(p)
	//
	return &Field{p: modulus, byteLen: (modulus.BitLen() + 7) / 8}, nil
}

// Modulus returns (a copy of) the prime modulus of this field.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// ByteLen returns the number of bytes used by the canonical encoding of an
// element of this field.
func (f *Field) ByteLen() int {
	return f.byteLen
}

// Zero constructs the additive identity of this field.
func (f *Field) Zero() Element {
	return Element{fld: f, val: new(big.Int)}
}

// One constructs the multiplicative identity of this field.
func (f *Field) One() Element {
	return Element{fld: f, val: big.NewInt(1)}
}

// FromUint64 constructs the element representing a given uint64.
func (f *Field) FromUint64(v uint64) Element {
	return f.FromBigInt(new(big.Int).SetUint64(v))
}

// FromBigInt constructs the element representing a given integer, reducing it
// into the range [0,p).  Negative values are mapped to their representative in
// that range.
func (f *Field) FromBigInt(v *big.Int) Element {
	val := new(big.Int).Mod(v, f.p)
	//
	return Element{fld: f, val: val}
}

// FromBytes constructs an element from the big-endian encoding of a
// non-negative integer, reducing it into the range [0,p).
func (f *Field) FromBytes(bytes []byte) Element {
	return f.FromBigInt(new(big.Int).SetBytes(bytes))
}
