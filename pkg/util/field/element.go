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
	"fmt"
	"math/big"
)

// An Element of a prime-order field.  Elements are immutable values: every
// operation returns a fresh, fully reduced element and never mutates its
// operands.  The zero value of this type is not usable; elements must be
// obtained through a Field.
type Element struct {
	fld *Field
	// val is the canonical representative in [0,p).  Invariant: never mutated
	// after construction.
	val *big.Int
}

// Field returns the field this element belongs to.
func (x Element) Field() *Field {
	return x.fld
}

// Add computes x + y.
func (x Element) Add(y Element) Element {
	x.checkField(y)
	//
	val := new(big.Int).Add(x.val, y.val)
	//
	return Element{fld: x.fld, val: val.Mod(val, x.fld.p)}
}

// Sub computes x - y.
func (x Element) Sub(y Element) Element {
	x.checkField(y)
	//
	val := new(big.Int).Sub(x.val, y.val)
	//
	return Element{fld: x.fld, val: val.Mod(val, x.fld.p)}
}

// Neg computes -x.
func (x Element) Neg() Element {
	val := new(big.Int).Neg(x.val)
	//
	return Element{fld: x.fld, val: val.Mod(val, x.fld.p)}
}

// Mul computes x * y.
func (x Element) Mul(y Element) Element {
	x.checkField(y)
	//
	val := new(big.Int).Mul(x.val, y.val)
	//
	return Element{fld: x.fld, val: val.Mod(val, x.fld.p)}
}

// Square computes x * x.
func (x Element) Square() Element {
	return x.Mul(x)
}

// Pow computes x^e for a non-negative exponent e.
func (x Element) Pow(e *big.Int) Element {
	return Element{fld: x.fld, val: new(big.Int).Exp(x.val, e, x.fld.p)}
}

// Inverse computes x⁻¹ via Fermat's little theorem (x^(p-2) mod p), failing
// with ErrZeroInverse when x is the additive identity.
func (x Element) Inverse() (Element, error) {
	if x.IsZero() {
		return Element{}, ErrZeroInverse
	}
	//
	exp := new(big.Int).Sub(x.fld.p, big.NewInt(2))
	//
	return x.Pow(exp), nil
}

// Sqrt computes a square root of x, returning false when x is not a quadratic
// residue of the field.
func (x Element) Sqrt() (Element, bool) {
	root := new(big.Int).ModSqrt(x.val, x.fld.p)
	if root == nil {
		return Element{}, false
	}
	//
	return Element{fld: x.fld, val: root}, true
}

// IsZero checks whether this element is the additive identity (or not).
func (x Element) IsZero() bool {
	return x.val.Sign() == 0
}

// IsOne checks whether this element is the multiplicative identity (or not).
func (x Element) IsOne() bool {
	return x.val.Cmp(big.NewInt(1)) == 0
}

// Equals determines whether two elements hold the same value.
func (x Element) Equals(y Element) bool {
	return x.fld.p.Cmp(y.fld.p) == 0 && x.val.Cmp(y.val) == 0
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	x.checkField(y)
	//
	return x.val.Cmp(y.val)
}

// BigInt returns (a copy of) the canonical representative of this element.
func (x Element) BigInt() *big.Int {
	return new(big.Int).Set(x.val)
}

// Uint64 returns the canonical representative of this element, assuming it
// fits within 64 bits.
func (x Element) Uint64() uint64 {
	return x.val.Uint64()
}

// Bytes returns the big-endian encoding of this element, zero padded to the
// byte length of the field modulus.
func (x Element) Bytes() []byte {
	return x.val.FillBytes(make([]byte, x.fld.byteLen))
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return x.val.Text(base)
}

func (x Element) String() string {
	return x.val.String()
}

// checkField panics when two elements of distinct fields meet in a binary
// operation.  This always indicates a caller bug.
func (x Element) checkField(y Element) {
	if x.fld != y.fld && x.fld.p.Cmp(y.fld.p) != 0 {
		panic(fmt.Sprintf("field: mixed moduli %s and %s", x.fld.p, y.fld.p))
	}
}
