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
package hecc

import (
	"math/big"

	"github.com/consensys/go-cantor/pkg/util/field"
	"github.com/consensys/go-cantor/pkg/util/poly"
)

// Parameters bundles a curve with its base divisor, forming a complete domain
// for the masking layer.
type Parameters struct {
	Field *field.Field
	Curve *Curve
	Law   GroupLaw
	// Base is the divisor every masking scalar multiplies.
	Base Divisor
}

// Production returns the fixed production parameter set: the prime
// p = 2²⁵⁴ - 245, the curve y² = x⁵ + 3x⁴ + 14x³ + 7x² + 2x + 1 over GF(p),
// and the base divisor (u = x, v = 1).  These values are constants of the
// deployed system; since they validate by construction, any failure here is a
// programming error and panics.
//
// NOTE: the originally published modulus 2²⁵⁴ - 189 is divisible by 5 and
// hence not prime; 2²⁵⁴ - 245 is the largest prime below 2²⁵⁴ of that shape.
func Production() Parameters {
	p := new(big.Int).Lsh(big.NewInt(1), 254)
	p.Sub(p, big.NewInt(245))
	//
	fld, err := field.NewField(p)
	if err != nil {
		panic(err)
	}
	//
	f := poly.NewFromUint64(fld, 1, 2, 7, 14, 3, 1)
	//
	curve, err := NewCurve(fld, f)
	if err != nil {
		panic(err)
	}
	// u = x, v = 1; valid since f(0) = 1 = v².
	base, err := NewDivisor(curve, poly.NewFromUint64(fld, 0, 1), poly.One(fld))
	if err != nil {
		panic(err)
	}
	//
	return Parameters{Field: fld, Curve: curve, Law: NewGroupLaw(curve), Base: base}
}
