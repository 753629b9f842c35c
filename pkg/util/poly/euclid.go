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
package poly

import (
	"github.com/pkg/errors"

	"github.com/consensys/go-cantor/pkg/util/field"
)

// ErrDivisionByZeroPolynomial signals a division (or normalisation) where the
// divisor is the zero polynomial.  This always indicates a caller bug and is
// propagated rather than masked.
var ErrDivisionByZeroPolynomial = errors.New("poly: division by zero polynomial")

// DivMod computes polynomial long division of num by den, returning a quotient
// and remainder such that num = den*q + r with deg(r) < deg(den) (or r zero).
// Fails with ErrDivisionByZeroPolynomial when den is the zero polynomial.
func DivMod(num, den Polynomial) (q Polynomial, r Polynomial, err error) {
	if den.IsZero() {
		return Polynomial{}, Polynomial{}, ErrDivisionByZeroPolynomial
	}
	//
	fld := num.fld
	//
	if num.Degree() < den.Degree() {
		return Zero(fld), num, nil
	}
	// Leading coefficient of a non-zero polynomial is non-zero, so this
	// inversion cannot fail.
	leadInv, err := den.LeadingCoefficient().Inverse()
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}
	//
	var (
		rem    = append([]field.Element(nil), num.coeffs...)
		quot   = make([]field.Element, num.Degree()-den.Degree()+1)
		degDen = den.Degree()
	)
	//
	for i := len(quot) - 1; i >= 0; i-- {
		quot[i] = rem[i+degDen].Mul(leadInv)
		//
		for j := 0; j <= degDen; j++ {
			rem[i+j] = rem[i+j].Sub(quot[i].Mul(den.Coefficient(j)))
		}
	}
	//
	return New(fld, quot...), New(fld, rem...), nil
}

// XGCD runs the extended Euclidean algorithm over the polynomial ring,
// returning (g, s, t) such that a*s + b*t = g, where g is the greatest common
// divisor normalised to monic form (with s, t scaled accordingly).  Edge
// cases: XGCD(a, 0) = (monic(a), 1/lc(a), 0), and XGCD(0, 0) yields three zero
// polynomials.
func XGCD(a, b Polynomial) (g, s, t Polynomial, err error) {
	var (
		fld  = a.fld
		oldR = a
		r    = b
		oldS = One(fld)
		curS = Zero(fld)
		oldT = Zero(fld)
		curT = One(fld)
	)
	//
	for !r.IsZero() {
		quot, rem, err := DivMod(oldR, r)
		if err != nil {
			return Polynomial{}, Polynomial{}, Polynomial{}, err
		}
		//
		oldR, r = r, rem
		oldS, curS = curS, oldS.Sub(quot.Mul(curS))
		oldT, curT = curT, oldT.Sub(quot.Mul(curT))
	}
	// Both inputs zero: gcd undefined, report zero triple.
	if oldR.IsZero() {
		return Zero(fld), Zero(fld), Zero(fld), nil
	}
	// Normalise the divisor to monic form, scaling the Bézout coefficients so
	// the identity a*s + b*t = g is preserved.
	leadInv, err := oldR.LeadingCoefficient().Inverse()
	if err != nil {
		return Polynomial{}, Polynomial{}, Polynomial{}, err
	}
	//
	return oldR.Scale(leadInv), oldS.Scale(leadInv), oldT.Scale(leadInv), nil
}

// GCD computes the monic greatest common divisor of two polynomials.
func GCD(a, b Polynomial) (Polynomial, error) {
	g, _, _, err := XGCD(a, b)
	//
	return g, err
}
