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
	"fmt"
	"strings"

	"github.com/consensys/go-cantor/pkg/util/field"
)

// Polynomial is a dense univariate polynomial over a prime field, where the
// ith coefficient is that of x^i.  Polynomials are immutable values: all
// operations are pure and return fresh polynomials in canonical (trimmed)
// form.  Invariant: the coefficient slice never carries trailing zeros, hence
// the zero polynomial is represented by an empty slice and its degree is the
// sentinel value -1 (distinct from degree 0 constants).
type Polynomial struct {
	fld    *field.Field
	coeffs []field.Element
}

// New constructs a polynomial from coefficients given in ascending degree
// order, trimming any trailing zero coefficients.
func New(fld *field.Field, coeffs ...field.Element) Polynomial {
	n := len(coeffs)
	//
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	// Copy to sever aliasing with the caller's slice.
	trimmed := make([]field.Element, n)
	copy(trimmed, coeffs[:n])
	//
	return Polynomial{fld: fld, coeffs: trimmed}
}

// NewFromUint64 constructs a polynomial from small coefficients given in
// ascending degree order.
func NewFromUint64(fld *field.Field, coeffs ...uint64) Polynomial {
	elems := make([]field.Element, len(coeffs))
	//
	for i, c := range coeffs {
		elems[i] = fld.FromUint64(c)
	}
	//
	return New(fld, elems...)
}

// Zero constructs the zero polynomial.
func Zero(fld *field.Field) Polynomial {
	return Polynomial{fld: fld}
}

// One constructs the constant polynomial 1.
func One(fld *field.Field) Polynomial {
	return New(fld, fld.One())
}

// Constant constructs a constant polynomial for a given element.
func Constant(c field.Element) Polynomial {
	return New(c.Field(), c)
}

// Field returns the coefficient field of this polynomial.
func (p Polynomial) Field() *field.Field {
	return p.fld
}

// Degree returns the degree of this polynomial, or the sentinel -1 for the
// zero polynomial.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero checks whether this is the zero polynomial (or not).
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsOne checks whether this is the constant polynomial 1 (or not).
func (p Polynomial) IsOne() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].IsOne()
}

// Coefficient returns the ith coefficient, where zero is reported for any
// index above the degree.
func (p Polynomial) Coefficient(i int) field.Element {
	if i < 0 || i >= len(p.coeffs) {
		return p.fld.Zero()
	}
	//
	return p.coeffs[i]
}

// LeadingCoefficient returns the coefficient of the highest-degree term, or
// zero for the zero polynomial.
func (p Polynomial) LeadingCoefficient() field.Element {
	if p.IsZero() {
		return p.fld.Zero()
	}
	//
	return p.coeffs[len(p.coeffs)-1]
}

// Equals determines whether two polynomials are identical.
func (p Polynomial) Equals(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	//
	for i := range p.coeffs {
		if !p.coeffs[i].Equals(q.coeffs[i]) {
			return false
		}
	}
	//
	return true
}

// Add computes p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := max(len(p.coeffs), len(q.coeffs))
	coeffs := make([]field.Element, n)
	//
	for i := range coeffs {
		coeffs[i] = p.Coefficient(i).Add(q.Coefficient(i))
	}
	//
	return New(p.fld, coeffs...)
}

// Sub computes p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := max(len(p.coeffs), len(q.coeffs))
	coeffs := make([]field.Element, n)
	//
	for i := range coeffs {
		coeffs[i] = p.Coefficient(i).Sub(q.Coefficient(i))
	}
	//
	return New(p.fld, coeffs...)
}

// Neg computes -p.
func (p Polynomial) Neg() Polynomial {
	coeffs := make([]field.Element, len(p.coeffs))
	//
	for i := range coeffs {
		coeffs[i] = p.coeffs[i].Neg()
	}
	//
	return New(p.fld, coeffs...)
}

// Mul computes p * q by schoolbook convolution, which is O(n·m) in the operand
// lengths.  Operand degrees never exceed single digits in the group law, so
// nothing faster is warranted.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero(p.fld)
	}
	//
	coeffs := make([]field.Element, len(p.coeffs)+len(q.coeffs)-1)
	//
	for i := range coeffs {
		coeffs[i] = p.fld.Zero()
	}
	//
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			coeffs[i+j] = coeffs[i+j].Add(a.Mul(b))
		}
	}
	//
	return New(p.fld, coeffs...)
}

// Scale computes c * p for a scalar c.
func (p Polynomial) Scale(c field.Element) Polynomial {
	coeffs := make([]field.Element, len(p.coeffs))
	//
	for i := range coeffs {
		coeffs[i] = p.coeffs[i].Mul(c)
	}
	//
	return New(p.fld, coeffs...)
}

// Monic scales this polynomial by the inverse of its leading coefficient,
// failing on the zero polynomial (which has no unit normalisation).
func (p Polynomial) Monic() (Polynomial, error) {
	if p.IsZero() {
		return Polynomial{}, ErrDivisionByZeroPolynomial
	}
	//
	inv, err := p.LeadingCoefficient().Inverse()
	if err != nil {
		return Polynomial{}, err
	}
	//
	return p.Scale(inv), nil
}

// Derivative computes the formal derivative p'.
func (p Polynomial) Derivative() Polynomial {
	if p.Degree() < 1 {
		return Zero(p.fld)
	}
	//
	coeffs := make([]field.Element, len(p.coeffs)-1)
	//
	for i := range coeffs {
		coeffs[i] = p.coeffs[i+1].Mul(p.fld.FromUint64(uint64(i + 1)))
	}
	//
	return New(p.fld, coeffs...)
}

// Eval evaluates this polynomial at a given point using Horner's rule.
func (p Polynomial) Eval(x field.Element) field.Element {
	acc := p.fld.Zero()
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	//
	return acc
}

// String constructs a human-readable rendition, e.g. "x^2 + 3x + 1".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	//
	var builder strings.Builder
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		//
		if c.IsZero() {
			continue
		}
		//
		if builder.Len() != 0 {
			builder.WriteString(" + ")
		}
		// Various cases to improve readability
		switch {
		case i == 0:
			builder.WriteString(c.String())
		case c.IsOne() && i == 1:
			builder.WriteString("x")
		case c.IsOne():
			fmt.Fprintf(&builder, "x^%d", i)
		case i == 1:
			fmt.Fprintf(&builder, "%sx", c.String())
		default:
			fmt.Fprintf(&builder, "%sx^%d", c.String(), i)
		}
	}
	//
	return builder.String()
}
