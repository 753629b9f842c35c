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
	"fmt"

	"github.com/pkg/errors"

	"github.com/consensys/go-cantor/pkg/util/field"
	"github.com/consensys/go-cantor/pkg/util/poly"
)

// ErrPointNotOnCurve signals affine coordinates which do not satisfy
// y² = f(x), and hence cannot seed a divisor.
var ErrPointNotOnCurve = errors.New("hecc: point not on curve")

// Divisor is a reduced divisor on the Jacobian of a genus-2 curve, in Mumford
// representation (u, v).  Invariants, re-checked by Validate after every group
// law step:
//
//  1. u is monic;
//  2. deg(u) ≤ 2 (the genus);
//  3. deg(v) < deg(u);
//  4. v² ≡ f (mod u).
//
// Divisors are immutable values; the distinguished identity divisor is
// (u = 1, v = 0).
type Divisor struct {
	curve *Curve
	u, v  poly.Polynomial
}

// Identity returns the identity divisor of the Jacobian, (u = 1, v = 0).
func Identity(curve *Curve) Divisor {
	return Divisor{curve: curve, u: poly.One(curve.fld), v: poly.Zero(curve.fld)}
}

// NewDivisor constructs a divisor from an explicit Mumford pair, rejecting any
// pair which fails the representation invariants.
func NewDivisor(curve *Curve, u, v poly.Polynomial) (Divisor, error) {
	d := Divisor{curve: curve, u: u, v: v}
	//
	if err := d.Validate(); err != nil {
		return Divisor{}, err
	}
	//
	return d, nil
}

// NewDivisorFromPoint constructs the degree-one divisor (u = x - x0, v = y0)
// for an affine curve point, failing with ErrPointNotOnCurve when
// y0² ≠ f(x0).
func NewDivisorFromPoint(curve *Curve, x0, y0 field.Element) (Divisor, error) {
	if !y0.Square().Equals(curve.f.Eval(x0)) {
		return Divisor{}, errors.Wrapf(ErrPointNotOnCurve, "(%s, %s)", x0, y0)
	}
	//
	u := poly.New(curve.fld, x0.Neg(), curve.fld.One())
	v := poly.Constant(y0)
	//
	return Divisor{curve: curve, u: u, v: v}, nil
}

// Curve returns the curve this divisor lives on.
func (d Divisor) Curve() *Curve {
	return d.curve
}

// U returns the first component of the Mumford pair.
func (d Divisor) U() poly.Polynomial {
	return d.u
}

// V returns the second component of the Mumford pair.
func (d Divisor) V() poly.Polynomial {
	return d.v
}

// IsIdentity checks whether this is the identity divisor (or not).
func (d Divisor) IsIdentity() bool {
	return d.u.IsOne() && d.v.IsZero()
}

// Equals determines whether two divisors have identical Mumford
// representations.  Since representations are canonical, this coincides with
// equality in the Jacobian.
func (d Divisor) Equals(o Divisor) bool {
	return d.u.Equals(o.u) && d.v.Equals(o.v)
}

// Coords returns the four field elements (u1, u0, v1, v0) of the Mumford
// pair, zero padding coefficients which do not exist because deg(u) < 2 or v
// has low degree.
func (d Divisor) Coords() (u1, u0, v1, v0 field.Element) {
	return d.u.Coefficient(1), d.u.Coefficient(0), d.v.Coefficient(1), d.v.Coefficient(0)
}

// Bytes returns the canonical serialisation of this divisor: the big-endian
// encodings of u1, u0, v1, v0 in that order, each zero padded to the byte
// length of the field modulus.  This exact layout feeds the nonce extraction
// hash, so order and padding are load bearing for cross-platform determinism.
func (d Divisor) Bytes() []byte {
	var (
		u1, u0, v1, v0 = d.Coords()
		bytes          = make([]byte, 0, 4*d.curve.fld.ByteLen())
	)
	//
	bytes = append(bytes, u1.Bytes()...)
	bytes = append(bytes, u0.Bytes()...)
	bytes = append(bytes, v1.Bytes()...)
	bytes = append(bytes, v0.Bytes()...)
	//
	return bytes
}

// Validate re-checks the four Mumford invariants against the curve, reporting
// the first violated one.  Group law outputs are validated defensively; a
// failure there indicates an implementation defect rather than a legitimate
// input condition.
func (d Divisor) Validate() error {
	if d.u.IsZero() || !d.u.LeadingCoefficient().IsOne() {
		return errors.Errorf("hecc: u = %s is not monic", d.u)
	}
	//
	if d.u.Degree() > Genus {
		return errors.Errorf("hecc: deg(u) = %d exceeds genus %d", d.u.Degree(), Genus)
	}
	//
	if d.v.Degree() >= d.u.Degree() {
		return errors.Errorf("hecc: deg(v) = %d not below deg(u) = %d", d.v.Degree(), d.u.Degree())
	}
	// v² - f ≡ 0 (mod u)
	_, rem, err := poly.DivMod(d.v.Mul(d.v).Sub(d.curve.f), d.u)
	//
	if err != nil {
		return err
	} else if !rem.IsZero() {
		return errors.Errorf("hecc: v² ≢ f (mod u) for u = %s, v = %s", d.u, d.v)
	}
	//
	return nil
}

func (d Divisor) String() string {
	return fmt.Sprintf("(u: %s, v: %s)", d.u, d.v)
}
