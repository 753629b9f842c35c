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
	"github.com/pkg/errors"

	"github.com/consensys/go-cantor/pkg/util/field"
	"github.com/consensys/go-cantor/pkg/util/poly"
)

// Genus of every curve handled by this package.  Cantor's algorithm below is
// specialised to genus 2 (i.e. defining polynomials of degree 5).
const Genus = 2

// ErrInvalidCurve signals a defining polynomial which does not describe a
// valid genus-2 hyperelliptic curve, either because its degree is wrong or
// because it is not squarefree (and hence the curve is singular).
var ErrInvalidCurve = errors.New("hecc: invalid curve polynomial")

// Curve is an imaginary hyperelliptic curve y² = f(x) of genus 2 over a prime
// field, where deg(f) = 2g+1 = 5.  A Curve is immutable after construction and
// is shared (read only) by every divisor and group law derived from it.
type Curve struct {
	fld *field.Field
	f   poly.Polynomial
}

// NewCurve constructs a curve for a given degree-5 defining polynomial,
// enforcing the genus-2 preconditions: deg(f) = 5 and gcd(f, f') = 1 (i.e. f
// is squarefree, so the curve is non-singular).  Polynomials failing either
// check are rejected with ErrInvalidCurve and never reach the group law.
func NewCurve(fld *field.Field, f poly.Polynomial) (*Curve, error) {
	if f.Degree() != 2*Genus+1 {
		return nil, errors.Wrapf(ErrInvalidCurve, "degree %d, expected %d", f.Degree(), 2*Genus+1)
	}
	//
	g, err := poly.GCD(f, f.Derivative())
	if err != nil {
		return nil, err
	}
	//
	if !g.IsOne() {
		return nil, errors.Wrapf(ErrInvalidCurve, "not squarefree (gcd(f,f') = %s)", g)
	}
	//
	return &Curve{fld: fld, f: f}, nil
}

// F returns the defining polynomial of this curve.
func (c *Curve) F() poly.Polynomial {
	return c.f
}

// Field returns the prime field this curve is defined over.
func (c *Curve) Field() *field.Field {
	return c.fld
}

// Genus returns the (fixed) genus of this curve.
func (c *Curve) Genus() uint {
	return Genus
}

func (c *Curve) String() string {
	return "y^2 = " + c.f.String()
}
