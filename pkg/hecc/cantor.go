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

	"github.com/pkg/errors"

	"github.com/consensys/go-cantor/pkg/util/poly"
)

// ErrGroupLawInvariant signals that a divisor produced by composition or
// reduction failed the Mumford invariants.  This is a fatal implementation
// defect, never an input condition: once the curve itself validated, every
// group law output must validate.  It must never be swallowed, since it means
// the masking security argument no longer holds.
var ErrGroupLawInvariant = errors.New("hecc: group law invariant violation")

// GroupLaw implements Cantor's composition and reduction algorithm on the
// Jacobian of a fixed genus-2 curve.  It holds no mutable state beyond the
// (read-only) curve reference, so all operations are pure and a single value
// can serve concurrent callers.
type GroupLaw struct {
	curve *Curve
}

// NewGroupLaw constructs the group law for a given curve.
func NewGroupLaw(curve *Curve) GroupLaw {
	return GroupLaw{curve: curve}
}

// Curve returns the curve this group law operates on.
func (g GroupLaw) Curve() *Curve {
	return g.curve
}

// Add computes the Jacobian sum of two reduced divisors via Cantor
// composition followed by reduction.  Equal inputs are dispatched explicitly
// to Double: the generic composition is singular at D1 = D2 (the second gcd
// step would have to invert zero), so doubling is a distinct formula rather
// than a special case handled here by accident.
func (g GroupLaw) Add(d1, d2 Divisor) (Divisor, error) {
	switch {
	case d1.IsIdentity():
		return d2, nil
	case d2.IsIdentity():
		return d1, nil
	case d1.Equals(d2):
		return g.Double(d1)
	}
	// Step 1: d = gcd(u1, u2), with e1·u1 + e2·u2 = d.
	d, e1, e2, err := poly.XGCD(d1.u, d2.u)
	if err != nil {
		return Divisor{}, err
	}
	// Step 2: absorb v1+v2 into the gcd, with c1·d + c2·(v1+v2) = dd.
	dd, c1, c2, err := poly.XGCD(d, d1.v.Add(d2.v))
	if err != nil {
		return Divisor{}, err
	}
	// Step 3a: u' = u1·u2 / dd².
	u, rem, err := poly.DivMod(d1.u.Mul(d2.u), dd.Mul(dd))
	//
	if err != nil {
		return Divisor{}, err
	} else if !rem.IsZero() {
		return Divisor{}, errors.Wrap(ErrGroupLawInvariant, "add: dd² does not divide u1·u2")
	}
	// Step 3b: v' = (c1·e1·u1·v2 + c1·e2·u2·v1 + c2·(v1·v2 + f)) / dd mod u'.
	var (
		s1 = c1.Mul(e1)
		s2 = c1.Mul(e2)
		t1 = s1.Mul(d1.u).Mul(d2.v)
		t2 = s2.Mul(d2.u).Mul(d1.v)
		t3 = c2.Mul(d1.v.Mul(d2.v).Add(g.curve.f))
	)
	//
	v, rem, err := poly.DivMod(t1.Add(t2).Add(t3), dd)
	//
	if err != nil {
		return Divisor{}, err
	} else if !rem.IsZero() {
		return Divisor{}, errors.Wrap(ErrGroupLawInvariant, "add: dd does not divide composition numerator")
	}
	//
	if _, v, err = poly.DivMod(v, u); err != nil {
		return Divisor{}, err
	}
	// Steps 4-5: reduce and normalise.
	return g.finalise("add", u, v)
}

// Double computes the Jacobian sum D + D via the derivative-based doubling
// formula.  Since gcd(u, u) = u, the generic composition collapses here;
// instead the gcd step runs against 2v, giving d = gcd(u, 2v) with
// c1·u + c2·2v = d, then u' = (u/d)² and v' = (c1·u·v + c2·(v² + f)) / d
// mod u', followed by the shared reduction machinery.
func (g GroupLaw) Double(d1 Divisor) (Divisor, error) {
	if d1.IsIdentity() {
		return d1, nil
	}
	//
	twoV := d1.v.Scale(g.curve.fld.FromUint64(2))
	//
	d, c1, c2, err := poly.XGCD(d1.u, twoV)
	if err != nil {
		return Divisor{}, err
	}
	// u' = (u/d)²
	uq, rem, err := poly.DivMod(d1.u, d)
	//
	if err != nil {
		return Divisor{}, err
	} else if !rem.IsZero() {
		return Divisor{}, errors.Wrap(ErrGroupLawInvariant, "double: gcd does not divide u")
	}
	//
	u := uq.Mul(uq)
	// v' = (c1·u·v + c2·(v² + f)) / d mod u'
	num := c1.Mul(d1.u).Mul(d1.v).Add(c2.Mul(d1.v.Mul(d1.v).Add(g.curve.f)))
	//
	v, rem, err := poly.DivMod(num, d)
	//
	if err != nil {
		return Divisor{}, err
	} else if !rem.IsZero() {
		return Divisor{}, errors.Wrap(ErrGroupLawInvariant, "double: gcd does not divide doubling numerator")
	}
	//
	if _, v, err = poly.DivMod(v, u); err != nil {
		return Divisor{}, err
	}
	//
	return g.finalise("double", u, v)
}

// ScalarMul computes [s]D by binary double-and-add over the bits of s, most
// significant first, starting from the identity accumulator.  ScalarMul(0, D)
// is the identity.  The bit pattern of s is data dependent; constant-time
// execution is an explicit non-goal of this layer, and hardware ports must
// substitute a fixed-pattern ladder.
func (g GroupLaw) ScalarMul(s *big.Int, d Divisor) (Divisor, error) {
	if s.Sign() < 0 {
		return Divisor{}, errors.Errorf("hecc: negative scalar %s", s)
	}
	//
	var (
		acc = Identity(g.curve)
		err error
	)
	//
	for i := s.BitLen() - 1; i >= 0; i-- {
		if acc, err = g.Double(acc); err != nil {
			return Divisor{}, err
		}
		//
		if s.Bit(i) == 1 {
			if acc, err = g.Add(acc, d); err != nil {
				return Divisor{}, err
			}
		}
	}
	//
	return acc, nil
}

// finalise applies Cantor reduction until deg(u) falls to the genus, then
// normalises u to monic form and reduces v modulo u, validating the result
// defensively.
func (g GroupLaw) finalise(op string, u, v poly.Polynomial) (Divisor, error) {
	f := g.curve.f
	//
	for u.Degree() > Genus {
		// u ← (f - v²)/u, exact by the algebra.
		uNext, rem, err := poly.DivMod(f.Sub(v.Mul(v)), u)
		//
		if err != nil {
			return Divisor{}, err
		} else if !rem.IsZero() {
			return Divisor{}, errors.Wrapf(ErrGroupLawInvariant, "%s: inexact reduction step", op)
		}
		// v ← (-v) mod u
		if _, v, err = poly.DivMod(v.Neg(), uNext); err != nil {
			return Divisor{}, err
		}
		//
		u = uNext
	}
	//
	u, err := u.Monic()
	if err != nil {
		return Divisor{}, err
	}
	//
	if _, v, err = poly.DivMod(v, u); err != nil {
		return Divisor{}, err
	}
	//
	out := Divisor{curve: g.curve, u: u, v: v}
	//
	if err := out.Validate(); err != nil {
		return Divisor{}, errors.Wrapf(ErrGroupLawInvariant, "%s: %s", op, err)
	}
	//
	return out, nil
}
