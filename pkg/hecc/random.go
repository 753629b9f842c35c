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
	"math/rand/v2"

	"github.com/consensys/go-cantor/pkg/util/field"
)

// RandomDivisor samples a degree-one divisor (u = x - x0, v = y0) by drawing
// x0 until f(x0) is a quadratic residue.  The generator is passed explicitly
// so callers (tests, self checks) control determinism; this function is for
// validation only and makes no uniformity claim over the Jacobian.
func RandomDivisor(curve *Curve, rng *rand.Rand) (Divisor, error) {
	for {
		x0 := randomElement(curve.fld, rng)
		//
		y0, ok := curve.f.Eval(x0).Sqrt()
		if !ok {
			continue
		}
		//
		return NewDivisorFromPoint(curve, x0, y0)
	}
}

// RandomReducedDivisor samples a weight-two divisor by composing two distinct
// random degree-one divisors under a given group law.
func RandomReducedDivisor(law GroupLaw, rng *rand.Rand) (Divisor, error) {
	d1, err := RandomDivisor(law.curve, rng)
	if err != nil {
		return Divisor{}, err
	}
	//
	for {
		d2, err := RandomDivisor(law.curve, rng)
		//
		if err != nil {
			return Divisor{}, err
		} else if d1.Equals(d2) {
			continue
		}
		//
		return law.Add(d1, d2)
	}
}

// randomElement draws a field element by reducing ByteLen random bytes, which
// is close enough to uniform for validation purposes.
func randomElement(fld *field.Field, rng *rand.Rand) field.Element {
	bytes := make([]byte, fld.ByteLen())
	//
	for i := range bytes {
		bytes[i] = byte(rng.UintN(256))
	}
	//
	return fld.FromBytes(bytes)
}
