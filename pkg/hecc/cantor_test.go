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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/go-cantor/pkg/util/poly"
)

func Test_Cantor_01_IdentityShortcuts(t *testing.T) {
	var (
		params = Production()
		law    = params.Law
		id     = Identity(params.Curve)
	)
	//
	sum, err := law.Add(id, params.Base)
	require.NoError(t, err)
	require.True(t, sum.Equals(params.Base))
	//
	sum, err = law.Add(params.Base, id)
	require.NoError(t, err)
	require.True(t, sum.Equals(params.Base))
	//
	dbl, err := law.Double(id)
	require.NoError(t, err)
	require.True(t, dbl.IsIdentity())
	//
	sum, err = law.Add(id, id)
	require.NoError(t, err)
	require.True(t, sum.IsIdentity())
}

// Every output of Add and Double over randomised divisors must satisfy all
// four Mumford invariants.  This mirrors the randomised algebraic
// verification the scheme was validated with, hence the trial count.
func Test_Cantor_02_MumfordValidity(t *testing.T) {
	var (
		params = Production()
		law    = params.Law
		rng    = rand.New(rand.NewPCG(2, 0))
	)
	//
	for i := 0; i < 1000; i++ {
		d1, err := RandomReducedDivisor(law, rng)
		require.NoError(t, err)
		//
		d2, err := RandomDivisor(params.Curve, rng)
		require.NoError(t, err)
		//
		sum, err := law.Add(d1, d2)
		require.NoError(t, err)
		require.NoError(t, sum.Validate())
		//
		dbl, err := law.Double(d1)
		require.NoError(t, err)
		require.NoError(t, dbl.Validate())
	}
}

func Test_Cantor_03_Commutativity(t *testing.T) {
	var (
		params = Production()
		law    = params.Law
		rng    = rand.New(rand.NewPCG(3, 0))
	)
	//
	for i := 0; i < 50; i++ {
		d1, err := RandomReducedDivisor(law, rng)
		require.NoError(t, err)
		//
		d2, err := RandomReducedDivisor(law, rng)
		require.NoError(t, err)
		//
		ab, err := law.Add(d1, d2)
		require.NoError(t, err)
		//
		ba, err := law.Add(d2, d1)
		require.NoError(t, err)
		require.True(t, ab.Equals(ba))
	}
}

func Test_Cantor_04_Associativity(t *testing.T) {
	var (
		params = Production()
		law    = params.Law
		rng    = rand.New(rand.NewPCG(4, 0))
	)
	//
	for i := 0; i < 20; i++ {
		d1, err := RandomDivisor(params.Curve, rng)
		require.NoError(t, err)
		//
		d2, err := RandomDivisor(params.Curve, rng)
		require.NoError(t, err)
		//
		d3, err := RandomReducedDivisor(law, rng)
		require.NoError(t, err)
		// (d1 + d2) + d3
		lhs, err := law.Add(d1, d2)
		require.NoError(t, err)
		lhs, err = law.Add(lhs, d3)
		require.NoError(t, err)
		// d1 + (d2 + d3)
		rhs, err := law.Add(d2, d3)
		require.NoError(t, err)
		rhs, err = law.Add(d1, rhs)
		require.NoError(t, err)
		//
		require.True(t, lhs.Equals(rhs))
	}
}

// Doubling is computed by a distinct formula, yet must agree with the
// group-theoretic sum D + D.  Checked via the resulting Mumford coordinates
// of [2]D + D against [3]D, never by literally reusing Add(D, D).
func Test_Cantor_05_DoublingConsistency(t *testing.T) {
	var (
		params = Production()
		law    = params.Law
		rng    = rand.New(rand.NewPCG(5, 0))
	)
	//
	for i := 0; i < 50; i++ {
		d, err := RandomReducedDivisor(law, rng)
		require.NoError(t, err)
		//
		twoD, err := law.Double(d)
		require.NoError(t, err)
		//
		threeD, err := law.Add(twoD, d)
		require.NoError(t, err)
		//
		expected, err := law.ScalarMul(big.NewInt(3), d)
		require.NoError(t, err)
		require.True(t, threeD.Equals(expected))
	}
}

func Test_Cantor_06_ScalarIdentities(t *testing.T) {
	var (
		params = Production()
		law    = params.Law
		rng    = rand.New(rand.NewPCG(6, 0))
	)
	//
	for i := 0; i < 20; i++ {
		d, err := RandomReducedDivisor(law, rng)
		require.NoError(t, err)
		// [0]D = identity
		zero, err := law.ScalarMul(big.NewInt(0), d)
		require.NoError(t, err)
		require.True(t, zero.IsIdentity())
		// [1]D = D
		one, err := law.ScalarMul(big.NewInt(1), d)
		require.NoError(t, err)
		require.True(t, one.Equals(d))
		// [3]D + [5]D = [8]D
		three, err := law.ScalarMul(big.NewInt(3), d)
		require.NoError(t, err)
		//
		five, err := law.ScalarMul(big.NewInt(5), d)
		require.NoError(t, err)
		//
		lhs, err := law.Add(three, five)
		require.NoError(t, err)
		//
		rhs, err := law.ScalarMul(big.NewInt(8), d)
		require.NoError(t, err)
		require.True(t, lhs.Equals(rhs))
	}
}

func Test_Cantor_07_NegativeScalar(t *testing.T) {
	params := Production()
	//
	_, err := params.Law.ScalarMul(big.NewInt(-1), params.Base)
	require.Error(t, err)
}

func Test_Cantor_08_OppositePoints(t *testing.T) {
	var (
		params = Production()
		fld    = params.Field
		law    = params.Law
	)
	// (0, 1) + (0, -1) cancels to the identity.
	d1, err := NewDivisorFromPoint(params.Curve, fld.Zero(), fld.One())
	require.NoError(t, err)
	//
	d2, err := NewDivisorFromPoint(params.Curve, fld.Zero(), fld.One().Neg())
	require.NoError(t, err)
	//
	sum, err := law.Add(d1, d2)
	require.NoError(t, err)
	require.True(t, sum.IsIdentity())
}

func Test_Cantor_09_FullWidthScalar(t *testing.T) {
	params := Production()
	// A full 254-bit scalar multiplication terminates and yields a valid
	// reduced divisor.
	s := new(big.Int).Lsh(big.NewInt(1), 253)
	s.Add(s, big.NewInt(12345))
	//
	d, err := params.Law.ScalarMul(s, params.Base)
	require.NoError(t, err)
	require.NoError(t, d.Validate())
	require.False(t, d.IsIdentity())
}

// The group law is parametric in the modulus, so it must behave identically
// over a small prime, where trials are cheap enough to run in bulk.
func Test_Cantor_10_SmallPrimeField(t *testing.T) {
	var (
		fld = gf(t, (1<<61)-1)
		rng = rand.New(rand.NewPCG(10, 0))
	)
	//
	curve, err := NewCurve(fld, poly.NewFromUint64(fld, 1, 2, 7, 14, 3, 1))
	require.NoError(t, err)
	//
	law := NewGroupLaw(curve)
	//
	for i := 0; i < 200; i++ {
		d1, err := RandomReducedDivisor(law, rng)
		require.NoError(t, err)
		//
		d2, err := RandomDivisor(curve, rng)
		require.NoError(t, err)
		//
		sum, err := law.Add(d1, d2)
		require.NoError(t, err)
		require.NoError(t, sum.Validate())
		// [3]D + [5]D = [8]D
		three, err := law.ScalarMul(big.NewInt(3), d1)
		require.NoError(t, err)
		//
		five, err := law.ScalarMul(big.NewInt(5), d1)
		require.NoError(t, err)
		//
		lhs, err := law.Add(three, five)
		require.NoError(t, err)
		//
		rhs, err := law.ScalarMul(big.NewInt(8), d1)
		require.NoError(t, err)
		require.True(t, lhs.Equals(rhs))
	}
}
