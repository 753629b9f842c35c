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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/go-cantor/pkg/util/field"
	"github.com/consensys/go-cantor/pkg/util/poly"
)

func gf(t *testing.T, p int64) *field.Field {
	fld, err := field.NewField(big.NewInt(p))
	require.NoError(t, err)
	//
	return fld
}

func Test_Curve_01_Production(t *testing.T) {
	params := Production()
	//
	require.Equal(t, uint(2), params.Curve.Genus())
	require.Equal(t, 5, params.Curve.F().Degree())
	require.Equal(t, 32, params.Field.ByteLen())
	// p = 2^254 - 245.  The modulus must actually be prime: a composite
	// slipping in here breaks Fermat inversion, and with it every polynomial
	// division the group law performs.
	p := new(big.Int).Lsh(big.NewInt(1), 254)
	p.Sub(p, big.NewInt(245))
	require.Equal(t, 0, params.Field.Modulus().Cmp(p))
	require.True(t, params.Field.Modulus().ProbablyPrime(64))
	// Base divisor (u = x, v = 1) satisfies the invariants.
	require.NoError(t, params.Base.Validate())
}

func Test_Curve_02_DegreeRejected(t *testing.T) {
	fld := gf(t, 7)
	// Degree 4 is not a genus-2 defining polynomial.
	_, err := NewCurve(fld, poly.NewFromUint64(fld, 1, 0, 0, 0, 1))
	require.ErrorIs(t, err, ErrInvalidCurve)
	// Nor is degree 6 in this (imaginary model) package.
	_, err = NewCurve(fld, poly.NewFromUint64(fld, 1, 0, 0, 0, 0, 0, 1))
	require.ErrorIs(t, err, ErrInvalidCurve)
}

func Test_Curve_03_SingularRejected(t *testing.T) {
	// Over GF(5), x⁵ + 1 = (x + 1)⁵ has a quintuple root, so the squarefree
	// check must reject it rather than silently proceed.
	fld := gf(t, 5)
	//
	_, err := NewCurve(fld, poly.NewFromUint64(fld, 1, 0, 0, 0, 0, 1))
	require.ErrorIs(t, err, ErrInvalidCurve)
	// The same polynomial is squarefree over GF(7), where it is accepted.
	fld7 := gf(t, 7)
	//
	curve, err := NewCurve(fld7, poly.NewFromUint64(fld7, 1, 0, 0, 0, 0, 1))
	require.NoError(t, err)
	require.Equal(t, "y^2 = x^5 + 1", curve.String())
}

func Test_Curve_04_RepeatedRootRejected(t *testing.T) {
	fld := gf(t, 7)
	// (x + 1)²·(x³ + 2) has a repeated root over any field.
	sq := poly.NewFromUint64(fld, 1, 1)
	f := sq.Mul(sq).Mul(poly.NewFromUint64(fld, 2, 0, 0, 1))
	//
	_, err := NewCurve(fld, f)
	require.ErrorIs(t, err, ErrInvalidCurve)
}
