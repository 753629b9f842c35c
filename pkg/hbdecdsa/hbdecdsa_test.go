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
package hbdecdsa

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) *SigningKey {
	sk, err := NewSigningKey(big.NewInt(0x1c0ffee))
	require.NoError(t, err)
	//
	return sk
}

func Test_HBDECDSA_01_RoundTrip(t *testing.T) {
	sk := testKey(t)
	msg := []byte("hello")
	//
	sig, err := sk.Sign(msg)
	require.NoError(t, err)
	require.True(t, sk.Public().Verify(msg, sig))
}

func Test_HBDECDSA_02_Determinism(t *testing.T) {
	sk := testKey(t)
	msg := []byte("determinism")
	//
	sig1, err := sk.Sign(msg)
	require.NoError(t, err)
	//
	sig2, err := sk.Sign(msg)
	require.NoError(t, err)
	// Same key, same message: identical signature, no hidden randomness.
	require.Equal(t, 0, sig1.R.Cmp(sig2.R))
	require.Equal(t, 0, sig1.S.Cmp(sig2.S))
}

func Test_HBDECDSA_03_TamperRejected(t *testing.T) {
	sk := testKey(t)
	//
	sig, err := sk.Sign([]byte("authentic"))
	require.NoError(t, err)
	// Tampered message.
	require.False(t, sk.Public().Verify([]byte("forged"), sig))
	// Tampered signature components.
	bad := Signature{R: new(big.Int).Add(sig.R, big.NewInt(1)), S: sig.S}
	require.False(t, sk.Public().Verify([]byte("authentic"), bad))
	//
	bad = Signature{R: sig.R, S: new(big.Int).Add(sig.S, big.NewInt(1))}
	require.False(t, sk.Public().Verify([]byte("authentic"), bad))
	// Degenerate components.
	require.False(t, sk.Public().Verify([]byte("authentic"), Signature{}))
	require.False(t, sk.Public().Verify([]byte("authentic"),
		Signature{R: big.NewInt(0), S: sig.S}))
	require.False(t, sk.Public().Verify([]byte("authentic"),
		Signature{R: Order(), S: sig.S}))
}

func Test_HBDECDSA_04_WrongKeyRejected(t *testing.T) {
	sk1 := testKey(t)
	//
	sk2, err := NewSigningKey(big.NewInt(0xdeadbeef))
	require.NoError(t, err)
	//
	sig, err := sk1.Sign([]byte("message"))
	require.NoError(t, err)
	require.False(t, sk2.Public().Verify([]byte("message"), sig))
}

func Test_HBDECDSA_05_KeyEncoding(t *testing.T) {
	sk, err := GenerateKey(rand.Reader)
	require.NoError(t, err)
	// Private encoding is fixed width.
	require.Len(t, sk.Bytes(), 32)
	// Public round trip through SEC1 uncompressed form.
	encoded := sk.Public().Bytes()
	require.Len(t, encoded, 65)
	require.Equal(t, byte(0x04), encoded[0])
	//
	vk, err := VerifyingKeyFromBytes(encoded)
	require.NoError(t, err)
	//
	sig, err := sk.Sign([]byte("round trip"))
	require.NoError(t, err)
	require.True(t, vk.Verify([]byte("round trip"), sig))
}

func Test_HBDECDSA_06_BadKeysRejected(t *testing.T) {
	_, err := NewSigningKey(big.NewInt(0))
	require.Error(t, err)
	//
	_, err = NewSigningKey(new(big.Int).Neg(big.NewInt(5)))
	require.Error(t, err)
	//
	_, err = NewSigningKey(Order())
	require.Error(t, err)
	// Malformed public encodings.
	_, err = VerifyingKeyFromBytes(nil)
	require.Error(t, err)
	//
	_, err = VerifyingKeyFromBytes(make([]byte, 65))
	require.Error(t, err)
	// Valid length and prefix, but not a curve point.
	junk := make([]byte, 65)
	junk[0] = 0x04
	junk[64] = 0x07
	_, err = VerifyingKeyFromBytes(junk)
	require.Error(t, err)
}

func Test_HBDECDSA_07_DifferentMessagesDifferentNonces(t *testing.T) {
	sk := testKey(t)
	// If two messages ever shared a nonce, r would repeat and the private
	// key would leak; the masking pipeline must keep r distinct.
	sig1, err := sk.Sign([]byte("first"))
	require.NoError(t, err)
	//
	sig2, err := sk.Sign([]byte("second"))
	require.NoError(t, err)
	require.NotEqual(t, 0, sig1.R.Cmp(sig2.R))
}
