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

// Package nonce derives deterministic ECDSA nonces through an auxiliary
// scalar multiplication on the Jacobian of a genus-2 hyperelliptic curve.
// The point of the detour is side-channel decoupling: the power profile of
// the derivation is a function of Cantor polynomial arithmetic on a blinded
// scalar, not of any linear function of the private key, while the resulting
// signatures remain byte compatible with standard ECDSA verifiers.
package nonce

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"math/big"

	"github.com/pkg/errors"

	"github.com/consensys/go-cantor/pkg/hecc"
)

// Derive computes a deterministic nonce k in [1, order) for a given private
// key and message:
//
//	dk    = SHA-256(privKey)
//	mh    = SHA-256(message)
//	blind = HMAC-SHA256(key = dk, msg = mh)
//	seed  = SHA-512(blind ‖ mh)
//	s     = (BE(seed[0:32]) mod (p-1)) + 1
//	D'    = [s]·base                      (Cantor scalar multiplication)
//	k     = BE(SHA-256(u1 ‖ u0 ‖ v1 ‖ v0)) mod order
//
// The raw private key reaches neither the wide hash nor the Jacobian: only
// its HMAC-blinded derivative does.  That blinding contract is what the
// masking argument rests on, so the step order above is not negotiable.
// The pipeline is fully deterministic: identical inputs yield bit-identical
// nonces across invocations and platforms.
func Derive(privKey, message []byte, law hecc.GroupLaw, base hecc.Divisor, order *big.Int) (*big.Int, error) {
	if order == nil || order.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.New("nonce: invalid ecdsa order")
	}
	// Key blinding: the key is first narrowed by SHA-256, then only its
	// keyed-MAC image proceeds.
	dk := sha256.Sum256(privKey)
	mh := sha256.Sum256(message)
	//
	mac := hmac.New(sha256.New, dk[:])
	mac.Write(mh[:])
	blind := mac.Sum(nil)
	// Deterministic wide seed.
	h := sha512.New()
	h.Write(blind)
	h.Write(mh[:])
	seed := h.Sum(nil)
	// Map the seed into the scalar domain [1, p-1].  The full reduced scalar
	// is used; truncating it to a narrow range would collapse the masking
	// group to a small subset and void the security argument.
	pMinus1 := new(big.Int).Sub(law.Curve().Field().Modulus(), big.NewInt(1))
	s := new(big.Int).SetBytes(seed[:32])
	s.Mod(s, pMinus1).Add(s, big.NewInt(1))
	//
	masked, err := law.ScalarMul(s, base)
	if err != nil {
		return nil, err
	}
	// Extract the nonce from the Mumford coordinates.
	digest := sha256.Sum256(masked.Bytes())
	//
	k := new(big.Int).SetBytes(digest[:])
	k.Mod(k, order)
	// k = 0 cannot seed an ECDSA signature; substitute 1, as vanishingly
	// unlikely as the case is.
	if k.Sign() == 0 {
		k.SetInt64(1)
	}
	//
	return k, nil
}
