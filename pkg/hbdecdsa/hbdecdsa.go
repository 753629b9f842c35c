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

// Package hbdecdsa implements the hybrid deterministic ECDSA scheme: a
// standard secp256k1 signer whose nonce comes from the hyperelliptic Jacobian
// masking layer rather than from RFC 6979 or a CSPRNG.  Signatures verify
// under ordinary ECDSA rules; only the nonce provenance differs.  The
// Weierstrass arithmetic itself is gnark-crypto's, not reimplemented here.
package hbdecdsa

import (
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/secp256k1"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fr"
	"github.com/pkg/errors"

	"github.com/consensys/go-cantor/pkg/hecc"
	"github.com/consensys/go-cantor/pkg/nonce"
)

// scalarBytes is the encoded width of a secp256k1 scalar.
const scalarBytes = 32

// Signature is a standard ECDSA signature pair, each component in [1, n).
type Signature struct {
	R, S *big.Int
}

// VerifyingKey is a secp256k1 public key accepting HB-DECDSA (and hence any
// standard ECDSA) signatures.
type VerifyingKey struct {
	point secp256k1.G1Affine
}

// SigningKey couples a secp256k1 private scalar with the HECC parameters used
// to mask its nonces.
type SigningKey struct {
	d      *big.Int
	pub    VerifyingKey
	params hecc.Parameters
}

// Order returns (a copy of) the secp256k1 group order n.
func Order() *big.Int {
	return fr.Modulus()
}

// GenerateKey draws a fresh signing key from a given entropy source, which is
// passed explicitly rather than taken from process-wide state.
func GenerateKey(rng io.Reader) (*SigningKey, error) {
	nMinus1 := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	//
	d, err := randInt(rng, nMinus1)
	if err != nil {
		return nil, errors.Wrap(err, "hbdecdsa: keygen")
	}
	//
	return NewSigningKey(d.Add(d, big.NewInt(1)))
}

// NewSigningKey constructs a signing key for a given private scalar in
// [1, n), deriving its public point and binding the production HECC
// parameters.
func NewSigningKey(d *big.Int) (*SigningKey, error) {
	if d.Sign() <= 0 || d.Cmp(fr.Modulus()) >= 0 {
		return nil, errors.New("hbdecdsa: private scalar out of range")
	}
	//
	var pub VerifyingKey
	//
	pub.point.ScalarMultiplicationBase(d)
	//
	return &SigningKey{d: new(big.Int).Set(d), pub: pub, params: hecc.Production()}, nil
}

// Public returns the verifying key of this signing key.
func (sk *SigningKey) Public() VerifyingKey {
	return sk.pub
}

// Bytes returns the 32-byte big-endian encoding of the private scalar.  This
// exact encoding seeds the nonce derivation, so it must stay stable.
func (sk *SigningKey) Bytes() []byte {
	return sk.d.FillBytes(make([]byte, scalarBytes))
}

// Sign produces a deterministic HB-DECDSA signature over a message, hashing
// it with SHA-256 and deriving the nonce through the Jacobian masking
// pipeline.  Identical messages yield identical signatures.
func (sk *SigningKey) Sign(message []byte) (Signature, error) {
	n := fr.Modulus()
	//
	digest := sha256.Sum256(message)
	e := new(big.Int).SetBytes(digest[:])
	e.Mod(e, n)
	//
	k, err := nonce.Derive(sk.Bytes(), message, sk.params.Law, sk.params.Base, n)
	if err != nil {
		return Signature{}, errors.Wrap(err, "hbdecdsa: nonce derivation")
	}
	// R = [k]G
	var R secp256k1.G1Affine
	//
	R.ScalarMultiplicationBase(k)
	//
	r := R.X.BigInt(new(big.Int))
	r.Mod(r, n)
	//
	if r.Sign() == 0 {
		return Signature{}, errors.New("hbdecdsa: r = 0")
	}
	// s = k⁻¹(e + d·r) mod n
	var kE, eE, dE, rE, sE fr.Element
	//
	kE.SetBigInt(k)
	eE.SetBigInt(e)
	dE.SetBigInt(sk.d)
	rE.SetBigInt(r)
	//
	sE.Mul(&dE, &rE)
	sE.Add(&sE, &eE)
	kE.Inverse(&kE)
	sE.Mul(&sE, &kE)
	//
	if sE.IsZero() {
		return Signature{}, errors.New("hbdecdsa: s = 0")
	}
	//
	return Signature{R: r, S: sE.BigInt(new(big.Int))}, nil
}

// Verify checks a signature over a message under standard ECDSA rules.
func (vk VerifyingKey) Verify(message []byte, sig Signature) bool {
	n := fr.Modulus()
	//
	if sig.R == nil || sig.S == nil {
		return false
	}
	//
	if sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 || sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return false
	}
	//
	digest := sha256.Sum256(message)
	e := new(big.Int).SetBytes(digest[:])
	e.Mod(e, n)
	// u1 = e/s, u2 = r/s
	var eE, rE, wE, u1E, u2E fr.Element
	//
	eE.SetBigInt(e)
	rE.SetBigInt(sig.R)
	wE.SetBigInt(sig.S)
	wE.Inverse(&wE)
	//
	u1E.Mul(&eE, &wE)
	u2E.Mul(&rE, &wE)
	// P = [u1]G + [u2]Q
	var (
		p1, p2, sum secp256k1.G1Affine
		j1, j2      secp256k1.G1Jac
	)
	//
	p1.ScalarMultiplicationBase(u1E.BigInt(new(big.Int)))
	p2.ScalarMultiplication(&vk.point, u2E.BigInt(new(big.Int)))
	//
	j1.FromAffine(&p1)
	j2.FromAffine(&p2)
	j1.AddAssign(&j2)
	sum.FromJacobian(&j1)
	//
	if sum.IsInfinity() {
		return false
	}
	//
	x := sum.X.BigInt(new(big.Int))
	x.Mod(x, n)
	//
	return x.Cmp(sig.R) == 0
}

// Bytes returns the SEC1 uncompressed encoding 0x04 ‖ X ‖ Y of the public
// point.
func (vk VerifyingKey) Bytes() []byte {
	var (
		x     = vk.point.X.BigInt(new(big.Int))
		y     = vk.point.Y.BigInt(new(big.Int))
		bytes = make([]byte, 1, 1+2*scalarBytes)
	)
	//
	bytes[0] = 0x04
	bytes = append(bytes, x.FillBytes(make([]byte, scalarBytes))...)
	bytes = append(bytes, y.FillBytes(make([]byte, scalarBytes))...)
	//
	return bytes
}

// VerifyingKeyFromBytes parses a SEC1 uncompressed public key, rejecting
// points which do not lie on secp256k1.
func VerifyingKeyFromBytes(bytes []byte) (VerifyingKey, error) {
	if len(bytes) != 1+2*scalarBytes || bytes[0] != 0x04 {
		return VerifyingKey{}, errors.New("hbdecdsa: malformed public key encoding")
	}
	//
	var (
		vk VerifyingKey
		x  = new(big.Int).SetBytes(bytes[1 : 1+scalarBytes])
		y  = new(big.Int).SetBytes(bytes[1+scalarBytes:])
	)
	//
	if x.Cmp(fp.Modulus()) >= 0 || y.Cmp(fp.Modulus()) >= 0 {
		return VerifyingKey{}, errors.New("hbdecdsa: coordinate out of range")
	}
	//
	vk.point.X.SetBigInt(x)
	vk.point.Y.SetBigInt(y)
	//
	if !vk.point.IsOnCurve() {
		return VerifyingKey{}, errors.New("hbdecdsa: public key not on curve")
	}
	//
	return vk, nil
}

// randInt draws a uniform integer in [0, max) from a given reader, by
// rejection sampling over the minimal bit width.
func randInt(rng io.Reader, max *big.Int) (*big.Int, error) {
	var (
		bitLen  = max.BitLen()
		byteLen = (bitLen + 7) / 8
		buf     = make([]byte, byteLen)
		val     = new(big.Int)
	)
	//
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		// Mask superfluous high bits to keep the rejection rate below one
		// half.
		buf[0] &= byte(0xff >> (uint(8*byteLen-bitLen) % 8))
		//
		if val.SetBytes(buf); val.Cmp(max) < 0 {
			return val, nil
		}
	}
}
