// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package sr25519 wraps the schnorrkel sr25519 implementation with the
// substrate signing context.
package sr25519

import (
	"errors"
	"fmt"

	sr25519 "github.com/ChainSafe/go-schnorrkel"
)

const (
	// PublicKeyLength is the expected public key length for sr25519.
	PublicKeyLength = 32
	// SeedLength is the expected seed length for sr25519.
	SeedLength = 32
	// SignatureLength is the expected signature length for sr25519.
	SignatureLength = 64
)

// SigningContext is the context for signatures used or created with substrate
var SigningContext = []byte("substrate")

var (
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")
	ErrInvalidSignatureLength = errors.New("invalid signature length")
)

// PublicKey holds reference to a sr25519.PublicKey
type PublicKey struct {
	key *sr25519.PublicKey
}

// PrivateKey holds reference to a sr25519.SecretKey
type PrivateKey struct {
	key *sr25519.SecretKey
}

// Keypair is a sr25519 public-private keypair
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// NewKeypairFromSeed returns a new Keypair given a seed
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("seed length %d is not %d", len(seed), SeedLength)
	}
	var buf [32]byte
	copy(buf[:], seed)
	msc, err := sr25519.NewMiniSecretKeyFromRaw(buf)
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  &PublicKey{key: msc.Public()},
		private: &PrivateKey{key: msc.ExpandEd25519()},
	}, nil
}

// Sign uses the keypair to sign the message using the sr25519 signature algorithm
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	t := sr25519.NewSigningContext(SigningContext, msg)
	sig, err := kp.private.key.Sign(t)
	if err != nil {
		return nil, err
	}
	enc := sig.Encode()
	return enc[:], nil
}

// Public returns the public key corresponding to this keypair
func (kp *Keypair) Public() *PublicKey {
	return kp.public
}

// NewPublicKey creates a new public key from input bytes
func NewPublicKey(in []byte) (*PublicKey, error) {
	if len(in) != PublicKeyLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPublicKeyLength, len(in))
	}

	var buf [32]byte
	copy(buf[:], in)
	pub := &sr25519.PublicKey{}
	err := pub.Decode(buf)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: pub}, nil
}

// Verify verifies that the public key signed the given message.
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, fmt.Errorf("%w: %d", ErrInvalidSignatureLength, len(sig))
	}

	var b [64]byte
	copy(b[:], sig)

	s := &sr25519.Signature{}
	err := s.Decode(b)
	if err != nil {
		return false, err
	}

	t := sr25519.NewSigningContext(SigningContext, msg)
	return k.key.Verify(s, t)
}

// Encode returns the SCALE encoding of the public key.
func (k *PublicKey) Encode() []byte {
	enc := k.key.Encode()
	return enc[:]
}

// VerifySignature verifies a signature given a public key and a message.
// It has the crypto.SigVerifyFunc signature.
func VerifySignature(publicKey, signature, message []byte) (bool, error) {
	pubKey, err := NewPublicKey(publicKey)
	if err != nil {
		return false, err
	}
	return pubKey.Verify(message, signature)
}
