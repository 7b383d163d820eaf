// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// hkdfInfo domain-separates the sealing key from any other key that might
// be derived from the same secret in the future.
const hkdfInfo = "daybook/refresh-token-seal/v1"

// sealer is the private implementation of [Sealer].
type sealer struct {
	key []byte // 32 bytes, derived once in NewSealer
}

// NewSealer derives a 256-bit sealing key from sealKey using HKDF-SHA256
// and returns a [Sealer] backed by ChaCha20-Poly1305. The same sealKey
// always yields the same sealing key, so blobs survive restarts.
//
// Returns an error if sealKey is empty or key derivation fails.
func NewSealer(sealKey string) (Sealer, error) {
	if sealKey == "" {
		return nil, errors.New("empty seal key")
	}

	kdf := hkdf.New(sha256.New, []byte(sealKey), nil, []byte(hkdfInfo))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive sealing key: %w", err)
	}

	return &sealer{key: key}, nil
}

// Seal implements [Sealer]. A random 24-byte nonce is prepended to the
// ciphertext so Open can locate it: blob = nonce ‖ ciphertext.
func (s *sealer) Seal(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", fmt.Errorf("create aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open implements [Sealer]. It reverses Seal; authentication failure means
// the seal key changed or the blob was tampered with.
func (s *sealer) Open(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("decode sealed blob: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", fmt.Errorf("create aead: %w", err)
	}

	if len(raw) < aead.NonceSize() {
		return "", errors.New("sealed blob too short")
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("open sealed blob: %w", err)
	}

	return string(plaintext), nil
}
