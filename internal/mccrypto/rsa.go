package mccrypto

// RSA handshake primitives, adapted from the teacher's crypto/rsa_keys.go
// and crypto/encryption.go for a server (rather than client) role: the
// gateway generates its own keypair instead of parsing one handed to it,
// and decrypts the client's response instead of encrypting a request.

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"fmt"
)

// KeySize is the RSA modulus size the Java Edition login handshake uses.
// 1024 bits is undersized by modern standards, but it is what the wire
// protocol specifies and clients do not accept larger keys.
const KeySize = 1024

// KeyPair holds an RSA keypair and its DER-encoded SubjectPublicKeyInfo,
// which is sent to clients verbatim in the ServerHello packet.
type KeyPair struct {
	Private   *rsa.PrivateKey
	PublicDER []byte
}

// GenerateKeyPair creates a fresh 1024-bit RSA keypair. The login
// dispatcher calls it once per connection; keys are never persisted.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, KeySize)
	if err != nil {
		return nil, fmt.Errorf("mccrypto: generate rsa key: %w", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("mccrypto: marshal public key: %w", err)
	}
	return &KeyPair{Private: priv, PublicDER: der}, nil
}

// Decrypt undoes the client's RSA-PKCS1v15 encryption of the shared secret
// or verify token sent in the Key packet.
func (k *KeyPair) Decrypt(ciphertext []byte) ([]byte, error) {
	plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, k.Private, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("mccrypto: decrypt: %w", err)
	}
	return plaintext, nil
}

// VerifyTokenSize is the verify token length this gateway issues, per
// the login handshake's ServerHello.VerifyToken fixed_array<u8, 32>.
const VerifyTokenSize = 32

// GenerateVerifyToken returns a fresh random verify token sent alongside
// the ServerHello packet and echoed back encrypted by the client,
// proving it holds the private key paired with the public key the
// gateway just sent.
func GenerateVerifyToken() ([]byte, error) {
	token := make([]byte, VerifyTokenSize)
	if _, err := rand.Read(token); err != nil {
		return nil, fmt.Errorf("mccrypto: generate verify token: %w", err)
	}
	return token, nil
}

// VerifyTokenMatches reports whether the client's decrypted verify token
// equals the one the gateway issued, using a constant-time comparison
// since this is a value an attacker could otherwise brute-force byte by
// byte via timing.
func VerifyTokenMatches(issued, received []byte) bool {
	return len(issued) == len(received) && subtle.ConstantTimeCompare(issued, received) == 1
}
