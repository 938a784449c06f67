package mccrypto

// Session wraps a negotiated shared secret into the pair of CFB-8 streams
// internal/codec layers around frame bytes, generalized from the teacher's
// crypto.Encryption (there a single struct mixing secret generation, RSA,
// and stream state; here split so the gateway's server role only needs
// the stream half once a secret has arrived over the wire).

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Session holds the two independent CFB-8 streams derived from one shared
// secret: one per direction, since CFB-8's shift register must evolve
// separately for data flowing to and from the peer.
type Session struct {
	encrypt cipher.Stream
	decrypt cipher.Stream
}

// NewSession derives a Session from a 16-byte AES-128 shared secret. The
// shared secret doubles as the CFB-8 initialization vector, per the
// protocol's use of a single quantity for both roles.
func NewSession(sharedSecret []byte) (*Session, error) {
	block, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return nil, fmt.Errorf("mccrypto: new session cipher: %w", err)
	}
	return &Session{
		encrypt: NewEncryptStream(block, sharedSecret),
		decrypt: NewDecryptStream(block, sharedSecret),
	}, nil
}

// EncryptInto CFB-8-encrypts src into dst, which may alias src.
func (s *Session) EncryptInto(dst, src []byte) { s.encrypt.XORKeyStream(dst, src) }

// DecryptInto CFB-8-decrypts src into dst, which may alias src.
func (s *Session) DecryptInto(dst, src []byte) { s.decrypt.XORKeyStream(dst, src) }
