// Package mccrypto implements the AES-128/CFB-8 self-synchronizing stream
// cipher and the RSA handshake primitives used to bootstrap it, per the
// Minecraft Java Edition protocol encryption scheme
// (https://minecraft.wiki/w/Protocol_encryption).
package mccrypto

// Byte-oriented CFB-8 construction, ported from the shift-register
// approach of the teacher's crypto/cfb8.go (itself inspired by
// github.com/Tnze/go-mc's CFB8 implementation).

import "crypto/cipher"

// cfb8 implements cipher.Stream for 8-bit Cipher Feedback mode: the shift
// register is re-encrypted on every single byte, so plaintext and
// ciphertext can never be skipped or reordered relative to each other.
type cfb8 struct {
	block     cipher.Block
	blockSize int
	sr        []byte // shift register, length == blockSize
	tmp       []byte // scratch copy of sr before the shift
	decrypt   bool
}

// newCFB8 builds a cfb8 stream keyed by block with the given initial shift
// register contents (the shared secret, reused as the IV).
func newCFB8(block cipher.Block, iv []byte, decrypt bool) *cfb8 {
	sr := make([]byte, len(iv))
	copy(sr, iv)
	return &cfb8{
		block:     block,
		blockSize: block.BlockSize(),
		sr:        sr,
		tmp:       make([]byte, block.BlockSize()),
		decrypt:   decrypt,
	}
}

// xorKeyStream processes src into dst one byte at a time; stream exposes
// it as cipher.Stream's XORKeyStream. dst and src may overlap exactly
// (in-place encryption), matching the cipher.Stream contract.
func (c *cfb8) xorKeyStream(dst, src []byte) {
	for i := range src {
		copy(c.tmp, c.sr)
		c.block.Encrypt(c.sr, c.sr)
		keystreamByte := c.sr[0]

		in := src[i]
		out := in ^ keystreamByte
		dst[i] = out

		copy(c.sr, c.tmp[1:])
		if c.decrypt {
			c.sr[c.blockSize-1] = in
		} else {
			c.sr[c.blockSize-1] = out
		}
	}
}

// stream adapts cfb8 to the standard cipher.Stream interface.
type stream struct{ c *cfb8 }

func (s *stream) XORKeyStream(dst, src []byte) { s.c.xorKeyStream(dst, src) }

// NewEncryptStream returns a cipher.Stream that CFB-8-encrypts bytes
// written through it, keyed by block with shift register seeded from iv.
func NewEncryptStream(block cipher.Block, iv []byte) cipher.Stream {
	return &stream{c: newCFB8(block, iv, false)}
}

// NewDecryptStream returns a cipher.Stream that CFB-8-decrypts bytes
// written through it. Per CFB-8's self-synchronizing property, the shift
// register is updated from ciphertext in both directions.
func NewDecryptStream(block cipher.Block, iv []byte) cipher.Stream {
	return &stream{c: newCFB8(block, iv, true)}
}
