package mccrypto

// Test vectors from https://github.com/Tnze/go-mc/blob/076f723e3d1467e8bb11fc09dd29e8e92caf339f/net/CFB8/cfb8_test.go#L15,
// the same ones the teacher's crypto/cfb8_test.go carries forward.

import (
	"crypto/aes"
	"encoding/hex"
	"testing"
)

var cfb8Vectors = []struct {
	key, iv, plaintext, ciphertext string
}{
	{
		"2b7e151628aed2a6abf7158809cf4f3c",
		"000102030405060708090a0b0c0d0e0f",
		"6bc1bee22e409f96e93d7e117393172a",
		"3b79424c9c0dd436bace9e0ed4586a4f",
	},
	{
		"2b7e151628aed2a6abf7158809cf4f3c",
		"3B3FD92EB72DAD20333449F8E83CFB4A",
		"ae2d8a571e03ac9c9eb76fac45af8e51",
		"c8b0723943d71f61a2e5b0e8cedf87c8",
	},
	{
		"2b7e151628aed2a6abf7158809cf4f3c",
		"000102030405060708090a0b0c0d0e0f",
		"0ecbd6d36cd12962ce671b4d96fb95aaa902096aeac366e13a6ae57c05d48673cf320c626689d05548f65fd6a108630c1d4e3aab543b006823c7a9422e97c0431587537c384f99a11488ffd9b2e9b46f49005a7e5cef64e27e2de3cf3fb87c1524766601",
		"5efb6f6b93cf5f0e135a0c932f59f9aaa2276e4b06cd4f5edca4baba735ac7708dd7c0f9e92c6b89d2245b0d9a6356b0e98529cd45e56df22e914ef9e0792facaab707af90c13162bfad06a240eb6adcbf3365fd84a003f8083f4662a7a27232c72c6c0c",
	},
}

func TestCFB8EncryptVectors(t *testing.T) {
	for i, tc := range cfb8Vectors {
		key, _ := hex.DecodeString(tc.key)
		iv, _ := hex.DecodeString(tc.iv)
		plaintext, _ := hex.DecodeString(tc.plaintext)

		block, err := aes.NewCipher(key)
		if err != nil {
			t.Fatalf("test %d: new cipher: %v", i, err)
		}
		out := make([]byte, len(plaintext))
		NewEncryptStream(block, iv).XORKeyStream(out, plaintext)

		if got := hex.EncodeToString(out); got != tc.ciphertext {
			t.Errorf("test %d: encrypt = %s, want %s", i, got, tc.ciphertext)
		}
	}
}

func TestCFB8DecryptVectors(t *testing.T) {
	for i, tc := range cfb8Vectors {
		key, _ := hex.DecodeString(tc.key)
		iv, _ := hex.DecodeString(tc.iv)
		ciphertext, _ := hex.DecodeString(tc.ciphertext)

		block, err := aes.NewCipher(key)
		if err != nil {
			t.Fatalf("test %d: new cipher: %v", i, err)
		}
		out := make([]byte, len(ciphertext))
		NewDecryptStream(block, iv).XORKeyStream(out, ciphertext)

		if got := hex.EncodeToString(out); got != tc.plaintext {
			t.Errorf("test %d: decrypt = %s, want %s", i, got, tc.plaintext)
		}
	}
}

func TestCFB8InPlace(t *testing.T) {
	key, _ := hex.DecodeString(cfb8Vectors[0].key)
	iv, _ := hex.DecodeString(cfb8Vectors[0].iv)
	plaintext, _ := hex.DecodeString(cfb8Vectors[0].plaintext)

	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}
	buf := append([]byte(nil), plaintext...)
	NewEncryptStream(block, iv).XORKeyStream(buf, buf)

	if got := hex.EncodeToString(buf); got != cfb8Vectors[0].ciphertext {
		t.Fatalf("in-place encrypt = %s, want %s", got, cfb8Vectors[0].ciphertext)
	}
}
