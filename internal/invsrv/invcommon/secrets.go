package invcommon

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// Format version
	sealFormatVersion = 0x01

	// Cryptographic parameters
	sealSaltSize    = 16
	sealKeySize     = 32
	sealNonceSize   = 12
	sealMemory      = 64 * 1024 // 64 MB
	sealIterations  = 3
	sealParallelism = 4

	// Minimum blob size: version(1) + salt(16) + nonce(12) + min ciphertext(1)
	sealMinBlobSize = 1 + sealSaltSize + sealNonceSize + 1
)

// zeroBytes overwrites the given byte slice with zeros
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Derives a 32-byte key from a passphrase and salt using Argon2id
func deriveSealKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, sealIterations, sealMemory, uint8(sealParallelism), sealKeySize)
}

func validateSealFormat(blob []byte) error {
	if len(blob) < sealMinBlobSize {
		return fmt.Errorf("invalid blob length: %d (minimum: %d)", len(blob), sealMinBlobSize)
	}

	if blob[0] != sealFormatVersion {
		return fmt.Errorf("unsupported format version: %d", blob[0])
	}

	ciphertextLen := len(blob) - (1 + sealSaltSize + sealNonceSize)
	if ciphertextLen <= 0 {
		return fmt.Errorf("invalid ciphertext length: %d", ciphertextLen)
	}

	return nil
}

// SealCredential encrypts a device management credential with the configured
// passphrase using Argon2id + AES-GCM. Sealed blobs are safe to store in the
// database alongside the device record.
func SealCredential(data []byte, passphrase string) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty credential")
	}

	salt := make([]byte, sealSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key := deriveSealKey([]byte(passphrase), salt)
	defer zeroBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, sealNonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := aesgcm.Seal(nil, nonce, data, nil)

	// Format: [version(1B)][salt(16B)][nonce(12B)][ciphertext(N)]
	result := []byte{sealFormatVersion}
	result = append(result, salt...)
	result = append(result, nonce...)
	result = append(result, ciphertext...)
	return result, nil
}

// UnsealCredential decrypts a sealed credential blob using the passphrase.
func UnsealCredential(blob []byte, passphrase string) ([]byte, error) {
	if err := validateSealFormat(blob); err != nil {
		return nil, err
	}

	salt := blob[1 : 1+sealSaltSize]
	nonce := blob[1+sealSaltSize : 1+sealSaltSize+sealNonceSize]
	ciphertext := blob[1+sealSaltSize+sealNonceSize:]

	key := deriveSealKey([]byte(passphrase), salt)
	defer zeroBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}
