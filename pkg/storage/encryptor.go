package storage

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

type Encryptor interface {
	Encrypt(data []byte) ([]byte, error)
	Decrypt(data []byte) ([]byte, error)
}

type gcmEncryptor struct {
	aead cipher.AEAD
}

// NewDefaultEncryptor builds an AES-GCM encryptor for at-rest encryption of
// stored blobs. The key must be 16, 24 or 32 bytes.
func NewDefaultEncryptor(key []byte) (Encryptor, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("encryptor: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("encryptor: %w", err)
	}
	return &gcmEncryptor{aead: aead}, nil
}

func (e *gcmEncryptor) Encrypt(data []byte) ([]byte, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("encryptor: failed to read nonce: %w", err)
	}
	return e.aead.Seal(nonce, nonce, data, nil), nil
}

func (e *gcmEncryptor) Decrypt(data []byte) ([]byte, error) {
	size := e.aead.NonceSize()
	if len(data) < size {
		return nil, errors.New("encryptor: ciphertext shorter than nonce")
	}
	return e.aead.Open(nil, data[:size], data[size:], nil)
}
