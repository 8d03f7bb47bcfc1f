package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/pbkdf2"
)

const (
	blobVersion byte = 1

	saltSize  = 16
	nonceSize = 24
	keySize   = 32

	headerSize = 1 + saltSize + nonceSize
)

// KDFIterations is the PBKDF2 work factor for newly sealed blobs.
var KDFIterations = 100_000

func deriveKey(passphrase, salt []byte) *[keySize]byte {
	derived := pbkdf2.Key(passphrase, salt, KDFIterations, keySize, sha256.New)
	var key [keySize]byte
	copy(key[:], derived)
	Wipe(derived)
	return &key
}

// Seal encrypts payload under passphrase and returns the blob.
func Seal(passphrase, payload []byte) ([]byte, error) {
	blob := make([]byte, headerSize, headerSize+len(payload)+secretbox.Overhead)
	blob[0] = blobVersion

	salt := blob[1 : 1+saltSize]
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: generating salt: %v", kerrors.ErrEncryptFailed, err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("%w: generating nonce: %v", kerrors.ErrEncryptFailed, err)
	}
	copy(blob[1+saltSize:], nonce[:])

	key := deriveKey(passphrase, salt)
	defer Wipe(key[:])

	return secretbox.Seal(blob, payload, &nonce, key), nil
}

// Open decrypts a blob produced by Seal.
func Open(passphrase, blob []byte) ([]byte, error) {
	if len(blob) < headerSize+secretbox.Overhead {
		return nil, kerrors.ErrBlobTruncated
	}
	if blob[0] != blobVersion {
		return nil, fmt.Errorf("%w: unknown blob version %d", kerrors.ErrDecryptFailed, blob[0])
	}

	salt := blob[1 : 1+saltSize]
	var nonce [nonceSize]byte
	copy(nonce[:], blob[1+saltSize:headerSize])

	key := deriveKey(passphrase, salt)
	defer Wipe(key[:])

	plaintext, ok := secretbox.Open(nil, blob[headerSize:], &nonce, key)
	if !ok {
		return nil, kerrors.ErrDecryptFailed
	}
	return plaintext, nil
}

// Wipe zeroes b.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
