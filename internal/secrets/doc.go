// Package secrets provides the cryptographic building blocks of kpw that are
// independent of the vault container: the SecretBlob codec and the random
// password generator.
//
// # SecretBlob
//
// Seal encrypts a payload under a passphrase in a single shot. The blob is
// self-describing:
//
//	version (1 byte) | salt (16 bytes) | nonce (24 bytes) | secretbox(payload)
//
// The key is derived from the passphrase and salt with PBKDF2-SHA256 and the
// payload is sealed with NaCl secretbox (XSalsa20-Poly1305). A fresh salt and
// nonce are drawn for every blob, so sealing the same payload twice produces
// different output. Open fails with ErrDecryptFailed when the passphrase is
// wrong or the blob was modified; the codec cannot tell the two apart.
//
// The quick-unlock cache seals the master passphrase under a three-character
// code. PBKDF2 slows guessing down but cannot make a short code strong; the
// cache relies on destroying the blob after one failed attempt.
//
// # Passwords
//
// GeneratePassword draws from crypto/rand and guarantees at least one
// character of every enabled class.
package secrets
