/*
Package vaultfile reads and writes the encrypted kpw vault container.

# Encryption

The payload is encrypted with AES-256 in GCM mode. The key is derived from
the master passphrase with Argon2id; the salt and Argon2 parameters are
stored in the header so a vault written with other parameters can still be
opened. Every Serialize call draws a fresh salt and nonce.

# Binary Format

	4 bytes   magic "KPWV"
	2 bytes   format version, unsigned little endian
	32 bytes  Argon2id salt
	4 bytes   Argon2id time cost, unsigned little endian
	4 bytes   Argon2id memory cost in KiB, unsigned little endian
	1 byte    Argon2id parallelism
	12 bytes  GCM nonce
	...       AES-256-GCM ciphertext of the payload

The header is authenticated as GCM additional data, so changing any header
byte makes Open fail with ErrInvalidKey just like a wrong passphrase.

# Payload

The decrypted payload is a protocol buffers wire-format message:

	Database { 1: Group root }
	Group    { 1: bytes uuid; 2: string name; 3: repeated Node children }
	Node     { oneof { 1: Group group; 2: Entry entry } }
	Entry    { 1: bytes uuid; 2: repeated Field fields }
	Field    { 1: string key; oneof { 2: string plain; 3: bytes protected } }

Unknown fields are skipped when decoding.
*/
package vaultfile
