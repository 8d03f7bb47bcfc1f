package vaultfile

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

// CurrentVersion is the container format revision written by Serialize.
const CurrentVersion uint16 = 1

var magic = [4]byte{'K', 'P', 'W', 'V'}

const (
	saltSize   = 32
	nonceSize  = 12
	keySize    = 32
	headerSize = len(magic) + 2 + saltSize + 4 + 4 + 1 + nonceSize

	// Upper bounds on the Argon2 cost read from a header. The header is
	// only authenticated after the key has been derived from it.
	maxTime    = 16
	maxMemory  = 1024 * 1024 // KiB
	maxThreads = 64
)

type header struct {
	version uint16
	salt    [saltSize]byte
	kdf     KDFParams
	nonce   [nonceSize]byte
}

func newHeader(kdf KDFParams) (*header, error) {
	if kdf.Time == 0 || kdf.Threads == 0 {
		kdf = DefaultKDF
	}
	if err := kdf.validate(); err != nil {
		return nil, err
	}
	h := &header{version: CurrentVersion, kdf: kdf}
	if _, err := rand.Read(h.salt[:]); err != nil {
		return nil, errors.Wrap(err, "cannot generate salt")
	}
	if _, err := rand.Read(h.nonce[:]); err != nil {
		return nil, errors.Wrap(err, "cannot generate nonce")
	}
	return h, nil
}

func (h *header) encode() []byte {
	var buf bytes.Buffer
	buf.Grow(headerSize)
	buf.Write(magic[:])
	_ = binary.Write(&buf, binary.LittleEndian, h.version)
	buf.Write(h.salt[:])
	_ = binary.Write(&buf, binary.LittleEndian, h.kdf.Time)
	_ = binary.Write(&buf, binary.LittleEndian, h.kdf.Memory)
	buf.WriteByte(h.kdf.Threads)
	buf.Write(h.nonce[:])
	return buf.Bytes()
}

func decodeHeader(data []byte) (*header, error) {
	if len(data) < len(magic) || !bytes.Equal(data[:len(magic)], magic[:]) {
		return nil, kerrors.ErrNotVault
	}
	if len(data) < headerSize {
		return nil, errors.Wrap(kerrors.ErrCorruptVault, "header is truncated")
	}

	h := &header{}
	off := len(magic)
	h.version = binary.LittleEndian.Uint16(data[off:])
	off += 2
	if h.version == 0 || h.version > CurrentVersion {
		return nil, errors.Wrapf(kerrors.ErrUnsupportedVersion, "version %d", h.version)
	}
	copy(h.salt[:], data[off:])
	off += saltSize
	h.kdf.Time = binary.LittleEndian.Uint32(data[off:])
	off += 4
	h.kdf.Memory = binary.LittleEndian.Uint32(data[off:])
	off += 4
	h.kdf.Threads = data[off]
	off++
	copy(h.nonce[:], data[off:])

	if err := h.kdf.validate(); err != nil {
		return nil, errors.Wrap(kerrors.ErrCorruptVault, err.Error())
	}
	return h, nil
}

// validate rejects parameters outside the range kpw reads back.
func (p KDFParams) validate() error {
	switch {
	case p.Time == 0 || p.Time > maxTime:
		return errors.Errorf("argon2 time cost %d out of range 1..%d", p.Time, maxTime)
	case p.Memory == 0 || p.Memory > maxMemory:
		return errors.Errorf("argon2 memory %d KiB out of range 1..%d", p.Memory, maxMemory)
	case p.Threads == 0 || p.Threads > maxThreads:
		return errors.Errorf("argon2 threads %d out of range 1..%d", p.Threads, maxThreads)
	}
	return nil
}

func newGCM(passphrase []byte, h *header) (cipher.AEAD, error) {
	key := argon2.IDKey(passphrase, h.salt[:], h.kdf.Time, h.kdf.Memory, h.kdf.Threads, keySize)
	defer func() {
		for i := range key {
			key[i] = 0
		}
	}()

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create new aes block cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create new gcm cipher")
	}
	return gcm, nil
}
