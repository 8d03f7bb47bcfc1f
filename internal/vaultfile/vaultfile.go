package vaultfile

import (
	"io"
	"os"

	"github.com/pkg/errors"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"
	"github.com/PolarWolf314/kpw/internal/vault"
)

// Open reads a whole container from r and decrypts it with key.
//
// It returns ErrNotVault if r does not hold a kpw container,
// ErrUnsupportedVersion if it was written by a newer format revision,
// ErrInvalidKey if the passphrase is wrong or the data was modified, and
// ErrCorruptVault if the decrypted payload is malformed.
func Open(r io.Reader, key Key) (*vault.Vault, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read vault")
	}

	h, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key.passphrase, h)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open vault")
	}

	payload, err := gcm.Open(nil, h.nonce[:], data[headerSize:], data[:headerSize])
	if err != nil {
		return nil, kerrors.ErrInvalidKey
	}
	defer vault.Wipe(payload)

	return decodeDatabase(payload)
}

// OpenFile opens the container at path.
func OpenFile(path string, key Key) (*vault.Vault, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open vault file")
	}
	defer f.Close()
	return Open(f, key)
}

// Serialize encrypts v with key and writes the container to w in one write.
func Serialize(w io.Writer, v *vault.Vault, key Key) error {
	if v == nil || v.Root == nil {
		return errors.New("cannot serialize a vault without a root group")
	}

	h, err := newHeader(key.kdf)
	if err != nil {
		return errors.Wrap(err, "cannot serialize vault")
	}
	gcm, err := newGCM(key.passphrase, h)
	if err != nil {
		return errors.Wrap(err, "cannot serialize vault")
	}

	payload := encodeDatabase(v)
	defer vault.Wipe(payload)

	hdr := h.encode()
	out := gcm.Seal(append([]byte(nil), hdr...), h.nonce[:], payload, hdr)

	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, "cannot write vault")
	}
	return nil
}

// Create writes v to a new file at path. It fails with ErrVaultExists if
// the file is already present.
func Create(path string, v *vault.Vault, key Key) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return errors.Wrapf(kerrors.ErrVaultExists, "%s", path)
		}
		return errors.Wrap(err, "cannot create vault file")
	}

	if err := Serialize(f, v, key); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "cannot close vault file")
	}
	return nil
}
