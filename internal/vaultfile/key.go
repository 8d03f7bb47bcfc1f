package vaultfile

// KDFParams are the Argon2id cost parameters.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultKDF is used for every newly serialized vault.
var DefaultKDF = KDFParams{Time: 3, Memory: 64 * 1024, Threads: 4}

// Key is the composite key of a vault. Only passphrase keys are supported.
type Key struct {
	passphrase []byte
	kdf        KDFParams
}

// NewPasswordKey returns a key for passphrase using DefaultKDF for writing.
func NewPasswordKey(passphrase string) Key {
	return Key{passphrase: []byte(passphrase), kdf: DefaultKDF}
}

// WithKDF returns a copy of k that writes with params.
func (k Key) WithKDF(params KDFParams) Key {
	k.kdf = params
	return k
}

// String never reveals the passphrase.
func (k Key) String() string {
	return "vaultfile.Key{passphrase}"
}

// GoString never reveals the passphrase.
func (k Key) GoString() string {
	return k.String()
}
