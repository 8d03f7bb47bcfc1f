package vault

import (
	"fmt"
	"io"
)

// Redacted is how a Protected value renders in any human-readable form.
const Redacted = "[protected]"

// Value is a field value: either Plain or *Protected.
type Value interface {
	isValue()
}

// Plain is a field value without confidentiality requirements.
type Plain string

func (Plain) isValue() {}

// Protected is a secret field value. The zero value is an empty secret.
type Protected struct {
	b []byte
}

func (*Protected) isValue() {}

// NewProtected returns a Protected value holding a copy of b.
func NewProtected(b []byte) *Protected {
	return &Protected{b: append([]byte(nil), b...)}
}

// NewProtectedString returns a Protected value holding the bytes of s.
func NewProtectedString(s string) *Protected {
	return &Protected{b: []byte(s)}
}

// Bytes returns a copy of the secret. Callers should Wipe it after use.
func (p *Protected) Bytes() []byte {
	if p == nil {
		return nil
	}
	return append([]byte(nil), p.b...)
}

// Len reports the secret's length in bytes.
func (p *Protected) Len() int {
	if p == nil {
		return 0
	}
	return len(p.b)
}

// Wipe zeroes the secret in place.
func (p *Protected) Wipe() {
	if p == nil {
		return
	}
	Wipe(p.b)
	p.b = nil
}

func (p *Protected) String() string   { return Redacted }
func (p *Protected) GoString() string { return "vault.Protected{" + Redacted + "}" }

// Format renders the redaction marker for every verb.
func (p *Protected) Format(f fmt.State, verb rune) {
	if verb == 'q' {
		fmt.Fprintf(f, "%q", Redacted)
		return
	}
	_, _ = io.WriteString(f, Redacted)
}

// MarshalText keeps encoders such as encoding/json from emitting the secret.
func (p *Protected) MarshalText() ([]byte, error) {
	return []byte(Redacted), nil
}

// Wipe zeroes b.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
