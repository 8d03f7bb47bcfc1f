package vault

import (
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Vault is the in-memory form of a credential database.
type Vault struct {
	Root *Group
}

// New returns an empty vault whose root group has the given name.
func New(name string) *Vault {
	return &Vault{Root: NewGroup(name)}
}

// Find returns the entry with the given identifier, or nil.
func (v *Vault) Find(id uuid.UUID) *Entry {
	return v.Root.FindEntry(id)
}

// Add appends e to the root group.
func (v *Vault) Add(e *Entry) {
	v.Root.AddEntry(e)
}

// Entries returns every entry of the vault in depth-first order.
func (v *Vault) Entries() iter.Seq[*Entry] {
	return v.Root.Entries()
}

// List collects Entries into a slice.
func (v *Vault) List() []*Entry {
	return slices.Collect(v.Entries())
}

// Len returns the number of entries in the vault.
func (v *Vault) Len() int {
	n := 0
	for range v.Entries() {
		n++
	}
	return n
}
