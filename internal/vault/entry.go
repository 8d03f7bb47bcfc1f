package vault

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Canonical field names.
const (
	FieldTitle    = "Title"
	FieldUserName = "UserName"
	FieldPassword = "Password"
	FieldNotes    = "Notes"
	FieldURL      = "URL"
)

// Entry is a single credential record.
type Entry struct {
	id     uuid.UUID
	Fields map[string]Value
}

// NewEntry returns an empty entry with a freshly generated identifier.
func NewEntry() *Entry {
	return NewEntryWithID(uuid.New())
}

// NewEntryWithID returns an empty entry with the given identifier. It is used
// when decoding a stored vault; new entries should use NewEntry.
func NewEntryWithID(id uuid.UUID) *Entry {
	return &Entry{id: id, Fields: make(map[string]Value)}
}

func (*Entry) node() {}

// ID returns the entry's identifier.
func (e *Entry) ID() uuid.UUID {
	return e.id
}

// Get returns the raw value of a field.
func (e *Entry) Get(name string) (Value, bool) {
	v, ok := e.Fields[name]
	return v, ok
}

// Plain returns a field's text if it is stored as a Plain value.
func (e *Entry) Plain(name string) (string, bool) {
	v, ok := e.Fields[name].(Plain)
	return string(v), ok
}

// Protected returns a field if it is stored as a Protected value.
func (e *Entry) Protected(name string) (*Protected, bool) {
	v, ok := e.Fields[name].(*Protected)
	return v, ok && v != nil
}

// Text returns the field content regardless of its protection, as the text
// the user would edit. The result may be secret and must not be logged.
func (e *Entry) Text(name string) (string, bool) {
	switch v := e.Fields[name].(type) {
	case Plain:
		return string(v), true
	case *Protected:
		if v == nil {
			return "", false
		}
		return string(v.b), true
	default:
		return "", false
	}
}

// SetPlain stores a Plain field.
func (e *Entry) SetPlain(name, value string) {
	e.set(name, Plain(value))
}

// SetProtected stores a Protected field holding a copy of value.
func (e *Entry) SetProtected(name string, value []byte) {
	e.set(name, NewProtected(value))
}

func (e *Entry) set(name string, v Value) {
	if e.Fields == nil {
		e.Fields = make(map[string]Value)
	}
	if old, ok := e.Fields[name].(*Protected); ok {
		old.Wipe()
	}
	e.Fields[name] = v
}

// Title returns the Title field, or "" if unset.
func (e *Entry) Title() string {
	t, _ := e.Text(FieldTitle)
	return t
}

// UserName returns the UserName field, or "" if unset.
func (e *Entry) UserName() string {
	u, _ := e.Text(FieldUserName)
	return u
}

// URL returns the URL field, or "" if unset.
func (e *Entry) URL() string {
	u, _ := e.Text(FieldURL)
	return u
}

// FieldNames returns the entry's field names in sorted order.
func (e *Entry) FieldNames() []string {
	return slices.Sorted(maps.Keys(e.Fields))
}

// String returns the entry's display name. It never includes secret fields.
func (e *Entry) String() string {
	if t := e.Title(); t != "" {
		return t
	}
	return "(no title)"
}
