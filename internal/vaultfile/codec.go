package vaultfile

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"
	"github.com/PolarWolf314/kpw/internal/vault"
)

// Field numbers of the payload messages.
const (
	databaseRoot protowire.Number = 1

	groupUUID     protowire.Number = 1
	groupName     protowire.Number = 2
	groupChildren protowire.Number = 3

	nodeGroup protowire.Number = 1
	nodeEntry protowire.Number = 2

	entryUUID   protowire.Number = 1
	entryFields protowire.Number = 2

	fieldKey       protowire.Number = 1
	fieldPlain     protowire.Number = 2
	fieldProtected protowire.Number = 3
)

// maxDepth bounds group nesting when decoding.
const maxDepth = 128

func encodeDatabase(v *vault.Vault) []byte {
	var b []byte
	b = protowire.AppendTag(b, databaseRoot, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeGroup(v.Root))
	return b
}

func encodeGroup(g *vault.Group) []byte {
	id := g.ID()
	var b []byte
	b = protowire.AppendTag(b, groupUUID, protowire.BytesType)
	b = protowire.AppendBytes(b, id[:])
	b = protowire.AppendTag(b, groupName, protowire.BytesType)
	b = protowire.AppendString(b, g.Name)
	for _, child := range g.Children {
		var node []byte
		switch n := child.(type) {
		case *vault.Group:
			node = protowire.AppendTag(node, nodeGroup, protowire.BytesType)
			node = protowire.AppendBytes(node, encodeGroup(n))
		case *vault.Entry:
			node = protowire.AppendTag(node, nodeEntry, protowire.BytesType)
			node = protowire.AppendBytes(node, encodeEntry(n))
		default:
			continue
		}
		b = protowire.AppendTag(b, groupChildren, protowire.BytesType)
		b = protowire.AppendBytes(b, node)
	}
	return b
}

func encodeEntry(e *vault.Entry) []byte {
	id := e.ID()
	var b []byte
	b = protowire.AppendTag(b, entryUUID, protowire.BytesType)
	b = protowire.AppendBytes(b, id[:])
	for _, name := range e.FieldNames() {
		var f []byte
		f = protowire.AppendTag(f, fieldKey, protowire.BytesType)
		f = protowire.AppendString(f, name)
		switch v := e.Fields[name].(type) {
		case vault.Plain:
			f = protowire.AppendTag(f, fieldPlain, protowire.BytesType)
			f = protowire.AppendString(f, string(v))
		case *vault.Protected:
			secret := v.Bytes()
			f = protowire.AppendTag(f, fieldProtected, protowire.BytesType)
			f = protowire.AppendBytes(f, secret)
			vault.Wipe(secret)
		default:
			continue
		}
		b = protowire.AppendTag(b, entryFields, protowire.BytesType)
		b = protowire.AppendBytes(b, f)
	}
	return b
}

// eachField calls fn for every length-delimited field of a message and skips
// fields of any other wire type.
func eachField(b []byte, fn func(num protowire.Number, value []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if typ != protowire.BytesType {
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			b = b[m:]
			continue
		}

		value, m := protowire.ConsumeBytes(b)
		if m < 0 {
			return protowire.ParseError(m)
		}
		b = b[m:]
		if err := fn(num, value); err != nil {
			return err
		}
	}
	return nil
}

func decodeDatabase(b []byte) (*vault.Vault, error) {
	var root *vault.Group
	err := eachField(b, func(num protowire.Number, value []byte) error {
		if num != databaseRoot {
			return nil
		}
		g, err := decodeGroup(value, 0)
		if err != nil {
			return err
		}
		root = g
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(kerrors.ErrCorruptVault, "cannot decode payload: %v", err)
	}
	if root == nil {
		return nil, errors.Wrap(kerrors.ErrCorruptVault, "payload has no root group")
	}
	return &vault.Vault{Root: root}, nil
}

func decodeGroup(b []byte, depth int) (*vault.Group, error) {
	if depth > maxDepth {
		return nil, errors.Errorf("groups nested deeper than %d", maxDepth)
	}

	var (
		id       uuid.UUID
		name     string
		children []vault.Node
	)
	err := eachField(b, func(num protowire.Number, value []byte) error {
		switch num {
		case groupUUID:
			parsed, err := uuid.FromBytes(value)
			if err != nil {
				return errors.Wrap(err, "group uuid")
			}
			id = parsed
		case groupName:
			name = string(value)
		case groupChildren:
			child, err := decodeNode(value, depth)
			if err != nil {
				return err
			}
			if child != nil {
				children = append(children, child)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g := vault.NewGroupWithID(id, name)
	g.Children = children
	return g, nil
}

func decodeNode(b []byte, depth int) (vault.Node, error) {
	var node vault.Node
	err := eachField(b, func(num protowire.Number, value []byte) error {
		switch num {
		case nodeGroup:
			g, err := decodeGroup(value, depth+1)
			if err != nil {
				return err
			}
			node = g
		case nodeEntry:
			e, err := decodeEntry(value)
			if err != nil {
				return err
			}
			node = e
		}
		return nil
	})
	return node, err
}

func decodeEntry(b []byte) (*vault.Entry, error) {
	var (
		id     uuid.UUID
		fields = make(map[string]vault.Value)
	)
	err := eachField(b, func(num protowire.Number, value []byte) error {
		switch num {
		case entryUUID:
			parsed, err := uuid.FromBytes(value)
			if err != nil {
				return errors.Wrap(err, "entry uuid")
			}
			id = parsed
		case entryFields:
			key, v, err := decodeField(value)
			if err != nil {
				return err
			}
			fields[key] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e := vault.NewEntryWithID(id)
	e.Fields = fields
	return e, nil
}

func decodeField(b []byte) (string, vault.Value, error) {
	var (
		key   string
		value vault.Value = vault.Plain("")
	)
	err := eachField(b, func(num protowire.Number, v []byte) error {
		switch num {
		case fieldKey:
			key = string(v)
		case fieldPlain:
			value = vault.Plain(string(v))
		case fieldProtected:
			value = vault.NewProtected(v)
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	if key == "" {
		return "", nil, errors.New("field without a name")
	}
	return key, value, nil
}
