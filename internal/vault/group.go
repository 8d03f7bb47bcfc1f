package vault

import (
	"iter"

	"github.com/google/uuid"
)

// Node is a child of a Group: either *Group or *Entry.
type Node interface {
	node()
}

// Group is a named, ordered container of entries and sub-groups.
type Group struct {
	id       uuid.UUID
	Name     string
	Children []Node
}

// NewGroup returns an empty group with a freshly generated identifier.
func NewGroup(name string) *Group {
	return NewGroupWithID(uuid.New(), name)
}

// NewGroupWithID returns an empty group with the given identifier.
func NewGroupWithID(id uuid.UUID, name string) *Group {
	return &Group{id: id, Name: name}
}

func (*Group) node() {}

// ID returns the group's identifier.
func (g *Group) ID() uuid.UUID {
	return g.id
}

// AddEntry appends e as the last direct child of g.
func (g *Group) AddEntry(e *Entry) {
	g.Children = append(g.Children, e)
}

// AddGroup appends sub as the last direct child of g.
func (g *Group) AddGroup(sub *Group) {
	g.Children = append(g.Children, sub)
}

// FindEntry returns the entry with the given identifier, or nil if no entry
// in the tree rooted at g has it.
func (g *Group) FindEntry(id uuid.UUID) *Entry {
	for _, child := range g.Children {
		switch n := child.(type) {
		case *Group:
			if e := n.FindEntry(id); e != nil {
				return e
			}
		case *Entry:
			if n.id == id {
				return n
			}
		}
	}
	return nil
}

// Entries returns a depth-first sequence of every entry under g. Groups are
// not yielded. Each call walks the tree afresh.
func (g *Group) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		g.walk(yield)
	}
}

func (g *Group) walk(yield func(*Entry) bool) bool {
	for _, child := range g.Children {
		switch n := child.(type) {
		case *Group:
			if !n.walk(yield) {
				return false
			}
		case *Entry:
			if !yield(n) {
				return false
			}
		}
	}
	return true
}
