package vault

import (
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titled(title string) *Entry {
	e := NewEntry()
	e.SetPlain(FieldTitle, title)
	return e
}

func titles(entries []*Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title())
	}
	return out
}

func TestEntries_DepthFirstOrder(t *testing.T) {
	// root: G1{e1, G2{e2}}, e3
	root := NewGroup("Root")
	g1 := NewGroup("G1")
	g2 := NewGroup("G2")
	e1, e2, e3 := titled("e1"), titled("e2"), titled("e3")

	g1.AddEntry(e1)
	g2.AddEntry(e2)
	g1.AddGroup(g2)
	root.AddGroup(g1)
	root.AddEntry(e3)

	got := slices.Collect(root.Entries())
	assert.Equal(t, []string{"e1", "e2", "e3"}, titles(got))
	assert.Same(t, e1, got[0])
	assert.Same(t, e2, got[1])
	assert.Same(t, e3, got[2])
}

func TestEntries_Restartable(t *testing.T) {
	root := NewGroup("Root")
	root.AddEntry(titled("a"))
	sub := NewGroup("sub")
	sub.AddEntry(titled("b"))
	root.AddGroup(sub)

	seq := root.Entries()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, titles(first), titles(second))

	// Entries added after the sequence was created show up on the next walk.
	root.AddEntry(titled("c"))
	assert.Equal(t, []string{"a", "b", "c"}, titles(slices.Collect(seq)))
}

func TestEntries_EarlyStop(t *testing.T) {
	root := NewGroup("Root")
	sub := NewGroup("sub")
	sub.AddEntry(titled("a"))
	sub.AddEntry(titled("b"))
	root.AddGroup(sub)
	root.AddEntry(titled("c"))

	var seen []string
	for e := range root.Entries() {
		seen = append(seen, e.Title())
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestEntries_EmptyGroups(t *testing.T) {
	root := NewGroup("Root")
	root.AddGroup(NewGroup("empty"))
	assert.Empty(t, slices.Collect(root.Entries()))
}

func TestFindEntry_UniqueIdentifiers(t *testing.T) {
	const n = 200
	v := New("Root")
	nested := NewGroup("nested")
	v.Root.AddGroup(nested)

	created := make([]*Entry, 0, n)
	for i := 0; i < n; i++ {
		e := NewEntry()
		if i%3 == 0 {
			nested.AddEntry(e)
		} else {
			v.Add(e)
		}
		created = append(created, e)
	}

	ids := make(map[uuid.UUID]bool, n)
	for _, e := range created {
		ids[e.ID()] = true
	}
	require.Len(t, ids, n)
	require.Equal(t, n, v.Len())

	for _, e := range created {
		found := v.Find(e.ID())
		require.NotNil(t, found)
		assert.Same(t, e, found)
		assert.Equal(t, e.ID(), found.ID())
	}

	matches := 0
	target := created[n/2].ID()
	for e := range v.Entries() {
		if e.ID() == target {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestFindEntry_Absent(t *testing.T) {
	v := New("Root")
	v.Add(titled("a"))
	assert.Nil(t, v.Find(uuid.New()))
}

func TestFindEntry_MutatesInPlace(t *testing.T) {
	v := New("Root")
	sub := NewGroup("sub")
	v.Root.AddGroup(sub)
	e := titled("before")
	sub.AddEntry(e)

	v.Find(e.ID()).SetPlain(FieldTitle, "after")

	got := v.List()
	require.Len(t, got, 1)
	assert.Equal(t, "after", got[0].Title())
}

func TestListDoesNotChangeIdentifiers(t *testing.T) {
	v := New("Root")
	e := titled("a")
	v.Add(e)
	id := e.ID()
	_ = v.List()
	_ = v.List()
	assert.Equal(t, id, e.ID())
}
