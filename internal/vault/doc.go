// Package vault provides the in-memory model of a credential vault.
//
// A vault is a rooted tree. Each Group holds an ordered list of children,
// each either a *Group or an *Entry (the Node sum type). Entries carry a
// 128-bit identifier assigned at creation and a map of named field values.
//
// # Identifiers
//
// Entry identifiers are random UUIDs generated by NewEntry. Uniqueness across
// the tree follows from generation; the package never validates it. The
// identifier is immutable and only readable through Entry.ID.
//
// # Field Values
//
// A Value is either Plain text or *Protected bytes. Protected values hold
// secret material and render as a redaction marker under every fmt verb,
// as text and as JSON, so incidental logging never reveals them.
//
// # Traversal
//
// Group.FindEntry and Group.Entries walk the tree depth-first in insertion
// order, descending into a sub-group before visiting its later siblings.
package vault
