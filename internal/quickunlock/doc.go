// Package quickunlock implements the quick-unlock cache: a local file holding
// the master passphrase encrypted under a short code derived from that same
// passphrase, so the vault can be reopened by typing the code.
//
// # Life cycle
//
// Store writes the cache after a successful full-passphrase unlock, replacing
// any previous file. TryUnlock consumes it on the next launch:
//
//	no file          -> StatusNoCache   (silent, no prompt)
//	correct code     -> StatusUnlocked  (passphrase returned)
//	wrong code       -> StatusDestroyed (file deleted)
//
// There is exactly one attempt per cache file. Deleting it on failure keeps
// an attacker who can type at the prompt from guessing the code.
//
// # Trust boundary
//
// The cache lives at a fixed path in the temp directory and is created with
// default permissions. Anyone who can read that directory can copy the
// ciphertext and attack the short code offline. This is an accepted
// limitation of a single-user local tool.
package quickunlock
