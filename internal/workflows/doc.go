// Package workflows provides high-level orchestration for kpw.
//
// Workflows coordinate the quick-unlock cache, the vault container and the
// entry tree to implement complete user-facing features. Each workflow is
// independent of CLI concerns like flag parsing, spinners and config files.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Builds the prompter, clipboard and cache from settings
//   - Calls the appropriate workflow function
//
// Workflows handle everything else:
//   - Deciding between the quick code and the full passphrase
//   - Validating a passphrase against the vault before caching it
//   - Mutating the entry tree
//   - Persisting every mutation through Save
//
// # Available Workflows
//
//   - Unlock: opens a vault via the quick-unlock cache or the passphrase
//   - Create: creates a new, empty vault and seeds the cache
//   - Save: backup, staging write, publish
//   - Session: the Search / Edit / New / Quit menu loop
//
// User interaction goes through the Prompter and Clipboard interfaces so
// every workflow can be driven by scripted fakes in tests.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Use
// errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Save(ctx, opts)
//	if errors.Is(err, kerrors.ErrStagingFailed) {
//	    // The vault file was not touched.
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Prompts block without a deadline; the session checks the context between
// menu actions.
package workflows
