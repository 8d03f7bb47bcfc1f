// Package configs manages kpw settings.
//
// Settings are read from an optional TOML file. When no file exists every
// value falls back to its built-in default, so a fresh install needs no
// configuration:
//
//	cache_path      = "<tmp>/.kpw"        # quick-unlock cache
//	staging_path    = "<tmp>/.pass.kpw"   # save staging file
//	backup_name     = ".backup.kpw"       # sibling of the vault file
//	code_length     = 3                   # runes in a quick code
//	password_length = 12                  # generated passwords
//	page_size       = 15                  # entries per picker page
//	banner          = true                # show the start banner on a TTY
//
// The file is looked up at --config, or at kpw/config.toml under
// os.UserConfigDir().
//
// # Trust boundary
//
// The cache and staging defaults live in the shared temp directory and are
// created with default permissions. Any local user who can read that
// directory can read the cache ciphertext or tamper with the staging file
// between the write and the publish step of a save.
package configs
