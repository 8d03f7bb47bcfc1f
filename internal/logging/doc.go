// Package logger provides structured logging for kpw.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors.
//
// # Verbosity Levels
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are always written to stderr.
//
// # Secrets
//
// Protected vault values render as a redaction marker under every fmt verb,
// so passing an entry field to a log call never prints the secret. Plain
// strings holding secret material (a passphrase, a quick code) must never be
// passed to the logger.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Opened vault with %d entries", n)
package logger
