// Package ui provides semantic text formatting for CLI output.
//
// Formatters render differently depending on terminal capabilities. When
// colors are available, content is colorized. When NO_COLOR is set or the
// terminal doesn't support colors, text-based decorations are used instead.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("kpw --init vault.kpw")   // Commands
//	ui.Path.Sprint("/tmp/.kpw")              // File paths
//	ui.Success.Sprint("✓")                    // Success indicators
//	ui.Error.Sprint("✗")                      // Error indicators
//	ui.Warning.Sprint("!")                    // Warnings
//	ui.Info.Sprint(">")                       // Status lines
//	ui.Highlight.Sprint("Mail")               // Entry titles and user values
//	ui.Muted.Sprint("no title")               // De-emphasized text
//	ui.Secret.Sprint("🔑")                    // Stand-in for a hidden value
//
// Protected vault values must never be passed to a formatter; they are
// revealed only through the session's reveal sink.
package ui
