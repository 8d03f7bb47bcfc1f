// Package prompt implements kpw's interactive prompts on top of promptui.
//
// Passphrases and quick codes are masked while typed and replaced by a key
// glyph once accepted, so the terminal scrollback never holds them. Selects
// page through long entry lists and filter as the user types.
package prompt
