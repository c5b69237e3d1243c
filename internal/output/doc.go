// Package output provides styled terminal output utilities for hashenc.
//
// It wraps charmbracelet/log for leveled logging and charmbracelet/lipgloss
// for styled result rendering. Commands write through this package rather
// than calling fmt.Println directly.
//
// Features:
//   - Styled logging with emoji prefixes (Info, Warn, Error, Debug)
//   - JSON envelope output for scripting (--json flag)
//   - NO_COLOR environment variable support
//   - Swappable stdout/stderr writers so commands can be captured in tests
package output
