package render

import (
	"strings"
)

// UnicodeLevel represents the level of Unicode support.
type UnicodeLevel int

const (
	UnicodeNone     UnicodeLevel = iota // ASCII only
	UnicodeBasic                        // Box-drawing characters
	UnicodeExtended                     // Rounded corners and diagonals
)

// TerminalCapabilities represents the features supported by the current terminal.
type TerminalCapabilities struct {
	Name          string
	UnicodeLevel  UnicodeLevel
	SupportsColor bool
}

// ASCII reports whether drawing should stick to plain ASCII.
func (c TerminalCapabilities) ASCII() bool {
	return c.UnicodeLevel == UnicodeNone
}

// DetectCapabilities detects the terminal's capabilities from the
// environment. getenv is usually os.Getenv.
func DetectCapabilities(getenv func(string) string) TerminalCapabilities {
	// Allow override via environment variable
	switch getenv("MINDMAP_TERMINAL_MODE") {
	case "ascii":
		return ForceASCII()
	case "unicode":
		return ForceUnicode()
	}

	term := getenv("TERM")
	caps := TerminalCapabilities{
		Name:          term,
		UnicodeLevel:  UnicodeBasic,
		SupportsColor: term != "" && term != "dumb",
	}

	switch {
	case !detectUTF8Locale(getenv), term == "linux", term == "dumb":
		caps.UnicodeLevel = UnicodeNone
	case strings.Contains(term, "xterm"), strings.Contains(term, "kitty"),
		term == "alacritty", getenv("TMUX") != "", getenv("WT_SESSION") != "":
		caps.UnicodeLevel = UnicodeExtended
	}

	// Check for NO_COLOR environment variable (https://no-color.org/)
	if getenv("NO_COLOR") != "" {
		caps.SupportsColor = false
	}

	return caps
}

// detectUTF8Locale checks if the locale supports UTF-8.
func detectUTF8Locale(getenv func(string) string) bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := getenv(env)
		if value == "" {
			continue
		}

		// Handle C.UTF-8, en_US.UTF-8, en_US.UTF-8@euro, etc.
		upper := strings.ToUpper(value)
		return strings.Contains(upper, "UTF-8") || strings.Contains(upper, "UTF8")
	}

	return false
}

// ForceASCII returns capabilities configured for ASCII-only output.
func ForceASCII() TerminalCapabilities {
	return TerminalCapabilities{
		Name:          "ascii",
		UnicodeLevel:  UnicodeNone,
		SupportsColor: false,
	}
}

// ForceUnicode returns capabilities configured for full Unicode support.
func ForceUnicode() TerminalCapabilities {
	return TerminalCapabilities{
		Name:          "unicode",
		UnicodeLevel:  UnicodeExtended,
		SupportsColor: true,
	}
}
