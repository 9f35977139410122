package options

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned when a style name does not match any Style.
var ErrUnknownStyle = errors.New("unknown style")

// Style is a named formatting preset.
type Style uint8

const (
	// Google is the default Google Java Style configuration.
	Google Style = iota
	// AOSP is the AOSP-compliant configuration.
	AOSP
)

// styleInfo holds the data attached to each Style. Keyed by the constants
// above so every variant carries exactly one entry.
var styleInfo = [...]struct {
	name                  string
	indentationMultiplier int
}{
	Google: {name: "google", indentationMultiplier: 1},
	AOSP:   {name: "aosp", indentationMultiplier: 2},
}

// Styles returns every Style in declaration order.
func Styles() []Style {
	out := make([]Style, len(styleInfo))
	for i := range styleInfo {
		out[i] = Style(i)
	}
	return out
}

// IndentationMultiplier returns the multiplier for the unit of indent.
func (s Style) IndentationMultiplier() int {
	return styleInfo[s].indentationMultiplier
}

func (s Style) String() string {
	if int(s) >= len(styleInfo) {
		return fmt.Sprintf("Style(%d)", s)
	}
	return styleInfo[s].name
}

// ParseStyle returns the Style with the given name. Matching is
// case-insensitive.
func ParseStyle(name string) (Style, error) {
	for i, info := range styleInfo {
		if strings.EqualFold(info.name, name) {
			return Style(i), nil
		}
	}
	return Google, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if int(s) >= len(styleInfo) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
