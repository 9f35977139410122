package options

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownJavadocStyle is returned when a name does not match any
// SingleLineJavadocStyle.
var ErrUnknownJavadocStyle = errors.New("unknown single-line javadoc style")

// SingleLineJavadocStyle selects how a Javadoc comment that fits on one line
// is rendered.
type SingleLineJavadocStyle uint8

const (
	// SingleLine keeps the comment on one line:
	//
	//	/** A single line. */
	//	public void doSomething() {}
	SingleLine SingleLineJavadocStyle = iota

	// MultiLine expands the comment over three lines:
	//
	//	/**
	//	 * A single line.
	//	 */
	//	public void doSomething() {}
	MultiLine
)

var javadocStyleNames = [...]string{
	SingleLine: "single_line",
	MultiLine:  "multi_line",
}

func (j SingleLineJavadocStyle) String() string {
	if int(j) >= len(javadocStyleNames) {
		return fmt.Sprintf("SingleLineJavadocStyle(%d)", j)
	}
	return javadocStyleNames[j]
}

// ParseSingleLineJavadocStyle returns the style with the given name.
// Matching is case-insensitive and accepts '-' in place of '_'.
func ParseSingleLineJavadocStyle(name string) (SingleLineJavadocStyle, error) {
	normalized := strings.ReplaceAll(name, "-", "_")
	for i, n := range javadocStyleNames {
		if strings.EqualFold(n, normalized) {
			return SingleLineJavadocStyle(i), nil
		}
	}
	return SingleLine, fmt.Errorf("%w: %q", ErrUnknownJavadocStyle, name)
}

// MarshalText implements encoding.TextMarshaler.
func (j SingleLineJavadocStyle) MarshalText() ([]byte, error) {
	if int(j) >= len(javadocStyleNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownJavadocStyle, j)
	}
	return []byte(j.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *SingleLineJavadocStyle) UnmarshalText(text []byte) error {
	v, err := ParseSingleLineJavadocStyle(string(text))
	if err != nil {
		return err
	}
	*j = v
	return nil
}
