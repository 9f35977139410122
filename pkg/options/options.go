// Package options defines the settings for a javafmt invocation.
//
// Like gofmt, javafmt exposes almost no configuration. The goal is consistent
// formatting that frees developers from arguments over style; supporting
// individual preferences is an explicit non-goal.
//
// An Options value is immutable once built and may be shared between
// goroutines without synchronization. A Builder is not safe for concurrent
// use.
package options

import "fmt"

// Options is a frozen set of formatter settings. Obtain one from Default,
// New, or (*Builder).Build; the zero value is not a valid configuration.
type Options struct {
	style                  Style
	formatJavadoc          bool
	singleLineJavadocStyle SingleLineJavadocStyle
	spaceInsideEmptyBlock  bool
}

// Default returns the default formatting options.
func Default() Options {
	return NewBuilder().Build()
}

// Style returns the code style.
func (o Options) Style() Style {
	return o.style
}

// IndentationMultiplier returns the multiplier for the unit of indent.
func (o Options) IndentationMultiplier() int {
	return o.style.IndentationMultiplier()
}

// FormatJavadoc reports whether Javadoc comments are reformatted.
func (o Options) FormatJavadoc() bool {
	return o.formatJavadoc
}

// SingleLineJavadocStyle returns the style used for Javadoc comments that
// fit on a single line.
func (o Options) SingleLineJavadocStyle() SingleLineJavadocStyle {
	return o.singleLineJavadocStyle
}

// SpaceInsideEmptyBlock reports whether an empty block is written as "{ }"
// rather than "{}". This pairs with Checkstyle's WhitespaceAround check.
func (o Options) SpaceInsideEmptyBlock() bool {
	return o.spaceInsideEmptyBlock
}

func (o Options) String() string {
	return fmt.Sprintf("style=%s format_javadoc=%t single_line_javadoc_style=%s space_inside_empty_block=%t",
		o.style, o.formatJavadoc, o.singleLineJavadocStyle, o.spaceInsideEmptyBlock)
}

// Builder stages option values before they are frozen by Build.
type Builder struct {
	style                  Style
	formatJavadoc          bool
	singleLineJavadocStyle SingleLineJavadocStyle
	spaceInsideEmptyBlock  bool
}

// NewBuilder returns a Builder populated with the default values.
func NewBuilder() *Builder {
	return &Builder{
		style:                  Google,
		formatJavadoc:          true,
		singleLineJavadocStyle: SingleLine,
		spaceInsideEmptyBlock:  false,
	}
}

// Style sets the code style.
func (b *Builder) Style(s Style) *Builder {
	b.style = s
	return b
}

// FormatJavadoc sets whether Javadoc comments are reformatted.
func (b *Builder) FormatJavadoc(v bool) *Builder {
	b.formatJavadoc = v
	return b
}

// SingleLineJavadocStyle sets the style used for Javadoc comments that fit
// on a single line.
func (b *Builder) SingleLineJavadocStyle(s SingleLineJavadocStyle) *Builder {
	b.singleLineJavadocStyle = s
	return b
}

// SpaceInsideEmptyBlock sets whether an empty block gets a space inside.
func (b *Builder) SpaceInsideEmptyBlock(v bool) *Builder {
	b.spaceInsideEmptyBlock = v
	return b
}

// Build returns an Options holding a copy of the staged values. The Builder
// is left unchanged and may be modified and built again.
func (b *Builder) Build() Options {
	return Options{
		style:                  b.style,
		formatJavadoc:          b.formatJavadoc,
		singleLineJavadocStyle: b.singleLineJavadocStyle,
		spaceInsideEmptyBlock:  b.spaceInsideEmptyBlock,
	}
}
