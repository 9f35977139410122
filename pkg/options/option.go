package options

// Option overrides one setting on a Builder.
type Option func(*Builder)

// New returns the default options with opts applied in order.
func New(opts ...Option) Options {
	b := NewBuilder()
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// WithStyle sets the code style.
func WithStyle(s Style) Option {
	return func(b *Builder) { b.Style(s) }
}

// WithFormatJavadoc sets whether Javadoc comments are reformatted.
func WithFormatJavadoc(v bool) Option {
	return func(b *Builder) { b.FormatJavadoc(v) }
}

// WithSingleLineJavadocStyle sets the single-line Javadoc style.
func WithSingleLineJavadocStyle(s SingleLineJavadocStyle) Option {
	return func(b *Builder) { b.SingleLineJavadocStyle(s) }
}

// WithSpaceInsideEmptyBlock sets whether an empty block gets a space inside.
func WithSpaceInsideEmptyBlock(v bool) Option {
	return func(b *Builder) { b.SpaceInsideEmptyBlock(v) }
}
