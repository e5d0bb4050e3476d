package curl

import "go.uber.org/zap"

// Option configures a Mesh during creation.
//
// Example:
//
//	m := curl.New(10,
//	    curl.WithLogger(logger.Log),
//	    curl.WithShadowColors(curl.RGBA(0, 0, 0, 0x4c), curl.ColorTransparent),
//	)
type Option func(*options)

type options struct {
	logger      *zap.Logger
	shadows     bool
	textures    bool
	curlLines   bool
	shadowInner Color
	shadowOuter Color
}

func defaultOptions() options {
	return options{
		logger:      zap.NewNop(),
		shadows:     true,
		textures:    true,
		shadowInner: DefaultShadowInner,
		shadowOuter: DefaultShadowOuter,
	}
}

// WithLogger sets the logger used for debug diagnostics. A nil logger keeps
// logging disabled.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithShadows enables or disables drop and self shadow generation.
func WithShadows(enabled bool) Option {
	return func(o *options) {
		o.shadows = enabled
	}
}

// WithTextures enables or disables the texture coordinate buffer.
func WithTextures(enabled bool) Option {
	return func(o *options) {
		o.textures = enabled
	}
}

// WithCurlLines enables the debug lines marking the curl position and
// direction.
func WithCurlLines(enabled bool) Option {
	return func(o *options) {
		o.curlLines = enabled
	}
}

// WithShadowColors sets the colors shadows blend between. inner is used at
// full intensity next to the surface, outer at the faded edge.
func WithShadowColors(inner, outer Color) Option {
	return func(o *options) {
		o.shadowInner = inner
		o.shadowOuter = outer
	}
}
