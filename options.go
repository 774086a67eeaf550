package rtltext

// ClassifyOptions holds options for a classification call.
type ClassifyOptions struct {
	Config   *Config
	Mentions MentionExtractor
	URLs     URLExtractor
}

// Option is a function that configures ClassifyOptions.
type Option func(*ClassifyOptions)

// WithConfig sets a custom Config. A nil config keeps the default.
func WithConfig(config *Config) Option {
	return func(opts *ClassifyOptions) {
		if config != nil {
			opts.Config = config
		}
	}
}

// WithThreshold overrides the RTL ratio threshold, keeping the other
// fields of the current config.
func WithThreshold(threshold float64) Option {
	return func(opts *ClassifyOptions) {
		cfg := *opts.Config
		cfg.Threshold = threshold
		opts.Config = &cfg
	}
}

// WithMentionExtractor sets the extractor used to discount @-mentions.
func WithMentionExtractor(e MentionExtractor) Option {
	return func(opts *ClassifyOptions) {
		if e != nil {
			opts.Mentions = e
		}
	}
}

// WithURLExtractor sets the extractor used to discount URLs.
func WithURLExtractor(e URLExtractor) Option {
	return func(opts *ClassifyOptions) {
		if e != nil {
			opts.URLs = e
		}
	}
}

// defaultClassifyOptions returns the default classification options.
func defaultClassifyOptions() *ClassifyOptions {
	return &ClassifyOptions{
		Config:   DefaultConfig(),
		Mentions: DefaultMentionExtractor(),
		URLs:     DefaultURLExtractor(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ClassifyOptions {
	options := defaultClassifyOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}
	return options
}
