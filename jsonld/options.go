package jsonld

import "log/slog"

// BlankGraphPolicy decides what happens to named graphs whose identifying
// node is a blank node.
type BlankGraphPolicy int

const (
	// BlankGraphRename names the graph with a session blank node identifier.
	BlankGraphRename BlankGraphPolicy = iota
	// BlankGraphSkip drops the graph and its statements.
	BlankGraphSkip
)

// String returns the policy name used in configuration files.
func (p BlankGraphPolicy) String() string {
	switch p {
	case BlankGraphRename:
		return "rename"
	case BlankGraphSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// ParseBlankGraphPolicy parses a policy name.
func ParseBlankGraphPolicy(value string) (BlankGraphPolicy, bool) {
	switch value {
	case "", "rename":
		return BlankGraphRename, true
	case "skip":
		return BlankGraphSkip, true
	default:
		return 0, false
	}
}

// Options configures an Importer or Session.
type Options struct {
	// BlankNodePrefix is the prefix of generated blank node identifiers.
	BlankNodePrefix string
	// BlankGraphs handles named graphs identified by a blank node.
	BlankGraphs BlankGraphPolicy
	// SharedSession keeps blank node names across Importer calls.
	SharedSession bool
	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithBlankNodePrefix sets the prefix of generated blank node identifiers.
func WithBlankNodePrefix(prefix string) Option {
	return func(opts *Options) {
		opts.BlankNodePrefix = prefix
	}
}

// WithBlankGraphPolicy sets how blank-node-named graphs are handled.
func WithBlankGraphPolicy(policy BlankGraphPolicy) Option {
	return func(opts *Options) {
		opts.BlankGraphs = policy
	}
}

// WithSharedSession makes an Importer reuse one blank node namer for every
// call, so the same source label maps to the same identifier across calls.
// Use it only when the inputs really share blank nodes.
func WithSharedSession() Option {
	return func(opts *Options) {
		opts.SharedSession = true
	}
}

// WithLogger sets the logger for debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func defaultOptions() Options {
	return Options{
		BlankNodePrefix: DefaultBlankNodePrefix,
		BlankGraphs:     BlankGraphRename,
	}
}

func buildOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	return options
}
