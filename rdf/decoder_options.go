package rdf

import "context"

const (
	DefaultMaxLineBytes      = 1 << 20
	DefaultMaxStatementBytes = 4 << 20
)

// DecodeOptions configures decoder behavior and limits.
// Zero values use defaults. Use negative values to disable specific limits.
type DecodeOptions struct {
	// MaxLineBytes limits the size of a single input line.
	MaxLineBytes int
	// MaxStatementBytes limits the size of a multi-line Turtle or TriG statement.
	MaxStatementBytes int
	// MaxStatements limits the number of statements returned. Zero means unlimited.
	MaxStatements int64
	// DebugStatements attaches the offending line to parse errors.
	DebugStatements bool
	// Context provides cancellation for decoding work.
	Context context.Context
}

// DefaultDecodeOptions returns safe defaults for decoder limits.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		MaxLineBytes:      DefaultMaxLineBytes,
		MaxStatementBytes: DefaultMaxStatementBytes,
	}
}

func normalizeDecodeOptions(opts DecodeOptions) DecodeOptions {
	if opts.MaxLineBytes == 0 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}
	if opts.MaxStatementBytes == 0 {
		opts.MaxStatementBytes = DefaultMaxStatementBytes
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	return opts
}
