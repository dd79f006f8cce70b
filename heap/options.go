package heap

import "runtime"

// Logger is the narrow diagnostic sink Heap writes advisory messages to
// on split, coalesce, allocation and free. It is intentionally the only
// interface the core allocator depends on for output, so callers can
// plug in a structured logger, a *testing.T, or nothing.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Options configures a Heap at construction time.
type Options struct {
	// Size is the total number of bytes the managed region spans,
	// including every block header. Must be at least large enough for
	// one header plus ArchAlignment bytes of payload.
	Size int

	// Alignment is the user-payload alignment the pointer validator
	// enforces on Free. Kept independent of ArchAlignment because a
	// caller may want the validator to accept any word-aligned pointer
	// while still having Malloc round requests up to a coarser
	// architecture boundary; collapsing the two would force both to
	// move together even when only one needs to change.
	Alignment int

	// ArchAlignment is the boundary Malloc rounds every request up to,
	// and the minimum spare payload a split must leave in its suffix
	// block. Defaults to 16 on amd64/arm64, 8 elsewhere.
	ArchAlignment int

	// Strategy is the default placement policy convenience callers
	// (MallocDefault, cmd/heapdemo) use when none is given explicitly.
	Strategy Strategy

	// Logger receives advisory diagnostic messages. Defaults to a no-op
	// sink.
	Logger Logger
}

// Option mutates an Options value being built up by NewOptions.
type Option func(*Options)

// WithSize sets the region size in bytes.
func WithSize(size int) Option { return func(o *Options) { o.Size = size } }

// WithAlignment sets the user-payload alignment the validator enforces.
func WithAlignment(n int) Option { return func(o *Options) { o.Alignment = n } }

// WithArchAlignment sets the alignment Malloc rounds requests up to.
func WithArchAlignment(n int) Option { return func(o *Options) { o.ArchAlignment = n } }

// WithStrategy sets the default placement strategy.
func WithStrategy(s Strategy) Option { return func(o *Options) { o.Strategy = s } }

// WithLogger sets the diagnostic sink.
func WithLogger(l Logger) Option { return func(o *Options) { o.Logger = l } }

// defaultArchAlignment mirrors the C header's architecture #if ladder
// (16 on x86_64/aarch64, 8 elsewhere), resolved against the running
// build's GOARCH rather than a preprocessor target triple.
func defaultArchAlignment() int {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return 16
	default:
		return 8
	}
}

// NewOptions builds an Options value from sane defaults plus overrides.
func NewOptions(opts ...Option) Options {
	o := Options{
		Size:          64 << 10,
		Alignment:     8,
		ArchAlignment: defaultArchAlignment(),
		Strategy:      FirstFit,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return normalizeOptions(o)
}

// normalizeOptions fills in zero-valued fields of a directly-constructed
// Options with the same defaults NewOptions applies, so Init is equally
// safe to call with an Options literal or with NewOptions' output.
func normalizeOptions(o Options) Options {
	if o.Alignment == 0 {
		o.Alignment = 8
	}
	if o.ArchAlignment == 0 {
		o.ArchAlignment = defaultArchAlignment()
	}
	if o.Logger == nil {
		o.Logger = nopLogger{}
	}
	return o
}
