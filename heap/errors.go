package heap

import "errors"

// Error kinds the package signals. Use errors.Is to test for a specific
// kind; Malloc and Free wrap these with call-site context.
var (
	// ErrInvalidArgument covers a null allocator, a null or malformed
	// pointer passed to Free, a zero or negative size, and an unknown
	// placement strategy.
	ErrInvalidArgument = errors.New("heap: invalid argument")

	// ErrOutOfMemory is returned by Malloc when no block in the chain
	// satisfies the request under the selected strategy.
	ErrOutOfMemory = errors.New("heap: out of memory")

	// ErrDoubleFree is returned by Free when the pointer resolves to a
	// block already marked free. The block's header is otherwise valid,
	// so this is reported distinctly from ErrInvalidArgument.
	ErrDoubleFree = errors.New("heap: double free")
)
