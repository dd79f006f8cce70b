package heap

// Strategy selects the placement policy Malloc uses to choose a free
// block for a request.
type Strategy int

const (
	// FirstFit returns the first free block, walked from chain head,
	// large enough to satisfy the request.
	FirstFit Strategy = iota

	// NextFit resumes the search at the block the previous next-fit
	// allocation landed in, wrapping around the chain at most once.
	NextFit

	// BestFit returns the smallest free block large enough to satisfy
	// the request, ties broken by lowest address.
	BestFit
)

func (s Strategy) String() string {
	switch s {
	case FirstFit:
		return "FirstFit"
	case NextFit:
		return "NextFit"
	case BestFit:
		return "BestFit"
	default:
		return "Unknown"
	}
}
