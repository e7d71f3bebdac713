package squeeze

import "errors"

// ErrInternal is returned when path replay hits a contract violation: a
// match the matcher cannot reproduce, a replay distance-verification
// failure, or a path whose emitted lengths don't sum to the block size.
// Negative costs and length-array entries exceeding their own index are not
// checked. Any of these indicates a bug in the matcher, the cost model, or
// the DP itself — not a property of the input. Callers can use
// errors.Is(err, squeeze.ErrInternal).
var ErrInternal = errors.New("squeeze: internal invariant violation")
