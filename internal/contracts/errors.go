package contracts

import "errors"

// Per-ticker failure taxonomy. A failing ticker is skipped and the scan
// continues; none of these abort a batch.
var (
	// ErrDataUnavailable means the snapshot or history fetch failed or
	// came back empty.
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrInsufficientHistory means the price series is shorter than a
	// scorer's required window.
	ErrInsufficientHistory = errors.New("insufficient price history")

	// ErrMalformedMetric means the provider returned an attribute with an
	// unexpected type or shape.
	ErrMalformedMetric = errors.New("malformed metric")
)
