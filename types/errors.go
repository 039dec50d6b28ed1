package types

import "errors"

// ErrConfiguration marks fatal configuration problems (bad hyperparameters,
// empty corpus partitions, non-positive episode counts). Callers should not
// retry after seeing it.
var ErrConfiguration = errors.New("invalid configuration")
