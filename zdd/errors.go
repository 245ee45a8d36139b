package zdd

import "errors"

// ErrNotBuilt is returned by queries made before Build has run.
var ErrNotBuilt = errors.New("zdd: diagram has not been built")
