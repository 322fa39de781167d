package pagenav

import "errors"

// ErrInvalidConfiguration is wrapped by every error caused by caller input that cannot be
// paginated: non-positive page size, current page or link count, negative totals, and
// config values of the wrong type.
var ErrInvalidConfiguration = errors.New("invalid configuration")
