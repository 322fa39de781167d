package pagenav

import "github.com/samber/lo"

const (
	// MaxLimit is the largest page size accepted from a request.
	MaxLimit = 100
	// DefaultLimit replaces a missing or non-positive page size from a request.
	DefaultLimit = 10
	// DefaultPageLinks is the default number of consecutive pages shown around the current one.
	DefaultPageLinks = 5
)

// IsNormalizedLimitMax fits a requested page size into (0, maxLimit]. The second value
// reports whether the requested size was accepted unchanged.
func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	size := lo.Ternary(limit > 0, min(limit, maxLimit), DefaultLimit)
	return size, size == limit
}

// NormalizeLimitMax is IsNormalizedLimitMax without the report.
func NormalizeLimitMax(limit int, maxLimit int) int {
	size, _ := IsNormalizedLimitMax(limit, maxLimit)
	return size
}

// NormalizeLimit fits a requested page size into (0, MaxLimit].
func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}
