package pagenav

import (
	"context"
	"encoding/base64"
	"fmt"
	"slices"
	"strconv"

	"gorm.io/gorm"
)

var _encoder = base64.RawURLEncoding

// EncodeOffsetToken returns an opaque token for the given offset. Offset 0 encodes to
// an empty token.
func EncodeOffsetToken(offset int) string {
	if offset <= 0 {
		return ""
	}

	return _encoder.EncodeToString([]byte(strconv.Itoa(offset)))
}

// DecodeOffsetToken parses a token produced by EncodeOffsetToken. An empty token is offset 0.
func DecodeOffsetToken(token string) (int, error) {
	if len(token) == 0 {
		return 0, nil
	}

	offsetBytes, err := _encoder.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("failed to decode base64 encoded offset token: %w", err)
	}

	offset, err := strconv.Atoi(string(offsetBytes))
	if err != nil {
		return 0, fmt.Errorf("failed to decode offset token value: %w", err)
	}
	if offset < 0 {
		return 0, fmt.Errorf("offset token value must not be negative, got %d", offset)
	}

	return offset, nil
}

// GORMSource is a Source over a gorm query paged with LIMIT/OFFSET.
//
// Usage:
//
//	src, err := DecodeGORMSource(db.Model(&Article{}).Where("published"), req.Limit, req.Token,
//		OrderBy{Column: "created_at", Direction: DirectionDESC})
//	if err != nil {
//		return err
//	}
//
//	query, err := src.Paginate()
//	if err != nil {
//		return err
//	}
//	err = query.Find(&articles).Error
//
//	res, err := navigator.Navigate(src, vars)
type GORMSource struct {
	db     *gorm.DB
	limit  int
	offset int
	sort   Orderings
}

// NewGORMSource wraps a gorm query. The query should hold the filters of the data set
// and nothing that limits or orders it.
func NewGORMSource(db *gorm.DB) *GORMSource {
	return &GORMSource{
		db:    db,
		limit: DefaultLimit,
	}
}

// DecodeGORMSource builds a GORMSource from request values. limit is normalized with
// NormalizeLimit, token is an offset token from EncodeOffsetToken.
func DecodeGORMSource(db *gorm.DB, limit int, token string, orderBy ...OrderBy) (*GORMSource, error) {
	offset, err := DecodeOffsetToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	return NewGORMSource(db).
		WithLimit(limit).
		WithOffset(offset).
		WithSort(orderBy...), nil
}

// WithContext runs the queries of the source with ctx.
func (s *GORMSource) WithContext(ctx context.Context) *GORMSource {
	if s == nil {
		s = new(GORMSource)
	}

	if s.db != nil {
		s.db = s.db.WithContext(ctx)
	}

	return s
}

// WithLimit sets the page size, NormalizeLimit is applied.
func (s *GORMSource) WithLimit(limit int) *GORMSource {
	if s == nil {
		s = new(GORMSource)
	}

	s.limit = NormalizeLimit(limit)

	return s
}

// WithOffset sets the zero-based index of the first item of the page.
func (s *GORMSource) WithOffset(offset int) *GORMSource {
	if s == nil {
		s = new(GORMSource)
	}

	s.offset = max(offset, 0)

	return s
}

// WithPage sets the offset of the given one-based page for the current limit.
func (s *GORMSource) WithPage(page int) *GORMSource {
	if s == nil {
		s = new(GORMSource)
	}

	return s.WithOffset((max(page, 1) - 1) * s.Limit())
}

// WithSort appends sort orderings. A column sorted twice keeps the last direction.
func (s *GORMSource) WithSort(orderBy ...OrderBy) *GORMSource {
	if s == nil {
		s = new(GORMSource)
	}

	for _, o := range orderBy {
		s.sort = slices.DeleteFunc(s.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})
		s.sort = append(s.sort, o)
	}

	return s
}

// Total implements Source. It runs a COUNT over the wrapped query.
func (s *GORMSource) Total() (int64, error) {
	if s == nil || s.db == nil {
		return 0, fmt.Errorf("cannot count: gorm source has no query")
	}

	var total int64
	if err := s.db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("cannot count: %w", err)
	}

	return total, nil
}

// Limit implements Source.
func (s *GORMSource) Limit() int {
	if s == nil || s.limit <= 0 {
		return DefaultLimit
	}

	return s.limit
}

// Offset implements Source.
func (s *GORMSource) Offset() int {
	if s == nil {
		return 0
	}

	return s.offset
}

// GetSort returns orderings applied by Paginate.
func (s *GORMSource) GetSort() Orderings {
	if s == nil {
		return nil
	}

	return s.sort
}

// Paginate returns the wrapped query ordered and restricted to the page.
func (s *GORMSource) Paginate() (*gorm.DB, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("cannot paginate: gorm source has no query")
	}

	if err := s.sort.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db := s.sort.Apply(s.db.Session(&gorm.Session{}))

	return db.Offset(s.offset).Limit(s.Limit()), nil
}

// NextOffsetToken returns the token of the page following a page of pageLen items, or
// an empty token when that page was the last one.
func (s *GORMSource) NextOffsetToken(pageLen int) string {
	if pageLen < s.Limit() {
		return ""
	}

	return EncodeOffsetToken(s.Offset() + pageLen)
}

var _ Source = (*GORMSource)(nil)
