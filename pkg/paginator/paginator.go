package paginator

import "errors"

const (
	DefaultFrom = 0
	DefaultSize = 10
)

var (
	ErrInvalidFrom = errors.New(`parameter "from" must not be less than 0`)
	ErrInvalidSize = errors.New(`parameter "size" must not be less than 1`)
)

// PaginateQuery is the from/size pair accepted by every listing endpoint.
// From is an element offset; the page it falls on is From/Size.
type PaginateQuery struct {
	From int
	Size int
}

// Validate checks the query bounds.
func (q PaginateQuery) Validate() error {
	if q.From < 0 {
		return ErrInvalidFrom
	}
	if q.Size < 1 {
		return ErrInvalidSize
	}
	return nil
}

// Page returns the zero-based page index.
func (q PaginateQuery) Page() int {
	return q.From / q.Size
}

// Limit returns the page size.
func (q PaginateQuery) Limit() int {
	return q.Size
}

// Offset returns the first row of the page.
func (q PaginateQuery) Offset() int {
	return q.Page() * q.Size
}

// FromQuery builds a PaginateQuery from optional query values, filling in
// the defaults for the ones that are absent.
func FromQuery(from, size *int) PaginateQuery {
	q := PaginateQuery{From: DefaultFrom, Size: DefaultSize}
	if from != nil {
		q.From = *from
	}
	if size != nil {
		q.Size = *size
	}
	return q
}
