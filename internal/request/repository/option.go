package repository

import "time"

type CreateRequestOptions struct {
	Description string
	RequestorID int64
	CreatedAt   time.Time
}

type GetOneRequestOptions struct {
	ID int64
}

// ListRequestsOptions filters requests, newest first. RequestorID keeps only
// that user's requests; ExcludeRequestorID drops them.
type ListRequestsOptions struct {
	RequestorID        int64
	ExcludeRequestorID int64
	Limit              int
	Offset             int
}
