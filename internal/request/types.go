package request

import (
	"shareit/internal/model"
	"shareit/pkg/paginator"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Description string
}

type ListOthersInput struct {
	Paginate paginator.PaginateQuery
}

// --- UseCase Outputs ---

// RequestView is a request together with the items listed in answer to it.
type RequestView struct {
	Request model.ItemRequest
	Items   []model.Item
}

type ListOutput struct {
	Requests []RequestView
}
