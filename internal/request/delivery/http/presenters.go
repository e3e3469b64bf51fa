package http

import (
	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/pkg/paginator"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Description string `json:"description"`
}

func (r createReq) toInput() request.CreateInput {
	return request.CreateInput{Description: r.Description}
}

type listOthersReq struct {
	From *int `form:"from"`
	Size *int `form:"size"`
}

func (r listOthersReq) toInput() request.ListOthersInput {
	return request.ListOthersInput{Paginate: paginator.FromQuery(r.From, r.Size)}
}

// --- Response DTOs ---

type offeredItemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
	OwnerID     int64  `json:"ownerId"`
}

type requestResp struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	Created     response.DateTime `json:"created"`
	Items       []offeredItemResp `json:"items"`
}

func newRequestResp(v request.RequestView) requestResp {
	items := make([]offeredItemResp, len(v.Items))
	for i, it := range v.Items {
		items[i] = newOfferedItemResp(it)
	}
	return requestResp{
		ID:          v.Request.ID,
		Description: v.Request.Description,
		Created:     response.DateTime(v.Request.CreatedAt),
		Items:       items,
	}
}

func newOfferedItemResp(it model.Item) offeredItemResp {
	resp := offeredItemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		OwnerID:     it.OwnerID,
	}
	if it.RequestID != nil {
		resp.RequestID = *it.RequestID
	}
	return resp
}

func (h *handler) newListResp(out request.ListOutput) []requestResp {
	reqs := make([]requestResp, len(out.Requests))
	for i, v := range out.Requests {
		reqs[i] = newRequestResp(v)
	}
	return reqs
}
