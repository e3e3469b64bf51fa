package http

import (
	"shareit/internal/item"
	"shareit/internal/model"
	"shareit/pkg/paginator"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"requestId"`
}

func (r createReq) toInput() item.CreateInput {
	return item.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
		RequestID:   r.RequestID,
	}
}

// ---

type updateReq struct {
	ID          int64   `json:"-"` // populated from URI param
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

func (r updateReq) toInput() item.UpdateInput {
	return item.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

// ---

type listReq struct {
	From *int `form:"from"`
	Size *int `form:"size"`
}

func (r listReq) toInput() item.ListInput {
	return item.ListInput{Paginate: paginator.FromQuery(r.From, r.Size)}
}

type searchReq struct {
	Text string `form:"text"`
	From *int   `form:"from"`
	Size *int   `form:"size"`
}

func (r searchReq) toInput() item.SearchInput {
	return item.SearchInput{Text: r.Text, Paginate: paginator.FromQuery(r.From, r.Size)}
}

// ---

type commentReq struct {
	ItemID int64  `json:"-"` // populated from URI param
	Text   string `json:"text"`
}

func (r commentReq) toInput() item.CommentInput {
	return item.CommentInput{ItemID: r.ItemID, Text: r.Text}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

type bookingShortResp struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

func newBookingShortResp(b *model.Booking) *bookingShortResp {
	if b == nil {
		return nil
	}
	return &bookingShortResp{ID: b.ID, BookerID: b.Booker.ID}
}

type commentResp struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	AuthorName string            `json:"authorName"`
	Created    response.DateTime `json:"created"`
}

func newCommentResp(c model.Comment) commentResp {
	return commentResp{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    response.DateTime(c.CreatedAt),
	}
}

type itemViewResp struct {
	itemResp
	LastBooking *bookingShortResp `json:"lastBooking"`
	NextBooking *bookingShortResp `json:"nextBooking"`
	Comments    []commentResp     `json:"comments"`
}

func newItemViewResp(v item.ItemView) itemViewResp {
	comments := make([]commentResp, len(v.Comments))
	for i, c := range v.Comments {
		comments[i] = newCommentResp(c)
	}
	return itemViewResp{
		itemResp:    newItemResp(v.Item),
		LastBooking: newBookingShortResp(v.LastBooking),
		NextBooking: newBookingShortResp(v.NextBooking),
		Comments:    comments,
	}
}

func (h *handler) newListResp(out item.ListOutput) []itemViewResp {
	items := make([]itemViewResp, len(out.Items))
	for i, v := range out.Items {
		items[i] = newItemViewResp(v)
	}
	return items
}

func (h *handler) newSearchResp(out item.SearchOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}
