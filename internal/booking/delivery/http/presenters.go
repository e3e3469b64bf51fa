package http

import (
	"shareit/internal/booking"
	"shareit/internal/model"
	"shareit/pkg/paginator"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	ItemID int64              `json:"itemId" binding:"required"`
	Start  *response.DateTime `json:"start"`
	End    *response.DateTime `json:"end"`
}

func (r createReq) toInput() booking.CreateInput {
	in := booking.CreateInput{ItemID: r.ItemID}
	if r.Start != nil {
		t := r.Start.Time()
		in.Start = &t
	}
	if r.End != nil {
		t := r.End.Time()
		in.End = &t
	}
	return in
}

// ---

type updateReq struct {
	ID       int64 `form:"-"` // populated from URI param
	Approved *bool `form:"approved" binding:"required"`
}

func (r updateReq) toInput() booking.UpdateInput {
	return booking.UpdateInput{
		BookingID: r.ID,
		Approved:  *r.Approved,
	}
}

// ---

type listReq struct {
	State string `form:"state"`
	From  *int   `form:"from"`
	Size  *int   `form:"size"`
}

func (r listReq) toInput() booking.ListInput {
	return booking.ListInput{State: r.State, Paginate: paginator.FromQuery(r.From, r.Size)}
}

// --- Response DTOs ---

type bookerResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookedItemResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookingResp struct {
	ID     int64             `json:"id"`
	Start  response.DateTime `json:"start"`
	End    response.DateTime `json:"end"`
	Status string            `json:"status"`
	Booker bookerResp        `json:"booker"`
	Item   bookedItemResp    `json:"item"`
}

func newBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		ID:     b.ID,
		Start:  response.DateTime(b.Start),
		End:    response.DateTime(b.End),
		Status: string(b.Status),
		Booker: bookerResp{ID: b.Booker.ID, Name: b.Booker.Name},
		Item:   bookedItemResp{ID: b.Item.ID, Name: b.Item.Name},
	}
}

func (h *handler) newListResp(out booking.ListOutput) []bookingResp {
	bookings := make([]bookingResp, len(out.Bookings))
	for i, b := range out.Bookings {
		bookings[i] = newBookingResp(b)
	}
	return bookings
}
