package usecase

import (
	"context"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Detail returns an item with its comments. Booking history is shown to the owner only.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (item.ItemView, error) {
	var out item.ItemView
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		it, err := uc.getItem(ctx, id)
		if err != nil {
			return err
		}
		views, err := uc.buildViews(ctx, []model.Item{it}, it.OwnerID == sc.UserID)
		if err != nil {
			return err
		}
		out = views[0]
		return nil
	})
	if err != nil {
		return item.ItemView{}, err
	}
	return out, nil
}

// ListByOwner returns the caller's items in id order.
func (uc *implUseCase) ListByOwner(ctx context.Context, sc model.Scope, input item.ListInput) (item.ListOutput, error) {
	if err := input.Paginate.Validate(); err != nil {
		return item.ListOutput{}, err
	}

	var out item.ListOutput
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.getUser(ctx, sc.UserID); err != nil {
			return err
		}

		items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
			OwnerID: sc.UserID,
			Limit:   input.Paginate.Limit(),
			Offset:  input.Paginate.Offset(),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.ListByOwner ListItems: %v", err)
			return err
		}

		out.Items, err = uc.buildViews(ctx, items, true)
		return err
	})
	if err != nil {
		return item.ListOutput{}, err
	}
	return out, nil
}

// Search looks for available items whose name or description contains text.
func (uc *implUseCase) Search(ctx context.Context, input item.SearchInput) (item.SearchOutput, error) {
	if err := input.Paginate.Validate(); err != nil {
		return item.SearchOutput{}, err
	}
	if strings.TrimSpace(input.Text) == "" {
		return item.SearchOutput{Items: []model.Item{}}, nil
	}

	var out item.SearchOutput
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		items, err := uc.repo.SearchItems(ctx, repo.SearchItemsOptions{
			Text:   input.Text,
			Limit:  input.Paginate.Limit(),
			Offset: input.Paginate.Offset(),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Search SearchItems: %v", err)
			return err
		}
		out.Items = items
		return nil
	})
	if err != nil {
		return item.SearchOutput{}, err
	}
	return out, nil
}

// buildViews attaches comments and, for owners, the last and next bookings.
func (uc *implUseCase) buildViews(ctx context.Context, items []model.Item, withBookings bool) ([]item.ItemView, error) {
	itemIDs := make([]int64, len(items))
	for i, it := range items {
		itemIDs[i] = it.ID
	}

	comments, err := uc.repo.ListComments(ctx, repo.ListCommentsOptions{ItemIDs: itemIDs})
	if err != nil {
		uc.l.Errorf(ctx, "uc.buildViews ListComments: %v", err)
		return nil, err
	}
	byItem := make(map[int64][]model.Comment, len(items))
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}

	views := make([]item.ItemView, len(items))
	for i, it := range items {
		views[i] = item.ItemView{Item: it, Comments: byItem[it.ID]}
		if views[i].Comments == nil {
			views[i].Comments = []model.Comment{}
		}
		if !withBookings {
			continue
		}

		if views[i].LastBooking, err = uc.bookings.LastBooking(ctx, it.ID); err != nil {
			uc.l.Errorf(ctx, "uc.buildViews LastBooking: %v", err)
			return nil, err
		}
		if views[i].NextBooking, err = uc.bookings.NextBooking(ctx, it.ID); err != nil {
			uc.l.Errorf(ctx, "uc.buildViews NextBooking: %v", err)
			return nil, err
		}
	}
	return views, nil
}
