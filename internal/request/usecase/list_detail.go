package usecase

import (
	"context"
	"fmt"

	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
)

// ListOwn lists the caller's requests, newest first.
func (uc *implUseCase) ListOwn(ctx context.Context, sc model.Scope) (request.ListOutput, error) {
	return uc.list(ctx, sc, repo.ListRequestsOptions{RequestorID: sc.UserID})
}

// ListOthers pages through requests made by everyone except the caller.
func (uc *implUseCase) ListOthers(ctx context.Context, sc model.Scope, input request.ListOthersInput) (request.ListOutput, error) {
	if err := input.Paginate.Validate(); err != nil {
		return request.ListOutput{}, err
	}
	return uc.list(ctx, sc, repo.ListRequestsOptions{
		ExcludeRequestorID: sc.UserID,
		Limit:              input.Paginate.Limit(),
		Offset:             input.Paginate.Offset(),
	})
}

// Detail shows any request to any registered user.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (request.RequestView, error) {
	var out request.RequestView
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.checkUser(ctx, sc.UserID); err != nil {
			return err
		}

		req, err := uc.repo.GetOneRequest(ctx, repo.GetOneRequestOptions{ID: id})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Detail GetOneRequest: %v", err)
			return err
		}
		if req.ID == 0 {
			return fmt.Errorf("%w: %d", request.ErrRequestNotFound, id)
		}

		views, err := uc.attachItems(ctx, []model.ItemRequest{req})
		if err != nil {
			return err
		}
		out = views[0]
		return nil
	})
	if err != nil {
		return request.RequestView{}, err
	}
	return out, nil
}

func (uc *implUseCase) list(ctx context.Context, sc model.Scope, opt repo.ListRequestsOptions) (request.ListOutput, error) {
	var out request.ListOutput
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.checkUser(ctx, sc.UserID); err != nil {
			return err
		}

		reqs, err := uc.repo.ListRequests(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "uc.list ListRequests: %v", err)
			return err
		}

		out.Requests, err = uc.attachItems(ctx, reqs)
		return err
	})
	if err != nil {
		return request.ListOutput{}, err
	}
	return out, nil
}

// attachItems loads the items answering each request in one query.
func (uc *implUseCase) attachItems(ctx context.Context, reqs []model.ItemRequest) ([]request.RequestView, error) {
	reqIDs := make([]int64, len(reqs))
	for i, r := range reqs {
		reqIDs[i] = r.ID
	}

	items, err := uc.items.ListItems(ctx, itemRepo.ListItemsOptions{RequestIDs: reqIDs})
	if err != nil {
		uc.l.Errorf(ctx, "uc.attachItems ListItems: %v", err)
		return nil, err
	}
	byRequest := make(map[int64][]model.Item, len(reqs))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}

	views := make([]request.RequestView, len(reqs))
	for i, r := range reqs {
		views[i] = request.RequestView{Request: r, Items: byRequest[r.ID]}
		if views[i].Items == nil {
			views[i].Items = []model.Item{}
		}
	}
	return views, nil
}

func (uc *implUseCase) checkUser(ctx context.Context, id int64) error {
	u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkUser GetOneUser: %v", err)
		return err
	}
	if u.ID == 0 {
		return fmt.Errorf("%w: %d", request.ErrUserNotFound, id)
	}
	return nil
}
