package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	itemRepo "shareit/internal/item/repository"
	itemStore "shareit/internal/item/repository/sqlstore"
	"shareit/internal/model"
	"shareit/internal/request"
	requestStore "shareit/internal/request/repository/sqlstore"
	userRepo "shareit/internal/user/repository"
	userStore "shareit/internal/user/repository/sqlstore"
	"shareit/pkg/log"
	"shareit/pkg/paginator"
	"shareit/pkg/sqldb/sqldbtest"
)

type fixture struct {
	uc    *implUseCase
	items itemRepo.ItemRepository
	clock time.Time

	ann, bob model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db := sqldbtest.Open(t)
	l := log.NewNop()
	users := userStore.New(db, l)
	items := itemStore.New(db, l)

	f := &fixture{items: items, clock: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
	f.uc = New(requestStore.New(db, l), items, users, db, l)
	f.uc.now = func() time.Time {
		f.clock = f.clock.Add(time.Minute)
		return f.clock
	}

	var err error
	f.ann, err = users.CreateUser(ctx, userRepo.CreateUserOptions{Name: "Ann", Email: "ann@example.com"})
	require.NoError(t, err)
	f.bob, err = users.CreateUser(ctx, userRepo.CreateUserOptions{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)
	return f
}

func (f *fixture) post(t *testing.T, u model.User, description string) request.RequestView {
	t.Helper()
	v, err := f.uc.Create(context.Background(), model.Scope{UserID: u.ID}, request.CreateInput{Description: description})
	require.NoError(t, err)
	return v
}

func requestIDs(out request.ListOutput) []int64 {
	ids := make([]int64, len(out.Requests))
	for i, v := range out.Requests {
		ids[i] = v.Request.ID
	}
	return ids
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	v := f.post(t, f.ann, "Need a ladder")
	assert.NotZero(t, v.Request.ID)
	assert.Equal(t, f.ann.ID, v.Request.RequestorID)
	assert.NotNil(t, v.Items)

	_, err := f.uc.Create(ctx, model.Scope{UserID: f.ann.ID}, request.CreateInput{Description: "  "})
	assert.ErrorIs(t, err, request.ErrBlankDescription)

	_, err = f.uc.Create(ctx, model.Scope{UserID: 999}, request.CreateInput{Description: "x"})
	assert.ErrorIs(t, err, request.ErrUserNotFound)
}

func TestListOwnAndOthers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first := f.post(t, f.ann, "Need a ladder")
	second := f.post(t, f.ann, "Need a tent")
	bobs := f.post(t, f.bob, "Need a kayak")

	_, err := f.items.CreateItem(ctx, itemRepo.CreateItemOptions{
		Name: "Ladder", Description: "Tall", Available: true, OwnerID: f.bob.ID, RequestID: &first.Request.ID,
	})
	require.NoError(t, err)

	own, err := f.uc.ListOwn(ctx, model.Scope{UserID: f.ann.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{second.Request.ID, first.Request.ID}, requestIDs(own))
	assert.Empty(t, own.Requests[0].Items)
	require.Len(t, own.Requests[1].Items, 1)
	assert.Equal(t, "Ladder", own.Requests[1].Items[0].Name)

	others, err := f.uc.ListOthers(ctx, model.Scope{UserID: f.bob.ID}, request.ListOthersInput{
		Paginate: paginator.PaginateQuery{From: 0, Size: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{second.Request.ID, first.Request.ID}, requestIDs(others))

	others, err = f.uc.ListOthers(ctx, model.Scope{UserID: f.ann.ID}, request.ListOthersInput{
		Paginate: paginator.PaginateQuery{From: 0, Size: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{bobs.Request.ID}, requestIDs(others))

	paged, err := f.uc.ListOthers(ctx, model.Scope{UserID: f.bob.ID}, request.ListOthersInput{
		Paginate: paginator.PaginateQuery{From: 1, Size: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{first.Request.ID}, requestIDs(paged))

	_, err = f.uc.ListOthers(ctx, model.Scope{UserID: f.bob.ID}, request.ListOthersInput{
		Paginate: paginator.PaginateQuery{From: -1, Size: 1},
	})
	assert.ErrorIs(t, err, paginator.ErrInvalidFrom)
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	v := f.post(t, f.ann, "Need a ladder")

	got, err := f.uc.Detail(ctx, model.Scope{UserID: f.bob.ID}, v.Request.ID)
	require.NoError(t, err)
	assert.Equal(t, v.Request.Description, got.Request.Description)
	assert.True(t, got.Request.CreatedAt.Equal(v.Request.CreatedAt))

	_, err = f.uc.Detail(ctx, model.Scope{UserID: f.bob.ID}, 999)
	assert.ErrorIs(t, err, request.ErrRequestNotFound)

	_, err = f.uc.Detail(ctx, model.Scope{UserID: 999}, v.Request.ID)
	assert.ErrorIs(t, err, request.ErrUserNotFound)
}
