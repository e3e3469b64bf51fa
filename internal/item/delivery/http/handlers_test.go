package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/item"
	"shareit/internal/middleware"
	"shareit/internal/model"
	"shareit/pkg/log"
)

type fakeUseCase struct {
	item.UseCase

	search    item.SearchInput
	detail    item.ItemView
	updateErr error
}

func (f *fakeUseCase) Detail(context.Context, model.Scope, int64) (item.ItemView, error) {
	return f.detail, nil
}

func (f *fakeUseCase) Update(context.Context, model.Scope, item.UpdateInput) (model.Item, error) {
	return model.Item{}, f.updateErr
}

func (f *fakeUseCase) Search(_ context.Context, in item.SearchInput) (item.SearchOutput, error) {
	f.search = in
	return item.SearchOutput{Items: []model.Item{{ID: 1, Name: "Drill", Available: true}}}, nil
}

func (f *fakeUseCase) CreateComment(context.Context, model.Scope, item.CommentInput) (model.Comment, error) {
	return model.Comment{}, fmt.Errorf("%w: user 2, item 1", item.ErrNoCompletedBooking)
}

func newTestRouter(uc item.UseCase, mask bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), New(log.NewNop(), uc, mask), middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

func serve(r *gin.Engine, method, path, body string, caller int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if caller != 0 {
		req.Header.Set(middleware.HeaderSharerUserID, fmt.Sprint(caller))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchIsPublic(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc, true)

	w := serve(r, http.MethodGet, "/items/search?text=drill&from=0&size=5", "", 0)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "drill", uc.search.Text)
	assert.Equal(t, 5, uc.search.Paginate.Size)
	assert.NotContains(t, w.Body.String(), "comments")
}

func TestDetailProjection(t *testing.T) {
	uc := &fakeUseCase{detail: item.ItemView{
		Item:        model.Item{ID: 1, Name: "Drill", Description: "Cordless", Available: true},
		LastBooking: &model.Booking{ID: 4, Booker: model.User{ID: 9}},
		Comments: []model.Comment{
			{ID: 2, Text: "Great", AuthorName: "Ann", CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		},
	}}
	r := newTestRouter(uc, true)

	w := serve(r, http.MethodGet, "/items/1", "", 1)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"lastBooking":{"id":4,"bookerId":9}`)
	assert.Contains(t, body, `"nextBooking":null`)
	assert.Contains(t, body, `"comments":[{"id":2,"text":"Great","authorName":"Ann","created":"2026-01-02T03:04:05"}]`)
	assert.NotContains(t, body, "requestId")

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/items/1", "", 0).Code)
}

func TestUpdateNotOwner(t *testing.T) {
	err := fmt.Errorf("%w: item 1", item.ErrNotOwner)

	w := serve(newTestRouter(&fakeUseCase{updateErr: err}, true), http.MethodPatch, "/items/1", `{"name":"x"}`, 2)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "item not found")

	w = serve(newTestRouter(&fakeUseCase{updateErr: err}, false), http.MethodPatch, "/items/1", `{"name":"x"}`, 2)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCommentWithoutBooking(t *testing.T) {
	r := newTestRouter(&fakeUseCase{}, true)

	w := serve(r, http.MethodPost, "/items/1/comment", `{"text":"Great"}`, 2)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"VALIDATION"`)
	assert.Contains(t, w.Body.String(), "booking not found")
}
