package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/middleware"
	"shareit/pkg/log"
	"shareit/pkg/response"
	"shareit/pkg/sqldb/sqldbtest"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Kind      string          `json:"kind"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type testClient struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T, mask bool) testClient {
	t.Helper()

	srv, err := New(log.NewNop(), Config{
		Port:          8080,
		Mode:          gin.TestMode,
		DB:            sqldbtest.Open(t),
		MaskForbidden: mask,
		Middleware:    middleware.Config{},
	})
	require.NoError(t, err)
	return testClient{t: t, engine: srv.Handler()}
}

func (tc testClient) do(method, path string, caller int64, body string) (int, envelope) {
	tc.t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if caller > 0 {
		req.Header.Set(middleware.HeaderSharerUserID, fmt.Sprint(caller))
	}

	w := httptest.NewRecorder()
	tc.engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(tc.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (tc testClient) createID(path string, caller int64, body string) int64 {
	tc.t.Helper()

	code, env := tc.do(http.MethodPost, path, caller, body)
	require.Equal(tc.t, http.StatusOK, code, env.Message)

	var out struct {
		ID int64 `json:"id"`
	}
	require.NoError(tc.t, json.Unmarshal(env.Data, &out))
	return out.ID
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080})
	assert.EqualError(t, err, "database is required")

	_, err = New(nil, Config{Mode: gin.TestMode, Port: 8080, DB: sqldbtest.Open(t)})
	assert.EqualError(t, err, "logger is required")
}

func TestSystemRoutes(t *testing.T) {
	tc := newTestServer(t, true)

	for _, path := range []string{"/health", "/ready", "/live"} {
		code, env := tc.do(http.MethodGet, path, 0, "")
		assert.Equal(t, http.StatusOK, code, path)
		assert.Equal(t, 0, env.ErrorCode, path)
	}
}

func TestBookingLifecycle(t *testing.T) {
	tc := newTestServer(t, true)

	owner := tc.createID("/users", 0, `{"name":"Owner","email":"owner@example.com"}`)
	booker := tc.createID("/users", 0, `{"name":"Booker","email":"booker@example.com"}`)
	stranger := tc.createID("/users", 0, `{"name":"Stranger","email":"stranger@example.com"}`)

	itemID := tc.createID("/items", owner, `{"name":"Drill","description":"Cordless","available":true}`)

	start := time.Now().UTC().Add(time.Hour).Format(response.DateTimeFormat)
	end := time.Now().UTC().Add(2 * time.Hour).Format(response.DateTimeFormat)
	bookingID := tc.createID("/bookings", booker,
		fmt.Sprintf(`{"itemId":%d,"start":%q,"end":%q}`, itemID, start, end))

	t.Run("owner cannot book own item", func(t *testing.T) {
		code, env := tc.do(http.MethodPost, "/bookings", owner,
			fmt.Sprintf(`{"itemId":%d,"start":%q,"end":%q}`, itemID, start, end))
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "NOT_FOUND", env.Kind)
	})

	t.Run("stranger sees not found", func(t *testing.T) {
		code, _ := tc.do(http.MethodGet, fmt.Sprintf("/bookings/%d", bookingID), stranger, "")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("owner approves once", func(t *testing.T) {
		path := fmt.Sprintf("/bookings/%d?approved=true", bookingID)

		code, env := tc.do(http.MethodPatch, path, owner, "")
		require.Equal(t, http.StatusOK, code, env.Message)
		var b struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &b))
		assert.Equal(t, "APPROVED", b.Status)

		code, env = tc.do(http.MethodPatch, path, owner, "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "VALIDATION", env.Kind)
	})

	t.Run("booker list by state", func(t *testing.T) {
		code, env := tc.do(http.MethodGet, "/bookings?state=FUTURE", booker, "")
		require.Equal(t, http.StatusOK, code)
		var list []struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &list))
		require.Len(t, list, 1)
		assert.Equal(t, bookingID, list[0].ID)

		code, env = tc.do(http.MethodGet, "/bookings/owner?state=BOGUS", owner, "")
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "UNSUPPORTED_STATE", env.Kind)
		assert.Equal(t, "unknown state: BOGUS", env.Message)
	})

	t.Run("owner sees next booking", func(t *testing.T) {
		code, env := tc.do(http.MethodGet, fmt.Sprintf("/items/%d", itemID), owner, "")
		require.Equal(t, http.StatusOK, code)
		var view struct {
			NextBooking *struct {
				ID       int64 `json:"id"`
				BookerID int64 `json:"bookerId"`
			} `json:"nextBooking"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &view))
		require.NotNil(t, view.NextBooking)
		assert.Equal(t, booker, view.NextBooking.BookerID)
	})

	t.Run("comment needs finished booking", func(t *testing.T) {
		code, env := tc.do(http.MethodPost, fmt.Sprintf("/items/%d/comment", itemID), booker, `{"text":"Great"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "VALIDATION", env.Kind)
	})

	t.Run("referenced user cannot be deleted", func(t *testing.T) {
		code, env := tc.do(http.MethodDelete, fmt.Sprintf("/users/%d", owner), 0, "")
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "CONFLICT", env.Kind)
	})
}

func TestForbiddenUnmasked(t *testing.T) {
	tc := newTestServer(t, false)

	owner := tc.createID("/users", 0, `{"name":"Owner","email":"owner@example.com"}`)
	other := tc.createID("/users", 0, `{"name":"Other","email":"other@example.com"}`)
	itemID := tc.createID("/items", owner, `{"name":"Saw","description":"Hand saw","available":true}`)

	code, env := tc.do(http.MethodPatch, fmt.Sprintf("/items/%d", itemID), other, `{"name":"Mine"}`)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "FORBIDDEN", env.Kind)
}

func TestCallerHeaderRequired(t *testing.T) {
	tc := newTestServer(t, true)

	code, env := tc.do(http.MethodGet, "/bookings", 0, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION", env.Kind)

	code, _ = tc.do(http.MethodGet, "/items/search?text=", 0, "")
	assert.Equal(t, http.StatusOK, code)
}
