package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usersvc/internal/db"
	"usersvc/internal/logging"
)

type fakePinger struct {
	err   error
	stats db.PoolStats
}

func (f fakePinger) Ping(context.Context) error { return f.err }
func (f fakePinger) Stats() db.PoolStats        { return f.stats }

func TestRoot(t *testing.T) {
	h := NewHandler(fakePinger{}, logging.NewNop())
	rec := httptest.NewRecorder()
	h.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Users API is running"}`, rec.Body.String())
}

func TestCheck(t *testing.T) {
	h := NewHandler(fakePinger{stats: db.PoolStats{MaxConns: 10, IdleConns: 2, TotalConns: 2}}, logging.NewNop())
	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Data   status `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "ok", body.Data.DB)
	assert.Equal(t, int32(10), body.Data.Pool.MaxConns)
}

func TestCheck_DatabaseDown(t *testing.T) {
	h := NewHandler(fakePinger{err: errors.New("dial tcp: connection refused")}, logging.NewNop())
	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"database unavailable"}`, rec.Body.String())
}
