package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seen struct {
	method string
	path   string
	body   string
}

func newServer(t *testing.T, status int, resp string) (*httptest.Server, *seen) {
	t.Helper()
	s := &seen{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*s = seen{method: r.Method, path: r.URL.Path, body: string(b)}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(srv.Close)
	return srv, s
}

func TestRun_Commands(t *testing.T) {
	user := `{"status":"success","data":{"id":1,"name":"A","email":"a@example.com"}}`

	tests := []struct {
		name    string
		args    []string
		resp    string
		wantReq seen
		wantOut string
	}{
		{
			name:    "list",
			args:    []string{"list"},
			resp:    `{"status":"success","data":[]}`,
			wantReq: seen{method: http.MethodGet, path: "/users"},
			wantOut: "[]\n",
		},
		{
			name:    "get",
			args:    []string{"get", "1"},
			resp:    user,
			wantReq: seen{method: http.MethodGet, path: "/users/1"},
		},
		{
			name:    "create",
			args:    []string{"create", "A", "a@example.com"},
			resp:    user,
			wantReq: seen{method: http.MethodPost, path: "/users", body: `{"name":"A","email":"a@example.com"}`},
		},
		{
			name:    "update email only",
			args:    []string{"update", "1", "-email", "b@example.com"},
			resp:    user,
			wantReq: seen{method: http.MethodPut, path: "/users/1", body: `{"email":"b@example.com"}`},
		},
		{
			name:    "delete",
			args:    []string{"delete", "1"},
			resp:    `{"status":"success","message":"User deleted successfully"}`,
			wantReq: seen{method: http.MethodDelete, path: "/users/1"},
			wantOut: "User deleted successfully\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, got := newServer(t, http.StatusOK, tt.resp)

			var out bytes.Buffer
			args := append([]string{"-addr", srv.URL}, tt.args...)
			require.NoError(t, run(context.Background(), args, &out))

			assert.Equal(t, tt.wantReq.method, got.method)
			assert.Equal(t, tt.wantReq.path, got.path)
			if tt.wantReq.body != "" {
				assert.JSONEq(t, tt.wantReq.body, got.body)
			}
			if tt.wantOut != "" {
				assert.Equal(t, tt.wantOut, out.String())
			} else {
				var u map[string]any
				require.NoError(t, json.Unmarshal(out.Bytes(), &u))
				assert.Equal(t, "a@example.com", u["email"])
			}
		})
	}
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"bogus"},
		{"get"},
		{"create", "only-name"},
		{"update"},
		{"update", "1", "extra"},
	} {
		err := run(context.Background(), args, io.Discard)
		assert.ErrorIs(t, err, errUsage, "%v", args)
	}
}

func TestRun_ServerError(t *testing.T) {
	srv, _ := newServer(t, http.StatusNotFound, `{"status":"error","message":"User not found"}`)

	err := run(context.Background(), []string{"-addr", srv.URL, "get", "9"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not found")
}
