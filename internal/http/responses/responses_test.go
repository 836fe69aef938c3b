package responses

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopes(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
		body   string
	}{
		{
			name:   "data",
			write:  func(w http.ResponseWriter) { WriteData(w, http.StatusCreated, map[string]int{"id": 1}) },
			status: http.StatusCreated,
			body:   `{"status":"success","data":{"id":1}}`,
		},
		{
			name:   "empty list stays a list",
			write:  func(w http.ResponseWriter) { WriteData(w, http.StatusOK, []int{}) },
			status: http.StatusOK,
			body:   `{"status":"success","data":[]}`,
		},
		{
			name:   "message",
			write:  func(w http.ResponseWriter) { WriteMessage(w, http.StatusOK, "done") },
			status: http.StatusOK,
			body:   `{"status":"success","message":"done"}`,
		},
		{
			name:   "error",
			write:  func(w http.ResponseWriter) { WriteError(w, http.StatusConflict, "Email already exists") },
			status: http.StatusConflict,
			body:   `{"status":"error","message":"Email already exists"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
