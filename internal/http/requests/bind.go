package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

// ErrInvalidJSON is returned for bodies that are not a single JSON object
// matching the target type.
var ErrInvalidJSON = errors.New("invalid JSON payload")

// DecodeJSON reads exactly one JSON value from the body into dst.
// Fields dst does not declare are ignored; trailing data and oversize
// bodies are rejected.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request, dst *T) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}
	return nil
}
