package user

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appuser "usersvc/internal/app/user"
	"usersvc/internal/http/requests"
	"usersvc/internal/http/responses"
	"usersvc/internal/logging"
)

const (
	msgInvalidJSON  = "Invalid JSON payload"
	msgUserNotFound = "User not found"
	msgEmailExists  = "Email already exists"
	msgUserDeleted  = "User deleted successfully"
)

type Handler struct {
	service appuser.Service
	logger  logging.Logger
}

func NewHandler(service appuser.Service, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "user_http_handler"),
	}
}

// List GET /users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	responses.WriteData(w, http.StatusOK, users)
}

// Create POST /users
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateUserRequest
	if err := requests.DecodeJSON(w, r, &input); err != nil {
		h.logger.Debug("invalid create user payload", "error", err)
		responses.WriteBadRequest(w, msgInvalidJSON)
		return
	}

	dto, err := h.service.Create(r.Context(), appuser.CreateUserInput{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	responses.WriteData(w, http.StatusCreated, dto)
}

// GetByID GET /users/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		responses.WriteError(w, http.StatusNotFound, msgUserNotFound)
		return
	}

	dto, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	responses.WriteData(w, http.StatusOK, dto)
}

// Update PUT /users/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var input UpdateUserRequest
	if err := requests.DecodeJSON(w, r, &input); err != nil {
		h.logger.Debug("invalid update user payload", "error", err)
		responses.WriteBadRequest(w, msgInvalidJSON)
		return
	}

	// An unparsable id becomes 0, which never names a stored user. The
	// service still rejects an empty patch before looking the id up.
	id, _ := userID(r)

	dto, err := h.service.Update(r.Context(), appuser.UpdateUserInput{
		ID:    id,
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	responses.WriteData(w, http.StatusOK, dto)
}

// Delete DELETE /users/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		responses.WriteError(w, http.StatusNotFound, msgUserNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	responses.WriteMessage(w, http.StatusOK, msgUserDeleted)
}

// userID parses the {id} path segment. Anything that is not a positive
// integer cannot name a stored user.
func userID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case appuser.IsInvalidInput(err):
		responses.WriteBadRequest(w, err.Error())
	case appuser.IsNotFound(err):
		responses.WriteError(w, http.StatusNotFound, msgUserNotFound)
	case appuser.IsConflict(err):
		responses.WriteError(w, http.StatusConflict, msgEmailExists)
	default:
		h.logger.Error("user request failed", "error", err)
		responses.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
