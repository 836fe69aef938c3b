// Package userapi is a typed client for the users REST API.
package userapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"usersvc/internal/httpclient"
	"usersvc/internal/logging"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest leaves nil fields out of the body.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// APIError is an error envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

type envelope[T any] struct {
	Status  string `json:"status"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

type Client struct {
	http   *httpclient.Client
	logger logging.Logger
}

func New(baseURL string, timeout time.Duration, logger logging.Logger) (*Client, error) {
	httpCli, err := httpclient.New(baseURL, timeout, logger.With("component", "users_http"))
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   httpCli,
		logger: logger,
	}, nil
}

func (c *Client) List(ctx context.Context) ([]User, error) {
	var res envelope[[]User]
	if err := c.http.GetJSON(ctx, "/users", nil, &res); err != nil {
		return nil, apiError(err)
	}
	return res.Data, nil
}

func (c *Client) Get(ctx context.Context, id int64) (User, error) {
	var res envelope[User]
	if err := c.http.GetJSON(ctx, userPath(id), nil, &res); err != nil {
		return User{}, apiError(err)
	}
	return res.Data, nil
}

func (c *Client) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	var res envelope[User]
	if err := c.http.PostJSON(ctx, "/users", req, &res); err != nil {
		return User{}, apiError(err)
	}
	return res.Data, nil
}

func (c *Client) Update(ctx context.Context, id int64, req UpdateUserRequest) (User, error) {
	var res envelope[User]
	if err := c.http.PutJSON(ctx, userPath(id), req, &res); err != nil {
		return User{}, apiError(err)
	}
	return res.Data, nil
}

// Delete returns the server's confirmation message.
func (c *Client) Delete(ctx context.Context, id int64) (string, error) {
	var res envelope[json.RawMessage]
	if err := c.http.DeleteJSON(ctx, userPath(id), &res); err != nil {
		return "", apiError(err)
	}
	return res.Message, nil
}

func userPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10)
}

// apiError lifts the envelope message out of an HTTP error body.
func apiError(err error) error {
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	var env envelope[json.RawMessage]
	if json.Unmarshal(httpErr.Body, &env) != nil || env.Message == "" {
		return err
	}
	return &APIError{StatusCode: httpErr.StatusCode, Message: env.Message}
}
