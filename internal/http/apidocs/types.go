package apidocs

// UserResponse represents a user for responses.
type UserResponse struct {
	ID        int64  `json:"id" example:"1"`
	Name      string `json:"name" example:"Jane Doe"`
	Email     string `json:"email" example:"jane@example.com"`
	CreatedAt string `json:"created_at,omitempty" example:"2024-01-01T00:00:00Z"`
}

// UsersListResponse wraps a list.
type UsersListResponse struct {
	Status string         `json:"status" example:"success"`
	Data   []UserResponse `json:"data"`
}

// UserItemResponse wraps one item.
type UserItemResponse struct {
	Status string       `json:"status" example:"success"`
	Data   UserResponse `json:"data"`
}

// MessageResponse is returned by root, delete and every error.
type MessageResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"User not found"`
}

// HealthResponse is the shape of /health success.
type HealthResponse struct {
	Status string `json:"status" example:"success"`
	Data   struct {
		DB   string `json:"db" example:"ok"`
		Pool struct {
			MaxConns      int32 `json:"max_conns" example:"10"`
			TotalConns    int32 `json:"total_conns" example:"2"`
			AcquiredConns int32 `json:"acquired_conns" example:"0"`
			IdleConns     int32 `json:"idle_conns" example:"2"`
		} `json:"pool"`
	} `json:"data"`
}
