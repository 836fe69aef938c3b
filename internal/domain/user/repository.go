package user

import (
	"context"

	"usersvc/internal/domain/common"
)

var (
	ErrNotFound   = common.NewNotFound("user")
	ErrEmailTaken = common.NewConflict("user", "email")
)

// Repository is the storage port for users. Implementations return
// ErrNotFound and ErrEmailTaken for the corresponding conditions.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, id int64, p Patch) (*User, error)
	Delete(ctx context.Context, id int64) error
}
