package user

import (
	"time"

	dom "usersvc/internal/domain/user"
)

type UserDto struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type CreateUserInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

type UpdateUserInput struct {
	ID    int64
	Name  *string
	Email *string
}

func toDTO(u *dom.User) *UserDto {
	if u == nil {
		return nil
	}
	return &UserDto{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toDTOs(list []dom.User) []UserDto {
	res := make([]UserDto, 0, len(list))
	for i := range list {
		res = append(res, *toDTO(&list[i]))
	}
	return res
}
