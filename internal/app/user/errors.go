package user

import (
	domcommon "usersvc/internal/domain/common"
)

const (
	msgCreateFieldsRequired = "Name and email are required"
	msgUpdateFieldRequired  = "At least one of name or email must be provided"
)

func IsNotFound(err error) bool {
	return domcommon.IsNotFound(err)
}

func IsConflict(err error) bool {
	return domcommon.IsConflict(err)
}

func IsInvalidInput(err error) bool {
	return domcommon.IsInvalidInput(err)
}
