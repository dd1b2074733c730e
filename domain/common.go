package domain

import "errors"

const (
	RoleUser  = "user"
	RoleStaff = "staff"
)

var (
	MessageFailedBodyRequest  = "failed to process body request"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)
