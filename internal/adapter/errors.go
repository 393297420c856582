package adapter

import "errors"

var (
	ErrEmptyServerAddress   = errors.New("server address is empty")
	ErrInvalidServerAddress = errors.New("invalid server address")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
)
