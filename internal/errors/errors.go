package gerr

import "errors"

var (
	ErrOrderFactNotFound      = errors.New("order fact not found")
	ErrOrderFactAlreadyExists = errors.New("order fact already exists")
	ErrInvalidInput           = errors.New("invalid input")
)
