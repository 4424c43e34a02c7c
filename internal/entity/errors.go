package entity

import (
	"errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrClientNotFound      = errors.New("client not found")
	ErrEmailExists         = errors.New("email already exists")
	ErrInvoiceNumberExists = errors.New("invoice number already exists")
)
