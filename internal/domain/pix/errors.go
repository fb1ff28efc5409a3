package domain_pix

import "errors"

var (
	ErrNonPositiveAmount = errors.New("pix: amount_cents must be > 0")
	ErrBlankKey          = errors.New("pix: key must not be blank")

	ErrInsufficientBalance = errors.New("pix: insufficient balance")
	ErrKeyNotFound         = errors.New("pix: key not found")
	ErrInternal            = errors.New("pix: unrecognized response code")

	ErrConnection = errors.New("pix: connection error")
)
