package domain_pix

import "strings"

type Request struct {
	amountCents int64
	key         string
}

// NewRequest checks the amount before the key; the first failing rule wins.
func NewRequest(amountCents int64, key string) (Request, error) {
	if amountCents <= 0 {
		return Request{}, ErrNonPositiveAmount
	}

	if strings.TrimSpace(key) == "" {
		return Request{}, ErrBlankKey
	}

	return Request{amountCents: amountCents, key: key}, nil
}

func (r Request) AmountCents() int64 { return r.amountCents }

func (r Request) Key() string { return r.key }
