package domain_pix

import "errors"

type Outcome string

const (
	OutcomeSuccess             Outcome = "SUCCESS"
	OutcomeNonPositiveAmount   Outcome = "NON_POSITIVE_AMOUNT"
	OutcomeBlankKey            Outcome = "BLANK_KEY"
	OutcomeInsufficientBalance Outcome = "INSUFFICIENT_BALANCE"
	OutcomeKeyNotFound         Outcome = "KEY_NOT_FOUND"
	OutcomeInternalError       Outcome = "INTERNAL_ERROR"
	OutcomeConnectionError     Outcome = "CONNECTION_ERROR"
)

// Outcomes lists every outcome in a stable order.
func Outcomes() []Outcome {
	return []Outcome{
		OutcomeSuccess,
		OutcomeNonPositiveAmount,
		OutcomeBlankKey,
		OutcomeInsufficientBalance,
		OutcomeKeyNotFound,
		OutcomeInternalError,
		OutcomeConnectionError,
	}
}

// OutcomeOf classifies an error returned by a Pix execution. A nil error is
// a success; an error outside the pix taxonomy is reported as internal.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrConnection):
		return OutcomeConnectionError
	case errors.Is(err, ErrNonPositiveAmount):
		return OutcomeNonPositiveAmount
	case errors.Is(err, ErrBlankKey):
		return OutcomeBlankKey
	case errors.Is(err, ErrInsufficientBalance):
		return OutcomeInsufficientBalance
	case errors.Is(err, ErrKeyNotFound):
		return OutcomeKeyNotFound
	default:
		return OutcomeInternalError
	}
}

func (o Outcome) IsSuccess() bool { return o == OutcomeSuccess }

// Retryable reports whether repeating the same request could succeed.
// Only transport failures qualify; every other failure is final.
func (o Outcome) Retryable() bool { return o == OutcomeConnectionError }
