package domain_pix

// ResponseCode is the answer of the remote Pix service for one dispatched request.
type ResponseCode string

const (
	CodeSuccess             ResponseCode = "SUCCESS"
	CodeInsufficientBalance ResponseCode = "INSUFFICIENT_BALANCE"
	CodeKeyNotFound         ResponseCode = "KEY_NOT_FOUND"
)

// Err maps the code to its business outcome. Codes other than the known
// ones collapse into ErrInternal.
func (c ResponseCode) Err() error {
	switch c {
	case CodeSuccess:
		return nil
	case CodeInsufficientBalance:
		return ErrInsufficientBalance
	case CodeKeyNotFound:
		return ErrKeyNotFound
	default:
		return ErrInternal
	}
}
