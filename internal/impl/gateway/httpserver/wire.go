package impl_httpserver

// Wire format of the remote Pix service.

const (
	HealthPath    = "/health"
	TransfersPath = "/transfers"

	RequestIDHeader = "X-Request-ID"
)

type TransferRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Key         string `json:"key"`
}

type TransferResponse struct {
	Code string `json:"code"`
}
