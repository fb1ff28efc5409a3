package port_server

import (
	"context"

	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
)

// Connection is a short-lived link to the remote Pix service. It carries a
// single SendPix and is closed once by whoever opened it.
type Connection interface {
	SendPix(ctx context.Context, amountCents int64, key string) (domain_pix.ResponseCode, error)
	Close() error
}

type ConnectionProvider interface {
	OpenConnection(ctx context.Context) (Connection, error)
}
