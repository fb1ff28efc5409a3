package impl_pix

import (
	"context"
	"fmt"

	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
	port_server "github.com/Danilo-Couto/simulador-de-pix/internal/ports/gateway/server"
	port_pix "github.com/Danilo-Couto/simulador-de-pix/internal/ports/usecase/pix"
)

type ExecutePixUsecaseImpl struct {
	server port_server.ConnectionProvider
}

func NewExecutePixUsecaseImpl(server port_server.ConnectionProvider) *ExecutePixUsecaseImpl {
	return &ExecutePixUsecaseImpl{server: server}
}

// Execute validates the input, performs exactly one send over a freshly
// opened connection and maps the response code. The connection is closed on
// every path once opened; close errors never change the outcome.
func (u *ExecutePixUsecaseImpl) Execute(ctx context.Context, in port_pix.ExecutePixInput) (port_pix.ExecutePixOutput, error) {
	req, err := domain_pix.NewRequest(in.AmountCents, in.Key)
	if err != nil {
		return failed(err)
	}

	code, err := u.send(ctx, req)
	if err != nil {
		return failed(fmt.Errorf("%w: %w", domain_pix.ErrConnection, err))
	}

	codeErr := code.Err()
	return port_pix.ExecutePixOutput{
		Outcome: domain_pix.OutcomeOf(codeErr),
		Code:    code,
	}, codeErr
}

func (u *ExecutePixUsecaseImpl) send(ctx context.Context, req domain_pix.Request) (domain_pix.ResponseCode, error) {
	conn, err := u.server.OpenConnection(ctx)
	if err != nil {
		return "", err
	}
	if conn == nil {
		return "", ErrNoConnection
	}
	defer func() { _ = conn.Close() }()

	return conn.SendPix(ctx, req.AmountCents(), req.Key())
}

func failed(err error) (port_pix.ExecutePixOutput, error) {
	return port_pix.ExecutePixOutput{Outcome: domain_pix.OutcomeOf(err)}, err
}
