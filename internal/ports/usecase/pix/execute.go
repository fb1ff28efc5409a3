package port_pix

import (
	"context"

	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
)

type ExecutePixInput struct {
	AmountCents int64
	Key         string
}

type ExecutePixOutput struct {
	Outcome domain_pix.Outcome
	Code    domain_pix.ResponseCode
}

type ExecutePixUseCase interface {
	Execute(ctx context.Context, input ExecutePixInput) (ExecutePixOutput, error)
}
