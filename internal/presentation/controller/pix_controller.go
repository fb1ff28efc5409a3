package controller

import (
	"context"

	"github.com/rs/zerolog"

	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
	port_platform "github.com/Danilo-Couto/simulador-de-pix/internal/ports/gateway/platform"
	port_pix "github.com/Danilo-Couto/simulador-de-pix/internal/ports/usecase/pix"
	"github.com/Danilo-Couto/simulador-de-pix/internal/presentation/messages"
)

type Result struct {
	Outcome       domain_pix.Outcome
	Message       string
	CorrelationID string
}

// PixController turns a Pix confirmation from the user into a message.
type PixController struct {
	usecase port_pix.ExecutePixUseCase
	ids     port_platform.IDGenerator
	log     zerolog.Logger
}

func NewPixController(usecase port_pix.ExecutePixUseCase, ids port_platform.IDGenerator, log zerolog.Logger) *PixController {
	return &PixController{
		usecase: usecase,
		ids:     ids,
		log:     log.With().Str("component", "pix_controller").Logger(),
	}
}

func (c *PixController) ConfirmPix(ctx context.Context, amountCents int64, key string) Result {
	correlationID := c.ids.NewUUID().String()

	out, err := c.usecase.Execute(ctx, port_pix.ExecutePixInput{AmountCents: amountCents, Key: key})
	outcome := out.Outcome
	if outcome == "" {
		outcome = domain_pix.OutcomeOf(err)
	}

	evt := c.log.Info()
	if err != nil {
		evt = c.log.Warn().Err(err).Bool("retryable", outcome.Retryable())
	}
	evt.Str("correlation_id", correlationID).
		Int64("amount_cents", amountCents).
		Str("outcome", string(outcome)).
		Str("code", string(out.Code)).
		Msg("pix confirmation processed")

	return Result{
		Outcome:       outcome,
		Message:       messages.For(outcome),
		CorrelationID: correlationID,
	}
}
