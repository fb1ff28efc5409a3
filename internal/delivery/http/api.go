package delivery_http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
	"github.com/Danilo-Couto/simulador-de-pix/internal/presentation/controller"
)

type PixConfirmer interface {
	ConfirmPix(ctx context.Context, amountCents int64, key string) controller.Result
}

type confirmRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Key         string `json:"key"`
}

type confirmResponse struct {
	Outcome       domain_pix.Outcome `json:"outcome"`
	Message       string             `json:"message"`
	CorrelationID string             `json:"correlation_id"`
}

// NewAPIRouter exposes Pix confirmation over HTTP.
func NewAPIRouter(pix PixConfirmer, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/health", health)
	r.Post("/pix", func(w http.ResponseWriter, r *http.Request) {
		var in confirmRequest
		if !decodeJSON(w, r, &in) {
			return
		}

		res := pix.ConfirmPix(r.Context(), in.AmountCents, in.Key)
		writeJSON(w, statusFor(res.Outcome), confirmResponse{
			Outcome:       res.Outcome,
			Message:       res.Message,
			CorrelationID: res.CorrelationID,
		})
	})

	return r
}

func statusFor(o domain_pix.Outcome) int {
	switch o {
	case domain_pix.OutcomeSuccess:
		return http.StatusOK
	case domain_pix.OutcomeConnectionError:
		return http.StatusServiceUnavailable
	case domain_pix.OutcomeInternalError:
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}
