package delivery_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
	impl_httpserver "github.com/Danilo-Couto/simulador-de-pix/internal/impl/gateway/httpserver"
)

// NewRemoteRouter simulates the remote Pix service: every well-formed
// transfer is answered with code.
func NewRemoteRouter(code domain_pix.ResponseCode, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get(impl_httpserver.HealthPath, health)
	r.Post(impl_httpserver.TransfersPath, func(w http.ResponseWriter, r *http.Request) {
		var in impl_httpserver.TransferRequest
		if !decodeJSON(w, r, &in) {
			return
		}

		log.Info().
			Str("request_id", r.Header.Get(impl_httpserver.RequestIDHeader)).
			Int64("amount_cents", in.AmountCents).
			Str("code", string(code)).
			Msg("transfer answered")

		writeJSON(w, http.StatusOK, impl_httpserver.TransferResponse{Code: string(code)})
	})

	return r
}
