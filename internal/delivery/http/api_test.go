package delivery_http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	delivery_http "github.com/Danilo-Couto/simulador-de-pix/internal/delivery/http"
	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
	"github.com/Danilo-Couto/simulador-de-pix/internal/presentation/controller"
	"github.com/Danilo-Couto/simulador-de-pix/internal/presentation/messages"
)

type stubConfirmer struct {
	outcome domain_pix.Outcome
	amount  int64
	key     string
	calls   int
}

func (s *stubConfirmer) ConfirmPix(_ context.Context, amountCents int64, key string) controller.Result {
	s.calls++
	s.amount = amountCents
	s.key = key
	return controller.Result{Outcome: s.outcome, Message: messages.For(s.outcome), CorrelationID: "corr-1"}
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/pix", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAPI_StatusPerOutcome(t *testing.T) {
	cases := map[domain_pix.Outcome]int{
		domain_pix.OutcomeSuccess:             http.StatusOK,
		domain_pix.OutcomeNonPositiveAmount:   http.StatusUnprocessableEntity,
		domain_pix.OutcomeBlankKey:            http.StatusUnprocessableEntity,
		domain_pix.OutcomeInsufficientBalance: http.StatusUnprocessableEntity,
		domain_pix.OutcomeKeyNotFound:         http.StatusUnprocessableEntity,
		domain_pix.OutcomeInternalError:       http.StatusBadGateway,
		domain_pix.OutcomeConnectionError:     http.StatusServiceUnavailable,
	}

	for outcome, status := range cases {
		t.Run(string(outcome), func(t *testing.T) {
			stub := &stubConfirmer{outcome: outcome}
			h := delivery_http.NewAPIRouter(stub, zerolog.Nop())

			rec := post(t, h, `{"amount_cents":2000,"key":"abc123"}`)
			require.Equal(t, status, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(outcome), body["outcome"])
			assert.Equal(t, messages.For(outcome), body["message"])
			assert.Equal(t, "corr-1", body["correlation_id"])

			assert.Equal(t, int64(2000), stub.amount)
			assert.Equal(t, "abc123", stub.key)
		})
	}
}

func TestAPI_MalformedBody(t *testing.T) {
	stub := &stubConfirmer{outcome: domain_pix.OutcomeSuccess}
	h := delivery_http.NewAPIRouter(stub, zerolog.Nop())

	for _, body := range []string{`{`, `{"amount_cents":"ten"}`, `{"amount":1}`} {
		rec := post(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Zero(t, stub.calls)
}

func TestAPI_Health(t *testing.T) {
	h := delivery_http.NewAPIRouter(&stubConfirmer{}, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
