package domain_pix_test

import (
	"errors"
	"fmt"
	"testing"

	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
)

func TestResponseCodeErr(t *testing.T) {
	cases := []struct {
		code domain_pix.ResponseCode
		want error
	}{
		{domain_pix.CodeSuccess, nil},
		{domain_pix.CodeInsufficientBalance, domain_pix.ErrInsufficientBalance},
		{domain_pix.CodeKeyNotFound, domain_pix.ErrKeyNotFound},
		{"XYZ", domain_pix.ErrInternal},
		{"", domain_pix.ErrInternal},
		{"success", domain_pix.ErrInternal},
	}

	for _, c := range cases {
		if got := c.code.Err(); !errors.Is(got, c.want) || (c.want == nil && got != nil) {
			t.Errorf("ResponseCode(%q).Err() = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestOutcomeOf(t *testing.T) {
	transport := errors.New("dial tcp: connection refused")

	cases := []struct {
		name string
		err  error
		want domain_pix.Outcome
	}{
		{"nil", nil, domain_pix.OutcomeSuccess},
		{"non positive", domain_pix.ErrNonPositiveAmount, domain_pix.OutcomeNonPositiveAmount},
		{"blank key", domain_pix.ErrBlankKey, domain_pix.OutcomeBlankKey},
		{"insufficient", domain_pix.ErrInsufficientBalance, domain_pix.OutcomeInsufficientBalance},
		{"key not found", domain_pix.ErrKeyNotFound, domain_pix.OutcomeKeyNotFound},
		{"internal", domain_pix.ErrInternal, domain_pix.OutcomeInternalError},
		{"wrapped connection", fmt.Errorf("%w: %w", domain_pix.ErrConnection, transport), domain_pix.OutcomeConnectionError},
		{"foreign error", transport, domain_pix.OutcomeInternalError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := domain_pix.OutcomeOf(c.err); got != c.want {
				t.Fatalf("expected %s, got %s", c.want, got)
			}
		})
	}
}

func TestOutcomeRetryable(t *testing.T) {
	for _, o := range domain_pix.Outcomes() {
		want := o == domain_pix.OutcomeConnectionError
		if o.Retryable() != want {
			t.Errorf("%s.Retryable() = %v, want %v", o, o.Retryable(), want)
		}
	}

	if !domain_pix.OutcomeSuccess.IsSuccess() {
		t.Error("expected SUCCESS to report success")
	}
}
