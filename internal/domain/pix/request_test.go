package domain_pix_test

import (
	"errors"
	"testing"

	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
)

func TestNewRequest(t *testing.T) {
	t.Run("creates request with valid parameters", func(t *testing.T) {
		req, err := domain_pix.NewRequest(2000, "abc123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if req.AmountCents() != 2000 {
			t.Errorf("expected amount 2000, got %d", req.AmountCents())
		}

		if req.Key() != "abc123" {
			t.Errorf("expected key abc123, got %s", req.Key())
		}
	})

	t.Run("keeps key untouched", func(t *testing.T) {
		req, err := domain_pix.NewRequest(1, "  abc123 ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if req.Key() != "  abc123 " {
			t.Errorf("expected key to be preserved, got %q", req.Key())
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		for _, amount := range []int64{0, -1, -2000} {
			for _, key := range []string{"abc123", "", "   "} {
				_, err := domain_pix.NewRequest(amount, key)
				if !errors.Is(err, domain_pix.ErrNonPositiveAmount) {
					t.Errorf("NewRequest(%d, %q): expected ErrNonPositiveAmount, got %v", amount, key, err)
				}
			}
		}
	})

	t.Run("rejects blank keys", func(t *testing.T) {
		for _, key := range []string{"", " ", "\t", "\n \r", "  "} {
			_, err := domain_pix.NewRequest(100, key)
			if !errors.Is(err, domain_pix.ErrBlankKey) {
				t.Errorf("NewRequest(100, %q): expected ErrBlankKey, got %v", key, err)
			}
		}
	})
}
