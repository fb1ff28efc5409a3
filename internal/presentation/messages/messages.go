// Package messages holds the user-facing text shown for each Pix outcome.
package messages

import domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"

const (
	Success             = "Pix realizado com sucesso."
	NonPositiveAmount   = "O valor do Pix não pode ser menor nem igual a zero."
	BlankKey            = "A chave Pix não pode estar em branco."
	InsufficientBalance = "Seu saldo é insuficiente."
	KeyNotFound         = "Chave Pix não encontrada."
	InternalError       = "Erro interno."
	ConnectionError     = "Erro de conexão."
)

var byOutcome = map[domain_pix.Outcome]string{
	domain_pix.OutcomeSuccess:             Success,
	domain_pix.OutcomeNonPositiveAmount:   NonPositiveAmount,
	domain_pix.OutcomeBlankKey:            BlankKey,
	domain_pix.OutcomeInsufficientBalance: InsufficientBalance,
	domain_pix.OutcomeKeyNotFound:         KeyNotFound,
	domain_pix.OutcomeInternalError:       InternalError,
	domain_pix.OutcomeConnectionError:     ConnectionError,
}

// For returns the message for an outcome. Unknown outcomes get the
// internal error text.
func For(o domain_pix.Outcome) string {
	if msg, ok := byOutcome[o]; ok {
		return msg
	}
	return InternalError
}
