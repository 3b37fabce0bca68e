package utils

import (
	"net/mail"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"campo"`
	Message string `json:"mensagem"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"erros,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// merge unions another rule's violations into the result
func (vr *ValidationResult) merge(errs []ValidationError) {
	for _, e := range errs {
		vr.AddError(e.Field, e.Message)
	}
}

// PessoaRule is a pure function from a candidate record to zero or more
// violations. Rules are independent; the pipeline evaluates every rule and
// unions the results so a caller sees all problems at once.
type PessoaRule func(p models.Pessoa, now time.Time) []ValidationError

var pessoaRules = []PessoaRule{
	ruleNome,
	ruleCPF,
	ruleDataNascimento,
	ruleEmail,
}

// ValidatePessoa runs the full rule set over a candidate record
func ValidatePessoa(p models.Pessoa) *ValidationResult {
	return validatePessoaAt(p, time.Now())
}

func validatePessoaAt(p models.Pessoa, now time.Time) *ValidationResult {
	result := NewValidationResult()
	for _, rule := range pessoaRules {
		result.merge(rule(p, now))
	}
	return result
}

func ruleNome(p models.Pessoa, _ time.Time) []ValidationError {
	if strings.TrimSpace(p.Nome) == "" {
		return []ValidationError{{Field: "nome", Message: "Nome is required"}}
	}
	return nil
}

func ruleCPF(p models.Pessoa, _ time.Time) []ValidationError {
	if strings.TrimSpace(p.CPF) == "" {
		return []ValidationError{{Field: "cpf", Message: "CPF is required"}}
	}
	// Formatting characters are ignored, not rejected
	if !ValidCPFLength(p.CPF) {
		return []ValidationError{{Field: "cpf", Message: "CPF must contain exactly 11 digits"}}
	}
	return nil
}

func ruleDataNascimento(p models.Pessoa, now time.Time) []ValidationError {
	if p.DataNascimento.IsZero() {
		return []ValidationError{{Field: "dataNascimento", Message: "DataNascimento is required"}}
	}
	if p.DataNascimento.After(now) {
		return []ValidationError{{Field: "dataNascimento", Message: "DataNascimento must not be in the future"}}
	}
	// Boundary is inclusive: a birth date exactly 120 years back is accepted
	if p.DataNascimento.Before(now.AddDate(-120, 0, 0)) {
		return []ValidationError{{Field: "dataNascimento", Message: "DataNascimento implies an age over 120 years"}}
	}
	return nil
}

func ruleEmail(p models.Pessoa, _ time.Time) []ValidationError {
	if p.Email == nil || *p.Email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(*p.Email); err != nil {
		return []ValidationError{{Field: "email", Message: "Email is not a valid address"}}
	}
	return nil
}

// ValidateEndereco validates the nested address required by the v2 wire
// shape. All sub-fields but complemento are required.
func ValidateEndereco(e *models.Endereco) *ValidationResult {
	result := NewValidationResult()

	if e == nil {
		result.AddError("endereco", "Endereco is required")
		return result
	}
	if strings.TrimSpace(e.Logradouro) == "" {
		result.AddError("endereco.logradouro", "Logradouro is required")
	}
	if strings.TrimSpace(e.Numero) == "" {
		result.AddError("endereco.numero", "Numero is required")
	}
	if strings.TrimSpace(e.Bairro) == "" {
		result.AddError("endereco.bairro", "Bairro is required")
	}
	if strings.TrimSpace(e.Cidade) == "" {
		result.AddError("endereco.cidade", "Cidade is required")
	}
	if strings.TrimSpace(e.Estado) == "" {
		result.AddError("endereco.estado", "Estado is required")
	}
	if strings.TrimSpace(e.CEP) == "" {
		result.AddError("endereco.cep", "CEP is required")
	}

	return result
}
