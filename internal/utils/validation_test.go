package utils

import (
	"testing"
	"time"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

func strPtr(s string) *string { return &s }

func validPessoa() models.Pessoa {
	return models.Pessoa{
		Nome:           "Ana Silva",
		CPF:            "111.111.111-11",
		DataNascimento: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewValidationResult(t *testing.T) {
	result := NewValidationResult()

	if result == nil {
		t.Fatal("NewValidationResult() returned nil")
	}
	if !result.IsValid {
		t.Error("NewValidationResult() IsValid should be true")
	}
	if len(result.Errors) != 0 {
		t.Errorf("NewValidationResult() should have 0 errors, got %d", len(result.Errors))
	}
}

func TestValidationResult_AddError(t *testing.T) {
	result := NewValidationResult()

	result.AddError("test_field", "test message")

	if result.IsValid {
		t.Error("AddError() should set IsValid to false")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("AddError() should have 1 error, got %d", len(result.Errors))
	}
	if result.Errors[0].Field != "test_field" {
		t.Errorf("AddError() Field = %q, want %q", result.Errors[0].Field, "test_field")
	}
	if result.Errors[0].Message != "test message" {
		t.Errorf("AddError() Message = %q, want %q", result.Errors[0].Message, "test message")
	}
}

func TestValidatePessoa(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		mutate        func(*models.Pessoa)
		wantValid     bool
		wantErrFields []string
	}{
		{
			name:      "valid record",
			mutate:    func(p *models.Pessoa) {},
			wantValid: true,
		},
		{
			name:      "formatted and bare CPF both accepted",
			mutate:    func(p *models.Pessoa) { p.CPF = "03561350712" },
			wantValid: true,
		},
		{
			name:          "empty nome",
			mutate:        func(p *models.Pessoa) { p.Nome = "   " },
			wantValid:     false,
			wantErrFields: []string{"nome"},
		},
		{
			name:          "empty cpf",
			mutate:        func(p *models.Pessoa) { p.CPF = "" },
			wantValid:     false,
			wantErrFields: []string{"cpf"},
		},
		{
			name:          "cpf with 10 digits",
			mutate:        func(p *models.Pessoa) { p.CPF = "111.111.111-1" },
			wantValid:     false,
			wantErrFields: []string{"cpf"},
		},
		{
			name:          "missing birth date",
			mutate:        func(p *models.Pessoa) { p.DataNascimento = time.Time{} },
			wantValid:     false,
			wantErrFields: []string{"dataNascimento"},
		},
		{
			name:      "birth date exactly now accepted",
			mutate:    func(p *models.Pessoa) { p.DataNascimento = now },
			wantValid: true,
		},
		{
			name:          "birth date one day in the future rejected",
			mutate:        func(p *models.Pessoa) { p.DataNascimento = now.AddDate(0, 0, 1) },
			wantValid:     false,
			wantErrFields: []string{"dataNascimento"},
		},
		{
			name:      "birth date exactly 120 years back accepted",
			mutate:    func(p *models.Pessoa) { p.DataNascimento = now.AddDate(-120, 0, 0) },
			wantValid: true,
		},
		{
			name:          "birth date 120 years and one day back rejected",
			mutate:        func(p *models.Pessoa) { p.DataNascimento = now.AddDate(-120, 0, -1) },
			wantValid:     false,
			wantErrFields: []string{"dataNascimento"},
		},
		{
			name:      "valid email accepted",
			mutate:    func(p *models.Pessoa) { p.Email = strPtr("ana@example.com") },
			wantValid: true,
		},
		{
			name:          "invalid email rejected",
			mutate:        func(p *models.Pessoa) { p.Email = strPtr("not-an-email") },
			wantValid:     false,
			wantErrFields: []string{"email"},
		},
		{
			name:      "absent email accepted",
			mutate:    func(p *models.Pessoa) { p.Email = nil },
			wantValid: true,
		},
		{
			name: "all violations reported at once",
			mutate: func(p *models.Pessoa) {
				p.Nome = ""
				p.CPF = "123"
				p.DataNascimento = now.AddDate(0, 0, 1)
				p.Email = strPtr("nope")
			},
			wantValid:     false,
			wantErrFields: []string{"nome", "cpf", "dataNascimento", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPessoa()
			tt.mutate(&p)

			result := validatePessoaAt(p, now)

			if result.IsValid != tt.wantValid {
				t.Fatalf("validatePessoaAt() IsValid = %v, want %v (errors: %v)", result.IsValid, tt.wantValid, result.Errors)
			}
			if len(result.Errors) != len(tt.wantErrFields) {
				t.Fatalf("validatePessoaAt() got %d errors, want %d: %v", len(result.Errors), len(tt.wantErrFields), result.Errors)
			}
			for i, field := range tt.wantErrFields {
				if result.Errors[i].Field != field {
					t.Errorf("error %d field = %q, want %q", i, result.Errors[i].Field, field)
				}
			}
		})
	}
}

func TestValidateEndereco(t *testing.T) {
	valid := models.Endereco{
		Logradouro: "Avenida Rio Branco",
		Numero:     "156",
		Bairro:     "Centro",
		Cidade:     "Rio de Janeiro",
		Estado:     "RJ",
		CEP:        "20040-020",
	}

	t.Run("valid address", func(t *testing.T) {
		e := valid
		result := ValidateEndereco(&e)
		if !result.IsValid {
			t.Errorf("ValidateEndereco() IsValid = false, errors: %v", result.Errors)
		}
	})

	t.Run("nil address", func(t *testing.T) {
		result := ValidateEndereco(nil)
		if result.IsValid {
			t.Error("ValidateEndereco(nil) should be invalid")
		}
		if len(result.Errors) != 1 || result.Errors[0].Field != "endereco" {
			t.Errorf("ValidateEndereco(nil) errors = %v", result.Errors)
		}
	})

	t.Run("complemento is optional", func(t *testing.T) {
		e := valid
		e.Complemento = nil
		if result := ValidateEndereco(&e); !result.IsValid {
			t.Errorf("complemento should be optional, errors: %v", result.Errors)
		}
	})

	t.Run("all required sub-fields reported", func(t *testing.T) {
		result := ValidateEndereco(&models.Endereco{})
		if result.IsValid {
			t.Fatal("empty address should be invalid")
		}
		want := []string{
			"endereco.logradouro",
			"endereco.numero",
			"endereco.bairro",
			"endereco.cidade",
			"endereco.estado",
			"endereco.cep",
		}
		if len(result.Errors) != len(want) {
			t.Fatalf("got %d errors, want %d: %v", len(result.Errors), len(want), result.Errors)
		}
		for i, field := range want {
			if result.Errors[i].Field != field {
				t.Errorf("error %d field = %q, want %q", i, result.Errors[i].Field, field)
			}
		}
	})
}
