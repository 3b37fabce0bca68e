package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "bare date",
			input: `"2000-01-01"`,
			want:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC 3339 timestamp",
			input: `"2000-01-01T15:04:05Z"`,
			want:  time.Date(2000, 1, 1, 15, 4, 5, 0, time.UTC),
		},
		{
			name:  "null",
			input: `null`,
			want:  time.Time{},
		},
		{
			name:    "garbage",
			input:   `"01/02/2000"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !d.Time.Equal(tt.want) {
				t.Errorf("got %v, want %v", d.Time, tt.want)
			}
		})
	}
}

func TestPessoaInput_ToPessoa(t *testing.T) {
	sexo := "F"
	email := "ana@example.com"
	input := PessoaInput{
		ID:             7,
		Nome:           "Ana Silva",
		Sexo:           &sexo,
		Email:          &email,
		DataNascimento: Date{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		CPF:            "111.111.111-11",
	}

	p := input.ToPessoa()

	if p.ID != 7 || p.Nome != "Ana Silva" || p.CPF != "111.111.111-11" {
		t.Errorf("ToPessoa() mapped fields wrong: %+v", p)
	}
	if p.Sexo == nil || *p.Sexo != "F" {
		t.Error("ToPessoa() lost sexo")
	}
	if !p.DataNascimento.Equal(input.DataNascimento.Time) {
		t.Error("ToPessoa() lost dataNascimento")
	}
	if !p.DataCadastro.IsZero() || !p.DataAtualizacao.IsZero() {
		t.Error("ToPessoa() must not carry client-settable timestamps")
	}
}

func TestPessoaV2Input_DecodeAndDiscardEndereco(t *testing.T) {
	body := `{
		"nome": "Ana Silva",
		"cpf": "111.111.111-11",
		"dataNascimento": "2000-01-01",
		"endereco": {
			"logradouro": "Avenida Rio Branco",
			"numero": "156",
			"bairro": "Centro",
			"cidade": "Rio de Janeiro",
			"estado": "RJ",
			"cep": "20040-020"
		}
	}`

	var input PessoaV2Input
	if err := json.Unmarshal([]byte(body), &input); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if input.Endereco == nil || input.Endereco.Cidade != "Rio de Janeiro" {
		t.Fatalf("endereco not decoded: %+v", input.Endereco)
	}

	// The canonical record has no address representation
	p := input.ToPessoa()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var round map[string]interface{}
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	if _, ok := round["endereco"]; ok {
		t.Error("canonical Pessoa must not carry an endereco field")
	}
}
