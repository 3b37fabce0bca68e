package models

import "time"

// Pessoa is the canonical person record. It is version-agnostic: every wire
// shape decodes into it before any business logic runs, and it is the only
// shape ever persisted.
type Pessoa struct {
	ID              int64     `json:"id" bson:"_id"`
	Nome            string    `json:"nome" bson:"nome"`
	Sexo            *string   `json:"sexo,omitempty" bson:"sexo,omitempty"`
	Email           *string   `json:"email,omitempty" bson:"email,omitempty"`
	DataNascimento  time.Time `json:"dataNascimento" bson:"data_nascimento"`
	Naturalidade    *string   `json:"naturalidade,omitempty" bson:"naturalidade,omitempty"`
	Nacionalidade   *string   `json:"nacionalidade,omitempty" bson:"nacionalidade,omitempty"`
	CPF             string    `json:"cpf" bson:"cpf"`
	CPFDigitos      string    `json:"-" bson:"cpf_digitos"`
	DataCadastro    time.Time `json:"dataCadastro" bson:"data_cadastro"`
	DataAtualizacao time.Time `json:"dataAtualizacao" bson:"data_atualizacao"`
}

// Endereco represents the address accepted by the v2 wire shape. It has no
// counterpart on the canonical record and is never persisted; see
// PessoaV2Input.
type Endereco struct {
	Logradouro  string  `json:"logradouro"`
	Numero      string  `json:"numero"`
	Complemento *string `json:"complemento,omitempty"`
	Bairro      string  `json:"bairro"`
	Cidade      string  `json:"cidade"`
	Estado      string  `json:"estado"`
	CEP         string  `json:"cep"`
}

// PessoaInput is the v1 wire shape. Fields map 1:1 onto the canonical record;
// server-assigned timestamps are never read from the wire.
type PessoaInput struct {
	ID             int64   `json:"id"`
	Nome           string  `json:"nome"`
	Sexo           *string `json:"sexo"`
	Email          *string `json:"email"`
	DataNascimento Date    `json:"dataNascimento"`
	Naturalidade   *string `json:"naturalidade"`
	Nacionalidade  *string `json:"nacionalidade"`
	CPF            string  `json:"cpf"`
}

// PessoaV2Input is the v2 wire shape: the v1 fields plus a required nested
// address. The address is validated on intake and then discarded, because the
// canonical record has no field to hold it. Callers are not echoed the
// address back.
type PessoaV2Input struct {
	PessoaInput
	Endereco *Endereco `json:"endereco"`
}

// ToPessoa decodes the wire shape into the canonical record.
func (in PessoaInput) ToPessoa() Pessoa {
	return Pessoa{
		ID:             in.ID,
		Nome:           in.Nome,
		Sexo:           in.Sexo,
		Email:          in.Email,
		DataNascimento: in.DataNascimento.Time,
		Naturalidade:   in.Naturalidade,
		Nacionalidade:  in.Nacionalidade,
		CPF:            in.CPF,
	}
}
