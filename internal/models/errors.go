package models

import "errors"

// Error constants for pessoa operations
var (
	ErrPessoaNotFound = errors.New("pessoa not found")
	ErrCPFDuplicado   = errors.New("cpf already registered")
	ErrIDMismatch     = errors.New("path id and body id do not match")
)
