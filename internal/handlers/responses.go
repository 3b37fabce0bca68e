package handlers

import "github.com/prefeitura-rio/app-cadastro/internal/utils"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the full set of field violations for a
// rejected write
type ValidationErrorResponse struct {
	Erros []utils.ValidationError `json:"erros"`
}
